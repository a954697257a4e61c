// keyscan estimates the key of a piece from per-measure pitch-class
// histograms. The input is a YAML file with a "measures" list, each entry
// a 12-element histogram (index 0 = C .. 11 = B):
//
//	measures:
//	  - [10, 0, 0, 0, 10, 0, 0, 10, 0, 0, 0, 0]
//	  - [0, 0, 4, 0, 0, 2, 0, 6, 0, 0, 0, 1]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tonalkit/tonalkit/keydetect"
	"github.com/tonalkit/tonalkit/logging"
)

type inputFile struct {
	Measures [][]float64 `yaml:"measures"`
}

var (
	flagWindow  int
	flagProfile string
	flagMethod  string
	flagSweep   bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "keyscan [histogram file]",
	Short: "Estimate the key trajectory of a piece from pitch-class histograms",
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func init() {
	rootCmd.Flags().IntVarP(&flagWindow, "window", "w", 0, "window size in measures (0 = whole piece)")
	rootCmd.Flags().StringVarP(&flagProfile, "profile", "p", "", fmt.Sprintf("weight profile %v", keydetect.ProfileNames()))
	rootCmd.Flags().StringVarP(&flagMethod, "method", "m", "", "scoring method (correlation, convolution, convolution-fft)")
	rootCmd.Flags().BoolVar(&flagSweep, "sweep", false, "sweep window sizes from --window up to the piece length")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logging.SetLevel(logging.DebugLevel)
	} else {
		logging.SetLevel(logging.WarnLevel)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	var input inputFile
	if err := yaml.Unmarshal(data, &input); err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}
	if len(input.Measures) == 0 {
		return fmt.Errorf("%s: no measures", args[0])
	}

	method, err := keydetect.ParseMethod(flagMethod)
	if err != nil {
		return err
	}
	detector, err := keydetect.NewDetectorWithParams(keydetect.Params{
		Profile: flagProfile,
		Method:  method,
	})
	if err != nil {
		return err
	}

	src := keydetect.SliceSource{Measures: input.Measures}
	windowed := keydetect.NewWindowedDetector(detector)

	window := flagWindow
	if window <= 0 {
		window = src.MeasureCount()
	}

	if flagSweep {
		matrix, err := windowed.Sweep(src, window)
		if err != nil {
			return err
		}
		for _, row := range matrix {
			printTrajectory(cmd, row)
		}
		return nil
	}

	trajectory, err := windowed.Trajectory(src, window)
	if err != nil {
		return err
	}
	printTrajectory(cmd, trajectory)
	return nil
}

func printTrajectory(cmd *cobra.Command, trajectory []keydetect.WindowEstimate) {
	for _, estimate := range trajectory {
		cmd.Println(estimate.String())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
