package keydetect

import (
	"fmt"
	"sort"
)

// WeightProfile is a pair of empirically derived 12-element weight vectors
// describing the expected prominence of each pitch class relative to the
// tonic in major and minor contexts. Profiles are immutable data tables;
// swapping one in changes nothing about the correlation algorithm.
type WeightProfile struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Major       []float64 `json:"major_profile"`
	Minor       []float64 `json:"minor_profile"`
}

// Weights returns a copy of the major or minor weight vector.
func (p WeightProfile) Weights(major bool) []float64 {
	src := p.Minor
	if major {
		src = p.Major
	}
	out := make([]float64, len(src))
	copy(out, src)
	return out
}

// ProfileSapp is the Krumhansl-Schmuckler profile pair as tabulated by
// Sapp. This is the default profile.
var ProfileSapp = WeightProfile{
	Name:        "sapp",
	Description: "Krumhansl-Schmuckler probe-tone profiles, Sapp's tabulation",
	Major:       []float64{6.35, 2.33, 3.48, 2.33, 4.38, 4.09, 2.52, 5.19, 2.39, 3.66, 2.29, 2.88},
	Minor:       []float64{6.33, 2.68, 3.52, 5.38, 2.60, 3.53, 2.54, 4.75, 3.98, 2.69, 3.34, 3.17},
}

// ProfileTemperley is Temperley's corpus-derived profile pair.
var ProfileTemperley = WeightProfile{
	Name:        "temperley",
	Description: "Temperley's corpus-based profiles",
	Major:       []float64{5.0, 2.0, 3.5, 2.0, 4.5, 4.0, 2.0, 4.5, 2.0, 3.5, 1.5, 4.0},
	Minor:       []float64{5.0, 2.0, 3.5, 4.5, 2.0, 4.0, 2.0, 4.5, 3.5, 2.0, 1.5, 4.0},
}

// ProfileShaath is Shaath's profile pair, tuned on electronic music.
var ProfileShaath = WeightProfile{
	Name:        "shaath",
	Description: "Shaath's profiles, tuned for electronic dance music",
	Major:       []float64{6.6, 2.0, 3.5, 2.3, 4.6, 4.0, 2.5, 5.2, 2.4, 3.7, 2.3, 3.4},
	Minor:       []float64{6.5, 2.7, 3.5, 5.4, 2.6, 3.5, 2.5, 4.7, 4.0, 2.7, 3.4, 3.2},
}

var profileRegistry = map[string]WeightProfile{
	ProfileSapp.Name:      ProfileSapp,
	ProfileTemperley.Name: ProfileTemperley,
	ProfileShaath.Name:    ProfileShaath,
}

// ProfileByName looks up a registered weight profile.
func ProfileByName(name string) (WeightProfile, error) {
	p, ok := profileRegistry[name]
	if !ok {
		return WeightProfile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	return p, nil
}

// ProfileNames lists the registered profiles in sorted order.
func ProfileNames() []string {
	names := make([]string, 0, len(profileRegistry))
	for name := range profileRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
