// ABOUTME: Regional cuisine zones and the mapping from region codes and state names.
// ABOUTME: Unknown codes resolve to the north zone so every lookup has a pool.
package pools

import (
	"strings"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/models"
)

// Region is a cuisine zone with its own dish catalogs.
type Region string

const (
	RegionNorth     Region = "north"
	RegionSouth     Region = "south"
	RegionWest      Region = "west"
	RegionEast      Region = "east"
	RegionCentral   Region = "central"
	RegionNortheast Region = "northeast"
)

// DefaultRegion is used when a region code is missing or unknown.
const DefaultRegion = RegionNorth

// AllRegions returns all cuisine zones.
var AllRegions = []Region{RegionNorth, RegionSouth, RegionWest, RegionEast, RegionCentral, RegionNortheast}

// stateRegions maps state and union territory names to their cuisine zone.
var stateRegions = map[string]Region{
	"punjab":            RegionNorth,
	"haryana":           RegionNorth,
	"delhi":             RegionNorth,
	"himachal-pradesh":  RegionNorth,
	"uttarakhand":       RegionNorth,
	"uttar-pradesh":     RegionNorth,
	"jammu-kashmir":     RegionNorth,
	"rajasthan":         RegionNorth,
	"kerala":            RegionSouth,
	"tamil-nadu":        RegionSouth,
	"karnataka":         RegionSouth,
	"andhra-pradesh":    RegionSouth,
	"telangana":         RegionSouth,
	"puducherry":        RegionSouth,
	"maharashtra":       RegionWest,
	"gujarat":           RegionWest,
	"goa":               RegionWest,
	"west-bengal":       RegionEast,
	"odisha":            RegionEast,
	"bihar":             RegionEast,
	"jharkhand":         RegionEast,
	"madhya-pradesh":    RegionCentral,
	"chhattisgarh":      RegionCentral,
	"assam":             RegionNortheast,
	"meghalaya":         RegionNortheast,
	"manipur":           RegionNortheast,
	"mizoram":           RegionNortheast,
	"nagaland":          RegionNortheast,
	"tripura":           RegionNortheast,
	"arunachal-pradesh": RegionNortheast,
	"sikkim":            RegionNortheast,
}

// ResolveRegion maps a region code to a cuisine zone. The code may be a zone
// name or a state name; spaces and underscores are treated as hyphens. The
// second return value is false when the code was not recognized, in which case
// DefaultRegion is returned. An empty code or "no-preference" resolves to
// DefaultRegion and counts as recognized.
func ResolveRegion(code string) (Region, bool) {
	c := strings.ToLower(strings.TrimSpace(code))
	c = strings.NewReplacer(" ", "-", "_", "-").Replace(c)

	if c == "" || c == models.NoRegionPreference {
		return DefaultRegion, true
	}
	for _, r := range AllRegions {
		if string(r) == c {
			return r, true
		}
	}
	if r, ok := stateRegions[c]; ok {
		return r, true
	}
	return DefaultRegion, false
}

// regionalNotes describe the cuisine each zone's meals draw on.
var regionalNotes = map[Region]string{
	RegionNorth:     "Meals follow North Indian home cooking: whole wheat rotis, dals, seasonal sabzis and curd.",
	RegionSouth:     "Meals follow South Indian staples: rice, fermented batters, sambar, rasam and coconut-based curries.",
	RegionWest:      "Meals follow Gujarati and Maharashtrian kitchens: millet rotlas, light dals, kadhi and steamed snacks.",
	RegionEast:      "Meals follow Bengali and Odia cooking: rice with light dals, mustard-based vegetables and fish where allowed.",
	RegionCentral:   "Meals follow Central Indian fare: poha, jowar rotis, dal and seasonal greens.",
	RegionNortheast: "Meals follow Northeastern cooking: red and black rice, bamboo shoot, fermented greens and light stews.",
}

// GenericRegionalNote is attached when a region code was given but not recognized.
const GenericRegionalNote = "Your region is not in our catalog yet, so meals use North Indian staples. Swap in local seasonal produce where you can."

// RegionalNote returns the note for a region code. It is empty when no region
// was chosen or the code is "no-preference".
func RegionalNote(code string) string {
	c := strings.ToLower(strings.TrimSpace(code))
	if c == "" || c == models.NoRegionPreference {
		return ""
	}
	r, known := ResolveRegion(c)
	if !known {
		return GenericRegionalNote
	}
	return regionalNotes[r]
}
