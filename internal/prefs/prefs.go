package prefs

import "reflect"

// DefaultMinMatchScore is the threshold used when the user has never
// saved preferences.
const DefaultMinMatchScore = 40

// Preferences are the user's matching criteria. RoleKeywords and Skills
// are comma-separated free text; Locations and Modes are exact-match
// sets; Experience is a single band or "" for any.
type Preferences struct {
	RoleKeywords  string   `json:"roleKeywords"`
	Locations     []string `json:"preferredLocations"`
	Modes         []string `json:"preferredModes"`
	Experience    string   `json:"experienceLevel"`
	Skills        string   `json:"skills"`
	MinMatchScore int      `json:"minMatchScore"`
}

func Default() Preferences {
	return Preferences{MinMatchScore: DefaultMinMatchScore}
}

// Empty reports whether every criteria field is blank. The threshold is
// not a criterion: an all-blank record is empty regardless of its value.
func (p Preferences) Empty() bool {
	return p.RoleKeywords == "" &&
		len(p.Locations) == 0 &&
		len(p.Modes) == 0 &&
		p.Experience == "" &&
		p.Skills == ""
}

// Customized reports whether the record differs from the defaults in any
// field. The "only above threshold" view filter is gated on this, not on
// the threshold value itself.
func (p Preferences) Customized() bool {
	return !reflect.DeepEqual(p, Default())
}
