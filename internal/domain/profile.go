package domain

type TimePreference string

const (
	TimeQuick  TimePreference = "quick"
	TimeMedium TimePreference = "medium"
	TimeSlow   TimePreference = "slow"
)

type SpicePreference string

const (
	SpiceMild   SpicePreference = "mild"
	SpiceMedium SpicePreference = "medium"
	SpiceSpicy  SpicePreference = "spicy"
)

// UserPreferenceProfile is a user's learned taste profile. All fields are
// absent until the learning step fills them in. Learning is deliberately
// overwrite-biased: TimePreference and SkillLevel are set from the most
// recent interaction with no averaging, and interaction types carry no
// weight here (recency decay applies only in collaborative scoring).
type UserPreferenceProfile struct {
	PreferredCuisines  []string        `json:"preferred_cuisines,omitempty"`
	DietaryPreferences []string        `json:"dietary_preferences,omitempty"`
	TimePreference     TimePreference  `json:"time_preference,omitempty"`
	SkillLevel         Difficulty      `json:"skill_level,omitempty"`
	SpicePreference    SpicePreference `json:"spice_preference,omitempty"`
}

// IsEmpty reports whether no preference has been learned yet.
func (p UserPreferenceProfile) IsEmpty() bool {
	return len(p.PreferredCuisines) == 0 &&
		len(p.DietaryPreferences) == 0 &&
		p.TimePreference == "" &&
		p.SkillLevel == "" &&
		p.SpicePreference == ""
}

// Clone returns a copy that shares no slices with the receiver.
func (p UserPreferenceProfile) Clone() UserPreferenceProfile {
	out := p
	if p.PreferredCuisines != nil {
		out.PreferredCuisines = append([]string(nil), p.PreferredCuisines...)
	}
	if p.DietaryPreferences != nil {
		out.DietaryPreferences = append([]string(nil), p.DietaryPreferences...)
	}
	return out
}
