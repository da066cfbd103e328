package models

// Player is a badge directory entry
type Player struct {
	// BadgeID is the proximity badge identifier, matched exactly
	BadgeID string `json:"badge_id" yaml:"badge_id"`

	// Name is the display name shown when the badge is scanned
	Name string `json:"name" yaml:"name"`

	// Skip is true for the team's lead scorer
	Skip bool `json:"skip" yaml:"skip"`

	// CueRef points at the entry cue the renderer should play
	CueRef string `json:"cue_ref" yaml:"cue_ref"`
}
