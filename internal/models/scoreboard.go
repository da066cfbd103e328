package models

import "time"

// Scoreboard is a point-in-time copy of the match, handed to observers
type Scoreboard struct {
	// MatchID identifies the match the snapshot belongs to
	MatchID string `json:"match_id"`

	// Phase is the state machine phase at snapshot time
	Phase Phase `json:"phase"`

	// CurrentEnd is the end being played (0 before the first end)
	CurrentEnd int `json:"current_end"`

	// NumEnds is the chosen number of ends (0 until chosen)
	NumEnds int `json:"num_ends"`

	// Teams holds both teams in TeamA, TeamB order
	Teams [2]Team `json:"teams"`

	// Cards holds every visible card ordered by rank
	Cards []Card `json:"cards"`

	// Players holds the names checked in per team
	Players [2][]string `json:"players"`

	// PointsEntryMode mirrors the power-button toggle during a match
	PointsEntryMode bool `json:"points_entry_mode"`

	// Announcement is the most recent announcer line
	Announcement string `json:"announcement,omitempty"`

	// UpdatedAt is when the snapshot was taken
	UpdatedAt time.Time `json:"updated_at"`
}

// HammerHolder returns the team holding the hammer, if any
func (s *Scoreboard) HammerHolder() (TeamID, bool) {
	for _, t := range s.Teams {
		if t.HasHammer {
			return t.ID, true
		}
	}
	return TeamA, false
}
