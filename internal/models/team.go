package models

// TeamID identifies one of the two teams in a match
type TeamID int

const (
	// TeamA is the first team, drawn on the upper scoring row
	TeamA TeamID = iota

	// TeamB is the second team, drawn on the lower scoring row
	TeamB
)

// Teams lists both team identifiers in display order
var Teams = [2]TeamID{TeamA, TeamB}

// Other returns the opposing team
func (t TeamID) Other() TeamID {
	if t == TeamA {
		return TeamB
	}
	return TeamA
}

// String returns a human readable team label
func (t TeamID) String() string {
	switch t {
	case TeamA:
		return "team_a"
	case TeamB:
		return "team_b"
	default:
		return "unknown_team"
	}
}

// Valid reports whether t is one of the two known teams
func (t TeamID) Valid() bool {
	return t == TeamA || t == TeamB
}

// Team is one side of a match
type Team struct {
	// ID is the team's fixed identity
	ID TeamID `json:"id"`

	// Name is the operator-entered display name
	Name string `json:"name"`

	// Stones is the number of deliveries left in the current end
	Stones int `json:"stones"`

	// HasHammer is true when the team holds the hammer for the current end
	HasHammer bool `json:"has_hammer"`
}
