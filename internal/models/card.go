package models

// SlotFamily is one of the ordered groups of card positions
type SlotFamily int

const (
	// FamilyStartRow holds one position per possible end before play
	FamilyStartRow SlotFamily = iota

	// FamilyTeamA is team A's scoring column
	FamilyTeamA

	// FamilyTeamB is team B's scoring column
	FamilyTeamB

	// FamilyBlankEnd collects ends in which nobody scored
	FamilyBlankEnd
)

// String returns the family name used in logs and snapshots
func (f SlotFamily) String() string {
	switch f {
	case FamilyStartRow:
		return "start_row"
	case FamilyTeamA:
		return "team_a"
	case FamilyTeamB:
		return "team_b"
	case FamilyBlankEnd:
		return "blank_end"
	default:
		return "unknown_family"
	}
}

// FamilyForTeam returns the scoring column owned by a team
func FamilyForTeam(team TeamID) SlotFamily {
	if team == TeamB {
		return FamilyTeamB
	}
	return FamilyTeamA
}

// TeamForFamily returns the team owning a scoring column
func TeamForFamily(f SlotFamily) (TeamID, bool) {
	switch f {
	case FamilyTeamA:
		return TeamA, true
	case FamilyTeamB:
		return TeamB, true
	default:
		return TeamA, false
	}
}

// Slot addresses a single card position
type Slot struct {
	Family SlotFamily `json:"family"`
	Index  int        `json:"index"`
}

// Appearance is the visual tag a card is drawn with
type Appearance string

const (
	// AppearanceNeutral is an idle, unlocked card
	AppearanceNeutral Appearance = "neutral"

	// AppearanceSelected marks the card the remote currently controls
	AppearanceSelected Appearance = "selected"

	// AppearanceLocked marks a card whose end has been finalized
	AppearanceLocked Appearance = "locked"

	// AppearanceHidden clears the slot (ranks above the chosen end count)
	AppearanceHidden Appearance = "hidden"
)

// Card is one end card
type Card struct {
	// Rank is the end number the card represents (1..10)
	Rank int `json:"rank"`

	// Slot is where the card currently sits
	Slot Slot `json:"slot"`

	// Appearance is the tag the card was last drawn with
	Appearance Appearance `json:"appearance"`

	// Locked freezes the slot and appearance once the end is scored
	Locked bool `json:"locked"`
}

// OptionalRank is a card rank that may be absent
type OptionalRank struct {
	Rank  int
	Valid bool
}

// SomeRank returns a present rank
func SomeRank(rank int) OptionalRank {
	return OptionalRank{Rank: rank, Valid: true}
}

// NoRank is the absent rank
var NoRank = OptionalRank{}

// Get returns the rank and whether it is present
func (o OptionalRank) Get() (int, bool) {
	return o.Rank, o.Valid
}
