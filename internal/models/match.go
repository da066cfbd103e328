package models

// Phase is the current step of the match state machine
type Phase string

const (
	// PhaseIdle waits for the first power press
	PhaseIdle Phase = "idle"

	// PhaseSelectingEnds lets the operator pick the number of ends
	PhaseSelectingEnds Phase = "selecting_ends"

	// PhaseNamingTeams prompts for both team names
	PhaseNamingTeams Phase = "naming_teams"

	// PhaseRegisteringTeamA collects team A badge scans
	PhaseRegisteringTeamA Phase = "registering_team_a"

	// PhaseRegisteringTeamB collects team B badge scans
	PhaseRegisteringTeamB Phase = "registering_team_b"

	// PhaseInProgress is the moment between ends
	PhaseInProgress Phase = "in_progress"

	// PhaseEndInProgress counts deliveries until both teams run out
	PhaseEndInProgress Phase = "end_in_progress"

	// PhaseAwaitingCardLock waits for the end card to be placed and locked
	PhaseAwaitingCardLock Phase = "awaiting_card_lock"

	// PhaseGameOver is reached after the final end card locks
	PhaseGameOver Phase = "game_over"
)

// InMatch reports whether the phase belongs to an active match
func (p Phase) InMatch() bool {
	switch p {
	case PhaseInProgress, PhaseEndInProgress, PhaseAwaitingCardLock:
		return true
	default:
		return false
	}
}

// Launching reports whether the phase is part of the pre-game launch sequence
func (p Phase) Launching() bool {
	switch p {
	case PhaseSelectingEnds, PhaseNamingTeams, PhaseRegisteringTeamA, PhaseRegisteringTeamB:
		return true
	default:
		return false
	}
}

// RegisteringTeam returns the team being registered in a registration phase
func (p Phase) RegisteringTeam() (TeamID, bool) {
	switch p {
	case PhaseRegisteringTeamA:
		return TeamA, true
	case PhaseRegisteringTeamB:
		return TeamB, true
	default:
		return TeamA, false
	}
}
