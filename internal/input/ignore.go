package input

import "github.com/KirkDiggler/hammer/internal/models"

// IgnoreSet is the set of buttons that produce no action in a phase
type IgnoreSet map[models.Button]struct{}

// NewIgnoreSet builds a set from buttons
func NewIgnoreSet(buttons ...models.Button) IgnoreSet {
	set := make(IgnoreSet, len(buttons))
	for _, b := range buttons {
		set[b] = struct{}{}
	}
	return set
}

// AllExcept ignores every button other than keep
func AllExcept(keep ...models.Button) IgnoreSet {
	set := NewIgnoreSet(models.Buttons...)
	for _, b := range keep {
		delete(set, b)
	}
	return set
}

// Contains reports whether b is ignored
func (s IgnoreSet) Contains(b models.Button) bool {
	_, ok := s[b]
	return ok
}

var phaseIgnoreSets = map[models.Phase]IgnoreSet{
	models.PhaseIdle:             AllExcept(models.ButtonPower),
	models.PhaseSelectingEnds:    NewIgnoreSet(models.ButtonPower, models.ButtonTeamA, models.ButtonTeamB, models.ButtonUp, models.ButtonDown),
	models.PhaseNamingTeams:      AllExcept(models.ButtonPower),
	models.PhaseRegisteringTeamA: AllExcept(models.ButtonPower, models.ButtonConfirm),
	models.PhaseRegisteringTeamB: AllExcept(models.ButtonPower, models.ButtonConfirm),
	models.PhaseInProgress:       AllExcept(models.ButtonPower),
	models.PhaseEndInProgress:    NewIgnoreSet(models.ButtonUp, models.ButtonDown, models.ButtonLeft, models.ButtonRight, models.ButtonConfirm),
	models.PhaseAwaitingCardLock: NewIgnoreSet(models.ButtonTeamA, models.ButtonTeamB),
	models.PhaseGameOver:         AllExcept(models.ButtonPower),
}

// IgnoreSetFor returns the ignore-set of phase. Unknown phases ignore everything.
func IgnoreSetFor(phase models.Phase) IgnoreSet {
	if set, ok := phaseIgnoreSets[phase]; ok {
		return set
	}
	return AllExcept()
}
