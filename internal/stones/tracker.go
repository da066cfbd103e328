package stones

import (
	"fmt"

	"github.com/KirkDiggler/hammer/internal/models"
)

// StonesPerEnd is the number of deliveries each team has in one end
const StonesPerEnd = 8

// Tracker counts deliveries per end and records who holds the hammer.
// It is a value type: the sequencer copies it, mutates the copy, draws, then
// keeps the copy only when drawing succeeded.
type Tracker struct {
	remaining [2]int
	holder    models.TeamID
	hasHolder bool
	hammerSet bool
}

// New returns a tracker with full stone counts and no hammer holder
func New() Tracker {
	return Tracker{remaining: [2]int{StonesPerEnd, StonesPerEnd}}
}

// RecordDelivery takes one stone from team. At zero it is a no-op and
// reports false.
func (t *Tracker) RecordDelivery(team models.TeamID) (bool, error) {
	if !team.Valid() {
		return false, fmt.Errorf("%w: %d", ErrUnknownTeam, team)
	}
	if t.remaining[team] == 0 {
		return false, nil
	}
	t.remaining[team]--
	return true, nil
}

// Remaining returns the stones team has left this end
func (t Tracker) Remaining(team models.TeamID) int {
	if !team.Valid() {
		return 0
	}
	return t.remaining[team]
}

// HasRemainingStones reports whether team can still deliver
func (t Tracker) HasRemainingStones(team models.TeamID) bool {
	return t.Remaining(team) >= 1
}

// Exhausted reports whether neither team has a stone left
func (t Tracker) Exhausted() bool {
	return !t.HasRemainingStones(models.TeamA) && !t.HasRemainingStones(models.TeamB)
}

// AssignHammerIfUnset gives the hammer to the team that did not deliver,
// once per end. It reports whether the holder changed.
func (t *Tracker) AssignHammerIfUnset(delivered models.TeamID) (bool, error) {
	if !delivered.Valid() {
		return false, fmt.Errorf("%w: %d", ErrUnknownTeam, delivered)
	}
	if t.hammerSet {
		return false, nil
	}
	t.holder = delivered.Other()
	t.hasHolder = true
	t.hammerSet = true
	return true, nil
}

// HammerSet reports whether the hammer was assigned during the current end
func (t Tracker) HammerSet() bool {
	return t.hammerSet
}

// HammerHolder returns the most recent hammer holder. The holder survives
// ResetForNewEnd until the next assignment.
func (t Tracker) HammerHolder() (models.TeamID, bool) {
	return t.holder, t.hasHolder
}

// ResetForNewEnd restores both counts and reopens hammer assignment
func (t *Tracker) ResetForNewEnd() {
	t.remaining = [2]int{StonesPerEnd, StonesPerEnd}
	t.hammerSet = false
}
