package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/hammer/internal/models"
)

func TestIgnoreSetFor(t *testing.T) {
	tests := []struct {
		phase   models.Phase
		allowed []models.Button
	}{
		{models.PhaseIdle, []models.Button{models.ButtonPower}},
		{models.PhaseSelectingEnds, []models.Button{models.ButtonConfirm, models.ButtonLeft, models.ButtonRight}},
		{models.PhaseNamingTeams, []models.Button{models.ButtonPower}},
		{models.PhaseRegisteringTeamA, []models.Button{models.ButtonPower, models.ButtonConfirm}},
		{models.PhaseEndInProgress, []models.Button{models.ButtonPower, models.ButtonTeamA, models.ButtonTeamB}},
		{models.PhaseAwaitingCardLock, []models.Button{
			models.ButtonPower, models.ButtonConfirm,
			models.ButtonUp, models.ButtonDown, models.ButtonLeft, models.ButtonRight,
		}},
		{models.Phase("bogus"), nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.phase), func(t *testing.T) {
			set := IgnoreSetFor(tt.phase)
			allowed := NewIgnoreSet(tt.allowed...)
			for _, b := range models.Buttons {
				assert.Equal(t, !allowed.Contains(b), set.Contains(b), "button %s", b)
			}
		})
	}
}
