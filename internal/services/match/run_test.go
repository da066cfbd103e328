package match

import (
	"context"
	"time"

	"github.com/KirkDiggler/hammer/internal/models"
)

type runner struct {
	s      *ServiceTestSuite
	cancel context.CancelFunc
	errCh  chan error
}

func (s *ServiceTestSuite) run() *runner {
	ctx, cancel := context.WithCancel(s.ctx)
	r := &runner{s: s, cancel: cancel, errCh: make(chan error, 1)}
	go func() { r.errCh <- s.svc.Run(ctx) }()
	return r
}

func (r *runner) press(buttons ...models.Button) {
	for _, b := range buttons {
		r.s.events <- models.ButtonEvent(b, time.Now())
	}
}

func (r *runner) pressN(b models.Button, n int) {
	for i := 0; i < n; i++ {
		r.press(b)
	}
}

func (r *runner) scan(badgeID string) {
	r.s.events <- models.BadgeEvent(badgeID, time.Now())
}

// waitFor consumes snapshots until one satisfies match
func (r *runner) waitFor(desc string, match func(*models.Scoreboard) bool) *models.Scoreboard {
	timeout := time.After(2 * time.Second)
	for {
		select {
		case board := <-r.s.publisher.ch:
			if match(board) {
				return board
			}
		case <-timeout:
			r.s.FailNow("timed out waiting for " + desc)
			return nil
		}
	}
}

func (r *runner) waitPhase(phase models.Phase) *models.Scoreboard {
	return r.waitFor(string(phase), func(b *models.Scoreboard) bool { return b.Phase == phase })
}

func (r *runner) stop() error {
	r.cancel()
	select {
	case err := <-r.errCh:
		return err
	case <-time.After(2 * time.Second):
		r.s.FailNow("Run did not return after cancel")
		return nil
	}
}

func cardByRank(board *models.Scoreboard, rank int) (models.Card, bool) {
	for _, c := range board.Cards {
		if c.Rank == rank {
			return c, true
		}
	}
	return models.Card{}, false
}

func (s *ServiceTestSuite) TestRunFullMatch() {
	s.renderer.names[models.TeamA] = "Rockets"
	r := s.run()

	r.waitPhase(models.PhaseIdle)
	r.press(models.ButtonPower)
	first := r.waitPhase(models.PhaseSelectingEnds)
	s.NotEmpty(first.MatchID)

	// 8 -> 2
	r.pressN(models.ButtonLeft, 6)
	r.press(models.ButtonConfirm)

	board := r.waitPhase(models.PhaseRegisteringTeamA)
	s.Equal(2, board.NumEnds)
	s.Len(board.Cards, 2)
	s.Equal("Rockets", board.Teams[models.TeamA].Name)
	s.Equal("Team B", board.Teams[models.TeamB].Name)

	r.scan("nobody")
	r.scan("a1")
	r.waitFor("first team A check-in", func(b *models.Scoreboard) bool { return len(b.Players[models.TeamA]) == 1 })
	r.scan("a2")
	r.waitPhase(models.PhaseRegisteringTeamB)
	r.scan("b1")
	r.waitFor("first team B check-in", func(b *models.Scoreboard) bool { return len(b.Players[models.TeamB]) == 1 })
	r.scan("b2")

	board = r.waitFor("end 1", func(b *models.Scoreboard) bool {
		return b.Phase == models.PhaseEndInProgress && b.CurrentEnd == 1
	})
	s.Equal([]string{"Alice", "Amir"}, board.Players[models.TeamA])
	s.Equal([]string{"Bea", "Bo"}, board.Players[models.TeamB])
	s.Equal(8, board.Teams[models.TeamA].Stones)

	r.pressN(models.ButtonTeamA, 8)
	r.pressN(models.ButtonTeamB, 8)
	board = r.waitPhase(models.PhaseAwaitingCardLock)
	holder, ok := board.HammerHolder()
	s.True(ok)
	s.Equal(models.TeamB, holder)
	s.Equal(0, board.Teams[models.TeamA].Stones)
	s.Equal(0, board.Teams[models.TeamB].Stones)

	r.press(models.ButtonDown, models.ButtonConfirm)
	board = r.waitFor("end 2", func(b *models.Scoreboard) bool {
		return b.Phase == models.PhaseEndInProgress && b.CurrentEnd == 2
	})
	s.Equal(8, board.Teams[models.TeamA].Stones)
	s.Equal(8, board.Teams[models.TeamB].Stones)
	_, ok = board.HammerHolder()
	s.False(ok)
	card, ok := cardByRank(board, 1)
	s.Require().True(ok)
	s.True(card.Locked)
	s.Equal(models.Slot{Family: models.FamilyTeamA, Index: 0}, card.Slot)

	r.pressN(models.ButtonTeamB, 8)
	r.pressN(models.ButtonTeamA, 8)
	board = r.waitPhase(models.PhaseAwaitingCardLock)
	holder, _ = board.HammerHolder()
	s.Equal(models.TeamA, holder)

	r.press(models.ButtonDown, models.ButtonDown, models.ButtonConfirm)
	board = r.waitPhase(models.PhaseGameOver)
	card, ok = cardByRank(board, 2)
	s.Require().True(ok)
	s.True(card.Locked)
	s.Equal(models.Slot{Family: models.FamilyTeamB, Index: 0}, card.Slot)
	s.NotEmpty(board.Announcement)

	again := r.waitPhase(models.PhaseSelectingEnds)
	s.NotEqual(first.MatchID, again.MatchID)
	s.Empty(again.Players[models.TeamA])

	s.ErrorIs(r.stop(), context.Canceled)
	s.Contains(s.renderer.invalid, "nobody")
}

func (s *ServiceTestSuite) TestRunRestartsOnPowerDuringRegistration() {
	r := s.run()

	r.waitPhase(models.PhaseIdle)
	r.press(models.ButtonPower)
	first := r.waitPhase(models.PhaseSelectingEnds)
	r.press(models.ButtonConfirm)
	r.waitPhase(models.PhaseRegisteringTeamA)
	r.scan("a1")
	r.waitFor("check-in", func(b *models.Scoreboard) bool { return len(b.Players[models.TeamA]) == 1 })

	r.press(models.ButtonPower)
	again := r.waitPhase(models.PhaseSelectingEnds)
	s.NotEqual(first.MatchID, again.MatchID)
	s.Empty(again.Players[models.TeamA])
	s.Equal(0, again.NumEnds)

	s.ErrorIs(r.stop(), context.Canceled)
}

func (s *ServiceTestSuite) TestRunIgnoresPowerWhileSelectingEnds() {
	r := s.run()

	r.waitPhase(models.PhaseIdle)
	r.press(models.ButtonPower)
	r.waitPhase(models.PhaseSelectingEnds)

	// ignored while choosing ends
	r.press(models.ButtonPower, models.ButtonRight)
	board := r.waitFor("selection step", func(b *models.Scoreboard) bool {
		c, ok := cardByRank(b, 9)
		return ok && c.Appearance == models.AppearanceSelected
	})
	s.Equal(models.PhaseSelectingEnds, board.Phase)

	s.ErrorIs(r.stop(), context.Canceled)
}
