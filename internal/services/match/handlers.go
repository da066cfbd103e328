package match

import (
	"context"
	"errors"

	"github.com/KirkDiggler/hammer/internal/models"
	"github.com/KirkDiggler/hammer/internal/registration"
	"github.com/KirkDiggler/hammer/internal/services/messaging"
)

// onPower starts or restarts the launch sequence outside a match and toggles
// points-entry mode inside one.
func (s *service) onPower(ctx context.Context, _ models.Event) error {
	if !s.phase.InMatch() {
		s.launchRequested = true
		s.logger.InfoContext(ctx, "launch requested", "phase", string(s.phase))
		return nil
	}

	on := !s.pointsEntry
	if err := s.renderer.SetPointsEntryMode(ctx, on); err != nil {
		s.renderFailure(ctx, "set_points_entry_mode", err)
		return nil
	}
	s.pointsEntry = on
	s.logger.InfoContext(ctx, "points entry mode", "on", on)
	s.publish(ctx)
	return nil
}

// onDeliver records a stone for team. The tracker is staged on a copy and
// only kept once the display has been updated.
func (s *service) onDeliver(team models.TeamID) func(context.Context, models.Event) error {
	return func(ctx context.Context, _ models.Event) error {
		if s.phase != models.PhaseEndInProgress {
			return nil
		}

		staged := s.tracker
		changed, err := staged.RecordDelivery(team)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		assigned, err := staged.AssignHammerIfUnset(team)
		if err != nil {
			return err
		}

		if err := s.renderer.DrawStoneCount(ctx, team, staged.Remaining(team)); err != nil {
			s.renderFailure(ctx, "draw_stone_count", err)
			return nil
		}
		holder, _ := staged.HammerHolder()
		if assigned {
			if err := s.renderer.DrawHammer(ctx, holder); err != nil {
				s.renderFailure(ctx, "draw_hammer", err)
				return nil
			}
		}

		s.tracker = staged
		s.teams[team].Stones = staged.Remaining(team)
		s.metrics.Delivery(team.String())
		s.logger.DebugContext(ctx, "stone delivered", "team", team.String(), "remaining", staged.Remaining(team))

		if assigned {
			for _, t := range models.Teams {
				s.teams[t].HasHammer = t == holder
			}
			s.logger.InfoContext(ctx, "hammer assigned", "end", s.currentEnd, "team", holder.String())
			s.announceHammer(ctx, holder)
		}
		s.publish(ctx)

		if assigned && s.config.HammerCue != "" {
			if err := s.RunCue(ctx, s.config.HammerCue, s.config.CueTimeout); err != nil && ctx.Err() == nil {
				s.renderFailure(ctx, "hammer_cue", err)
			}
		}
		return nil
	}
}

func (s *service) announceHammer(ctx context.Context, holder models.TeamID) {
	if s.messaging == nil {
		return
	}
	out, err := s.messaging.GetHammerMessage(ctx, &messaging.GetHammerMessageInput{
		TeamName: s.teams[holder].Name,
		End:      s.currentEnd,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to build hammer message", "error", err)
		return
	}
	s.announce(ctx, out.Message)
}

// onConfirm commits the end count before a match. In a match it locks the
// selected card, or with nothing selected picks the card after the last lock.
func (s *service) onConfirm(ctx context.Context, _ models.Event) error {
	switch {
	case s.phase == models.PhaseSelectingEnds:
		s.endsChosen = true
	case s.phase.InMatch():
		rank, ok := s.engine.Selected().Get()
		if ok {
			if s.cardResult(ctx, "lock", s.engine.Lock(ctx, rank)) {
				s.previousLock = rank
				s.publish(ctx)
			}
			return nil
		}
		next := s.previousLock + 1
		if next > s.engine.NumEnds() {
			return nil
		}
		if s.cardResult(ctx, "select", s.engine.Select(ctx, next)) {
			s.publish(ctx)
		}
	}
	return nil
}

func (s *service) onUp(ctx context.Context, _ models.Event) error {
	return s.move(ctx, "move_up", s.engine.MoveUp)
}

func (s *service) onDown(ctx context.Context, _ models.Event) error {
	return s.move(ctx, "move_down", s.engine.MoveDown)
}

// onLeft steps the end-count selection before ends are chosen, otherwise
// shifts the selected card within its column.
func (s *service) onLeft(ctx context.Context, _ models.Event) error {
	if s.phase == models.PhaseSelectingEnds {
		return s.step(ctx, -1)
	}
	return s.move(ctx, "move_left", s.engine.MoveLeft)
}

func (s *service) onRight(ctx context.Context, _ models.Event) error {
	if s.phase == models.PhaseSelectingEnds {
		return s.step(ctx, 1)
	}
	return s.move(ctx, "move_right", s.engine.MoveRight)
}

func (s *service) step(ctx context.Context, delta int) error {
	rank, ok := s.engine.Selected().Get()
	if !ok {
		rank = s.config.DefaultEnds
	}
	if s.cardResult(ctx, "select", s.engine.Select(ctx, rank+delta)) {
		s.publish(ctx)
	}
	return nil
}

func (s *service) move(ctx context.Context, operation string, fn func(context.Context) error) error {
	if !s.phase.InMatch() {
		return nil
	}
	if s.cardResult(ctx, operation, fn(ctx)) {
		s.publish(ctx)
	}
	return nil
}

// onBadge forwards a badge read to the registration session
func (s *service) onBadge(ctx context.Context, ev models.Event) {
	team, registering := s.phase.RegisteringTeam()
	if !registering || !s.session.Active() {
		s.logger.DebugContext(ctx, "badge read outside registration", "phase", string(s.phase))
		s.metrics.BadgeScan("ignored")
		return
	}

	res, err := s.session.SubmitScan(ctx, ev.BadgeID)
	switch {
	case err == nil:
		s.metrics.BadgeScan("accepted")
		s.announceCheckIn(ctx, team, res.Player)
		s.publish(ctx)
	case errors.Is(err, registration.ErrUnknownBadge):
		s.metrics.BadgeScan("unknown")
		s.announceInvalidScan(ctx, team, false)
	case errors.Is(err, registration.ErrDuplicateBadge):
		s.metrics.BadgeScan("duplicate")
		s.announceInvalidScan(ctx, team, true)
	case errors.Is(err, registration.ErrScanSuppressed):
		s.metrics.BadgeScan("suppressed")
		s.logger.DebugContext(ctx, "scan suppressed while cue plays", "badge_id", ev.BadgeID)
	case errors.Is(err, registration.ErrSessionComplete):
		s.metrics.BadgeScan("ignored")
	case ctx.Err() != nil:
		return
	default:
		s.metrics.BadgeScan("error")
		var regErr registration.RegistrationError
		if errors.As(err, &regErr) {
			s.logger.WarnContext(ctx, "scan rejected", "error", err)
			return
		}
		s.renderFailure(ctx, "scan", err)
	}
}

func (s *service) announceCheckIn(ctx context.Context, team models.TeamID, p *models.Player) {
	if s.messaging == nil || p == nil {
		return
	}
	out, err := s.messaging.GetCheckInMessage(ctx, &messaging.GetCheckInMessageInput{
		PlayerName: p.Name,
		TeamName:   s.teams[team].Name,
		Skip:       p.Skip,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to build check-in message", "error", err)
		return
	}
	s.announce(ctx, out.Message)
}

func (s *service) announceInvalidScan(ctx context.Context, team models.TeamID, duplicate bool) {
	if err := s.renderer.PlayTone(ctx, models.ToneInvalid); err != nil {
		s.renderFailure(ctx, "play_tone", err)
	}
	if s.messaging == nil {
		return
	}
	out, err := s.messaging.GetInvalidScanMessage(ctx, &messaging.GetInvalidScanMessageInput{
		TeamName:  s.teams[team].Name,
		Duplicate: duplicate,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to build invalid scan message", "error", err)
		return
	}
	s.announce(ctx, out.Message)
}
