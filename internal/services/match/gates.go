package match

import (
	"context"
	"errors"
	"time"

	"github.com/KirkDiggler/hammer/internal/models"
)

// await dispatches events until done holds. The event that makes done true
// is what wakes the sequencer.
func (s *service) await(ctx context.Context, done func() bool) error {
	for !done() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-s.events:
			if !ok {
				s.logger.WarnContext(ctx, "event source closed, waiting for shutdown", "phase", string(s.phase))
				s.events = nil
				continue
			}
			s.handle(ctx, ev)
		}
	}
	return nil
}

// gate is await for launch and match phases: a pending relaunch ends it with errRestart.
func (s *service) gate(ctx context.Context, done func() bool) error {
	if err := s.await(ctx, func() bool { return s.launchRequested || done() }); err != nil {
		return err
	}
	if s.launchRequested {
		return errRestart
	}
	return nil
}

func (s *service) handle(ctx context.Context, ev models.Event) {
	if ev.Kind == models.EventBadge {
		s.dispatcher.Record(ev)
		s.onBadge(ctx, ev)
		return
	}

	outcome, err := s.dispatcher.Dispatch(ctx, ev)
	if err != nil {
		s.logger.ErrorContext(ctx, "button handler failed",
			"button", string(ev.Button),
			"outcome", string(outcome),
			"error", err,
		)
	}
}

// RunCue plays a presentation cue on its own goroutine while the sequencer
// keeps draining events. It returns when the cue finishes, times out, is
// cancelled by a double press or a relaunch, or ctx is done.
func (s *service) RunCue(ctx context.Context, cueRef string, timeout time.Duration) error {
	if s.cueCancel != nil {
		s.logger.DebugContext(ctx, "cue already playing, skipping", "cue", cueRef)
		return nil
	}

	cueCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- s.renderer.PlayPresentationCue(cueCtx, cueRef, timeout)
	}()

	s.cueCancel = cancel
	defer func() { s.cueCancel = nil }()

	events := s.events
	for {
		select {
		case err := <-done:
			if err != nil && ctx.Err() == nil &&
				(errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)) {
				return nil
			}
			return err
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				s.events = nil
				events = nil
				continue
			}
			s.handle(ctx, ev)
			if s.launchRequested {
				cancel()
			}
		}
	}
}

// CueActive reports whether a presentation cue is playing
func (s *service) CueActive() bool {
	return s.cueCancel != nil
}

// CancelCue stops the playing cue, if any
func (s *service) CancelCue() {
	if s.cueCancel != nil {
		s.cueCancel()
	}
}
