package input

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/hammer/internal/common/logging"
	"github.com/KirkDiggler/hammer/internal/models"
)

type fakeCues struct {
	active    bool
	cancelled int
}

func (c *fakeCues) CueActive() bool { return c.active }

func (c *fakeCues) CancelCue() {
	c.cancelled++
	c.active = false
}

type fakeTones struct {
	played []models.Tone
}

func (t *fakeTones) PlayTone(_ context.Context, kind models.Tone) error {
	t.played = append(t.played, kind)
	return nil
}

type fakeRecorder struct {
	outcomes []string
}

func (r *fakeRecorder) ButtonEvent(button, outcome string) {
	r.outcomes = append(r.outcomes, button+"/"+outcome)
}

type DispatcherTestSuite struct {
	suite.Suite
	ctx        context.Context
	phase      models.Phase
	calls      []models.Button
	cues       *fakeCues
	tones      *fakeTones
	recorder   *fakeRecorder
	dispatcher *Dispatcher
}

func (s *DispatcherTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.phase = models.PhaseEndInProgress
	s.calls = nil
	s.cues = &fakeCues{}
	s.tones = &fakeTones{}
	s.recorder = &fakeRecorder{}

	handlers := make(map[models.Button]Handler)
	for _, b := range models.Buttons {
		if b == models.ButtonRight {
			continue
		}
		handlers[b] = func(_ context.Context, ev models.Event) error {
			s.calls = append(s.calls, ev.Button)
			return nil
		}
	}

	d, err := NewDispatcher(&Config{
		Handlers: handlers,
		Ignored:  func() IgnoreSet { return IgnoreSetFor(s.phase) },
		Cues:     s.cues,
		Tones:    s.tones,
		Metrics:  s.recorder,
		Logger:   logging.Discard(),
	})
	s.Require().NoError(err)
	s.dispatcher = d
}

func TestDispatcherTestSuite(t *testing.T) {
	suite.Run(t, new(DispatcherTestSuite))
}

func (s *DispatcherTestSuite) press(b models.Button) Outcome {
	out, err := s.dispatcher.Dispatch(s.ctx, models.ButtonEvent(b, time.Now()))
	s.Require().NoError(err)
	return out
}

func (s *DispatcherTestSuite) TestNewRequiresIgnoreSupplier() {
	_, err := NewDispatcher(&Config{})
	s.Error(err)
}

func (s *DispatcherTestSuite) TestIgnoredEventsAreRecordedOnly() {
	s.Equal(OutcomeIgnored, s.press(models.ButtonLeft))
	s.Equal(OutcomeIgnored, s.press(models.ButtonConfirm))

	s.Empty(s.calls)
	s.Empty(s.tones.played)
	s.Equal(2, s.dispatcher.History().Len())
	s.Equal([]string{"left/ignored", "confirm/ignored"}, s.recorder.outcomes)
}

func (s *DispatcherTestSuite) TestDispatchFollowsPhase() {
	s.Equal(OutcomeDispatched, s.press(models.ButtonTeamA))

	s.phase = models.PhaseAwaitingCardLock
	s.Equal(OutcomeIgnored, s.press(models.ButtonTeamA))
	s.Equal(OutcomeDispatched, s.press(models.ButtonLeft))

	s.Equal([]models.Button{models.ButtonTeamA, models.ButtonLeft}, s.calls)
	s.Equal([]models.Tone{models.ToneAccepted, models.ToneAccepted}, s.tones.played)
}

func (s *DispatcherTestSuite) TestUnmappedButton() {
	s.phase = models.PhaseAwaitingCardLock
	s.Equal(OutcomeUnmapped, s.press(models.ButtonRight))
	s.Empty(s.calls)
}

func (s *DispatcherTestSuite) TestDoublePressCancelsActiveCue() {
	s.press(models.ButtonTeamB)
	s.cues.active = true

	s.Equal(OutcomeCueCancelled, s.press(models.ButtonTeamB))
	s.Equal(1, s.cues.cancelled)
	s.Equal([]models.Button{models.ButtonTeamB}, s.calls)

	// the pair is consumed, so the next press dispatches
	s.cues.active = true
	s.Equal(OutcomeDispatched, s.press(models.ButtonTeamB))
	s.Equal(1, s.cues.cancelled)
}

func (s *DispatcherTestSuite) TestDoublePressWithoutCueDispatchesTwice() {
	s.press(models.ButtonTeamA)
	s.press(models.ButtonTeamA)

	s.Equal(0, s.cues.cancelled)
	s.Len(s.calls, 2)
}

func (s *DispatcherTestSuite) TestDifferentButtonDoesNotCancel() {
	s.cues.active = true
	s.press(models.ButtonTeamA)
	s.Equal(OutcomeDispatched, s.press(models.ButtonTeamB))
	s.Equal(0, s.cues.cancelled)
}

func (s *DispatcherTestSuite) TestIgnoredPressDoesNotArmCancel() {
	s.cues.active = true
	s.press(models.ButtonConfirm)
	s.phase = models.PhaseAwaitingCardLock
	s.Equal(OutcomeDispatched, s.press(models.ButtonConfirm))
	s.Equal(0, s.cues.cancelled)
}

func (s *DispatcherTestSuite) TestHandlerErrorIsReturned() {
	boom := errors.New("boom")
	d, err := NewDispatcher(&Config{
		Handlers: map[models.Button]Handler{
			models.ButtonPower: func(context.Context, models.Event) error { return boom },
		},
		Ignored: func() IgnoreSet { return NewIgnoreSet() },
		Logger:  logging.Discard(),
	})
	s.Require().NoError(err)

	out, err := d.Dispatch(s.ctx, models.ButtonEvent(models.ButtonPower, time.Now()))
	s.Equal(OutcomeDispatched, out)
	s.ErrorIs(err, boom)
}

func (s *DispatcherTestSuite) TestHistoryKeepsLastTwenty() {
	for i := 0; i < 30; i++ {
		s.press(models.ButtonUp)
	}
	s.Equal(DefaultHistorySize, s.dispatcher.History().Len())
}
