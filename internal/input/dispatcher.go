package input

import (
	"context"
	"errors"
	"log/slog"

	"github.com/KirkDiggler/hammer/internal/common/logging"
	"github.com/KirkDiggler/hammer/internal/models"
)

// Outcome is what Dispatch did with an event
type Outcome string

const (
	OutcomeDispatched   Outcome = "dispatched"
	OutcomeIgnored      Outcome = "ignored"
	OutcomeCueCancelled Outcome = "cue_cancelled"
	OutcomeUnmapped     Outcome = "unmapped"
)

// Handler reacts to a logical button press
type Handler func(ctx context.Context, ev models.Event) error

// CueController exposes the presentation cue currently playing, if any
type CueController interface {
	CueActive() bool
	CancelCue()
}

// Toner plays short feedback sounds
type Toner interface {
	PlayTone(ctx context.Context, kind models.Tone) error
}

// Recorder receives one call per dispatched event
type Recorder interface {
	ButtonEvent(button, outcome string)
}

// Config holds configuration for the dispatcher
type Config struct {
	// Handlers maps each logical button to its action
	Handlers map[models.Button]Handler

	// Ignored returns the ignore-set of the current phase
	Ignored func() IgnoreSet

	// Cues is optional; without it double presses dispatch normally
	Cues CueController

	// Tones is optional
	Tones Toner

	// Metrics is optional
	Metrics Recorder

	// HistorySize defaults to DefaultHistorySize
	HistorySize int

	Logger *slog.Logger
}

// Dispatcher turns button events into handler calls, one at a time.
// It is driven only by the match sequencer.
type Dispatcher struct {
	handlers map[models.Button]Handler
	ignored  func() IgnoreSet
	cues     CueController
	tones    Toner
	metrics  Recorder
	history  *History
	logger   *slog.Logger

	previous    models.Button
	hasPrevious bool
}

// NewDispatcher creates a dispatcher
func NewDispatcher(cfg *Config) (*Dispatcher, error) {
	if cfg == nil || cfg.Ignored == nil {
		return nil, errors.New("ignore-set supplier cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	handlers := make(map[models.Button]Handler, len(cfg.Handlers))
	for b, h := range cfg.Handlers {
		handlers[b] = h
	}

	return &Dispatcher{
		handlers: handlers,
		ignored:  cfg.Ignored,
		cues:     cfg.Cues,
		tones:    cfg.Tones,
		metrics:  cfg.Metrics,
		history:  NewHistory(cfg.HistorySize),
		logger:   logger,
	}, nil
}

// History returns the recent event ring
func (d *Dispatcher) History() *History {
	return d.history
}

// Dispatch records ev and, unless the current phase ignores it, runs its handler.
// A second press of the same button while a cue plays cancels the cue instead.
func (d *Dispatcher) Dispatch(ctx context.Context, ev models.Event) (Outcome, error) {
	d.history.Push(ev)

	if d.ignored().Contains(ev.Button) {
		d.logger.DebugContext(ctx, "button ignored", "button", string(ev.Button))
		d.record(ev, OutcomeIgnored)
		return OutcomeIgnored, nil
	}

	handler, ok := d.handlers[ev.Button]
	if !ok {
		d.logger.WarnContext(ctx, "no handler for button", "button", string(ev.Button))
		d.record(ev, OutcomeUnmapped)
		return OutcomeUnmapped, nil
	}

	if d.tones != nil {
		if err := d.tones.PlayTone(ctx, models.ToneAccepted); err != nil {
			d.logger.Log(ctx, logging.LevelCritical, "failed to play tone", "error", err)
		}
	}

	if d.cues != nil && d.cues.CueActive() && d.hasPrevious && d.previous == ev.Button {
		d.logger.InfoContext(ctx, "button pressed twice, cancelling cue", "button", string(ev.Button))
		d.cues.CancelCue()
		d.hasPrevious = false
		d.record(ev, OutcomeCueCancelled)
		return OutcomeCueCancelled, nil
	}

	// remembered before the handler runs so a press made during a cue the
	// handler starts counts as the second of a pair
	d.previous = ev.Button
	d.hasPrevious = true
	d.record(ev, OutcomeDispatched)
	return OutcomeDispatched, handler(ctx, ev)
}

func (d *Dispatcher) record(ev models.Event, outcome Outcome) {
	if d.metrics != nil {
		d.metrics.ButtonEvent(string(ev.Button), string(outcome))
	}
}

// Record adds an event that bypasses dispatch, such as a badge read, to the history
func (d *Dispatcher) Record(ev models.Event) {
	d.history.Push(ev)
}
