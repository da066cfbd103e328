package remote

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/hammer/internal/common/clock"
	"github.com/KirkDiggler/hammer/internal/models"
)

// BadgePrefix marks a badge read on a mixed input line, e.g. "badge:04a1b2"
const BadgePrefix = "badge:"

// Config holds configuration for a line source
type Config struct {
	// Reader supplies input lines
	Reader io.Reader

	// Keys defaults to DefaultKeyMap
	Keys KeyMap

	// BadgesOnly treats every non-empty line as a badge id, as a keyboard
	// wedge badge reader types them
	BadgesOnly bool

	// Badges filters badge reads; optional
	Badges *BadgeFilter

	// Divert may claim a line before it is parsed; optional
	Divert func(line string) bool

	Clock  clock.Clock
	Logger *slog.Logger
}

// Source turns input lines into events
type Source struct {
	reader     io.Reader
	keys       KeyMap
	badgesOnly bool
	badges     *BadgeFilter
	divert     func(string) bool
	clock      clock.Clock
	logger     *slog.Logger
}

// NewSource creates a line source
func NewSource(cfg *Config) (*Source, error) {
	if cfg == nil || cfg.Reader == nil {
		return nil, errors.New("reader cannot be nil")
	}

	s := &Source{
		reader:     cfg.Reader,
		keys:       cfg.Keys,
		badgesOnly: cfg.BadgesOnly,
		badges:     cfg.Badges,
		divert:     cfg.Divert,
		clock:      cfg.Clock,
		logger:     cfg.Logger,
	}
	if s.keys == nil {
		s.keys = DefaultKeyMap()
	}
	if s.clock == nil {
		s.clock = clock.New()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s, nil
}

// Run reads lines and sends their events on out until the reader is
// exhausted or ctx is done. A blocked reader is abandoned on cancel.
func (s *Source) Run(ctx context.Context, out chan<- models.Event) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(s.reader)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			s.logger.InfoContext(ctx, "input closed")
			return nil
		case line := <-lines:
			if s.divert != nil && s.divert(line) {
				continue
			}
			for _, ev := range s.parse(ctx, line) {
				select {
				case out <- ev:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}
	}
}

func (s *Source) parse(ctx context.Context, line string) []models.Event {
	now := s.clock.Now()

	if s.badgesOnly {
		id := strings.TrimSpace(line)
		if id == "" || !s.allowBadge(ctx, id) {
			return nil
		}
		return []models.Event{models.BadgeEvent(id, now)}
	}

	var events []models.Event
	for _, tok := range tokens(line) {
		if id, ok := strings.CutPrefix(tok, BadgePrefix); ok {
			if id != "" && s.allowBadge(ctx, id) {
				events = append(events, models.BadgeEvent(id, now))
			}
			continue
		}
		b, ok := s.keys.Lookup(tok)
		if !ok {
			s.logger.DebugContext(ctx, "unbound key", "token", tok)
			continue
		}
		events = append(events, models.ButtonEvent(b, now))
	}
	return events
}

func (s *Source) allowBadge(ctx context.Context, id string) bool {
	if s.badges == nil || s.badges.Allow(id) {
		return true
	}
	s.logger.DebugContext(ctx, "badge re-read suppressed", "badge_id", id)
	return false
}
