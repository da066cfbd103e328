package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/hammer/internal/common/logging"
	"github.com/KirkDiggler/hammer/internal/cues"
	"github.com/KirkDiggler/hammer/internal/models"
	"github.com/KirkDiggler/hammer/internal/repositories/player"
)

// Session collects badge scans for one team.
// Only the match sequencer calls it, so it carries no lock.
type Session struct {
	directory       player.Repository
	presenter       Presenter
	cueRunner       CueRunner
	fallback        *cues.Picker
	cueTimeout      time.Duration
	allowDuplicates bool
	logger          *slog.Logger

	active     bool
	team       models.TeamID
	required   int
	index      int
	accepted   int
	names      []string
	seen       map[string]struct{}
	cuePlaying bool
}

// New creates an idle registration session
func New(cfg *Config) (*Session, error) {
	if cfg == nil || cfg.Directory == nil {
		return nil, ErrNilDirectory
	}
	if cfg.Presenter == nil {
		return nil, ErrNilPresenter
	}
	if cfg.Cues == nil {
		return nil, ErrNilCueRunner
	}

	timeout := cfg.CueTimeout
	if timeout <= 0 {
		timeout = DefaultCueTimeout
	}
	fallback := cfg.Fallback
	if fallback == nil {
		fallback = cues.New(nil)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Session{
		directory:       cfg.Directory,
		presenter:       cfg.Presenter,
		cueRunner:       cfg.Cues,
		fallback:        fallback,
		cueTimeout:      timeout,
		allowDuplicates: cfg.AllowDuplicates,
		logger:          logger,
	}, nil
}

// Start begins collecting required scans for team, discarding any previous session
func (s *Session) Start(team models.TeamID, required int) error {
	if required < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidRequiredCount, required)
	}
	s.active = true
	s.team = team
	s.required = required
	s.index = 0
	s.accepted = 0
	s.names = make([]string, 0, required)
	s.seen = make(map[string]struct{}, required)
	s.cuePlaying = false
	return nil
}

// Active reports whether a session is collecting scans
func (s *Session) Active() bool {
	return s.active
}

// Team returns the team being registered
func (s *Session) Team() models.TeamID {
	return s.team
}

// IsComplete is true once the required number of scans were accepted
func (s *Session) IsComplete() bool {
	return s.active && s.accepted >= s.required
}

// CuePlaying reports whether an entry cue is suppressing scans
func (s *Session) CuePlaying() bool {
	return s.cuePlaying
}

// Names returns the names accepted so far
func (s *Session) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// End closes the session and returns the accepted names
func (s *Session) End() []string {
	names := s.Names()
	s.active = false
	s.names = nil
	s.seen = nil
	s.cuePlaying = false
	return names
}

// SubmitScan resolves a badge id and, when known, records the player and plays
// the entry cue. Scans arriving while the cue plays are suppressed.
func (s *Session) SubmitScan(ctx context.Context, badgeID string) (*ScanResult, error) {
	if !s.active {
		return nil, ErrNotStarted
	}
	if s.accepted >= s.required {
		return nil, ErrSessionComplete
	}
	if s.cuePlaying {
		return nil, ErrScanSuppressed
	}

	p, err := s.directory.GetPlayer(ctx, &player.GetPlayerInput{BadgeID: badgeID})
	if err != nil {
		if errors.Is(err, player.ErrPlayerNotFound) {
			s.showInvalid(ctx, badgeID)
			return nil, fmt.Errorf("%w: %q", ErrUnknownBadge, badgeID)
		}
		return nil, fmt.Errorf("failed to look up badge %q: %w", badgeID, err)
	}

	if _, dup := s.seen[badgeID]; dup && !s.allowDuplicates {
		s.showInvalid(ctx, badgeID)
		return nil, fmt.Errorf("%w: %q", ErrDuplicateBadge, badgeID)
	}

	idx := s.index
	if err := s.presenter.ShowScanResult(ctx, s.team, idx, p); err != nil {
		return nil, fmt.Errorf("failed to show scan for %s: %w", p.Name, err)
	}

	s.names = append(s.names, p.Name)
	s.seen[badgeID] = struct{}{}
	s.accepted++
	if s.index < s.required-1 {
		s.index++
	}

	s.logger.InfoContext(ctx, "player checked in",
		"team", s.team.String(),
		"name", p.Name,
		"skip", p.Skip,
		"accepted", s.accepted,
		"required", s.required,
	)

	cue := s.fallback.Resolve(p.CueRef)
	s.cuePlaying = true
	cueErr := s.cueRunner.RunCue(ctx, cue, s.cueTimeout)
	s.cuePlaying = false

	if cueErr != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logger.Log(ctx, logging.LevelCritical, "entry cue failed", "cue", cue, "error", cueErr)
	}

	return &ScanResult{
		Player:   p,
		Index:    idx,
		Accepted: s.accepted,
		Complete: s.accepted >= s.required,
	}, nil
}

func (s *Session) showInvalid(ctx context.Context, badgeID string) {
	s.logger.WarnContext(ctx, "invalid badge scan", "team", s.team.String(), "badge_id", badgeID)
	if err := s.presenter.ShowInvalidScan(ctx, s.team, badgeID); err != nil {
		s.logger.Log(ctx, logging.LevelCritical, "failed to show invalid scan", "error", err)
	}
}
