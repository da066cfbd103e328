package registration

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/hammer/internal/cues"
	"github.com/KirkDiggler/hammer/internal/models"
	"github.com/KirkDiggler/hammer/internal/repositories/player"
)

// DefaultRequiredCount is the number of players checked in per team
const DefaultRequiredCount = 4

// DefaultCueTimeout bounds how long an entry cue may suppress scanning
const DefaultCueTimeout = 30 * time.Second

// Presenter shows scan outcomes
type Presenter interface {
	ShowScanResult(ctx context.Context, team models.TeamID, index int, p *models.Player) error
	ShowInvalidScan(ctx context.Context, team models.TeamID, badgeID string) error
}

// CueRunner plays an entry cue and returns once it completes, is cancelled,
// or the timeout elapses
type CueRunner interface {
	RunCue(ctx context.Context, cueRef string, timeout time.Duration) error
}

// Config holds configuration for a registration session
type Config struct {
	Directory player.Repository
	Presenter Presenter
	Cues      CueRunner

	// Fallback resolves entries without a cue; optional
	Fallback *cues.Picker

	// CueTimeout is the maximum time a cue suppresses further scans
	CueTimeout time.Duration

	// AllowDuplicates accepts the same badge more than once per session
	AllowDuplicates bool

	Logger *slog.Logger
}

// ScanResult describes an accepted scan
type ScanResult struct {
	Player *models.Player

	// Index is the indicator slot the name was drawn into
	Index int

	// Accepted is the number of scans accepted so far
	Accepted int

	Complete bool
}
