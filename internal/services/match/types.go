package match

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/hammer/internal/common/clock"
	"github.com/KirkDiggler/hammer/internal/common/uuid"
	"github.com/KirkDiggler/hammer/internal/cues"
	"github.com/KirkDiggler/hammer/internal/metrics"
	"github.com/KirkDiggler/hammer/internal/models"
	"github.com/KirkDiggler/hammer/internal/repositories/player"
	"github.com/KirkDiggler/hammer/internal/services/messaging"
)

const (
	// DefaultEnds is the end count selected when the launch sequence starts
	DefaultEnds = 8

	// DefaultPlayersPerTeam is the number of badge scans per team
	DefaultPlayersPerTeam = 4

	// DefaultCueTimeout bounds every presentation cue
	DefaultCueTimeout = 30 * time.Second
)

// DefaultTeamNames are used until the operator names the teams
var DefaultTeamNames = [2]string{"Team A", "Team B"}

// Config holds configuration for the match service
type Config struct {
	// Events is the single ordered input channel; producers only send
	Events <-chan models.Event

	Renderer   Renderer
	Publishers []Publisher
	Directory  player.Repository

	// Messaging is optional; without it no announcements are made
	Messaging messaging.Service

	// Fallback picks entry cues for players without one; optional
	Fallback *cues.Picker

	// Clock and UUID default to the system implementations
	Clock clock.Clock
	UUID  uuid.UUID

	// Metrics is optional
	Metrics *metrics.Metrics

	Logger *slog.Logger

	DefaultEnds         int
	PlayersPerTeam      int
	TeamColumnCapacity  int
	CueTimeout          time.Duration
	AllowDuplicateScans bool
	TeamNames           [2]string

	// HistorySize bounds the input history kept for diagnostics
	HistorySize int

	// HammerCue and GameOverCue are optional cue references
	HammerCue   string
	GameOverCue string
}
