package match

import (
	"context"
	"time"

	"github.com/KirkDiggler/hammer/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_match.go github.com/KirkDiggler/hammer/internal/services/match Renderer,Publisher

// Service runs the scoreboard
type Service interface {
	// Run drains events and sequences matches until ctx is done
	Run(ctx context.Context) error

	// History returns the most recent input events, oldest first
	History() []models.Event
}

// Renderer is the presentation collaborator. Every call is made from the
// sequencer goroutine except PlayPresentationCue, which runs on its own
// goroutine and must return once ctx is done.
type Renderer interface {
	DrawCard(ctx context.Context, rank int, appearance models.Appearance, slot models.Slot) error
	DrawStoneCount(ctx context.Context, team models.TeamID, count int) error
	DrawHammer(ctx context.Context, team models.TeamID) error
	ClearHammer(ctx context.Context) error

	// PromptTeamName blocks for operator input; empty input keeps current
	PromptTeamName(ctx context.Context, team models.TeamID, current string) (string, error)
	ShowTeamName(ctx context.Context, team models.TeamID, name string) error

	PlayPresentationCue(ctx context.Context, cueRef string, timeout time.Duration) error
	PlayTone(ctx context.Context, kind models.Tone) error

	ShowScanResult(ctx context.Context, team models.TeamID, index int, p *models.Player) error
	ShowInvalidScan(ctx context.Context, team models.TeamID, badgeID string) error

	SetPointsEntryMode(ctx context.Context, on bool) error
	Announce(ctx context.Context, message string) error
}

// Publisher observes scoreboard snapshots. Failures never affect the match.
type Publisher interface {
	Publish(ctx context.Context, board *models.Scoreboard) error
}
