package scoreboard

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/hammer/internal/repositories/scoreboard Repository

import (
	"context"

	"github.com/KirkDiggler/hammer/internal/models"
)

// Repository stores scoreboard snapshots for observers outside the process
type Repository interface {
	// SaveScoreboard stores a snapshot as the latest and notifies subscribers
	SaveScoreboard(ctx context.Context, input *SaveScoreboardInput) error

	// GetLatestScoreboard retrieves the most recently saved snapshot
	GetLatestScoreboard(ctx context.Context) (*models.Scoreboard, error)

	// GetScoreboard retrieves the last snapshot of a match
	GetScoreboard(ctx context.Context, input *GetScoreboardInput) (*models.Scoreboard, error)

	// ListRecentMatches returns match ids, newest first
	ListRecentMatches(ctx context.Context, input *ListRecentMatchesInput) (*ListRecentMatchesOutput, error)

	// Subscribe streams snapshots as they are saved until ctx is done
	Subscribe(ctx context.Context) (<-chan *models.Scoreboard, error)
}
