package player

import (
	"context"

	"github.com/KirkDiggler/hammer/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/hammer/internal/repositories/player Repository

// Repository is the badge directory: badge id -> player entry.
// The scoreboard only reads it; writes come from the directory import command.
type Repository interface {
	// SavePlayer persists a single directory entry
	SavePlayer(ctx context.Context, input *SavePlayerInput) error

	// GetPlayer looks up a badge id exactly; unknown ids return ErrPlayerNotFound
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// ListPlayers returns every entry ordered by badge id
	ListPlayers(ctx context.Context) (*ListPlayersOutput, error)

	// ImportDirectory stores a batch of entries, optionally replacing the directory
	ImportDirectory(ctx context.Context, input *ImportDirectoryInput) (*ImportDirectoryOutput, error)
}
