package player

import "github.com/KirkDiggler/hammer/internal/models"

// SavePlayerInput contains parameters for saving a directory entry
type SavePlayerInput struct {
	Player *models.Player
}

// GetPlayerInput contains parameters for a badge lookup
type GetPlayerInput struct {
	BadgeID string
}

// ListPlayersOutput contains every directory entry
type ListPlayersOutput struct {
	Players []*models.Player
}

// ImportDirectoryInput contains a batch of entries to store
type ImportDirectoryInput struct {
	Players []*models.Player

	// Replace drops entries that are not part of this batch
	Replace bool
}

// ImportDirectoryOutput reports what an import changed
type ImportDirectoryOutput struct {
	Imported int
	Removed  int
}
