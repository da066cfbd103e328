package scoreboard

import "github.com/KirkDiggler/hammer/internal/models"

type SaveScoreboardInput struct {
	Scoreboard *models.Scoreboard
}

type GetScoreboardInput struct {
	MatchID string
}

type ListRecentMatchesInput struct {
	// Limit caps the number of ids returned; zero returns all
	Limit int
}

type ListRecentMatchesOutput struct {
	MatchIDs []string
}
