package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/hammer/internal/models"
	"github.com/KirkDiggler/hammer/internal/repositories/scoreboard"
	"github.com/bwmarrin/discordgo"
)

// DefaultRecentLimit caps /scoreboard recent
const DefaultRecentLimit = 5

// ScoreboardCommand handles the /scoreboard command
type ScoreboardCommand struct {
	BaseCommand
	latest      func() *models.Scoreboard
	scoreboards scoreboard.Repository
}

// NewScoreboardCommand creates a new scoreboard command handler.
// scoreboards may be nil, in which case only the live board is available.
func NewScoreboardCommand(latest func() *models.Scoreboard, scoreboards scoreboard.Repository) *ScoreboardCommand {
	return &ScoreboardCommand{
		BaseCommand: BaseCommand{
			Name:        "scoreboard",
			Description: "Curling scoreboard",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "show",
					Description: "Show the live scoreboard",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "recent",
					Description: "List recent matches",
				},
			},
		},
		latest:      latest,
		scoreboards: scoreboards,
	}
}

// Handle processes a Discord interaction for the scoreboard command
func (c *ScoreboardCommand) Handle(r Responder, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	switch data.Options[0].Name {
	case "show":
		return c.handleShow(r, i)
	case "recent":
		return c.handleRecent(r, i)
	default:
		return errors.New("unknown subcommand")
	}
}

func (c *ScoreboardCommand) handleShow(r Responder, i *discordgo.InteractionCreate) error {
	board := c.latest()
	if board == nil {
		return RespondWithEphemeralMessage(r, i, "The scoreboard has not started yet.")
	}
	return RespondWithEmbed(r, i, renderScoreboard(board))
}

func (c *ScoreboardCommand) handleRecent(r Responder, i *discordgo.InteractionCreate) error {
	if c.scoreboards == nil {
		return RespondWithEphemeralMessage(r, i, "Match history is not enabled.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	out, err := c.scoreboards.ListRecentMatches(ctx, &scoreboard.ListRecentMatchesInput{Limit: DefaultRecentLimit})
	if err != nil {
		return RespondWithError(r, i, "Could not load recent matches.")
	}
	if len(out.MatchIDs) == 0 {
		return RespondWithEphemeralMessage(r, i, "No recent matches.")
	}

	var lines []string
	for _, id := range out.MatchIDs {
		board, err := c.scoreboards.GetScoreboard(ctx, &scoreboard.GetScoreboardInput{MatchID: id})
		if err != nil {
			if errors.Is(err, scoreboard.ErrScoreboardNotFound) {
				continue
			}
			return RespondWithError(r, i, "Could not load recent matches.")
		}
		lines = append(lines, recentLine(board))
	}

	return RespondWithEmbed(r, i, &discordgo.MessageEmbed{
		Title:       "Recent matches",
		Description: strings.Join(lines, "\n"),
		Color:       colorIdle,
	})
}

func recentLine(board *models.Scoreboard) string {
	a, b := board.Teams[models.TeamA], board.Teams[models.TeamB]
	scoreA, _ := teamScore(board, models.TeamA)
	scoreB, _ := teamScore(board, models.TeamB)
	return fmt.Sprintf("**%s** %d - %d **%s** (%s)", a.Name, scoreA, scoreB, b.Name, strings.ReplaceAll(string(board.Phase), "_", " "))
}
