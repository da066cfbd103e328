package discord

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/hammer/internal/models"
	"github.com/KirkDiggler/hammer/internal/repositories/scoreboard"
	"github.com/KirkDiggler/hammer/internal/repositories/scoreboard/mocks"
)

func commandInteraction(name, sub string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name: name,
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{Name: sub, Type: discordgo.ApplicationCommandOptionSubCommand},
				},
			},
		},
	}
}

type ScoreboardCommandTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	repo      *mocks.MockRepository
	responder *fakeSession
	latest    *models.Scoreboard
	cmd       *ScoreboardCommand
}

func (s *ScoreboardCommandTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = mocks.NewMockRepository(s.ctrl)
	s.responder = newFakeSession()
	s.latest = nil
	s.cmd = NewScoreboardCommand(func() *models.Scoreboard { return s.latest }, s.repo)
}

func (s *ScoreboardCommandTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ScoreboardCommandTestSuite) response() *discordgo.InteractionResponseData {
	s.Require().Len(s.responder.responses, 1)
	return s.responder.responses[0].Data
}

func (s *ScoreboardCommandTestSuite) TestCommandDefinition() {
	def := s.cmd.GetCommand()
	s.Equal("scoreboard", def.Name)
	s.Len(def.Options, 2)
}

func (s *ScoreboardCommandTestSuite) TestShowBeforeFirstSnapshot() {
	s.Require().NoError(s.cmd.Handle(s.responder, commandInteraction("scoreboard", "show")))
	s.Equal("The scoreboard has not started yet.", s.response().Content)
	s.Equal(discordgo.MessageFlagsEphemeral, s.response().Flags)
}

func (s *ScoreboardCommandTestSuite) TestShowRendersLatest() {
	s.latest = midMatchBoard()
	s.Require().NoError(s.cmd.Handle(s.responder, commandInteraction("scoreboard", "show")))
	s.Equal("Rockets vs Team B", s.response().Embeds[0].Title)
}

func (s *ScoreboardCommandTestSuite) TestRecentListsMatches() {
	board := midMatchBoard()
	board.Phase = models.PhaseGameOver

	s.repo.EXPECT().ListRecentMatches(gomock.Any(), &scoreboard.ListRecentMatchesInput{Limit: DefaultRecentLimit}).
		Return(&scoreboard.ListRecentMatchesOutput{MatchIDs: []string{"match-1", "gone"}}, nil)
	s.repo.EXPECT().GetScoreboard(gomock.Any(), &scoreboard.GetScoreboardInput{MatchID: "match-1"}).Return(board, nil)
	s.repo.EXPECT().GetScoreboard(gomock.Any(), &scoreboard.GetScoreboardInput{MatchID: "gone"}).
		Return(nil, scoreboard.ErrScoreboardNotFound)

	s.Require().NoError(s.cmd.Handle(s.responder, commandInteraction("scoreboard", "recent")))
	s.Equal("**Rockets** 3 - 0 **Team B** (game over)", s.response().Embeds[0].Description)
}

func (s *ScoreboardCommandTestSuite) TestRecentWithNoMatches() {
	s.repo.EXPECT().ListRecentMatches(gomock.Any(), gomock.Any()).Return(&scoreboard.ListRecentMatchesOutput{}, nil)

	s.Require().NoError(s.cmd.Handle(s.responder, commandInteraction("scoreboard", "recent")))
	s.Equal("No recent matches.", s.response().Content)
}

func (s *ScoreboardCommandTestSuite) TestRecentRepositoryError() {
	s.repo.EXPECT().ListRecentMatches(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))

	s.Require().NoError(s.cmd.Handle(s.responder, commandInteraction("scoreboard", "recent")))
	s.Equal("Error", s.response().Embeds[0].Title)
}

func (s *ScoreboardCommandTestSuite) TestRecentWithoutRepository() {
	s.cmd = NewScoreboardCommand(func() *models.Scoreboard { return nil }, nil)
	s.Require().NoError(s.cmd.Handle(s.responder, commandInteraction("scoreboard", "recent")))
	s.Equal("Match history is not enabled.", s.response().Content)
}

func (s *ScoreboardCommandTestSuite) TestUnknownSubcommand() {
	s.Error(s.cmd.Handle(s.responder, commandInteraction("scoreboard", "abandon")))
}

func TestScoreboardCommandSuite(t *testing.T) {
	suite.Run(t, new(ScoreboardCommandTestSuite))
}
