package player

import (
	"context"
	"testing"

	"github.com/KirkDiggler/hammer/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidatesConfig() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetPlayer() {
	err := s.repo.SavePlayer(s.ctx, &SavePlayerInput{
		Player: &models.Player{
			BadgeID: "e4bce79c",
			Name:    "David Gersenson",
			Skip:    true,
			CueRef:  "Gersenson_David.mp4",
		},
	})
	s.Require().NoError(err)

	got, err := s.repo.GetPlayer(s.ctx, &GetPlayerInput{BadgeID: "e4bce79c"})
	s.Require().NoError(err)
	s.Equal("David Gersenson", got.Name)
	s.True(got.Skip)
	s.Equal("Gersenson_David.mp4", got.CueRef)

	s.True(s.mr.Exists("badge:e4bce79c"))
}

func (s *RedisRepositoryTestSuite) TestGetPlayerFailsClosed() {
	_, err := s.repo.GetPlayer(s.ctx, &GetPlayerInput{BadgeID: "nope"})
	s.ErrorIs(err, ErrPlayerNotFound)

	_, err = s.repo.GetPlayer(s.ctx, &GetPlayerInput{})
	s.ErrorIs(err, ErrPlayerNotFound)

	// lookups are exact
	s.Require().NoError(s.repo.SavePlayer(s.ctx, &SavePlayerInput{
		Player: &models.Player{BadgeID: "ABC", Name: "Upper"},
	}))
	_, err = s.repo.GetPlayer(s.ctx, &GetPlayerInput{BadgeID: "abc"})
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *RedisRepositoryTestSuite) TestSavePlayerRequiresBadgeID() {
	err := s.repo.SavePlayer(s.ctx, &SavePlayerInput{Player: &models.Player{Name: "No Badge"}})
	s.Error(err)

	err = s.repo.SavePlayer(s.ctx, nil)
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestImportAndListPlayers() {
	out, err := s.repo.ImportDirectory(s.ctx, &ImportDirectoryInput{
		Players: []*models.Player{
			{BadgeID: "d7acdcef", Name: "Dwight Schrute"},
			{BadgeID: "1ab03e86", Name: "Pam Beesley"},
		},
	})
	s.Require().NoError(err)
	s.Equal(2, out.Imported)
	s.Equal(0, out.Removed)

	list, err := s.repo.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list.Players, 2)
	s.Equal("1ab03e86", list.Players[0].BadgeID)
	s.Equal("d7acdcef", list.Players[1].BadgeID)
}

func (s *RedisRepositoryTestSuite) TestImportReplaceRemovesStaleEntries() {
	s.Require().NoError(s.repo.SavePlayer(s.ctx, &SavePlayerInput{
		Player: &models.Player{BadgeID: "old", Name: "Gone Soon"},
	}))

	out, err := s.repo.ImportDirectory(s.ctx, &ImportDirectoryInput{
		Players: []*models.Player{{BadgeID: "b0e751fd", Name: "Jim Halpert"}},
		Replace: true,
	})
	s.Require().NoError(err)
	s.Equal(1, out.Removed)

	_, err = s.repo.GetPlayer(s.ctx, &GetPlayerInput{BadgeID: "old"})
	s.ErrorIs(err, ErrPlayerNotFound)

	list, err := s.repo.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(list.Players, 1)
}

func (s *RedisRepositoryTestSuite) TestListPlayersSkipsDanglingIndex() {
	s.mr.SAdd("badges", "ghost")
	s.Require().NoError(s.repo.SavePlayer(s.ctx, &SavePlayerInput{
		Player: &models.Player{BadgeID: "real", Name: "Real Person"},
	}))

	list, err := s.repo.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list.Players, 1)
	s.Equal("real", list.Players[0].BadgeID)
}

func (s *RedisRepositoryTestSuite) TestListPlayersEmpty() {
	list, err := s.repo.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Empty(list.Players)
}
