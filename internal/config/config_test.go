package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 8, cfg.DefaultEnds)
	assert.Equal(t, 4, cfg.PlayersPerTeam)
	assert.Equal(t, 30*time.Second, cfg.CueTimeout)
	assert.Equal(t, 5*time.Second, cfg.BadgeCooldown)
	assert.Equal(t, [2]string{"Team A", "Team B"}, cfg.TeamNamePair())
	assert.False(t, cfg.DiscordEnabled())
}

func TestLoadReadsEnvFileWithoutOverriding(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HAMMER_DEFAULT_ENDS=6\nHAMMER_TEAM_NAMES=Rockets\nREDIS_DB=3\n"), 0o600))
	t.Setenv("REDIS_DB", "1")
	t.Cleanup(func() {
		os.Unsetenv("HAMMER_DEFAULT_ENDS")
		os.Unsetenv("HAMMER_TEAM_NAMES")
	})

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.DefaultEnds)
	assert.Equal(t, 1, cfg.RedisDB)
	assert.Equal(t, [2]string{"Rockets", ""}, cfg.TeamNamePair())
}

func TestLoadRejectsInvalidEnds(t *testing.T) {
	t.Setenv("HAMMER_DEFAULT_ENDS", "11")
	_, err := Load("")
	assert.ErrorContains(t, err, "HAMMER_DEFAULT_ENDS")
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("HAMMER_CUE_TIMEOUT", "soon")
	_, err := Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{DefaultEnds: 8, PlayersPerTeam: 4, TeamColumnCapacity: 8}
	}

	cfg := base()
	assert.NoError(t, cfg.Validate())

	cfg = base()
	cfg.PlayersPerTeam = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.TeamNames = []string{"a", "b", "c"}
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.DiscordToken = "token"
	assert.Error(t, cfg.Validate())

	cfg.DiscordChannelID = "channel"
	assert.NoError(t, cfg.Validate())
	assert.True(t, cfg.DiscordEnabled())
}
