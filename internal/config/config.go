package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the process configuration, read from the environment
type Config struct {
	LogLevel  string `env:"HAMMER_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"HAMMER_LOG_FORMAT" envDefault:"text"`

	// Redis holds the badge directory and the scoreboard snapshots
	RedisAddr       string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB" envDefault:"0"`
	SnapshotTTL     time.Duration `env:"HAMMER_SNAPSHOT_TTL" envDefault:"24h"`
	SnapshotChannel string        `env:"HAMMER_SNAPSHOT_CHANNEL" envDefault:"scoreboard:updates"`

	// Discord mirror, enabled when a token and channel are set
	DiscordToken        string        `env:"DISCORD_TOKEN"`
	DiscordChannelID    string        `env:"DISCORD_CHANNEL_ID"`
	ApplicationID       string        `env:"APPLICATION_ID"`
	GuildID             string        `env:"GUILD_ID"`
	DiscordEditInterval time.Duration `env:"HAMMER_DISCORD_EDIT_INTERVAL" envDefault:"2s"`

	// MetricsAddr serves /metrics when set, e.g. ":9090"
	MetricsAddr string `env:"HAMMER_METRICS_ADDR"`

	DefaultEnds         int           `env:"HAMMER_DEFAULT_ENDS" envDefault:"8"`
	PlayersPerTeam      int           `env:"HAMMER_PLAYERS_PER_TEAM" envDefault:"4"`
	TeamColumnCapacity  int           `env:"HAMMER_TEAM_COLUMN_CAPACITY" envDefault:"8"`
	TeamNames           []string      `env:"HAMMER_TEAM_NAMES" envSeparator:"," envDefault:"Team A,Team B"`
	AllowDuplicateScans bool          `env:"HAMMER_ALLOW_DUPLICATE_SCANS"`
	EventBuffer         int           `env:"HAMMER_EVENT_BUFFER" envDefault:"64"`
	HistorySize         int           `env:"HAMMER_HISTORY_SIZE" envDefault:"20"`
	MessageSeed         int64         `env:"HAMMER_MESSAGE_SEED"`
	CueTimeout          time.Duration `env:"HAMMER_CUE_TIMEOUT" envDefault:"30s"`
	CueDuration         time.Duration `env:"HAMMER_CUE_DURATION" envDefault:"3s"`
	CueSeed             int64         `env:"HAMMER_CUE_SEED"`
	FallbackCues        []string      `env:"HAMMER_FALLBACK_CUES" envSeparator:","`
	HammerCue           string        `env:"HAMMER_HAMMER_CUE"`
	GameOverCue         string        `env:"HAMMER_GAME_OVER_CUE"`

	// RemoteKeys overrides key bindings, e.g. "p=power,x=confirm"
	RemoteKeys string `env:"HAMMER_REMOTE_KEYS"`

	// BadgeDevice is a line-oriented badge reader; empty reads badges from the console
	BadgeDevice   string        `env:"HAMMER_BADGE_DEVICE"`
	BadgeCooldown time.Duration `env:"HAMMER_BADGE_COOLDOWN" envDefault:"5s"`
	Bell          bool          `env:"HAMMER_BELL"`
}

// Load reads envFile, when it exists, into the environment and parses the
// configuration. Variables already set win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the match cannot run with
func (c *Config) Validate() error {
	if c.DefaultEnds < 1 || c.DefaultEnds > 10 {
		return fmt.Errorf("HAMMER_DEFAULT_ENDS must be in 1..10, got %d", c.DefaultEnds)
	}
	if c.PlayersPerTeam < 1 {
		return fmt.Errorf("HAMMER_PLAYERS_PER_TEAM must be positive, got %d", c.PlayersPerTeam)
	}
	if c.TeamColumnCapacity < 1 {
		return fmt.Errorf("HAMMER_TEAM_COLUMN_CAPACITY must be positive, got %d", c.TeamColumnCapacity)
	}
	if len(c.TeamNames) > 2 {
		return fmt.Errorf("HAMMER_TEAM_NAMES takes at most two names, got %d", len(c.TeamNames))
	}
	if c.EventBuffer < 0 {
		return fmt.Errorf("HAMMER_EVENT_BUFFER cannot be negative, got %d", c.EventBuffer)
	}
	if (c.DiscordToken == "") != (c.DiscordChannelID == "") {
		return errors.New("DISCORD_TOKEN and DISCORD_CHANNEL_ID must be set together")
	}
	return nil
}

// DiscordEnabled reports whether the Discord mirror is configured
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != "" && c.DiscordChannelID != ""
}

// TeamNamePair returns the configured names in team order; missing names are empty
func (c *Config) TeamNamePair() [2]string {
	var names [2]string
	copy(names[:], c.TeamNames)
	return names
}
