package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/KirkDiggler/hammer/internal/common/clock"
	"github.com/KirkDiggler/hammer/internal/common/logging"
	"github.com/KirkDiggler/hammer/internal/config"
	"github.com/KirkDiggler/hammer/internal/cues"
	"github.com/KirkDiggler/hammer/internal/handlers/console"
	"github.com/KirkDiggler/hammer/internal/handlers/discord"
	"github.com/KirkDiggler/hammer/internal/handlers/remote"
	"github.com/KirkDiggler/hammer/internal/metrics"
	"github.com/KirkDiggler/hammer/internal/models"
	"github.com/KirkDiggler/hammer/internal/repositories/player"
	"github.com/KirkDiggler/hammer/internal/repositories/scoreboard"
	"github.com/KirkDiggler/hammer/internal/services/match"
	"github.com/KirkDiggler/hammer/internal/services/messaging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "scoreboard",
		Usage: "Curling scoreboard driven by a remote and a badge reader",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
				Usage: "dotenv file loaded before the environment is read",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "Run the scoreboard",
				Action: runScoreboard,
			},
			{
				Name:  "directory",
				Usage: "Manage the badge directory",
				Subcommands: []*cli.Command{
					{
						Name:      "import",
						Usage:     "Import players from a YAML or JSON file",
						ArgsUsage: "<file>",
						Flags: []cli.Flag{
							&cli.BoolFlag{
								Name:  "replace",
								Usage: "remove badges missing from the file",
							},
						},
						Action: importDirectory,
					},
					{
						Name:      "lookup",
						Usage:     "Show the directory entry for a badge",
						ArgsUsage: "<badge>",
						Action:    lookupBadge,
					},
					{
						Name:   "list",
						Usage:  "List every directory entry",
						Action: listDirectory,
					},
				},
			},
			{
				Name:   "watch",
				Usage:  "Print scoreboard snapshots as they are saved",
				Action: watchScoreboard,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// setup loads configuration and connects to Redis
func setup(c *cli.Context) (*config.Config, *slog.Logger, *redis.Client, error) {
	cfg, err := config.Load(c.String("env-file"))
	if err != nil {
		return nil, nil, nil, err
	}

	logger := logging.New(&logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(c.Context, 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, nil, nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddr, err)
	}

	return cfg, logger, redisClient, nil
}

func runScoreboard(c *cli.Context) error {
	cfg, logger, redisClient, err := setup(c)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	playerRepo, err := player.NewRedis(&player.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create player repository: %w", err)
	}

	scoreboardRepo, err := scoreboard.NewRedis(&scoreboard.Config{
		RedisClient: redisClient,
		Channel:     cfg.SnapshotChannel,
		TTL:         cfg.SnapshotTTL,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create scoreboard repository: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	defer wg.Wait()
	defer cancel()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	m := metrics.New(registry)
	if cfg.MetricsAddr != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := m.Serve(ctx, cfg.MetricsAddr, logger); err != nil {
				logger.ErrorContext(ctx, "metrics server stopped", "error", err)
			}
		}()
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		Seed: cfg.MessageSeed,
	})
	if err != nil {
		return fmt.Errorf("failed to create messaging service: %w", err)
	}

	clk := clock.New()
	screen := console.New(&console.Config{
		Out:         os.Stdout,
		CueDuration: cfg.CueDuration,
		Bell:        cfg.Bell,
		Clock:       clk,
		Logger:      logger,
	})

	keys := remote.DefaultKeyMap()
	if cfg.RemoteKeys != "" {
		keys, err = remote.ParseKeyMap(cfg.RemoteKeys)
		if err != nil {
			return err
		}
	}
	badges := remote.NewBadgeFilter(cfg.BadgeCooldown, clk)

	events := make(chan models.Event, cfg.EventBuffer)

	keyboard, err := remote.NewSource(&remote.Config{
		Reader: os.Stdin,
		Keys:   keys,
		Badges: badges,
		Divert: screen.Divert,
		Clock:  clk,
		Logger: logger.With("source", "console"),
	})
	if err != nil {
		return err
	}
	runSource(ctx, &wg, logger, keyboard, events)

	if cfg.BadgeDevice != "" {
		device, err := os.Open(cfg.BadgeDevice)
		if err != nil {
			return fmt.Errorf("failed to open badge reader: %w", err)
		}
		defer device.Close()

		reader, err := remote.NewSource(&remote.Config{
			Reader:     device,
			BadgesOnly: true,
			Badges:     badges,
			Clock:      clk,
			Logger:     logger.With("source", cfg.BadgeDevice),
		})
		if err != nil {
			return err
		}
		runSource(ctx, &wg, logger, reader, events)
	}

	publishers := []match.Publisher{scoreboardRepo}

	if cfg.DiscordEnabled() {
		mirror, err := discord.New(&discord.Config{
			Token:         cfg.DiscordToken,
			ChannelID:     cfg.DiscordChannelID,
			ApplicationID: cfg.ApplicationID,
			GuildID:       cfg.GuildID,
			Scoreboards:   scoreboardRepo,
			EditInterval:  cfg.DiscordEditInterval,
			Logger:        logger.With("component", "discord"),
		})
		if err != nil {
			return fmt.Errorf("failed to create discord mirror: %w", err)
		}
		if err := mirror.Start(); err != nil {
			return fmt.Errorf("failed to start discord mirror: %w", err)
		}
		defer func() {
			if err := mirror.Stop(); err != nil {
				logger.Error("failed to stop discord mirror", "error", err)
			}
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := mirror.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.ErrorContext(ctx, "discord mirror stopped", "error", err)
			}
		}()
		publishers = append(publishers, mirror)
	}

	matchSvc, err := match.NewService(&match.Config{
		Events:              events,
		Renderer:            screen,
		Publishers:          publishers,
		Directory:           playerRepo,
		Messaging:           messagingSvc,
		Fallback:            cues.New(&cues.Config{Seed: cfg.CueSeed, Pool: cfg.FallbackCues}),
		Clock:               clk,
		Metrics:             m,
		Logger:              logger,
		DefaultEnds:         cfg.DefaultEnds,
		PlayersPerTeam:      cfg.PlayersPerTeam,
		TeamColumnCapacity:  cfg.TeamColumnCapacity,
		CueTimeout:          cfg.CueTimeout,
		AllowDuplicateScans: cfg.AllowDuplicateScans,
		TeamNames:           cfg.TeamNamePair(),
		HistorySize:         cfg.HistorySize,
		HammerCue:           cfg.HammerCue,
		GameOverCue:         cfg.GameOverCue,
	})
	if err != nil {
		return fmt.Errorf("failed to create match service: %w", err)
	}

	logger.InfoContext(ctx, "scoreboard is running, press power to start")

	err = matchSvc.Run(ctx)

	var recent []string
	for _, ev := range matchSvc.History() {
		if ev.Kind == models.EventBadge {
			recent = append(recent, "badge")
			continue
		}
		recent = append(recent, string(ev.Button))
	}
	logger.Info("shutting down", "recent_input", strings.Join(recent, " "))

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func runSource(ctx context.Context, wg *sync.WaitGroup, logger *slog.Logger, src *remote.Source, events chan<- models.Event) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := src.Run(ctx, events); err != nil && !errors.Is(err, context.Canceled) {
			logger.ErrorContext(ctx, "input source stopped", "error", err)
		}
	}()
}

func importDirectory(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return errors.New("a directory file is required")
	}

	_, logger, redisClient, err := setup(c)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	players, err := player.LoadFile(path)
	if err != nil {
		return err
	}

	repo, err := player.NewRedis(&player.Config{RedisClient: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create player repository: %w", err)
	}

	out, err := repo.ImportDirectory(c.Context, &player.ImportDirectoryInput{
		Players: players,
		Replace: c.Bool("replace"),
	})
	if err != nil {
		return err
	}

	logger.Info("directory imported", "file", path, "imported", out.Imported, "removed", out.Removed)
	return nil
}

func lookupBadge(c *cli.Context) error {
	badgeID := c.Args().First()
	if badgeID == "" {
		return errors.New("a badge id is required")
	}

	_, _, redisClient, err := setup(c)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	repo, err := player.NewRedis(&player.Config{RedisClient: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create player repository: %w", err)
	}

	p, err := repo.GetPlayer(c.Context, &player.GetPlayerInput{BadgeID: badgeID})
	if err != nil {
		if errors.Is(err, player.ErrPlayerNotFound) {
			return fmt.Errorf("badge %q is not registered", badgeID)
		}
		return err
	}

	printPlayer(p)
	return nil
}

func listDirectory(c *cli.Context) error {
	_, _, redisClient, err := setup(c)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	repo, err := player.NewRedis(&player.Config{RedisClient: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create player repository: %w", err)
	}

	out, err := repo.ListPlayers(c.Context)
	if err != nil {
		return err
	}
	for _, p := range out.Players {
		printPlayer(p)
	}
	return nil
}

func printPlayer(p *models.Player) {
	role := "player"
	if p.Skip {
		role = "skip"
	}
	fmt.Printf("%s\t%s\t%s\t%s\n", p.BadgeID, p.Name, role, p.CueRef)
}

func watchScoreboard(c *cli.Context) error {
	cfg, logger, redisClient, err := setup(c)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := scoreboard.NewRedis(&scoreboard.Config{
		RedisClient: redisClient,
		Channel:     cfg.SnapshotChannel,
		TTL:         cfg.SnapshotTTL,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create scoreboard repository: %w", err)
	}

	if board, err := repo.GetLatestScoreboard(ctx); err == nil {
		printScoreboard(board)
	} else if !errors.Is(err, scoreboard.ErrScoreboardNotFound) {
		return err
	}

	updates, err := repo.Subscribe(ctx)
	if err != nil {
		return err
	}
	for board := range updates {
		printScoreboard(board)
	}
	return nil
}

func printScoreboard(board *models.Scoreboard) {
	hammer := "-"
	if team, ok := board.HammerHolder(); ok {
		hammer = board.Teams[team].Name
	}
	fmt.Printf("%s %-20s end %d/%d  %s %d | %s %d  hammer: %s\n",
		board.UpdatedAt.Format(time.TimeOnly),
		board.Phase,
		board.CurrentEnd, board.NumEnds,
		board.Teams[models.TeamA].Name, board.Teams[models.TeamA].Stones,
		board.Teams[models.TeamB].Name, board.Teams[models.TeamB].Stones,
		hammer,
	)
}
