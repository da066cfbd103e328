package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/hammer/internal/models"
	"github.com/KirkDiggler/hammer/internal/repositories/scoreboard"
	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"
)

// DefaultEditInterval is the minimum gap between two edits of the mirror message
const DefaultEditInterval = 2 * time.Second

// Session is the part of *discordgo.Session the mirror uses
type Session interface {
	Open() error
	Close() error
	AddHandler(handler interface{}) func()
	ApplicationCommandCreate(appID string, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error)
	ApplicationCommandDelete(appID, guildID, cmdID string, options ...discordgo.RequestOption) error
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	Responder
}

// Mirror keeps a single Discord message in sync with the scoreboard
type Mirror struct {
	session    Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	config     *Config
	limiter    *rate.Limiter
	logger     *slog.Logger

	mu        sync.Mutex
	latest    *models.Scoreboard
	messageID string
	notify    chan struct{}
}

// Config holds the configuration for the mirror
type Config struct {
	// Discord bot token
	Token string

	// ChannelID is where the scoreboard message is posted
	ChannelID string

	// ApplicationID enables the /scoreboard command when set
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Scoreboards backs /scoreboard recent; optional
	Scoreboards scoreboard.Repository

	// EditInterval defaults to DefaultEditInterval
	EditInterval time.Duration

	Logger *slog.Logger
}

// New creates a new Discord mirror
func New(cfg *Config) (*Mirror, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	return newMirror(cfg, session)
}

func newMirror(cfg *Config, session Session) (*Mirror, error) {
	if cfg.ChannelID == "" {
		return nil, errors.New("channel ID cannot be empty")
	}

	interval := cfg.EditInterval
	if interval <= 0 {
		interval = DefaultEditInterval
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	m := &Mirror{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		config:     cfg,
		limiter:    rate.NewLimiter(rate.Every(interval), 1),
		logger:     logger,
		notify:     make(chan struct{}, 1),
	}

	// Register the interaction handler
	session.AddHandler(m.handleInteraction)

	return m, nil
}

// Start opens the Discord connection and registers commands
func (m *Mirror) Start() error {
	if err := m.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if m.config.ApplicationID == "" {
		m.logger.Info("no application id configured, slash commands disabled")
		return nil
	}

	cmd := NewScoreboardCommand(m.Latest, m.config.Scoreboards)
	if err := m.RegisterCommand(cmd); err != nil {
		return fmt.Errorf("failed to register scoreboard command: %w", err)
	}
	return nil
}

// Stop removes registered commands and closes the connection
func (m *Mirror) Stop() error {
	for cmdName, cmdID := range m.commandIDs {
		if err := m.session.ApplicationCommandDelete(m.config.ApplicationID, m.config.GuildID, cmdID); err != nil {
			m.logger.Warn("failed to delete command", "command", cmdName, "id", cmdID, "error", err)
		}
	}

	return m.session.Close()
}

// RegisterCommand registers a command with Discord
func (m *Mirror) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := m.session.ApplicationCommandCreate(m.config.ApplicationID, m.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	m.commands[cmd.GetName()] = cmd
	m.commandIDs[cmd.GetName()] = createdCmd.ID
	m.logger.Info("registered command", "command", cmd.GetName(), "id", createdCmd.ID, "guild_id", m.config.GuildID)
	return nil
}

// Publish records board as the latest snapshot. It never blocks; the
// message is updated by Run.
func (m *Mirror) Publish(_ context.Context, board *models.Scoreboard) error {
	m.mu.Lock()
	m.latest = board
	m.mu.Unlock()

	select {
	case m.notify <- struct{}{}:
	default:
	}
	return nil
}

// Latest returns the most recent snapshot, or nil before the first one
func (m *Mirror) Latest() *models.Scoreboard {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.latest
}

// Run posts the scoreboard message and edits it as snapshots arrive, at most
// once per edit interval. Snapshots published in between are skipped.
func (m *Mirror) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-m.notify:
		}

		if err := m.limiter.Wait(ctx); err != nil {
			return ctx.Err()
		}
		if err := m.sync(ctx); err != nil {
			m.logger.WarnContext(ctx, "failed to update scoreboard message", "channel_id", m.config.ChannelID, "error", err)
		}
	}
}

func (m *Mirror) sync(ctx context.Context) error {
	m.mu.Lock()
	board := m.latest
	messageID := m.messageID
	m.mu.Unlock()
	if board == nil {
		return nil
	}

	embeds := []*discordgo.MessageEmbed{renderScoreboard(board)}
	if messageID == "" {
		msg, err := m.session.ChannelMessageSendComplex(m.config.ChannelID, &discordgo.MessageSend{
			Embeds: embeds,
		}, discordgo.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("failed to send scoreboard message: %w", err)
		}
		m.mu.Lock()
		m.messageID = msg.ID
		m.mu.Unlock()
		return nil
	}

	_, err := m.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel: m.config.ChannelID,
		ID:      messageID,
		Embeds:  &embeds,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to edit scoreboard message %s: %w", messageID, err)
	}
	return nil
}

// handleInteraction routes slash commands to their handlers
func (m *Mirror) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	m.dispatchInteraction(s, i)
}

func (m *Mirror) dispatchInteraction(r Responder, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	name := i.ApplicationCommandData().Name
	if h, ok := m.commands[name]; ok {
		if err := h.Handle(r, i); err != nil {
			m.logger.Error("failed to handle command", "command", name, "error", err)
		}
	}
}
