package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/hammer/internal/cards"
	"github.com/KirkDiggler/hammer/internal/common/clock"
	"github.com/KirkDiggler/hammer/internal/common/logging"
	"github.com/KirkDiggler/hammer/internal/common/uuid"
	"github.com/KirkDiggler/hammer/internal/input"
	"github.com/KirkDiggler/hammer/internal/metrics"
	"github.com/KirkDiggler/hammer/internal/models"
	"github.com/KirkDiggler/hammer/internal/registration"
	"github.com/KirkDiggler/hammer/internal/services/messaging"
	"github.com/KirkDiggler/hammer/internal/stones"
)

// service implements the Service interface. Every field below is owned by
// the sequencer goroutine running Run; producers only send on events.
type service struct {
	config     *Config
	events     <-chan models.Event
	renderer   Renderer
	publishers []Publisher
	messaging  messaging.Service
	clock      clock.Clock
	uuid       uuid.UUID
	metrics    *metrics.Metrics
	logger     *slog.Logger

	engine     *cards.Engine
	session    *registration.Session
	dispatcher *input.Dispatcher
	tracker    stones.Tracker

	matchID         string
	phase           models.Phase
	teams           [2]models.Team
	players         [2][]string
	currentEnd      int
	previousLock    int
	endsChosen      bool
	launchRequested bool
	pointsEntry     bool
	announcement    string

	cueCancel context.CancelFunc
}

var _ Service = (*service)(nil)

// NewService creates a new match service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Events == nil {
		return nil, ErrNilEvents
	}
	if cfg.Renderer == nil {
		return nil, ErrNilRenderer
	}
	if cfg.Directory == nil {
		return nil, ErrNilDirectory
	}

	c := *cfg
	if c.DefaultEnds == 0 {
		c.DefaultEnds = DefaultEnds
	}
	if c.DefaultEnds < 1 || c.DefaultEnds > cards.MaxEnds {
		return nil, fmt.Errorf("%w: %d", ErrInvalidEnds, c.DefaultEnds)
	}
	if c.PlayersPerTeam <= 0 {
		c.PlayersPerTeam = DefaultPlayersPerTeam
	}
	if c.CueTimeout <= 0 {
		c.CueTimeout = DefaultCueTimeout
	}
	for i, name := range c.TeamNames {
		if strings.TrimSpace(name) == "" {
			c.TeamNames[i] = DefaultTeamNames[i]
		}
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}
	if c.UUID == nil {
		c.UUID = uuid.New()
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}

	s := &service{
		config:     &c,
		events:     c.Events,
		renderer:   c.Renderer,
		publishers: c.Publishers,
		messaging:  c.Messaging,
		clock:      c.Clock,
		uuid:       c.UUID,
		metrics:    c.Metrics,
		logger:     c.Logger,
		tracker:    stones.New(),
		phase:      models.PhaseIdle,
	}
	for _, team := range models.Teams {
		s.teams[team] = models.Team{ID: team, Name: c.TeamNames[team], Stones: stones.StonesPerEnd}
	}

	engine, err := cards.New(&cards.Config{
		TeamColumnCapacity: c.TeamColumnCapacity,
		Drawer:             c.Renderer,
		Logger:             c.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create card engine: %w", err)
	}
	s.engine = engine

	session, err := registration.New(&registration.Config{
		Directory:       c.Directory,
		Presenter:       c.Renderer,
		Cues:            s,
		Fallback:        c.Fallback,
		CueTimeout:      c.CueTimeout,
		AllowDuplicates: c.AllowDuplicateScans,
		Logger:          c.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create registration session: %w", err)
	}
	s.session = session

	dispatcher, err := input.NewDispatcher(&input.Config{
		Handlers: map[models.Button]input.Handler{
			models.ButtonPower:   s.onPower,
			models.ButtonTeamA:   s.onDeliver(models.TeamA),
			models.ButtonTeamB:   s.onDeliver(models.TeamB),
			models.ButtonConfirm: s.onConfirm,
			models.ButtonUp:      s.onUp,
			models.ButtonDown:    s.onDown,
			models.ButtonLeft:    s.onLeft,
			models.ButtonRight:   s.onRight,
		},
		Ignored:     func() input.IgnoreSet { return input.IgnoreSetFor(s.phase) },
		Cues:        s,
		Tones:       c.Renderer,
		Metrics:     c.Metrics,
		HistorySize: c.HistorySize,
		Logger:      c.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create dispatcher: %w", err)
	}
	s.dispatcher = dispatcher

	return s, nil
}

// Run waits for the first power press, then runs launch sequences back to
// back until ctx is done.
func (s *service) Run(ctx context.Context) error {
	s.setPhase(ctx, models.PhaseIdle)
	if err := s.await(ctx, func() bool { return s.launchRequested }); err != nil {
		return err
	}

	for {
		s.launchRequested = false
		err := s.launch(ctx)
		switch {
		case err == nil:
			s.logger.InfoContext(ctx, "match finished, relaunching", "match_id", s.matchID)
		case errors.Is(err, errRestart):
			s.logger.InfoContext(ctx, "power pressed during launch, restarting", "match_id", s.matchID)
		default:
			return err
		}
	}
}

// History returns the most recent input events, oldest first
func (s *service) History() []models.Event {
	return s.dispatcher.History().Events()
}

func (s *service) launch(ctx context.Context) error {
	s.matchID = s.uuid.NewUUID()
	s.metrics.MatchStarted()
	s.logger.InfoContext(ctx, "launch sequence started", "match_id", s.matchID)

	s.tracker = stones.New()
	s.players = [2][]string{}
	s.currentEnd = 0
	s.previousLock = 0
	s.pointsEntry = false
	s.announcement = ""
	for _, team := range models.Teams {
		s.teams[team].Stones = stones.StonesPerEnd
		s.teams[team].HasHammer = false
	}
	s.metrics.SetCurrentEnd(0)

	if err := s.renderer.ClearHammer(ctx); err != nil {
		s.renderFailure(ctx, "clear_hammer", err)
	}
	if err := s.engine.Reset(ctx); err != nil {
		s.renderFailure(ctx, "reset_cards", err)
	}

	// ends
	s.endsChosen = false
	s.setPhase(ctx, models.PhaseSelectingEnds)
	s.cardResult(ctx, "select", s.engine.Select(ctx, s.config.DefaultEnds))
	s.publish(ctx)
	if err := s.gate(ctx, func() bool { return s.endsChosen }); err != nil {
		return err
	}
	numEnds, ok := s.engine.Selected().Get()
	if !ok {
		numEnds = s.config.DefaultEnds
	}
	if err := s.engine.Finalize(ctx, numEnds); err != nil {
		s.renderFailure(ctx, "finalize_cards", err)
	}
	s.logger.InfoContext(ctx, "ends chosen", "match_id", s.matchID, "num_ends", numEnds)

	// names
	s.setPhase(ctx, models.PhaseNamingTeams)
	for _, team := range models.Teams {
		if err := s.nameTeam(ctx, team); err != nil {
			return err
		}
	}

	// check-in
	for _, phase := range []models.Phase{models.PhaseRegisteringTeamA, models.PhaseRegisteringTeamB} {
		if err := s.register(ctx, phase); err != nil {
			return err
		}
	}

	// play
	s.setPhase(ctx, models.PhaseInProgress)
	for s.currentEnd < s.engine.NumEnds() {
		s.beginEnd(ctx)

		s.setPhase(ctx, models.PhaseEndInProgress)
		if err := s.gate(ctx, func() bool { return s.tracker.Exhausted() }); err != nil {
			return err
		}

		s.logger.InfoContext(ctx, "no stones remaining, awaiting card lock", "end", s.currentEnd)
		s.setPhase(ctx, models.PhaseAwaitingCardLock)
		end := s.currentEnd
		if err := s.gate(ctx, func() bool { return s.engine.IsLocked(end) }); err != nil {
			return err
		}
		s.endCompleted(ctx, end)
		s.setPhase(ctx, models.PhaseInProgress)
	}

	s.setPhase(ctx, models.PhaseGameOver)
	s.gameOver(ctx)
	return nil
}

func (s *service) nameTeam(ctx context.Context, team models.TeamID) error {
	current := s.teams[team].Name
	name, err := s.renderer.PromptTeamName(ctx, team, current)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.renderFailure(ctx, "prompt_team_name", err)
		name = ""
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = current
	}
	s.teams[team].Name = name
	if err := s.renderer.ShowTeamName(ctx, team, name); err != nil {
		s.renderFailure(ctx, "show_team_name", err)
	}
	s.logger.InfoContext(ctx, "team named", "team", team.String(), "name", name)
	s.publish(ctx)
	return nil
}

func (s *service) register(ctx context.Context, phase models.Phase) error {
	team, _ := phase.RegisteringTeam()
	if err := s.session.Start(team, s.config.PlayersPerTeam); err != nil {
		return err
	}
	s.setPhase(ctx, phase)

	err := s.gate(ctx, s.session.IsComplete)
	names := s.session.End()
	if err != nil {
		return err
	}
	s.players[team] = names
	s.logger.InfoContext(ctx, "team registered", "team", team.String(), "players", names)
	return nil
}

// beginEnd advances to the next end. State is committed before drawing so a
// display failure cannot stall the end gate.
func (s *service) beginEnd(ctx context.Context) {
	s.currentEnd++
	s.tracker.ResetForNewEnd()
	for _, team := range models.Teams {
		s.teams[team].Stones = s.tracker.Remaining(team)
		s.teams[team].HasHammer = false
	}
	s.metrics.SetCurrentEnd(s.currentEnd)
	s.logger.InfoContext(ctx, "end started", "end", s.currentEnd, "num_ends", s.engine.NumEnds())

	s.cardResult(ctx, "select", s.engine.Select(ctx, s.currentEnd))
	if err := s.renderer.ClearHammer(ctx); err != nil {
		s.renderFailure(ctx, "clear_hammer", err)
	}
	for _, team := range models.Teams {
		if err := s.renderer.DrawStoneCount(ctx, team, s.tracker.Remaining(team)); err != nil {
			s.renderFailure(ctx, "draw_stone_count", err)
		}
	}
}

func (s *service) endCompleted(ctx context.Context, end int) {
	s.metrics.EndCompleted()

	card, _ := s.engine.Card(end)
	var scoring string
	if team, ok := models.TeamForFamily(card.Slot.Family); ok {
		scoring = s.teams[team].Name
	}
	s.logger.InfoContext(ctx, "end completed", "end", end, "column", card.Slot.Family.String())

	if s.messaging == nil {
		return
	}
	out, err := s.messaging.GetEndSummaryMessage(ctx, &messaging.GetEndSummaryMessageInput{
		End:         end,
		NumEnds:     s.engine.NumEnds(),
		ScoringTeam: scoring,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to build end summary", "error", err)
		return
	}
	s.announce(ctx, out.Message)
}

func (s *service) gameOver(ctx context.Context) {
	s.logger.InfoContext(ctx, "game over", "match_id", s.matchID, "num_ends", s.engine.NumEnds())

	if s.messaging != nil {
		out, err := s.messaging.GetGameOverMessage(ctx, &messaging.GetGameOverMessageInput{
			TeamAName: s.teams[models.TeamA].Name,
			TeamBName: s.teams[models.TeamB].Name,
			NumEnds:   s.engine.NumEnds(),
		})
		if err != nil {
			s.logger.WarnContext(ctx, "failed to build game over message", "error", err)
		} else {
			s.announce(ctx, out.Message)
		}
	}

	if s.config.GameOverCue != "" {
		if err := s.RunCue(ctx, s.config.GameOverCue, s.config.CueTimeout); err != nil && ctx.Err() == nil {
			s.renderFailure(ctx, "game_over_cue", err)
		}
	}
}

func (s *service) setPhase(ctx context.Context, phase models.Phase) {
	previous := s.phase
	s.phase = phase
	s.metrics.SetPhase(string(previous), string(phase))
	if previous != phase {
		s.logger.DebugContext(ctx, "phase changed", "from", string(previous), "to", string(phase))
	}
	s.publish(ctx)
}

func (s *service) announce(ctx context.Context, message string) {
	s.announcement = message
	if err := s.renderer.Announce(ctx, message); err != nil {
		s.renderFailure(ctx, "announce", err)
	}
}

// renderFailure logs a presentation failure. The caller has not committed
// the operation that needed the draw.
func (s *service) renderFailure(ctx context.Context, operation string, err error) {
	s.metrics.RenderFailure(operation)
	s.logger.Log(ctx, logging.LevelCritical, "presentation failed",
		"operation", operation,
		"phase", string(s.phase),
		"error", err,
	)
}

// cardResult recovers a card engine error: invalid moves are logged and
// signalled with a tone, anything else is a presentation failure.
func (s *service) cardResult(ctx context.Context, operation string, err error) bool {
	if err == nil {
		return true
	}

	var cardErr cards.CardError
	if errors.As(err, &cardErr) {
		s.logger.InfoContext(ctx, "card operation rejected", "operation", operation, "reason", err.Error())
		if toneErr := s.renderer.PlayTone(ctx, models.ToneInvalid); toneErr != nil {
			s.renderFailure(ctx, "play_tone", toneErr)
		}
		return false
	}

	s.renderFailure(ctx, operation, err)
	return false
}

func (s *service) snapshot() *models.Scoreboard {
	board := &models.Scoreboard{
		MatchID:         s.matchID,
		Phase:           s.phase,
		CurrentEnd:      s.currentEnd,
		NumEnds:         s.engine.NumEnds(),
		Teams:           s.teams,
		Cards:           s.engine.Cards(),
		PointsEntryMode: s.pointsEntry,
		Announcement:    s.announcement,
		UpdatedAt:       s.clock.Now(),
	}
	for _, team := range models.Teams {
		names := s.players[team]
		if team == s.session.Team() && s.session.Active() {
			names = s.session.Names()
		}
		board.Players[team] = append([]string(nil), names...)
	}
	return board
}

func (s *service) publish(ctx context.Context) {
	if len(s.publishers) == 0 {
		return
	}
	board := s.snapshot()
	for _, p := range s.publishers {
		if err := p.Publish(ctx, board); err != nil {
			observer := fmt.Sprintf("%T", p)
			s.metrics.PublishFailure(observer)
			s.logger.WarnContext(ctx, "failed to publish scoreboard", "observer", observer, "error", err)
		}
	}
}
