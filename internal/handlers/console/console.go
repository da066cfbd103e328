package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/hammer/internal/common/clock"
	"github.com/KirkDiggler/hammer/internal/models"
	"github.com/KirkDiggler/hammer/internal/services/match"
	"github.com/KirkDiggler/hammer/internal/stones"
)

// DefaultCueDuration is how long a cue "plays" on the console
const DefaultCueDuration = 3 * time.Second

// Config holds configuration for the console renderer
type Config struct {
	// Out receives the rendered lines; defaults to stdout
	Out io.Writer

	// CueDuration is how long a cue plays when nobody cancels it
	CueDuration time.Duration

	// Bell rings the terminal bell on invalid input
	Bell bool

	Clock  clock.Clock
	Logger *slog.Logger
}

var _ match.Renderer = (*Console)(nil)

// Console renders the scoreboard as text lines. Team name prompts are
// answered with lines handed over through Divert.
type Console struct {
	out         io.Writer
	cueDuration time.Duration
	bell        bool
	clock       clock.Clock
	logger      *slog.Logger

	mu      sync.Mutex
	answers chan string
}

// New creates a console renderer
func New(cfg *Config) *Console {
	c := &Console{
		out:         os.Stdout,
		cueDuration: DefaultCueDuration,
		clock:       clock.New(),
		logger:      slog.Default(),
		answers:     make(chan string),
	}
	if cfg == nil {
		return c
	}
	if cfg.Out != nil {
		c.out = cfg.Out
	}
	if cfg.CueDuration > 0 {
		c.cueDuration = cfg.CueDuration
	}
	if cfg.Clock != nil {
		c.clock = cfg.Clock
	}
	if cfg.Logger != nil {
		c.logger = cfg.Logger
	}
	c.bell = cfg.Bell
	return c
}

func (c *Console) printf(format string, args ...any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := fmt.Fprintf(c.out, format+"\n", args...)
	return err
}

// Divert hands line to a pending team name prompt. It reports false, and
// leaves the line to the caller, when no prompt is waiting.
func (c *Console) Divert(line string) bool {
	select {
	case c.answers <- line:
		return true
	default:
		return false
	}
}

func slotName(slot models.Slot) string {
	return fmt.Sprintf("%s[%d]", slot.Family, slot.Index)
}

func (c *Console) DrawCard(_ context.Context, rank int, appearance models.Appearance, slot models.Slot) error {
	if appearance == models.AppearanceHidden {
		if rank == 0 {
			return nil
		}
		return c.printf("card %d hidden", rank)
	}
	return c.printf("card %d %s at %s", rank, appearance, slotName(slot))
}

func (c *Console) DrawStoneCount(_ context.Context, team models.TeamID, count int) error {
	return c.printf("%s stones: %s", team, strings.Repeat("o", count)+strings.Repeat(".", max(0, stones.StonesPerEnd-count)))
}

func (c *Console) DrawHammer(_ context.Context, team models.TeamID) error {
	return c.printf("hammer: %s", team)
}

func (c *Console) ClearHammer(context.Context) error {
	return c.printf("hammer: -")
}

// PromptTeamName waits for the next diverted line
func (c *Console) PromptTeamName(ctx context.Context, team models.TeamID, current string) (string, error) {
	if err := c.printf("name for %s [%s]:", team, current); err != nil {
		return "", err
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line := <-c.answers:
		return strings.TrimSpace(line), nil
	}
}

func (c *Console) ShowTeamName(_ context.Context, team models.TeamID, name string) error {
	return c.printf("%s is %q", team, name)
}

// PlayPresentationCue blocks for the cue duration, the timeout or until ctx
// is done, whichever is first
func (c *Console) PlayPresentationCue(ctx context.Context, cueRef string, timeout time.Duration) error {
	if cueRef == "" {
		return errors.New("cue reference cannot be empty")
	}
	d := c.cueDuration
	if timeout > 0 && timeout < d {
		d = timeout
	}
	if err := c.printf("> playing %s", cueRef); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		c.logger.DebugContext(ctx, "cue stopped", "cue", cueRef, "reason", ctx.Err())
		return ctx.Err()
	case <-c.clock.After(d):
		return nil
	}
}

func (c *Console) PlayTone(_ context.Context, kind models.Tone) error {
	if kind == models.ToneInvalid && c.bell {
		return c.printf("\a")
	}
	return nil
}

func (c *Console) ShowScanResult(_ context.Context, team models.TeamID, index int, p *models.Player) error {
	skip := ""
	if p.Skip {
		skip = " (skip)"
	}
	return c.printf("%s #%d: %s%s", team, index+1, p.Name, skip)
}

func (c *Console) ShowInvalidScan(_ context.Context, team models.TeamID, badgeID string) error {
	return c.printf("%s: badge %q rejected", team, badgeID)
}

func (c *Console) SetPointsEntryMode(_ context.Context, on bool) error {
	state := "off"
	if on {
		state = "on"
	}
	return c.printf("points entry %s", state)
}

func (c *Console) Announce(_ context.Context, message string) error {
	return c.printf("** %s", message)
}
