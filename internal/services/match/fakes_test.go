package match

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/hammer/internal/models"
	"github.com/KirkDiggler/hammer/internal/repositories/player"
)

type fakeRenderer struct {
	mu sync.Mutex

	names     map[models.TeamID]string
	cue       func(ctx context.Context) error
	stoneErr  error
	hammerErr error

	stoneCounts   []int
	hammers       []models.TeamID
	tones         []models.Tone
	pointsEntry   []bool
	announcements []string
	scans         []string
	invalid       []string
	cues          []string
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{names: map[models.TeamID]string{}}
}

func (r *fakeRenderer) DrawCard(context.Context, int, models.Appearance, models.Slot) error {
	return nil
}

func (r *fakeRenderer) DrawStoneCount(_ context.Context, _ models.TeamID, count int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stoneErr != nil {
		return r.stoneErr
	}
	r.stoneCounts = append(r.stoneCounts, count)
	return nil
}

func (r *fakeRenderer) DrawHammer(_ context.Context, team models.TeamID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.hammerErr != nil {
		return r.hammerErr
	}
	r.hammers = append(r.hammers, team)
	return nil
}

func (r *fakeRenderer) ClearHammer(context.Context) error {
	return nil
}

func (r *fakeRenderer) PromptTeamName(_ context.Context, team models.TeamID, _ string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.names[team], nil
}

func (r *fakeRenderer) ShowTeamName(context.Context, models.TeamID, string) error {
	return nil
}

func (r *fakeRenderer) PlayPresentationCue(ctx context.Context, cueRef string, _ time.Duration) error {
	r.mu.Lock()
	r.cues = append(r.cues, cueRef)
	fn := r.cue
	r.mu.Unlock()
	if fn != nil {
		return fn(ctx)
	}
	return nil
}

func (r *fakeRenderer) PlayTone(_ context.Context, kind models.Tone) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tones = append(r.tones, kind)
	return nil
}

func (r *fakeRenderer) ShowScanResult(_ context.Context, _ models.TeamID, _ int, p *models.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scans = append(r.scans, p.Name)
	return nil
}

func (r *fakeRenderer) ShowInvalidScan(_ context.Context, _ models.TeamID, badgeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invalid = append(r.invalid, badgeID)
	return nil
}

func (r *fakeRenderer) SetPointsEntryMode(_ context.Context, on bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pointsEntry = append(r.pointsEntry, on)
	return nil
}

func (r *fakeRenderer) Announce(_ context.Context, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.announcements = append(r.announcements, message)
	return nil
}

func (r *fakeRenderer) countTone(kind models.Tone) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, t := range r.tones {
		if t == kind {
			n++
		}
	}
	return n
}

type fakeDirectory struct {
	players map[string]*models.Player
}

func newFakeDirectory(players ...*models.Player) *fakeDirectory {
	d := &fakeDirectory{players: make(map[string]*models.Player)}
	for _, p := range players {
		d.players[p.BadgeID] = p
	}
	return d
}

func (d *fakeDirectory) SavePlayer(_ context.Context, input *player.SavePlayerInput) error {
	d.players[input.Player.BadgeID] = input.Player
	return nil
}

func (d *fakeDirectory) GetPlayer(_ context.Context, input *player.GetPlayerInput) (*models.Player, error) {
	p, ok := d.players[input.BadgeID]
	if !ok {
		return nil, player.ErrPlayerNotFound
	}
	return p, nil
}

func (d *fakeDirectory) ListPlayers(context.Context) (*player.ListPlayersOutput, error) {
	out := &player.ListPlayersOutput{}
	for _, p := range d.players {
		out.Players = append(out.Players, p)
	}
	sort.Slice(out.Players, func(i, j int) bool { return out.Players[i].BadgeID < out.Players[j].BadgeID })
	return out, nil
}

func (d *fakeDirectory) ImportDirectory(_ context.Context, input *player.ImportDirectoryInput) (*player.ImportDirectoryOutput, error) {
	for _, p := range input.Players {
		d.players[p.BadgeID] = p
	}
	return &player.ImportDirectoryOutput{Imported: len(input.Players)}, nil
}

type chanPublisher struct {
	ch chan *models.Scoreboard
}

func (p *chanPublisher) Publish(_ context.Context, board *models.Scoreboard) error {
	p.ch <- board
	return nil
}

type failingPublisher struct{}

func (failingPublisher) Publish(context.Context, *models.Scoreboard) error {
	return context.DeadlineExceeded
}
