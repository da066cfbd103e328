package cards

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/hammer/internal/models"
)

const (
	// MaxEnds is the number of cards in the start row
	MaxEnds = 10

	// DefaultTeamColumnCapacity is the number of scoring slots per team
	DefaultTeamColumnCapacity = 8

	// DefaultBlankColumnCapacity is the number of blank-end slots
	DefaultBlankColumnCapacity = 10
)

//go:generate mockgen -package=mocks -destination=mocks/mock_drawer.go github.com/KirkDiggler/hammer/internal/cards Drawer

// Drawer renders a card into a slot. AppearanceHidden clears the slot.
type Drawer interface {
	DrawCard(ctx context.Context, rank int, appearance models.Appearance, slot models.Slot) error
}

// Config holds configuration for the layout engine
type Config struct {
	// TeamColumnCapacity is the slot count of each team column
	TeamColumnCapacity int

	// BlankColumnCapacity is the slot count of the blank-end column
	BlankColumnCapacity int

	// Drawer receives every visual change
	Drawer Drawer

	// Logger is optional
	Logger *slog.Logger
}

// Engine owns the end cards, their slots and lock state.
// It is not safe for concurrent use; the match sequencer is its only caller.
type Engine struct {
	drawer  Drawer
	logger  *slog.Logger
	cards   [MaxEnds + 1]models.Card // index 0 unused
	columns map[models.SlotFamily]*column

	numEnds    int
	finalized  bool
	selected   models.OptionalRank
	lastLocked [2]models.OptionalRank
}

// New creates a layout engine with every card in the start row
func New(cfg *Config) (*Engine, error) {
	if cfg == nil || cfg.Drawer == nil {
		return nil, ErrNilDrawer
	}

	teamCap := cfg.TeamColumnCapacity
	if teamCap <= 0 {
		teamCap = DefaultTeamColumnCapacity
	}
	blankCap := cfg.BlankColumnCapacity
	if blankCap <= 0 {
		blankCap = DefaultBlankColumnCapacity
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e := &Engine{
		drawer: cfg.Drawer,
		logger: logger,
		columns: map[models.SlotFamily]*column{
			models.FamilyTeamA:    newColumn(models.FamilyTeamA, teamCap),
			models.FamilyTeamB:    newColumn(models.FamilyTeamB, teamCap),
			models.FamilyBlankEnd: newColumn(models.FamilyBlankEnd, blankCap),
		},
	}
	e.resetState()
	return e, nil
}

func (e *Engine) resetState() {
	for rank := 1; rank <= MaxEnds; rank++ {
		e.cards[rank] = models.Card{
			Rank:       rank,
			Slot:       startSlot(rank),
			Appearance: models.AppearanceNeutral,
		}
	}
	for _, col := range e.columns {
		col.reset()
	}
	e.numEnds = 0
	e.finalized = false
	e.selected = models.NoRank
	e.lastLocked = [2]models.OptionalRank{}
}

// Reset puts all ten cards back in the start row and clears every column.
// The model is reset even when a redraw fails; the draw error is returned for logging.
func (e *Engine) Reset(ctx context.Context) error {
	e.resetState()

	for _, family := range []models.SlotFamily{models.FamilyTeamA, models.FamilyTeamB, models.FamilyBlankEnd} {
		for i := range e.columns[family].slots {
			if err := e.drawer.DrawCard(ctx, 0, models.AppearanceHidden, models.Slot{Family: family, Index: i}); err != nil {
				return fmt.Errorf("failed to clear %s slot %d: %w", family, i, err)
			}
		}
	}
	for rank := 1; rank <= MaxEnds; rank++ {
		if err := e.draw(ctx, e.cards[rank], models.AppearanceNeutral, e.cards[rank].Slot); err != nil {
			return err
		}
	}
	return nil
}

// Finalize commits n as the number of ends and hides every rank above it.
func (e *Engine) Finalize(ctx context.Context, n int) error {
	if n < 1 || n > MaxEnds {
		return fmt.Errorf("%w: %d ends", ErrRankOutOfRange, n)
	}

	e.numEnds = n
	e.finalized = true
	e.selected = models.NoRank
	for rank := 1; rank <= MaxEnds; rank++ {
		if rank <= n {
			e.cards[rank].Appearance = models.AppearanceNeutral
		} else {
			e.cards[rank].Appearance = models.AppearanceHidden
		}
	}

	for rank := 1; rank <= MaxEnds; rank++ {
		card := e.cards[rank]
		if err := e.draw(ctx, card, card.Appearance, card.Slot); err != nil {
			return err
		}
	}
	return nil
}

// NumEnds returns the finalized end count, or 0 before Finalize
func (e *Engine) NumEnds() int {
	return e.numEnds
}

// Finalized reports whether the end count has been committed
func (e *Engine) Finalized() bool {
	return e.finalized
}

// Selected returns the currently selected rank
func (e *Engine) Selected() models.OptionalRank {
	return e.selected
}

// LastLocked returns the most recently locked rank in a team's column
func (e *Engine) LastLocked(team models.TeamID) models.OptionalRank {
	return e.lastLocked[team]
}

// Card returns a copy of the card with the given rank
func (e *Engine) Card(rank int) (models.Card, bool) {
	if rank < 1 || rank > MaxEnds {
		return models.Card{}, false
	}
	return e.cards[rank], true
}

// Cards returns every visible card ordered by rank
func (e *Engine) Cards() []models.Card {
	out := make([]models.Card, 0, MaxEnds)
	for rank := 1; rank <= MaxEnds; rank++ {
		if e.cards[rank].Appearance == models.AppearanceHidden {
			continue
		}
		out = append(out, e.cards[rank])
	}
	return out
}

// IsLocked reports whether a card is locked; unknown ranks are never locked
func (e *Engine) IsLocked(rank int) bool {
	if rank < 1 || rank > MaxEnds {
		return false
	}
	return e.cards[rank].Locked
}

// Select makes rank the card controlled by the remote.
// Before Finalize the rank wraps around the start row; afterwards it must be in 1..N.
func (e *Engine) Select(ctx context.Context, rank int) error {
	if e.finalized {
		if rank < 1 || rank > e.numEnds {
			return fmt.Errorf("%w: %d not in 1..%d", ErrRankOutOfRange, rank, e.numEnds)
		}
	} else {
		rank = wrapRank(rank)
	}

	card := e.cards[rank]
	if card.Locked {
		return nil
	}

	prev, hadPrev := e.selected.Get()
	if hadPrev && prev == rank {
		return nil
	}

	if err := e.draw(ctx, card, models.AppearanceSelected, card.Slot); err != nil {
		return err
	}

	prevAppearance := models.AppearanceNeutral
	if hadPrev {
		p := e.cards[prev]
		if p.Locked {
			prevAppearance = models.AppearanceLocked
		}
		if p.Appearance != models.AppearanceHidden {
			if err := e.draw(ctx, p, prevAppearance, p.Slot); err != nil {
				return err
			}
		}
	}

	e.cards[rank].Appearance = models.AppearanceSelected
	if hadPrev && e.cards[prev].Appearance != models.AppearanceHidden {
		e.cards[prev].Appearance = prevAppearance
	}
	e.selected = models.SomeRank(rank)
	return nil
}

// MoveDown moves the selected card one family forward:
// start row -> team A -> team B -> blank end.
func (e *Engine) MoveDown(ctx context.Context) error {
	card, err := e.selectedCard()
	if err != nil {
		return err
	}
	if card.Locked {
		return nil
	}

	var dest models.SlotFamily
	switch card.Slot.Family {
	case models.FamilyStartRow:
		dest = models.FamilyTeamA
	case models.FamilyTeamA:
		dest = models.FamilyTeamB
	case models.FamilyTeamB:
		dest = models.FamilyBlankEnd
	default:
		return fmt.Errorf("%w: card %d cannot move below the blank-end column", ErrInvalidTransition, card.Rank)
	}
	return e.moveToColumn(ctx, card, dest)
}

// MoveUp moves the selected card one family back: blank end -> team B -> team A.
// A card never returns to the start row.
func (e *Engine) MoveUp(ctx context.Context) error {
	card, err := e.selectedCard()
	if err != nil {
		return err
	}
	if card.Locked {
		return nil
	}

	var dest models.SlotFamily
	switch card.Slot.Family {
	case models.FamilyBlankEnd:
		dest = models.FamilyTeamB
	case models.FamilyTeamB:
		dest = models.FamilyTeamA
	default:
		return fmt.Errorf("%w: card %d cannot move up from %s", ErrInvalidTransition, card.Rank, card.Slot.Family)
	}
	return e.moveToColumn(ctx, card, dest)
}

// MoveLeft shifts the selected card one slot toward the start of its team column.
// The card cannot pass the team's most recently locked card.
func (e *Engine) MoveLeft(ctx context.Context) error {
	card, err := e.selectedCard()
	if err != nil {
		return err
	}
	if card.Locked {
		return nil
	}

	team, ok := models.TeamForFamily(card.Slot.Family)
	if !ok {
		return fmt.Errorf("%w: card %d is not in a team column", ErrInvalidTransition, card.Rank)
	}

	target := card.Slot.Index - 1
	if target < 0 {
		return fmt.Errorf("%w: card %d is at the start of %s", ErrInvalidTransition, card.Rank, card.Slot.Family)
	}
	if idx, ok := e.lastLockedIndex(team); ok && target <= idx {
		return fmt.Errorf("%w: card %d cannot pass locked card %d", ErrSlotOccupied, card.Rank, e.lastLocked[team].Rank)
	}

	col := e.columns[card.Slot.Family]
	if occ := col.occupant(target); occ != 0 {
		return fmt.Errorf("%w: %s slot %d holds card %d", ErrSlotOccupied, card.Slot.Family, target, occ)
	}

	to := models.Slot{Family: card.Slot.Family, Index: target}
	if err := e.redraw(ctx, card, to); err != nil {
		return err
	}

	col.release(card.Slot.Index)
	col.place(target, card.Rank)
	col.retreat()
	e.commitMove(card.Rank, to)
	return nil
}

// MoveRight shifts the selected card one slot toward the end of its team column.
func (e *Engine) MoveRight(ctx context.Context) error {
	card, err := e.selectedCard()
	if err != nil {
		return err
	}
	if card.Locked {
		return nil
	}

	if _, ok := models.TeamForFamily(card.Slot.Family); !ok {
		return fmt.Errorf("%w: card %d is not in a team column", ErrInvalidTransition, card.Rank)
	}

	col := e.columns[card.Slot.Family]
	target := card.Slot.Index + 1
	if target >= len(col.slots) {
		return fmt.Errorf("%w: card %d is at the end of %s", ErrColumnFull, card.Rank, card.Slot.Family)
	}
	if occ := col.occupant(target); occ != 0 {
		return fmt.Errorf("%w: %s slot %d holds card %d", ErrSlotOccupied, card.Slot.Family, target, occ)
	}

	to := models.Slot{Family: card.Slot.Family, Index: target}
	if err := e.redraw(ctx, card, to); err != nil {
		return err
	}

	col.release(card.Slot.Index)
	col.place(target, card.Rank)
	e.commitMove(card.Rank, to)
	return nil
}

// Lock freezes a placed card and records it as its team's most recent lock.
// Locking an already locked card is a no-op.
func (e *Engine) Lock(ctx context.Context, rank int) error {
	limit := MaxEnds
	if e.finalized {
		limit = e.numEnds
	}
	if rank < 1 || rank > limit {
		return fmt.Errorf("%w: %d not in 1..%d", ErrRankOutOfRange, rank, limit)
	}

	card := e.cards[rank]
	if card.Locked {
		return nil
	}
	if card.Slot.Family == models.FamilyStartRow {
		return fmt.Errorf("%w: card %d", ErrCardNotPlaced, rank)
	}

	if err := e.draw(ctx, card, models.AppearanceLocked, card.Slot); err != nil {
		return err
	}

	e.cards[rank].Locked = true
	e.cards[rank].Appearance = models.AppearanceLocked
	if team, ok := models.TeamForFamily(card.Slot.Family); ok {
		e.lastLocked[team] = models.SomeRank(rank)
	}
	if e.selected.Valid && e.selected.Rank == rank {
		e.selected = models.NoRank
	}

	e.logger.Debug("card locked", "rank", rank, "family", card.Slot.Family.String(), "index", card.Slot.Index)
	return nil
}

func (e *Engine) moveToColumn(ctx context.Context, card models.Card, dest models.SlotFamily) error {
	col := e.columns[dest]
	idx := col.nextIndex()
	if occ := col.occupant(idx); occ != 0 && occ != card.Rank {
		return fmt.Errorf("%w: %s slot %d holds card %d", ErrColumnFull, dest, idx, occ)
	}

	to := models.Slot{Family: dest, Index: idx}
	if err := e.redraw(ctx, card, to); err != nil {
		return err
	}

	if from, ok := e.columns[card.Slot.Family]; ok {
		from.release(card.Slot.Index)
	}
	col.place(idx, card.Rank)
	e.commitMove(card.Rank, to)

	e.logger.Debug("card moved", "rank", card.Rank, "family", dest.String(), "index", idx)
	return nil
}

// redraw clears the card's current slot and draws it selected at to.
func (e *Engine) redraw(ctx context.Context, card models.Card, to models.Slot) error {
	if err := e.draw(ctx, card, models.AppearanceHidden, card.Slot); err != nil {
		return err
	}
	return e.draw(ctx, card, models.AppearanceSelected, to)
}

func (e *Engine) commitMove(rank int, to models.Slot) {
	e.cards[rank].Slot = to
	e.cards[rank].Appearance = models.AppearanceSelected
}

func (e *Engine) draw(ctx context.Context, card models.Card, appearance models.Appearance, slot models.Slot) error {
	if err := e.drawer.DrawCard(ctx, card.Rank, appearance, slot); err != nil {
		return fmt.Errorf("failed to draw card %d as %s at %s[%d]: %w", card.Rank, appearance, slot.Family, slot.Index, err)
	}
	return nil
}

func (e *Engine) selectedCard() (models.Card, error) {
	rank, ok := e.selected.Get()
	if !ok {
		return models.Card{}, ErrNoSelection
	}
	return e.cards[rank], nil
}

func (e *Engine) lastLockedIndex(team models.TeamID) (int, bool) {
	rank, ok := e.lastLocked[team].Get()
	if !ok {
		return 0, false
	}
	card := e.cards[rank]
	if card.Slot.Family != models.FamilyForTeam(team) {
		return 0, false
	}
	return card.Slot.Index, true
}

func startSlot(rank int) models.Slot {
	return models.Slot{Family: models.FamilyStartRow, Index: rank - 1}
}

// wrapRank folds any integer onto 1..MaxEnds, so 0 -> 10 and 11 -> 1.
func wrapRank(rank int) int {
	return ((rank-1)%MaxEnds+MaxEnds)%MaxEnds + 1
}
