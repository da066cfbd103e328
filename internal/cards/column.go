package cards

import "github.com/KirkDiggler/hammer/internal/models"

// column is a fixed-capacity run of slots addressed by index.
// cursor is the index of the furthest placement and saturates at the last slot.
type column struct {
	family models.SlotFamily
	slots  []int // rank per index, 0 when free
	cursor int   // -1 until the first placement
}

func newColumn(family models.SlotFamily, capacity int) *column {
	return &column{
		family: family,
		slots:  make([]int, capacity),
		cursor: -1,
	}
}

// nextIndex is where the next card entering the column lands.
func (c *column) nextIndex() int {
	if c.cursor < len(c.slots)-1 {
		return c.cursor + 1
	}
	return len(c.slots) - 1
}

func (c *column) occupant(i int) int {
	return c.slots[i]
}

func (c *column) place(i, rank int) {
	c.slots[i] = rank
	if i > c.cursor {
		c.cursor = i
	}
}

func (c *column) release(i int) {
	c.slots[i] = 0
}

func (c *column) retreat() {
	if c.cursor > 0 {
		c.cursor--
	}
}

func (c *column) reset() {
	for i := range c.slots {
		c.slots[i] = 0
	}
	c.cursor = -1
}
