package input

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/hammer/internal/models"
)

func TestHistoryEvictsOldestAtCapacity(t *testing.T) {
	h := NewHistory(DefaultHistorySize)
	start := time.Date(2026, 2, 14, 19, 0, 0, 0, time.UTC)

	for i := 0; i < 25; i++ {
		h.Push(models.BadgeEvent(fmt.Sprintf("b%d", i), start.Add(time.Duration(i)*time.Second)))
	}

	assert.Equal(t, DefaultHistorySize, h.Len())
	events := h.Events()
	assert.Len(t, events, DefaultHistorySize)
	assert.Equal(t, "b5", events[0].BadgeID)
	assert.Equal(t, "b24", events[len(events)-1].BadgeID)
	for i := 1; i < len(events); i++ {
		assert.True(t, events[i].At.After(events[i-1].At))
	}
}

func TestHistoryPartiallyFilled(t *testing.T) {
	h := NewHistory(0)
	assert.Equal(t, DefaultHistorySize, h.Cap())
	assert.Empty(t, h.Events())

	h.Push(models.ButtonEvent(models.ButtonUp, time.Time{}))
	h.Push(models.BadgeEvent("e4bce79c", time.Time{}))

	assert.Equal(t, []string{"up", "badge:e4bce79c"}, h.Buttons())
}
