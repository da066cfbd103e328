package input

import "github.com/KirkDiggler/hammer/internal/models"

// DefaultHistorySize is the number of recent events kept for diagnostics
const DefaultHistorySize = 20

// History is a fixed-capacity ring of the most recent events.
// The newest event overwrites the oldest once full.
type History struct {
	buf   []models.Event
	next  int
	count int
}

// NewHistory returns an empty history holding up to size events
func NewHistory(size int) *History {
	if size < 1 {
		size = DefaultHistorySize
	}
	return &History{buf: make([]models.Event, size)}
}

// Push records ev
func (h *History) Push(ev models.Event) {
	h.buf[h.next] = ev
	h.next = (h.next + 1) % len(h.buf)
	if h.count < len(h.buf) {
		h.count++
	}
}

// Len returns the number of events held
func (h *History) Len() int {
	return h.count
}

// Cap returns the ring capacity
func (h *History) Cap() int {
	return len(h.buf)
}

// Events returns the held events, oldest first
func (h *History) Events() []models.Event {
	out := make([]models.Event, 0, h.count)
	start := (h.next - h.count + len(h.buf)) % len(h.buf)
	for i := 0; i < h.count; i++ {
		out = append(out, h.buf[(start+i)%len(h.buf)])
	}
	return out
}

// Buttons returns the held button presses as labels, oldest first
func (h *History) Buttons() []string {
	events := h.Events()
	out := make([]string, 0, len(events))
	for _, ev := range events {
		if ev.Kind == models.EventBadge {
			out = append(out, "badge:"+ev.BadgeID)
			continue
		}
		out = append(out, string(ev.Button))
	}
	return out
}
