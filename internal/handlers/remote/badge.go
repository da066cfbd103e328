package remote

import (
	"sync"
	"time"

	"github.com/KirkDiggler/hammer/internal/common/clock"
	"golang.org/x/time/rate"
)

// DefaultBadgeCooldown suppresses a badge left on the reader
const DefaultBadgeCooldown = 5 * time.Second

// BadgeFilter drops repeat reads of the same badge within the cooldown
type BadgeFilter struct {
	mu       sync.Mutex
	cooldown time.Duration
	clock    clock.Clock
	limiters map[string]*rate.Limiter
}

// NewBadgeFilter creates a filter; a zero cooldown uses DefaultBadgeCooldown
func NewBadgeFilter(cooldown time.Duration, clk clock.Clock) *BadgeFilter {
	if cooldown <= 0 {
		cooldown = DefaultBadgeCooldown
	}
	if clk == nil {
		clk = clock.New()
	}
	return &BadgeFilter{
		cooldown: cooldown,
		clock:    clk,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Allow reports whether a read of badgeID should be forwarded
func (f *BadgeFilter) Allow(badgeID string) bool {
	now := f.clock.Now()

	f.mu.Lock()
	defer f.mu.Unlock()

	lim, ok := f.limiters[badgeID]
	if !ok {
		lim = rate.NewLimiter(rate.Every(f.cooldown), 1)
		f.limiters[badgeID] = lim
	}
	return lim.AllowN(now, 1)
}
