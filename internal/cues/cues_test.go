package cues

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveKeepsExplicitCue(t *testing.T) {
	p := New(&Config{Seed: 42, Pool: []string{"a.mp4", "b.mp4"}})
	assert.Equal(t, "mine.mp4", p.Resolve("mine.mp4"))
}

func TestResolvePicksFromPool(t *testing.T) {
	pool := []string{"a.mp4", "b.mp4", "c.mp4"}
	p := New(&Config{Seed: 42, Pool: pool})

	for i := 0; i < 50; i++ {
		assert.Contains(t, pool, p.Resolve(""))
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	pool := []string{"a", "b", "c", "d"}
	first := New(&Config{Seed: 7, Pool: pool})
	second := New(&Config{Seed: 7, Pool: pool})

	for i := 0; i < 20; i++ {
		assert.Equal(t, first.Pick(), second.Pick())
	}
}

func TestDefaultPool(t *testing.T) {
	assert.Equal(t, DefaultFallback, New(nil).Pick())
	assert.Equal(t, 0, New(nil).Intn(0))
}
