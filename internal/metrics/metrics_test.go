package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample returns the value of the series name{labels} from reg
func sample(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			if !labelsMatch(metric.GetLabel(), labels) {
				continue
			}
			if c := metric.GetCounter(); c != nil {
				return c.GetValue()
			}
			return metric.GetGauge().GetValue()
		}
	}
	t.Fatalf("series %s%v not found", name, labels)
	return 0
}

func labelsMatch(pairs []*dto.LabelPair, want map[string]string) bool {
	if len(pairs) != len(want) {
		return false
	}
	for _, p := range pairs {
		if want[p.GetName()] != p.GetValue() {
			return false
		}
	}
	return true
}

func TestNilMetricsIsInert(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ButtonEvent("power", "dispatched")
		m.BadgeScan("accepted")
		m.RenderFailure("draw_card")
		m.PublishFailure("redis")
		m.MatchStarted()
		m.EndCompleted()
		m.Delivery("team_a")
		m.SetPhase("idle", "selecting_ends")
		m.SetCurrentEnd(3)
	})
}

func TestCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ButtonEvent("left", "ignored")
	m.ButtonEvent("left", "ignored")
	m.ButtonEvent("confirm", "dispatched")
	m.BadgeScan("unknown")
	m.EndCompleted()

	assert.Equal(t, 2.0, sample(t, reg, "hammer_button_events_total", map[string]string{"button": "left", "outcome": "ignored"}))
	assert.Equal(t, 1.0, sample(t, reg, "hammer_button_events_total", map[string]string{"button": "confirm", "outcome": "dispatched"}))
	assert.Equal(t, 1.0, sample(t, reg, "hammer_badge_scans_total", map[string]string{"result": "unknown"}))
	assert.Equal(t, 1.0, sample(t, reg, "hammer_ends_completed_total", map[string]string{}))
}

func TestSetPhaseMovesGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.SetPhase("", "idle")
	m.SetPhase("idle", "selecting_ends")
	m.SetCurrentEnd(4)

	assert.Equal(t, 0.0, sample(t, reg, "hammer_phase", map[string]string{"phase": "idle"}))
	assert.Equal(t, 1.0, sample(t, reg, "hammer_phase", map[string]string{"phase": "selecting_ends"}))
	assert.Equal(t, 4.0, sample(t, reg, "hammer_current_end", map[string]string{}))
}
