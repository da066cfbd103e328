package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hammer"

// Metrics records scoreboard activity. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	buttonEvents   *prometheus.CounterVec
	badgeScans     *prometheus.CounterVec
	renderFailures *prometheus.CounterVec
	publishErrors  *prometheus.CounterVec
	matches        prometheus.Counter
	ends           prometheus.Counter
	deliveries     *prometheus.CounterVec
	phase          *prometheus.GaugeVec
	currentEnd     prometheus.Gauge
}

// New registers the scoreboard collectors on reg
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: reg,
		buttonEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "button_events_total",
			Help:      "Remote button events by button and dispatch outcome.",
		}, []string{"button", "outcome"}),
		badgeScans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "badge_scans_total",
			Help:      "Badge scans by result.",
		}, []string{"result"}),
		renderFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "render_failures_total",
			Help:      "Presentation callbacks that failed, by operation.",
		}, []string{"operation"}),
		publishErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "publish_failures_total",
			Help:      "Scoreboard snapshots an observer failed to accept.",
		}, []string{"observer"}),
		matches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_started_total",
			Help:      "Launch sequences started.",
		}),
		ends: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ends_completed_total",
			Help:      "End cards locked.",
		}),
		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deliveries_total",
			Help:      "Stones delivered by team.",
		}, []string{"team"}),
		phase: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "phase",
			Help:      "1 for the current match phase, 0 otherwise.",
		}, []string{"phase"}),
		currentEnd: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "current_end",
			Help:      "End currently being played.",
		}),
	}

	if reg != nil {
		reg.MustRegister(
			m.buttonEvents,
			m.badgeScans,
			m.renderFailures,
			m.publishErrors,
			m.matches,
			m.ends,
			m.deliveries,
			m.phase,
			m.currentEnd,
		)
	}
	return m
}

// ButtonEvent counts one dispatched, ignored, cancelled or unmapped press
func (m *Metrics) ButtonEvent(button, outcome string) {
	if m == nil {
		return
	}
	m.buttonEvents.WithLabelValues(button, outcome).Inc()
}

// BadgeScan counts one scan result
func (m *Metrics) BadgeScan(result string) {
	if m == nil {
		return
	}
	m.badgeScans.WithLabelValues(result).Inc()
}

// RenderFailure counts a failed presentation callback
func (m *Metrics) RenderFailure(operation string) {
	if m == nil {
		return
	}
	m.renderFailures.WithLabelValues(operation).Inc()
}

// PublishFailure counts a snapshot an observer rejected
func (m *Metrics) PublishFailure(observer string) {
	if m == nil {
		return
	}
	m.publishErrors.WithLabelValues(observer).Inc()
}

// MatchStarted counts a launch
func (m *Metrics) MatchStarted() {
	if m == nil {
		return
	}
	m.matches.Inc()
}

// EndCompleted counts a locked end and records the next end
func (m *Metrics) EndCompleted() {
	if m == nil {
		return
	}
	m.ends.Inc()
}

// Delivery counts one stone for team
func (m *Metrics) Delivery(team string) {
	if m == nil {
		return
	}
	m.deliveries.WithLabelValues(team).Inc()
}

// SetPhase marks phase as current and clears the previous one
func (m *Metrics) SetPhase(previous, current string) {
	if m == nil {
		return
	}
	if previous != "" && previous != current {
		m.phase.WithLabelValues(previous).Set(0)
	}
	m.phase.WithLabelValues(current).Set(1)
}

// SetCurrentEnd records the end being played
func (m *Metrics) SetCurrentEnd(end int) {
	if m == nil {
		return
	}
	m.currentEnd.Set(float64(end))
}

// Serve exposes the registry on addr until ctx is done
func (m *Metrics) Serve(ctx context.Context, addr string, logger *slog.Logger) error {
	if m == nil || m.registry == nil {
		return errors.New("metrics registry not configured")
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.InfoContext(ctx, "serving metrics", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
