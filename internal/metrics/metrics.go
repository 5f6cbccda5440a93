// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "vrscene"

// Metrics holds the app's collectors on a private registry. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	colorChanges  *prometheus.CounterVec
	renders       prometheus.Counter
	worldReloads  prometheus.Counter
	frames        prometheus.Counter
	frameDuration prometheus.Histogram
	cursorClicks  *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		colorChanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "color_changes_total",
				Help:      "Color changes by the color picked.",
			},
			[]string{"color"},
		),
		renders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scene_renders_total",
			Help:      "Scene descriptions produced by the view.",
		}),
		worldReloads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "world_reloads_total",
			Help:      "Times the entity world was rebuilt from a description.",
		}),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_total",
			Help:      "Frames processed by the loop.",
		}),
		frameDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "frame_update_seconds",
			Help:      "Time spent in one frame update, drawing excluded.",
			Buckets:   []float64{0.0005, 0.001, 0.002, 0.004, 0.008, 0.016, 0.033, 0.066},
		}),
		cursorClicks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cursor_clicks_total",
				Help:      "Cursor clicks on entities, by how they were triggered.",
			},
			[]string{"trigger"},
		),
	}
	m.Registry.MustRegister(m.colorChanges, m.renders, m.worldReloads, m.frames, m.frameDuration, m.cursorClicks)
	return m
}

func (m *Metrics) ColorChanged(color string) {
	if m == nil {
		return
	}
	m.colorChanges.WithLabelValues(color).Inc()
}

func (m *Metrics) Rendered() {
	if m == nil {
		return
	}
	m.renders.Inc()
}

func (m *Metrics) WorldReloaded() {
	if m == nil {
		return
	}
	m.worldReloads.Inc()
}

// Frame records one processed frame and how long its update took.
func (m *Metrics) Frame(seconds float64) {
	if m == nil {
		return
	}
	m.frames.Inc()
	m.frameDuration.Observe(seconds)
}

func (m *Metrics) CursorClicked(fused bool) {
	if m == nil {
		return
	}
	trigger := "click"
	if fused {
		trigger = "fuse"
	}
	m.cursorClicks.WithLabelValues(trigger).Inc()
}
