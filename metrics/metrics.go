// Package metrics exports tour progress as Prometheus metrics.
package metrics

import (
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/phanxgames/waypoint"
)

// Collector counts tour lifecycle events for every guide it watches.
type Collector struct {
	starts      prometheus.Counter
	completions prometheus.Counter
	stops       prometheus.Counter
	stepsShown  *prometheus.CounterVec
	missing     *prometheus.CounterVec
	stepsPerRun prometheus.Histogram
}

// NewCollector creates the metrics. Register them with Register.
func NewCollector() *Collector {
	return &Collector{
		starts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "waypoint_tours_started_total",
			Help: "Total number of tours started",
		}),
		completions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "waypoint_tours_completed_total",
			Help: "Total number of tours advanced past their last step",
		}),
		stops: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "waypoint_tours_stopped_total",
			Help: "Total number of tours stopped before completion",
		}),
		stepsShown: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "waypoint_steps_shown_total",
			Help: "Total number of times a step became active",
		}, []string{"tag"}),
		missing: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "waypoint_missing_tags_total",
			Help: "Current steps whose element was not marked in a frame",
		}, []string{"tag"}),
		stepsPerRun: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "waypoint_steps_per_run",
			Help:    "Distinct steps shown before a tour ended",
			Buckets: prometheus.LinearBuckets(1, 1, 10),
		}),
	}
}

// Register adds the metrics to reg.
func (c *Collector) Register(reg prometheus.Registerer) error {
	for _, m := range []prometheus.Collector{
		c.starts, c.completions, c.stops, c.stepsShown, c.missing, c.stepsPerRun,
	} {
		if err := reg.Register(m); err != nil {
			return err
		}
	}
	return nil
}

// Watch subscribes the collector to g. Remove the returned subscription to
// stop counting.
func (c *Collector) Watch(g *waypoint.Guide) waypoint.Subscription {
	var r run
	return g.Subscribe(func(ev waypoint.Event) { c.observe(&r, ev) })
}

// run tracks the distinct steps shown by the current run of one guide.
type run struct {
	id   uuid.UUID
	seen map[waypoint.Tag]bool
}

func (c *Collector) observe(r *run, ev waypoint.Event) {
	switch ev.Kind {
	case waypoint.EventStarted:
		c.starts.Inc()
		// A run replaced by a new Start ends without an event of its own.
		c.endRun(r)
		r.id = ev.Snapshot.RunID
		r.seen = make(map[waypoint.Tag]bool)
	case waypoint.EventStepShown:
		c.stepsShown.WithLabelValues(ev.Tag.Key()).Inc()
		if r.seen != nil && r.id == ev.Snapshot.RunID {
			r.seen[ev.Tag] = true
		}
	case waypoint.EventMissingTag:
		c.missing.WithLabelValues(ev.Tag.Key()).Inc()
	case waypoint.EventCompleted:
		c.completions.Inc()
		c.endRun(r)
	case waypoint.EventStopped:
		c.stops.Inc()
		c.endRun(r)
	}
}

func (c *Collector) endRun(r *run) {
	if r.seen == nil {
		return
	}
	c.stepsPerRun.Observe(float64(len(r.seen)))
	r.seen = nil
}
