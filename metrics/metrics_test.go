package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/waypoint"
)

func newWatched(t *testing.T) (*Collector, *waypoint.Guide) {
	t.Helper()
	c := NewCollector()
	require.NoError(t, c.Register(prometheus.NewRegistry()))
	g := waypoint.NewGuide()
	c.Watch(g)
	return c, g
}

func TestCollectorCountsCompletedRun(t *testing.T) {
	c, g := newWatched(t)
	plan := waypoint.TagsOf("home", "a", "b")

	g.Start(plan, waypoint.WithStartDelay(0))
	g.Advance()
	g.Update(waypoint.DefaultSettleDelay)
	g.Advance()

	assert.Equal(t, 1.0, testutil.ToFloat64(c.starts))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.completions))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.stops))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.stepsShown.WithLabelValues("home.a")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.stepsShown.WithLabelValues("home.b")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.stepsPerRun))
}

func TestCollectorCountsStop(t *testing.T) {
	c, g := newWatched(t)
	g.Start(waypoint.TagsOf("home", "a", "b"), waypoint.WithStartDelay(time.Second))
	g.Stop(false)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.starts))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.stops))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.completions))
}

func TestCollectorRestartEndsPreviousRun(t *testing.T) {
	c, g := newWatched(t)
	g.Start(waypoint.TagsOf("home", "a"), waypoint.WithStartDelay(0))
	g.Start(waypoint.TagsOf("home", "b"), waypoint.WithStartDelay(0))

	assert.Equal(t, 2.0, testutil.ToFloat64(c.starts))
	var m dto.Metric
	require.NoError(t, c.stepsPerRun.Write(&m))
	assert.Equal(t, uint64(1), m.GetHistogram().GetSampleCount())
	assert.Equal(t, 1.0, m.GetHistogram().GetSampleSum())
}

func TestRegisterTwiceFails(t *testing.T) {
	c := NewCollector()
	reg := prometheus.NewRegistry()
	require.NoError(t, c.Register(reg))
	assert.Error(t, c.Register(reg))
}
