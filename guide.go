package waypoint

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultStartDelay lets the host's first layout settle before the first
	// step is shown.
	DefaultStartDelay = 500 * time.Millisecond
	// DefaultSettleDelay is how long the callout stays hidden after the
	// target changes, so the new element can report fresh bounds.
	DefaultSettleDelay = 500 * time.Millisecond
)

// Animator wraps visible state changes so a host animation system can
// interpolate between the old and new appearance. Animate must call apply
// exactly once before returning.
type Animator interface {
	Animate(apply func())
}

// AnimatorFunc adapts a function to the Animator interface.
type AnimatorFunc func(apply func())

// Animate calls f(apply).
func (f AnimatorFunc) Animate(apply func()) { f(apply) }

// Snapshot is the published, read-only view of a guide.
type Snapshot struct {
	RunID      uuid.UUID
	State      State
	Current    Tag
	HasCurrent bool
	// Index is the position of Current in the plan, or -1.
	Index int
	// Count is the number of steps in the plan.
	Count int
}

// Guide is the tour state machine. It owns the plan, the current step and
// the hidden/transition/active lifecycle.
//
// A Guide is not safe for concurrent use. Call every method, including
// Update, from the game loop goroutine.
type Guide struct {
	logger      *slog.Logger
	clock       *Clock
	ownsClock   bool
	settleDelay time.Duration
	animator    Animator

	// Current run. plan is nil when no run exists.
	runID      uuid.UUID
	plan       Plan
	delegate   Delegate
	current    Tag
	hasCurrent bool
	state      State
	// starting is set while the first step of the run waits for its start
	// delay. current may still hold the previous run's step meanwhile.
	starting bool

	// generation is bumped by every navigation, start and stop. Deferred
	// continuations capture it and do nothing if it has moved on.
	generation uint64
	animating  int

	subs    []subscriber
	nextSub uint32
}

// Option configures a Guide.
type Option func(*Guide)

// WithLogger sets the logger used for diagnostics. The default discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Guide) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithClock makes the guide schedule on a caller-owned clock. Guide.Update
// then leaves the clock alone; the caller advances it.
func WithClock(c *Clock) Option {
	return func(g *Guide) {
		if c != nil {
			g.clock = c
			g.ownsClock = false
		}
	}
}

// WithSettleDelay overrides DefaultSettleDelay.
func WithSettleDelay(d time.Duration) Option {
	return func(g *Guide) { g.settleDelay = d }
}

// WithAnimator installs the hook that wraps visible state changes.
func WithAnimator(a Animator) Option {
	return func(g *Guide) { g.animator = a }
}

// NewGuide creates a hidden guide with no plan.
func NewGuide(opts ...Option) *Guide {
	g := &Guide{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		clock:       NewClock(),
		ownsClock:   true,
		settleDelay: DefaultSettleDelay,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// StartOption configures a single Start call.
type StartOption func(*startConfig)

type startConfig struct {
	delay    time.Duration
	delegate Delegate
}

// WithStartDelay overrides DefaultStartDelay. A non-positive delay shows the
// first step immediately.
func WithStartDelay(d time.Duration) StartOption {
	return func(c *startConfig) { c.delay = d }
}

// WithDelegate customizes tap handling for this run.
func WithDelegate(d Delegate) StartOption {
	return func(c *startConfig) { c.delegate = d }
}

// Start begins a tour over plan. The first step is shown after the start
// delay. An empty plan is ignored. Starting while a run exists replaces it;
// any still-visible step stays on screen until the new first step is shown.
// Advance is ignored during that delay, so a restart always opens on the
// first step of plan. Jump still moves immediately.
func (g *Guide) Start(plan Plan, opts ...StartOption) {
	cfg := startConfig{delay: DefaultStartDelay}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(plan) == 0 {
		g.logger.Debug("waypoint: ignoring start with empty plan")
		return
	}

	g.generation++
	gen := g.generation
	g.runID = uuid.New()
	g.plan = plan.Clone()
	g.delegate = cfg.delegate
	g.logger.Debug("waypoint: tour started",
		"run", g.runID, "steps", len(g.plan), "delay", cfg.delay)
	g.emit(EventStarted, Tag{})

	first := g.plan[0]
	if cfg.delay <= 0 {
		g.moveTo(first)
		return
	}
	g.starting = true
	g.clock.AfterFunc(cfg.delay, func() {
		if g.generation != gen {
			return
		}
		g.moveTo(first)
	})
}

// Advance moves to the next step, or stops the tour after the last one.
// It does nothing when no step is current or the run is still waiting for
// its first step.
func (g *Guide) Advance() {
	if g.plan == nil || !g.hasCurrent || g.starting {
		return
	}
	i := g.plan.Index(g.current)
	if i < 0 {
		return
	}
	if i+1 >= len(g.plan) {
		g.finish(true, EventCompleted)
		return
	}
	g.moveTo(g.plan[i+1])
}

// Jump moves directly to tag, forward or backward. It does nothing when no
// run exists or tag is not part of the plan.
func (g *Guide) Jump(tag Tag) {
	if g.plan == nil || !g.plan.Contains(tag) {
		return
	}
	g.moveTo(tag)
}

// Stop ends the tour and hides the overlay. With animated set, the change is
// applied through the Animator so the dimming can fade out.
func (g *Guide) Stop(animated bool) {
	g.generation++
	if g.plan == nil && !g.hasCurrent && g.state == StateHidden {
		return
	}
	g.finish(animated, EventStopped)
}

func (g *Guide) finish(animated bool, kind EventKind) {
	g.generation++
	g.starting = false
	apply := func() {
		g.plan = nil
		g.delegate = nil
		g.current = Tag{}
		g.hasCurrent = false
		g.setState(StateHidden)
		g.emit(kind, Tag{})
	}
	g.logger.Debug("waypoint: tour finished", "run", g.runID, "reason", kind.String())
	if animated {
		g.animate(apply)
	} else {
		apply()
	}
}

// moveTo switches the current step. Coming from an active step the guide
// passes through StateTransition for the settle delay so the callout is not
// drawn against stale bounds.
func (g *Guide) moveTo(tag Tag) {
	g.starting = false
	g.generation++
	gen := g.generation

	g.animate(func() {
		if g.state != StateActive {
			g.current = tag
			g.hasCurrent = true
			g.setState(StateActive)
			g.emit(EventStepShown, tag)
			return
		}
		g.current = tag
		g.hasCurrent = true
		g.setState(StateTransition)
		g.clock.AfterFunc(g.settleDelay, func() {
			if g.generation != gen {
				g.logger.Debug("waypoint: dropping stale settle", "run", g.runID, "tag", tag.Key())
				return
			}
			g.animate(func() {
				g.setState(StateActive)
				g.emit(EventStepShown, tag)
			})
		})
	})
}

func (g *Guide) setState(s State) {
	if g.state == s {
		return
	}
	g.state = s
	g.emit(EventStateChanged, g.current)
}

func (g *Guide) animate(apply func()) {
	g.animating++
	defer func() { g.animating-- }()
	if g.animator == nil {
		apply()
		return
	}
	g.animator.Animate(apply)
}

// Update advances the guide's clock by dt, firing due delayed transitions.
// Call it once per tick from the game loop.
func (g *Guide) Update(dt time.Duration) {
	if g.ownsClock {
		g.clock.Advance(dt)
	}
}

// State returns the current lifecycle state.
func (g *Guide) State() State {
	return g.state
}

// Current returns the current step, if any.
func (g *Guide) Current() (Tag, bool) {
	return g.current, g.hasCurrent
}

// Running reports whether a run exists, including one still waiting for its
// start delay.
func (g *Guide) Running() bool {
	return g.plan != nil
}

// Plan returns the plan of the current run. The returned slice MUST NOT be mutated.
func (g *Guide) Plan() Plan {
	return g.plan
}

// Delegate returns the run's delegate, or DefaultDelegate when none was given.
func (g *Guide) Delegate() Delegate {
	if g.delegate == nil {
		return DefaultDelegate{}
	}
	return g.delegate
}

// Snapshot returns the published view of the guide.
func (g *Guide) Snapshot() Snapshot {
	s := Snapshot{
		RunID:      g.runID,
		State:      g.state,
		Current:    g.current,
		HasCurrent: g.hasCurrent,
		Index:      -1,
		Count:      len(g.plan),
	}
	if g.hasCurrent {
		s.Index = g.plan.Index(g.current)
	}
	return s
}

// Logger returns the guide's logger.
func (g *Guide) Logger() *slog.Logger {
	return g.logger
}
