package waypoint

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Align positions the accessory view inside the viewport.
type Align uint8

const (
	AlignTopTrailing Align = iota // default, where a skip button usually lives
	AlignTop
	AlignTopLeading
	AlignBottomLeading
	AlignBottom
	AlignBottomTrailing
	AlignCenter
)

// OverlayConfig controls the look of an Overlay. The zero value is usable.
type OverlayConfig struct {
	// DimColor tints everything outside the cutout. Zero means DefaultDimColor.
	DimColor Color
	// SurfaceColor tints the cutout while it intercepts taps. Zero means
	// DefaultSurfaceColor.
	SurfaceColor Color
	// Accessory is drawn whenever the guide is not hidden, e.g. SkipButton().
	Accessory       Content
	AccessoryAlign  Align
	AccessoryMargin float64 // default 8
	// FadeDuration in seconds for animated changes. Zero means
	// DefaultFadeDuration; negative disables fading.
	FadeDuration float32
	Ease         ease.TweenFunc
	// ScreenshotDir receives PNGs queued with Screenshot. Default "screenshots".
	ScreenshotDir string
}

// CommandKind identifies what a DrawCommand paints.
type CommandKind uint8

const (
	CommandDim       CommandKind = iota // dimming rectangle outside the cutout
	CommandSurface                      // tap interception surface over the cutout
	CommandCallout                      // callout content
	CommandAccessory                    // host accessory view
)

var commandNames = [...]string{"dim", "surface", "callout", "accessory"}

func (k CommandKind) String() string {
	if int(k) < len(commandNames) {
		return commandNames[k]
	}
	return "unknown"
}

// DrawCommand is one paint instruction produced by the overlay for a frame.
// Commands are in painter order.
type DrawCommand struct {
	Kind   CommandKind
	Bounds Rect
	// Color is set for CommandDim and CommandSurface, with fades applied.
	Color Color
	// Content and Alpha are set for CommandCallout and CommandAccessory. An
	// Alpha of zero means the content is laid out but not drawn.
	Content Content
	Alpha   float64
}

// Overlay renders a Guide on top of the host's screen: dimming bands around
// the current element, the interception surface, the callout and the
// accessory. It also turns taps into guide navigation.
type Overlay struct {
	guide  *Guide
	cfg    OverlayConfig
	logger *slog.Logger
	sub    Subscription
	debug  bool

	viewport Size
	snap     Snapshot

	// Layout for the current frame.
	entry       TagEntry
	hasEntry    bool
	policy      TouchPolicy
	calloutSize Size
	commands    []DrawCommand
	hits        []hitRegion

	// Last active layout, kept so an animated stop can fade it out.
	last    TagEntry
	hasLast bool
	lastBox Rect

	dim     fade
	callout fade

	warned map[Tag]bool

	// Input state
	pointers        [maxPointers]pointerState
	touchMap        [maxPointers]ebiten.TouchID
	touchUsed       [maxPointers]bool
	prevTouchIDs    []ebiten.TouchID
	injectQueue     []syntheticPointerEvent
	readDevices     bool
	testRunner      *TestRunner
	screenshotQueue []string
}

// NewOverlay creates an overlay bound to g. The overlay subscribes to the
// guide; call Close to detach it.
func NewOverlay(g *Guide, cfg OverlayConfig) *Overlay {
	if cfg.DimColor == (Color{}) {
		cfg.DimColor = DefaultDimColor
	}
	if cfg.SurfaceColor == (Color{}) {
		cfg.SurfaceColor = DefaultSurfaceColor
	}
	if cfg.AccessoryMargin == 0 {
		cfg.AccessoryMargin = 8
	}
	if cfg.FadeDuration == 0 {
		cfg.FadeDuration = DefaultFadeDuration
	}
	if cfg.Ease == nil {
		cfg.Ease = ease.OutQuad
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	o := &Overlay{
		guide:       g,
		cfg:         cfg,
		logger:      g.Logger(),
		warned:      make(map[Tag]bool),
		readDevices: true,
	}
	o.snap = g.Snapshot()
	o.sync(g.State(), false)
	o.sub = g.Subscribe(o.onEvent)
	return o
}

// Close unsubscribes the overlay from its guide.
func (o *Overlay) Close() {
	o.sub.Remove()
}

// Guide returns the guide this overlay renders.
func (o *Overlay) Guide() *Guide {
	return o.guide
}

// SetDebugMode enables per-frame layout stats at debug log level.
func (o *Overlay) SetDebugMode(enabled bool) {
	o.debug = enabled
}

// SetInputEnabled controls whether Update reads the mouse and touchscreen.
// Injected events are processed either way.
func (o *Overlay) SetInputEnabled(enabled bool) {
	o.readDevices = enabled
}

func (o *Overlay) onEvent(ev Event) {
	o.snap = ev.Snapshot
	switch ev.Kind {
	case EventStarted:
		clear(o.warned)
	case EventStateChanged:
		o.sync(ev.Snapshot.State, ev.Animated)
	}
}

// sync retargets the fades for state. Animated changes tween, others snap.
func (o *Overlay) sync(s State, animated bool) {
	dimTarget, calloutTarget := 0.0, 0.0
	switch s {
	case StateActive:
		dimTarget, calloutTarget = 1, 1
	case StateTransition:
		dimTarget = 1
	}
	// The callout of the outgoing step is never faded; its replacement is
	// measured invisibly until the guide settles.
	if s == StateTransition {
		o.callout.snap(0)
	}
	if animated && o.cfg.FadeDuration > 0 {
		o.dim.to(dimTarget, o.cfg.FadeDuration, o.cfg.Ease)
		o.callout.to(calloutTarget, o.cfg.FadeDuration, o.cfg.Ease)
		return
	}
	o.dim.snap(dimTarget)
	o.callout.snap(calloutTarget)
}

// Update advances the guide by one tick, handles input and lays out the
// overlay for the next Draw. frame holds this tick's tagged elements and
// viewport is the size of the screen the overlay covers.
func (o *Overlay) Update(frame *Frame, viewport Size) {
	o.Step(frame, viewport, time.Second/time.Duration(ebiten.TPS()))
}

// Step is Update with an explicit tick length, for hosts that run their own
// clock and for tests.
func (o *Overlay) Step(frame *Frame, viewport Size, dt time.Duration) {
	o.guide.Update(dt)
	if o.testRunner != nil {
		o.testRunner.step(o)
	}
	o.processInput()

	secs := float32(dt.Seconds())
	o.dim.update(secs)
	o.callout.update(secs)

	var t0 time.Time
	if o.debug {
		t0 = time.Now()
	}
	o.layout(frame, viewport)
	if o.debug {
		o.debugLog(time.Since(t0))
	}
}

// Commands returns the paint instructions computed by the last Update. The
// returned slice MUST NOT be mutated.
func (o *Overlay) Commands() []DrawCommand {
	return o.commands
}

// CalloutSize returns the last measured size of the current callout.
func (o *Overlay) CalloutSize() Size {
	return o.calloutSize
}

// Cutout returns the highlighted rectangle of the current frame, if any.
func (o *Overlay) Cutout() (Rect, bool) {
	if !o.hasEntry || o.snap.State != StateActive {
		return Rect{}, false
	}
	return o.entry.Bounds, true
}

func (o *Overlay) context(alpha float64) Context {
	return Context{Guide: o.guide, Snapshot: o.snap, Alpha: alpha}
}

// layout rebuilds commands and hit regions for the current state.
func (o *Overlay) layout(frame *Frame, viewport Size) {
	o.viewport = viewport
	o.commands = o.commands[:0]
	o.hits = o.hits[:0]
	o.hasEntry = false

	state := o.guide.State()
	if state != StateHidden && o.snap.HasCurrent {
		o.entry, o.hasEntry = frame.Lookup(o.snap.Current)
		if o.hasEntry && o.entry.Callout.Content != nil {
			o.calloutSize = o.entry.Callout.Content.Layout(o.context(1))
		} else {
			o.calloutSize = Size{}
		}
	}

	switch state {
	case StateHidden:
		o.layoutFadeOut()
		return
	case StateTransition:
		o.layoutTransition()
	case StateActive:
		o.layoutActive()
	}
	o.layoutAccessory(true)
}

// layoutTransition dims the whole viewport and lays out the incoming callout
// invisibly. All taps are swallowed until the guide settles.
func (o *Overlay) layoutTransition() {
	full := RectFromSize(o.viewport)
	o.commands = append(o.commands, DrawCommand{
		Kind:   CommandDim,
		Bounds: full,
		Color:  o.cfg.DimColor.WithAlpha(o.dim.value),
	})
	o.hits = append(o.hits, hitRegion{kind: hitBlock, bounds: full})
	if o.hasEntry && o.entry.Callout.Content != nil {
		o.commands = append(o.commands, DrawCommand{
			Kind:    CommandCallout,
			Bounds:  CalloutFrame(o.entry.Bounds, o.calloutSize, o.entry.Callout.Edge),
			Content: o.entry.Callout.Content,
			Alpha:   0,
		})
	}
}

func (o *Overlay) layoutActive() {
	if !o.hasEntry {
		o.reportMissing(o.snap.Current)
		return
	}
	e := o.entry
	dimColor := o.cfg.DimColor.WithAlpha(o.dim.value)
	for _, band := range NonEmpty(nil, CutoutFrames(e.Bounds, o.viewport)) {
		o.commands = append(o.commands, DrawCommand{Kind: CommandDim, Bounds: band, Color: dimColor})
		o.hits = append(o.hits, hitRegion{kind: hitBackground, bounds: band})
	}

	o.policy = o.guide.Delegate().TouchPolicy(o.guide, e)
	if !o.policy.IsPassthrough() && !e.Callout.PassthroughTouches {
		o.commands = append(o.commands, DrawCommand{
			Kind:   CommandSurface,
			Bounds: e.Bounds,
			Color:  o.cfg.SurfaceColor.WithAlpha(o.dim.value),
		})
		o.hits = append(o.hits, hitRegion{kind: hitSurface, bounds: e.Bounds})
	}

	var box Rect
	if e.Callout.Content != nil {
		box = CalloutFrame(e.Bounds, o.calloutSize, e.Callout.Edge)
		o.commands = append(o.commands, DrawCommand{
			Kind:    CommandCallout,
			Bounds:  box,
			Content: e.Callout.Content,
			Alpha:   o.callout.value,
		})
		o.hits = append(o.hits, hitRegion{kind: hitCallout, bounds: box})
	}
	o.last, o.hasLast, o.lastBox = e, true, box
}

// layoutFadeOut keeps painting the last active step and the accessory while
// the dimming fades out after an animated stop. It intercepts nothing.
func (o *Overlay) layoutFadeOut() {
	if o.dim.value <= 0 {
		o.hasLast = false
		return
	}
	if o.hasLast {
		dimColor := o.cfg.DimColor.WithAlpha(o.dim.value)
		for _, band := range NonEmpty(nil, CutoutFrames(o.last.Bounds, o.viewport)) {
			o.commands = append(o.commands, DrawCommand{Kind: CommandDim, Bounds: band, Color: dimColor})
		}
		if o.last.Callout.Content != nil && o.callout.value > 0 {
			o.commands = append(o.commands, DrawCommand{
				Kind:    CommandCallout,
				Bounds:  o.lastBox,
				Content: o.last.Callout.Content,
				Alpha:   o.callout.value,
			})
		}
	}
	o.layoutAccessory(false)
}

// layoutAccessory places the accessory at the dim alpha. tappable adds its
// hit region.
func (o *Overlay) layoutAccessory(tappable bool) {
	acc := o.cfg.Accessory
	if acc == nil {
		return
	}
	size := acc.Layout(o.context(1))
	box := alignRect(size, o.viewport, o.cfg.AccessoryAlign, o.cfg.AccessoryMargin)
	o.commands = append(o.commands, DrawCommand{
		Kind:    CommandAccessory,
		Bounds:  box,
		Content: acc,
		Alpha:   o.dim.value,
	})
	if tappable {
		o.hits = append(o.hits, hitRegion{kind: hitAccessory, bounds: box})
	}
}

// reportMissing warns once per tag and run that the current step's element
// was not marked in the frame. Nothing is drawn for the step meanwhile.
func (o *Overlay) reportMissing(tag Tag) {
	if o.warned[tag] {
		return
	}
	o.warned[tag] = true
	o.logger.Warn("waypoint: current tag was not marked this frame",
		"tag", tag.Key(), "run", o.snap.RunID)
	o.guide.emit(EventMissingTag, tag)
}

// alignRect places a box of the given size inside viewport, inset by margin.
func alignRect(size, viewport Size, align Align, margin float64) Rect {
	r := Rect{Width: size.Width, Height: size.Height}
	left := margin
	right := viewport.Width - size.Width - margin
	top := margin
	bottom := viewport.Height - size.Height - margin
	centerX := (viewport.Width - size.Width) / 2
	centerY := (viewport.Height - size.Height) / 2
	switch align {
	case AlignTop:
		r.X, r.Y = centerX, top
	case AlignTopLeading:
		r.X, r.Y = left, top
	case AlignBottomLeading:
		r.X, r.Y = left, bottom
	case AlignBottom:
		r.X, r.Y = centerX, bottom
	case AlignBottomTrailing:
		r.X, r.Y = right, bottom
	case AlignCenter:
		r.X, r.Y = centerX, centerY
	default:
		r.X, r.Y = right, top
	}
	return r
}
