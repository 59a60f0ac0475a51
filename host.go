package waypoint

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Attachment ties a tour to the lifetime of a host screen. Create it with
// Attach when the screen is mounted and call Detach when it goes away.
type Attachment struct {
	guide  *Guide
	plan   Plan
	opts   []StartOption
	active bool
}

// Attach starts plan after startDelay when isActive is set. opts are passed
// to every Start made by the attachment.
func Attach(g *Guide, isActive bool, plan Plan, startDelay time.Duration, opts ...StartOption) *Attachment {
	a := &Attachment{guide: g, plan: plan.Clone(), opts: opts, active: isActive}
	if isActive {
		g.Start(a.plan, append([]StartOption{WithStartDelay(startDelay)}, opts...)...)
	}
	return a
}

// SetActive starts the tour immediately when active changes from false to
// true. Other changes do nothing.
func (a *Attachment) SetActive(active bool) {
	was := a.active
	a.active = active
	if active && !was {
		a.guide.Start(a.plan, append([]StartOption{WithStartDelay(0)}, a.opts...)...)
	}
}

// Detach stops the guide with animation, as when the host screen disappears.
func (a *Attachment) Detach() {
	a.guide.Stop(true)
}

// StopOnNavigate stops g when trigger is set. Call it with the "navigation
// link shown" flag of the host each frame.
func StopOnNavigate(g *Guide, trigger bool) {
	if trigger {
		g.Stop(true)
	}
}

// NavigationWatch stops a guide when a watched selection changes to Target,
// e.g. when the user switches to a tab the tour does not cover.
type NavigationWatch[T comparable] struct {
	Guide  *Guide
	Target T

	last   T
	primed bool
}

// Observe records the current selection. The guide is stopped when the value
// differs from the previous observation and equals Target. The first call
// only records the value.
func (w *NavigationWatch[T]) Observe(selection T) {
	changed := w.primed && selection != w.last
	w.last, w.primed = selection, true
	if changed && selection == w.Target {
		w.Guide.Stop(true)
	}
}

// skipButton is an accessory that stops the running tour when tapped.
type skipButton struct {
	label *Text
}

// SkipButton returns an accessory that reads "Skip" and stops the guide with
// animation when tapped. Use it as OverlayConfig.Accessory.
func SkipButton() Content {
	t := NewText("Skip")
	t.Padding = 10
	return &skipButton{label: t}
}

func (b *skipButton) Layout(ctx Context) Size {
	return b.label.Layout(ctx)
}

func (b *skipButton) Draw(dst *ebiten.Image, bounds Rect, ctx Context) {
	fillPolygon(dst, roundedRectPoints(bounds, bubbleCornerRadius), ColorWhite.WithAlpha(ctx.Alpha))
	b.label.Draw(dst, bounds, ctx)
}

func (b *skipButton) OnTap(ctx Context) {
	if ctx.Guide != nil {
		ctx.Guide.Stop(true)
	}
}
