package waypoint

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// --- Hit regions ---

type hitKind uint8

const (
	hitBackground hitKind = iota // dimmed band outside the cutout
	hitSurface                   // interception surface over the cutout
	hitCallout                   // the callout bubble
	hitAccessory                 // host accessory view
	hitBlock                     // swallows taps while the guide settles
)

// hitRegion is a tappable rectangle emitted alongside the draw commands, in
// painter order.
type hitRegion struct {
	kind   hitKind
	bounds Rect
}

// hitTest returns the index of the topmost region containing (x, y), or -1.
func (o *Overlay) hitTest(x, y float64) int {
	// Iterate backward (reverse painter order): topmost region first.
	for i := len(o.hits) - 1; i >= 0; i-- {
		if o.hits[i].bounds.HitContains(x, y) {
			return i
		}
	}
	return -1
}

// Intercepts reports whether a tap at (x, y) would be handled by the
// overlay. Hosts use it to skip their own input handling under the overlay;
// taps on a passthrough cutout are not intercepted.
func (o *Overlay) Intercepts(x, y float64) bool {
	return o.hitTest(x, y) >= 0
}

// Tap dispatches a tap at screen coordinates (x, y) against the current
// layout and reports whether the overlay consumed it. Unconsumed taps belong
// to the host UI underneath.
func (o *Overlay) Tap(x, y float64) bool {
	i := o.hitTest(x, y)
	if i < 0 {
		return false
	}
	o.dispatch(o.hits[i].kind)
	return true
}

func (o *Overlay) dispatch(kind hitKind) {
	g := o.guide
	switch kind {
	case hitBackground:
		g.Delegate().OnBackgroundTap(g)
	case hitCallout:
		g.Delegate().OnCalloutTap(g)
	case hitSurface:
		switch {
		case o.policy.IsCustom():
			if o.policy.action != nil {
				o.policy.action()
			}
		case o.policy.IsPassthrough():
			// Not reachable: passthrough cutouts emit no surface.
		default:
			g.Advance()
		}
	case hitAccessory:
		if t, ok := o.cfg.Accessory.(Tappable); ok {
			t.OnTap(o.context(o.dim.value))
		}
	case hitBlock:
	}
}

// --- Pointer processing ---

type pointerState struct {
	down     bool
	lastX    float64
	lastY    float64
	pressHit int // hit region index at press time, -1 for none
	pressOn  hitKind
}

// processInput handles injected events first; real devices are read only on
// frames without a synthetic event.
func (o *Overlay) processInput() {
	if o.processInjectedInput() {
		return
	}
	if !o.readDevices {
		return
	}
	o.processMousePointer()
	o.processTouchPointers()
}

// processMousePointer handles the left mouse button (pointer 0).
func (o *Overlay) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	o.processPointer(0, float64(mx), float64(my), pressed)
}

// processTouchPointers handles touch input (pointers 1-9).
func (o *Overlay) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(o.prevTouchIDs[:0])
	o.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := o.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		o.processPointer(slot, float64(tx), float64(ty), true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if o.touchUsed[i] && !activeSlots[i] {
			ps := &o.pointers[i]
			if ps.down {
				o.processPointer(i, ps.lastX, ps.lastY, false)
			}
			o.touchUsed[i] = false
			o.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (o *Overlay) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if o.touchUsed[i] && o.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !o.touchUsed[i] {
			o.touchUsed[i] = true
			o.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the press/release state machine for one pointer. A tap
// is a press and release over regions of the same kind.
func (o *Overlay) processPointer(pointerID int, x, y float64, pressed bool) {
	ps := &o.pointers[pointerID]
	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.pressHit = o.hitTest(x, y)
		if ps.pressHit >= 0 {
			ps.pressOn = o.hits[ps.pressHit].kind
		}
	case !pressed && ps.down:
		ps.down = false
		hit := o.hitTest(x, y)
		if ps.pressHit >= 0 && hit >= 0 && o.hits[hit].kind == ps.pressOn {
			o.dispatch(ps.pressOn)
		}
		ps.pressHit = -1
	}
	ps.lastX = x
	ps.lastY = y
}
