package waypoint

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a pointer press at the given screen coordinates. The
// event is consumed on the next Update.
func (o *Overlay) InjectPress(x, y float64) {
	o.injectQueue = append(o.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (o *Overlay) InjectRelease(x, y float64) {
	o.injectQueue = append(o.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectTap queues a press followed by a release at the same coordinates.
// Consumes two frames.
func (o *Overlay) InjectTap(x, y float64) {
	o.InjectPress(x, y)
	o.InjectRelease(x, y)
}

// PendingInjections returns the number of queued synthetic events.
func (o *Overlay) PendingInjections() int {
	return len(o.injectQueue)
}

// processInjectedInput pops one event from the queue and feeds it through
// the mouse pointer. Returns true if an event was consumed.
func (o *Overlay) processInjectedInput() bool {
	if len(o.injectQueue) == 0 {
		return false
	}
	evt := o.injectQueue[0]
	copy(o.injectQueue, o.injectQueue[1:])
	o.injectQueue = o.injectQueue[:len(o.injectQueue)-1]

	o.processPointer(0, evt.x, evt.y, evt.pressed)
	return true
}
