package waypoint

import "fmt"

// EventKind identifies what happened to a guide.
type EventKind uint8

const (
	EventStarted      EventKind = iota // a run was accepted; the first step is pending
	EventStateChanged                  // State changed
	EventStepShown                     // a step became active
	EventCompleted                     // the last step was advanced past
	EventStopped                       // the run was stopped before completion
	EventMissingTag                    // the current tag was not marked in the frame
)

var eventNames = [...]string{"started", "state_changed", "step_shown", "completed", "stopped", "missing_tag"}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", k)
}

// Event is published to subscribers after every observable change.
type Event struct {
	Kind     EventKind
	Snapshot Snapshot
	// Tag is the step concerned by EventStepShown and EventMissingTag.
	Tag Tag
	// Animated is true when the change happened inside the Animator hook, so
	// renderers should interpolate rather than snap.
	Animated bool
}

type subscriber struct {
	id uint32
	fn func(Event)
}

// Subscription allows removing a registered observer.
type Subscription struct {
	id    uint32
	guide *Guide
}

// Subscribe registers fn to be called with every event, in registration order.
func (g *Guide) Subscribe(fn func(Event)) Subscription {
	g.nextSub++
	id := g.nextSub
	g.subs = append(g.subs, subscriber{id: id, fn: fn})
	return Subscription{id: id, guide: g}
}

// Remove unregisters the observer so it no longer fires.
func (s Subscription) Remove() {
	if s.guide == nil {
		return
	}
	subs := s.guide.subs
	for i := range subs {
		if subs[i].id == s.id {
			copy(subs[i:], subs[i+1:])
			subs[len(subs)-1] = subscriber{}
			s.guide.subs = subs[:len(subs)-1]
			return
		}
	}
}

func (g *Guide) emit(kind EventKind, tag Tag) {
	if len(g.subs) == 0 {
		return
	}
	ev := Event{
		Kind:     kind,
		Snapshot: g.Snapshot(),
		Tag:      tag,
		Animated: g.animating > 0,
	}
	// Observers may subscribe or unsubscribe while being notified.
	subs := append([]subscriber(nil), g.subs...)
	for _, s := range subs {
		s.fn(ev)
	}
}
