package waypoint

// touchKind distinguishes the TouchPolicy variants.
type touchKind uint8

const (
	touchAdvance touchKind = iota
	touchPassthrough
	touchCustom
)

// TouchPolicy decides what a tap on the highlighted element does. The zero
// value advances the tour.
type TouchPolicy struct {
	kind   touchKind
	action func()
}

// AdvanceOnTap returns the policy that advances the tour when the cutout is tapped.
func AdvanceOnTap() TouchPolicy { return TouchPolicy{kind: touchAdvance} }

// Passthrough returns the policy that leaves taps on the cutout to the host UI.
func Passthrough() TouchPolicy { return TouchPolicy{kind: touchPassthrough} }

// CustomTap returns a policy that calls fn instead of advancing. A nil fn
// makes taps on the cutout do nothing.
func CustomTap(fn func()) TouchPolicy { return TouchPolicy{kind: touchCustom, action: fn} }

// IsPassthrough reports whether taps fall through to the host.
func (p TouchPolicy) IsPassthrough() bool { return p.kind == touchPassthrough }

// IsCustom reports whether the policy carries a host callback.
func (p TouchPolicy) IsCustom() bool { return p.kind == touchCustom }

func (p TouchPolicy) String() string {
	switch p.kind {
	case touchPassthrough:
		return "passthrough"
	case touchCustom:
		return "custom"
	default:
		return "advance"
	}
}

// TagEntry is what a tagged element reports for one frame.
type TagEntry struct {
	Tag         Tag
	Bounds      Rect
	Callout     Callout
	TouchPolicy TouchPolicy
}

// MarkOption configures a single Mark call.
type MarkOption func(*TagEntry)

// WithTouchPolicy sets the touch policy for the marked element.
func WithTouchPolicy(p TouchPolicy) MarkOption {
	return func(e *TagEntry) { e.TouchPolicy = p }
}

// Frame accumulates the tagged elements that are mounted during one frame.
// Build a fresh Frame every update, mark each visible element on it and hand
// it to Overlay.Update. Elements that were not marked simply do not exist for
// that frame.
type Frame struct {
	entries map[Tag]TagEntry
	order   []Tag
}

// NewFrame returns an empty frame.
func NewFrame() *Frame {
	return &Frame{entries: make(map[Tag]TagEntry)}
}

// Reset empties the frame for reuse, keeping its storage.
func (f *Frame) Reset() {
	clear(f.entries)
	f.order = f.order[:0]
}

// Mark records tag at bounds with its callout. Marking the same tag twice in
// one frame keeps the last call.
func (f *Frame) Mark(tag Tag, bounds Rect, callout Callout, opts ...MarkOption) {
	e := TagEntry{Tag: tag, Bounds: bounds, Callout: callout}
	for _, opt := range opts {
		opt(&e)
	}
	f.put(e)
}

// MarkExtension records tag for the virtual region of the given thickness
// that extends off edge of anchor. See ExtensionBounds.
func (f *Frame) MarkExtension(tag Tag, anchor Rect, edge Edge, thickness float64, callout Callout, opts ...MarkOption) {
	f.Mark(tag, ExtensionBounds(anchor, edge, thickness), callout, opts...)
}

// Merge folds other into f. Entries from other overwrite entries in f with
// the same tag.
func (f *Frame) Merge(other *Frame) {
	if other == nil {
		return
	}
	for _, tag := range other.order {
		f.put(other.entries[tag])
	}
}

func (f *Frame) put(e TagEntry) {
	if f.entries == nil {
		f.entries = make(map[Tag]TagEntry)
	}
	if _, ok := f.entries[e.Tag]; !ok {
		f.order = append(f.order, e.Tag)
	}
	f.entries[e.Tag] = e
}

// Lookup returns the entry for tag, if it was marked this frame.
func (f *Frame) Lookup(tag Tag) (TagEntry, bool) {
	if f == nil {
		return TagEntry{}, false
	}
	e, ok := f.entries[tag]
	return e, ok
}

// Len returns the number of distinct tags marked.
func (f *Frame) Len() int {
	if f == nil {
		return 0
	}
	return len(f.order)
}

// Tags returns the marked tags in first-mark order. The returned slice MUST
// NOT be mutated.
func (f *Frame) Tags() []Tag {
	if f == nil {
		return nil
	}
	return f.order
}
