package waypoint

import "testing"

var (
	tagA = NewTag("test", "a")
	tagB = NewTag("test", "b")
	tagC = NewTag("test", "c")
)

func TestFrameMarkLookup(t *testing.T) {
	f := NewFrame()
	f.Mark(tagA, Rect{X: 1, Y: 2, Width: 3, Height: 4}, Callout{Edge: EdgeBottom})

	e, ok := f.Lookup(tagA)
	if !ok {
		t.Fatal("Lookup(a) not found")
	}
	if e.Tag != tagA || e.Bounds != (Rect{X: 1, Y: 2, Width: 3, Height: 4}) || e.Callout.Edge != EdgeBottom {
		t.Errorf("entry = %+v", e)
	}
	if e.TouchPolicy.IsPassthrough() || e.TouchPolicy.IsCustom() {
		t.Errorf("default policy = %v, want advance", e.TouchPolicy)
	}
	if _, ok := f.Lookup(tagB); ok {
		t.Error("Lookup(b) found an unmarked tag")
	}
}

func TestFrameDuplicateLastWins(t *testing.T) {
	f := NewFrame()
	f.Mark(tagA, Rect{Width: 10, Height: 10}, Callout{})
	f.Mark(tagB, Rect{Width: 20, Height: 20}, Callout{})
	f.Mark(tagA, Rect{Width: 30, Height: 30}, Callout{}, WithTouchPolicy(Passthrough()))

	e, _ := f.Lookup(tagA)
	if e.Bounds.Width != 30 || !e.TouchPolicy.IsPassthrough() {
		t.Errorf("entry = %+v, want the last mark", e)
	}
	if f.Len() != 2 {
		t.Errorf("Len = %d, want 2", f.Len())
	}
	if tags := f.Tags(); tags[0] != tagA || tags[1] != tagB {
		t.Errorf("Tags = %v, want first-mark order", tags)
	}
}

func TestFrameMerge(t *testing.T) {
	parent := NewFrame()
	parent.Mark(tagA, Rect{Width: 1, Height: 1}, Callout{})
	parent.Mark(tagB, Rect{Width: 2, Height: 2}, Callout{})

	child := NewFrame()
	child.Mark(tagB, Rect{Width: 5, Height: 5}, Callout{})
	child.Mark(tagC, Rect{Width: 6, Height: 6}, Callout{})

	parent.Merge(child)
	parent.Merge(nil)

	if parent.Len() != 3 {
		t.Fatalf("Len = %d, want 3", parent.Len())
	}
	if e, _ := parent.Lookup(tagB); e.Bounds.Width != 5 {
		t.Errorf("merged b width = %v, want 5 (right side wins)", e.Bounds.Width)
	}
	if e, _ := parent.Lookup(tagA); e.Bounds.Width != 1 {
		t.Errorf("a width = %v, want 1", e.Bounds.Width)
	}
}

func TestFrameReset(t *testing.T) {
	f := NewFrame()
	f.Mark(tagA, Rect{Width: 1, Height: 1}, Callout{})
	f.Reset()
	if f.Len() != 0 {
		t.Errorf("Len after Reset = %d", f.Len())
	}
	if _, ok := f.Lookup(tagA); ok {
		t.Error("Lookup found a tag after Reset")
	}
}

func TestFrameNilAndZero(t *testing.T) {
	var nilFrame *Frame
	if _, ok := nilFrame.Lookup(tagA); ok {
		t.Error("nil frame Lookup found a tag")
	}
	if nilFrame.Len() != 0 || nilFrame.Tags() != nil {
		t.Error("nil frame should be empty")
	}

	var zero Frame
	zero.Mark(tagA, Rect{Width: 1, Height: 1}, Callout{})
	if zero.Len() != 1 {
		t.Errorf("zero frame Len = %d, want 1", zero.Len())
	}
}

func TestFrameMarkExtension(t *testing.T) {
	f := NewFrame()
	f.MarkExtension(tagA, Rect{X: 10, Y: 10, Width: 20, Height: 20}, EdgeBottom, 15, Callout{})
	e, _ := f.Lookup(tagA)
	if e.Bounds != (Rect{X: 10, Y: 30, Width: 20, Height: 15}) {
		t.Errorf("extension bounds = %v", e.Bounds)
	}
}

func TestTouchPolicyString(t *testing.T) {
	tests := []struct {
		p    TouchPolicy
		want string
	}{
		{TouchPolicy{}, "advance"},
		{AdvanceOnTap(), "advance"},
		{Passthrough(), "passthrough"},
		{CustomTap(func() {}), "custom"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("String = %q, want %q", got, tt.want)
		}
	}
}
