package waypoint

import "testing"

func TestCalloutOffset(t *testing.T) {
	cutout := Rect{X: 100, Y: 100, Width: 100, Height: 50}
	size := Size{Width: 80, Height: 30}
	tests := []struct {
		edge Edge
		want Vec2
	}{
		{EdgeTop, Vec2{X: 110, Y: 70}},
		{EdgeBottom, Vec2{X: 110, Y: 150}},
		{EdgeLeading, Vec2{X: 20, Y: 110}},
		{EdgeTrailing, Vec2{X: 200, Y: 110}},
	}
	for _, tt := range tests {
		t.Run(tt.edge.String(), func(t *testing.T) {
			if got := CalloutOffset(cutout, size, tt.edge); got != tt.want {
				t.Errorf("CalloutOffset = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalloutOffsetUnmeasured(t *testing.T) {
	cutout := Rect{X: 100, Y: 100, Width: 100, Height: 50}
	if got := CalloutOffset(cutout, Size{}, EdgeTop); got != (Vec2{X: 150, Y: 100}) {
		t.Errorf("CalloutOffset = %v, want (150, 100)", got)
	}
}

func TestCalloutFrame(t *testing.T) {
	got := CalloutFrame(Rect{X: 0, Y: 200, Width: 40, Height: 40}, Size{Width: 60, Height: 20}, EdgeBottom)
	want := Rect{X: -10, Y: 240, Width: 60, Height: 20}
	if got != want {
		t.Errorf("CalloutFrame = %v, want %v", got, want)
	}
}

func TestBubbleShape(t *testing.T) {
	bounds := Rect{X: 10, Y: 20, Width: 100, Height: 40}
	tests := []struct {
		edge    Edge
		body    Rect
		pointer [3]Vec2
	}{
		{EdgeTop, Rect{X: 10, Y: 20, Width: 100, Height: 30},
			[3]Vec2{{55, 50}, {65, 50}, {60, 60}}},
		{EdgeBottom, Rect{X: 10, Y: 30, Width: 100, Height: 30},
			[3]Vec2{{55, 30}, {65, 30}, {60, 20}}},
		{EdgeLeading, Rect{X: 10, Y: 20, Width: 90, Height: 40},
			[3]Vec2{{100, 35}, {100, 45}, {110, 40}}},
		{EdgeTrailing, Rect{X: 20, Y: 20, Width: 90, Height: 40},
			[3]Vec2{{20, 35}, {20, 45}, {10, 40}}},
	}
	for _, tt := range tests {
		t.Run(tt.edge.String(), func(t *testing.T) {
			body, pointer := BubbleShape(bounds, tt.edge)
			if body != tt.body {
				t.Errorf("body = %v, want %v", body, tt.body)
			}
			if pointer != tt.pointer {
				t.Errorf("pointer = %v, want %v", pointer, tt.pointer)
			}
		})
	}
}

func TestBubbleLayout(t *testing.T) {
	inner := &fixedContent{size: Size{Width: 50, Height: 20}}
	tests := []struct {
		edge Edge
		want Size
	}{
		{EdgeTop, Size{Width: 50 + 12 + 32, Height: 20 + 12 + 10}},
		{EdgeBottom, Size{Width: 50 + 12 + 32, Height: 20 + 12 + 10}},
		{EdgeLeading, Size{Width: 50 + 12 + 32 + 10, Height: 20 + 12}},
		{EdgeTrailing, Size{Width: 50 + 12 + 32 + 10, Height: 20 + 12}},
	}
	for _, tt := range tests {
		t.Run(tt.edge.String(), func(t *testing.T) {
			if got := NewBubble(inner, tt.edge).Layout(Context{}); got != tt.want {
				t.Errorf("Layout = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRoundedRectPoints(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 40, Height: 20}
	pts := roundedRectPoints(r, 5)
	if len(pts) != 4*(bubbleCornerSteps+1) {
		t.Fatalf("points = %d, want %d", len(pts), 4*(bubbleCornerSteps+1))
	}
	for i, p := range pts {
		if p.X < -1e-9 || p.X > 40+1e-9 || p.Y < -1e-9 || p.Y > 20+1e-9 {
			t.Errorf("point %d %v outside %v", i, p, r)
		}
	}
	if got := roundedRectPoints(Rect{Width: 10}, 5); len(got) != 4 {
		t.Errorf("degenerate rect points = %d, want 4", len(got))
	}
}
