package waypoint

import (
	"math"
	"testing"
)

func TestCutoutFramesBands(t *testing.T) {
	got := CutoutFrames(Rect{X: 50, Y: 100, Width: 100, Height: 40}, Size{Width: 300, Height: 600})
	want := [4]Rect{
		BandLeft:   {X: 0, Y: 0, Width: 50, Height: 600},
		BandRight:  {X: 150, Y: 0, Width: 150, Height: 600},
		BandTop:    {X: 50, Y: 0, Width: 100, Height: 100},
		BandBottom: {X: 50, Y: 140, Width: 100, Height: 460},
	}
	if got != want {
		t.Errorf("CutoutFrames = %v, want %v", got, want)
	}
}

func TestCutoutFramesTileViewport(t *testing.T) {
	viewport := Size{Width: 320, Height: 480}
	cutouts := []struct {
		name string
		r    Rect
	}{
		{"centered", Rect{X: 100, Y: 200, Width: 120, Height: 44}},
		{"top-left corner", Rect{X: 0, Y: 0, Width: 60, Height: 60}},
		{"bottom edge", Rect{X: 10, Y: 400, Width: 300, Height: 80}},
		{"full width", Rect{X: 0, Y: 100, Width: 320, Height: 50}},
		{"fractional", Rect{X: 10.5, Y: 20.25, Width: 33.5, Height: 7.75}},
	}
	for _, tt := range cutouts {
		t.Run(tt.name, func(t *testing.T) {
			frames := CutoutFrames(tt.r, viewport)
			sum := tt.r.Area()
			for _, f := range frames {
				sum += f.Area()
			}
			if math.Abs(sum-viewport.Width*viewport.Height) > 1e-9 {
				t.Errorf("area sum = %v, want %v", sum, viewport.Width*viewport.Height)
			}
			for i := range frames {
				if frames[i].Overlaps(tt.r) {
					t.Errorf("band %d %v overlaps cutout", i, frames[i])
				}
				for j := i + 1; j < len(frames); j++ {
					if frames[i].Overlaps(frames[j]) {
						t.Errorf("band %d %v overlaps band %d %v", i, frames[i], j, frames[j])
					}
				}
			}
		})
	}
}

func TestCutoutFramesFullViewport(t *testing.T) {
	viewport := Size{Width: 200, Height: 100}
	frames := CutoutFrames(RectFromSize(viewport), viewport)
	for i, f := range frames {
		if !f.Empty() {
			t.Errorf("band %d = %v, want empty", i, f)
		}
	}
	if n := len(NonEmpty(nil, frames)); n != 0 {
		t.Errorf("NonEmpty = %d bands, want 0", n)
	}
}

func TestCutoutFramesOutsideViewport(t *testing.T) {
	// Partially off-screen cutouts produce negative bands rather than errors.
	frames := CutoutFrames(Rect{X: -20, Y: 10, Width: 50, Height: 20}, Size{Width: 100, Height: 100})
	if frames[BandLeft].Width != -20 {
		t.Errorf("left width = %v, want -20", frames[BandLeft].Width)
	}
	got := NonEmpty(nil, frames)
	if len(got) != 3 {
		t.Fatalf("NonEmpty = %d bands, want 3", len(got))
	}
	if got[0] != frames[BandRight] {
		t.Errorf("first non-empty band = %v, want right band", got[0])
	}
}

func TestNonEmptyAppends(t *testing.T) {
	dst := []Rect{{Width: 1, Height: 1}}
	frames := CutoutFrames(Rect{X: 10, Y: 10, Width: 10, Height: 10}, Size{Width: 30, Height: 30})
	dst = NonEmpty(dst, frames)
	if len(dst) != 5 {
		t.Errorf("len = %d, want 5", len(dst))
	}
}

func TestExtensionBounds(t *testing.T) {
	anchor := Rect{X: 100, Y: 200, Width: 80, Height: 40}
	tests := []struct {
		edge Edge
		want Rect
	}{
		{EdgeTop, Rect{X: 100, Y: 170, Width: 80, Height: 30}},
		{EdgeBottom, Rect{X: 100, Y: 240, Width: 80, Height: 30}},
		{EdgeLeading, Rect{X: 70, Y: 200, Width: 30, Height: 40}},
		{EdgeTrailing, Rect{X: 180, Y: 200, Width: 30, Height: 40}},
	}
	for _, tt := range tests {
		t.Run(tt.edge.String(), func(t *testing.T) {
			if got := ExtensionBounds(anchor, tt.edge, 30); got != tt.want {
				t.Errorf("ExtensionBounds = %v, want %v", got, tt.want)
			}
		})
	}
}
