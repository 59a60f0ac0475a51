package waypoint

import (
	"fmt"
	"image/color"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default callout fill.
var ColorWhite = Color{1, 1, 1, 1}

// DefaultDimColor is the tint applied outside the cutout when no color is configured.
var DefaultDimColor = Color{0, 0, 0, 0.4}

// DefaultSurfaceColor is the faint tint drawn over the cutout when the
// highlighted element intercepts taps.
var DefaultSurfaceColor = Color{0, 0, 0, 0.05}

// WithAlpha returns c with its alpha multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	c.A *= a
	return c
}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions and offsets throughout the API.
type Vec2 struct {
	X, Y float64
}

// Size is a width/height pair. The zero Size means "not measured yet".
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFromSize returns a rectangle at the origin covering s.
func RectFromSize(s Size) Rect {
	return Rect{Width: s.Width, Height: s.Height}
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MaxX() float64 { return r.X + r.Width }
func (r Rect) MidX() float64 { return r.X + r.Width/2 }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxY() float64 { return r.Y + r.Height }
func (r Rect) MidY() float64 { return r.Y + r.Height/2 }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{r.Width, r.Height}
}

// Area returns Width*Height, or 0 for degenerate rectangles.
func (r Rect) Area() float64 {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

// Empty reports whether the rectangle has no positive area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitContains is Contains with the right and bottom edges excluded, so
// rectangles that share an edge never both claim a point on it.
func (r Rect) HitContains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Overlaps reports whether r and other share interior area. Unlike a plain
// intersection test, rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.X < other.MaxX() && other.X < r.MaxX() &&
		r.Y < other.MaxY() && other.Y < r.MaxY()
}

// Offset returns r translated by v.
func (r Rect) Offset(v Vec2) Rect {
	r.X += v.X
	r.Y += v.Y
	return r
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
}

// Edge is the side of the highlighted element a callout attaches to.
type Edge uint8

const (
	EdgeTop      Edge = iota // callout sits above the cutout (default)
	EdgeBottom               // callout hangs below the cutout
	EdgeLeading              // callout sits to the left
	EdgeTrailing             // callout sits to the right
)

var edgeNames = [...]string{"top", "bottom", "leading", "trailing"}

func (e Edge) String() string {
	if int(e) < len(edgeNames) {
		return edgeNames[e]
	}
	return fmt.Sprintf("Edge(%d)", e)
}

// ParseEdge converts "top", "bottom", "leading" or "trailing" (case
// insensitive) to an Edge. "left" and "right" are accepted as aliases.
func ParseEdge(s string) (Edge, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "top":
		return EdgeTop, nil
	case "bottom":
		return EdgeBottom, nil
	case "leading", "left":
		return EdgeLeading, nil
	case "trailing", "right":
		return EdgeTrailing, nil
	}
	return EdgeTop, fmt.Errorf("%w: %q", ErrUnknownEdge, s)
}

// State is the visible lifecycle of a guide.
type State uint8

const (
	StateHidden     State = iota // no overlay, no current tag
	StateTransition              // dimming shown, callout suppressed while the new target settles
	StateActive                  // overlay and callout shown for the current tag
)

var stateNames = [...]string{"hidden", "transition", "active"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", s)
}

// ParseState converts a state name as printed by State.String.
func ParseState(s string) (State, error) {
	for i, name := range stateNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return State(i), nil
		}
	}
	return StateHidden, fmt.Errorf("waypoint: unknown state %q", s)
}
