package waypoint

import "github.com/hajimehoshi/ebiten/v2"

// Context is what a Content sees when it is measured or drawn.
type Context struct {
	Guide    *Guide
	Snapshot Snapshot
	// Alpha is the overlay fade multiplier in [0, 1]. Contents should scale
	// their own colors by it.
	Alpha float64
}

// Content is a displayable unit produced for the current tour context: the
// body of a callout or the accessory view. The core never inspects it beyond
// measuring and drawing.
type Content interface {
	// Layout returns the size the content wants to occupy.
	Layout(ctx Context) Size
	// Draw renders the content into bounds on dst.
	Draw(dst *ebiten.Image, bounds Rect, ctx Context)
}

// Tappable is implemented by contents that handle their own taps, such as a
// skip button used as an accessory.
type Tappable interface {
	OnTap(ctx Context)
}

// Callout describes the explanatory bubble shown next to a highlighted element.
type Callout struct {
	Content Content
	Edge    Edge
	// PassthroughTouches disables the interception surface over the cutout
	// for this callout regardless of the tag's touch policy.
	PassthroughTouches bool
}

// CalloutOffset returns the top-left corner for a callout of the given size
// attached to edge of cutout. A zero size (not yet measured) yields an
// approximate position that callers recompute once the size is known.
func CalloutOffset(cutout Rect, size Size, edge Edge) Vec2 {
	switch edge {
	case EdgeBottom:
		return Vec2{X: cutout.MidX() - size.Width/2, Y: cutout.MaxY()}
	case EdgeLeading:
		return Vec2{X: cutout.MinX() - size.Width, Y: cutout.MidY() - size.Height/2}
	case EdgeTrailing:
		return Vec2{X: cutout.MaxX(), Y: cutout.MidY() - size.Height/2}
	default:
		return Vec2{X: cutout.MidX() - size.Width/2, Y: cutout.MinY() - size.Height}
	}
}

// CalloutFrame is CalloutOffset expressed as a rectangle of the given size.
func CalloutFrame(cutout Rect, size Size, edge Edge) Rect {
	o := CalloutOffset(cutout, size, edge)
	return Rect{X: o.X, Y: o.Y, Width: size.Width, Height: size.Height}
}
