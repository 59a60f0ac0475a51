package waypoint

// Band indices into the array returned by CutoutFrames.
const (
	BandLeft = iota
	BandRight
	BandTop
	BandBottom
)

// CutoutFrames returns the four rectangles that, together with cutout, tile
// the viewport:
//
//	left:   x in [0, cutout.MinX), full height
//	right:  x in [cutout.MaxX, viewport.Width), full height
//	top:    x in [cutout.MinX, cutout.MaxX), y in [0, cutout.MinY)
//	bottom: x in [cutout.MinX, cutout.MaxX), y in [cutout.MaxY, viewport.Height)
//
// Bands are never merged or clipped. When the cutout touches or crosses a
// viewport edge the corresponding band has zero or negative width or height;
// use NonEmpty to drop those before drawing.
func CutoutFrames(cutout Rect, viewport Size) [4]Rect {
	return [4]Rect{
		BandLeft:   {X: 0, Y: 0, Width: cutout.MinX(), Height: viewport.Height},
		BandRight:  {X: cutout.MaxX(), Y: 0, Width: viewport.Width - cutout.MaxX(), Height: viewport.Height},
		BandTop:    {X: cutout.MinX(), Y: 0, Width: cutout.Width, Height: cutout.MinY()},
		BandBottom: {X: cutout.MinX(), Y: cutout.MaxY(), Width: cutout.Width, Height: viewport.Height - cutout.MaxY()},
	}
}

// NonEmpty appends the frames with positive area to dst and returns it.
func NonEmpty(dst []Rect, frames [4]Rect) []Rect {
	for _, f := range frames {
		if !f.Empty() {
			dst = append(dst, f)
		}
	}
	return dst
}

// ExtensionBounds returns the virtual region of the given thickness that
// extends off one edge of anchor, spanning anchor's full length along that
// edge. It lets a tour point at empty space next to an element, e.g. the
// area just above a toolbar.
func ExtensionBounds(anchor Rect, edge Edge, thickness float64) Rect {
	switch edge {
	case EdgeTop:
		return Rect{X: anchor.X, Y: anchor.Y - thickness, Width: anchor.Width, Height: thickness}
	case EdgeBottom:
		return Rect{X: anchor.X, Y: anchor.MaxY(), Width: anchor.Width, Height: thickness}
	case EdgeLeading:
		return Rect{X: anchor.X - thickness, Y: anchor.Y, Width: thickness, Height: anchor.Height}
	default:
		return Rect{X: anchor.MaxX(), Y: anchor.Y, Width: thickness, Height: anchor.Height}
	}
}
