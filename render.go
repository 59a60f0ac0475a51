package waypoint

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixel is a 1x1 white image scaled and tinted to draw solid rectangles.
// Created lazily so the package can be used without a graphics context.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	return whitePixel
}

// Draw paints the commands computed by the last Update onto screen, then
// captures any queued screenshots.
func (o *Overlay) Draw(screen *ebiten.Image) {
	for i := range o.commands {
		cmd := &o.commands[i]
		switch cmd.Kind {
		case CommandDim, CommandSurface:
			fillRect(screen, cmd.Bounds, cmd.Color)
		case CommandCallout, CommandAccessory:
			if cmd.Content == nil || cmd.Alpha <= 0 {
				continue
			}
			cmd.Content.Draw(screen, cmd.Bounds, o.context(cmd.Alpha))
		}
	}
	o.flushScreenshots(screen)
}

// fillRect draws a solid rectangle. Degenerate rectangles are skipped.
func fillRect(dst *ebiten.Image, r Rect, c Color) {
	if r.Empty() || c.A <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	// Premultiply at submission time.
	op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	dst.DrawImage(ensureWhitePixel(), &op)
}

// fillPolygon draws a convex polygon with fan triangulation.
func fillPolygon(dst *ebiten.Image, points []Vec2, c Color) {
	verts, inds := buildPolygonFan(points, c)
	if len(verts) == 0 {
		return
	}
	dst.DrawTriangles(verts, inds, ensureWhitePixel(), &ebiten.DrawTrianglesOptions{})
}

// buildPolygonFan generates vertices and indices for a fan-triangulated
// convex polygon: N vertices, 3*(N-2) indices. Colors are premultiplied.
func buildPolygonFan(points []Vec2, c Color) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 3 {
		return nil, nil
	}
	verts := make([]ebiten.Vertex, n)
	inds := make([]uint16, (n-2)*3)
	for i, p := range points {
		v := &verts[i]
		v.DstX = float32(p.X)
		v.DstY = float32(p.Y)
		// Untextured: sample the center of the white pixel.
		v.SrcX = 0.5
		v.SrcY = 0.5
		v.ColorR = float32(c.R * c.A)
		v.ColorG = float32(c.G * c.A)
		v.ColorB = float32(c.B * c.A)
		v.ColorA = float32(c.A)
	}
	// Vertex 0 is the hub.
	for i := 0; i < n-2; i++ {
		inds[i*3+0] = 0
		inds[i*3+1] = uint16(i + 1)
		inds[i*3+2] = uint16(i + 2)
	}
	return verts, inds
}
