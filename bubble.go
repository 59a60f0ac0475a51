package waypoint

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	bubblePointerWidth  = 10
	bubblePointerHeight = 10
	bubbleCornerRadius  = 5
	bubbleCornerSteps   = 4
)

// Bubble wraps inner content in a speech bubble whose pointer faces the
// highlighted element. Edge must match the callout's edge.
type Bubble struct {
	Inner   Content
	Edge    Edge
	Fill    Color   // zero means white
	Padding float64 // space between the bubble outline and Inner
	Margin  float64 // horizontal space kept outside the bubble
}

// NewBubble returns a white bubble with the default padding and margin.
func NewBubble(inner Content, edge Edge) *Bubble {
	return &Bubble{Inner: inner, Edge: edge, Padding: 6, Margin: 16}
}

// TextCallout returns a callout showing s in a bubble attached to edge.
func TextCallout(s string, edge Edge) Callout {
	return Callout{Content: NewBubble(NewText(s), edge), Edge: edge}
}

// OKTextCallout is TextCallout with an "Ok!" affordance after a divider.
func OKTextCallout(s string, edge Edge) Callout {
	return Callout{Content: NewBubble(&okText{body: NewText(s), ok: NewText("Ok!")}, edge), Edge: edge}
}

// Layout returns the inner size plus padding, pointer and margin.
func (b *Bubble) Layout(ctx Context) Size {
	var inner Size
	if b.Inner != nil {
		inner = b.Inner.Layout(ctx)
	}
	s := Size{Width: inner.Width + 2*b.Padding + 2*b.Margin, Height: inner.Height + 2*b.Padding}
	switch b.Edge {
	case EdgeTop, EdgeBottom:
		s.Height += bubblePointerHeight
	default:
		s.Width += bubblePointerHeight
	}
	return s
}

// Draw paints the bubble body, its pointer and the inner content.
func (b *Bubble) Draw(dst *ebiten.Image, bounds Rect, ctx Context) {
	fill := b.Fill
	if fill == (Color{}) {
		fill = ColorWhite
	}
	fill = fill.WithAlpha(ctx.Alpha)

	shape := bounds
	shape.X += b.Margin
	shape.Width -= 2 * b.Margin
	body, pointer := BubbleShape(shape, b.Edge)
	fillPolygon(dst, roundedRectPoints(body, bubbleCornerRadius), fill)
	fillPolygon(dst, pointer[:], fill)

	if b.Inner != nil {
		inner := Rect{
			X:      body.X + b.Padding,
			Y:      body.Y + b.Padding,
			Width:  body.Width - 2*b.Padding,
			Height: body.Height - 2*b.Padding,
		}
		b.Inner.Draw(dst, inner, ctx)
	}
}

// BubbleShape splits bounds into the bubble body and the triangular pointer.
// The pointer sits on the side facing the highlighted element: a callout on
// EdgeTop points down, one on EdgeBottom points up, and so on.
func BubbleShape(bounds Rect, edge Edge) (body Rect, pointer [3]Vec2) {
	w, h := bounds.Width, bounds.Height
	x, y := bounds.X, bounds.Y
	switch edge {
	case EdgeBottom:
		pointer = [3]Vec2{
			{x + w/2 - bubblePointerWidth/2, y + bubblePointerHeight},
			{x + w/2 + bubblePointerWidth/2, y + bubblePointerHeight},
			{x + w/2, y},
		}
		body = Rect{X: x, Y: y + bubblePointerHeight, Width: w, Height: h - bubblePointerHeight}
	case EdgeLeading:
		pointer = [3]Vec2{
			{x + w - bubblePointerHeight, y + h/2 - bubblePointerWidth/2},
			{x + w - bubblePointerHeight, y + h/2 + bubblePointerWidth/2},
			{x + w, y + h/2},
		}
		body = Rect{X: x, Y: y, Width: w - bubblePointerHeight, Height: h}
	case EdgeTrailing:
		pointer = [3]Vec2{
			{x + bubblePointerHeight, y + h/2 - bubblePointerWidth/2},
			{x + bubblePointerHeight, y + h/2 + bubblePointerWidth/2},
			{x, y + h/2},
		}
		body = Rect{X: x + bubblePointerHeight, Y: y, Width: w - bubblePointerHeight, Height: h}
	default:
		pointer = [3]Vec2{
			{x + w/2 - bubblePointerWidth/2, y + h - bubblePointerHeight},
			{x + w/2 + bubblePointerWidth/2, y + h - bubblePointerHeight},
			{x + w/2, y + h},
		}
		body = Rect{X: x, Y: y, Width: w, Height: h - bubblePointerHeight}
	}
	return body, pointer
}

// roundedRectPoints approximates a rounded rectangle with a convex polygon,
// clockwise from the top-left corner.
func roundedRectPoints(r Rect, radius float64) []Vec2 {
	radius = math.Min(radius, math.Min(r.Width, r.Height)/2)
	if radius <= 0 {
		return []Vec2{{r.X, r.Y}, {r.MaxX(), r.Y}, {r.MaxX(), r.MaxY()}, {r.X, r.MaxY()}}
	}
	corners := [4]struct {
		cx, cy, start float64
	}{
		{r.X + radius, r.Y + radius, math.Pi},
		{r.MaxX() - radius, r.Y + radius, 1.5 * math.Pi},
		{r.MaxX() - radius, r.MaxY() - radius, 0},
		{r.X + radius, r.MaxY() - radius, 0.5 * math.Pi},
	}
	pts := make([]Vec2, 0, 4*(bubbleCornerSteps+1))
	for _, c := range corners {
		for i := 0; i <= bubbleCornerSteps; i++ {
			a := c.start + float64(i)/bubbleCornerSteps*(math.Pi/2)
			pts = append(pts, Vec2{c.cx + radius*math.Cos(a), c.cy + radius*math.Sin(a)})
		}
	}
	return pts
}

// okText lays out body, a 1px divider and an "Ok!" label on one row.
type okText struct {
	body, ok *Text
}

const okTextGap = 5

func (t *okText) Layout(ctx Context) Size {
	b := t.body.Layout(ctx)
	k := t.ok.Layout(ctx)
	return Size{Width: b.Width + okTextGap*2 + 1 + k.Width, Height: math.Max(b.Height, k.Height)}
}

func (t *okText) Draw(dst *ebiten.Image, bounds Rect, ctx Context) {
	b := t.body.Layout(ctx)
	t.body.Draw(dst, Rect{X: bounds.X, Y: bounds.Y, Width: b.Width, Height: bounds.Height}, ctx)
	divX := bounds.X + b.Width + okTextGap
	fillRect(dst, Rect{X: divX, Y: bounds.Y, Width: 1, Height: bounds.Height}, Color{A: ctx.Alpha})
	t.ok.Draw(dst, Rect{X: divX + 1 + okTextGap, Y: bounds.Y, Width: bounds.Width, Height: bounds.Height}, ctx)
}
