package waypoint

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontSize is the size of DefaultFont, in pixels.
const DefaultFontSize = 14

// Font wraps Ebitengine's text/v2 for TrueType rendering.
type Font struct {
	face *text.GoTextFace
	lh   float64 // cached line height
}

// LoadFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadFont(ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("waypoint: failed to parse TTF data: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &Font{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

var (
	defaultFontOnce sync.Once
	defaultFont     *Font
)

// DefaultFont returns Go Regular at DefaultFontSize.
func DefaultFont() *Font {
	defaultFontOnce.Do(func() {
		f, err := LoadFont(goregular.TTF, DefaultFontSize)
		if err != nil {
			panic(err) // bundled font; cannot fail
		}
		defaultFont = f
	})
	return defaultFont
}

// MeasureString returns the width and height of the rendered text.
func (f *Font) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *Font) LineHeight() float64 {
	return f.lh
}

// Text is a Content that renders a block of text. Newlines start new lines.
type Text struct {
	Content string
	Font    *Font // nil means DefaultFont
	Color   Color // zero means black
	Padding float64
}

// NewText returns black text in the default font with 5px padding.
func NewText(s string) *Text {
	return &Text{Content: s, Padding: 5}
}

func (t *Text) font() *Font {
	if t.Font == nil {
		return DefaultFont()
	}
	return t.Font
}

// Layout measures the text plus padding.
func (t *Text) Layout(Context) Size {
	w, h := t.font().MeasureString(t.Content)
	return Size{Width: w + 2*t.Padding, Height: h + 2*t.Padding}
}

// Draw renders the text at the top-left of bounds, inset by the padding.
func (t *Text) Draw(dst *ebiten.Image, bounds Rect, ctx Context) {
	c := t.Color
	if c == (Color{}) {
		c = Color{A: 1}
	}
	c = c.WithAlpha(ctx.Alpha)
	f := t.font()
	op := &text.DrawOptions{}
	op.GeoM.Translate(bounds.X+t.Padding, bounds.Y+t.Padding)
	op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	op.LineSpacing = f.lh
	text.Draw(dst, t.Content, f.face, op)
}
