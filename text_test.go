package waypoint

import "testing"

func TestLoadFontInvalid(t *testing.T) {
	if _, err := LoadFont([]byte("not a font"), 12); err == nil {
		t.Error("LoadFont accepted garbage")
	}
}

func TestDefaultFontShared(t *testing.T) {
	if DefaultFont() != DefaultFont() {
		t.Error("DefaultFont returned different fonts")
	}
	if DefaultFont().LineHeight() <= 0 {
		t.Error("LineHeight <= 0")
	}
}

func TestTextLayout(t *testing.T) {
	one := NewText("Hello")
	two := NewText("Hello\nHello")
	s1 := one.Layout(Context{})
	s2 := two.Layout(Context{})
	if s1.Width <= 10 || s1.Height <= 10 {
		t.Errorf("Layout = %v, want text plus padding", s1)
	}
	if s2.Width != s1.Width {
		t.Errorf("two-line width = %v, want %v", s2.Width, s1.Width)
	}
	if s2.Height <= s1.Height {
		t.Errorf("two-line height = %v, want more than %v", s2.Height, s1.Height)
	}

	one.Padding = 0
	w, h := DefaultFont().MeasureString("Hello")
	if got := one.Layout(Context{}); got != (Size{Width: w, Height: h}) {
		t.Errorf("Layout without padding = %v, want (%v, %v)", got, w, h)
	}
}
