package waypoint

import "testing"

func TestParseTag(t *testing.T) {
	tests := []struct {
		in   string
		want Tag
	}{
		{"home.search", Tag{Namespace: "home", Name: "search"}},
		{"app.home.search", Tag{Namespace: "app.home", Name: "search"}},
		{"search", Tag{Name: "search"}},
		{"", Tag{}},
	}
	for _, tt := range tests {
		got := ParseTag(tt.in)
		if got != tt.want {
			t.Errorf("ParseTag(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
		if got.Key() != tt.in {
			t.Errorf("ParseTag(%q).Key() = %q", tt.in, got.Key())
		}
	}
}

func TestTagIdentity(t *testing.T) {
	a := NewTag("profile", "name")
	b := NewTag("profile", "name")
	c := NewTag("settings", "name")
	if a != b {
		t.Error("tags with the same namespace and name should be equal")
	}
	if a == c {
		t.Error("tags in different namespaces should differ")
	}
	if !(Tag{}).IsZero() || a.IsZero() {
		t.Error("IsZero mismatch")
	}
}

func TestPlan(t *testing.T) {
	p := TagsOf("profile", "picture", "name", "username")
	if len(p) != 3 {
		t.Fatalf("len = %d, want 3", len(p))
	}
	if p.Index(NewTag("profile", "name")) != 1 {
		t.Errorf("Index(name) = %d, want 1", p.Index(NewTag("profile", "name")))
	}
	if p.Index(NewTag("other", "name")) != -1 {
		t.Error("Index of a tag from another namespace should be -1")
	}
	if !p.Contains(p[2]) {
		t.Error("Contains(username) = false")
	}

	c := p.Clone()
	c[0] = NewTag("x", "y")
	if p[0] == c[0] {
		t.Error("Clone shares storage with the original")
	}
	if Plan(nil).Clone() != nil {
		t.Error("Clone of nil plan should be nil")
	}
}
