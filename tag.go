package waypoint

import "strings"

// Tag identifies one tour step and the on-screen element bound to it.
//
// Two tags are the same step exactly when both Namespace and Name are equal,
// so Tag can be compared with == and used as a map key. The namespace plays
// the role of an enum type and Name the role of one of its cases; keep them
// stable across frames for the same logical element.
type Tag struct {
	Namespace string
	Name      string
}

// NewTag returns the tag for name within namespace.
func NewTag(namespace, name string) Tag {
	return Tag{Namespace: namespace, Name: name}
}

// ParseTag splits "namespace.name" at the last dot. A key without a dot is
// treated as a bare name in the empty namespace.
func ParseTag(key string) Tag {
	i := strings.LastIndexByte(key, '.')
	if i < 0 {
		return Tag{Name: key}
	}
	return Tag{Namespace: key[:i], Name: key[i+1:]}
}

// Key returns the stable string identity "namespace.name".
func (t Tag) Key() string {
	if t.Namespace == "" {
		return t.Name
	}
	return t.Namespace + "." + t.Name
}

func (t Tag) String() string {
	return t.Key()
}

// IsZero reports whether t is the zero tag.
func (t Tag) IsZero() bool {
	return t == Tag{}
}

// Plan is the ordered sequence of tags a tour walks through.
type Plan []Tag

// TagsOf returns a plan containing one tag per name, all in namespace, in
// the given order.
func TagsOf(namespace string, names ...string) Plan {
	p := make(Plan, len(names))
	for i, name := range names {
		p[i] = Tag{Namespace: namespace, Name: name}
	}
	return p
}

// Index returns the position of tag in the plan, or -1.
func (p Plan) Index(tag Tag) int {
	for i, t := range p {
		if t == tag {
			return i
		}
	}
	return -1
}

// Contains reports whether tag is part of the plan.
func (p Plan) Contains(tag Tag) bool {
	return p.Index(tag) >= 0
}

// Clone returns a copy that shares no storage with p.
func (p Plan) Clone() Plan {
	if p == nil {
		return nil
	}
	out := make(Plan, len(p))
	copy(out, p)
	return out
}
