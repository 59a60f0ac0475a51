package waypoint

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// TourFile is a set of named tours loaded from YAML:
//
//	tours:
//	  home:
//	    namespace: home
//	    start_delay: 750ms
//	    steps:
//	      - name: search
//	        text: Find anything from here.
//	        edge: bottom
//	      - name: map
//	        text: Drag the map around.
//	        touch: passthrough
//	        ok: true
type TourFile struct {
	Tours map[string]*Tour `yaml:"tours"`
}

// Tour is one plan with the callout text for each step.
type Tour struct {
	// Name is the key of the tour in the file.
	Name      string `yaml:"-"`
	Namespace string `yaml:"namespace"`
	// StartDelay overrides DefaultStartDelay when set.
	StartDelay *time.Duration `yaml:"start_delay"`
	Steps      []TourStep     `yaml:"steps"`
}

// TourStep describes the callout shown for one tag.
type TourStep struct {
	Name  string `yaml:"name"`
	Text  string `yaml:"text"`
	Edge  string `yaml:"edge"`
	Touch string `yaml:"touch"`
	OK    bool   `yaml:"ok"`
}

// LoadTourFile reads and validates a tour file.
func LoadTourFile(path string) (*TourFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("waypoint: read tour file: %w", err)
	}
	return ParseTourFile(data)
}

// ParseTourFile decodes and validates tour file data. A tour without a
// namespace uses its name.
func ParseTourFile(data []byte) (*TourFile, error) {
	var f TourFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("waypoint: parse tour file: %w", err)
	}
	if len(f.Tours) == 0 {
		return nil, fmt.Errorf("%w: file defines no tours", ErrEmptyTour)
	}
	for name, t := range f.Tours {
		if t == nil {
			return nil, fmt.Errorf("%w: %q", ErrEmptyTour, name)
		}
		t.Name = name
		if t.Namespace == "" {
			t.Namespace = name
		}
		if err := t.validate(); err != nil {
			return nil, err
		}
	}
	return &f, nil
}

// Names returns the tour names in sorted order.
func (f *TourFile) Names() []string {
	names := make([]string, 0, len(f.Tours))
	for name := range f.Tours {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Tour returns the named tour.
func (f *TourFile) Tour(name string) (*Tour, error) {
	t, ok := f.Tours[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTour, name)
	}
	return t, nil
}

func (t *Tour) validate() error {
	if len(t.Steps) == 0 {
		return fmt.Errorf("%w: %q", ErrEmptyTour, t.Name)
	}
	seen := make(map[string]bool, len(t.Steps))
	for i, s := range t.Steps {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return fmt.Errorf("waypoint: tour %q step %d has no name", t.Name, i)
		}
		if seen[name] {
			return fmt.Errorf("%w: tour %q step %q", ErrDuplicateStep, t.Name, name)
		}
		seen[name] = true
		if _, err := ParseEdge(s.Edge); err != nil {
			return fmt.Errorf("tour %q step %q: %w", t.Name, name, err)
		}
		if _, err := ParseTouchPolicy(s.Touch); err != nil {
			return fmt.Errorf("tour %q step %q: %w", t.Name, name, err)
		}
	}
	return nil
}

// Plan returns the tags of the tour in step order.
func (t *Tour) Plan() Plan {
	p := make(Plan, len(t.Steps))
	for i, s := range t.Steps {
		p[i] = t.Tag(s.Name)
	}
	return p
}

// Tag returns the tag of the named step.
func (t *Tour) Tag(step string) Tag {
	return NewTag(t.Namespace, strings.TrimSpace(step))
}

// Step returns the named step.
func (t *Tour) Step(name string) (TourStep, bool) {
	for _, s := range t.Steps {
		if strings.TrimSpace(s.Name) == strings.TrimSpace(name) {
			return s, true
		}
	}
	return TourStep{}, false
}

// StartOptions returns the options for Guide.Start encoded in the tour.
func (t *Tour) StartOptions() []StartOption {
	if t.StartDelay == nil {
		return nil
	}
	return []StartOption{WithStartDelay(*t.StartDelay)}
}

// Start begins the tour on g. opts are applied after the tour's own options.
func (t *Tour) Start(g *Guide, opts ...StartOption) {
	g.Start(t.Plan(), append(t.StartOptions(), opts...)...)
}

// Mark records the named step's element in frame with the callout and touch
// policy described by the tour. It reports false for an unknown step.
func (t *Tour) Mark(frame *Frame, step string, bounds Rect) bool {
	s, ok := t.Step(step)
	if !ok {
		return false
	}
	frame.Mark(t.Tag(step), bounds, s.Callout(), WithTouchPolicy(s.TouchPolicy()))
	return true
}

// Callout returns the text callout for the step. Steps validated by
// ParseTourFile never fall back to the default edge.
func (s TourStep) Callout() Callout {
	edge, _ := ParseEdge(s.Edge)
	if s.OK {
		return OKTextCallout(s.Text, edge)
	}
	return TextCallout(s.Text, edge)
}

// TouchPolicy returns the step's touch policy.
func (s TourStep) TouchPolicy() TouchPolicy {
	p, _ := ParseTouchPolicy(s.Touch)
	return p
}

// ParseTouchPolicy converts "advance" (or empty) and "passthrough" to a
// TouchPolicy. Custom policies cannot be expressed in a file.
func ParseTouchPolicy(s string) (TouchPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "advance":
		return AdvanceOnTap(), nil
	case "passthrough":
		return Passthrough(), nil
	}
	return AdvanceOnTap(), fmt.Errorf("%w: %q", ErrUnknownTouch, s)
}
