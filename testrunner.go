package waypoint

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// testStep is a single action in a test script.
type testStep struct {
	Action  string  `yaml:"action" json:"action"`
	Label   string  `yaml:"label,omitempty" json:"label,omitempty"`
	X       float64 `yaml:"x,omitempty" json:"x,omitempty"`
	Y       float64 `yaml:"y,omitempty" json:"y,omitempty"`
	Frames  int     `yaml:"frames,omitempty" json:"frames,omitempty"`
	Tag     string  `yaml:"tag,omitempty" json:"tag,omitempty"`
	State   string  `yaml:"state,omitempty" json:"state,omitempty"`
	Animate bool    `yaml:"animate,omitempty" json:"animate,omitempty"`
}

type testScript struct {
	Steps []testStep `yaml:"steps" json:"steps"`
}

var testActions = map[string]bool{
	"tap": true, "press": true, "release": true, "wait": true,
	"screenshot": true, "advance": true, "jump": true, "stop": true,
	"expect": true,
}

// TestRunner sequences injected taps, guide commands, expectations and
// screenshots across frames. Attach it to an Overlay with SetTestRunner.
//
// Scripts are YAML, so JSON scripts load unchanged:
//
//	steps:
//	  - {action: wait, frames: 40}
//	  - {action: expect, state: active, tag: home.search}
//	  - {action: tap, x: 20, y: 20}
//	  - {action: screenshot, label: second-step}
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	failures  []error
}

// LoadTestScript parses a test script and returns a TestRunner.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, errors.New("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !testActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
		if st.State != "" {
			if _, err := ParseState(st.State); err != nil {
				return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
			}
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a runner. It is stepped from Update before input
// is processed each frame.
func (o *Overlay) SetTestRunner(runner *TestRunner) {
	o.testRunner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Err returns the failed expectations joined, or nil.
func (r *TestRunner) Err() error {
	return errors.Join(r.failures...)
}

func (r *TestRunner) step(o *Overlay) {
	if r.done {
		return
	}
	// Let pending injections drain first.
	if len(o.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	g := o.guide
	switch st.Action {
	case "screenshot":
		o.Screenshot(st.Label)
	case "tap":
		o.InjectTap(st.X, st.Y)
	case "press":
		o.InjectPress(st.X, st.Y)
	case "release":
		o.InjectRelease(st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "advance":
		g.Advance()
	case "jump":
		g.Jump(ParseTag(st.Tag))
	case "stop":
		g.Stop(st.Animate)
	case "expect":
		r.expect(o, st)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(o.injectQueue) == 0 {
		r.done = true
	}
}

func (r *TestRunner) expect(o *Overlay, st testStep) {
	snap := o.guide.Snapshot()
	if st.State != "" && snap.State.String() != st.State {
		r.fail(o, fmt.Errorf("step %d: state is %s, want %s", r.cursor-1, snap.State, st.State))
	}
	if st.Tag != "" && (!snap.HasCurrent || snap.Current != ParseTag(st.Tag)) {
		r.fail(o, fmt.Errorf("step %d: current tag is %q, want %q", r.cursor-1, snap.Current.Key(), st.Tag))
	}
}

func (r *TestRunner) fail(o *Overlay, err error) {
	r.failures = append(r.failures, err)
	o.logger.Warn("waypoint: test script expectation failed", "error", err)
}
