package waypoint

import (
	"errors"
	"testing"
)

func TestLoadTestScriptYAML(t *testing.T) {
	data := []byte(`
steps:
  - action: screenshot
    label: initial
  - {action: tap, x: 100, y: 200}
  - {action: wait, frames: 3}
  - {action: expect, state: active, tag: tour.b}
`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "tap" || runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Frames != 3 || runner.steps[3].Tag != "tour.b" {
		t.Error("step 2 or 3 mismatch")
	}
}

func TestLoadTestScriptJSON(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "advance"},
			{"action": "stop", "animate": true}
		]
	}`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 2 || !runner.steps[1].Animate {
		t.Errorf("steps = %+v", runner.steps)
	}
}

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid", `steps: [`},
		{"empty", `{"steps": []}`},
		{"unknown action", `steps: [{action: drag}]`},
		{"unknown state", `steps: [{action: expect, state: sleeping}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTestScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunnerStepTap(t *testing.T) {
	g := NewGuide()
	o := newTestOverlay(g, OverlayConfig{})
	frame := testFrame()
	g.Start(plan3, WithStartDelay(0))
	o.Step(frame, testViewport, tick)

	runner, err := LoadTestScript([]byte(`steps: [{action: tap, x: 10, y: 10}]`))
	if err != nil {
		t.Fatal(err)
	}

	// First step call: tap queues press and release.
	runner.step(o)
	if len(o.injectQueue) != 2 {
		t.Fatalf("expected 2 queued events, got %d", len(o.injectQueue))
	}
	if runner.Done() {
		t.Error("runner should not be done while inject queue has events")
	}

	o.processInput()
	o.processInput()
	assertState(t, g, StateTransition, stepB, true)

	runner.step(o)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}
}

func TestRunnerDrivesGuide(t *testing.T) {
	g := NewGuide()
	o := newTestOverlay(g, OverlayConfig{})
	frame := testFrame()
	g.Start(plan3, WithStartDelay(0))

	runner, err := LoadTestScript([]byte(`
steps:
  - {action: expect, state: active, tag: tour.a}
  - {action: jump, tag: tour.c}
  - {action: wait, frames: 40}
  - {action: expect, state: active, tag: tour.c}
  - {action: advance}
  - {action: expect, state: hidden}
`))
	if err != nil {
		t.Fatal(err)
	}
	o.SetTestRunner(runner)
	for i := 0; i < 100 && !runner.Done(); i++ {
		o.Step(frame, testViewport, tick)
	}
	if !runner.Done() {
		t.Fatal("runner did not finish")
	}
	if err := runner.Err(); err != nil {
		t.Errorf("expectations failed: %v", err)
	}
}

func TestRunnerReportsFailedExpectation(t *testing.T) {
	g := NewGuide()
	o := newTestOverlay(g, OverlayConfig{})
	runner, err := LoadTestScript([]byte(`steps: [{action: expect, state: active, tag: tour.a}]`))
	if err != nil {
		t.Fatal(err)
	}
	o.SetTestRunner(runner)
	o.Step(testFrame(), testViewport, tick)

	err = runner.Err()
	if err == nil {
		t.Fatal("expected failures")
	}
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) || len(joined.Unwrap()) != 2 {
		t.Errorf("err = %v, want state and tag failures", err)
	}
}
