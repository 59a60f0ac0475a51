package waypoint

import "testing"

func TestDefaultDelegate(t *testing.T) {
	g := NewGuide()
	g.Start(plan3, WithStartDelay(0))
	d := DefaultDelegate{}

	d.OnBackgroundTap(g)
	assertState(t, g, StateTransition, stepB, true)
	g.Update(DefaultSettleDelay)
	d.OnCalloutTap(g)
	assertState(t, g, StateTransition, stepC, true)

	entry := TagEntry{Tag: stepA, TouchPolicy: Passthrough()}
	if !d.TouchPolicy(g, entry).IsPassthrough() {
		t.Error("DefaultDelegate did not return the registered policy")
	}
}

func TestDelegateFuncsFallback(t *testing.T) {
	g := NewGuide()
	g.Start(plan3, WithStartDelay(0))

	var d DelegateFuncs
	d.OnCalloutTap(g)
	assertState(t, g, StateTransition, stepB, true)
	if d.TouchPolicy(g, TagEntry{}).IsPassthrough() {
		t.Error("zero entry policy should advance")
	}

	taps := 0
	d = DelegateFuncs{
		CalloutTap: func(*Guide) { taps++ },
		Policy:     func(*Guide, TagEntry) TouchPolicy { return Passthrough() },
	}
	d.OnCalloutTap(g)
	if taps != 1 {
		t.Errorf("CalloutTap calls = %d, want 1", taps)
	}
	if !d.TouchPolicy(g, TagEntry{}).IsPassthrough() {
		t.Error("Policy func ignored")
	}
	d.OnBackgroundTap(g)
	assertState(t, g, StateActive, stepC, true)
}
