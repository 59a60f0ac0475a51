package waypoint

// Delegate customizes how a running tour reacts to taps. Pass one to
// Guide.Start with WithDelegate; DefaultDelegate is used otherwise.
type Delegate interface {
	// OnBackgroundTap handles a tap on the dimmed area outside the cutout.
	OnBackgroundTap(g *Guide)
	// OnCalloutTap handles a tap on the callout bubble.
	OnCalloutTap(g *Guide)
	// TouchPolicy decides what a tap on the cutout does for the current entry.
	TouchPolicy(g *Guide, entry TagEntry) TouchPolicy
}

// DefaultDelegate advances on background and callout taps and honors the
// touch policy each element was marked with.
type DefaultDelegate struct{}

func (DefaultDelegate) OnBackgroundTap(g *Guide) { g.Advance() }

func (DefaultDelegate) OnCalloutTap(g *Guide) { g.Advance() }

func (DefaultDelegate) TouchPolicy(_ *Guide, entry TagEntry) TouchPolicy {
	return entry.TouchPolicy
}

// DelegateFuncs builds a Delegate from optional functions. Nil fields fall
// back to DefaultDelegate behavior.
type DelegateFuncs struct {
	BackgroundTap func(g *Guide)
	CalloutTap    func(g *Guide)
	Policy        func(g *Guide, entry TagEntry) TouchPolicy
}

func (d DelegateFuncs) OnBackgroundTap(g *Guide) {
	if d.BackgroundTap != nil {
		d.BackgroundTap(g)
		return
	}
	DefaultDelegate{}.OnBackgroundTap(g)
}

func (d DelegateFuncs) OnCalloutTap(g *Guide) {
	if d.CalloutTap != nil {
		d.CalloutTap(g)
		return
	}
	DefaultDelegate{}.OnCalloutTap(g)
}

func (d DelegateFuncs) TouchPolicy(g *Guide, entry TagEntry) TouchPolicy {
	if d.Policy != nil {
		return d.Policy(g, entry)
	}
	return DefaultDelegate{}.TouchPolicy(g, entry)
}
