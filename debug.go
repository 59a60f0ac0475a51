package waypoint

import (
	"time"
)

// debugLog reports layout stats for the current frame at debug level.
func (o *Overlay) debugLog(build time.Duration) {
	var dims, surfaces, callouts int
	for i := range o.commands {
		switch o.commands[i].Kind {
		case CommandDim:
			dims++
		case CommandSurface:
			surfaces++
		case CommandCallout, CommandAccessory:
			callouts++
		}
	}
	o.logger.Debug("waypoint: layout",
		"state", o.snap.State.String(),
		"tag", o.snap.Current.Key(),
		"layout", build,
		"dim", dims,
		"surface", surfaces,
		"content", callouts,
		"hits", len(o.hits),
		"dim_alpha", o.dim.value,
		"callout_alpha", o.callout.value,
	)
	if o.hasEntry {
		debugCheckCallout(o)
	}
}

// debugCheckCallout warns when the callout of the current step does not fit
// inside the viewport.
func debugCheckCallout(o *Overlay) {
	if o.entry.Callout.Content == nil {
		return
	}
	box := CalloutFrame(o.entry.Bounds, o.calloutSize, o.entry.Callout.Edge)
	if box.X < 0 || box.Y < 0 || box.MaxX() > o.viewport.Width || box.MaxY() > o.viewport.Height {
		o.logger.Debug("waypoint: callout extends past the viewport",
			"tag", o.entry.Tag.Key(), "callout", box.String(), "edge", o.entry.Callout.Edge.String())
	}
}
