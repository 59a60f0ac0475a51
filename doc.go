// Package waypoint draws guided tours (coach marks) over [Ebitengine] games
// and tools.
//
// A host marks on-screen elements with a [Tag] every frame, starts a [Guide]
// with an ordered [Plan] of tags, and lets an [Overlay] dim the screen around
// the current element, cut a highlight window over it and place a callout
// next to it. Taps advance the tour.
//
// # Quick start
//
//	tags := waypoint.TagsOf("profile", "picture", "name")
//
//	guide := waypoint.NewGuide()
//	overlay := waypoint.NewOverlay(guide, waypoint.OverlayConfig{
//		Accessory: waypoint.SkipButton(),
//	})
//	guide.Start(tags)
//
//	func (g *Game) Update() error {
//		g.frame.Reset()
//		g.frame.Mark(tags[0], g.pictureBounds, waypoint.TextCallout("Nice picture", waypoint.EdgeBottom))
//		g.frame.Mark(tags[1], g.nameBounds, waypoint.OKTextCallout("Your name", waypoint.EdgeTop))
//		g.overlay.Update(g.frame, waypoint.Size{Width: 640, Height: 480})
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		// ... draw the game ...
//		g.overlay.Draw(screen)
//	}
//
// # Lifecycle
//
// A guide is hidden, in transition or active. Starting a tour shows the first
// step after [DefaultStartDelay]. Moving from an active step to another one
// passes through the transition state for [DefaultSettleDelay]: the screen
// stays dimmed but the callout is hidden until the new element has settled.
// Advancing past the last step completes the tour.
//
// Delayed work runs on the guide's [Clock], advanced by [Guide.Update] (which
// [Overlay.Update] calls). Any later navigation, start or stop makes a
// pending delayed step a no-op.
//
// # Taps
//
// Taps on the dimmed background and on the callout go to the run's
// [Delegate]. Taps on the highlighted element follow its [TouchPolicy]:
// advance the tour, fall through to the host ([Passthrough]) or call a host
// function ([CustomTap]). Use [Overlay.Intercepts] to skip host input under
// the overlay.
//
// # Tour files
//
// [LoadTourFile] reads tours from YAML; see [TourFile]. The waypoint command
// validates, describes and previews such files.
//
// # Testing
//
// [Overlay.Step] runs one tick with an explicit duration, [Overlay.Commands]
// exposes the paint instructions without a graphics context, and
// [Overlay.InjectTap] and [TestRunner] drive scripted input.
//
// [Ebitengine]: https://ebitengine.org
package waypoint
