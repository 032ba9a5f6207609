// Package squish procedurally animates soft-bodied 2D creatures.
//
// The core is a small, deterministic constraint solver with no rendering
// dependencies: a [Blob] is a cyclic ring of Verlet-integrated boundary
// points kept locally rigid by a stretch-only distance constraint and
// globally volume-preserving by an area correction; a [Limb] is a two-bone
// inverse-kinematics chain whose joints swing inside clamped angle windows;
// a [Creature] composes one blob body with four limbs whose anchors and
// orientation are derived each frame from the deforming ring.
//
// # Quick start
//
//	creature, err := squish.NewCreature(squish.DefaultCreatureConfig(squish.Vec2{X: 320, Y: 240}))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Once per frame, in your game loop:
//	if err := creature.Update(worldW, worldH, cursor); err != nil {
//		log.Fatal(err)
//	}
//
//	// Then read positions out for drawing:
//	ring := creature.Body().Points(nil)
//	foot := creature.Limb(squish.LimbFrontLeft).Foot()
//
// Rendering is entirely up to the host: the solver only consumes world
// bounds and an optional repulsion point (for example the pointer, already
// transformed into world space), and only produces point positions. The
// demos directory shows an Ebitengine renderer, a terminal renderer, and a
// headless WebSocket streamer built on the same read-only surface.
//
// All simulation is single-threaded and frame-stepped. Updating the same
// creature from multiple goroutines is not supported.
package squish
