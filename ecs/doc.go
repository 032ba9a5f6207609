// Package ecs provides ECS adapters for squish creatures.
//
// The [Creature] component wraps a *squish.Creature together with its world
// bounds and optional repulsion point; [Spawn] creates one in a [Donburi]
// world and [Update] steps every creature entity once per frame.
//
// Usage:
//
//	world := donburi.NewWorld()
//	entry, err := ecs.Spawn(world, squish.DefaultCreatureConfig(origin), 640, 480)
//
//	// each frame:
//	if err := ecs.Update(world); err != nil { ... }
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
