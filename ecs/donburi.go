// Package ecs provides ECS adapters for squish.
package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/phanxgames/squish"
)

// CreatureData is the component payload: one creature plus the world
// bounds and optional repulsion point its updates should use.
type CreatureData struct {
	Creature *squish.Creature

	Width, Height float64
	Repulsion     *squish.Vec2
}

// Creature is the Donburi component type holding a squish.Creature.
var Creature = donburi.NewComponentType[CreatureData]()

// Spawn creates an entity with a Creature component built from cfg,
// simulated inside the given world bounds.
func Spawn(w donburi.World, cfg squish.CreatureConfig, width, height float64) (*donburi.Entry, error) {
	c, err := squish.NewCreature(cfg)
	if err != nil {
		return nil, err
	}
	entry := w.Entry(w.Create(Creature))
	Creature.SetValue(entry, CreatureData{Creature: c, Width: width, Height: height})
	return entry, nil
}

var creatureQuery = donburi.NewQuery(filter.Contains(Creature))

// Update steps every creature entity in the world once. The first
// simulation error stops the walk and is returned.
func Update(w donburi.World) error {
	var firstErr error
	creatureQuery.Each(w, func(entry *donburi.Entry) {
		if firstErr != nil {
			return
		}
		data := Creature.Get(entry)
		firstErr = data.Creature.Update(data.Width, data.Height, data.Repulsion)
	})
	return firstErr
}
