package ecs

import (
	"testing"

	"github.com/yohamta/donburi"

	"github.com/phanxgames/squish"
)

func TestSpawn(t *testing.T) {
	world := donburi.NewWorld()

	entry, err := Spawn(world, squish.DefaultCreatureConfig(squish.Vec2{X: 300, Y: 200}), 640, 480)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	data := Creature.Get(entry)
	if data.Creature == nil {
		t.Fatal("spawned entity has nil creature")
	}
	if data.Width != 640 || data.Height != 480 {
		t.Errorf("bounds = %vx%v, want 640x480", data.Width, data.Height)
	}
}

func TestSpawn_InvalidConfig(t *testing.T) {
	world := donburi.NewWorld()

	if _, err := Spawn(world, squish.CreatureConfig{NumPoints: -1}, 640, 480); err == nil {
		t.Error("expected error for invalid creature config")
	}
}

func TestUpdate(t *testing.T) {
	world := donburi.NewWorld()

	entries := make([]*donburi.Entry, 3)
	for i := range entries {
		origin := squish.Vec2{X: 200 + 150*float64(i), Y: 200}
		entry, err := Spawn(world, squish.DefaultCreatureConfig(origin), 800, 600)
		if err != nil {
			t.Fatal(err)
		}
		entries[i] = entry
	}

	before := make([]squish.Vec2, len(entries))
	for i, entry := range entries {
		before[i] = Creature.Get(entry).Creature.Body().Point(0)
	}

	if err := Update(world); err != nil {
		t.Fatalf("Update: %v", err)
	}

	// Every creature stepped: gravity moves each ring.
	for i, entry := range entries {
		after := Creature.Get(entry).Creature.Body().Point(0)
		if after == before[i] {
			t.Errorf("creature %d did not move", i)
		}
	}
}

func TestUpdate_Repulsion(t *testing.T) {
	world := donburi.NewWorld()

	entry, err := Spawn(world, squish.DefaultCreatureConfig(squish.Vec2{X: 300, Y: 300}), 800, 600)
	if err != nil {
		t.Fatal(err)
	}

	cursor := squish.Vec2{X: 300, Y: 300}
	Creature.Get(entry).Repulsion = &cursor

	if err := Update(world); err != nil {
		t.Fatal(err)
	}

	body := Creature.Get(entry).Creature.Body()
	for i := 0; i < body.Len(); i++ {
		if d := body.Point(i).Dist(cursor); d < squish.RepulsionRadius-1e-9 {
			t.Errorf("point %d at distance %v from repulsion point", i, d)
		}
	}
}
