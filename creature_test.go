package squish

import (
	"math"
	"testing"
)

func mustCreature(t *testing.T, cfg CreatureConfig) *Creature {
	t.Helper()
	c, err := NewCreature(cfg)
	if err != nil {
		t.Fatalf("NewCreature: %v", err)
	}
	return c
}

func TestNewCreatureDefaults(t *testing.T) {
	c := mustCreature(t, CreatureConfig{Origin: Vec2{300, 300}})

	if c.Body().Len() != defaultNumPoints {
		t.Errorf("body has %d points, want %d", c.Body().Len(), defaultNumPoints)
	}
	assertNear(t, "circumference", c.Body().Circumference(), 2*math.Pi*defaultRadius)

	for id := LimbFrontLeft; id < NumLimbs; id++ {
		if c.Limb(id) == nil {
			t.Fatalf("limb %d is nil", id)
		}
		if got := c.Limb(id).Config().SegmentLength; got != defaultRadius {
			t.Errorf("limb %d segment length %v, want %v", id, got, defaultRadius)
		}
	}

	// Right-side limbs mirror the left-side angle offsets.
	left := c.Limb(LimbFrontLeft).Config()
	right := c.Limb(LimbFrontRight).Config()
	assertNear(t, "mirrored elbow offset", right.ElbowAngleOffset, -left.ElbowAngleOffset)
	assertNear(t, "mirrored foot offset", right.FootAngleOffset, -left.FootAngleOffset)
}

func TestNewCreatureValidation(t *testing.T) {
	if _, err := NewCreature(CreatureConfig{NumPoints: -4}); err == nil {
		t.Error("expected error for negative point count")
	}
	if _, err := NewCreature(CreatureConfig{Radius: -10}); err == nil {
		t.Error("expected error for negative radius")
	}
	if _, err := NewCreature(CreatureConfig{SegmentLength: -5}); err == nil {
		t.Error("expected error for negative segment length")
	}
	if _, err := NewCreature(CreatureConfig{ElbowAngleRange: -1}); err == nil {
		t.Error("expected error for negative elbow range")
	}
}

func TestCreatureUpdate(t *testing.T) {
	const w, h = 1000.0, 1000.0
	c := mustCreature(t, CreatureConfig{Origin: Vec2{500, 400}})

	for frame := 0; frame < 10; frame++ {
		if err := c.Update(w, h, nil); err != nil {
			t.Fatal(err)
		}
	}

	// Body stays in bounds.
	for i := 0; i < c.Body().Len(); i++ {
		p := c.Body().Point(i)
		if p.X < 0 || p.X > w || p.Y < 0 || p.Y > h {
			t.Errorf("body point %d at %v escaped bounds", i, p)
		}
	}

	// Limbs resolve against anchors derived from the ring, and the ring
	// does not move while limbs resolve, so the same derivation must
	// reproduce the anchors the joints are pinned to. The floor is far
	// away here, so the hind-foot settling patch stays inactive.
	f := c.deriveFrame()
	for id := LimbFrontLeft; id < NumLimbs; id++ {
		l := c.Limb(id)
		anchor := f.anchors[id].Add(l.Config().RootOffset)
		assertNear(t, "elbow distance", l.Elbow().Dist(anchor), l.Config().SegmentLength)
		assertNear(t, "foot distance", l.Foot().Dist(l.Elbow()), l.Config().SegmentLength)
	}
}

func TestCreatureRingStable(t *testing.T) {
	c := mustCreature(t, CreatureConfig{Origin: Vec2{400, 300}})
	n := c.Body().Len()

	var buf []Vec2
	for frame := 0; frame < 20; frame++ {
		if err := c.Update(800, 600, nil); err != nil {
			t.Fatal(err)
		}
		if c.Body().Len() != n {
			t.Fatalf("ring point count changed: %d -> %d", n, c.Body().Len())
		}
		buf = c.Body().Points(buf)
		for i := range buf {
			assertVec(t, "ring order", buf[i], c.Body().Point(i))
		}
	}
}

func TestCreatureDeterminism(t *testing.T) {
	run := func() *Creature {
		c := mustCreature(t, CreatureConfig{Origin: Vec2{400, 300}})
		cursor := Vec2{440, 250}
		for frame := 0; frame < 30; frame++ {
			rep := &cursor
			if frame%4 == 0 {
				rep = nil
			}
			if err := c.Update(800, 600, rep); err != nil {
				t.Fatal(err)
			}
		}
		return c
	}

	a, b := run(), run()
	for i := 0; i < a.Body().Len(); i++ {
		if a.Body().Point(i) != b.Body().Point(i) {
			t.Fatalf("body point %d diverged between identical runs", i)
		}
	}
	for id := LimbFrontLeft; id < NumLimbs; id++ {
		if a.Limb(id).Elbow() != b.Limb(id).Elbow() || a.Limb(id).Foot() != b.Limb(id).Foot() {
			t.Fatalf("limb %d diverged between identical runs", id)
		}
	}
}

func TestCreatureHindFootSettle(t *testing.T) {
	const h = 600.0
	c := mustCreature(t, CreatureConfig{Origin: Vec2{300, 300}})

	hind := c.Limb(LimbHindLeft)
	front := c.Limb(LimbFrontLeft)

	// Park the hind foot just inside the floor margin and a front foot
	// well clear of it.
	hind.foot.moveTo(Vec2{300, h - groundMargin + 2})
	hind.elbow.moveTo(Vec2{290, h - 80})
	front.foot.moveTo(Vec2{250, 400})
	front.elbow.moveTo(Vec2{240, 350})

	footY := hind.Foot().Y
	elbowY := hind.Elbow().Y
	frontFootY := front.Foot().Y

	c.settleHindFeet(h)

	assertNear(t, "hind foot nudged", hind.Foot().Y, footY-footNudge)
	assertNear(t, "hind elbow nudged", hind.Elbow().Y, elbowY-elbowNudge)
	assertNear(t, "front foot untouched", front.Foot().Y, frontFootY)

	// Clear of the margin, nothing moves.
	footY = hind.Foot().Y
	hind.foot.moveTo(Vec2{300, h - groundMargin - 50})
	c.settleHindFeet(h)
	assertNear(t, "settled foot untouched", hind.Foot().Y, h-groundMargin-50)
}
