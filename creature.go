package squish

import (
	"fmt"
	"math"
)

// LimbID names one of a creature's four limbs.
type LimbID uint8

const (
	LimbFrontLeft  LimbID = iota // mounted at 1/4 along the lateral secant
	LimbFrontRight               // mounted at 3/4 along the lateral secant
	LimbHindLeft                 // mounted behind and outside the front-left limb
	LimbHindRight                // mounted behind and outside the front-right limb

	// NumLimbs is the number of limbs every creature has.
	NumLimbs
)

// Default creature tuning. Anchor geometry is relative to the live ring;
// the nudge constants drive the hind-foot floor patch in settleHindFeet.
const (
	defaultNumPoints = 16
	defaultRadius    = 56.0
	defaultPuffiness = 1.4

	frontAnchorT   = 0.25 // interpolation parameter along the lateral secant
	anchorDrop     = 6.0  // limbs mount slightly below their anchor points
	hindAnchorPush = 14.0 // hind anchors slide outward along the secant

	groundMargin = 10.0
	footNudge    = 2.5
	elbowNudge   = 1.5
)

// CreatureConfig configures a Creature. Zero fields fall back to the
// frog-like tuning returned by DefaultCreatureConfig, so the zero value
// (plus an Origin) is a usable starting point. The angle offsets are given
// for the left-side limbs; right-side limbs mirror them.
type CreatureConfig struct {
	// Body.
	Origin    Vec2
	NumPoints int
	Radius    float64
	Puffiness float64

	// Limbs. All four share one geometry, mirrored left/right.
	SegmentLength    float64
	ElbowAngleRange  float64
	ElbowAngleOffset float64
	FootAngleRange   float64
	FootAngleOffset  float64
}

// DefaultCreatureConfig returns the frog-like tuning used by the demos,
// centered on origin.
func DefaultCreatureConfig(origin Vec2) CreatureConfig {
	return CreatureConfig{
		Origin:           origin,
		NumPoints:        defaultNumPoints,
		Radius:           defaultRadius,
		Puffiness:        defaultPuffiness,
		SegmentLength:    defaultRadius,
		ElbowAngleRange:  math.Pi / 4,
		ElbowAngleOffset: math.Pi / 8,
		FootAngleRange:   math.Pi / 5,
		FootAngleOffset:  -math.Pi / 4,
	}
}

// Creature is one blob body with four limbs. Each frame the body ring is
// advanced first, then every limb is resolved against an anchor and a
// shared orientation derived from the live ring geometry, so the legs track
// the body however it squashes or bounces. Limbs share no state with each
// other; their anchors are pure functions of the current ring positions.
type Creature struct {
	body  *Blob
	limbs [NumLimbs]*Limb

	// Ring indices chosen once at construction: the lateral extremes of
	// the rest layout, and the pair one step further around toward the
	// bottom of the ring for the hind anchors.
	leftIdx      int
	rightIdx     int
	hindLeftIdx  int
	hindRightIdx int
}

// NewCreature builds a creature from cfg, applying defaults for zero
// fields. The limb configurations are validated the same way NewLimb
// validates them.
func NewCreature(cfg CreatureConfig) (*Creature, error) {
	def := DefaultCreatureConfig(cfg.Origin)
	if cfg.NumPoints == 0 {
		cfg.NumPoints = def.NumPoints
	}
	if cfg.Radius == 0 {
		cfg.Radius = def.Radius
	}
	if cfg.Puffiness == 0 {
		cfg.Puffiness = def.Puffiness
	}
	if cfg.SegmentLength == 0 {
		cfg.SegmentLength = def.SegmentLength
	}
	if cfg.ElbowAngleRange == 0 {
		cfg.ElbowAngleRange = def.ElbowAngleRange
	}
	if cfg.FootAngleRange == 0 {
		cfg.FootAngleRange = def.FootAngleRange
	}

	body, err := NewBlob(cfg.Origin, cfg.NumPoints, cfg.Radius, cfg.Puffiness)
	if err != nil {
		return nil, err
	}

	n := cfg.NumPoints
	c := &Creature{
		body:         body,
		rightIdx:     n / 4,     // nearest the right lateral extreme
		leftIdx:      3 * n / 4, // nearest the left lateral extreme
		hindRightIdx: n/4 + 1,
		hindLeftIdx:  3*n/4 - 1,
	}

	for id := LimbFrontLeft; id < NumLimbs; id++ {
		side := 1.0
		if id == LimbFrontRight || id == LimbHindRight {
			side = -1
		}
		limb, err := NewLimb(LimbConfig{
			RootOffset:       Vec2{Y: anchorDrop},
			SegmentLength:    cfg.SegmentLength,
			ElbowAngleRange:  cfg.ElbowAngleRange,
			ElbowAngleOffset: side * cfg.ElbowAngleOffset,
			FootAngleRange:   cfg.FootAngleRange,
			FootAngleOffset:  side * cfg.FootAngleOffset,
		})
		if err != nil {
			return nil, fmt.Errorf("squish: creature limb %d: %w", id, err)
		}
		c.limbs[id] = limb
	}

	// Seed joints hanging straight below their rest anchors so the first
	// few frames don't whip the legs across the body.
	f := c.deriveFrame()
	for id := LimbFrontLeft; id < NumLimbs; id++ {
		l := c.limbs[id]
		elbow := f.anchors[id].Add(l.config.RootOffset).Add(Vec2{Y: l.config.SegmentLength})
		l.elbow.moveTo(elbow)
		l.foot.moveTo(elbow.Add(Vec2{Y: l.config.SegmentLength}))
	}

	return c, nil
}

// frame holds the per-update values derived from the body's ring.
type frame struct {
	orientation float64
	anchors     [NumLimbs]Vec2
}

// deriveFrame reads the fixed ring indices and computes the shared
// orientation and the four limb anchors. The orientation is the lateral
// secant's direction rotated -90°, which points up out of the body's back
// on the rest layout.
func (c *Creature) deriveFrame() frame {
	left := c.body.Point(c.leftIdx)
	right := c.body.Point(c.rightIdx)
	hindLeft := c.body.Point(c.hindLeftIdx)
	hindRight := c.body.Point(c.hindRightIdx)

	secant := right.Sub(left)

	var f frame
	f.orientation = secant.Angle() - math.Pi/2
	f.anchors[LimbFrontLeft] = left.Lerp(right, frontAnchorT)
	f.anchors[LimbFrontRight] = left.Lerp(right, 1-frontAnchorT)
	f.anchors[LimbHindLeft] = hindLeft.Lerp(hindRight, frontAnchorT).
		Add(secant.SetLength(-hindAnchorPush))
	f.anchors[LimbHindRight] = hindLeft.Lerp(hindRight, 1-frontAnchorT).
		Add(secant.SetLength(hindAnchorPush))
	return f
}

// Update advances the whole creature one frame: the body ring first, then
// every limb against the freshly derived anchors and orientation. Front
// legs resolve before hind legs; there is no dependency between limbs, the
// order just matches how they are usually drawn. The optional repulsion
// point is forwarded to the body ring.
func (c *Creature) Update(width, height float64, repulsion *Vec2) error {
	if err := c.body.Update(width, height, repulsion, DefaultIterations); err != nil {
		return err
	}

	f := c.deriveFrame()
	for id := LimbFrontLeft; id < NumLimbs; id++ {
		c.limbs[id].Resolve(f.anchors[id], f.orientation, width, height)
	}

	c.settleHindFeet(height)
	return nil
}

// settleHindFeet nudges a hind limb upward by fixed increments when its
// foot sits within groundMargin of the world floor, so the folded leg does
// not visually clip into the ground. This is a positional patch for the
// resting pose, not a contact model.
func (c *Creature) settleHindFeet(height float64) {
	for _, id := range [...]LimbID{LimbHindLeft, LimbHindRight} {
		l := c.limbs[id]
		if l.foot.pos.Y > height-groundMargin {
			l.foot.pos.Y -= footNudge
			l.elbow.pos.Y -= elbowNudge
		}
	}
}

// Body returns the creature's blob body.
func (c *Creature) Body() *Blob { return c.body }

// Limb returns the limb with the given ID.
func (c *Creature) Limb(id LimbID) *Limb { return c.limbs[id] }
