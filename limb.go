package squish

import (
	"fmt"
	"math"
)

// --- Angle helpers ---

// normalizeAngle reduces theta to [0, 2π).
func normalizeAngle(theta float64) float64 {
	theta = math.Mod(theta, 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	if theta == 2*math.Pi { // -tiny rounds up to 2π
		return 0
	}
	return theta
}

// angularOffset returns the signed shortest angular distance from anchor
// to theta, in (-π, π]. Both angles are shifted so the anchor maps to π,
// which keeps the subtraction away from the 0/2π seam.
func angularOffset(theta, anchor float64) float64 {
	shifted := normalizeAngle(theta - anchor + math.Pi)
	if shifted == 0 {
		shifted = 2 * math.Pi
	}
	return shifted - math.Pi
}

// clampAngleToRange clamps theta to within rng radians of anchor. Angles
// inside the window pass through normalized; angles outside snap to the
// window boundary on the side they overshot.
func clampAngleToRange(theta, anchor, rng float64) float64 {
	off := angularOffset(theta, anchor)
	if math.Abs(off) <= rng {
		return normalizeAngle(theta)
	}
	if off < 0 {
		return normalizeAngle(anchor - rng)
	}
	return normalizeAngle(anchor + rng)
}

// --- Joints ---

// jointPoint is a Verlet point positioned by an angular constraint about a
// moving anchor. solvedAngle holds the clamped anchor-facing direction
// from the most recent applyConstraint; it becomes the reference frame for
// the next joint down the chain.
type jointPoint struct {
	pos         Vec2
	prev        Vec2
	solvedAngle float64
}

func (j *jointPoint) integrate(damping float64) {
	vel := j.pos.Sub(j.prev).Scale(damping)
	j.prev = j.pos
	j.pos = j.pos.Add(vel)
	j.pos.Y += gravityStep
}

// applyConstraint places the joint at exactly dist from anchor. The raw
// direction from the joint toward the anchor is clamped to within rng of
// refAngle+offset and the joint snaps onto that bearing; unlike the blob's
// relaxed constraints this one is exact.
func (j *jointPoint) applyConstraint(anchor Vec2, refAngle, offset, dist, rng float64) {
	raw := anchor.Sub(j.pos).Angle()
	j.solvedAngle = clampAngleToRange(raw, refAngle+offset, rng)
	j.pos = anchor.Sub(unitVector(j.solvedAngle).Scale(dist))
}

func (j *jointPoint) clampToBounds(width, height float64) {
	j.pos.X = clamp(j.pos.X, 0, width)
	j.pos.Y = clamp(j.pos.Y, 0, height)
}

// moveTo teleports the joint, zeroing its implicit velocity.
func (j *jointPoint) moveTo(pos Vec2) {
	j.pos = pos
	j.prev = pos
}

// --- Limb ---

// LimbConfig configures a Limb. SegmentLength must be positive and the
// angle ranges must be non-negative; everything else may be zero.
type LimbConfig struct {
	// RootOffset is added to the root anchor on every Resolve, letting a
	// limb mount slightly away from the anchor its owner derives.
	RootOffset Vec2

	// SegmentLength is the exact distance kept from the root anchor to the
	// elbow and from the elbow to the foot.
	SegmentLength float64

	// ElbowAngleRange and FootAngleRange bound how far each joint's
	// anchor-facing direction may swing from its reference, in radians.
	ElbowAngleRange float64
	FootAngleRange  float64

	// ElbowAngleOffset and FootAngleOffset rotate each joint's permitted
	// window relative to its reference direction. Mirrored limbs negate
	// these.
	ElbowAngleOffset float64
	FootAngleOffset  float64
}

// Limb is an angle-constrained two-bone IK chain: an elbow joint swinging
// about a moving root anchor, and a foot joint swinging about the elbow.
// The foot's reference direction is the elbow's solved angle rather than
// the root orientation, which chains the orientation through the limb and
// makes the foot trail the elbow's actual rest direction.
type Limb struct {
	config LimbConfig
	elbow  jointPoint
	foot   jointPoint
}

// NewLimb creates a limb from cfg. Both joints start at the zero position
// with no velocity; the first Resolve snaps them onto their constraints.
func NewLimb(cfg LimbConfig) (*Limb, error) {
	if cfg.SegmentLength <= 0 {
		return nil, fmt.Errorf("squish: limb segment length must be positive, got %v", cfg.SegmentLength)
	}
	if cfg.ElbowAngleRange < 0 || cfg.FootAngleRange < 0 {
		return nil, fmt.Errorf("squish: limb angle ranges must be non-negative, got elbow %v, foot %v",
			cfg.ElbowAngleRange, cfg.FootAngleRange)
	}
	return &Limb{config: cfg}, nil
}

// Resolve advances the limb one frame against the given root anchor and
// orientation. Each joint Verlet-integrates with gravity, is clamped into
// the world bounds, and then snaps onto its angle-clamped bearing, so both
// joints always end exactly SegmentLength from their anchors.
func (l *Limb) Resolve(rootAnchor Vec2, rootAngle, width, height float64) {
	anchor := rootAnchor.Add(l.config.RootOffset)

	l.elbow.integrate(limbDamping)
	l.elbow.clampToBounds(width, height)
	l.elbow.applyConstraint(anchor, rootAngle, l.config.ElbowAngleOffset,
		l.config.SegmentLength, l.config.ElbowAngleRange)

	l.foot.integrate(limbDamping)
	l.foot.clampToBounds(width, height)
	l.foot.applyConstraint(l.elbow.pos, l.elbow.solvedAngle, l.config.FootAngleOffset,
		l.config.SegmentLength, l.config.FootAngleRange)
}

// Elbow returns the current elbow position.
func (l *Limb) Elbow() Vec2 { return l.elbow.pos }

// Foot returns the current foot position.
func (l *Limb) Foot() Vec2 { return l.foot.pos }

// ElbowAngle returns the elbow's most recently solved anchor-facing
// direction, in [0, 2π).
func (l *Limb) ElbowAngle() float64 { return l.elbow.solvedAngle }

// FootAngle returns the foot's most recently solved anchor-facing
// direction, in [0, 2π).
func (l *Limb) FootAngle() float64 { return l.foot.solvedAngle }

// Config returns the limb's construction-time configuration.
func (l *Limb) Config() LimbConfig { return l.config }
