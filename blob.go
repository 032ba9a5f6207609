package squish

import (
	"fmt"
	"math"
)

// boundaryPoint is one Verlet-integrated point on a blob's ring. Velocity
// is implicit in pos-prev. accDisp/accWeight accumulate constraint
// corrections within one relaxation pass; applyAccumulated averages and
// resets them, so corrections from the distance and area constraints are
// combined, not applied twice.
type boundaryPoint struct {
	pos       Vec2
	prev      Vec2
	accDisp   Vec2
	accWeight int
}

func (p *boundaryPoint) integrate(damping float64) {
	vel := p.pos.Sub(p.prev).Scale(damping)
	p.prev = p.pos
	p.pos = p.pos.Add(vel)
	p.pos.Y += gravityStep
}

func (p *boundaryPoint) accumulate(d Vec2) {
	p.accDisp = p.accDisp.Add(d)
	p.accWeight++
}

func (p *boundaryPoint) applyAccumulated() {
	if p.accWeight == 0 {
		return
	}
	p.pos = p.pos.Add(p.accDisp.Scale(1 / float64(p.accWeight)))
	p.accDisp = Vec2{}
	p.accWeight = 0
}

// Blob is a deformable ring of boundary points. Adjacent points resist
// stretching past a fixed rest chord length but compress freely, while an
// area correction relaxes the enclosed polygon toward a fixed rest area.
// Both corrections are weak per-iteration nudges applied repeatedly rather
// than solved exactly, which keeps the ring stable and cheap to step.
//
// The ring's rest quantities are fixed at construction and never change:
// the point count, rest area, circumference, and chord length stay
// authoritative for the blob's whole lifetime.
type Blob struct {
	points []boundaryPoint

	restArea      float64
	circumference float64
	chordLength   float64

	ptsBuf []Vec2 // high-water buffer for Points
}

// NewBlob creates a ring of numPoints boundary points laid out evenly on a
// circle around origin, with point 0 at the top. numPoints must be at
// least 3 and radius and puffiness must be positive. Puffiness scales the
// rest area relative to the layout circle: values above 1 make the blob
// inflate past its starting silhouette, values below 1 make it sag.
func NewBlob(origin Vec2, numPoints int, radius, puffiness float64) (*Blob, error) {
	if numPoints < 3 {
		return nil, fmt.Errorf("squish: blob needs at least 3 points, got %d", numPoints)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("squish: blob radius must be positive, got %v", radius)
	}
	if puffiness <= 0 {
		return nil, fmt.Errorf("squish: blob puffiness must be positive, got %v", puffiness)
	}

	b := &Blob{
		points:        make([]boundaryPoint, numPoints),
		restArea:      math.Pi * radius * radius * puffiness,
		circumference: 2 * math.Pi * radius,
	}
	b.chordLength = b.circumference / float64(numPoints)

	for i := range b.points {
		theta := 2*math.Pi*float64(i)/float64(numPoints) - math.Pi/2
		pos := origin.Add(unitVector(theta).Scale(radius))
		b.points[i] = boundaryPoint{pos: pos, prev: pos}
	}
	return b, nil
}

// Update advances the ring one frame: every point is Verlet-integrated
// with gravity, then the distance and area constraints are relaxed for the
// given number of iterations (DefaultIterations when iterations <= 0),
// clamping into [0,width]x[0,height] each pass. If repulsion is non-nil,
// points within RepulsionRadius of it are pushed out to exactly that
// radius; nil means no repulsion and is the normal idle case.
//
// A non-finite point position after the step is fatal simulation
// corruption and is reported as an error; the step has no partial-recovery
// semantics.
func (b *Blob) Update(width, height float64, repulsion *Vec2, iterations int) error {
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	for i := range b.points {
		b.points[i].integrate(bodyDamping)
	}

	for iter := 0; iter < iterations; iter++ {
		b.constrainChords()
		b.dilate()
		for i := range b.points {
			b.points[i].applyAccumulated()
		}
		b.clampToBounds(width, height)
		if repulsion != nil {
			b.repel(*repulsion)
		}
	}

	for i := range b.points {
		if !finite(b.points[i].pos) {
			return fmt.Errorf("squish: blob point %d has non-finite position after update", i)
		}
	}
	return nil
}

// constrainChords pulls adjacent points back together when they have
// stretched past the rest chord length, half the excess each. Compressed
// pairs are left alone: segments may squash freely but resist stretching.
// The asymmetry is intentional and shapes the creature's silhouette.
func (b *Blob) constrainChords() {
	n := len(b.points)
	for i := range b.points {
		a := &b.points[i]
		c := &b.points[(i+1)%n]

		diff := c.pos.Sub(a.pos)
		dist := diff.Len()
		if dist <= b.chordLength {
			continue
		}

		pull := diff.SetLength((dist - b.chordLength) / 2)
		a.accumulate(pull)
		c.accumulate(pull.Scale(-1))
	}
}

// dilate nudges every point along its outward normal so the enclosed area
// relaxes toward restArea. The correction is spread evenly over the
// circumference; the normal comes from the secant between the point's
// neighbors rotated -90°, which is exactly radial on an undeformed ring.
// A degenerate secant (coincident neighbors) contributes nothing.
func (b *Blob) dilate() {
	offset := (b.restArea - b.Area()) / b.circumference
	n := len(b.points)
	for i := range b.points {
		prev := b.points[(i+n-1)%n].pos
		next := b.points[(i+1)%n].pos

		secant := next.Sub(prev)
		if secant.LenSq() == 0 {
			continue
		}
		b.points[i].accumulate(secant.Rotate(-math.Pi / 2).SetLength(offset))
	}
}

func (b *Blob) clampToBounds(width, height float64) {
	for i := range b.points {
		p := &b.points[i]
		p.pos.X = clamp(p.pos.X, 0, width)
		p.pos.Y = clamp(p.pos.Y, 0, height)
	}
}

// repel pushes any point within RepulsionRadius of from directly away
// until it sits exactly on that radius. A point coincident with the
// repulsion point has no direction to move in and is skipped.
func (b *Blob) repel(from Vec2) {
	for i := range b.points {
		p := &b.points[i]
		diff := p.pos.Sub(from)
		d := diff.LenSq()
		if d == 0 || d >= RepulsionRadius*RepulsionRadius {
			continue
		}
		p.pos = from.Add(diff.SetLength(RepulsionRadius))
	}
}

// Area returns the current signed polygon area of the ring, computed with
// the shoelace formula. It is positive for the construction winding.
func (b *Blob) Area() float64 {
	var sum float64
	n := len(b.points)
	for i := range b.points {
		p := b.points[i].pos
		q := b.points[(i+1)%n].pos
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// Len returns the number of boundary points. It never changes after
// construction.
func (b *Blob) Len() int { return len(b.points) }

// Point returns the current position of boundary point i.
func (b *Blob) Point(i int) Vec2 { return b.points[i].pos }

// Points fills buf with the current ring positions in order and returns
// it, growing the buffer only when needed. Pass nil to allocate, or reuse
// the returned slice across frames for allocation-free reads.
func (b *Blob) Points(buf []Vec2) []Vec2 {
	if cap(buf) < len(b.points) {
		buf = make([]Vec2, len(b.points))
	}
	buf = buf[:len(b.points)]
	for i := range b.points {
		buf[i] = b.points[i].pos
	}
	return buf
}

// RestArea returns the enclosed area the ring relaxes toward.
func (b *Blob) RestArea() float64 { return b.restArea }

// Circumference returns the rest perimeter of the ring.
func (b *Blob) Circumference() float64 { return b.circumference }

// ChordLength returns the rest distance between adjacent boundary points.
func (b *Blob) ChordLength() float64 { return b.chordLength }
