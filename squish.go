package squish

import "math"

// Solver tuning shared across the package. These are deliberately unitless:
// squish is a stylized animation solver, not a physics engine, and gravity
// is a fixed per-step displacement rather than a scaled acceleration.
const (
	// DefaultIterations is the relaxation pass count Blob.Update uses when
	// the caller passes iterations <= 0. More passes converge tighter at
	// linear cost; ten is plenty for rings under ~64 points.
	DefaultIterations = 10

	// RepulsionRadius is the clearance kept between every boundary point
	// and the optional repulsion point, in world units.
	RepulsionRadius = 100.0

	gravityStep = 1.0  // downward displacement added to every point, per update
	bodyDamping = 0.99 // Verlet velocity retention for blob boundary points
	limbDamping = 0.95 // Verlet velocity retention for limb joints
)

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func finite(v Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
