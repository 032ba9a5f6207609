package squish

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec(t *testing.T, name string, got, want Vec2) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestVecAddSub(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, -4}
	assertVec(t, "Add", a.Add(b), Vec2{4, -2})
	assertVec(t, "Sub", a.Sub(b), Vec2{-2, 6})
	// Originals untouched (value semantics).
	assertVec(t, "a", a, Vec2{1, 2})
}

func TestVecScale(t *testing.T) {
	assertVec(t, "Scale", Vec2{2, -3}.Scale(2.5), Vec2{5, -7.5})
	assertVec(t, "Scale(0)", Vec2{2, -3}.Scale(0), Vec2{})
}

func TestVecLen(t *testing.T) {
	assertNear(t, "Len", Vec2{3, 4}.Len(), 5)
	assertNear(t, "LenSq", Vec2{3, 4}.LenSq(), 25)
	assertNear(t, "Dist", Vec2{1, 1}.Dist(Vec2{4, 5}), 5)
	assertNear(t, "zero Len", Vec2{}.Len(), 0)
}

func TestVecAngle(t *testing.T) {
	assertNear(t, "+x", Vec2{1, 0}.Angle(), 0)
	assertNear(t, "+y", Vec2{0, 1}.Angle(), math.Pi/2)
	assertNear(t, "-x", Vec2{-1, 0}.Angle(), math.Pi)
	assertNear(t, "-y", Vec2{0, -1}.Angle(), -math.Pi/2)
	assertNear(t, "diagonal", Vec2{1, 1}.Angle(), math.Pi/4)
}

func TestVecRotate(t *testing.T) {
	assertVec(t, "90", Vec2{1, 0}.Rotate(math.Pi/2), Vec2{0, 1})
	assertVec(t, "-90", Vec2{1, 0}.Rotate(-math.Pi/2), Vec2{0, -1})
	assertVec(t, "180", Vec2{2, 3}.Rotate(math.Pi), Vec2{-2, -3})
	assertVec(t, "360", Vec2{2, 3}.Rotate(2*math.Pi), Vec2{2, 3})
}

func TestVecNormalize(t *testing.T) {
	assertVec(t, "unit", Vec2{3, 4}.Normalize(), Vec2{0.6, 0.8})
	assertNear(t, "len", Vec2{-7, 2}.Normalize().Len(), 1)
	// Zero-length input has no direction; falls back to the zero vector.
	assertVec(t, "zero", Vec2{}.Normalize(), Vec2{})
}

func TestVecSetLength(t *testing.T) {
	assertVec(t, "grow", Vec2{3, 4}.SetLength(10), Vec2{6, 8})
	assertVec(t, "shrink", Vec2{0, 8}.SetLength(2), Vec2{0, 2})
	// Negative lengths flip direction.
	assertVec(t, "flip", Vec2{3, 4}.SetLength(-5), Vec2{-3, -4})
	assertVec(t, "zero", Vec2{}.SetLength(5), Vec2{})
}

func TestVecLerp(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{10, -20}
	assertVec(t, "t=0", a.Lerp(b, 0), a)
	assertVec(t, "t=1", a.Lerp(b, 1), b)
	assertVec(t, "t=0.25", a.Lerp(b, 0.25), Vec2{2.5, -5})
}

func TestUnitVector(t *testing.T) {
	assertVec(t, "0", unitVector(0), Vec2{1, 0})
	assertVec(t, "90", unitVector(math.Pi/2), Vec2{0, 1})
	assertNear(t, "len", unitVector(1.234).Len(), 1)
}
