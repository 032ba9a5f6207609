// pond shows a squish creature idling in a pond. Move the mouse near the
// blob to poke it; the cursor acts as the solver's repulsion point. The
// body pulses with a gween tween so the creature reads as breathing even
// when nothing disturbs it.
package main

import (
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/squish"
)

const (
	screenW = 960
	screenH = 640

	breathePeriod = 1.8 // seconds per half breath
)

type game struct {
	creature *squish.Creature
	ring     []squish.Vec2 // reused point buffer

	breathe   *gween.Tween
	breatheIn bool
	pulse     float64 // 0..1 breathing phase
}

func newGame() (*game, error) {
	creature, err := squish.NewCreature(squish.DefaultCreatureConfig(squish.Vec2{X: screenW / 2, Y: screenH / 3}))
	if err != nil {
		return nil, err
	}
	return &game{
		creature: creature,
		breathe:  gween.New(0, 1, breathePeriod, ease.InOutQuad),
	}, nil
}

func (g *game) Update() error {
	// The cursor is the repulsion point whenever it is inside the window.
	var repulsion *squish.Vec2
	mx, my := ebiten.CursorPosition()
	if mx >= 0 && mx < screenW && my >= 0 && my < screenH {
		repulsion = &squish.Vec2{X: float64(mx), Y: float64(my)}
	}

	if err := g.creature.Update(screenW, screenH, repulsion); err != nil {
		return err
	}

	v, done := g.breathe.Update(float32(1.0 / float64(ebiten.TPS())))
	g.pulse = float64(v)
	if done {
		g.breatheIn = !g.breatheIn
		if g.breatheIn {
			g.breathe = gween.New(1, 0, breathePeriod, ease.InOutQuad)
		} else {
			g.breathe = gween.New(0, 1, breathePeriod, ease.InOutQuad)
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 18, G: 28, B: 38, A: 255})

	bodyFill := color.RGBA{
		R: 70,
		G: uint8(160 + 30*g.pulse),
		B: uint8(90 + 20*g.pulse),
		A: 255,
	}
	limbStroke := color.RGBA{R: 50, G: 120, B: 70, A: 255}

	// Limbs first so the body overlaps their roots.
	for id := squish.LimbFrontLeft; id < squish.NumLimbs; id++ {
		limb := g.creature.Limb(id)
		elbow := limb.Elbow()
		foot := limb.Foot()

		// Approximate root from the elbow's solved bearing.
		root := elbow.Add(unitVec(limb.ElbowAngle()).Scale(limb.Config().SegmentLength))

		strokeSegment(screen, root, elbow, 7, limbStroke)
		strokeSegment(screen, elbow, foot, 6, limbStroke)
		vector.DrawFilledCircle(screen, float32(foot.X), float32(foot.Y), 5, limbStroke, true)
	}

	// Body ring: filled hub plus a rim of overlapping discs. The solver
	// only hands out point positions; smoothing fancier than this belongs
	// to a real renderer.
	g.ring = g.creature.Body().Points(g.ring)
	var center squish.Vec2
	for _, p := range g.ring {
		center = center.Add(p)
	}
	center = center.Scale(1 / float64(len(g.ring)))

	hub := center.Dist(g.ring[0]) * 0.82
	vector.DrawFilledCircle(screen, float32(center.X), float32(center.Y), float32(hub), bodyFill, true)
	for i, p := range g.ring {
		q := g.ring[(i+1)%len(g.ring)]
		strokeSegment(screen, p, q, 4, bodyFill)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Dist(q)*0.62), bodyFill, true)
	}

	// Eyes track nothing in particular; they just sit on the upper ring.
	eyeL := center.Add(g.ring[0].Sub(center).Rotate(-0.45).Scale(0.72))
	eyeR := center.Add(g.ring[0].Sub(center).Rotate(0.45).Scale(0.72))
	for _, eye := range []squish.Vec2{eyeL, eyeR} {
		vector.DrawFilledCircle(screen, float32(eye.X), float32(eye.Y), 8, color.White, true)
		vector.DrawFilledCircle(screen, float32(eye.X), float32(eye.Y), 4, color.RGBA{A: 255}, true)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func strokeSegment(dst *ebiten.Image, a, b squish.Vec2, width float32, clr color.Color) {
	vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
}

func unitVec(theta float64) squish.Vec2 {
	return squish.Vec2{X: math.Cos(theta), Y: math.Sin(theta)}
}

func main() {
	g, err := newGame()
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("Squish Pond")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
