// terminal renders a squish creature in the terminal with tcell. The mouse
// cursor (or hjkl with the keyboard) is the solver's repulsion point. Press
// q or Escape to quit.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/squish"
)

// Terminal cells are roughly twice as tall as wide, so one column covers
// cellW world units and one row covers cellH.
const (
	cellW = 4.0
	cellH = 8.0

	tickHz = 30
)

type app struct {
	screen        tcell.Screen
	width, height int // world units

	creature *squish.Creature
	ring     []squish.Vec2

	pokeX, pokeY float64
	pokeActive   bool
}

func newApp() (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	a := &app{screen: screen}
	a.handleResize()

	creature, err := squish.NewCreature(squish.DefaultCreatureConfig(squish.Vec2{
		X: float64(a.width) / 2,
		Y: float64(a.height) / 3,
	}))
	if err != nil {
		screen.Fini()
		return nil, err
	}
	a.creature = creature
	a.pokeX = float64(a.width) / 2
	a.pokeY = float64(a.height) * 0.8
	return a, nil
}

func (a *app) handleResize() {
	cols, rows := a.screen.Size()
	a.width = int(float64(cols) * cellW)
	a.height = int(float64(rows) * cellH)
}

func (a *app) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'h':
				a.pokeX -= cellW * 2
				a.pokeActive = true
			case 'l':
				a.pokeX += cellW * 2
				a.pokeActive = true
			case 'k':
				a.pokeY -= cellH
				a.pokeActive = true
			case 'j':
				a.pokeY += cellH
				a.pokeActive = true
			case ' ':
				a.pokeActive = false
			}
		}
	case *tcell.EventMouse:
		cx, cy := ev.Position()
		a.pokeX = (float64(cx) + 0.5) * cellW
		a.pokeY = (float64(cy) + 0.5) * cellH
		a.pokeActive = true
	case *tcell.EventResize:
		a.handleResize()
		a.screen.Sync()
	}
	return true
}

func (a *app) step() error {
	var repulsion *squish.Vec2
	if a.pokeActive {
		repulsion = &squish.Vec2{X: a.pokeX, Y: a.pokeY}
	}
	return a.creature.Update(float64(a.width), float64(a.height), repulsion)
}

func (a *app) draw() {
	a.screen.Clear()

	limbStyle := tcell.StyleDefault.Foreground(tcell.ColorOlive)
	bodyStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	pokeStyle := tcell.StyleDefault.Foreground(tcell.ColorRed)

	for id := squish.LimbFrontLeft; id < squish.NumLimbs; id++ {
		limb := a.creature.Limb(id)
		a.plotSegment(limb.Elbow(), limb.Foot(), '·', limbStyle)
		a.plot(limb.Elbow(), 'o', limbStyle)
		a.plot(limb.Foot(), 'O', limbStyle)
	}

	a.ring = a.creature.Body().Points(a.ring)
	for i, p := range a.ring {
		a.plotSegment(p, a.ring[(i+1)%len(a.ring)], '░', bodyStyle)
	}
	for _, p := range a.ring {
		a.plot(p, '●', bodyStyle)
	}

	if a.pokeActive {
		a.plot(squish.Vec2{X: a.pokeX, Y: a.pokeY}, '+', pokeStyle)
	}

	a.screen.Show()
}

func (a *app) plot(p squish.Vec2, r rune, style tcell.Style) {
	cx := int(p.X / cellW)
	cy := int(p.Y / cellH)
	cols, rows := a.screen.Size()
	if cx < 0 || cx >= cols || cy < 0 || cy >= rows {
		return
	}
	a.screen.SetContent(cx, cy, r, nil, style)
}

func (a *app) plotSegment(from, to squish.Vec2, r rune, style tcell.Style) {
	steps := int(from.Dist(to)/cellW) + 1
	for i := 0; i <= steps; i++ {
		a.plot(from.Lerp(to, float64(i)/float64(steps)), r, style)
	}
}

func (a *app) run() error {
	ticker := time.NewTicker(time.Second / tickHz)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return nil
			}
		case <-ticker.C:
			if err := a.step(); err != nil {
				return err
			}
			a.draw()
		}
	}
}

func main() {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer a.screen.Fini()

	if err := a.run(); err != nil {
		a.screen.Fini()
		fmt.Fprintf(os.Stderr, "solver: %v\n", err)
		os.Exit(1)
	}
}
