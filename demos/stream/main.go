// stream runs a squish creature headless and broadcasts its pose over
// WebSocket as JSON frames, one per simulation tick. Clients may send
// {"x":..,"y":..} poke messages; the latest poke becomes the solver's
// repulsion point for a short while. Connect any renderer to ws://:8080/ws.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/phanxgames/squish"
)

const (
	tickHz    = 30
	worldW    = 960
	worldH    = 640
	pokeTicks = tickHz / 2 // a poke fades after half a second
)

var upgrader = websocket.Upgrader{
	// Demo server, any origin may connect.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Frame is one simulation tick on the wire.
type Frame struct {
	Tick  int        `json:"tick"`
	Ring  []PointDTO `json:"ring"`
	Limbs []LimbDTO  `json:"limbs"`
}

type PointDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type LimbDTO struct {
	Elbow PointDTO `json:"elbow"`
	Foot  PointDTO `json:"foot"`
}

// Poke is the only client->server message.
type Poke struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type hub struct {
	creature *squish.Creature
	ring     []squish.Vec2

	joins  chan *websocket.Conn
	leaves chan *websocket.Conn
	pokes  chan Poke
	conns  map[*websocket.Conn]struct{}

	poke     squish.Vec2
	pokeLeft int
	tick     int
}

func newHub() (*hub, error) {
	creature, err := squish.NewCreature(squish.DefaultCreatureConfig(squish.Vec2{X: worldW / 2, Y: worldH / 3}))
	if err != nil {
		return nil, err
	}
	return &hub{
		creature: creature,
		joins:    make(chan *websocket.Conn),
		leaves:   make(chan *websocket.Conn),
		pokes:    make(chan Poke, 64),
		conns:    make(map[*websocket.Conn]struct{}),
	}, nil
}

func (h *hub) run() {
	ticker := time.NewTicker(time.Second / tickHz)
	defer ticker.Stop()

	for {
		select {
		case conn := <-h.joins:
			h.conns[conn] = struct{}{}
		case conn := <-h.leaves:
			if _, ok := h.conns[conn]; ok {
				_ = conn.Close()
				delete(h.conns, conn)
			}
		case p := <-h.pokes:
			h.poke = squish.Vec2{X: p.X, Y: p.Y}
			h.pokeLeft = pokeTicks
		case <-ticker.C:
			h.step()
		}
	}
}

func (h *hub) step() {
	var repulsion *squish.Vec2
	if h.pokeLeft > 0 {
		h.pokeLeft--
		repulsion = &h.poke
	}
	if err := h.creature.Update(worldW, worldH, repulsion); err != nil {
		log.Println("solve:", err)
		return
	}
	h.tick++

	if len(h.conns) == 0 {
		return
	}
	b, err := json.Marshal(h.snapshot())
	if err != nil {
		return
	}
	var failed []*websocket.Conn
	for conn := range h.conns {
		_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
			failed = append(failed, conn)
		}
	}
	for _, conn := range failed {
		_ = conn.Close()
		delete(h.conns, conn)
	}
}

func (h *hub) snapshot() Frame {
	h.ring = h.creature.Body().Points(h.ring)
	frame := Frame{
		Tick:  h.tick,
		Ring:  make([]PointDTO, len(h.ring)),
		Limbs: make([]LimbDTO, 0, int(squish.NumLimbs)),
	}
	for i, p := range h.ring {
		frame.Ring[i] = PointDTO{X: p.X, Y: p.Y}
	}
	for id := squish.LimbFrontLeft; id < squish.NumLimbs; id++ {
		limb := h.creature.Limb(id)
		elbow, foot := limb.Elbow(), limb.Foot()
		frame.Limbs = append(frame.Limbs, LimbDTO{
			Elbow: PointDTO{X: elbow.X, Y: elbow.Y},
			Foot:  PointDTO{X: foot.X, Y: foot.Y},
		})
	}
	return frame
}

func (h *hub) wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}
	conn.SetReadLimit(1 << 16)
	h.joins <- conn

	// Read loop: only pokes come back from clients.
	go func() {
		defer func() { h.leaves <- conn }()
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var p Poke
			if err := json.Unmarshal(msg, &p); err != nil {
				continue
			}
			h.pokes <- p
		}
	}()
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	h, err := newHub()
	if err != nil {
		log.Fatal(err)
	}
	go h.run()

	http.HandleFunc("/ws", h.wsHandler)
	log.Printf("listening on %s (ws endpoint: /ws)", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}
