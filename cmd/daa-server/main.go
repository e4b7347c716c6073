// Command daa-server streams periodically recomputed DAA bands to
// connected websocket clients: each client receives a JSON snapshot of
// the current track/ground-speed/vertical-speed/altitude bands once every
// -period. The command sets no ownship or traffic state on its core.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rbutler/daaband"
)

const (
	writeWait  = 5 * time.Second
	pingPeriod = 20 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// bandsSnapshot is the JSON payload pushed to every connected client.
type bandsSnapshot struct {
	Time  float64          `json:"time"`
	Track []daa.BandsRange `json:"track"`
	Gs    []daa.BandsRange `json:"gs"`
	Vs    []daa.BandsRange `json:"vs"`
	Alt   []daa.BandsRange `json:"alt"`
}

// hub fans out the latest snapshot to every connected websocket client.
type hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func newHub() *hub { return &hub{clients: make(map[*websocket.Conn]struct{})} }

func (h *hub) add(c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

func (h *hub) remove(c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
	c.Close()
}

func (h *hub) broadcast(snap bandsSnapshot) {
	payload, err := json.Marshal(snap)
	if err != nil {
		log.Printf("[daa:error] server: marshal snapshot: %v", err)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		c.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("[daa:warn] server: client write failed, dropping: %v", err)
			go h.remove(c)
		}
	}
}

func main() {
	addr := flag.String("addr", ":8787", "listen address")
	period := flag.Duration("period", time.Second, "snapshot push interval")
	flag.Parse()

	h := newHub()
	core := daa.NewDaidalusCore()

	http.HandleFunc("/bands", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("[daa:warn] server: upgrade failed: %v", err)
			return
		}
		h.add(conn)
		log.Printf("[daa:info] server: client connected (%d total)", len(h.clients))
	})

	go func() {
		ticker := time.NewTicker(*period)
		defer ticker.Stop()
		for t := range ticker.C {
			now := float64(t.UnixNano()) / 1e9
			snap := bandsSnapshot{
				Time:  now,
				Track: core.TrackBands(now, daa.ToInternal(1, "deg")),
				Gs:    core.GroundSpeedBands(now, daa.ToInternal(1, "kn"), 0, daa.ToInternal(400, "kn")),
				Vs:    core.VerticalSpeedBands(now, daa.ToInternal(100, "fpm"), daa.ToInternal(-4000, "fpm"), daa.ToInternal(4000, "fpm")),
				Alt:   core.AltitudeBands(now, daa.ToInternal(100, "ft"), 0, daa.ToInternal(40000, "ft")),
			}
			h.broadcast(snap)
		}
	}()

	log.Printf("[daa:info] server: listening on %s", *addr)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatalf("[daa:error] server: %v", err)
	}
}
