package game

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // scoreboards are served from other origins
	},
}

// StreamEvent is one message on the match stream.
type StreamEvent struct {
	Type  string     `json:"type"` // "state" or "closed"
	Match *MatchView `json:"match,omitempty"`
}

// GET /api/matches/{id}/ws
//
// Streams the match view after every change until the client goes away or
// the match is discarded.
func (h *Handler) StreamMatch(w http.ResponseWriter, r *http.Request) {
	views, cancel, err := h.svc.Subscribe(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "failed to stream match", err)
		return
	}
	defer cancel()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	done := make(chan struct{})
	go readPump(conn, done)

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case view, ok := <-views:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteJSON(StreamEvent{Type: "closed"})
				return
			}
			if err := conn.WriteJSON(StreamEvent{Type: "state", Match: &view}); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// readPump drains client frames so pongs and close frames get processed.
func readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
