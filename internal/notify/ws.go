package notify

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// WSServer streams notices to connected dashboard clients.
type WSServer struct {
	connsMu sync.RWMutex
	conns   map[string]*websocket.Conn
}

func NewWSServer(center *Center) *WSServer {
	s := &WSServer{conns: make(map[string]*websocket.Conn)}
	center.SetBroadcast(s.Broadcast)
	return s
}

// Broadcast sends a notice to every connected client. Slow or dead
// connections are dropped.
func (s *WSServer) Broadcast(n Notice) {
	s.connsMu.RLock()
	conns := make(map[string]*websocket.Conn, len(s.conns))
	for id, conn := range s.conns {
		conns[id] = conn
	}
	s.connsMu.RUnlock()

	for id, conn := range conns {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := wsjson.Write(ctx, conn, n)
		cancel()
		if err != nil {
			log.Printf("Notice write to %s failed, dropping: %v", id, err)
			s.remove(id)
			conn.Close(websocket.StatusNormalClosure, "write failed")
		}
	}
}

func (s *WSServer) remove(id string) {
	s.connsMu.Lock()
	delete(s.conns, id)
	s.connsMu.Unlock()
}

// HandleNotices upgrades the request and keeps the connection registered
// until the client disconnects.
func (s *WSServer) HandleNotices(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		log.Printf("WebSocket accept error: %v", err)
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "goodbye")

	id := uuid.NewString()
	s.connsMu.Lock()
	s.conns[id] = conn
	s.connsMu.Unlock()
	defer s.remove(id)

	// Clients only listen; read until the connection goes away.
	for {
		if _, _, err := conn.Read(r.Context()); err != nil {
			return
		}
	}
}
