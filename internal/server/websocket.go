package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type resultsHub struct {
	mu      sync.Mutex
	writeMu sync.Mutex
	conns   map[*websocket.Conn]struct{}
}

func newResultsHub() *resultsHub {
	return &resultsHub{
		conns: make(map[*websocket.Conn]struct{}),
	}
}

func (h *resultsHub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = struct{}{}
}

func (h *resultsHub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
	_ = conn.Close()
}

func (h *resultsHub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Send writes the payload built by build to one connection. build runs while
// the hub's write lock is held, so it sees state at least as new as anything
// already written to any connection.
func (h *resultsHub) Send(conn *websocket.Conn, build func() any) {
	h.writeMu.Lock()
	defer h.writeMu.Unlock()
	data, err := json.Marshal(build())
	if err != nil {
		return
	}
	_ = conn.WriteMessage(websocket.TextMessage, data)
}

// Broadcast builds one payload under the write lock and writes it to every
// connection. Because build runs inside the lock, pushes leave in the order
// they were built and the last one carries the latest results.
func (h *resultsHub) Broadcast(build func() any) {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.conns))
	for conn := range h.conns {
		conns = append(conns, conn)
	}
	h.mu.Unlock()
	if len(conns) == 0 {
		return
	}
	h.writeMu.Lock()
	data, err := json.Marshal(build())
	if err != nil {
		h.writeMu.Unlock()
		return
	}
	var failed []*websocket.Conn
	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			failed = append(failed, conn)
		}
	}
	h.writeMu.Unlock()
	for _, conn := range failed {
		h.Remove(conn)
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (s *Server) handleResultsWebsocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	log.Printf("ws connected results remote=%s", c.Request.RemoteAddr)
	s.results.Add(conn)
	s.results.Send(conn, s.resultsPayload)
	go s.readResultsWS(conn)
}

func (s *Server) readResultsWS(conn *websocket.Conn) {
	defer s.results.Remove(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			log.Printf("results ws disconnected error=%v", err)
			return
		}
	}
}

func (s *Server) broadcastResults() {
	if s.results == nil || s.results.Count() == 0 {
		return
	}
	s.results.Broadcast(s.resultsPayload)
}

func (s *Server) resultsPayload() any {
	escaped, eliminated := s.registry.ListResults()
	return map[string]any{
		"type":       "results",
		"escaped":    escaped,
		"eliminated": eliminated,
		"html":       renderResultsHTML(escaped, eliminated),
	}
}
