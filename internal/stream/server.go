package stream

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"sandfall/internal/tools"
)

// FrameInterval is how often the server ticks the world and broadcasts.
const FrameInterval = 16 * time.Millisecond

const sendQueue = 8

// Server owns a session and fans its updates out to websocket clients.
// The world is only touched with mu held.
type Server struct {
	mu      sync.Mutex
	session *tools.Session

	clientsMu sync.Mutex
	clients   map[*client]struct{}

	upgrader websocket.Upgrader
}

type client struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func (c *client) close() {
	c.once.Do(func() {
		close(c.send)
	})
}

// NewServer wraps session. Any origin may connect.
func NewServer(session *tools.Session) *Server {
	return &Server{
		session: session,
		clients: map[*client]struct{}{},
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Handler routes /ws to the websocket endpoint and /params to a JSON dump
// of the world parameters.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/params", s.handleParams)
	return mux
}

// Clients reports the number of connected clients.
func (s *Server) Clients() int {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	return len(s.clients)
}

// Run ticks the session every FrameInterval and broadcasts the cells that
// changed, until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.closeAll()
			return ctx.Err()
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Tick advances the session once if the fixed step allows it and
// broadcasts the dirty region.
func (s *Server) Tick() {
	s.mu.Lock()
	s.session.Advance()
	var frame []byte
	if r := s.session.World.TakeDirty(); !r.Empty() {
		frame = EncodeFrame(s.session.World, r)
	}
	s.mu.Unlock()
	if frame != nil {
		s.broadcast(frame)
	}
}

func (s *Server) broadcast(frame []byte) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	for c := range s.clients {
		select {
		case c.send <- frame:
		default:
			log.Printf("stream: dropping slow client %s", c.conn.RemoteAddr())
			delete(s.clients, c)
			c.close()
		}
	}
}

func (s *Server) closeAll() {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	for c := range s.clients {
		delete(s.clients, c)
		c.close()
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		if _, ok := err.(websocket.HandshakeError); !ok {
			log.Println(err)
		}
		return
	}
	c := &client{conn: conn, send: make(chan []byte, sendQueue)}

	// Every client starts from a full frame. It joins the broadcast set
	// before mu is released so no tick can fall between the two.
	s.mu.Lock()
	size := s.session.World.Size()
	c.send <- EncodeFrame(s.session.World, fullRect(size.W, size.H))
	s.clientsMu.Lock()
	s.clients[c] = struct{}{}
	s.clientsMu.Unlock()
	s.mu.Unlock()

	go s.writeSocket(c)
	go s.readSocket(c)
}

func (s *Server) writeSocket(c *client) {
	defer c.conn.Close()
	for frame := range c.send {
		if err := c.conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
			log.Printf("stream: write: %v", err)
			s.drop(c)
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func (s *Server) readSocket(c *client) {
	defer s.drop(c)
	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				log.Printf("stream: read: %v", err)
			}
			return
		}
		cmd, err := ParseCommand(msg)
		if err != nil {
			log.Printf("stream: %s: %v", c.conn.RemoteAddr(), err)
			continue
		}
		s.mu.Lock()
		cmd.apply(s.session)
		s.mu.Unlock()
	}
}

func (s *Server) drop(c *client) {
	s.clientsMu.Lock()
	delete(s.clients, c)
	s.clientsMu.Unlock()
	c.close()
}

func (s *Server) handleParams(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snapshot := s.session.World.Parameters()
	s.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snapshot); err != nil {
		log.Printf("stream: params: %v", err)
	}
}
