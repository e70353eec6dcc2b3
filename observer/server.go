package observer

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/oklog/ulid/v2"

	"github.com/lixenwraith/boxworld/status"
)

const (
	sendBuffer   = 16
	writeTimeout = 5 * time.Second
	readTimeout  = 60 * time.Second
)

// Options configures the listener; an empty Addr keeps the feed off
type Options struct {
	Addr string
}

type client struct {
	id   string
	send chan []byte
}

// Server fans frames out to spectators
// Implements service.Service
type Server struct {
	opts     Options
	metrics  *status.Registry
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[string]*client
	latest  []byte
	seq     uint64

	httpServer *http.Server
	listener   net.Listener
}

// NewServer creates a server; metrics may be nil
func NewServer(metrics *status.Registry) *Server {
	return &Server{
		metrics: metrics,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 16 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: make(map[string]*client),
	}
}

// Name implements service.Service
func (s *Server) Name() string { return "observer" }

// Init picks the first Options from args
func (s *Server) Init(args ...any) error {
	for _, arg := range args {
		if o, ok := arg.(Options); ok {
			s.opts = o
			break
		}
	}
	return nil
}

// Start listens on the configured address and serves in the background
func (s *Server) Start() error {
	if s.opts.Addr == "" {
		return nil
	}
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return err
	}
	s.listener = ln
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("observer: serve: %v", err)
		}
	}()
	log.Printf("observer: listening on %s", ln.Addr())
	return nil
}

// Stop shuts the listener down and disconnects every spectator; idempotent
func (s *Server) Stop() error {
	var err error
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		err = s.httpServer.Shutdown(ctx)
		cancel()
		s.httpServer = nil
	}

	s.mu.Lock()
	for id, c := range s.clients {
		close(c.send)
		delete(s.clients, id)
		s.metrics.Add(status.MetricSpectators, -1)
	}
	s.mu.Unlock()
	return err
}

// Addr returns the bound address, empty when not listening
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Handler serves GET /observe
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/observe", s.handleObserve)
	return mux
}

// Publish stamps f with the next sequence number and queues it for every spectator
// Slow spectators drop frames rather than block the caller
func (s *Server) Publish(f Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	f.Seq = s.seq
	b, err := json.Marshal(f)
	if err != nil {
		log.Printf("observer: marshal frame: %v", err)
		return
	}
	s.latest = b

	for _, c := range s.clients {
		select {
		case c.send <- b:
		default:
		}
	}
}

// Clients returns the number of connected spectators
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func (s *Server) handleObserve(rw http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		rw.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !isLoopbackRemote(r.RemoteAddr) {
		http.Error(rw, "forbidden", http.StatusForbidden)
		return
	}

	conn, err := s.upgrader.Upgrade(rw, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	c := s.join()
	log.Printf("observer: spectator %s connected", c.id)
	defer func() {
		s.leave(c.id)
		log.Printf("observer: spectator %s left", c.id)
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for b := range c.send {
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
				return
			}
		}
		_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "bye"), time.Now().Add(time.Second))
	}()

	// Spectators are read-only; reads only detect disconnects
	for {
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.leave(c.id)
	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
	}
}

// join registers a client and queues the latest frame for it
func (s *Server) join() *client {
	c := &client{
		id:   ulid.Make().String(),
		send: make(chan []byte, sendBuffer),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[c.id] = c
	if s.latest != nil {
		c.send <- s.latest
	}
	s.metrics.Add(status.MetricSpectators, 1)
	return c
}

func (s *Server) leave(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.clients[id]; ok {
		delete(s.clients, id)
		close(c.send)
		s.metrics.Add(status.MetricSpectators, -1)
	}
}

func isLoopbackRemote(remoteAddr string) bool {
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	host = strings.TrimPrefix(host, "[")
	host = strings.TrimSuffix(host, "]")
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
