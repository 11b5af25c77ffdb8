// Package telemetry streams live run snapshots to websocket subscribers.
package telemetry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	writeWait  = 2 * time.Second
	sendBuffer = 8
)

// Snapshot is one published frame of run progress.
type Snapshot struct {
	RunID      string  `json:"runId,omitempty" msgpack:"runId,omitempty"`
	Player     string  `json:"player,omitempty" msgpack:"player,omitempty"`
	Score      int     `json:"score" msgpack:"score"`
	Speed      float64 `json:"speed" msgpack:"speed"`
	Stopped    bool    `json:"stopped" msgpack:"stopped"`
	FinalScore *int    `json:"finalScore,omitempty" msgpack:"finalScore,omitempty"`
}

// Format selects the wire encoding for a subscriber.
type Format int

const (
	FormatJSON Format = iota
	FormatMsgpack
)

// ParseFormat maps the ?format= query value. Empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "json":
		return FormatJSON, nil
	case "msgpack":
		return FormatMsgpack, nil
	}
	return FormatJSON, fmt.Errorf("telemetry: unknown format %q", s)
}

// Encode marshals s and returns the websocket message type to send it with.
func Encode(s Snapshot, f Format) ([]byte, int, error) {
	if f == FormatMsgpack {
		data, err := msgpack.Marshal(&s)
		return data, websocket.BinaryMessage, err
	}
	data, err := json.Marshal(s)
	return data, websocket.TextMessage, err
}

type client struct {
	conn   *websocket.Conn
	format Format
	send   chan Snapshot
}

// Hub fans snapshots out to every connected subscriber. Publish never blocks:
// a subscriber whose buffer is full misses that frame.
type Hub struct {
	logger   *log.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
	closed  bool

	dropped atomic.Uint64
}

// NewHub creates an empty hub.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{
		logger:   logger,
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		clients:  make(map[*client]struct{}),
	}
}

// Handler returns a mux serving the hub at /telemetry.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/telemetry", h)
	return mux
}

// ServeHTTP upgrades the request and subscribes the connection.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	format, err := ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("telemetry upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	c := &client{conn: conn, format: format, send: make(chan Snapshot, sendBuffer)}
	if !h.register(c) {
		conn.Close()
		return
	}
	h.logger.Info("telemetry client connected", "remote", r.RemoteAddr, "clients", h.Clients())

	go h.writePump(c)
	h.readPump(c)
	h.logger.Info("telemetry client disconnected", "remote", r.RemoteAddr)
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// readPump discards inbound messages and unregisters on disconnect.
func (h *Hub) readPump(c *client) {
	defer h.unregister(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	defer c.conn.Close()
	for s := range c.send {
		data, kind, err := Encode(s, c.format)
		if err != nil {
			h.logger.Error("telemetry encode failed", "error", err)
			continue
		}
		if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			return
		}
		if err := c.conn.WriteMessage(kind, data); err != nil {
			return
		}
	}
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
}

// Publish offers s to every subscriber without blocking.
func (h *Hub) Publish(s Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- s:
		default:
			h.dropped.Add(1)
		}
	}
}

// Clients returns the number of connected subscribers.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Dropped returns how many snapshots were skipped for slow subscribers.
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

// Close disconnects every subscriber and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

// Serve runs an HTTP server for the hub on addr until ctx is done.
func Serve(ctx context.Context, addr string, h *Hub) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	h.logger.Info("telemetry listening", "address", addr)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("telemetry: %w", err)
	case <-ctx.Done():
		h.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
