package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

const (
	sendBuffer   = 64
	writeTimeout = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	// Viewers are read-only; any origin may watch
	CheckOrigin: func(r *http.Request) bool { return true },
}

// viewer is one connected websocket client.
type viewer struct {
	id   string
	ws   *websocket.Conn
	send chan []byte
}

// Hub fans snapshots out to every connected viewer.
// Publish never blocks: a viewer whose queue is full misses the frame.
type Hub struct {
	mu      sync.RWMutex
	viewers map[*viewer]struct{}
	last    []byte
	dropped atomic.Uint64
	logger  *log.Logger
}

// NewHub creates an empty hub. logger may be nil.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		viewers: make(map[*viewer]struct{}),
		logger:  logger,
	}
}

// Publish encodes snap once and queues it for every viewer.
func (h *Hub) Publish(snap snake.Snapshot) {
	msg, err := json.Marshal(NewFrame(snap))
	if err != nil {
		h.logger.Error("cannot encode frame", "error", err)
		return
	}

	h.mu.Lock()
	h.last = msg
	h.mu.Unlock()

	h.mu.RLock()
	defer h.mu.RUnlock()
	for v := range h.viewers {
		select {
		case v.send <- msg:
		default:
			h.dropped.Add(1)
		}
	}
}

// Viewers returns the number of connected viewers.
func (h *Hub) Viewers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.viewers)
}

// Dropped returns how many frames were skipped for slow viewers.
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

func (h *Hub) register(v *viewer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.viewers[v] = struct{}{}
	// Late joiners start from the latest frame
	if h.last != nil {
		v.send <- h.last
	}
}

func (h *Hub) unregister(v *viewer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.viewers[v]; ok {
		delete(h.viewers, v)
		close(v.send)
	}
}

// Close disconnects every viewer.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for v := range h.viewers {
		delete(h.viewers, v)
		close(v.send)
	}
}

// ServeHTTP upgrades the request and streams frames until the viewer leaves.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	v := &viewer{
		id:   uuid.NewString(),
		ws:   ws,
		send: make(chan []byte, sendBuffer),
	}
	h.register(v)
	h.logger.Info("viewer connected", "viewer", v.id, "remote", r.RemoteAddr)

	go h.writePump(v)
	h.readPump(v)

	h.unregister(v)
	h.logger.Info("viewer disconnected", "viewer", v.id)
}

// readPump discards viewer messages; it returns once the connection closes.
func (h *Hub) readPump(v *viewer) {
	for {
		if _, _, err := v.ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("viewer read error", "viewer", v.id, "error", err)
			}
			return
		}
	}
}

// writePump sends queued frames until the queue is closed.
func (h *Hub) writePump(v *viewer) {
	defer v.ws.Close()

	for msg := range v.send {
		if err := v.ws.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
			h.logger.Debug("viewer write deadline error", "viewer", v.id, "error", err)
			return
		}
		if err := v.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.logger.Debug("viewer write error", "viewer", v.id, "error", err)
			return
		}
	}
	if err := v.ws.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		h.logger.Debug("viewer write deadline error", "viewer", v.id, "error", err)
		return
	}
	closing := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := v.ws.WriteMessage(websocket.CloseMessage, closing); err != nil {
		h.logger.Debug("viewer close error", "viewer", v.id, "error", err)
	}
}

// Serve listens on addr and serves the hub at /ws until ctx is cancelled.
// It returns the bound address once the listener is up.
func Serve(ctx context.Context, addr string, hub *Hub) (net.Addr, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("spectate: cannot listen on %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			hub.logger.Error("spectator server error", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()
		hub.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	hub.logger.Info("spectator feed listening", "address", ln.Addr().String())
	return ln.Addr(), nil
}
