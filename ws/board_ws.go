package ws

import (
	"net/http"
	"sync"
	"time"

	"orderboard/display"
	"orderboard/events"
	"orderboard/repository"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// BoardHub pushes order lifecycle events to every connected display client.
// It keeps a live projection of the board so a client that connects
// mid-session starts from a consistent snapshot instead of an empty board.
// Delivery is best-effort: a dead or slow client is dropped and reconciles
// over REST when it reconnects.
type BoardHub struct {
	clients    map[*websocket.Conn]bool
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex

	bus          events.Bus
	proj         *display.Projection
	orderRepo    *repository.OrderRepository
	log          *zap.Logger
	writeTimeout time.Duration
}

// Frame is the wire shape of everything the hub writes.
type Frame struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

const snapshotFrame = "board:snapshot"

const defaultWriteTimeout = 10 * time.Second

func NewBoardHub(bus events.Bus, orderRepo *repository.OrderRepository, log *zap.Logger) *BoardHub {
	if log == nil {
		log = zap.NewNop()
	}
	return &BoardHub{
		clients:      make(map[*websocket.Conn]bool),
		register:     make(chan *websocket.Conn),
		unregister:   make(chan *websocket.Conn),
		bus:          bus,
		proj:         display.NewProjection(),
		orderRepo:    orderRepo,
		log:          log,
		writeTimeout: defaultWriteTimeout,
	}
}

// writeFrame bounds every client write so a half-dead connection cannot stall
// the Run loop; a timed-out write errors and the client is dropped.
func (h *BoardHub) writeFrame(conn *websocket.Conn, f Frame) error {
	conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
	return conn.WriteJSON(f)
}

// Run subscribes to the bus, seeds the projection from the database, and
// serves clients until the process exits. Call it once, in a goroutine.
func (h *BoardHub) Run() {
	// Subscribe before the seed read: a mutation committed while the seed
	// query runs is buffered and replays over the snapshot idempotently.
	sub := h.bus.Subscribe()
	defer sub.Close()

	if orders, err := h.orderRepo.List(repository.ListFilter{Limit: 500}); err != nil {
		h.log.Error("board snapshot seed failed", zap.Error(err))
	} else {
		h.proj.Reset(orders)
	}

	for {
		select {
		case conn := <-h.register:
			// Snapshot first, then the live stream.
			if err := h.writeFrame(conn, Frame{Type: snapshotFrame, Payload: h.proj.Buckets()}); err != nil {
				h.log.Warn("ws snapshot write failed", zap.Error(err))
				conn.Close()
				continue
			}
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()
			h.log.Info("board client connected", zap.Int("clients", h.clientCount()))

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()
			h.log.Info("board client disconnected", zap.Int("clients", h.clientCount()))

		case ev, ok := <-sub.C:
			if !ok {
				return
			}
			h.proj.Apply(ev)
			h.broadcast(ev)
		}
	}
}

func (h *BoardHub) broadcast(ev events.Event) {
	frame := Frame{Type: string(ev.Type), Payload: ev.Payload}
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := h.writeFrame(conn, frame); err != nil {
			h.log.Warn("ws write error", zap.Error(err))
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

func (h *BoardHub) clientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Snapshot exposes the current board buckets, for the REST fallback.
func (h *BoardHub) Snapshot() display.Buckets {
	return h.proj.Buckets()
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/board. Public, like the boards themselves.
func (h *BoardHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("ws upgrade error", zap.Error(err))
		return
	}

	h.register <- conn
	go h.readLoop(conn)
}

// readLoop drains client frames so pings are answered and closes are seen.
// Displays are read-only; anything else a client sends is ignored.
func (h *BoardHub) readLoop(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
