package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/propstack/rentquant/backend/pkg/logger"
)

// ValuationEvent is one completed valuation pushed to subscribers
type ValuationEvent struct {
	Timestamp    time.Time `json:"timestamp"`
	PropertyType string    `json:"property_type"`
	SizeSqft     float64   `json:"size_in_sqft"`
	AdjustedRent *float64  `json:"adjusted_rent"`
	Warnings     int       `json:"warnings"`
	UpliftPct    float64   `json:"uplift_pct"`
	Degraded     bool      `json:"degraded"`
}

// Hub fans completed valuations out to websocket subscribers.
// ⭐ SSOT: 감정 스트림 구독 관리는 이 허브에서만
type Hub struct {
	upgrader websocket.Upgrader
	logger   *logger.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

// NewHub creates an empty hub
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// 내부 대시보드 전용: 오리진 제한 없음
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger:  log,
		clients: make(map[*websocket.Conn]bool),
	}
}

// ServeWS upgrades a request and keeps the connection subscribed until
// the peer goes away.
// GET /ws/valuations
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Warn("websocket upgrade failed")
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	count := len(h.clients)
	h.mu.Unlock()
	h.logger.WithField("subscribers", count).Debug("valuation stream subscriber connected")

	// reader loop: we never expect client messages, but reading is how
	// close frames and dead peers are detected
	go func() {
		defer h.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Broadcast sends an event to every subscriber, dropping dead ones
func (h *Hub) Broadcast(event ValuationEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteJSON(event); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// Subscribers returns the current subscriber count
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) drop(conn *websocket.Conn) {
	conn.Close()
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}
