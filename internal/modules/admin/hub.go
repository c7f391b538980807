package admin

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/ThomasZeryouh/gite-location-ellezelles/internal/domain"
)

// WSEvent is a real-time event pushed to connected admin dashboards so
// an open calendar refreshes without polling.
type WSEvent struct {
	Event       string              `json:"event"`
	Reservation *domain.Reservation `json:"reservation,omitempty"`
	ID          string              `json:"id,omitempty"`
}

// Hub tracks the websocket connections of logged-in admin dashboards.
type Hub struct {
	connections map[*websocket.Conn]struct{}
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[*websocket.Conn]struct{}),
	}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.connections[conn] = struct{}{}
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, exists := h.connections[conn]; exists {
		_ = conn.Close()
		delete(h.connections, conn)
	}
}

// Broadcast sends the event to every connected dashboard; connections
// that fail to write are dropped.
func (h *Hub) Broadcast(event WSEvent) {
	h.mutex.RLock()
	conns := make([]*websocket.Conn, 0, len(h.connections))
	for conn := range h.connections {
		conns = append(conns, conn)
	}
	h.mutex.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(event); err != nil {
			h.Unregister(conn)
		}
	}
}

func (h *Hub) ConnectionCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.connections {
		_ = conn.Close()
		delete(h.connections, conn)
	}
}

// The hub doubles as the reservation service's event notifier.

func (h *Hub) NotifyReservationCreated(_ context.Context, r *domain.Reservation) error {
	h.Broadcast(WSEvent{Event: "reservation_created", Reservation: r})
	return nil
}

func (h *Hub) NotifyReservationUpdated(_ context.Context, r *domain.Reservation) error {
	h.Broadcast(WSEvent{Event: "reservation_updated", Reservation: r})
	return nil
}

func (h *Hub) NotifyReservationDeleted(_ context.Context, id string) error {
	h.Broadcast(WSEvent{Event: "reservation_deleted", ID: id})
	return nil
}
