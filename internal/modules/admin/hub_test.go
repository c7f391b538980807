package admin

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThomasZeryouh/gite-location-ellezelles/internal/domain"
)

func TestHub_BroadcastReachesDashboard(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	handler := NewHandler(NewService(nil), hub)

	router := gin.New()
	router.GET("/ws", handler.Websocket)

	server := httptest.NewServer(router)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Registration happens in the handler goroutine after upgrade.
	require.Eventually(t, func() bool {
		return hub.ConnectionCount() == 1
	}, time.Second, 10*time.Millisecond)

	r := &domain.Reservation{ID: "res-1", GuestName: "Jean Dupont"}
	require.NoError(t, hub.NotifyReservationCreated(context.Background(), r))

	conn.SetReadDeadline(time.Now().Add(time.Second))
	var event WSEvent
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, "reservation_created", event.Event)
	assert.Equal(t, "res-1", event.Reservation.ID)
}

func TestHub_UnregisterOnClose(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	handler := NewHandler(NewService(nil), hub)

	router := gin.New()
	router.GET("/ws", handler.Websocket)

	server := httptest.NewServer(router)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return hub.ConnectionCount() == 1
	}, time.Second, 10*time.Millisecond)

	conn.Close()

	require.Eventually(t, func() bool {
		return hub.ConnectionCount() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestHub_DeletedEventCarriesID(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	// No connections: broadcasting is still a no-op success.
	assert.NoError(t, hub.NotifyReservationDeleted(context.Background(), "res-9"))
}
