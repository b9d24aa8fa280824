package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialTestHub(t *testing.T) (*Hub, *websocket.Conn, context.CancelFunc) {
	t.Helper()

	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return hub, conn, cancel
}

func TestHub_BroadcastReachesSubscriber(t *testing.T) {
	hub, conn, cancel := dialTestHub(t)
	defer cancel()

	// Give the registration message time to land before broadcasting.
	require.Eventually(t, func() bool {
		hub.Broadcast(NewEvent(TypeComparisonStarted, map[string]any{
			"entities": []string{"apple", "meta"},
		}))
		return true
	}, time.Second, 50*time.Millisecond)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var event Event
	require.NoError(t, json.Unmarshal(payload, &event))
	assert.Equal(t, TypeComparisonStarted, event.Type)
	assert.False(t, event.Timestamp.IsZero())
	assert.Contains(t, event.Payload, "entities")
}

func TestHub_MultipleEventsArriveInOrder(t *testing.T) {
	hub, conn, cancel := dialTestHub(t)
	defer cancel()

	time.Sleep(100 * time.Millisecond) // allow registration

	hub.Broadcast(NewEvent(TypeDocumentsReceived, map[string]any{"count": 2}))
	hub.Broadcast(NewEvent(TypeComparisonCompleted, nil))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var first, second Event
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(payload, &first))

	_, payload, err = conn.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(payload, &second))

	assert.Equal(t, TypeDocumentsReceived, first.Type)
	assert.Equal(t, TypeComparisonCompleted, second.Type)
}

func TestHub_ShutdownClosesClients(t *testing.T) {
	_, conn, cancel := dialTestHub(t)

	time.Sleep(100 * time.Millisecond)
	cancel()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return // connection closed as expected
		}
	}
}
