package progress

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/fm-teamselect/internal/assign"
)

func TestObserver_BroadcastsToSubscribedClient(t *testing.T) {
	hub := NewHub(logrus.New())
	go hub.Run()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, hub.Serve(w, r, "run-1"))
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Give the hub goroutine a moment to process the register message.
	time.Sleep(20 * time.Millisecond)

	observe := hub.Observer("run-1")
	observe(assign.SlotEvent{SlotIndex: 0, Role: "GK", PlayerName: "Smith", Score: 15, Filled: true})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var ev assign.SlotEvent
	require.NoError(t, json.Unmarshal(payload, &ev))
	assert.Equal(t, "Smith", ev.PlayerName)
	assert.True(t, ev.Filled)
}

func TestObserver_IgnoresOtherRuns(t *testing.T) {
	hub := NewHub(logrus.New())
	go hub.Run()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, hub.Serve(w, r, "run-a"))
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	time.Sleep(20 * time.Millisecond)

	hub.Observer("run-b")(assign.SlotEvent{SlotIndex: 0, Role: "GK", Filled: false})

	conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, _, err = conn.ReadMessage()
	assert.Error(t, err) // read times out: no message was ever sent for run-a
}
