package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubBroadcastsRefreshOnGenerationChange(t *testing.T) {
	var gen atomic.Uint64
	hub := NewHub(gen.Load)
	hub.poll = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer srv.Close()

	conn := dial(t, srv)
	gen.Store(1)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var ev struct {
		Event      string `json:"event"`
		Generation uint64 `json:"generation"`
	}
	if err := json.Unmarshal(msg, &ev); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ev.Event != "refreshed" || ev.Generation != 1 {
		t.Errorf("got event %q generation %d, want refreshed/1", ev.Event, ev.Generation)
	}
}

func TestHubShutdownUnblocksClientTeardown(t *testing.T) {
	hub := NewHub(func() uint64 { return 0 })
	hub.poll = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer srv.Close()
	conn := dial(t, srv)

	cancel()
	select {
	case <-hub.done:
	case <-time.After(time.Second):
		t.Fatalf("hub did not shut down")
	}

	// Dropping the connection after shutdown must not strand its reader:
	// nothing drains unregister anymore, so the done channel has to win.
	conn.Close()
	finished := make(chan struct{})
	go func() {
		select {
		case hub.unregister <- nil:
		case <-hub.done:
		}
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Errorf("client teardown blocked after shutdown")
	}
}

func TestHubDoesNotBroadcastWhenGenerationIsStable(t *testing.T) {
	hub := NewHub(func() uint64 { return 7 })
	hub.poll = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer srv.Close()

	conn := dial(t, srv)
	conn.SetReadDeadline(time.Now().Add(150 * time.Millisecond))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Errorf("got a message for a stable generation")
	}
}
