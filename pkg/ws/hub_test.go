package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func serveHub(t *testing.T, hub *Hub) *httptest.Server {
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		client := NewClient(conn)
		hub.Register(client)
		defer hub.Unregister(client)

		_ = client.Run(r.Context())
	}))
}

func dial(t *testing.T, server *httptest.Server) *websocket.Conn {
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.NoError(t, err)
	return conn
}

func TestHub_Broadcast(t *testing.T) {
	hub := NewHub()
	server := serveHub(t, hub)
	defer server.Close()

	a := dial(t, server)
	defer a.Close()
	b := dial(t, server)
	defer b.Close()

	require.Eventually(t, func() bool { return hub.Len() == 2 }, time.Second, 10*time.Millisecond)

	hub.Broadcast([]byte(`{"type":"claim_created"}`))

	for _, conn := range []*websocket.Conn{a, b} {
		_, msg, err := conn.ReadMessage()
		require.NoError(t, err)
		require.Equal(t, `{"type":"claim_created"}`, string(msg))
	}
}

func TestHub_UnregisterOnClose(t *testing.T) {
	hub := NewHub()
	server := serveHub(t, hub)
	defer server.Close()

	conn := dial(t, server)
	require.Eventually(t, func() bool { return hub.Len() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.Len() == 0 }, time.Second, 10*time.Millisecond)
}

func TestHub_DropsSlowClient(t *testing.T) {
	hub := NewHub()
	client := &Client{send: make(chan []byte, 1)}
	hub.Register(client)

	hub.Broadcast([]byte("1"))
	require.Equal(t, 1, hub.Len())

	hub.Broadcast([]byte("2"))
	require.Equal(t, 0, hub.Len())

	_, ok := <-client.send
	require.True(t, ok)
	_, ok = <-client.send
	require.False(t, ok)

	// Unregistering a dropped client is a no-op.
	hub.Unregister(client)
	require.Equal(t, 0, hub.Len())
}

func TestClient_StopsOnContextDone(t *testing.T) {
	done := make(chan error, 1)
	upgrader := websocket.Upgrader{}
	ctx, cancel := context.WithCancel(context.Background())

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		done <- NewClient(conn).Run(ctx)
	}))
	defer server.Close()

	conn := dial(t, server)
	defer conn.Close()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("client did not stop")
	}

	_, _, err := conn.ReadMessage()
	require.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure))
}
