package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/ronin-planets/backend/pkg/errorx"
	"github.com/stretchr/testify/require"
)

func TestWebsocket_Echo(t *testing.T) {
	r := New(context.Background())
	Websocket(r, "/ws", func(ctx context.Context, conn *websocket.Conn) error {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		return conn.WriteMessage(websocket.TextMessage, append([]byte("echo:"), msg...))
	})

	server := httptest.NewServer(r.Handler(nil))
	defer server.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("hi")))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, "echo:hi", string(msg))
}

func TestWebsocket_MiddlewareRejects(t *testing.T) {
	r := New(context.Background())
	r.Before(func(ctx context.Context) (context.Context, error) {
		return nil, errorx.New(errorx.Unauthenticated, "nope")
	})
	Websocket(r, "/ws", func(ctx context.Context, conn *websocket.Conn) error {
		t.Fatal("handler must not run")
		return nil
	})

	server := httptest.NewServer(r.Handler(nil))
	defer server.Close()

	_, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http")+"/ws", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCheckOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	require.True(t, checkOrigin(nil)(req))

	req.Header.Set("Origin", "http://evil.example")
	require.False(t, checkOrigin([]string{"http://localhost:3000"})(req))
	require.True(t, checkOrigin([]string{"*"})(req))

	req.Header.Set("Origin", "http://localhost:3000")
	require.True(t, checkOrigin([]string{"http://localhost:3000"})(req))
}
