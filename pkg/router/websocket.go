package router

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/ronin-planets/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
)

type WebsocketHandler func(ctx context.Context, conn *websocket.Conn) error

// Websocket runs the before middlewares on the upgrade request. A
// middleware error is answered with the usual JSON envelope and the
// connection is never upgraded.
func Websocket(r *Router, pattern string, handler WebsocketHandler) {
	r.mux.HandleFunc(pattern, func(w http.ResponseWriter, req *http.Request) {
		ctx := xcontext.WithHTTPRequest(r.baseCtx, req)
		ctx = xcontext.WithHTTPWriter(ctx, w)

		var err error
		for _, m := range r.befores {
			if ctx, err = runMiddleware(ctx, m); err != nil {
				if err := WriteJson(w, newErrorResponse(err)); err != nil {
					xcontext.Logger(ctx).Errorf("Cannot write the response: %v", err)
				}
				return
			}
		}

		upgrader := websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(xcontext.Configs(ctx).ApiServer.AllowedOrigins),
		}

		conn, err := upgrader.Upgrade(w, req, nil)
		if err != nil {
			xcontext.Logger(ctx).Debugf("Cannot upgrade the connection: %v", err)
			return
		}
		defer conn.Close()

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		if err := handler(ctx, conn); err != nil {
			xcontext.Logger(ctx).Debugf("Websocket %s closed: %v", pattern, err)
		}
	})
}

func checkOrigin(allowedOrigins []string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || slices.Contains(allowedOrigins, "*") {
			return true
		}

		return slices.Contains(allowedOrigins, origin)
	}
}
