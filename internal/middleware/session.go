package middleware

import (
	"context"
	"errors"

	"github.com/ronin-planets/backend/pkg/router"
	"github.com/ronin-planets/backend/pkg/xcontext"
)

type SessionResponse interface {
	SessionInfo() map[string]any
}

// HandleSaveSession stores the session values exposed by the response into
// the session cookie.
func HandleSaveSession() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		sessionResp, ok := xcontext.Response(ctx).(SessionResponse)
		if !ok {
			return nil, nil
		}

		sessionInfo := sessionResp.SessionInfo()
		if sessionInfo == nil {
			return nil, errors.New("no session info")
		}

		store := xcontext.SessionStore(ctx)
		session, err := store.Get(xcontext.HTTPRequest(ctx))
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot decode the session, create a new one: %v", err)
		}

		for k, v := range sessionInfo {
			session.Values[k] = v
		}

		if err := store.Save(xcontext.HTTPRequest(ctx), xcontext.HTTPWriter(ctx), session); err != nil {
			return nil, err
		}

		return nil, nil
	}
}
