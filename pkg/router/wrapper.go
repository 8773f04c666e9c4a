package router

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/mitchellh/mapstructure"
	"github.com/ronin-planets/backend/pkg/errorx"
	"github.com/ronin-planets/backend/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := xcontext.WithHTTPRequest(router.baseCtx, r)
		ctx = xcontext.WithHTTPWriter(ctx, w)

		defer func() {
			for _, closer := range router.closers {
				closer(ctx)
			}
		}()

		var resp any
		var err error
		ctx, resp, err = serve(ctx, router, method, handler)
		if err != nil {
			ctx = xcontext.WithError(ctx, err)
			return
		}

		ctx = xcontext.WithResponse(ctx, resp)
	}
}

func serve[Request, Response any](
	ctx context.Context,
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) (context.Context, any, error) {
	r := xcontext.HTTPRequest(ctx)
	if r.Method != method {
		return ctx, nil, errorx.New(errorx.BadRequest, "Method %s is not allowed", r.Method)
	}

	var err error
	for _, m := range router.befores {
		if ctx, err = runMiddleware(ctx, m); err != nil {
			return ctx, nil, err
		}
	}

	req := new(Request)
	if err := decodeRequest(r, req); err != nil {
		xcontext.Logger(ctx).Debugf("Cannot bind the request: %v", err)
		return ctx, nil, errorx.New(errorx.BadRequest, "Invalid request")
	}

	resp, err := handler(ctx, req)
	if err != nil {
		return ctx, nil, err
	}

	ctx = xcontext.WithResponse(ctx, resp)
	for _, m := range router.afters {
		if ctx, err = runMiddleware(ctx, m); err != nil {
			return ctx, nil, err
		}
	}

	return ctx, resp, nil
}

func runMiddleware(ctx context.Context, m MiddlewareFunc) (context.Context, error) {
	newCtx, err := m(ctx)
	if err != nil {
		return ctx, err
	}

	if newCtx != nil {
		return newCtx, nil
	}

	return ctx, nil
}

func decodeRequest(r *http.Request, req any) error {
	switch r.Method {
	case http.MethodGet:
		query := map[string]any{}
		for key, values := range r.URL.Query() {
			if len(values) > 0 {
				query[key] = values[0]
			}
		}

		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           req,
			TagName:          "mapstructure",
		})
		if err != nil {
			return err
		}

		return decoder.Decode(query)

	case http.MethodPost:
		if r.Body == nil {
			return nil
		}

		err := json.NewDecoder(r.Body).Decode(req)
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err

	default:
		return errors.New("unsupported method")
	}
}
