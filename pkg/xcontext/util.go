package xcontext

import (
	"context"
	"time"
)

type (
	userIDKey    struct{}
	responseKey  struct{}
	errorKey     struct{}
	startTimeKey struct{}
)

// WithRequestUserID stores the wallet address of the authenticated caller.
func WithRequestUserID(ctx context.Context, address string) context.Context {
	return context.WithValue(ctx, userIDKey{}, address)
}

func RequestUserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey{}).(string)
	return id
}

func WithError(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, errorKey{}, err)
}

func Error(ctx context.Context) error {
	err, _ := ctx.Value(errorKey{}).(error)
	return err
}

func WithResponse(ctx context.Context, resp any) context.Context {
	return context.WithValue(ctx, responseKey{}, resp)
}

func Response(ctx context.Context) any {
	return ctx.Value(responseKey{})
}

func WithStartTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, startTimeKey{}, t)
}

func StartTime(ctx context.Context) time.Time {
	t, _ := ctx.Value(startTimeKey{}).(time.Time)
	return t
}
