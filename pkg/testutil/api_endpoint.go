package testutil

import (
	"context"
	"errors"
	"fmt"

	"github.com/ronin-planets/backend/pkg/api"
)

// MockAPIGenerator hands out one shared MockAPIClient and records every
// path it was asked for.
type MockAPIGenerator struct {
	Paths  []string
	Client MockAPIClient
}

func (m *MockAPIGenerator) New(path string, args ...any) api.Client {
	m.Paths = append(m.Paths, fmt.Sprintf(path, args...))
	return &m.Client
}

// MockAPIClient records the headers and queries set on it. Requests are
// answered by GETFunc and POSTFunc.
type MockAPIClient struct {
	Headers map[string]string
	Queries []api.Parameter

	GETFunc  func(ctx context.Context, opts ...api.Opt) (*api.Response, error)
	POSTFunc func(ctx context.Context, body api.Body, opts ...api.Opt) (*api.Response, error)

	body api.Body
}

func (c *MockAPIClient) Header(name, value string) api.Client {
	if c.Headers == nil {
		c.Headers = map[string]string{}
	}
	c.Headers[name] = value
	return c
}

func (c *MockAPIClient) Query(query api.Parameter) api.Client {
	c.Queries = append(c.Queries, query)
	return c
}

func (c *MockAPIClient) Body(body api.Body) api.Client {
	c.body = body
	return c
}

func (c *MockAPIClient) POST(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
	if c.POSTFunc != nil {
		return c.POSTFunc(ctx, c.body, opts...)
	}

	return nil, errors.New("not implemented")
}

func (c *MockAPIClient) GET(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
	if c.GETFunc != nil {
		return c.GETFunc(ctx, opts...)
	}

	return nil, errors.New("not implemented")
}
