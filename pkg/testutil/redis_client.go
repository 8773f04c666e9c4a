package testutil

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// MockRedisClient falls back to an in-memory map for every method whose
// func field is nil.
type MockRedisClient struct {
	ExistFunc func(ctx context.Context, key string) (bool, error)
	DelFunc   func(ctx context.Context, key ...string) error
	SetFunc   func(ctx context.Context, key string, value []byte) error
	GetFunc   func(ctx context.Context, key string) ([]byte, error)

	data map[string][]byte
}

func (m *MockRedisClient) store() map[string][]byte {
	if m.data == nil {
		m.data = make(map[string][]byte)
	}
	return m.data
}

func (m *MockRedisClient) Exist(ctx context.Context, key string) (bool, error) {
	if m.ExistFunc != nil {
		return m.ExistFunc(ctx, key)
	}

	_, ok := m.store()[key]
	return ok, nil
}

func (m *MockRedisClient) Del(ctx context.Context, key ...string) error {
	if m.DelFunc != nil {
		return m.DelFunc(ctx, key...)
	}

	for _, k := range key {
		delete(m.store(), k)
	}
	return nil
}

func (m *MockRedisClient) Set(ctx context.Context, key string, value []byte) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value)
	}

	m.store()[key] = append([]byte(nil), value...)
	return nil
}

func (m *MockRedisClient) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}

	value, ok := m.store()[key]
	if !ok {
		return nil, redis.Nil
	}
	return value, nil
}
