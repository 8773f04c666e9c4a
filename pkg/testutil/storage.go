package testutil

import (
	"context"

	"github.com/ronin-planets/backend/pkg/storage"
)

// MockStorage keeps uploaded objects in memory unless a func field is set.
type MockStorage struct {
	UploadFunc   func(context.Context, *storage.UploadObject) (*storage.UploadResponse, error)
	DownloadFunc func(ctx context.Context, bucket, key string) ([]byte, error)

	Objects map[string][]byte
}

func (m *MockStorage) Upload(
	ctx context.Context, obj *storage.UploadObject,
) (*storage.UploadResponse, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, obj)
	}

	if m.Objects == nil {
		m.Objects = make(map[string][]byte)
	}

	key := obj.Key
	if key == "" {
		key = obj.Prefix + "/" + obj.FileName
	}
	m.Objects[obj.Bucket+"/"+key] = append([]byte(nil), obj.Data...)

	return &storage.UploadResponse{Url: "mock://" + obj.Bucket + "/" + key, FileName: key}, nil
}

func (m *MockStorage) Download(ctx context.Context, bucket, key string) ([]byte, error) {
	if m.DownloadFunc != nil {
		return m.DownloadFunc(ctx, bucket, key)
	}

	data, ok := m.Objects[bucket+"/"+key]
	if !ok {
		return nil, storage.ErrObjectNotFound
	}
	return data, nil
}
