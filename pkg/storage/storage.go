package storage

import (
	"context"
	"errors"
)

var ErrObjectNotFound = errors.New("object not found")

type Storage interface {
	Upload(context.Context, *UploadObject) (*UploadResponse, error)
	Download(ctx context.Context, bucket, key string) ([]byte, error)
}

type UploadObject struct {
	Bucket string
	// Key is used as is when set, otherwise Prefix and FileName are joined.
	Key      string
	Prefix   string
	FileName string
	Mime     string
	Data     []byte
}

type UploadResponse struct {
	Url      string
	FileName string
}
