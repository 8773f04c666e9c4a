package repository

import (
	"context"
	"errors"

	"github.com/ronin-planets/backend/internal/entity"
	"github.com/ronin-planets/backend/pkg/storage"
)

type s3LedgerRepository struct {
	bucket  string
	key     string
	storage storage.Storage
}

func NewS3LedgerRepository(s storage.Storage, bucket, key string) *s3LedgerRepository {
	if key == "" {
		key = entity.LedgerKey
	}

	return &s3LedgerRepository{bucket: bucket, key: key + ".json", storage: s}
}

func (r *s3LedgerRepository) Load(ctx context.Context) (*entity.Document, error) {
	data, err := r.storage.Download(ctx, r.bucket, r.key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return initDocument(ctx, r.Save)
		}
		return nil, err
	}

	return decodeDocument(data)
}

func (r *s3LedgerRepository) Save(ctx context.Context, doc *entity.Document) error {
	data, err := encodeDocument(doc)
	if err != nil {
		return err
	}

	_, err = r.storage.Upload(ctx, &storage.UploadObject{
		Bucket: r.bucket,
		Key:    r.key,
		Mime:   "application/json",
		Data:   data,
	})
	return err
}
