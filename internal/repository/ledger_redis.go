package repository

import (
	"context"

	"github.com/ronin-planets/backend/internal/entity"
	"github.com/ronin-planets/backend/pkg/xredis"
)

type redisLedgerRepository struct {
	key         string
	redisClient xredis.Client
}

func NewRedisLedgerRepository(redisClient xredis.Client, key string) *redisLedgerRepository {
	if key == "" {
		key = entity.LedgerKey
	}

	return &redisLedgerRepository{key: key, redisClient: redisClient}
}

func (r *redisLedgerRepository) Load(ctx context.Context) (*entity.Document, error) {
	data, err := r.redisClient.Get(ctx, r.key)
	if err != nil {
		if xredis.IsNil(err) {
			return initDocument(ctx, r.Save)
		}
		return nil, err
	}

	return decodeDocument(data)
}

func (r *redisLedgerRepository) Save(ctx context.Context, doc *entity.Document) error {
	data, err := encodeDocument(doc)
	if err != nil {
		return err
	}

	return r.redisClient.Set(ctx, r.key, data)
}
