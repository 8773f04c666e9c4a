package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ronin-planets/backend/internal/entity"
	"github.com/ronin-planets/backend/pkg/xcontext"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormLedgerRepository struct {
	key string
}

// NewGormLedgerRepository stores the document as one row of
// ledger_documents, using the gorm.DB carried by the context.
func NewGormLedgerRepository(key string) *gormLedgerRepository {
	if key == "" {
		key = entity.LedgerKey
	}

	return &gormLedgerRepository{key: key}
}

func (r *gormLedgerRepository) Load(ctx context.Context) (*entity.Document, error) {
	var record entity.LedgerRecord
	if err := xcontext.DB(ctx).Take(&record, "`key` = ?", r.key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return initDocument(ctx, r.Save)
		}
		return nil, err
	}

	return decodeDocument(record.Data)
}

func (r *gormLedgerRepository) Save(ctx context.Context, doc *entity.Document) error {
	data, err := encodeDocument(doc)
	if err != nil {
		return err
	}

	record := &entity.LedgerRecord{Key: r.key, Data: data, UpdatedAt: time.Now().UTC()}
	return xcontext.DB(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(record).Error
}
