package testutil

import (
	"context"
	"errors"

	"github.com/ronin-planets/backend/internal/entity"
)

type MockLedgerRepository struct {
	LoadFunc func(ctx context.Context) (*entity.Document, error)
	SaveFunc func(ctx context.Context, doc *entity.Document) error
}

func (m *MockLedgerRepository) Load(ctx context.Context) (*entity.Document, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}

	return entity.NewDocument(), nil
}

func (m *MockLedgerRepository) Save(ctx context.Context, doc *entity.Document) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, doc)
	}

	return errors.New("not implemented")
}
