package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ronin-planets/backend/internal/entity"
)

// LedgerRepository persists the single ledger document. Load creates and
// persists an empty document when none exists. Every call to Load returns a
// freshly decoded copy, so dropping it drops any mutation made to it.
type LedgerRepository interface {
	Load(ctx context.Context) (*entity.Document, error)
	Save(ctx context.Context, doc *entity.Document) error
}

func encodeDocument(doc *entity.Document) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshaling ledger: %w", err)
	}

	return data, nil
}

func decodeDocument(data []byte) (*entity.Document, error) {
	doc := &entity.Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("parsing ledger: %w", err)
	}
	doc.Normalize()

	return doc, nil
}

// initDocument persists and returns a fresh document through save.
func initDocument(ctx context.Context, save func(context.Context, *entity.Document) error) (*entity.Document, error) {
	doc := entity.NewDocument()
	if err := save(ctx, doc); err != nil {
		return nil, err
	}

	return doc, nil
}
