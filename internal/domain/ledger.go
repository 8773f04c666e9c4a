package domain

import (
	"context"
	"errors"
	"sync"

	"github.com/ronin-planets/backend/internal/entity"
	"github.com/ronin-planets/backend/internal/repository"
	"github.com/ronin-planets/backend/pkg/errorx"
	"github.com/ronin-planets/backend/pkg/xcontext"
)

// errUnchanged tells Update that fn left the document untouched and there
// is nothing to save.
var errUnchanged = errors.New("ledger unchanged")

// Ledger serializes every operation on the ledger document. Each Update is
// one load, mutate and save cycle that no other operation in this process
// can interleave with.
type Ledger struct {
	mutex sync.Mutex
	repo  repository.LedgerRepository
}

func NewLedger(repo repository.LedgerRepository) *Ledger {
	return &Ledger{repo: repo}
}

// View loads the document and passes it to fn. Changes made by fn are never
// persisted.
func (l *Ledger) View(ctx context.Context, fn func(doc *entity.Document) error) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	doc, err := l.repo.Load(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load ledger: %v", err)
		return errorx.New(errorx.Unavailable, "Cannot load the ledger")
	}

	return fn(doc)
}

// Update loads the document, applies fn and saves the result. When fn fails
// nothing is saved. When the save fails the mutation is dropped and a
// PersistenceFailure error is returned.
func (l *Ledger) Update(ctx context.Context, fn func(doc *entity.Document) error) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	doc, err := l.repo.Load(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load ledger: %v", err)
		return errorx.New(errorx.Unavailable, "Cannot load the ledger")
	}

	if err := fn(doc); err != nil {
		if errors.Is(err, errUnchanged) {
			return nil
		}
		return err
	}

	if err := l.repo.Save(ctx, doc); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot save ledger: %v", err)
		return errorx.New(errorx.PersistenceFailure, "Cannot save the ledger")
	}

	return nil
}
