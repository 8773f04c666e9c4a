package migration

import (
	"context"

	"github.com/ronin-planets/backend/internal/repository"
	"github.com/ronin-planets/backend/pkg/xcontext"
)

// migrate0001 rewrites the stored document so that collections missing from
// older documents are persisted as empty ones.
func migrate0001(ctx context.Context) error {
	repo := repository.NewGormLedgerRepository(xcontext.Configs(ctx).Ledger.Key)
	doc, err := repo.Load(ctx)
	if err != nil {
		return err
	}

	return repo.Save(ctx, doc)
}
