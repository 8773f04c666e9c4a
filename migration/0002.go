package migration

import (
	"context"
	"errors"
	"os"

	"github.com/ronin-planets/backend/internal/repository"
	"github.com/ronin-planets/backend/pkg/xcontext"
)

// migrate0002 imports the document kept by the file driver into the
// database. The file is left in place.
func migrate0002(ctx context.Context) error {
	cfg := xcontext.Configs(ctx).Ledger
	fileRepo := repository.NewFileLedgerRepository(cfg.Dir, cfg.Key)
	if _, err := os.Stat(fileRepo.Path()); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			xcontext.Logger(ctx).Infof("No ledger file at %s, nothing to import", fileRepo.Path())
			return nil
		}
		return err
	}

	doc, err := fileRepo.Load(ctx)
	if err != nil {
		return err
	}

	xcontext.Logger(ctx).Infof("Importing %d users, %d rewards and %d claims",
		doc.Users.Len(), len(doc.Rewards), len(doc.PendingClaims))

	return repository.NewGormLedgerRepository(cfg.Key).Save(ctx, doc)
}
