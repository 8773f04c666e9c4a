package migration

import (
	"context"

	"github.com/ronin-planets/backend/internal/entity"
	"github.com/ronin-planets/backend/pkg/xcontext"
)

// migrate0000 will create the database with the latest version.
func migrate0000(ctx context.Context) error {
	if xcontext.DB(ctx).Migrator().HasTable(&entity.LedgerRecord{}) {
		return nil
	}

	return xcontext.DB(ctx).Migrator().CreateTable(&entity.LedgerRecord{})
}
