package main

import (
	"fmt"

	"github.com/ronin-planets/backend/migration"
	"github.com/ronin-planets/backend/pkg/xcontext"

	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(cctx *cli.Context) error {
	cfg := xcontext.Configs(s.ctx)
	if cfg.Ledger.Driver != "sqlite" && cfg.Ledger.Driver != "mysql" {
		return fmt.Errorf("migrations need the sqlite or mysql driver, got %s", cfg.Ledger.Driver)
	}

	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.migrateDB()

	version := cctx.String("version")
	migrator, ok := migration.Migrators[version]
	if !ok {
		return fmt.Errorf("not found version %s", version)
	}

	if err := migrator(s.ctx); err != nil {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Migration %s done", version)
	return nil
}
