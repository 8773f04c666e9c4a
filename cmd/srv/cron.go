package main

import (
	"os/signal"
	"syscall"

	"github.com/ronin-planets/backend/internal/domain/cron"
	"github.com/ronin-planets/backend/pkg/xcontext"

	"github.com/urfave/cli/v2"
)

func (s *srv) startCron(*cli.Context) error {
	s.loadLedger()
	s.loadStorage()
	cfg := xcontext.Configs(s.ctx)

	cronJobManager := cron.NewCronJobManager()
	cronJobManager.Register(cron.NewOverdueClaimCronJob(s.ledger, cfg.Cron.OverdueClaimInterval))
	if s.storage != nil {
		cronJobManager.Register(cron.NewLedgerBackupCronJob(
			s.ledger, s.storage, cfg.Storage.Bucket, cfg.Ledger.Key, cfg.Cron.LedgerBackupInterval))
	} else {
		xcontext.Logger(s.ctx).Warnf("No storage configured, ledger backup is disabled")
	}

	ctx, stop := signal.NotifyContext(s.ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cronJobManager.Start(ctx)
	return nil
}
