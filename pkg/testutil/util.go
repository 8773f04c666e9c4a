package testutil

import (
	"context"
	"time"

	"github.com/ronin-planets/backend/config"
	"github.com/ronin-planets/backend/internal/entity"
	"github.com/ronin-planets/backend/internal/model"
	"github.com/ronin-planets/backend/pkg/authenticator"
	"github.com/ronin-planets/backend/pkg/logger"
	"github.com/ronin-planets/backend/pkg/session"
	"github.com/ronin-planets/backend/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	AdminAddress = "0xAD00000000000000000000000000000000000001"
	User1Address = "0x1000000000000000000000000000000000000001"
	User2Address = "0x2000000000000000000000000000000000000002"
)

func MockConfigs() config.Configs {
	return config.Configs{
		Env: "test",
		Ledger: config.LedgerConfigs{
			Driver: "sqlite",
			Key:    entity.LedgerKey,
		},
		Auth: config.AuthConfigs{
			TokenSecret: "secret",
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: time.Minute,
			},
		},
		Session: config.SessionConfigs{
			Secret: "session-secret",
			Name:   "ronin_session",
		},
		Admin: config.AdminConfigs{
			Address: AdminAddress,
		},
		Game: config.GameConfigs{
			CooldownDuration:  12 * time.Hour,
			MaxKnowledgeLevel: 100,
			ClaimDeadline:     48 * time.Hour,
		},
		Price: config.PriceConfigs{
			MaxRange: 365 * 24 * time.Hour,
		},
	}
}

// MockContext returns a context carrying test configs, a silent logger and
// an in-memory sqlite database with the ledger table created.
func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	// Every connection to :memory: opens a distinct database.
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&entity.LedgerRecord{}); err != nil {
		panic(err)
	}

	cfg := MockConfigs()

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithTokenEngine(ctx,
		authenticator.NewTokenEngine[model.AccessToken](cfg.Auth.TokenSecret, cfg.Auth.AccessToken.Expiration))
	ctx = xcontext.WithSessionStore(ctx, session.NewCookieStore(cfg.Session.Name, []byte(cfg.Session.Secret)))
	ctx = xcontext.WithDB(ctx, db)

	return ctx
}

func MockContextWithUserID(address string) context.Context {
	return xcontext.WithRequestUserID(MockContext(), address)
}
