package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ronin-planets/backend/internal/client"
	"github.com/ronin-planets/backend/internal/common"
	"github.com/ronin-planets/backend/internal/domain"
	"github.com/ronin-planets/backend/internal/model"
	"github.com/ronin-planets/backend/internal/repository"
	"github.com/ronin-planets/backend/migration"
	"github.com/ronin-planets/backend/pkg/api"
	"github.com/ronin-planets/backend/pkg/authenticator"
	"github.com/ronin-planets/backend/pkg/blockchain/eth"
	"github.com/ronin-planets/backend/pkg/kafka"
	"github.com/ronin-planets/backend/pkg/pubsub"
	"github.com/ronin-planets/backend/pkg/router"
	"github.com/ronin-planets/backend/pkg/session"
	"github.com/ronin-planets/backend/pkg/storage"
	"github.com/ronin-planets/backend/pkg/xcontext"
	"github.com/ronin-planets/backend/pkg/xredis"

	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type srv struct {
	ctx context.Context
	app *cli.App

	redisClient xredis.Client
	storage     storage.Storage
	publisher   pubsub.Publisher
	nftCaller   client.NFTCaller
	priceCaller client.PriceCaller

	ledgerRepo    repository.LedgerRepository
	ledger        *domain.Ledger
	adminVerifier *common.AdminVerifier

	userDomain       domain.UserDomain
	rewardDomain     domain.RewardDomain
	statisticDomain  domain.StatisticDomain
	gameDomain       domain.GameDomain
	walletAuthDomain domain.WalletAuthDomain
	priceDomain      domain.PriceDomain
	eventFeedDomain  domain.EventFeedDomain

	router *router.Router
	server *http.Server
}

func (s *srv) newDatabase() *gorm.DB {
	cfg := xcontext.Configs(s.ctx)

	var dialector gorm.Dialector
	switch cfg.Ledger.Driver {
	case "sqlite":
		if err := os.MkdirAll(filepath.Dir(cfg.Database.SqlitePath), 0o755); err != nil {
			panic(err)
		}
		dialector = sqlite.Open(cfg.Database.SqlitePath)
	default:
		dialector = mysql.New(mysql.Config{
			DSN:                       cfg.Database.ConnectionString(),
			DefaultStringSize:         256,
			DisableDatetimePrecision:  true,
			DontSupportRenameIndex:    true,
			DontSupportRenameColumn:   true,
			SkipInitializeWithVersion: false,
		})
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		panic(err)
	}

	return db
}

func (s *srv) migrateDB() {
	if err := migration.AutoMigrate(s.ctx); err != nil {
		panic(err)
	}
}

func (s *srv) loadRedisClient() {
	var err error
	s.redisClient, err = xredis.NewClient(s.ctx, xcontext.Configs(s.ctx).Redis.Addr)
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadStorage() {
	cfg := xcontext.Configs(s.ctx).Storage
	if s.storage != nil || !cfg.Enabled() {
		return
	}

	var err error
	s.storage, err = storage.NewS3Storage(cfg)
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadPublisher() {
	cfg := xcontext.Configs(s.ctx).Kafka
	if cfg.Addr == "" {
		xcontext.Logger(s.ctx).Infof("No kafka broker configured, ledger events are dropped")
		s.publisher = pubsub.NewNoopPublisher()
		return
	}

	publisher, err := kafka.NewPublisher("ledger", strings.Split(cfg.Addr, ","))
	if err != nil {
		panic(err)
	}
	s.publisher = publisher
}

// loadLedger selects the store of the ledger document by driver.
func (s *srv) loadLedger() {
	cfg := xcontext.Configs(s.ctx)

	switch cfg.Ledger.Driver {
	case "file":
		s.ledgerRepo = repository.NewFileLedgerRepository(cfg.Ledger.Dir, cfg.Ledger.Key)
	case "sqlite", "mysql":
		s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
		s.migrateDB()
		s.ledgerRepo = repository.NewGormLedgerRepository(cfg.Ledger.Key)
	case "redis":
		s.loadRedisClient()
		s.ledgerRepo = repository.NewRedisLedgerRepository(s.redisClient, common.RedisKeyLedger(cfg.Ledger.Key))
	case "s3":
		s.loadStorage()
		if s.storage == nil {
			panic("s3 ledger driver needs storage endpoint and bucket")
		}
		s.ledgerRepo = repository.NewS3LedgerRepository(s.storage, cfg.Storage.Bucket, cfg.Ledger.Key)
	default:
		panic(fmt.Sprintf("unknown ledger driver %s", cfg.Ledger.Driver))
	}

	xcontext.Logger(s.ctx).Infof("Ledger is stored with the %s driver", cfg.Ledger.Driver)
	s.ledger = domain.NewLedger(s.ledgerRepo)
	s.adminVerifier = common.NewAdminVerifier(cfg.Admin.Address)
}

func (s *srv) loadCallers() {
	cfg := xcontext.Configs(s.ctx)

	if len(cfg.Eth.RPCs) > 0 && cfg.Eth.NFTContractAddress != "" {
		nftCaller, err := client.NewERC721Caller(eth.NewEthClient(cfg.Eth.RPCs), cfg.Eth.NFTContractAddress)
		if err != nil {
			panic(err)
		}
		s.nftCaller = nftCaller
	} else {
		xcontext.Logger(s.ctx).Warnf("No RPC or NFT contract configured, using mock NFTs")
		s.nftCaller = client.NewMockNFTCaller()
	}

	s.priceCaller = client.NewCoinGeckoCaller(api.NewGenerator(cfg.Price.Endpoints...), cfg.Price.APIKey)
}

func (s *srv) loadAuth() {
	cfg := xcontext.Configs(s.ctx)
	s.ctx = xcontext.WithTokenEngine(s.ctx, authenticator.NewTokenEngine[model.AccessToken](
		cfg.Auth.TokenSecret, cfg.Auth.AccessToken.Expiration))
	s.ctx = xcontext.WithSessionStore(s.ctx, session.NewCookieStore(cfg.Session.Name, []byte(cfg.Session.Secret)))
	s.ctx = xcontext.WithHTTPClient(s.ctx, &http.Client{Timeout: 10 * time.Second})
}

func (s *srv) loadDomains() {
	s.eventFeedDomain = domain.NewEventFeedDomain(s.publisher)
	s.userDomain = domain.NewUserDomain(s.ledger, s.nftCaller, s.adminVerifier)
	s.rewardDomain = domain.NewRewardDomain(s.ledger, s.eventFeedDomain, s.adminVerifier)
	s.statisticDomain = domain.NewStatisticDomain(s.ledger, s.adminVerifier)
	s.gameDomain = domain.NewGameDomain(s.ledger)
	s.walletAuthDomain = domain.NewWalletAuthDomain(s.adminVerifier)
	s.priceDomain = domain.NewPriceDomain(s.priceCaller)
}
