package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ronin-planets/backend/config"
	"github.com/ronin-planets/backend/internal/common"
	"github.com/ronin-planets/backend/internal/entity"
	"github.com/ronin-planets/backend/pkg/logger"
	"github.com/ronin-planets/backend/pkg/xcontext"

	"github.com/BurntSushi/toml"
	"github.com/urfave/cli/v2"
)

// fileConfigs is the layout of the TOML config file. Durations are written
// as strings such as "12h".
type fileConfigs struct {
	Env      string `toml:"env"`
	LogLevel string `toml:"log_level"`

	ApiServer struct {
		Host           string   `toml:"host"`
		Port           string   `toml:"port"`
		Cert           string   `toml:"cert"`
		Key            string   `toml:"key"`
		AllowedOrigins []string `toml:"allowed_origins"`
	} `toml:"api_server"`

	PrometheusServer struct {
		Host string `toml:"host"`
		Port string `toml:"port"`
	} `toml:"prometheus_server"`

	Ledger struct {
		Driver string `toml:"driver"`
		Key    string `toml:"key"`
		Dir    string `toml:"dir"`
	} `toml:"ledger"`

	Database struct {
		DSN        string `toml:"dsn"`
		Host       string `toml:"host"`
		Port       string `toml:"port"`
		Database   string `toml:"database"`
		User       string `toml:"user"`
		Password   string `toml:"password"`
		SqlitePath string `toml:"sqlite_path"`
	} `toml:"database"`

	Redis struct {
		Addr string `toml:"addr"`
	} `toml:"redis"`

	Storage struct {
		Region      string `toml:"region"`
		Endpoint    string `toml:"endpoint"`
		AccessKey   string `toml:"access_key"`
		SecretKey   string `toml:"secret_key"`
		Bucket      string `toml:"bucket"`
		SSLDisabled bool   `toml:"ssl_disabled"`
	} `toml:"storage"`

	Kafka struct {
		Addr  string `toml:"addr"`
		Topic string `toml:"topic"`
	} `toml:"kafka"`

	Auth struct {
		TokenSecret           string `toml:"token_secret"`
		AccessTokenName       string `toml:"access_token_name"`
		AccessTokenExpiration string `toml:"access_token_expiration"`
	} `toml:"auth"`

	Session struct {
		Secret string `toml:"secret"`
		Name   string `toml:"name"`
	} `toml:"session"`

	Admin struct {
		Address string `toml:"address"`
	} `toml:"admin"`

	Eth struct {
		RPCs               []string `toml:"rpcs"`
		NFTContractAddress string   `toml:"nft_contract_address"`
	} `toml:"eth"`

	Game struct {
		CooldownDuration  string `toml:"cooldown_duration"`
		MaxKnowledgeLevel int    `toml:"max_knowledge_level"`
		ClaimDeadline     string `toml:"claim_deadline"`
	} `toml:"game"`

	Price struct {
		Endpoints []string `toml:"endpoints"`
		APIKey    string   `toml:"api_key"`
		MaxRange  string   `toml:"max_range"`
	} `toml:"price"`

	Cron struct {
		OverdueClaimInterval string `toml:"overdue_claim_interval"`
		LedgerBackupInterval string `toml:"ledger_backup_interval"`
	} `toml:"cron"`
}

func defaultFileConfigs() fileConfigs {
	var f fileConfigs
	f.Env = "local"
	f.LogLevel = "INFO"
	f.ApiServer.Port = "8080"
	f.ApiServer.AllowedOrigins = []string{"http://localhost:3000"}
	f.Ledger.Driver = "file"
	f.Ledger.Key = entity.LedgerKey
	f.Ledger.Dir = "./data"
	f.Database.SqlitePath = "./data/ledger.db"
	f.Storage.Region = "us-east-1"
	f.Kafka.Topic = "ronin-ledger"
	f.Auth.TokenSecret = "change-me"
	f.Auth.AccessTokenName = "access_token"
	f.Auth.AccessTokenExpiration = "24h"
	f.Session.Secret = "change-me"
	f.Session.Name = "ronin_session"
	f.Game.CooldownDuration = common.CooldownDuration.String()
	f.Game.MaxKnowledgeLevel = common.MaxKnowledgeLevel
	f.Game.ClaimDeadline = common.ClaimDeadline.String()
	f.Price.Endpoints = []string{"https://api.coingecko.com/api/v3"}
	f.Price.MaxRange = "8760h"
	f.Cron.OverdueClaimInterval = "1h"
	f.Cron.LedgerBackupInterval = "24h"
	return f
}

func (s *srv) loadConfig(cctx *cli.Context) error {
	f := defaultFileConfigs()
	if path := cctx.String("config"); path != "" {
		if _, err := toml.DecodeFile(path, &f); err != nil {
			return fmt.Errorf("cannot decode config file %s: %w", path, err)
		}
	}

	overrideString(&f.Env, "ENV")
	overrideString(&f.LogLevel, "LOG_LEVEL")
	overrideString(&f.ApiServer.Host, "API_HOST")
	overrideString(&f.ApiServer.Port, "API_PORT")
	overrideList(&f.ApiServer.AllowedOrigins, "ALLOWED_ORIGINS")
	overrideString(&f.PrometheusServer.Port, "PROMETHEUS_PORT")
	overrideString(&f.Ledger.Driver, "LEDGER_DRIVER")
	overrideString(&f.Ledger.Key, "LEDGER_KEY")
	overrideString(&f.Ledger.Dir, "LEDGER_DIR")
	overrideString(&f.Database.DSN, "DB_CONNECTION")
	overrideString(&f.Database.SqlitePath, "SQLITE_PATH")
	overrideString(&f.Redis.Addr, "REDIS_ADDR")
	overrideString(&f.Storage.Endpoint, "S3_ENDPOINT")
	overrideString(&f.Storage.Region, "S3_REGION")
	overrideString(&f.Storage.AccessKey, "S3_ACCESS_KEY")
	overrideString(&f.Storage.SecretKey, "S3_SECRET_KEY")
	overrideString(&f.Storage.Bucket, "S3_BUCKET")
	overrideString(&f.Kafka.Addr, "KAFKA_ADDR")
	overrideString(&f.Kafka.Topic, "KAFKA_TOPIC")
	overrideString(&f.Auth.TokenSecret, "TOKEN_SECRET")
	overrideString(&f.Session.Secret, "SESSION_SECRET")
	overrideString(&f.Admin.Address, "ADMIN_ADDRESS")
	overrideList(&f.Eth.RPCs, "RONIN_RPC_URL")
	overrideString(&f.Eth.NFTContractAddress, "NFT_CONTRACT_ADDRESS")
	overrideString(&f.Price.APIKey, "COINGECKO_API_KEY")

	if v := os.Getenv("MAX_KNOWLEDGE_LEVEL"); v != "" {
		level, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid MAX_KNOWLEDGE_LEVEL: %w", err)
		}
		f.Game.MaxKnowledgeLevel = level
	}

	cfg, err := f.toConfigs()
	if err != nil {
		return err
	}

	s.ctx = xcontext.WithConfigs(s.ctx, cfg)
	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(logger.ParseLevel(cfg.LogLevel)))
	return nil
}

func (f fileConfigs) toConfigs() (config.Configs, error) {
	durations := map[string]time.Duration{}
	for name, value := range map[string]string{
		"auth.access_token_expiration": f.Auth.AccessTokenExpiration,
		"game.cooldown_duration":       f.Game.CooldownDuration,
		"game.claim_deadline":          f.Game.ClaimDeadline,
		"price.max_range":              f.Price.MaxRange,
		"cron.overdue_claim_interval":  f.Cron.OverdueClaimInterval,
		"cron.ledger_backup_interval":  f.Cron.LedgerBackupInterval,
	} {
		d, err := time.ParseDuration(value)
		if err != nil {
			return config.Configs{}, fmt.Errorf("invalid %s: %w", name, err)
		}
		durations[name] = d
	}

	return config.Configs{
		Env:      f.Env,
		LogLevel: f.LogLevel,
		ApiServer: config.APIServerConfigs{
			ServerConfigs: config.ServerConfigs{
				Host: f.ApiServer.Host,
				Port: f.ApiServer.Port,
				Cert: f.ApiServer.Cert,
				Key:  f.ApiServer.Key,
			},
			AllowedOrigins: f.ApiServer.AllowedOrigins,
		},
		PrometheusServer: config.ServerConfigs{
			Host: f.PrometheusServer.Host,
			Port: f.PrometheusServer.Port,
		},
		Ledger: config.LedgerConfigs{
			Driver: f.Ledger.Driver,
			Key:    f.Ledger.Key,
			Dir:    f.Ledger.Dir,
		},
		Database: config.DatabaseConfigs{
			DSN:        f.Database.DSN,
			Host:       f.Database.Host,
			Port:       f.Database.Port,
			Database:   f.Database.Database,
			User:       f.Database.User,
			Password:   f.Database.Password,
			SqlitePath: f.Database.SqlitePath,
		},
		Redis: config.RedisConfigs{Addr: f.Redis.Addr},
		Storage: config.S3Configs{
			Region:      f.Storage.Region,
			Endpoint:    f.Storage.Endpoint,
			AccessKey:   f.Storage.AccessKey,
			SecretKey:   f.Storage.SecretKey,
			Bucket:      f.Storage.Bucket,
			SSLDisabled: f.Storage.SSLDisabled,
		},
		Kafka: config.KafkaConfigs{Addr: f.Kafka.Addr, Topic: f.Kafka.Topic},
		Auth: config.AuthConfigs{
			TokenSecret: f.Auth.TokenSecret,
			AccessToken: config.TokenConfigs{
				Name:       f.Auth.AccessTokenName,
				Expiration: durations["auth.access_token_expiration"],
			},
		},
		Session: config.SessionConfigs{Secret: f.Session.Secret, Name: f.Session.Name},
		Admin:   config.AdminConfigs{Address: f.Admin.Address},
		Eth: config.EthConfigs{
			RPCs:               f.Eth.RPCs,
			NFTContractAddress: f.Eth.NFTContractAddress,
		},
		Game: config.GameConfigs{
			CooldownDuration:  durations["game.cooldown_duration"],
			MaxKnowledgeLevel: f.Game.MaxKnowledgeLevel,
			ClaimDeadline:     durations["game.claim_deadline"],
		},
		Price: config.PriceConfigs{
			Endpoints: f.Price.Endpoints,
			APIKey:    f.Price.APIKey,
			MaxRange:  durations["price.max_range"],
		},
		Cron: config.CronConfigs{
			OverdueClaimInterval: durations["cron.overdue_claim_interval"],
			LedgerBackupInterval: durations["cron.ledger_backup_interval"],
		},
	}, nil
}

func overrideString(dst *string, env string) {
	if v, ok := os.LookupEnv(env); ok && v != "" {
		*dst = v
	}
}

// overrideList splits a comma separated variable.
func overrideList(dst *[]string, env string) {
	v, ok := os.LookupEnv(env)
	if !ok || v == "" {
		return
	}

	items := []string{}
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	*dst = items
}
