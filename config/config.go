package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env      string
	LogLevel string

	ApiServer        APIServerConfigs
	PrometheusServer ServerConfigs
	Ledger           LedgerConfigs
	Database         DatabaseConfigs
	Redis            RedisConfigs
	Storage          S3Configs
	Kafka            KafkaConfigs
	Auth             AuthConfigs
	Session          SessionConfigs
	Admin            AdminConfigs
	Eth              EthConfigs
	Game             GameConfigs
	Price            PriceConfigs
	Cron             CronConfigs
}

type APIServerConfigs struct {
	ServerConfigs

	AllowedOrigins []string
}

type ServerConfigs struct {
	Host string
	Port string
	Cert string
	Key  string
}

func (s ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

// LedgerConfigs selects where the ledger document lives. Driver is one of
// file, sqlite, mysql, redis or s3.
type LedgerConfigs struct {
	Driver string
	Key    string
	Dir    string
}

type DatabaseConfigs struct {
	// DSN is used as is when set.
	DSN string

	Host     string
	Port     string
	Database string
	User     string
	Password string

	// SqlitePath is used instead of the fields above when the ledger driver
	// is sqlite.
	SqlitePath string
}

func (d *DatabaseConfigs) ConnectionString() string {
	if d.DSN != "" {
		return d.DSN
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type RedisConfigs struct {
	Addr string
}

type S3Configs struct {
	Region      string
	Endpoint    string
	AccessKey   string
	SecretKey   string
	Bucket      string
	SSLDisabled bool
}

func (s S3Configs) Enabled() bool {
	return s.Bucket != "" && s.Endpoint != ""
}

type KafkaConfigs struct {
	Addr  string
	Topic string
}

type AuthConfigs struct {
	TokenSecret string
	AccessToken TokenConfigs
}

type TokenConfigs struct {
	Name       string
	Expiration time.Duration
}

type SessionConfigs struct {
	Secret string
	Name   string
}

type AdminConfigs struct {
	Address string
}

type EthConfigs struct {
	RPCs               []string
	NFTContractAddress string
}

type GameConfigs struct {
	CooldownDuration  time.Duration
	MaxKnowledgeLevel int
	ClaimDeadline     time.Duration
}

type PriceConfigs struct {
	Endpoints []string
	APIKey    string
	MaxRange  time.Duration
}

type CronConfigs struct {
	OverdueClaimInterval time.Duration
	LedgerBackupInterval time.Duration
}
