package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/suifund/crowdfunding-gobackend/internal/store"
)

// guardedStoreCalls is how many store operations a donation performs while
// holding its digest claim.
const guardedStoreCalls = 3

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Mongo  MongoConfig  `mapstructure:"mongo"`
	Ledger LedgerConfig `mapstructure:"ledger"`
	Kafka  KafkaConfig  `mapstructure:"kafka"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Lock   LockConfig   `mapstructure:"lock"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	CORSOrigins  []string      `mapstructure:"cors_origins"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type MongoConfig struct {
	URI            string        `mapstructure:"uri"`
	Database       string        `mapstructure:"database"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

// LedgerConfig points at the Sui full node used to verify donations
type LedgerConfig struct {
	RPCURL  string        `mapstructure:"rpc_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// KafkaConfig is optional; no brokers disables event publication
type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

// RedisConfig is optional; an empty Addr keeps digest claims in MongoDB
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LockConfig bounds how long a donation may hold its digest claim
type LockConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// env names accepted for each key, first one wins when several are set
var envBindings = map[string][]string{
	"server.port":           {"PORT", "SERVER_PORT"},
	"server.cors_origins":   {"CORS_ORIGINS"},
	"server.read_timeout":   {"SERVER_READ_TIMEOUT"},
	"server.write_timeout":  {"SERVER_WRITE_TIMEOUT"},
	"mongo.uri":             {"MONGO_URI", "MONGOURI"},
	"mongo.database":        {"MONGO_DATABASE"},
	"mongo.connect_timeout": {"MONGO_CONNECT_TIMEOUT"},
	"ledger.rpc_url":        {"SUI_RPC_URL"},
	"ledger.timeout":        {"LEDGER_TIMEOUT"},
	"kafka.brokers":         {"KAFKA_BROKERS"},
	"kafka.topic":           {"KAFKA_TOPIC"},
	"redis.addr":            {"REDIS_ADDR"},
	"redis.password":        {"REDIS_PASSWORD"},
	"redis.db":              {"REDIS_DB"},
	"lock.ttl":              {"DIGEST_LOCK_TTL"},
	"log.level":             {"LOG_LEVEL"},
	"log.format":            {"LOG_FORMAT"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "3000")
	v.SetDefault("server.cors_origins", []string{"http://localhost:3000", "http://localhost:5173", "http://127.0.0.1:5173"})
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("mongo.uri", "")
	v.SetDefault("mongo.database", "test")
	v.SetDefault("mongo.connect_timeout", 10*time.Second)
	v.SetDefault("ledger.rpc_url", "https://fullnode.testnet.sui.io:443")
	v.SetDefault("ledger.timeout", 10*time.Second)
	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", "donations")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("lock.ttl", 30*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// LoadConfig reads <dir>/.env, an optional <dir>/config.yaml and the
// environment, in increasing order of precedence.
func LoadConfig(dir string) (*Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Mongo.URI) == "" {
		return errors.New("mongo uri is required (MONGO_URI)")
	}
	if strings.TrimSpace(c.Ledger.RPCURL) == "" {
		return errors.New("ledger rpc url is required (SUI_RPC_URL)")
	}
	if c.Ledger.Timeout <= 0 {
		return fmt.Errorf("ledger timeout must be positive, got %s", c.Ledger.Timeout)
	}
	// the claim is held across the ledger call and the guarded store calls
	if held := c.Ledger.Timeout + guardedStoreCalls*store.OpTimeout; c.Lock.TTL < held {
		return fmt.Errorf("digest lock ttl %s is shorter than the %s a donation may hold it (DIGEST_LOCK_TTL)", c.Lock.TTL, held)
	}
	if c.Server.Port == "" {
		return errors.New("server port is required (PORT)")
	}
	return nil
}
