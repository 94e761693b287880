package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, envs := range envBindings {
		for _, env := range envs {
			t.Setenv(env, "")
			os.Unsetenv(env)
		}
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173", "http://127.0.0.1:5173"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "test", cfg.Mongo.Database)
	assert.Equal(t, "https://fullnode.testnet.sui.io:443", cfg.Ledger.RPCURL)
	assert.Equal(t, 10*time.Second, cfg.Ledger.Timeout)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, "donations", cfg.Kafka.Topic)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, 30*time.Second, cfg.Lock.TTL)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGOURI", "mongodb://legacy:27017")
	t.Setenv("PORT", "8080")
	t.Setenv("SUI_RPC_URL", "https://fullnode.mainnet.sui.io:443")
	t.Setenv("LEDGER_TIMEOUT", "3s")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "mongodb://legacy:27017", cfg.Mongo.URI)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "https://fullnode.mainnet.sui.io:443", cfg.Ledger.RPCURL)
	assert.Equal(t, 3*time.Second, cfg.Ledger.Timeout)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_FileAndEnvPrecedence(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	yaml := "mongo:\n  uri: mongodb://from-file:27017\n  database: crowdfunding\nkafka:\n  topic: file-topic\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("KAFKA_TOPIC", "env-topic")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "mongodb://from-file:27017", cfg.Mongo.URI)
	assert.Equal(t, "crowdfunding", cfg.Mongo.Database)
	assert.Equal(t, "env-topic", cfg.Kafka.Topic)
}

func TestLoadConfig_MissingMongoURI(t *testing.T) {
	clearEnv(t)

	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mongo uri is required")
}

func TestLoadConfig_LockTTLMustCoverGuardedWork(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("LEDGER_TIMEOUT", "10s")

	t.Setenv("DIGEST_LOCK_TTL", "20s")
	_, err := LoadConfig(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "digest lock ttl")

	t.Setenv("DIGEST_LOCK_TTL", "25s")
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 25*time.Second, cfg.Lock.TTL)
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		t.Run(format, func(t *testing.T) {
			logger, err := NewLogger(&LogConfig{Level: "debug", Format: format})
			require.NoError(t, err)
			assert.IsType(t, &zap.Logger{}, logger)
			assert.NotPanics(t, func() {
				logger.Info("test log", zap.String("format", format))
			})
		})
	}

	_, err := NewLogger(&LogConfig{Level: "not-a-level", Format: "json"})
	assert.Error(t, err)
}
