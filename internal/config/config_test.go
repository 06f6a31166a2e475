package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Defaults fill missing values", func(t *testing.T) {
		// Given: a config file with only the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: it is loaded
		conf := MustLoad(path)

		// Then: defaults apply to everything else
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "8080", conf.SocketPort)
		assert.Equal(t, 64, conf.SendBuffer)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 24*time.Hour, conf.Redis.HistoryTTL)
		assert.Equal(t, "match-events", conf.Kafka.Topic)
		assert.False(t, conf.KafkaEnabled())
	})

	t.Run("File values", func(t *testing.T) {
		path := writeConfig(t, `
http-port: "9999"
redis:
  host: cache
  port: "6380"
kafka:
  brokers: ["k1:9092", "k2:9092"]
purchase:
  access-key: abc
`)

		conf := MustLoad(path)

		assert.Equal(t, "9999", conf.HTTPPort)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, []string{"k1:9092", "k2:9092"}, conf.Kafka.Brokers)
		assert.True(t, conf.KafkaEnabled())
		assert.Equal(t, "abc", conf.Purchase.AccessKey)
	})

	t.Run("Missing file panics", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	// Given: a config with several problems
	conf := &Config{LogLevel: "loud", SendBuffer: 1}

	// When: it is validated
	err := conf.Validate()

	// Then: every problem is reported
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyPort)
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
}
