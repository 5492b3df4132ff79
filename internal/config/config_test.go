package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Config
	}{
		{
			name: "defaults",
			env:  map[string]string{},
			want: Config{LogLevel: DefaultLogLevel, KafkaTopic: DefaultKafkaTopic},
		},
		{
			name: "all set",
			env: map[string]string{
				"LOG_LEVEL":     "debug",
				"KAFKA_TOPIC":   "transfers",
				"KAFKA_BROKERS": "kafka-1:9092, kafka-2:9092,,",
			},
			want: Config{
				LogLevel:     "debug",
				KafkaTopic:   "transfers",
				KafkaBrokers: []string{"kafka-1:9092", "kafka-2:9092"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromEnv(func(k string) string { return tt.env[k] })
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("KAFKA_TOPIC=from_file\n"), 0o600))
	t.Setenv("KAFKA_TOPIC", "")
	os.Unsetenv("KAFKA_TOPIC")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from_file", cfg.KafkaTopic)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_MissingFileIsIgnored(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}
