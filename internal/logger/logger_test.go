package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf)

	log.Info().Msg("test message")

	assert.Contains(t, buf.String(), "test message")
}

func TestWithLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{level: "debug", want: zerolog.DebugLevel},
		{level: "warn", want: zerolog.WarnLevel},
		{level: "", want: zerolog.InfoLevel},
		{level: "loud", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log := WithLevel(NewWithWriter(&bytes.Buffer{}), tt.level)
			assert.Equal(t, tt.want, log.GetLevel())
		})
	}
}

func TestFromContextOr(t *testing.T) {
	fallback := &bytes.Buffer{}
	log := FromContextOr(context.Background(), NewWithWriter(fallback))
	log.Info().Msg("fallback used")
	assert.Contains(t, fallback.String(), "fallback used")

	stored := &bytes.Buffer{}
	ctx := WithContext(context.Background(), NewWithWriter(stored))
	log = FromContextOr(ctx, NewWithWriter(fallback))
	log.Info().Msg("stored used")
	assert.Contains(t, stored.String(), "stored used")
	assert.NotContains(t, fallback.String(), "stored used")
}

func TestWithFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log := WithFields(NewWithWriter(buf), map[string]interface{}{
		"transaction_id": "TX001",
	})

	log.Info().Msg("with fields")

	assert.Contains(t, buf.String(), `"transaction_id":"TX001"`)
}
