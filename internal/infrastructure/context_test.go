package infrastructure

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceIDRoundTrip(t *testing.T) {
	ctx := WithTraceID(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", GetTraceID(ctx))
}

func TestGetTraceIDMissing(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))
}

func TestEnsureTraceID(t *testing.T) {
	ctx := EnsureTraceID(context.Background())
	generated := GetTraceID(ctx)
	assert.NotEmpty(t, generated)

	// An existing trace ID is preserved.
	again := EnsureTraceID(ctx)
	assert.Equal(t, generated, GetTraceID(again))
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]string{
		"debug":   "DEBUG",
		"info":    "INFO",
		"warn":    "WARN",
		"warning": "WARN",
		"error":   "ERROR",
		"bogus":   "INFO",
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLogLevel(in).String(), "level %q", in)
	}
}
