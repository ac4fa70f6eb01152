package app

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/jbeshir/reading-queue/internal/domain"
	"github.com/stretchr/testify/assert"
)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func TestMustGetEnv(t *testing.T) {
	ctx := testContext()
	t.Setenv("RQ_TEST_STRING", "hello")
	t.Setenv("RQ_TEST_STRINGS", "auth0, single_user ,")
	t.Setenv("RQ_TEST_INT", "8080")
	t.Setenv("RQ_TEST_INT64", "-1001234567890")
	t.Setenv("RQ_TEST_BOOL", "TRUE")
	t.Setenv("RQ_TEST_DURATION", "90s")
	t.Setenv("RQ_TEST_LOCATION", "UTC")

	assert.Equal(t, "hello", MustGetEnvAsString(ctx, "RQ_TEST_STRING"))
	assert.Equal(t, []string{"auth0", "single_user", ""}, MustGetEnvAsStrings(ctx, "RQ_TEST_STRINGS"))
	assert.Equal(t, 8080, MustGetEnvAsInt(ctx, "RQ_TEST_INT"))
	assert.Equal(t, int64(-1001234567890), MustGetEnvAsInt64(ctx, "RQ_TEST_INT64"))
	assert.True(t, MustGetEnvAsBoolean(ctx, "RQ_TEST_BOOL"))
	assert.Equal(t, 90*time.Second, MustGetEnvAsDuration(ctx, "RQ_TEST_DURATION"))
	assert.Equal(t, time.UTC, MustGetEnvAsLocation(ctx, "RQ_TEST_LOCATION"))
}

func TestMustGetEnv_Panics(t *testing.T) {
	ctx := testContext()
	t.Setenv("RQ_TEST_BAD_INT", "eighty")
	t.Setenv("RQ_TEST_BAD_BOOL", "yes")
	t.Setenv("RQ_TEST_BAD_LOCATION", "Mars/Olympus")

	cases := []struct {
		name string
		get  func()
	}{
		{name: "missing", get: func() { MustGetEnvAsString(ctx, "RQ_TEST_NOT_SET") }},
		{name: "bad_int", get: func() { MustGetEnvAsInt(ctx, "RQ_TEST_BAD_INT") }},
		{name: "bad_bool", get: func() { MustGetEnvAsBoolean(ctx, "RQ_TEST_BAD_BOOL") }},
		{name: "bad_location", get: func() { MustGetEnvAsLocation(ctx, "RQ_TEST_BAD_LOCATION") }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Panics(t, tc.get)
		})
	}
}

func TestGetEnvAsStringOr(t *testing.T) {
	t.Setenv("RQ_TEST_SET", "redis")
	t.Setenv("RQ_TEST_EMPTY", "")

	assert.Equal(t, "redis", GetEnvAsStringOr("RQ_TEST_SET", "null"))
	assert.Equal(t, "null", GetEnvAsStringOr("RQ_TEST_EMPTY", "null"))
	assert.Equal(t, "null", GetEnvAsStringOr("RQ_TEST_UNSET_VAR", "null"))
}
