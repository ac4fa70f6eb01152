package app

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jbeshir/reading-queue/internal/domain"
)

func MustGetEnvAsString(ctx context.Context, name string) string {
	s, exists := os.LookupEnv(name)
	if !exists {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "environment variable missing", "variable_name", name)
		panic(fmt.Sprintf("missing environment variable [%s]", name))
	}

	return s
}

// GetEnvAsStringOr returns the variable, or fallback when it is unset or empty.
func GetEnvAsStringOr(name, fallback string) string {
	if s := os.Getenv(name); s != "" {
		return s
	}
	return fallback
}

// MustGetEnvAsStrings splits a comma separated variable, trimming spaces.
func MustGetEnvAsStrings(ctx context.Context, name string) []string {
	parts := strings.Split(MustGetEnvAsString(ctx, name), ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func MustGetEnvAsInt(ctx context.Context, name string) int {
	return int(mustParseEnv(ctx, name, "integer", func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 0)
	}))
}

func MustGetEnvAsInt64(ctx context.Context, name string) int64 {
	return mustParseEnv(ctx, name, "64 bit integer", func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})
}

func MustGetEnvAsBoolean(ctx context.Context, name string) bool {
	return mustParseEnv(ctx, name, "boolean ('true'/'false')", func(s string) (bool, error) {
		switch strings.ToLower(s) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		default:
			return false, fmt.Errorf("not a boolean")
		}
	})
}

func MustGetEnvAsDuration(ctx context.Context, name string) time.Duration {
	return mustParseEnv(ctx, name, "duration", time.ParseDuration)
}

// MustGetEnvAsLocation loads an IANA timezone name such as "Asia/Tokyo".
func MustGetEnvAsLocation(ctx context.Context, name string) *time.Location {
	return mustParseEnv(ctx, name, "timezone", time.LoadLocation)
}

func mustParseEnv[T any](ctx context.Context, name, kind string, parse func(string) (T, error)) T {
	s := MustGetEnvAsString(ctx, name)

	v, err := parse(s)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as "+kind,
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as %s [%s]: %s", kind, name, s))
	}

	return v
}
