// Package envutil reads typed configuration values from environment variables.
//
//	enabled := envutil.Bool(ctx, "GUARD_ENABLED", envutil.Default(true)).ValueOrElse(true)
package envutil

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// get returns a Reader for the given key, preferring a context override.
func get(ctx context.Context, key string) Reader[string] {
	if val, ok := getEnvOverride(ctx, key); ok {
		return Reader[string]{key: key, present: true, value: val}
	}

	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String returns a Reader for the raw value of key.
func String(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(get(ctx, key), opts)
}

// Bool returns a Reader for key parsed with strconv.ParseBool.
func Bool(ctx context.Context, key string, opts ...Option[bool]) Reader[bool] {
	rdr := Map(get(ctx, key), func(s string) (bool, error) {
		return strconv.ParseBool(strings.TrimSpace(s))
	})

	return apply(rdr, opts)
}

// SlogLevel returns a Reader for key parsed as a slog level name
// ("debug", "info", "warn", "error", optionally with an offset like "info+2").
func SlogLevel(ctx context.Context, key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	rdr := Map(get(ctx, key), func(s string) (slog.Level, error) {
		var level slog.Level

		if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
			return level, fmt.Errorf("invalid log level %q: %w", s, err)
		}

		return level, nil
	})

	return apply(rdr, opts)
}
