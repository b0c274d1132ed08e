package guard

import (
	"context"
	"fmt"

	"github.com/amp-labs/amp-guard/envutil"
	"github.com/amp-labs/amp-guard/logger"
	"go.uber.org/atomic"
)

// EnvEnabled is the environment variable read by ConfigureFromEnv.
const EnvEnabled = "GUARD_ENABLED"

var enabled = atomic.NewBool(true) //nolint:gochecknoglobals

// Enabled reports whether checks are evaluated. It is always false when the
// package is built with the guard_disabled tag.
func Enabled() bool {
	return compiledIn && enabled.Load()
}

// SetEnabled turns every check in the process on or off and returns the
// previous setting. It has no effect under the guard_disabled build tag.
func SetEnabled(on bool) bool {
	return enabled.Swap(on)
}

// ConfigureFromEnv sets the runtime toggle from GUARD_ENABLED. An unset
// variable leaves checks enabled; an unparsable one is an error and leaves the
// toggle untouched.
func ConfigureFromEnv(ctx context.Context) error {
	on, err := envutil.Bool(ctx, EnvEnabled, envutil.Default(true)).Value()
	if err != nil {
		return fmt.Errorf("configuring guard clauses: %w", err)
	}

	SetEnabled(on)

	logger.Get(ctx).Info("guard clauses configured",
		"enabled", Enabled(),
		"compiled_in", compiledIn)

	return nil
}
