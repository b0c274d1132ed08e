// Package validate runs the Validate method of self-validating values. The
// guard package delegates to it for guard.Valid.
package validate

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/amp-labs/amp-guard/errors"
	"github.com/amp-labs/amp-guard/logger"
	"github.com/amp-labs/amp-guard/utils"
)

// HasValidate is implemented by types that can check themselves without a context.
type HasValidate interface {
	Validate() error
}

// HasValidateWithContext is implemented by types whose validation may block,
// and should therefore honor cancellation.
type HasValidateWithContext interface {
	Validate(ctx context.Context) error
}

// Validate calls the value's Validate method, if it has one. Failures are
// wrapped with errors.ErrValidation. Nil values and values without a Validate
// method pass.
//
// If a value implements both interfaces, the context-free method wins.
func Validate(ctx context.Context, value any) error {
	if ctx == nil {
		ctx = context.Background()
	}

	err := validateInternal(ctx, value)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrValidation, err)
	}

	return nil
}

func validateInternal(ctx context.Context, value any) error {
	if utils.IsNilish(value) {
		return nil
	}

	start := time.Now()

	var err error

	switch v := value.(type) {
	case HasValidate:
		err = v.Validate()
	case HasValidateWithContext:
		err = v.Validate(ctx)
	default:
		validationsTotal.WithLabelValues("false", "false").Inc()

		logger.Get(ctx).Warn("Validate called on unsupported type",
			"type", fmt.Sprintf("%T", v))

		return nil
	}

	hasError := strconv.FormatBool(err != nil)

	validationsTotal.WithLabelValues("true", hasError).Inc()
	validationTime.WithLabelValues(fmt.Sprintf("%T", value), hasError).
		Observe(float64(time.Since(start).Microseconds()) / 1000.0) //nolint:mnd

	return err
}
