package guard

import (
	"fmt"

	"github.com/amp-labs/amp-guard/errors"
	"github.com/amp-labs/amp-guard/logger"
)

// describe builds a default message of the form "<name> <detail>".
func describe(format string, args ...any) func(name string) string {
	return func(name string) string {
		return name + " " + fmt.Sprintf(format, args...)
	}
}

// renamed returns the caller's options followed by Name(name), so checks that
// fail on a helper argument keep the caller's Error and ErrorFunc.
func renamed(opts []Option, name string) []Option {
	out := make([]Option, 0, len(opts)+1)
	out = append(out, opts...)

	return append(out, Name(name))
}

// fail reports a failed check. It builds the default error, applies the
// caller's options, counts the violation and logs it at debug level.
func fail(check string, kind *errors.Kind, value any, opts []Option, msg func(name string) string) error {
	return failWithCause(check, kind, value, nil, opts, msg)
}

func failWithCause(
	check string,
	kind *errors.Kind,
	value any,
	cause error,
	opts []Option,
	msg func(name string) string,
) error {
	o := newOptions(opts)

	message := o.message
	if message == "" && msg != nil {
		message = msg(o.name)
	}

	argErr := errors.NewArgumentError(kind, o.name, value, message)
	argErr.Cause = cause

	violationsTotal.WithLabelValues(check, kind.Error()).Inc()

	logger.Get().Debug("guard clause failed",
		"check", check,
		"name", o.name,
		"kind", kind.Error(),
		"message", message)

	switch {
	case o.err != nil:
		return o.err
	case o.errorFor != nil:
		if err := o.errorFor(argErr); err != nil {
			return err
		}

		return argErr
	default:
		return argErr
	}
}
