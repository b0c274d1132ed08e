package guard

import (
	"github.com/amp-labs/amp-guard/errors"
	gocmp "github.com/google/go-cmp/cmp"
)

const defaultName = "value"

// Option customizes how a failed check is reported.
type Option func(*options)

type options struct {
	name     string
	message  string
	err      error
	errorFor func(*errors.ArgumentError) error
	cmpOpts  []gocmp.Option
}

func newOptions(opts []Option) *options {
	o := &options{name: defaultName}

	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	return o
}

// Name sets the parameter name used in the default message.
func Name(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// Message replaces the default message. The error kind is unchanged.
func Message(message string) Option {
	return func(o *options) {
		o.message = message
	}
}

// Error makes a failed check return err instead of the default error.
func Error(err error) Option {
	return func(o *options) {
		o.err = err
	}
}

// ErrorFunc makes a failed check return whatever f builds from the default
// error. Returning nil from f is treated as returning the default error.
func ErrorFunc(f func(*errors.ArgumentError) error) Option {
	return func(o *options) {
		o.errorFor = f
	}
}

// CompareWith passes go-cmp options to DeepEqual. Other checks ignore it.
func CompareWith(cmpOpts ...gocmp.Option) Option {
	return func(o *options) {
		o.cmpOpts = append(o.cmpOpts, cmpOpts...)
	}
}
