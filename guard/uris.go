package guard

import (
	"net/url"
	"strings"

	"github.com/amp-labs/amp-guard/errors"
)

// AbsoluteURI fails unless value parses as a URI with a scheme.
func AbsoluteURI(value string, opts ...Option) error {
	if !Enabled() {
		return nil
	}

	u, err := url.Parse(value)
	if err != nil {
		return failWithCause("AbsoluteURI", errors.ErrURI, value, err, opts, describe("must be a URI, got %q", value))
	}

	if u.IsAbs() {
		return nil
	}

	return fail("AbsoluteURI", errors.ErrRelativeURI, value, opts, describe("must be an absolute URI, got %q", value))
}

// RelativeURI fails unless value parses as a URI without a scheme.
func RelativeURI(value string, opts ...Option) error {
	if !Enabled() {
		return nil
	}

	u, err := url.Parse(value)
	if err != nil {
		return failWithCause("RelativeURI", errors.ErrURI, value, err, opts, describe("must be a URI, got %q", value))
	}

	if !u.IsAbs() {
		return nil
	}

	return fail("RelativeURI", errors.ErrAbsoluteURI, value, opts, describe("must be a relative URI, got %q", value))
}

// Scheme fails unless value is an absolute URI with the given scheme.
// Schemes are compared case-insensitively.
func Scheme(value, scheme string, opts ...Option) error {
	return schemeIn("Scheme", value, []string{scheme}, opts)
}

// OneSchemeOf fails unless value is an absolute URI with one of schemes.
func OneSchemeOf(value string, schemes []string, opts ...Option) error {
	return schemeIn("OneSchemeOf", value, schemes, opts)
}

// HTTP fails unless value is an http URI.
func HTTP(value string, opts ...Option) error {
	return schemeIn("HTTP", value, []string{"http"}, opts)
}

// HTTPS fails unless value is an https URI.
func HTTPS(value string, opts ...Option) error {
	return schemeIn("HTTPS", value, []string{"https"}, opts)
}

// HTTPOrHTTPS fails unless value is an http or https URI.
func HTTPOrHTTPS(value string, opts ...Option) error {
	return schemeIn("HTTPOrHTTPS", value, []string{"http", "https"}, opts)
}

func schemeIn(check, value string, schemes []string, opts []Option) error {
	if !Enabled() {
		return nil
	}

	u, err := url.Parse(value)
	if err != nil {
		return failWithCause(check, errors.ErrURI, value, err, opts, describe("must be a URI, got %q", value))
	}

	if !u.IsAbs() {
		return fail(check, errors.ErrRelativeURI, value, opts, describe("must be an absolute URI, got %q", value))
	}

	for _, scheme := range schemes {
		if strings.EqualFold(u.Scheme, scheme) {
			return nil
		}
	}

	return fail(check, errors.ErrInvalidURIScheme, value, opts,
		describe("must use scheme %s, got %q", strings.Join(schemes, " or "), u.Scheme))
}
