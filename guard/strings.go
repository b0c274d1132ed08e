package guard

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/amp-labs/amp-guard/errors"
	"github.com/amp-labs/amp-guard/ranges"
	"golang.org/x/text/cases"
)

// NotEmptyString fails if value is "".
func NotEmptyString(value string, opts ...Option) error {
	if !Enabled() || value != "" {
		return nil
	}

	return fail("NotEmptyString", errors.ErrEmptyString, value, opts, describe("must not be empty"))
}

// NotBlank fails if value is empty or only white space.
func NotBlank(value string, opts ...Option) error {
	if !Enabled() {
		return nil
	}

	if value == "" {
		return fail("NotBlank", errors.ErrEmptyString, value, opts, describe("must not be empty"))
	}

	if strings.TrimSpace(value) == "" {
		return fail("NotBlank", errors.ErrWhiteSpaceString, value, opts, describe("must not be only white space"))
	}

	return nil
}

// StartsWith fails unless value begins with prefix.
func StartsWith(value, prefix string, opts ...Option) error {
	if !Enabled() || strings.HasPrefix(value, prefix) {
		return nil
	}

	return fail("StartsWith", errors.ErrSubstring, value, opts, describe("must start with %q, got %q", prefix, value))
}

// EndsWith fails unless value ends with suffix.
func EndsWith(value, suffix string, opts ...Option) error {
	if !Enabled() || strings.HasSuffix(value, suffix) {
		return nil
	}

	return fail("EndsWith", errors.ErrSubstring, value, opts, describe("must end with %q, got %q", suffix, value))
}

// Contains fails unless substr occurs in value.
func Contains(value, substr string, opts ...Option) error {
	if !Enabled() || strings.Contains(value, substr) {
		return nil
	}

	return fail("Contains", errors.ErrSubstring, value, opts, describe("must contain %q, got %q", substr, value))
}

// NotContains fails if substr occurs in value.
func NotContains(value, substr string, opts ...Option) error {
	if !Enabled() || !strings.Contains(value, substr) {
		return nil
	}

	return fail("NotContains", errors.ErrSubstring, value, opts, describe("must not contain %q, got %q", substr, value))
}

// SubstringOf fails unless value occurs in container.
func SubstringOf(value, container string, opts ...Option) error {
	if !Enabled() || strings.Contains(container, value) {
		return nil
	}

	return fail("SubstringOf", errors.ErrSubstring, value, opts, describe("must be a substring of %q, got %q", container, value))
}

// EqualFold fails unless value and other are equal under full Unicode case
// folding ("Straße" equals "STRASSE").
func EqualFold(value, other string, opts ...Option) error {
	if !Enabled() {
		return nil
	}

	if cases.Fold().String(value) == cases.Fold().String(other) {
		return nil
	}

	return fail("EqualFold", errors.ErrValuesNotEqual, value, opts,
		describe("must equal %q ignoring case, got %q", other, value))
}

// LengthIn fails unless value has between minLength and maxLength runes,
// inclusive. It fails with ErrInvalidRangeBoundary if maxLength < minLength.
func LengthIn(value string, minLength, maxLength int, opts ...Option) error {
	if !Enabled() {
		return nil
	}

	r, err := ranges.New(minLength, maxLength, true, true)
	if err != nil {
		return failWithCause("LengthIn", errors.ErrInvalidRangeBoundary, value, err, opts,
			describe("cannot be checked against length [%d, %d]: %v", minLength, maxLength, err))
	}

	length := utf8.RuneCountInString(value)
	if r.Contains(length) {
		return nil
	}

	return fail("LengthIn", errors.ErrStringLength, value, opts,
		describe("must have a length in %s, got %d", r, length))
}

// ExactLength fails unless value has exactly length runes.
func ExactLength(value string, length int, opts ...Option) error {
	if !Enabled() {
		return nil
	}

	actual := utf8.RuneCountInString(value)
	if actual == length {
		return nil
	}

	return fail("ExactLength", errors.ErrStringLength, value, opts,
		describe("must have a length of %d, got %d", length, actual))
}

// MinLength fails if value has fewer than minLength runes.
func MinLength(value string, minLength int, opts ...Option) error {
	if !Enabled() {
		return nil
	}

	actual := utf8.RuneCountInString(value)
	if actual >= minLength {
		return nil
	}

	return fail("MinLength", errors.ErrStringLength, value, opts,
		describe("must have a length of at least %d, got %d", minLength, actual))
}

// MaxLength fails if value has more than maxLength runes.
func MaxLength(value string, maxLength int, opts ...Option) error {
	if !Enabled() {
		return nil
	}

	actual := utf8.RuneCountInString(value)
	if actual <= maxLength {
		return nil
	}

	return fail("MaxLength", errors.ErrStringLength, value, opts,
		describe("must have a length of at most %d, got %d", maxLength, actual))
}

// Matches fails unless pattern matches value.
func Matches(value string, pattern *regexp.Regexp, opts ...Option) error {
	if !Enabled() {
		return nil
	}

	if pattern == nil {
		return fail("Matches", errors.ErrArgumentNil, pattern, renamed(opts, "pattern"), describe("must not be nil"))
	}

	if pattern.MatchString(value) {
		return nil
	}

	return fail("Matches", errors.ErrStringDoesNotMatch, value, opts,
		describe("must match %s, got %q", pattern, value))
}

// Email fails unless value is a bare RFC 5322 address such as
// "ops@example.com". Display names ("Ops <ops@example.com>") are rejected.
func Email(value string, opts ...Option) error {
	if !Enabled() {
		return nil
	}

	addr, err := mail.ParseAddress(value)
	if err == nil && addr.Name == "" && addr.Address == value {
		return nil
	}

	return failWithCause("Email", errors.ErrInvalidEmailAddress, value, err, opts,
		describe("must be an email address, got %q", value))
}

// Trimmed fails if value has leading or trailing white space.
func Trimmed(value string, opts ...Option) error {
	if !Enabled() || strings.TrimSpace(value) == value {
		return nil
	}

	return fail("Trimmed", errors.ErrStringNotTrimmed, value, opts,
		describe("must not have leading or trailing white space, got %q", value))
}

// TrimmedAtStart fails if value has leading white space.
func TrimmedAtStart(value string, opts ...Option) error {
	if !Enabled() || strings.TrimLeftFunc(value, unicode.IsSpace) == value {
		return nil
	}

	return fail("TrimmedAtStart", errors.ErrStringNotTrimmed, value, opts,
		describe("must not have leading white space, got %q", value))
}

// TrimmedAtEnd fails if value has trailing white space.
func TrimmedAtEnd(value string, opts ...Option) error {
	if !Enabled() || strings.TrimRightFunc(value, unicode.IsSpace) == value {
		return nil
	}

	return fail("TrimmedAtEnd", errors.ErrStringNotTrimmed, value, opts,
		describe("must not have trailing white space, got %q", value))
}

// Digits fails unless value is non-empty and every rune is a decimal digit.
func Digits(value string, opts ...Option) error {
	if !Enabled() {
		return nil
	}

	if value == "" {
		return fail("Digits", errors.ErrEmptyString, value, opts, describe("must not be empty"))
	}

	if !strings.ContainsFunc(value, func(r rune) bool { return !unicode.IsDigit(r) }) {
		return nil
	}

	return fail("Digits", errors.ErrStringDoesNotMatch, value, opts, describe("must contain only digits, got %q", value))
}

// Letters fails unless value is non-empty and every rune is a letter.
func Letters(value string, opts ...Option) error {
	if !Enabled() {
		return nil
	}

	if value == "" {
		return fail("Letters", errors.ErrEmptyString, value, opts, describe("must not be empty"))
	}

	if !strings.ContainsFunc(value, func(r rune) bool { return !unicode.IsLetter(r) }) {
		return nil
	}

	return fail("Letters", errors.ErrStringDoesNotMatch, value, opts, describe("must contain only letters, got %q", value))
}
