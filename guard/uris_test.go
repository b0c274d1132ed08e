//go:build !guard_disabled

package guard_test

import (
	"testing"

	"github.com/amp-labs/amp-guard/errors"
	"github.com/amp-labs/amp-guard/guard"
	"github.com/stretchr/testify/require"
)

func TestURIChecks(t *testing.T) {
	t.Parallel()

	runChecks(t, []checkCase{
		{name: "AbsoluteURI", err: guard.AbsoluteURI("https://example.com/a?b=c")},
		{name: "AbsoluteURI relative", err: guard.AbsoluteURI("/a/b"), kind: errors.ErrRelativeURI},
		{name: "AbsoluteURI unparsable", err: guard.AbsoluteURI("://missing"), kind: errors.ErrURI},
		{name: "RelativeURI", err: guard.RelativeURI("../up")},
		{name: "RelativeURI absolute", err: guard.RelativeURI("mailto:ops@example.com"), kind: errors.ErrAbsoluteURI},
		{name: "Scheme", err: guard.Scheme("ftp://files", "ftp")},
		{name: "Scheme case insensitive", err: guard.Scheme("HTTPS://example.com", "https")},
		{name: "Scheme mismatch", err: guard.Scheme("ftp://files", "sftp"), kind: errors.ErrInvalidURIScheme},
		{name: "OneSchemeOf", err: guard.OneSchemeOf("wss://x", []string{"ws", "wss"})},
		{name: "OneSchemeOf mismatch", err: guard.OneSchemeOf("http://x", []string{"ws", "wss"}), kind: errors.ErrInvalidURIScheme},
		{name: "HTTP", err: guard.HTTP("http://localhost:8080")},
		{name: "HTTP secure", err: guard.HTTP("https://localhost"), kind: errors.ErrInvalidURIScheme},
		{name: "HTTPS", err: guard.HTTPS("https://localhost")},
		{name: "HTTPS relative", err: guard.HTTPS("localhost"), kind: errors.ErrRelativeURI},
		{name: "HTTPOrHTTPS", err: guard.HTTPOrHTTPS("http://a")},
		{name: "HTTPOrHTTPS other", err: guard.HTTPOrHTTPS("file:///etc/hosts"), kind: errors.ErrURI},
	})
}

func TestScheme_Message(t *testing.T) {
	t.Parallel()

	require.EqualError(t, guard.HTTPOrHTTPS("ftp://x", guard.Name("endpoint")),
		`endpoint must use scheme http or https, got "ftp"`)
}
