//go:build !guard_disabled

package guard_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// checkCase is one guard invocation and the kind it must fail with, or nil
// if it must pass.
type checkCase struct {
	name string
	err  error
	kind error
}

func runChecks(t *testing.T, tests []checkCase) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if testCase.kind == nil {
				require.NoError(t, testCase.err)

				return
			}

			require.ErrorIs(t, testCase.err, testCase.kind)
		})
	}
}
