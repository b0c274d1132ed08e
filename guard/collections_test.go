//go:build !guard_disabled

package guard_test

import (
	"testing"

	"github.com/amp-labs/amp-guard/errors"
	"github.com/amp-labs/amp-guard/guard"
	"github.com/stretchr/testify/require"
)

func TestCollectionChecks(t *testing.T) {
	t.Parallel()

	var (
		nilItems []string
		nilMap   map[string]int
	)

	items := []string{"a", "b", "c"}
	headers := map[string]int{"Accept": 1}

	runChecks(t, []checkCase{
		{name: "NotEmpty", err: guard.NotEmpty(items)},
		{name: "NotEmpty nil", err: guard.NotEmpty(nilItems), kind: errors.ErrEmptyCollection},
		{name: "NotEmpty empty", err: guard.NotEmpty([]int{}), kind: errors.ErrCollection},
		{name: "Empty", err: guard.Empty(nilItems)},
		{name: "Empty with items", err: guard.Empty(items), kind: errors.ErrCollectionNotEmpty},
		{name: "Count", err: guard.Count(items, 3)},
		{name: "Count mismatch", err: guard.Count(items, 2), kind: errors.ErrInvalidCollectionCount},
		{name: "MinCount", err: guard.MinCount(items, 3)},
		{name: "MinCount short", err: guard.MinCount(items, 4), kind: errors.ErrInvalidCollectionCount},
		{name: "MaxCount", err: guard.MaxCount(items, 3)},
		{name: "MaxCount long", err: guard.MaxCount(items, 2), kind: errors.ErrInvalidCollectionCount},
		{name: "ContainsItem", err: guard.ContainsItem(items, "b")},
		{name: "ContainsItem missing", err: guard.ContainsItem(items, "z"), kind: errors.ErrMissingItem},
		{name: "NotContainsItem", err: guard.NotContainsItem(items, "z")},
		{name: "NotContainsItem present", err: guard.NotContainsItem(items, "a"), kind: errors.ErrExistingItem},
		{name: "NoDuplicates", err: guard.NoDuplicates(items)},
		{name: "NoDuplicates nil", err: guard.NoDuplicates(nilItems)},
		{name: "NoDuplicates repeated", err: guard.NoDuplicates([]int{1, 2, 1}), kind: errors.ErrExistingItem},
		{name: "NotEmptyMap", err: guard.NotEmptyMap(headers)},
		{name: "NotEmptyMap nil", err: guard.NotEmptyMap(nilMap), kind: errors.ErrEmptyCollection},
		{name: "ContainsKey", err: guard.ContainsKey(headers, "Accept")},
		{name: "ContainsKey missing", err: guard.ContainsKey(headers, "Host"), kind: errors.ErrMissingItem},
		{name: "NotContainsKey", err: guard.NotContainsKey(headers, "Host")},
		{name: "NotContainsKey present", err: guard.NotContainsKey(headers, "Accept"), kind: errors.ErrExistingItem},
	})
}

func TestNoDuplicates_Message(t *testing.T) {
	t.Parallel()

	require.EqualError(t, guard.NoDuplicates([]int{3, 1, 3, 2, 1, 3}, guard.Name("ids")),
		"ids must not contain duplicates, got [3 1]")
}
