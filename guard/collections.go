package guard

import (
	"github.com/amp-labs/amp-guard/errors"
	"github.com/samber/lo"
)

// NotEmpty fails if items has no elements. A nil slice is empty.
func NotEmpty[T any](items []T, opts ...Option) error {
	if !Enabled() || len(items) > 0 {
		return nil
	}

	return fail("NotEmpty", errors.ErrEmptyCollection, items, opts, describe("must not be empty"))
}

// Empty fails if items has any elements.
func Empty[T any](items []T, opts ...Option) error {
	if !Enabled() || len(items) == 0 {
		return nil
	}

	return fail("Empty", errors.ErrCollectionNotEmpty, items, opts, describe("must be empty, got %d items", len(items)))
}

// Count fails unless items has exactly count elements.
func Count[T any](items []T, count int, opts ...Option) error {
	if !Enabled() || len(items) == count {
		return nil
	}

	return fail("Count", errors.ErrInvalidCollectionCount, items, opts,
		describe("must have %d items, got %d", count, len(items)))
}

// MinCount fails if items has fewer than minCount elements.
func MinCount[T any](items []T, minCount int, opts ...Option) error {
	if !Enabled() || len(items) >= minCount {
		return nil
	}

	return fail("MinCount", errors.ErrInvalidCollectionCount, items, opts,
		describe("must have at least %d items, got %d", minCount, len(items)))
}

// MaxCount fails if items has more than maxCount elements.
func MaxCount[T any](items []T, maxCount int, opts ...Option) error {
	if !Enabled() || len(items) <= maxCount {
		return nil
	}

	return fail("MaxCount", errors.ErrInvalidCollectionCount, items, opts,
		describe("must have at most %d items, got %d", maxCount, len(items)))
}

// ContainsItem fails unless item is in items.
func ContainsItem[T comparable](items []T, item T, opts ...Option) error {
	if !Enabled() || lo.Contains(items, item) {
		return nil
	}

	return fail("ContainsItem", errors.ErrMissingItem, items, opts, describe("must contain %v", item))
}

// NotContainsItem fails if item is in items.
func NotContainsItem[T comparable](items []T, item T, opts ...Option) error {
	if !Enabled() || !lo.Contains(items, item) {
		return nil
	}

	return fail("NotContainsItem", errors.ErrExistingItem, items, opts, describe("must not contain %v", item))
}

// NoDuplicates fails if any element of items occurs more than once. The
// message lists each duplicated element once, in order of first appearance.
func NoDuplicates[T comparable](items []T, opts ...Option) error {
	if !Enabled() {
		return nil
	}

	dups := lo.FindDuplicates(items)
	if len(dups) == 0 {
		return nil
	}

	return fail("NoDuplicates", errors.ErrExistingItem, items, opts, describe("must not contain duplicates, got %v", dups))
}

// NotEmptyMap fails if m has no entries. A nil map is empty.
func NotEmptyMap[K comparable, V any](m map[K]V, opts ...Option) error {
	if !Enabled() || len(m) > 0 {
		return nil
	}

	return fail("NotEmptyMap", errors.ErrEmptyCollection, m, opts, describe("must not be empty"))
}

// ContainsKey fails unless key is in m.
func ContainsKey[K comparable, V any](m map[K]V, key K, opts ...Option) error {
	if !Enabled() || lo.HasKey(m, key) {
		return nil
	}

	return fail("ContainsKey", errors.ErrMissingItem, m, opts, describe("must contain key %v", key))
}

// NotContainsKey fails if key is in m.
func NotContainsKey[K comparable, V any](m map[K]V, key K, opts ...Option) error {
	if !Enabled() || !lo.HasKey(m, key) {
		return nil
	}

	return fail("NotContainsKey", errors.ErrExistingItem, m, opts, describe("must not contain key %v", key))
}
