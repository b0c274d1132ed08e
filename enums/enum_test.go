package enums_test

import (
	"fmt"
	"sync"
	"testing"

	commonerrors "github.com/amp-labs/amp-guard/errors"
	"github.com/amp-labs/amp-guard/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type permission uint8

const (
	permRead permission = 1 << iota
	permWrite
	permExecute
)

type color int

const (
	colorRed color = iota + 1
	colorGreen
	colorBlue
)

func permissions() *enums.Enum[permission] {
	return enums.NewFlags(
		enums.Const("Read", permRead),
		enums.Const("Write", permWrite),
		enums.Const("Execute", permExecute),
	)
}

func colors() *enums.Enum[color] {
	return enums.New(
		enums.Const("Red", colorRed),
		enums.Const("Green", colorGreen),
		enums.Const("Blue", colorBlue),
	)
}

func TestEnum_IsDefined(t *testing.T) {
	t.Parallel()

	perms := permissions()
	assert.True(t, perms.IsFlags())
	assert.True(t, perms.IsDefined(permRead))
	assert.True(t, perms.IsDefined(permRead|permExecute))
	assert.False(t, perms.IsDefined(8))
	assert.False(t, perms.IsDefined(0))

	cols := colors()
	assert.False(t, cols.IsFlags())
	assert.True(t, cols.IsDefined(colorGreen))
	assert.True(t, cols.IsDefined(colorRed|colorGreen), "3 is declared as Blue")

	// Non-flags enumerations never combine values, even if the bits line up.
	sizes := enums.New(
		enums.Const("Small", permRead),
		enums.Const("Medium", permWrite),
		enums.Const("Large", permExecute),
	)
	assert.False(t, sizes.IsDefined(permRead|permWrite))
	assert.False(t, cols.IsDefined(color(5)))
	assert.False(t, cols.IsDefined(0))
}

func TestEnum_EmptyNeverValidates(t *testing.T) {
	t.Parallel()

	assert.False(t, enums.New[int]().IsDefined(0))
	assert.False(t, enums.NewFlags[int]().IsDefined(0))
}

func TestEnum_ValuesAreCopies(t *testing.T) {
	t.Parallel()

	cols := colors()

	values := cols.Values()
	values[0] = 99

	assert.Equal(t, []color{colorRed, colorGreen, colorBlue}, cols.Values())

	constants := cols.Constants()
	constants[0].Name = "Crimson"

	name, ok := cols.Name(colorRed)
	require.True(t, ok)
	assert.Equal(t, "Red", name)
}

func TestEnum_Format(t *testing.T) {
	t.Parallel()

	perms := permissions()
	assert.Equal(t, "Read", perms.Format(permRead))
	assert.Equal(t, "Read|Write", perms.Format(permRead|permWrite))
	assert.Equal(t, "Read|Write|Execute", perms.Format(7))
	assert.Equal(t, "8", perms.Format(8))
	assert.Equal(t, "0", perms.Format(0))

	cols := colors()
	assert.Equal(t, "Blue", cols.Format(colorBlue))
	assert.Equal(t, "-4", cols.Format(-4))

	withAll := enums.NewFlags(
		enums.Const("None", 0),
		enums.Const("A", 1),
		enums.Const("B", 2),
		enums.Const("All", 3),
	)
	assert.Equal(t, "None", withAll.Format(0))
	assert.Equal(t, "All", withAll.Format(3))
}

type registeredKind int16

type neverRegistered int16

func TestRegistry(t *testing.T) {
	t.Parallel()

	_, ok := enums.Lookup[registeredKind]()
	require.False(t, ok)

	registered := enums.Register(enums.New(enums.Const("One", registeredKind(1))))

	found, ok := enums.Lookup[registeredKind]()
	require.True(t, ok)
	assert.Same(t, registered, found)
	assert.Same(t, registered, enums.MustLookup[registeredKind]())

	enums.Unregister[registeredKind]()

	_, ok = enums.Lookup[registeredKind]()
	assert.False(t, ok)
}

func TestRegistry_MustLookupPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		recovered := recover()
		require.NotNil(t, recovered)

		err, ok := recovered.(error)
		require.True(t, ok)
		require.ErrorIs(t, err, commonerrors.ErrWrongType)
	}()

	enums.MustLookup[neverRegistered]()
}

type concurrentKind uint32

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	e := enums.NewFlags(enums.Const("A", concurrentKind(1)), enums.Const("B", concurrentKind(2)))

	var wg sync.WaitGroup

	for range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			enums.Register(e)

			found, ok := enums.Lookup[concurrentKind]()
			if ok {
				assert.True(t, found.IsDefined(3))
			}
		}()
	}

	wg.Wait()

	assert.Same(t, e, enums.MustLookup[concurrentKind]())
}

func ExampleIsValidFlagsCombination() {
	declared := []uint8{1, 2, 4}

	fmt.Println(enums.IsValidFlagsCombination(uint8(5), declared))
	fmt.Println(enums.IsValidFlagsCombination(uint8(8), declared))

	// Output:
	// true
	// false
}
