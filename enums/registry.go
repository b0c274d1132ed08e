package enums

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/amp-labs/amp-guard/errors"
	"golang.org/x/exp/constraints"
)

// registry maps a Go type to its *Enum. Descriptors are immutable, so readers
// only need the lock for the map itself.
//
//nolint:gochecknoglobals
var registry = struct {
	sync.RWMutex
	byType map[reflect.Type]any
}{byType: make(map[reflect.Type]any)}

// Register makes e the descriptor for T, replacing any previous registration.
// Registering is typically done once, next to the constant declarations:
//
//	var _ = enums.Register(enums.New(enums.Const("Red", Red), enums.Const("Blue", Blue)))
func Register[T constraints.Integer](e *Enum[T]) *Enum[T] {
	registry.Lock()
	defer registry.Unlock()

	registry.byType[reflect.TypeFor[T]()] = e

	return e
}

// Unregister removes the descriptor for T, if any.
func Unregister[T constraints.Integer]() {
	registry.Lock()
	defer registry.Unlock()

	delete(registry.byType, reflect.TypeFor[T]())
}

// Lookup returns the descriptor registered for T.
func Lookup[T constraints.Integer]() (*Enum[T], bool) {
	registry.RLock()
	defer registry.RUnlock()

	found, ok := registry.byType[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}

	e, ok := found.(*Enum[T])

	return e, ok
}

// MustLookup is Lookup that panics when T was never registered.
func MustLookup[T constraints.Integer]() *Enum[T] {
	e, ok := Lookup[T]()
	if !ok {
		panic(fmt.Errorf("%w: %s is not a registered enumeration", errors.ErrWrongType, reflect.TypeFor[T]()))
	}

	return e
}
