package guard

import "github.com/amp-labs/amp-guard/errors"

// Check runs several checks and returns every failure joined together, or nil.
//
//	err := guard.Check(
//	    guard.NotBlank(name, guard.Name("name")),
//	    guard.Positive(size, guard.Name("size")),
//	)
func Check(errs ...error) error {
	var collection errors.Collection

	for _, err := range errs {
		collection.Add(err)
	}

	return collection.GetError()
}

// Must panics if err is not nil. It is meant for package initialization and
// tests, where a failed precondition is a programming error.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// MustValue returns value, or panics if err is not nil.
//
//	port := guard.MustValue(guard.OfType[int](raw))
func MustValue[T any](value T, err error) T { //nolint:ireturn
	Must(err)

	return value
}
