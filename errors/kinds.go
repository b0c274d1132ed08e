package errors

// Kind is a category of guard failure. Kinds form a tree: every kind except
// ErrArgument and ErrInvalidState has a parent, and errors.Is matches a kind
// against itself and all of its ancestors.
type Kind struct {
	name   string
	parent *Kind
}

// NewKind creates a kind below parent. A nil parent creates a root kind.
func NewKind(name string, parent *Kind) *Kind {
	return &Kind{name: name, parent: parent}
}

func (k *Kind) Error() string {
	return k.name
}

// Parent returns the enclosing kind, or nil for a root.
func (k *Kind) Parent() *Kind {
	return k.parent
}

// Is reports whether target is this kind or one of its ancestors.
func (k *Kind) Is(target error) bool {
	other, ok := target.(*Kind)
	if !ok {
		return false
	}

	for cur := k; cur != nil; cur = cur.parent {
		if cur == other {
			return true
		}
	}

	return false
}

//nolint:gochecknoglobals
var (
	// ErrArgument is the root of every argument failure.
	ErrArgument = NewKind("invalid argument", nil)

	ErrArgumentNil         = NewKind("argument is nil", ErrArgument)
	ErrArgumentNotNil      = NewKind("argument is not nil", ErrArgument)
	ErrArgumentDefault     = NewKind("argument has its default value", ErrArgument)
	ErrArgumentNotDefault  = NewKind("argument does not have its default value", ErrArgument)
	ErrArgumentOutOfRange  = NewKind("argument out of range", ErrArgument)
	ErrValuesEqual         = NewKind("values are equal", ErrArgument)
	ErrValuesNotEqual      = NewKind("values are not equal", ErrArgument)
	ErrSameReference       = NewKind("same reference", ErrArgument)
	ErrValueIsNotOneOf     = NewKind("value is not one of the allowed values", ErrArgument)
	ErrValueIsOneOf        = NewKind("value is one of the forbidden values", ErrArgument)
	ErrEnumValueNotDefined = NewKind("enum value not defined", ErrArgument)
	ErrWrongType           = NewKind("wrong type", ErrArgument)
	ErrEmptyUUID           = NewKind("empty uuid", ErrArgument)
	ErrInvalidDateTime     = NewKind("invalid date time", ErrArgument)

	// ErrInvalidRangeBoundary is returned when a range is built with to < from.
	ErrInvalidRangeBoundary = NewKind("invalid range boundary", ErrArgumentOutOfRange)

	ErrString              = NewKind("invalid string", ErrArgument)
	ErrEmptyString         = NewKind("empty string", ErrString)
	ErrWhiteSpaceString    = NewKind("white space string", ErrString)
	ErrStringLength        = NewKind("invalid string length", ErrString)
	ErrSubstring           = NewKind("substring mismatch", ErrString)
	ErrStringDoesNotMatch  = NewKind("string does not match pattern", ErrString)
	ErrInvalidEmailAddress = NewKind("invalid email address", ErrString)
	ErrStringNotTrimmed    = NewKind("string is not trimmed", ErrString)

	ErrCollection             = NewKind("invalid collection", ErrArgument)
	ErrEmptyCollection        = NewKind("empty collection", ErrCollection)
	ErrCollectionNotEmpty     = NewKind("collection is not empty", ErrCollection)
	ErrInvalidCollectionCount = NewKind("invalid collection count", ErrCollection)
	ErrMissingItem            = NewKind("missing item", ErrCollection)
	ErrExistingItem           = NewKind("existing item", ErrCollection)

	ErrURI              = NewKind("invalid uri", ErrArgument)
	ErrRelativeURI      = NewKind("relative uri", ErrURI)
	ErrAbsoluteURI      = NewKind("absolute uri", ErrURI)
	ErrInvalidURIScheme = NewKind("invalid uri scheme", ErrURI)

	// ErrInvalidState is not an argument failure: it reports that the receiver
	// or the surrounding system is in the wrong state for the call.
	ErrInvalidState = NewKind("invalid state", nil)
)
