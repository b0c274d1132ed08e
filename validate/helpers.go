package validate

import "context"

// Func adapts a plain function to HasValidate. A nil function always passes.
//
//	port := validate.Func(func() error {
//	    return guard.Between(p, 1, 65535, guard.Name("port"))
//	})
func Func(f func() error) HasValidate {
	return validateFunc(f)
}

// FuncWithContext adapts a context-aware function to HasValidateWithContext.
// A nil function always passes.
func FuncWithContext(f func(ctx context.Context) error) HasValidateWithContext {
	return validateFuncWithContext(f)
}

type validateFunc func() error

var _ HasValidate = validateFunc(nil)

func (f validateFunc) Validate() error {
	if f == nil {
		return nil
	}

	return f()
}

type validateFuncWithContext func(ctx context.Context) error

var _ HasValidateWithContext = validateFuncWithContext(nil)

func (f validateFuncWithContext) Validate(ctx context.Context) error {
	if f == nil {
		return nil
	}

	return f(ctx)
}
