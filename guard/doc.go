// Package guard provides guard clauses: one-line precondition checks that
// return a descriptive error when an argument is unacceptable.
//
//	func Dial(host string, port int) error {
//	    if err := guard.Check(
//	        guard.NotBlank(host, guard.Name("host")),
//	        guard.Between(port, 1, 65535, guard.Name("port")),
//	    ); err != nil {
//	        return err
//	    }
//	    ...
//	}
//
// Every check returns nil on success. On failure it returns an
// *errors.ArgumentError whose kind can be matched with errors.Is, unless the
// caller supplied a replacement through Error or ErrorFunc.
//
// Checks can be switched off at runtime with SetEnabled, or compiled out with
// the guard_disabled build tag. A disabled check always passes.
package guard
