//go:build !guard_disabled

package guard

// compiledIn is false when the package is built with the guard_disabled tag.
const compiledIn = true
