// Package validate runs the SWIFT Network Validation Rules (NVR) for
// each supported message type. Grounded line-for-line on mt103.rs's
// and mt107.rs's validate_network_rules control flow: an ordered list
// of checks, each independently producing zero or more validation
// errors, with an early-exit option once the first error is found.
package validate

import "github.com/deltran/swiftmt/internal/swiftmt/primitives"

// Rule is one named network-validation check against a message body of
// type T.
type Rule[T any] struct {
	Name  string
	Check func(T) []primitives.SwiftError
}

// Run executes rules in order against msg. When stopOnFirstError is
// true, it returns as soon as any rule reports at least one error;
// otherwise every rule runs and all errors are collected.
func Run[T any](msg T, rules []Rule[T], stopOnFirstError bool) []primitives.SwiftError {
	var all []primitives.SwiftError
	for _, r := range rules {
		errs := r.Check(msg)
		if len(errs) == 0 {
			continue
		}
		all = append(all, errs...)
		if stopOnFirstError {
			return all
		}
	}
	return all
}
