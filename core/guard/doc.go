// Package guard provides argument validation for function and constructor
// entry points: small checks that either pass or return a structured
// ArgumentError naming the offending argument.
//
// # Usage
//
// Validate arguments at the top of a function and return early:
//
//	func NewAccount(name, email string, limit int) (*Account, error) {
//		if err := guard.All(
//			guard.NotBlank("name", name),
//			guard.ValidEmail("email", email),
//			guard.Positive("limit", limit),
//		); err != nil {
//			return nil, err
//		}
//		// ...
//	}
//
// All checks fail fast: the first violation is returned and the rest are
// not evaluated for side effects (there are none; every check is pure).
//
// # Error Handling
//
// Every failed check returns an *ArgumentError carrying the argument name
// and a human-readable reason. All of them match the ErrInvalidArgument
// sentinel:
//
//	if errors.Is(err, guard.ErrInvalidArgument) {
//		// caller passed bad input
//	}
//
// # Concurrency Safety
//
// Checks are stateless apart from an internal cache of compiled regular
// expressions used by Matches, which is guarded by a mutex. All functions
// are safe for concurrent use.
package guard
