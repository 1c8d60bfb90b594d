// Package sanity provides composable sanity checks for function arguments:
// type membership, numeric ranges, admissible values, and collection shape.
// The checks are meant to be called at the top of a function to replace
// ad-hoc if-chains with declarative assertions and uniform, descriptive
// error messages.
//
// # Architecture
//
// Each source file implements one check family (`type_check.go`,
// `range_check.go`, `value_check.go`, `iterable_check.go`) plus the
// factories in `check_fn.go` that curry the range and value checks into
// per-element predicates for CheckIterable. Every check is a pure function
// from its inputs to nil-or-error; there is no hidden state, so the package
// is completely stateless, allocation-light, and goroutine-safe.
//
// Core building blocks:
//   - CheckError         – structured failure with a fixed classification
//   - sentinel errors    – one per failure kind, matched via errors.Is
//   - options structs    – per-check configuration passed by value
//   - Numeric interface  – generic constraint used by the range check
//
// # Usage
//
//	func NewWorkerPool(size int, backends []string) (*WorkerPool, error) {
//	    if err := sanity.CheckRange("size", size, sanity.RangeOptions[int]{
//	        Min: sanity.Bound(1),
//	        Max: sanity.Bound(512),
//	    }); err != nil {
//	        return nil, err
//	    }
//	    if err := sanity.CheckIterable("backends", backends, sanity.IterableOptions{
//	        ElementTypes: []reflect.Type{sanity.TypeOf[string]()},
//	        MinLength:    sanity.Bound(1),
//	    }); err != nil {
//	        return nil, err
//	    }
//	    ...
//	}
//
// # Error Handling
//
// Every failure is returned immediately to the caller as a *CheckError
// whose Kind is one of the package sentinels (ErrTypeMismatch,
// ErrRangeViolation, ErrValueMismatch, ErrNilElement, ErrLengthViolation,
// ErrElementCheckFailed, ErrInvalidConstraint), reachable through
// errors.Is. Messages always name the offending argument and the actual vs
// expected value or type. Callers may override the wording through the
// ErrorMessage template of each options struct, using {name} placeholders,
// but never the classification.
//
// # Performance Considerations
//
// The checks allocate only transient strings for error messages. Expensive
// per-element work belongs in the caller-supplied element check, which is
// invoked synchronously.
package sanity
