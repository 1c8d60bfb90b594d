package sanity

import (
	"errors"
	"fmt"
	"reflect"
)

// IterableOptions configures CheckIterable. At least one of ElementTypes,
// TargetLength, MinLength, MaxLength, and ElementCheck is required; an
// unconstrained check is meaningless.
type IterableOptions struct {
	// ElementTypes lists the admissible types for the elements.
	ElementTypes []reflect.Type

	// TargetLength is the exact length the collection has to have. It cannot
	// be combined with MinLength or MaxLength.
	TargetLength *int

	// MinLength and MaxLength bound the collection's length, both inclusive.
	MinLength *int
	MaxLength *int

	// AllowNil makes an absent collection pass without further checks.
	AllowNil bool

	// AllowNilElements permits nil elements. Nil elements are exempt from
	// the element type check and are never passed to ElementCheck.
	AllowNilElements bool

	// ElementCheck is applied to every non-nil element; its first failure is
	// surfaced with the failure's own message embedded.
	ElementCheck func(element any) error

	// ErrorMessage overrides the default wording of every failure raised by
	// this check. Placeholders: {arg_name}, {arg_value}, {arg_value_type},
	// {target_type}, {target_value}, {minimum}, {maximum}, {cause}.
	ErrorMessage string
}

// CheckIterable verifies a collection (slice, array, or map) as well as its
// elements, composing the type, value, and range checks. The phases run in a
// fixed order: nil-element screening, element types, length, and finally the
// custom element check.
func CheckIterable(argName string, value any, opts IterableOptions) error {
	if argName == "" {
		return newCheckError(ErrInvalidConstraint, argName, "the argument name must not be empty")
	}
	for _, t := range opts.ElementTypes {
		if t == nil {
			return newCheckError(ErrTypeMismatch, argName,
				fmt.Sprintf("the admissible element types for <%s> contain a nil type token", argName))
		}
	}
	if len(opts.ElementTypes) == 0 && opts.TargetLength == nil &&
		opts.MinLength == nil && opts.MaxLength == nil && opts.ElementCheck == nil {
		return newCheckError(ErrInvalidConstraint, argName,
			fmt.Sprintf("at least one of the element types, the target length, the length bounds, and the element check has to be specified for <%s>", argName))
	}
	if opts.TargetLength != nil && (opts.MinLength != nil || opts.MaxLength != nil) {
		return newCheckError(ErrInvalidConstraint, argName,
			fmt.Sprintf("the target length for <%s> cannot be combined with a minimum or maximum length", argName))
	}
	for _, l := range []struct {
		name  string
		bound *int
	}{
		{"target", opts.TargetLength},
		{"minimum", opts.MinLength},
		{"maximum", opts.MaxLength},
	} {
		if l.bound != nil && *l.bound < 0 {
			return newCheckError(ErrInvalidConstraint, argName,
				fmt.Sprintf("the %s length for <%s> must not be negative, but is %d", l.name, argName, *l.bound))
		}
	}

	if isAbsent(value) {
		if opts.AllowNil {
			return nil
		}
		return newCheckError(ErrTypeMismatch, argName,
			expand("The parameter <{arg_name}> has to be iterable, but is {arg_value_type}!",
				map[string]string{"arg_name": argName, "arg_value_type": typeNameOf(value)}))
	}

	elems, ok := elementsOf(value)
	if !ok {
		return newCheckError(ErrTypeMismatch, argName,
			expand("The parameter <{arg_name}> has to be iterable, but has type {arg_value_type}!",
				map[string]string{"arg_name": argName, "arg_value_type": typeNameOf(value)}))
	}

	// Phase 1: nil elements stop everything else.
	if !opts.AllowNilElements {
		for _, e := range elems {
			if isAbsent(e) {
				tmpl := opts.ErrorMessage
				if tmpl == "" {
					tmpl = "The elements of <{arg_name}> must not be nil!"
				}
				return newCheckError(ErrNilElement, argName,
					expand(tmpl, map[string]string{"arg_name": argName}))
			}
		}
	}

	// Phase 2: element types.
	if len(opts.ElementTypes) > 0 {
		tmpl := opts.ErrorMessage
		if tmpl == "" {
			if len(opts.ElementTypes) == 1 {
				tmpl = "The type of the elements of <{arg_name}> has to be {target_type}, but {arg_value_type} was encountered!"
			} else {
				tmpl = "The types of the elements of <{arg_name}> have to be any of {target_type}, but {arg_value_type} was encountered!"
			}
		}
		for _, e := range elems {
			if isAbsent(e) && opts.AllowNilElements {
				continue
			}
			if !typeAdmissible(e, opts.ElementTypes) {
				return newCheckError(ErrTypeMismatch, argName, expand(tmpl, map[string]string{
					"arg_name":       argName,
					"target_type":    typeSetName(opts.ElementTypes),
					"arg_value_type": typeNameOf(e),
				}))
			}
		}
	}

	// Phase 3: length, reusing the value and range check logic.
	if opts.TargetLength != nil {
		tmpl := opts.ErrorMessage
		if tmpl == "" {
			tmpl = "The parameter <{arg_name}> has to be of length {target_value}, but has {arg_value} elements!"
		}
		err := CheckValue(argName, len(elems), ValueOptions{Target: *opts.TargetLength, ErrorMessage: tmpl})
		if err := asLengthViolation(err); err != nil {
			return err
		}
	}
	if opts.MinLength != nil || opts.MaxLength != nil {
		tmpl := opts.ErrorMessage
		if tmpl == "" {
			switch {
			case opts.MinLength == nil:
				tmpl = "The length of parameter <{arg_name}> has to be <= {maximum}, but is {arg_value}!"
			case opts.MaxLength == nil:
				tmpl = "The length of parameter <{arg_name}> has to be >= {minimum}, but is {arg_value}!"
			default:
				tmpl = "The length of parameter <{arg_name}> has to be >= {minimum} and <= {maximum}, but is {arg_value}!"
			}
		}
		err := CheckRange(argName, len(elems), RangeOptions[int]{
			Min:          opts.MinLength,
			Max:          opts.MaxLength,
			ErrorMessage: tmpl,
		})
		if err := asLengthViolation(err); err != nil {
			return err
		}
	}

	// Phase 4: custom element check; nil elements are exempt.
	if opts.ElementCheck != nil {
		for _, e := range elems {
			if isAbsent(e) {
				continue
			}
			if cause := opts.ElementCheck(e); cause != nil {
				tmpl := opts.ErrorMessage
				if tmpl == "" {
					tmpl = "The parameter <{arg_name}> contains illegal elements: {cause}"
				}
				return &CheckError{
					Arg:  argName,
					Kind: ErrElementCheckFailed,
					Message: expand(tmpl, map[string]string{
						"arg_name": argName,
						"cause":    cause.Error(),
					}),
					Cause: cause,
				}
			}
		}
	}

	return nil
}

// elementsOf flattens the supported collection kinds into a slice of
// elements. Map values are checked, not keys.
func elementsOf(value any) ([]any, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		elems := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			elems[i] = rv.Index(i).Interface()
		}
		return elems, true
	case reflect.Map:
		elems := make([]any, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			elems = append(elems, iter.Value().Interface())
		}
		return elems, true
	default:
		return nil, false
	}
}

// asLengthViolation reclassifies a value or range failure on a collection's
// length as a LengthViolation; configuration errors pass through unchanged.
func asLengthViolation(err error) error {
	if err == nil {
		return nil
	}
	var ce *CheckError
	if errors.As(err, &ce) && (errors.Is(err, ErrValueMismatch) || errors.Is(err, ErrRangeViolation)) {
		return newCheckError(ErrLengthViolation, ce.Arg, ce.Message)
	}
	return err
}
