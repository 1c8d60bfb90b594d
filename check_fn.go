package sanity

import (
	"fmt"
	"reflect"
)

// ValueCheckFn curries CheckValue into a single-argument predicate suitable
// for IterableOptions.ElementCheck. Without an explicit ErrorMessage the
// wording refers to the elements of the named argument rather than the
// argument itself.
func ValueCheckFn(argName string, opts ValueOptions) func(element any) error {
	if opts.ErrorMessage == "" {
		relation := "equal to"
		if expandableTarget(opts) {
			relation = "any of"
			if opts.Complement {
				relation = "distinct from"
			}
		} else if opts.Complement {
			relation = "different from"
		}
		opts.ErrorMessage = "The elements of <{arg_name}> have to be " + relation + " {target_value}, but {arg_value} was encountered!"
	}
	return func(element any) error {
		return CheckValue(argName, element, opts)
	}
}

// RangeCheckFn curries CheckRange into a single-argument predicate suitable
// for IterableOptions.ElementCheck. Elements of any built-in numeric type
// are accepted and compared as float64; anything else fails with a
// TypeMismatch error.
func RangeCheckFn(argName string, opts RangeOptions[float64]) func(element any) error {
	return func(element any) error {
		f, ok := toFloat64(element)
		if !ok {
			return newCheckError(ErrTypeMismatch, argName,
				fmt.Sprintf("The elements of <%s> have to be numeric, but %s was encountered!", argName, typeNameOf(element)))
		}
		return CheckRange(argName, f, opts)
	}
}

func toFloat64(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
