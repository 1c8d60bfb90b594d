package sanity

import (
	"fmt"
	"reflect"
	"strings"
)

// TypeOf returns the runtime type token for T. Unlike reflect.TypeOf on a
// value, it also works for interface types:
//
//	sanity.TypeOf[error]()
//	sanity.TypeOf[io.Reader]()
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// TypeOptions configures CheckType. The zero value is not usable: at least
// one admissible type has to be provided.
type TypeOptions struct {
	// Types lists the admissible types. A value passes if it is assignable
	// to any of them, which covers interface implementation the same way
	// subclassing does in dynamic languages.
	Types []reflect.Type

	// AllowNil makes an absent value (nil interface, typed nil pointer, nil
	// map or slice) pass without further checks.
	AllowNil bool

	// ErrorMessage overrides the default wording. Placeholders: {arg_name},
	// {target_type}, {arg_value_type}.
	ErrorMessage string
}

// CheckType verifies that a value is an instance of one of the admissible
// types and returns a TypeMismatch error naming the argument, the expected
// type(s), and the actual type otherwise.
func CheckType(argName string, value any, opts TypeOptions) error {
	if argName == "" {
		return newCheckError(ErrInvalidConstraint, argName, "the argument name must not be empty")
	}
	if len(opts.Types) == 0 {
		return newCheckError(ErrInvalidConstraint, argName,
			fmt.Sprintf("at least one admissible type has to be provided for <%s>", argName))
	}
	for _, t := range opts.Types {
		if t == nil {
			return newCheckError(ErrTypeMismatch, argName,
				fmt.Sprintf("the admissible types for <%s> contain a nil type token", argName))
		}
	}

	if isAbsent(value) && opts.AllowNil {
		return nil
	}
	if typeAdmissible(value, opts.Types) {
		return nil
	}

	tmpl := opts.ErrorMessage
	if tmpl == "" {
		if len(opts.Types) == 1 {
			tmpl = "The parameter <{arg_name}> has to be of type {target_type}, but has type {arg_value_type}!"
		} else {
			tmpl = "The type of parameter <{arg_name}> has to be any of {target_type}, but it has type {arg_value_type}!"
		}
	}
	return newCheckError(ErrTypeMismatch, argName, expand(tmpl, map[string]string{
		"arg_name":       argName,
		"target_type":    typeSetName(opts.Types),
		"arg_value_type": typeNameOf(value),
	}))
}

// typeAdmissible reports whether the dynamic type of value is assignable to
// any of the given types. A nil interface value has no dynamic type and is
// never admissible.
func typeAdmissible(value any, types []reflect.Type) bool {
	vt := reflect.TypeOf(value)
	if vt == nil {
		return false
	}
	for _, t := range types {
		if t != nil && vt.AssignableTo(t) {
			return true
		}
	}
	return false
}

// isAbsent reports whether a value counts as "no value provided": the nil
// interface or any nil-able kind holding nil.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// typeNameOf retrieves the fully qualified name of a value's dynamic type.
func typeNameOf(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

func typeSetName(types []reflect.Type) string {
	if len(types) == 1 {
		return types[0].String()
	}
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}
