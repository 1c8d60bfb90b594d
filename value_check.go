package sanity

import (
	"reflect"
	"strings"
)

// ValueOptions configures CheckValue.
type ValueOptions struct {
	// Target is the admissible value, or, with ExpandTarget set, a slice or
	// array of admissible alternatives.
	Target any

	// Complement interprets Target as prohibited rather than admissible.
	Complement bool

	// ExpandTarget treats a slice or array Target as a set of alternative
	// admissible values instead of one composite literal. Strings are always
	// scalar values, never sequences of alternatives.
	ExpandTarget bool

	// AllowNil makes an absent value pass without further checks.
	AllowNil bool

	// Equals replaces the default equality test (reflect.DeepEqual). The
	// value under check is always the first operand.
	Equals func(a, b any) bool

	// ErrorMessage overrides the default wording. Placeholders: {arg_name},
	// {arg_value}, {target_value}.
	ErrorMessage string
}

// CheckValue verifies that a value equals the admissible target, or one of
// the expanded alternatives, and returns a ValueMismatch error otherwise.
// Complement mode inverts the test: matching any prohibited target fails
// immediately, without scanning the remaining alternatives.
func CheckValue(argName string, value any, opts ValueOptions) error {
	if argName == "" {
		return newCheckError(ErrInvalidConstraint, argName, "the argument name must not be empty")
	}
	if opts.AllowNil && isAbsent(value) {
		return nil
	}

	eq := opts.Equals
	if eq == nil {
		eq = func(a, b any) bool { return reflect.DeepEqual(a, b) }
	}

	if !expandableTarget(opts) {
		if eq(value, opts.Target) != opts.Complement {
			return nil
		}
		relation := "equal to"
		if opts.Complement {
			relation = "different from"
		}
		return valueMismatch(argName, value, formatValue(opts.Target), relation, opts.ErrorMessage)
	}

	relation := "any of"
	if opts.Complement {
		relation = "distinct from"
	}
	targets := reflect.ValueOf(opts.Target)
	for i := 0; i < targets.Len(); i++ {
		if eq(value, targets.Index(i).Interface()) {
			if opts.Complement {
				return valueMismatch(argName, value, targetListName(targets), relation, opts.ErrorMessage)
			}
			return nil
		}
	}
	if opts.Complement {
		return nil
	}
	return valueMismatch(argName, value, targetListName(targets), relation, opts.ErrorMessage)
}

// expandableTarget reports whether the options call for testing the value
// against each element of the target rather than the target as a whole.
func expandableTarget(opts ValueOptions) bool {
	if !opts.ExpandTarget {
		return false
	}
	rt := reflect.ValueOf(opts.Target)
	return rt.IsValid() && (rt.Kind() == reflect.Slice || rt.Kind() == reflect.Array)
}

func targetListName(targets reflect.Value) string {
	names := make([]string, targets.Len())
	for i := 0; i < targets.Len(); i++ {
		names[i] = formatValue(targets.Index(i).Interface())
	}
	return "[" + strings.Join(names, ", ") + "]"
}

func valueMismatch(argName string, value any, target, relation, tmpl string) error {
	if tmpl == "" {
		tmpl = "The parameter <{arg_name}> has to be " + relation + " {target_value}, but is {arg_value}!"
	}
	return newCheckError(ErrValueMismatch, argName, expand(tmpl, map[string]string{
		"arg_name":     argName,
		"arg_value":    formatValue(value),
		"target_value": target,
	}))
}
