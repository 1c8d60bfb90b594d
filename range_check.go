package sanity

import "fmt"

// Numeric is the constraint satisfied by all built-in numeric types.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Bound returns a pointer to v, for use as a Min/Max/length bound.
func Bound[T Numeric](v T) *T {
	return &v
}

// RangeOptions configures CheckRange. At least one of Min and Max is
// required. Both bounds are inclusive unless the corresponding exclusivity
// flag is set.
type RangeOptions[T Numeric] struct {
	Min *T
	Max *T

	MinExclusive bool
	MaxExclusive bool

	// Complement interprets the interval as prohibited rather than
	// admissible.
	Complement bool

	// ErrorMessage overrides the default wording. Placeholders: {arg_name},
	// {arg_value}, {minimum}, {maximum}, {min_sym}, {max_sym}.
	ErrorMessage string
}

// CheckRange verifies that a numeric value lies within the configured
// interval, or outside it under complement mode, and returns a
// RangeViolation error otherwise.
func CheckRange[T Numeric](argName string, value T, opts RangeOptions[T]) error {
	if argName == "" {
		return newCheckError(ErrInvalidConstraint, argName, "the argument name must not be empty")
	}
	if opts.Min == nil && opts.Max == nil {
		return newCheckError(ErrInvalidConstraint, argName,
			fmt.Sprintf("at least one of the bounds has to be provided for <%s>", argName))
	}
	if opts.Min != nil && opts.Max != nil && *opts.Min > *opts.Max {
		return newCheckError(ErrInvalidConstraint, argName,
			fmt.Sprintf("the minimum must not be greater than the maximum, but %v > %v", *opts.Min, *opts.Max))
	}

	min, max := opts.Min, opts.Max
	minIncl, maxIncl := !opts.MinExclusive, !opts.MaxExclusive
	complement := opts.Complement

	// A one-sided complement folds into an equivalent one-sided check in the
	// opposite sense with negated inclusivity: "not >= min" is "< min".
	if complement {
		if min == nil {
			min, max = max, nil
			minIncl = !maxIncl
			complement = false
		} else if max == nil {
			max, min = min, nil
			maxIncl = !minIncl
			complement = false
		}
	}

	outOfRange := (min != nil && ((minIncl && value < *min) || (!minIncl && value <= *min))) ||
		(max != nil && ((maxIncl && value > *max) || (!maxIncl && value >= *max)))
	if complement {
		outOfRange = !outOfRange
	}
	if !outOfRange {
		return nil
	}

	var minSym, maxSym string
	if complement {
		minSym, maxSym = "<", ">"
		if !minIncl {
			minSym = "<="
		}
		if !maxIncl {
			maxSym = ">="
		}
	} else {
		minSym, maxSym = ">=", "<="
		if !minIncl {
			minSym = ">"
		}
		if !maxIncl {
			maxSym = "<"
		}
	}

	tmpl := opts.ErrorMessage
	if tmpl == "" {
		switch {
		case min == nil:
			tmpl = "The parameter <{arg_name}> has to be {max_sym} {maximum}, but is {arg_value}!"
		case max == nil:
			tmpl = "The parameter <{arg_name}> has to be {min_sym} {minimum}, but is {arg_value}!"
		case complement:
			tmpl = "The parameter <{arg_name}> has to be {min_sym} {minimum} or {max_sym} {maximum}, but is {arg_value}!"
		default:
			tmpl = "The parameter <{arg_name}> has to be {min_sym} {minimum} and {max_sym} {maximum}, but is {arg_value}!"
		}
	}

	vars := map[string]string{
		"arg_name":  argName,
		"arg_value": formatValue(value),
		"min_sym":   minSym,
		"max_sym":   maxSym,
		"minimum":   "<nil>",
		"maximum":   "<nil>",
	}
	if min != nil {
		vars["minimum"] = formatValue(*min)
	}
	if max != nil {
		vars["maximum"] = formatValue(*max)
	}
	return newCheckError(ErrRangeViolation, argName, expand(tmpl, vars))
}
