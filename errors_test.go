package sanity_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sanity"
)

func TestCheckErrorClassification(t *testing.T) {
	t.Parallel()
	t.Run("every failure matches exactly one sentinel", func(t *testing.T) {
		sentinels := []error{
			sanity.ErrInvalidConstraint,
			sanity.ErrTypeMismatch,
			sanity.ErrRangeViolation,
			sanity.ErrValueMismatch,
			sanity.ErrNilElement,
			sanity.ErrLengthViolation,
			sanity.ErrElementCheckFailed,
		}
		failures := []struct {
			err  error
			want error
		}{
			{sanity.CheckRange("n", 5, sanity.RangeOptions[int]{}), sanity.ErrInvalidConstraint},
			{sanity.CheckType("n", "5", sanity.TypeOptions{Types: []reflect.Type{sanity.TypeOf[int]()}}), sanity.ErrTypeMismatch},
			{sanity.CheckRange("n", 5, sanity.RangeOptions[int]{Max: sanity.Bound(3)}), sanity.ErrRangeViolation},
			{sanity.CheckValue("n", 5, sanity.ValueOptions{Target: 3}), sanity.ErrValueMismatch},
			{sanity.CheckIterable("n", []any{nil}, sanity.IterableOptions{TargetLength: sanity.Bound(1)}), sanity.ErrNilElement},
			{sanity.CheckIterable("n", []int{1}, sanity.IterableOptions{TargetLength: sanity.Bound(2)}), sanity.ErrLengthViolation},
			{sanity.CheckIterable("n", []int{1}, sanity.IterableOptions{
				ElementCheck: func(any) error { return errors.New("no") },
			}), sanity.ErrElementCheckFailed},
		}
		for _, tc := range failures {
			require.Error(t, tc.err)
			for _, sentinel := range sentinels {
				if sentinel == tc.want {
					assert.ErrorIs(t, tc.err, sentinel)
				} else {
					assert.NotErrorIs(t, tc.err, sentinel)
				}
			}
		}
	})

	t.Run("element check failures also match their cause", func(t *testing.T) {
		cause := errors.New("below the waterline")
		err := sanity.CheckIterable("n", []int{1}, sanity.IterableOptions{
			ElementCheck: func(any) error { return cause },
		})
		assert.ErrorIs(t, err, sanity.ErrElementCheckFailed)
		assert.ErrorIs(t, err, cause)

		var ce *sanity.CheckError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, cause, ce.Cause)
	})

	t.Run("message is the error text", func(t *testing.T) {
		err := sanity.CheckValue("n", 4, sanity.ValueOptions{Target: 5})
		var ce *sanity.CheckError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, ce.Message, err.Error())
		assert.Equal(t, "n", ce.Arg)
	})

	t.Run("unknown placeholders survive custom templates", func(t *testing.T) {
		err := sanity.CheckValue("n", 4, sanity.ValueOptions{
			Target:       5,
			ErrorMessage: "{arg_name} is {arg_value}, {unknown} stays",
		})
		require.Error(t, err)
		assert.Equal(t, "n is 4, {unknown} stays", err.Error())
	})
}
