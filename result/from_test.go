package result_test

import (
	"fmt"
	"testing"

	"github.com/softwareventures/result/result"
	"github.com/stretchr/testify/require"
)

func TestFromWrapsReturnValue(t *testing.T) {
	r := result.From[any](func() int { return 42 })
	require.Equal(t, result.Ok[any](42), r)
}

func TestFromDiscardsPanicByDefault(t *testing.T) {
	r := result.From[any](func() int { panic("boom") })
	require.True(t, r.IsErr())
	require.Nil(t, r.UnwrapErr())
	require.Equal(t, "Err", r.String())
}

func TestFromRoutesPanicThroughCatch(t *testing.T) {
	r := result.From(func() int { panic("boom") }, func(caught any) string {
		return fmt.Sprint(caught)
	})
	require.Equal(t, result.Err[int]("boom"), r)
}

func TestFromCatchNotInvokedOnSuccess(t *testing.T) {
	calls := 0
	r := result.From(func() int { return 7 }, func(any) string {
		calls++
		return "unused"
	})
	require.Equal(t, result.Ok[string](7), r)
	require.Zero(t, calls)
}

func TestFromCatchPanicPropagates(t *testing.T) {
	v := recovered(func() {
		result.From(func() int { panic("boom") }, func(any) string {
			panic("catch failed")
		})
	})
	require.Equal(t, "catch failed", v)
}
