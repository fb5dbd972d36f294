// Package check provides error-returning assertions for use inside seeder
// bodies. Unlike a test helper it never stops anything itself: a failed
// check is returned as an ordinary error, which the engine records on the
// seeder's result.
package check

import (
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// Equal fails when want and got differ, embedding a go-cmp diff in the
// error message.
func Equal(want, got any) error {
	if diff := cmp.Diff(want, got); diff != "" {
		return fmt.Errorf("values differ (-want +got):\n%s", diff)
	}
	return nil
}

// Count fails when got does not equal want, naming what was counted.
func Count(what string, want, got int) error {
	if want != got {
		return fmt.Errorf("expected %d %s, got %d", want, what, got)
	}
	return nil
}

// NotEmpty fails when v is nil or has zero length (slices, maps, strings,
// channels, arrays).
func NotEmpty(what string, v any) error {
	if v == nil {
		return fmt.Errorf("%s is empty", what)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.String, reflect.Chan, reflect.Array:
		if rv.Len() == 0 {
			return fmt.Errorf("%s is empty", what)
		}
	}
	return nil
}
