package attmaptest

import (
	"fmt"
	"math"
	"reflect"

	"github.com/llxisdsh/attmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestingT is the subset of testing.TB the helpers report through.
type TestingT = require.TestingT

type tHelper interface {
	Helper()
}

// AssertEntirelyEqual asserts that observed and expected are entirely equal
// (see EntirelyEqual). On mismatch it reports a failure and halts the test
// with t.FailNow.
func AssertEntirelyEqual(t TestingT, observed, expected any, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if EntirelyEqual(observed, expected) {
		return true
	}
	require.Fail(t, fmt.Sprintf("Not entirely equal: \n"+
		"expected: %#v\n"+
		"actual  : %#v", expected, observed), msgAndArgs...)
	return false
}

// EntirelyEqual reports whether observed and expected are equal, treating
// NaN as equal to NaN. Values that are not equal outright still match when
//   - both are NaN floats, of either width
//   - both are complex numbers of the same type whose parts match
//   - both are slices or arrays of the same type and length whose elements
//     all match
//   - both are maps of the same type, or attmap mappings, with the same keys
//     whose values all match
//
// Container types are compared strictly: []int{1} does not match []any{1}.
// An attmap mapping is compared as its ToMap result.
func EntirelyEqual(observed, expected any) bool {
	if assert.ObjectsAreEqual(expected, observed) {
		return true
	}
	if o, ok := observed.(attmap.AttMapLike); ok {
		observed = o.ToMap()
	}
	if e, ok := expected.(attmap.AttMapLike); ok {
		expected = e.ToMap()
	}
	ov, ev := reflect.ValueOf(observed), reflect.ValueOf(expected)
	if !ov.IsValid() || !ev.IsValid() {
		return false
	}
	switch okind, ekind := ov.Kind(), ev.Kind(); {
	case isFloat(okind) && isFloat(ekind):
		return math.IsNaN(ov.Float()) && math.IsNaN(ev.Float())
	case isComplex(okind) && isComplex(ekind):
		if ov.Type() != ev.Type() {
			return false
		}
		o, e := ov.Complex(), ev.Complex()
		return EntirelyEqual(real(o), real(e)) && EntirelyEqual(imag(o), imag(e))
	case isSeq(okind) && isSeq(ekind):
		if ov.Type() != ev.Type() || ov.Len() != ev.Len() {
			return false
		}
		for i := 0; i < ov.Len(); i++ {
			if !EntirelyEqual(ov.Index(i).Interface(), ev.Index(i).Interface()) {
				return false
			}
		}
		return true
	case okind == reflect.Map && ekind == reflect.Map:
		if ov.Type() != ev.Type() || ov.Len() != ev.Len() {
			return false
		}
		for it := ov.MapRange(); it.Next(); {
			e := ev.MapIndex(it.Key())
			if !e.IsValid() || !EntirelyEqual(it.Value().Interface(), e.Interface()) {
				return false
			}
		}
		return true
	}
	return false
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func isComplex(k reflect.Kind) bool {
	return k == reflect.Complex64 || k == reflect.Complex128
}

func isSeq(k reflect.Kind) bool {
	return k == reflect.Slice || k == reflect.Array
}
