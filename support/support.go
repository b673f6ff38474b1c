// Package support implements the primitives compiled messages call into at format time
// and renders their JavaScript counterparts into a minimal bundle.
package support

import (
	"errors"
	"github.com/lus/messageformat.go/plurals"
)

// Names of the runtime helpers as referenced by compiled messages
const (
	HelperNumber       = "number"
	HelperStrictNumber = "strictNumber"
	HelperPlural       = "plural"
	HelperSelect       = "select"
)

// Cases maps case keys to thunks producing the output of the case's sub-message.
// Exact-match keys are stored without their leading '='.
type Cases map[string]func() (string, error)

// errNoOther is only returned for hand-built Cases; compiled messages always carry an "other" case
var errNoOther = errors.New("no 'other' case to fall back to")

// Number applies a plural offset to the value of a '#'.
// A zero offset returns the value unchanged without looking at it.
func Number(value any, name string, offset float64) (any, error) {
	if offset == 0 {
		return value, nil
	}
	n, ok := ToNumber(value)
	if !ok {
		return nil, &TypeError{Name: name, Value: value, Offset: offset}
	}
	return n - offset, nil
}

// StrictNumber is like Number but rejects non-numeric values regardless of the offset
func StrictNumber(value any, name string, offset float64) (any, error) {
	n, ok := ToNumber(value)
	if !ok {
		return nil, &TypeError{Name: name, Value: value, Offset: offset}
	}
	if offset == 0 {
		return value, nil
	}
	return n - offset, nil
}

// Plural selects the case of a plural or selectordinal block.
// An exact match on the unadjusted value wins over the plural category of the value minus the offset.
func Plural(value any, offset float64, fn plurals.Func, cases Cases, ordinal bool) (string, error) {
	if value != nil {
		if thunk, ok := cases[Display(value)]; ok {
			return thunk()
		}
	}

	n, ok := ToNumber(value)
	if !ok {
		if offset != 0 {
			return "", &TypeError{Value: value, Offset: offset}
		}
		return other(cases)
	}

	if thunk, ok := cases[fn(n-offset, ordinal)]; ok {
		return thunk()
	}
	return other(cases)
}

// Select selects the case whose key equals the string value; anything else selects "other"
func Select(value any, cases Cases) (string, error) {
	if key, ok := value.(string); ok {
		if thunk, ok := cases[key]; ok {
			return thunk()
		}
	}
	return other(cases)
}

func other(cases Cases) (string, error) {
	thunk, ok := cases["other"]
	if !ok {
		return "", errNoOther
	}
	return thunk()
}
