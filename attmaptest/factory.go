package attmaptest

import (
	"fmt"
	"reflect"

	"github.com/llxisdsh/attmap"
	"github.com/stretchr/testify/require"
)

var attMapLikeType = reflect.TypeFor[attmap.AttMapLike]()

// Classes lists every mapping kind in package attmap, for table-driven
// tests that should hold for all of them.
var Classes = []reflect.Type{
	reflect.TypeFor[attmap.AttMap](),
	reflect.TypeFor[attmap.OrdAttMap](),
	reflect.TypeFor[attmap.PathExAttMap](),
	reflect.TypeFor[attmap.EchoAttMap](),
}

// GetAttMap creates a fresh mapping of kind cls holding entries, or an
// empty one when entries is nil. cls must be a type whose pointer
// implements attmap.AttMapLike (a pointer type is accepted too). Any other
// type fails the test and GetAttMap returns nil.
func GetAttMap(t TestingT, cls reflect.Type, entries map[string]any) attmap.AttMapLike {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if cls != nil && cls.Kind() == reflect.Pointer {
		cls = cls.Elem()
	}
	if cls == nil || !reflect.PointerTo(cls).Implements(attMapLikeType) {
		require.Fail(t, fmt.Sprintf("%v does not implement %v", cls, attMapLikeType))
		return nil
	}
	m := reflect.New(cls).Interface().(attmap.AttMapLike)
	m.Init(entries)
	return m
}
