package attmaptest

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/llxisdsh/attmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomStrKey(t *testing.T) {
	var upper, lower bool
	for i := 0; i < 2000; i++ {
		k := RandomStrKey()
		require.Len(t, k, 1)
		require.True(t, strings.Contains(asciiLetters, k), "unexpected key %q", k)
		upper = upper || strings.ToUpper(k) == k
		lower = lower || strings.ToLower(k) == k
	}
	assert.True(t, upper, "no upper-case keys drawn")
	assert.True(t, lower, "no lower-case keys drawn")
}

func TestStrKeys(t *testing.T) {
	properties := gopter.NewProperties(DefaultParameters())
	properties.Property("keys are single ASCII letters", prop.ForAll(
		func(k string) bool {
			return len(k) == 1 && strings.Contains(asciiLetters, k)
		},
		StrKeys(),
	))
	properties.TestingRun(t)
}

func TestDefaultParameters(t *testing.T) {
	assert.Equal(t, 100, DefaultParameters().MinSuccessfulTests)
	assert.Equal(t, 7, Parameters(7).MinSuccessfulTests)
}

func TestRaisesKeyErr(t *testing.T) {
	for _, cls := range Classes {
		t.Run(cls.Name(), func(t *testing.T) {
			properties := gopter.NewProperties(DefaultParameters())
			properties.Property("absent keys raise, present keys do not", prop.ForAll(
				func(present, other string) bool {
					m := GetAttMap(t, cls, map[string]any{present: 1})
					return !RaisesKeyErr(present, m) &&
						RaisesKeyErr(other, m) == (other != present)
				},
				StrKeys(),
				StrKeys(),
			))
			properties.Property("lookup agrees with containment", prop.ForAll(
				func(k string, v interface{}) bool {
					m := GetAttMap(t, cls, nil)
					before := RaisesKeyErr(k, m) && !m.Contains(k)
					m.SetItem(k, v)
					return before && !RaisesKeyErr(k, m) && m.Contains(k)
				},
				StrKeys(),
				RandNonNull(),
			))
			properties.TestingRun(t)
		})
	}
}

func TestRaisesKeyErr_EchoAttr(t *testing.T) {
	m := GetAttMap(t, Classes[3], nil)
	v, err := m.Attr("missing")
	require.NoError(t, err)
	assert.Equal(t, "missing", v)
	assert.True(t, RaisesKeyErr("missing", m))
}

// divergent answers containment independently of lookup.
type divergent struct{}

func (divergent) Item(key string) (any, error) {
	return nil, attmap.ErrKeyNotFound
}

func (divergent) Contains(string) bool {
	return true
}

func TestRaisesKeyErr_UsesLookupOnly(t *testing.T) {
	var m divergent
	require.True(t, m.Contains("k"))
	assert.True(t, RaisesKeyErr("k", m))
}

type failingLookup struct{}

func (failingLookup) Item(string) (any, error) {
	return nil, assert.AnError
}

func TestRaisesKeyErr_OtherErrors(t *testing.T) {
	assert.False(t, RaisesKeyErr("k", failingLookup{}))
}

func TestItem_RoundTripsGeneratedValues(t *testing.T) {
	// path-expanding kinds rewrite strings on read
	for _, cls := range Classes[:2] {
		t.Run(cls.Name(), func(t *testing.T) {
			properties := gopter.NewProperties(Parameters(200))
			properties.Property("stored values read back entirely equal", prop.ForAll(
				func(k string, v interface{}) bool {
					m := GetAttMap(t, cls, map[string]any{k: v})
					got, err := m.Item(k)
					return err == nil && EntirelyEqual(got, v)
				},
				StrKeys(),
				RandNonNull(),
			))
			properties.TestingRun(t)
		})
	}
}
