package attmaptest

import (
	"reflect"
	"testing"

	"github.com/llxisdsh/attmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAttMap_Seeded(t *testing.T) {
	for _, cls := range Classes {
		t.Run(cls.Name(), func(t *testing.T) {
			m := GetAttMap(t, cls, map[string]any{"a": 1})
			require.NotNil(t, m)
			assert.Equal(t, reflect.PointerTo(cls), reflect.TypeOf(m))
			v, err := m.Item("a")
			require.NoError(t, err)
			assert.Equal(t, 1, v)
		})
	}
}

func TestGetAttMap_Empty(t *testing.T) {
	for _, cls := range Classes {
		t.Run(cls.Name(), func(t *testing.T) {
			m := GetAttMap(t, cls, nil)
			require.NotNil(t, m)
			assert.True(t, m.IsZero())
			assert.Zero(t, m.Size())
			for i := 0; i < 20; i++ {
				assert.False(t, m.Contains(RandomStrKey()))
			}
		})
	}
}

func TestGetAttMap_FreshInstances(t *testing.T) {
	for _, cls := range Classes {
		a := GetAttMap(t, cls, nil)
		b := GetAttMap(t, cls, nil)
		a.SetItem("k", 1)
		assert.False(t, b.Contains("k"), cls.Name())
	}
}

func TestGetAttMap_PointerType(t *testing.T) {
	m := GetAttMap(t, reflect.TypeFor[*attmap.OrdAttMap](), map[string]any{"x": "y"})
	require.IsType(t, &attmap.OrdAttMap{}, m)
	assert.Equal(t, "y", m.Get("x", nil))
}

func TestGetAttMap_NestedKind(t *testing.T) {
	for _, cls := range Classes {
		m := GetAttMap(t, cls, map[string]any{"n": map[string]any{"k": 1}})
		n, err := m.Item("n")
		require.NoError(t, err)
		assert.Equal(t, reflect.PointerTo(cls), reflect.TypeOf(n), cls.Name())
	}
}

type notAMapping struct {
	entries map[string]any
}

func TestGetAttMap_CapabilityMismatch(t *testing.T) {
	for name, cls := range map[string]reflect.Type{
		"struct": reflect.TypeFor[notAMapping](),
		"map":    reflect.TypeFor[map[string]any](),
		"int":    reflect.TypeFor[int](),
		"nil":    nil,
	} {
		t.Run(name, func(t *testing.T) {
			rec := &recorder{}
			assert.Nil(t, GetAttMap(rec, cls, map[string]any{"a": 1}))
			assert.True(t, rec.failed)
			assert.True(t, rec.halted)
			assert.Contains(t, rec.msg, "does not implement")
		})
	}
}
