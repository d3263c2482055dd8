package attmaptest

import (
	"errors"
	"math/rand/v2"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/llxisdsh/attmap"
)

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RaisesKeyErr reports whether subscript lookup of k in m fails because
// the key is missing. It goes through Item only and never consults
// Contains, so it observes the lookup path even where the two diverge.
func RaisesKeyErr(k string, m attmap.Subscripter) bool {
	_, err := m.Item(k)
	return errors.Is(err, attmap.ErrKeyNotFound)
}

// RandomStrKey returns a single ASCII letter chosen uniformly at random.
func RandomStrKey() string {
	i := rand.IntN(len(asciiLetters))
	return asciiLetters[i : i+1]
}

// StrKeys generates the same keys as RandomStrKey.
func StrKeys() gopter.Gen {
	keys := make([]interface{}, len(asciiLetters))
	for i := range asciiLetters {
		keys[i] = asciiLetters[i : i+1]
	}
	return gen.OneConstOf(keys...)
}

// Parameters returns gopter test parameters requiring minSuccessfulTests
// passing runs.
func Parameters(minSuccessfulTests int) *gopter.TestParameters {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = minSuccessfulTests
	return params
}

// DefaultParameters returns gopter test parameters requiring 100 passing
// runs.
func DefaultParameters() *gopter.TestParameters {
	return Parameters(100)
}
