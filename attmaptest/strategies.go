// Package attmaptest provides utilities for testing code built on attmap:
// randomized value strategies for property-based tests, a NaN-tolerant
// equality assertion, a factory for fresh mappings of any kind, and a
// predicate that uses subscript lookup for missing keys.
package attmaptest

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
)

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// TimeOfDayOf returns the time of day d after midnight. d is reduced
// modulo 24h.
func TimeOfDayOf(d time.Duration) TimeOfDay {
	d %= 24 * time.Hour
	if d < 0 {
		d += 24 * time.Hour
	}
	return TimeOfDay{
		Hour:       int(d / time.Hour),
		Minute:     int(d % time.Hour / time.Minute),
		Second:     int(d % time.Minute / time.Second),
		Nanosecond: int(d % time.Second),
	}
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d.%09d", t.Hour, t.Minute, t.Second, t.Nanosecond)
}

// Date is a calendar date without a time of day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// AtomicStrategies lists the single-value strategies combined by
// RandNonNull, simplest first.
var AtomicStrategies = []func() gopter.Gen{
	Booleans, Binary, Floats, Integers, Text, Characters, UUIDs,
	Emails, Timedeltas, Times, Dates, Datetimes, ComplexNumbers,
}

// Booleans generates bool values.
func Booleans() gopter.Gen {
	return gen.Bool()
}

// Binary generates []byte values, possibly empty.
func Binary() gopter.Gen {
	return gen.SliceOf(gen.UInt8())
}

// Floats generates float64 values including NaN, both infinities, and
// negative zero.
func Floats() gopter.Gen {
	return gen.Frequency(map[int]gopter.Gen{
		9: gen.Float64(),
		1: gen.OneConstOf(
			math.NaN(),
			math.Inf(1),
			math.Inf(-1),
			math.Copysign(0, -1),
			0.0,
			math.SmallestNonzeroFloat64,
			math.MaxFloat64,
		),
	})
}

// Integers generates int64 values.
func Integers() gopter.Gen {
	return gen.Int64()
}

// Text generates arbitrary strings.
func Text() gopter.Gen {
	return gen.AnyString()
}

// Characters generates single-rune strings.
func Characters() gopter.Gen {
	return gen.Rune().Map(func(r rune) string {
		return string(r)
	})
}

// UUIDs generates random (version 4) uuid.UUID values.
func UUIDs() gopter.Gen {
	return gen.SliceOfN(16, gen.UInt8()).Map(func(b []byte) uuid.UUID {
		var u uuid.UUID
		copy(u[:], b)
		u[6] = (u[6] & 0x0f) | 0x40
		u[8] = (u[8] & 0x3f) | 0x80
		return u
	})
}

// Emails generates strings of the form local@domain.tld.
func Emails() gopter.Gen {
	return gopter.CombineGens(
		gen.Identifier(),
		gen.Identifier(),
		gen.OneConstOf("com", "org", "net", "edu", "io"),
	).Map(func(parts []interface{}) string {
		return fmt.Sprintf("%s@%s.%s",
			parts[0], strings.ToLower(parts[1].(string)), parts[2])
	})
}

// Timedeltas generates time.Duration values of either sign.
func Timedeltas() gopter.Gen {
	return gen.Int64().Map(func(n int64) time.Duration {
		return time.Duration(n)
	})
}

// Times generates TimeOfDay values.
func Times() gopter.Gen {
	return gen.Int64Range(0, int64(24*time.Hour)-1).Map(func(n int64) TimeOfDay {
		return TimeOfDayOf(time.Duration(n))
	})
}

// Dates generates Date values between years 0 and 9999.
func Dates() gopter.Gen {
	return gen.Time().Map(func(t time.Time) Date {
		return DateOf(t)
	})
}

// Datetimes generates time.Time values between years 0 and 9999.
func Datetimes() gopter.Gen {
	return gen.Time()
}

// ComplexNumbers generates complex128 values.
func ComplexNumbers() gopter.Gen {
	return gen.Complex128()
}

// RandNonNull generates one non-nil value from a domain chosen uniformly
// among AtomicStrategies.
func RandNonNull() gopter.Gen {
	gens := make([]gopter.Gen, len(AtomicStrategies))
	for i, g := range AtomicStrategies {
		gens[i] = g()
	}
	return gen.OneGenOf(gens...)
}

// SampleNonNull draws a single value from RandNonNull outside of a
// property run.
func SampleNonNull() any {
	g := RandNonNull()
	for {
		if v, ok := g.Sample(); ok {
			return v
		}
	}
}
