package attmap

import "testing"

func TestExpandPath(t *testing.T) {
	env := map[string]string{"A": "1", "LONG": "two"}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	for _, tc := range []struct {
		in, want string
	}{
		{"", ""},
		{"plain/path", "plain/path"},
		{"$A", "1"},
		{"${LONG}/x", "two/x"},
		{"$LONG$A", "two1"},
		{"$B", "$B"},
		{"${MISSING}", "${MISSING}"},
		{"price $5", "price $5"},
		{"~someone", "~someone"},
		{"$MISSING/x", "$MISSING/x"},
		{"${Z}", "${Z}"},
		{"${A}-${Z}", "1-${Z}"},
		{"a${}b", "a${}b"},
		{"${UNCLOSED", "${UNCLOSED"},
		{"${UNCLOSED $A", "${UNCLOSED 1"},
		{"cost: $", "cost: $"},
		{"$$A", "$1"},
		{"$A_B", "$A_B"},
		{"$A.txt", "1.txt"},
	} {
		if got := expandPath(tc.in, lookup); got != tc.want {
			t.Errorf("expandPath(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExpandValue_Untouched(t *testing.T) {
	lookup := func(string) (string, bool) { return "", false }
	for _, v := range []any{1, 2.5, true, nil, "plain"} {
		if got := expandValue(v, lookup); got != v {
			t.Errorf("expandValue(%v): got %v", v, got)
		}
	}
}
