package attmap

import (
	"strings"

	"github.com/mitchellh/go-homedir"
)

// expandValue expands strings, and strings held directly in slices, leaving
// every other value untouched. Slices are copied, never modified in place.
func expandValue(value any, lookup func(string) (string, bool)) any {
	switch v := value.(type) {
	case string:
		return expandPath(v, lookup)
	case []string:
		out := make([]string, len(v))
		for i, s := range v {
			out[i] = expandPath(s, lookup)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			if s, ok := e.(string); ok {
				out[i] = expandPath(s, lookup)
			} else {
				out[i] = e
			}
		}
		return out
	}
	return value
}

// expandPath expands a leading ~ and environment variable references.
// Unset variables, ~user forms and malformed references are kept verbatim.
func expandPath(s string, lookup func(string) (string, bool)) string {
	if strings.HasPrefix(s, "~") {
		if p, err := homedir.Expand(s); err == nil {
			s = p
		}
	}
	if !strings.Contains(s, "$") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		j := strings.IndexByte(s[i:], '$')
		if j < 0 {
			b.WriteString(s[i:])
			break
		}
		j += i
		b.WriteString(s[i:j])
		name, end := varRef(s, j)
		v, ok := "", false
		if name != "" {
			v, ok = lookup(name)
		}
		if !ok {
			v = s[j:end]
		}
		b.WriteString(v)
		i = end
	}
	return b.String()
}

// varRef parses the $NAME or ${NAME} reference starting at s[i] == '$'.
// It returns the variable name and the index just past the reference.
// A lone '$' or an unclosed brace yields an empty name and consumes only
// the '$'.
func varRef(s string, i int) (name string, end int) {
	if i+1 < len(s) && s[i+1] == '{' {
		n := strings.IndexByte(s[i+2:], '}')
		if n < 0 {
			return "", i + 1
		}
		return s[i+2 : i+2+n], i + 3 + n
	}
	end = i + 1
	for end < len(s) && isNameByte(s[end]) {
		end++
	}
	return s[i+1 : end], end
}

func isNameByte(c byte) bool {
	return c == '_' || '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
