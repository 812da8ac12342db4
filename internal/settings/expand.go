package settings

import (
	"strings"
)

// expandValue resolves environment-variable and tilde references inside a
// value, recursing into nested lists. The transform is pure: it returns a new
// value and never mutates the input. References to unset variables are left
// untouched so an already-expanded value passes through unchanged.
func expandValue(v Value, lookup func(string) (string, bool), home string) Value {
	switch v.Kind() {
	case KindString:
		return String(expandString(v.Text(), lookup, home))
	case KindList:
		items := v.Items()
		out := make([]Value, len(items))
		for i, item := range items {
			out[i] = expandValue(item, lookup, home)
		}
		return List(out...)
	default:
		return v
	}
}

func expandString(s string, lookup func(string) (string, bool), home string) string {
	s = expandHome(s, home)
	return expandVars(s, lookup)
}

// expandHome rewrites a leading "~" to the user's home directory. Bare "~"
// and "~/..." are recognized; "~user" forms are left alone.
func expandHome(s, home string) string {
	if home == "" || !strings.HasPrefix(s, "~") {
		return s
	}
	if s == "~" {
		return home
	}
	if strings.HasPrefix(s, "~/") {
		return home + s[1:]
	}
	return s
}

// expandVars substitutes $NAME and ${NAME} references. Unset variables keep
// their literal spelling, which also makes expansion idempotent.
func expandVars(s string, lookup func(string) (string, bool)) string {
	if !strings.Contains(s, "$") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '$' || i+1 == len(s) {
			b.WriteByte(s[i])
			i++
			continue
		}
		if s[i+1] == '{' {
			end := strings.IndexByte(s[i+2:], '}')
			if end < 0 {
				b.WriteString(s[i:])
				break
			}
			name := s[i+2 : i+2+end]
			if value, ok := lookupVar(name, lookup); ok {
				b.WriteString(value)
			} else {
				b.WriteString(s[i : i+3+end])
			}
			i += 3 + end
			continue
		}
		j := i + 1
		for j < len(s) && isVarByte(s[j]) {
			j++
		}
		if j == i+1 {
			b.WriteByte(s[i])
			i++
			continue
		}
		name := s[i+1 : j]
		if value, ok := lookup(name); ok {
			b.WriteString(value)
		} else {
			b.WriteString(s[i:j])
		}
		i = j
	}
	return b.String()
}

func lookupVar(name string, lookup func(string) (string, bool)) (string, bool) {
	if name == "" {
		return "", false
	}
	for i := 0; i < len(name); i++ {
		if !isVarByte(name[i]) {
			return "", false
		}
	}
	return lookup(name)
}

func isVarByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
