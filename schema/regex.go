package schema

import "strings"

// ToRegex lowers a Shape to the regular expression string describing its
// exact textual shape. The lowering is purely structural: there is no
// regex optimization, and the result is intended for a general-purpose
// NFA/DFA backend that accepts alternation and repetition.
func ToRegex(s Shape) string {
	switch s.Kind {
	case KindBoolean:
		return booleanRegex(s.BoolOptions)
	case KindInteger:
		return "(" + trimParens(s.Regex) + ")"
	case KindString:
		return `"(` + s.Regex + `)"`
	case KindArray:
		return arrayRegex(s)
	case KindObject:
		return objectRegex(s)
	case KindUnion:
		return unionRegex(s)
	default:
		return ""
	}
}

func booleanRegex(options []bool) string {
	if len(options) == 0 {
		return "(true|false)"
	}

	hasTrue, hasFalse := false, false

	for _, o := range options {
		if o {
			hasTrue = true
		} else {
			hasFalse = true
		}
	}

	switch {
	case hasTrue && hasFalse:
		return "(true|false)"
	case hasTrue:
		return "(true)"
	default:
		return "(false)"
	}
}

// trimParens avoids double-wrapping a regex whose alternation
// IntegerWithOptions has already wrapped in parentheses.
func trimParens(r string) string {
	if strings.HasPrefix(r, "(") && strings.HasSuffix(r, ")") {
		return r[1 : len(r)-1]
	}

	return r
}

func arrayRegex(s Shape) string {
	inner := ToRegex(*s.Item)

	if s.AllowEmpty {
		return `\[(` + inner + `(, ` + inner + `)*)?\]`
	}

	return `\[` + inner + `(, ` + inner + `)*\]`
}

func objectRegex(s Shape) string {
	var b strings.Builder

	b.WriteString(`\{ `)

	for i, f := range s.Fields {
		if i > 0 {
			b.WriteString(`, `)
		}

		b.WriteString(`"`)
		b.WriteString(f.Key)
		b.WriteString(`": `)
		b.WriteString(ToRegex(f.Value))
	}

	b.WriteString(` \}`)

	return b.String()
}

func unionRegex(s Shape) string {
	parts := make([]string, len(s.Alternatives))

	for i, alt := range s.Alternatives {
		parts[i] = "(" + ToRegex(alt) + ")"
	}

	return "(" + strings.Join(parts, "|") + ")"
}
