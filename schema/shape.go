// Package schema implements the small closed JSON-shape algebra used to
// describe the exact textual form of the next expected input line, and its
// lowering to a regular expression (and, secondarily, to a JSON Schema
// document for debugging and documentation).
package schema

import (
	"strconv"
	"strings"
)

// Kind discriminates the variants of Shape.
type Kind int

const (
	KindBoolean Kind = iota
	KindInteger
	KindString
	KindArray
	KindObject
	KindUnion
)

// Field is one named entry of an Object shape. Order is significant: it is
// the order keys are emitted in both the regex and the JSON Schema's
// property order.
type Field struct {
	Key   string
	Value Shape
}

// Shape is a node in the JSON-shape algebra: Boolean, Integer, String,
// Array, Object, or Union. Only the fields relevant to Kind are populated.
type Shape struct {
	Kind Kind

	// Boolean
	BoolOptions []bool

	// Integer, String: a pre-built digit/character regex, unparenthesized
	// (except IntegerWithOptions, which stores its alternation in parentheses).
	Regex string

	// Array
	Item       *Shape
	AllowEmpty bool

	// Object
	Fields []Field

	// Union
	Alternatives []Shape
}

// Boolean returns a shape accepting any of options (true, false, or both).
func Boolean(options ...bool) Shape {
	return Shape{Kind: KindBoolean, BoolOptions: options}
}

// Integer returns the default unbounded integer shape: [1-9]\d+, a nonzero
// digit followed by at least one more digit, so single-digit values do not
// match.
func Integer() Shape {
	return Shape{Kind: KindInteger, Regex: `[1-9]\d+`}
}

// IntegerWithRegex returns a shape wrapping an arbitrary digit regex,
// unparenthesized, for cases the fixed-width helpers don't cover (a
// field constrained to a specific digit count, for instance).
func IntegerWithRegex(regex string) Shape {
	return Shape{Kind: KindInteger, Regex: regex}
}

// IntegerMaxDigits returns a shape accepting positive integers of at most n
// digits: [1-9]\d{0,n-1}.
func IntegerMaxDigits(n int) Shape {
	return Shape{Kind: KindInteger, Regex: `[1-9]\d{0,` + strconv.Itoa(n-1) + `}`}
}

// IntegerWithOptions returns a shape accepting exactly the given integer
// values, rendered as a literal alternation.
func IntegerWithOptions(values ...int) Shape {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}

	return Shape{Kind: KindInteger, Regex: "(" + strings.Join(parts, "|") + ")"}
}

// String returns a shape wrapping regex in the quoted-string form.
func String(regex string) Shape {
	return Shape{Kind: KindString, Regex: regex}
}

// Array returns a non-empty array shape over item.
func Array(item Shape) Shape {
	return Shape{Kind: KindArray, Item: &item}
}

// ArrayAllowEmpty returns an array shape over item that also accepts the
// empty array, for contexts (the movements line) where zero elements is
// legal.
func ArrayAllowEmpty(item Shape) Shape {
	return Shape{Kind: KindArray, Item: &item, AllowEmpty: true}
}

// Object returns an object shape with the given fields, in declaration
// order.
func Object(fields ...Field) Shape {
	return Shape{Kind: KindObject, Fields: fields}
}

// NewField constructs one Object field.
func NewField(key string, value Shape) Field {
	return Field{Key: key, Value: value}
}

// Union returns a shape accepting any one of alternatives.
func Union(alternatives ...Shape) Shape {
	return Shape{Kind: KindUnion, Alternatives: alternatives}
}
