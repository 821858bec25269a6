package schema

import "github.com/google/jsonschema-go/jsonschema"

// ToJSONSchema lowers a Shape to a *jsonschema.Schema document. This is a
// secondary, documentation-oriented lowering: ToRegex remains the
// authoritative description of the accepted wire form, but a JSON Schema
// is handy for tooling that wants a declarative view (editor validation,
// generated docs) rather than a regex to match against.
func ToJSONSchema(s Shape) *jsonschema.Schema {
	switch s.Kind {
	case KindBoolean:
		return booleanJSONSchema(s.BoolOptions)
	case KindInteger:
		return &jsonschema.Schema{Type: "integer"}
	case KindString:
		return &jsonschema.Schema{Type: "string", Pattern: s.Regex}
	case KindArray:
		item := ToJSONSchema(*s.Item)
		sch := &jsonschema.Schema{Type: "array", Items: item}
		if !s.AllowEmpty {
			sch.MinItems = jsonschema.Ptr(1)
		}
		return sch
	case KindObject:
		return objectJSONSchema(s)
	case KindUnion:
		alts := make([]*jsonschema.Schema, len(s.Alternatives))
		for i, a := range s.Alternatives {
			alts[i] = ToJSONSchema(a)
		}
		return &jsonschema.Schema{AnyOf: alts}
	default:
		return &jsonschema.Schema{}
	}
}

func booleanJSONSchema(options []bool) *jsonschema.Schema {
	if len(options) == 0 {
		return &jsonschema.Schema{Type: "boolean"}
	}

	enum := make([]any, len(options))
	for i, o := range options {
		enum[i] = o
	}

	return &jsonschema.Schema{Type: "boolean", Enum: enum}
}

func objectJSONSchema(s Shape) *jsonschema.Schema {
	props := make(map[string]*jsonschema.Schema, len(s.Fields))
	order := make([]string, len(s.Fields))
	required := make([]string, len(s.Fields))

	for i, f := range s.Fields {
		props[f.Key] = ToJSONSchema(f.Value)
		order[i] = f.Key
		required[i] = f.Key
	}

	return &jsonschema.Schema{
		Type:                 "object",
		Properties:           props,
		PropertyOrder:        order,
		Required:             required,
		AdditionalProperties: FalseSchema(),
	}
}

// TrueSchema returns a schema that validates everything.
func TrueSchema() *jsonschema.Schema {
	return &jsonschema.Schema{}
}

// FalseSchema returns a schema that validates nothing.
func FalseSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Not: &jsonschema.Schema{}}
}
