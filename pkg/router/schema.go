package router

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"
)

var (
	timeType          = reflect.TypeOf(time.Time{})
	rawMessageType    = reflect.TypeOf(json.RawMessage{})
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

// schemaRegistry tracks named schema definitions so they are emitted once
// under components and referenced everywhere else
type schemaRegistry struct {
	schemas map[string]map[string]any
}

// newSchemaRegistry creates a new schema registry
func newSchemaRegistry() *schemaRegistry {
	return &schemaRegistry{
		schemas: make(map[string]map[string]any),
	}
}

// register adds a schema to the registry
func (r *schemaRegistry) register(typeName string, schema map[string]any) {
	r.schemas[typeName] = schema
}

// has reports whether typeName is registered
func (r *schemaRegistry) has(typeName string) bool {
	_, ok := r.schemas[typeName]
	return ok
}

// schemaGenerator converts Go types to JSON Schema. Named struct types are
// registered as components and replaced by a $ref.
type schemaGenerator struct {
	registry *schemaRegistry
}

// newSchemaGenerator creates a new schema generator
func newSchemaGenerator() *schemaGenerator {
	return &schemaGenerator{registry: newSchemaRegistry()}
}

// schemaFor returns the schema of v's type, or nil for a nil value
func (g *schemaGenerator) schemaFor(v any) map[string]any {
	if v == nil {
		return nil
	}
	return g.schemaOf(reflect.TypeOf(v))
}

// schemaOf converts a Go type to a JSON Schema
func (g *schemaGenerator) schemaOf(typ reflect.Type) map[string]any {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	// special types first; time.Time is itself a TextMarshaler
	switch {
	case typ == timeType:
		return map[string]any{"type": "string", "format": "date-time"}
	case typ == rawMessageType:
		return map[string]any{"type": "object"}
	case typ.Implements(textMarshalerType) || reflect.PointerTo(typ).Implements(textMarshalerType):
		return map[string]any{"type": "string"}
	}

	if schema := basicTypeSchema(typ.Kind()); schema != nil {
		return schema
	}

	switch typ.Kind() {
	case reflect.Struct:
		if typ.Name() == "" {
			return g.structSchema(typ)
		}
		return g.ref(typ)
	case reflect.Slice, reflect.Array:
		return map[string]any{
			"type":  "array",
			"items": g.schemaOf(typ.Elem()),
		}
	case reflect.Map:
		return map[string]any{
			"type":                 "object",
			"additionalProperties": g.schemaOf(typ.Elem()),
		}
	default:
		return map[string]any{"type": "object"}
	}
}

// ref registers a named struct type and returns a reference to it. The name
// is reserved before the fields are walked, so self-referencing types end in
// a $ref instead of recursing.
func (g *schemaGenerator) ref(typ reflect.Type) map[string]any {
	name := typ.Name()
	if !g.registry.has(name) {
		g.registry.register(name, nil)
		g.registry.register(name, g.structSchema(typ))
	}

	return map[string]any{
		"$ref": fmt.Sprintf("#/components/schemas/%s", name),
	}
}

// structSchema converts a struct type to an object schema
func (g *schemaGenerator) structSchema(typ reflect.Type) map[string]any {
	properties := make(map[string]any)
	required := []string{}

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)

		// skip unexported fields
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}

		name, isRequired := parseJsonTag(jsonTag, field.Name)
		if isRequired {
			required = append(required, name)
		}

		fieldSchema := g.schemaOf(field.Type)
		if _, isRef := fieldSchema["$ref"]; !isRef {
			addFieldMetadata(fieldSchema, field)
		}
		properties[name] = fieldSchema
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}

	if len(required) > 0 {
		schema["required"] = required
	}

	return schema
}

// parseJsonTag extracts name and required status from a json tag
func parseJsonTag(jsonTag, fieldName string) (string, bool) {
	if jsonTag == "" {
		return fieldName, true
	}

	parts := strings.Split(jsonTag, ",")
	name := parts[0]
	if name == "" {
		name = fieldName
	}

	return name, !slices.Contains(parts[1:], "omitempty")
}

// addFieldMetadata adds documentation from struct tags to a schema
func addFieldMetadata(schema map[string]any, field reflect.StructField) {
	if docTag := field.Tag.Get("doc"); docTag != "" {
		schema["description"] = docTag
	}

	if exampleTag := field.Tag.Get("example"); exampleTag != "" {
		schema["example"] = exampleTag
	}

	if enumTag := field.Tag.Get("enum"); enumTag != "" {
		schema["enum"] = strings.Split(enumTag, ",")
	}
}

// basicTypeSchema creates a schema for a basic Go type
func basicTypeSchema(kind reflect.Kind) map[string]any {
	switch kind {
	case reflect.Bool:
		return map[string]any{"type": "boolean"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return map[string]any{"type": "integer"}
	case reflect.Float32, reflect.Float64:
		return map[string]any{"type": "number"}
	case reflect.String:
		return map[string]any{"type": "string"}
	default:
		return nil
	}
}
