package schema

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// JSONSchema is the subset of a JSON Schema document the generator emits.
type JSONSchema struct {
	Schema      string                 `json:"$schema,omitempty"`
	ID          string                 `json:"$id,omitempty"`
	Title       string                 `json:"title,omitempty"`
	Description string                 `json:"description,omitempty"`
	Type        string                 `json:"type"`
	Required    []string               `json:"required,omitempty"`
	Properties  map[string]*JSONSchema `json:"properties,omitempty"`
	Items       *JSONSchema            `json:"items,omitempty"`
	Enum        []any                  `json:"enum,omitempty"`
	Default     any                    `json:"default,omitempty"`
	Pattern     string                 `json:"pattern,omitempty"`
	MinLength   *int                   `json:"minLength,omitempty"`
	MinItems    *int                   `json:"minItems,omitempty"`
	Minimum     *int                   `json:"minimum,omitempty"`
}

const schemaRef = "https://json-schema.org/draft/2020-12/schema"

var textMarshaler = reflect.TypeFor[encoding.TextMarshaler]()

// Generator builds JSON schemas from Go structs. Field names come from the
// tag named by TagKey, so the same type can be described as it appears in
// YAML or JSON documents.
type Generator struct {
	TagKey  string
	BaseURL string
}

func NewGenerator(tagKey, baseURL string) *Generator {
	return &Generator{TagKey: tagKey, BaseURL: strings.TrimSuffix(baseURL, "/")}
}

// Generate returns the schema for v's type with root metadata filled in.
func (g *Generator) Generate(v any, title, description string) (*JSONSchema, error) {
	s, err := g.forType(reflect.TypeOf(v))
	if err != nil {
		return nil, err
	}
	s.Schema = schemaRef
	s.Title = title
	s.Description = description
	if g.BaseURL != "" {
		s.ID = fmt.Sprintf("%s/%s.json", g.BaseURL, strings.ToLower(title))
	}
	return s, nil
}

func (g *Generator) GenerateJSON(v any, title, description string) ([]byte, error) {
	s, err := g.Generate(v, title, description)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}

func (g *Generator) forType(t reflect.Type) (*JSONSchema, error) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	// Types with their own text form are strings in the document.
	if t.Implements(textMarshaler) || reflect.PointerTo(t).Implements(textMarshaler) {
		return &JSONSchema{Type: "string"}, nil
	}

	switch t.Kind() {
	case reflect.Struct:
		return g.forStruct(t)
	case reflect.Slice, reflect.Array:
		items, err := g.forType(t.Elem())
		if err != nil {
			return nil, fmt.Errorf("array items: %w", err)
		}
		return &JSONSchema{Type: "array", Items: items}, nil
	case reflect.String:
		return &JSONSchema{Type: "string"}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &JSONSchema{Type: "integer"}, nil
	case reflect.Float32, reflect.Float64:
		return &JSONSchema{Type: "number"}, nil
	case reflect.Bool:
		return &JSONSchema{Type: "boolean"}, nil
	default:
		return nil, fmt.Errorf("unsupported type: %s", t.Kind())
	}
}

func (g *Generator) forStruct(t reflect.Type) (*JSONSchema, error) {
	s := &JSONSchema{Type: "object", Properties: make(map[string]*JSONSchema)}

	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := g.fieldName(field)
		if name == "" {
			continue
		}

		fs, err := g.forType(field.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		if desc := field.Tag.Get("description"); desc != "" {
			fs.Description = desc
		}
		if tag := field.Tag.Get("schema"); tag != "" {
			if applyTag(tag, fs) {
				s.Required = append(s.Required, name)
			}
		}
		s.Properties[name] = fs
	}
	return s, nil
}

func (g *Generator) fieldName(field reflect.StructField) string {
	tag := field.Tag.Get(g.TagKey)
	if tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return strings.ToLower(field.Name[:1]) + field.Name[1:]
	}
	return name
}

// applyTag reads a comma separated schema tag into s and reports whether the
// field is required.
func applyTag(tag string, s *JSONSchema) bool {
	required := false
	for _, part := range strings.Split(tag, ",") {
		key, val, _ := strings.Cut(strings.TrimSpace(part), "=")
		switch key {
		case "required":
			required = true
		case "enum":
			for _, e := range strings.Split(val, "|") {
				s.Enum = append(s.Enum, e)
			}
		case "default":
			s.Default = val
		case "pattern":
			s.Pattern = val
		case "minLength":
			s.MinLength = atoiPtr(val)
		case "minItems":
			s.MinItems = atoiPtr(val)
		case "minimum":
			s.Minimum = atoiPtr(val)
		}
	}
	return required
}

func atoiPtr(s string) *int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}
