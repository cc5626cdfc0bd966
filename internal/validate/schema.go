// Package validate implements strict, declarative validation of tool
// arguments. Each tool describes its input as a table of field constraints;
// one generic validator enforces the table and the same table renders the
// MCP input schema advertised to clients, so the two contracts cannot drift.
package validate

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// Kind is the expected JSON type of a field.
type Kind int

const (
	String Kind = iota
	Int
	Number
	Bool
	StringList
	IntList
	ObjectList
)

// Field is one row of a tool's input constraint table.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	Desc     string

	// Numeric range, inclusive unless ExclusiveMin is set.
	Min          *float64
	Max          *float64
	ExclusiveMin bool

	// String length bounds after whitespace trimming. Zero MaxLen means
	// unbounded.
	MinLen int
	MaxLen int

	// List size bounds. Zero MaxItems means unbounded.
	MinItems int
	MaxItems int

	// Pattern constrains String fields.
	Pattern *regexp.Regexp

	// Enum constrains String values or StringList elements.
	Enum []string

	// Object validates each ObjectList element when set.
	Object *Schema

	// Default is substituted when the field is absent.
	Default any
}

// Schema is the full constraint table for one tool.
type Schema struct {
	Fields []Field
}

// New builds a schema from its field rows.
func New(fields ...Field) Schema { return Schema{Fields: fields} }

// F is shorthand for a numeric bound.
func F(v float64) *float64 { return &v }

// Parse validates args against the table and returns a normalized copy with
// defaults applied. Unknown fields are rejected and the first violation wins.
func (s Schema) Parse(args map[string]any) (map[string]any, error) {
	known := make(map[string]struct{}, len(s.Fields))
	for i := range s.Fields {
		known[s.Fields[i].Name] = struct{}{}
	}
	for name := range args {
		if _, ok := known[name]; !ok {
			return nil, fmt.Errorf("unexpected field %q", name)
		}
	}

	out := make(map[string]any, len(s.Fields))
	for i := range s.Fields {
		f := &s.Fields[i]
		raw, present := args[f.Name]
		if !present || raw == nil {
			if f.Required {
				return nil, fmt.Errorf("missing required field %q", f.Name)
			}
			if f.Default != nil {
				out[f.Name] = f.Default
			}
			continue
		}
		v, err := f.check(raw)
		if err != nil {
			return nil, err
		}
		out[f.Name] = v
	}
	return out, nil
}

func (f *Field) check(raw any) (any, error) {
	switch f.Kind {
	case String:
		return f.checkString(raw)
	case Int:
		n, ok := asInt(raw)
		if !ok {
			return nil, fmt.Errorf("field %q must be an integer", f.Name)
		}
		if err := f.checkRange(float64(n)); err != nil {
			return nil, err
		}
		return n, nil
	case Number:
		n, ok := asNumber(raw)
		if !ok {
			return nil, fmt.Errorf("field %q must be a number", f.Name)
		}
		if err := f.checkRange(n); err != nil {
			return nil, err
		}
		return n, nil
	case Bool:
		b, ok := raw.(bool)
		if !ok {
			return nil, fmt.Errorf("field %q must be a boolean", f.Name)
		}
		return b, nil
	case StringList:
		return f.checkStringList(raw)
	case IntList:
		return f.checkIntList(raw)
	case ObjectList:
		return f.checkObjectList(raw)
	}
	return nil, fmt.Errorf("field %q has unsupported kind", f.Name)
}

func (f *Field) checkString(raw any) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("field %q must be a string", f.Name)
	}
	s = strings.TrimSpace(s)
	if f.MinLen > 0 && len(s) < f.MinLen {
		return "", fmt.Errorf("field %q must be at least %d characters", f.Name, f.MinLen)
	}
	if f.MaxLen > 0 && len(s) > f.MaxLen {
		return "", fmt.Errorf("field %q must be at most %d characters", f.Name, f.MaxLen)
	}
	if f.Pattern != nil && !f.Pattern.MatchString(s) {
		return "", fmt.Errorf("field %q must match pattern %s", f.Name, f.Pattern.String())
	}
	if len(f.Enum) > 0 && !contains(f.Enum, s) {
		return "", fmt.Errorf("field %q must be one of %s", f.Name, strings.Join(f.Enum, ", "))
	}
	return s, nil
}

func (f *Field) checkStringList(raw any) ([]string, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("field %q must be a list of strings", f.Name)
	}
	if err := f.checkItems(len(items)); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("field %q must contain only strings", f.Name)
		}
		s = strings.TrimSpace(s)
		if len(f.Enum) > 0 && !contains(f.Enum, s) {
			return nil, fmt.Errorf("field %q values must be one of %s", f.Name, strings.Join(f.Enum, ", "))
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *Field) checkIntList(raw any) ([]int64, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("field %q must be a list of integers", f.Name)
	}
	if err := f.checkItems(len(items)); err != nil {
		return nil, err
	}
	out := make([]int64, 0, len(items))
	for _, item := range items {
		n, ok := asInt(item)
		if !ok {
			return nil, fmt.Errorf("field %q must contain only integers", f.Name)
		}
		out = append(out, n)
	}
	return out, nil
}

func (f *Field) checkObjectList(raw any) ([]map[string]any, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("field %q must be a list of objects", f.Name)
	}
	if err := f.checkItems(len(items)); err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %q must contain only objects", f.Name)
		}
		if f.Object != nil {
			parsed, err := f.Object.Parse(obj)
			if err != nil {
				return nil, fmt.Errorf("field %q item %d: %w", f.Name, i, err)
			}
			obj = parsed
		}
		out = append(out, obj)
	}
	return out, nil
}

func (f *Field) checkRange(v float64) error {
	if f.Min != nil {
		if f.ExclusiveMin {
			if v <= *f.Min {
				return fmt.Errorf("field %q must be > %v", f.Name, *f.Min)
			}
		} else if v < *f.Min {
			return fmt.Errorf("field %q must be >= %v", f.Name, *f.Min)
		}
	}
	if f.Max != nil && v > *f.Max {
		return fmt.Errorf("field %q must be <= %v", f.Name, *f.Max)
	}
	return nil
}

func (f *Field) checkItems(n int) error {
	if f.MinItems > 0 && n < f.MinItems {
		return fmt.Errorf("field %q must have at least %d item(s)", f.Name, f.MinItems)
	}
	if f.MaxItems > 0 && n > f.MaxItems {
		return fmt.Errorf("field %q must have at most %d item(s)", f.Name, f.MaxItems)
	}
	return nil
}

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// InputSchema renders the constraint table as the MCP tool input schema.
func (s Schema) InputSchema() mcp.ToolInputSchema {
	props := make(map[string]any, len(s.Fields))
	var required []string
	for i := range s.Fields {
		f := &s.Fields[i]
		prop := map[string]any{"type": jsonType(f.Kind)}
		if f.Desc != "" {
			prop["description"] = f.Desc
		}
		switch f.Kind {
		case String:
			if len(f.Enum) > 0 {
				prop["enum"] = f.Enum
			}
			if f.Pattern != nil {
				prop["pattern"] = f.Pattern.String()
			}
		case StringList, IntList, ObjectList:
			item := map[string]any{"type": itemType(f.Kind)}
			if f.Kind == StringList && len(f.Enum) > 0 {
				item["enum"] = f.Enum
			}
			prop["items"] = item
		}
		if f.Default != nil {
			prop["default"] = f.Default
		}
		props[f.Name] = prop
		if f.Required {
			required = append(required, f.Name)
		}
	}
	return mcp.ToolInputSchema{
		Type:       "object",
		Properties: props,
		Required:   required,
	}
}

func jsonType(k Kind) string {
	switch k {
	case String:
		return "string"
	case Int:
		return "integer"
	case Number:
		return "number"
	case Bool:
		return "boolean"
	default:
		return "array"
	}
}

func itemType(k Kind) string {
	switch k {
	case StringList:
		return "string"
	case IntList:
		return "integer"
	default:
		return "object"
	}
}
