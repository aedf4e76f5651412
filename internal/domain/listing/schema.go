package listing

import (
	"slices"
	"sort"
	"strings"

	domainerrors "scoop/internal/domain/errors"
)

// FieldKind is the value type of a filterable field.
type FieldKind int

const (
	KindString FieldKind = iota
	KindNumber
	KindBool
	KindTime
	KindUUID
)

func (k FieldKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindTime:
		return "time"
	case KindUUID:
		return "uuid"
	default:
		return "unknown"
	}
}

// Field maps a public field name onto a column.
type Field struct {
	Name   string
	Column string
	Kind   FieldKind
}

// Schema is the allow-list of filterable and sortable fields of a resource.
type Schema struct {
	Resource string
	fields   map[string]Field
	includes []string
}

// NewSchema builds a schema. createdAt and updatedAt are always present.
func NewSchema(resource string, fields ...Field) *Schema {
	s := &Schema{
		Resource: resource,
		fields: map[string]Field{
			"createdAt": {Name: "createdAt", Column: "created_at", Kind: KindTime},
			"updatedAt": {Name: "updatedAt", Column: "updated_at", Kind: KindTime},
			"id":        {Name: "id", Column: "id", Kind: KindUUID},
		},
	}
	for _, f := range fields {
		s.fields[f.Name] = f
	}

	return s
}

// WithIncludes declares the relations a caller may ask to preload.
func (s *Schema) WithIncludes(includes ...string) *Schema {
	s.includes = append(s.includes, includes...)
	return s
}

// Field looks up an allowed field by its public name.
func (s *Schema) Field(name string) (Field, bool) {
	f, ok := s.fields[name]
	return f, ok
}

// FieldNames returns the allowed field names in sorted order.
func (s *Schema) FieldNames() []string {
	names := make([]string, 0, len(s.fields))
	for name := range s.fields {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// String shortcut for Field{Name, Column, KindString}.
func String(name, column string) Field {
	return Field{Name: name, Column: column, Kind: KindString}
}

// Number shortcut.
func Number(name, column string) Field {
	return Field{Name: name, Column: column, Kind: KindNumber}
}

// Bool shortcut.
func Bool(name, column string) Field {
	return Field{Name: name, Column: column, Kind: KindBool}
}

// Time shortcut.
func Time(name, column string) Field {
	return Field{Name: name, Column: column, Kind: KindTime}
}

// UUID shortcut.
func UUID(name, column string) Field {
	return Field{Name: name, Column: column, Kind: KindUUID}
}

// CheckIncludes rejects relations the schema does not declare.
func (s *Schema) CheckIncludes(includes []string) error {
	var unknown []string
	for _, inc := range includes {
		if !slices.Contains(s.includes, inc) {
			unknown = append(unknown, inc)
		}
	}
	if len(unknown) > 0 {
		return domainerrors.ErrValidationFailed.WithMessage("Unknown include(s): " + strings.Join(unknown, ", "))
	}

	return nil
}
