// Package validator adapts go-playground/validator to echo and renders
// failures as the API's validation messages.
package validator

import (
	"reflect"
	"strings"

	domainerrors "scoop/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var uuidType = reflect.TypeOf(uuid.UUID{})

// Field kinds used to phrase validation messages.
const (
	KindNumber  = "number"
	KindBoolean = "boolean"
	KindID      = "id"
	KindArray   = "array"
	KindObject  = "object"
	KindString  = "string"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New builds a validator that reports fields by their JSON name.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	return &Validator{validate: v}
}

// Validate returns a 422 ValidationError describing the first failing field.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrs) == 0 {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return domainerrors.ErrValidationFailed.WithMessage(Message(fieldErrs[0]))
}

// Message renders one field error.
func Message(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "uuid", "uuid4":
		return field + " must be a valid id"
	case "oneof":
		return field + " must be one of [" + fe.Param() + "]"
	case "gte", "min":
		if KindOf(fe.Type()) == KindNumber {
			return field + " must be greater than or equal to " + fe.Param()
		}
	case "gt":
		if KindOf(fe.Type()) == KindNumber {
			return field + " must be greater than " + fe.Param()
		}
	}

	return field + " " + Expectation(KindOf(fe.Type()))
}

// Expectation phrases what a field of kind must hold.
func Expectation(kind string) string {
	switch kind {
	case KindNumber:
		return "must be a number and not empty"
	case KindBoolean:
		return "must be a boolean"
	case KindID:
		return "must be a valid id"
	case KindArray:
		return "must be an array and not empty"
	case KindObject:
		return "must be an object"
	default:
		return "must be a string and not empty"
	}
}

// KindOf classifies t as number, boolean, id, array, object or string.
func KindOf(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == uuidType {
		return KindID
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.Bool:
		return KindBoolean
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Struct, reflect.Map:
		return KindObject
	default:
		return KindString
	}
}
