package listing

import (
	"math"
	"strconv"
	"strings"
	"time"

	domainerrors "scoop/internal/domain/errors"

	"github.com/google/uuid"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Params are the raw list parameters of a request.
type Params struct {
	Page     int
	PerPage  int
	OrderBy  string
	Filter   string
	Includes []string
}

// Normalized applies the page defaults.
func (p Params) Normalized() Params {
	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.PerPage == 0 {
		p.PerPage = DefaultPerPage
	}

	return p
}

// Condition is a coerced comparison on a column. Value is a string,
// float64, bool, time.Time or uuid.UUID depending on the field kind.
type Condition struct {
	Column   string
	Operator Operator
	Value    any
}

// Query is the backend-neutral description of one page fetch. Conditions
// combine with AND.
type Query struct {
	Conditions []Condition
	Order      Order
	Page       int
	PerPage    int
	Offset     int
	Limit      int
	Includes   []string
}

// Build validates params against the schema and produces a Query.
func (s *Schema) Build(params Params) (Query, error) {
	params = params.Normalized()
	if params.Page < 1 {
		return Query{}, domainerrors.ErrValidationFailed.WithMessage("page must be a positive number")
	}
	if params.PerPage < 1 || params.PerPage > MaxPerPage {
		return Query{}, domainerrors.ErrValidationFailed.WithMessage("perPage must be between 1 and " + strconv.Itoa(MaxPerPage))
	}
	// The offset (page-1)*perPage must fit in an int.
	if params.Page-1 > math.MaxInt/params.PerPage {
		return Query{}, domainerrors.ErrValidationFailed.WithMessage("page is out of range")
	}

	clauses, err := ParseFilter(params.Filter)
	if err != nil {
		return Query{}, err
	}

	orderField, desc, err := ParseOrder(params.OrderBy)
	if err != nil {
		return Query{}, err
	}

	var unknown []string
	for _, c := range clauses {
		if _, ok := s.fields[c.Field]; !ok {
			unknown = appendUnique(unknown, c.Field)
		}
	}
	if _, ok := s.fields[orderField]; !ok {
		unknown = appendUnique(unknown, orderField)
	}
	if len(unknown) > 0 {
		return Query{}, domainerrors.ErrUnknownFilterField.WithMessage("Unknown field(s): " + strings.Join(unknown, ", "))
	}

	if err := s.CheckIncludes(params.Includes); err != nil {
		return Query{}, err
	}

	conditions := make([]Condition, 0, len(clauses))
	for _, c := range clauses {
		cond, err := coerce(s.fields[c.Field], c)
		if err != nil {
			return Query{}, err
		}
		conditions = append(conditions, cond)
	}

	return Query{
		Conditions: conditions,
		Order:      Order{Column: s.fields[orderField].Column, Desc: desc},
		Page:       params.Page,
		PerPage:    params.PerPage,
		Offset:     (params.Page - 1) * params.PerPage,
		Limit:      params.PerPage,
		Includes:   params.Includes,
	}, nil
}

func coerce(field Field, c Clause) (Condition, error) {
	cond := Condition{Column: field.Column, Operator: c.Operator}

	switch field.Kind {
	case KindString:
		if c.Operator != OpEq && c.Operator != OpLike {
			return Condition{}, invalidOperator(field, c.Operator)
		}
		cond.Value = c.Value
	case KindNumber:
		if c.Operator == OpLike {
			return Condition{}, invalidOperator(field, c.Operator)
		}
		n, err := strconv.ParseFloat(c.Value, 64)
		if err != nil {
			return Condition{}, domainerrors.ErrValidationFailed.WithMessage(field.Name + " must be a number")
		}
		cond.Value = n
	case KindBool:
		if c.Operator != OpEq {
			return Condition{}, invalidOperator(field, c.Operator)
		}
		if c.Value != "true" && c.Value != "false" {
			return Condition{}, domainerrors.ErrValidationFailed.WithMessage(field.Name + " must be a boolean")
		}
		cond.Value = c.Value == "true"
	case KindTime:
		if c.Operator == OpLike {
			return Condition{}, invalidOperator(field, c.Operator)
		}
		t, err := parseTime(c.Value)
		if err != nil {
			return Condition{}, domainerrors.ErrValidationFailed.WithMessage(field.Name + " must be a date")
		}
		cond.Value = t
	case KindUUID:
		if c.Operator != OpEq {
			return Condition{}, invalidOperator(field, c.Operator)
		}
		id, err := uuid.Parse(c.Value)
		if err != nil {
			return Condition{}, domainerrors.ErrValidationFailed.WithMessage(field.Name + " must be a valid id")
		}
		cond.Value = id
	}

	return cond, nil
}

func parseTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	return time.Parse(time.DateOnly, value)
}

func invalidOperator(field Field, op Operator) error {
	return domainerrors.ErrInvalidFilterOperator.WithMessage(
		"Invalid filter operator: " + string(op) + " is not supported on " + field.Kind.String() + " field " + field.Name)
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}

	return append(list, v)
}
