package listing

import (
	"strings"

	domainerrors "scoop/internal/domain/errors"
)

// Operator is a filter comparison.
type Operator string

const (
	OpEq   Operator = "eq"
	OpLike Operator = "like"
	OpGt   Operator = "gt"
	OpGte  Operator = "gte"
	OpLt   Operator = "lt"
	OpLte  Operator = "lte"
)

var operators = map[string]Operator{
	"eq":   OpEq,
	"like": OpLike,
	"gt":   OpGt,
	"gte":  OpGte,
	"lt":   OpLt,
	"lte":  OpLte,
}

// Clause is one parsed filter segment before type coercion.
type Clause struct {
	Field    string
	Operator Operator
	Value    string
	// Boolean is set when the clause was written as field:true or field:false.
	Boolean bool
}

// ParseFilter splits a raw filter expression into clauses. Empty input
// yields no clauses. Every clause has exactly two or three tokens; the
// value of a three-token clause may itself contain colons. A middle token
// made only of letters is an operator; any other middle token belongs to
// the value, so createdAt:2024-01-01T10:00:00Z is an equality.
func ParseFilter(raw string) ([]Clause, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	segments := strings.Split(raw, ",")
	clauses := make([]Clause, 0, len(segments))
	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		clause, err := parseClause(segment)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, clause)
	}

	return clauses, nil
}

func parseClause(segment string) (Clause, error) {
	tokens := strings.SplitN(segment, ":", 3)
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}

	switch len(tokens) {
	case 2:
		field, value := tokens[0], tokens[1]
		if field == "" || value == "" {
			return Clause{}, malformedClause(segment)
		}
		clause := Clause{Field: field, Operator: OpEq, Value: value}
		if value == "true" || value == "false" {
			clause.Boolean = true
		}

		return clause, nil
	case 3:
		field, rawOp, value := tokens[0], tokens[1], tokens[2]
		if field == "" || value == "" {
			return Clause{}, malformedClause(segment)
		}
		if rawOp != "" && !isOperatorWord(rawOp) {
			return Clause{Field: field, Operator: OpEq, Value: rawOp + ":" + value}, nil
		}
		op, ok := operators[strings.ToLower(rawOp)]
		if !ok {
			return Clause{}, domainerrors.ErrInvalidFilterOperator.WithMessage("Invalid filter operator: " + rawOp)
		}

		return Clause{Field: field, Operator: op, Value: value}, nil
	default:
		return Clause{}, malformedClause(segment)
	}
}

func isOperatorWord(token string) bool {
	for _, r := range token {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}

	return true
}

func malformedClause(segment string) error {
	return domainerrors.ErrValidationFailed.WithMessage("Invalid filter clause: " + segment)
}
