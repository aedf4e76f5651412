package listing

import (
	"strings"

	domainerrors "scoop/internal/domain/errors"
)

const (
	defaultOrderField = "createdAt"
	directionAsc      = "asc"
	directionDesc     = "desc"
)

// Order is a resolved sort on one column.
type Order struct {
	Column string
	Desc   bool
}

// ParseOrder splits field[:direction]. An empty expression sorts by
// createdAt ascending.
func ParseOrder(raw string) (field string, desc bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultOrderField, false, nil
	}

	field, direction, _ := strings.Cut(raw, ":")
	field = strings.TrimSpace(field)
	if field == "" {
		return "", false, domainerrors.ErrValidationFailed.WithMessage("orderBy must name a field")
	}

	switch strings.ToLower(strings.TrimSpace(direction)) {
	case "", directionAsc:
		return field, false, nil
	case directionDesc:
		return field, true, nil
	default:
		return "", false, domainerrors.ErrValidationFailed.WithMessage("orderBy direction must be one of [asc desc]")
	}
}
