package listing

import (
	"net/http"
	"testing"

	domainerrors "scoop/internal/domain/errors"
	"scoop/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Clause
	}{
		{name: "empty", raw: "", want: nil},
		{
			name: "implicit equality",
			raw:  "name:Chocolate",
			want: []Clause{{Field: "name", Operator: OpEq, Value: "Chocolate"}},
		},
		{
			name: "boolean shorthand",
			raw:  "available:true",
			want: []Clause{{Field: "available", Operator: OpEq, Value: "true", Boolean: true}},
		},
		{
			name: "explicit operators combine",
			raw:  "name:like:choc, price:gte:2.5",
			want: []Clause{
				{Field: "name", Operator: OpLike, Value: "choc"},
				{Field: "price", Operator: OpGte, Value: "2.5"},
			},
		},
		{
			name: "value keeps colons",
			raw:  "createdAt:gt:2024-01-01T10:00:00Z",
			want: []Clause{{Field: "createdAt", Operator: OpGt, Value: "2024-01-01T10:00:00Z"}},
		},
		{
			name: "implicit equality on a timestamp",
			raw:  "createdAt:2024-01-01T10:00:00Z",
			want: []Clause{{Field: "createdAt", Operator: OpEq, Value: "2024-01-01T10:00:00Z"}},
		},
		{
			name: "implicit equality on a clock time",
			raw:  "name:10:30",
			want: []Clause{{Field: "name", Operator: OpEq, Value: "10:30"}},
		},
		{
			name: "trailing comma ignored",
			raw:  "unit:kg,",
			want: []Clause{{Field: "unit", Operator: OpEq, Value: "kg"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFilter(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFilter_Errors(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		message string
	}{
		{name: "single token", raw: "name", message: "Invalid filter clause: name"},
		{name: "empty value", raw: "name:", message: "Invalid filter clause: name:"},
		{name: "unknown operator", raw: "price:between:1", message: "Invalid filter operator: between"},
		{name: "operator is never a literal", raw: "name:contains:x", message: "Invalid filter operator: contains"},
		{name: "empty operator", raw: "name::x", message: "Invalid filter operator: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFilter(tt.raw)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPCode())
			assert.Equal(t, tt.message, appErr.Message())
		})
	}
}

func TestParseOrder(t *testing.T) {
	field, desc, err := ParseOrder("")
	require.NoError(t, err)
	assert.Equal(t, "createdAt", field)
	assert.False(t, desc)

	field, desc, err = ParseOrder("price:desc")
	require.NoError(t, err)
	assert.Equal(t, "price", field)
	assert.True(t, desc)

	field, desc, err = ParseOrder("name")
	require.NoError(t, err)
	assert.Equal(t, "name", field)
	assert.False(t, desc)

	_, _, err = ParseOrder("name:sideways")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
