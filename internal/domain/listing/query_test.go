package listing

import (
	"math"
	"testing"
	"time"

	domainerrors "scoop/internal/domain/errors"
	"scoop/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func creamSchema() *Schema {
	return NewSchema("creams",
		String("name", "name"),
		Number("price", "price"),
		Bool("available", "available"),
		UUID("adminId", "admin_id"),
	).WithIncludes("admin")
}

func TestSchema_Build_Defaults(t *testing.T) {
	q, err := creamSchema().Build(Params{})
	require.NoError(t, err)

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.PerPage)
	assert.Equal(t, 0, q.Offset)
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, Order{Column: "created_at"}, q.Order)
	assert.Empty(t, q.Conditions)
}

func TestSchema_Build_OffsetAndCoercion(t *testing.T) {
	adminID := uuid.New()
	q, err := creamSchema().Build(Params{
		Page:    3,
		PerPage: 5,
		OrderBy: "price:desc",
		Filter:  "name:like:van,price:lte:4,available:true,adminId:" + adminID.String() + ",createdAt:gte:2024-05-01",
	})
	require.NoError(t, err)

	assert.Equal(t, 10, q.Offset)
	assert.Equal(t, 5, q.Limit)
	assert.Equal(t, Order{Column: "price", Desc: true}, q.Order)
	assert.Equal(t, []Condition{
		{Column: "name", Operator: OpLike, Value: "van"},
		{Column: "price", Operator: OpLte, Value: 4.0},
		{Column: "available", Operator: OpEq, Value: true},
		{Column: "admin_id", Operator: OpEq, Value: adminID},
		{Column: "created_at", Operator: OpGte, Value: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
	}, q.Conditions)
}

func TestSchema_Build_UnknownFields(t *testing.T) {
	_, err := creamSchema().Build(Params{Filter: "flavour:x,colour:y,flavour:z", OrderBy: "rating:asc"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 422, appErr.HTTPCode())
	assert.Equal(t, "Unknown field(s): flavour, colour, rating", appErr.Message())
}

func TestSchema_Build_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		target error
	}{
		{name: "negative page", params: Params{Page: -1}, target: domainerrors.ErrValidationFailed},
		{name: "perPage too large", params: Params{PerPage: MaxPerPage + 1}, target: domainerrors.ErrValidationFailed},
		{name: "like on number", params: Params{Filter: "price:like:2"}, target: domainerrors.ErrInvalidFilterOperator},
		{name: "gt on string", params: Params{Filter: "name:gt:a"}, target: domainerrors.ErrInvalidFilterOperator},
		{name: "not a number", params: Params{Filter: "price:abc"}, target: domainerrors.ErrValidationFailed},
		{name: "not a boolean", params: Params{Filter: "available:yes"}, target: domainerrors.ErrValidationFailed},
		{name: "not an id", params: Params{Filter: "adminId:123"}, target: domainerrors.ErrValidationFailed},
		{name: "unknown include", params: Params{Includes: []string{"members"}}, target: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := creamSchema().Build(tt.params)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
		})
	}
}

func TestSchema_Build_PageBounds(t *testing.T) {
	t.Run("offset overflow is rejected", func(t *testing.T) {
		_, err := creamSchema().Build(Params{Page: math.MaxInt, PerPage: MaxPerPage})
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 422, appErr.HTTPCode())
		assert.Equal(t, "page is out of range", appErr.Message())
	})

	t.Run("largest page that fits", func(t *testing.T) {
		page := math.MaxInt/MaxPerPage + 1
		q, err := creamSchema().Build(Params{Page: page, PerPage: MaxPerPage})
		require.NoError(t, err)

		assert.Equal(t, page, q.Page)
		assert.Positive(t, q.Offset)
		assert.Equal(t, (page-1)*MaxPerPage, q.Offset)
	})
}
