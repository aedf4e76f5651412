package postgres

import (
	"testing"
	"time"

	"scoop/internal/domain/listing"
	"scoop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		DSN: "host=localhost user=scoop dbname=scoop sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)

	return db
}

func TestConditionExpr(t *testing.T) {
	at := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		cond listing.Condition
		want clause.Expression
	}{
		{
			name: "eq",
			cond: listing.Condition{Column: "name", Operator: listing.OpEq, Value: "Vanilla"},
			want: clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: "name"}, Value: "Vanilla"},
		},
		{
			name: "like wraps and escapes",
			cond: listing.Condition{Column: "name", Operator: listing.OpLike, Value: "50%_off"},
			want: clause.Like{Column: clause.Column{Table: clause.CurrentTable, Name: "name"}, Value: `%50\%\_off%`},
		},
		{
			name: "gt",
			cond: listing.Condition{Column: "price", Operator: listing.OpGt, Value: 2.5},
			want: clause.Gt{Column: clause.Column{Table: clause.CurrentTable, Name: "price"}, Value: 2.5},
		},
		{
			name: "gte",
			cond: listing.Condition{Column: "created_at", Operator: listing.OpGte, Value: at},
			want: clause.Gte{Column: clause.Column{Table: clause.CurrentTable, Name: "created_at"}, Value: at},
		},
		{
			name: "lt",
			cond: listing.Condition{Column: "amount", Operator: listing.OpLt, Value: 10.0},
			want: clause.Lt{Column: clause.Column{Table: clause.CurrentTable, Name: "amount"}, Value: 10.0},
		},
		{
			name: "lte",
			cond: listing.Condition{Column: "amount", Operator: listing.OpLte, Value: 10.0},
			want: clause.Lte{Column: clause.Column{Table: clause.CurrentTable, Name: "amount"}, Value: 10.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, conditionExpr(tt.cond))
		})
	}
}

func TestListScopesRenderSQL(t *testing.T) {
	db := newDryRunDB(t)

	q := listing.Query{
		Conditions: []listing.Condition{
			{Column: "available", Operator: listing.OpEq, Value: true},
			{Column: "price", Operator: listing.OpGt, Value: 2.5},
		},
		Order:  listing.Order{Column: "created_at", Desc: true},
		Offset: 20,
		Limit:  10,
	}

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var rows []model.CreamModel

		return tx.Model(&model.CreamModel{}).
			Scopes(whereConditions(q.Conditions), orderBy(q.Order)).
			Offset(q.Offset).
			Limit(q.Limit).
			Find(&rows)
	})

	assert.Contains(t, sql, `FROM "creams"`)
	assert.Contains(t, sql, `"creams"."available" = true`)
	assert.Contains(t, sql, `"creams"."price" > 2.5`)
	assert.Contains(t, sql, `ORDER BY "creams"."created_at" DESC,"creams"."id"`)
	assert.Contains(t, sql, "LIMIT 10 OFFSET 20")
}

func TestOrderByIDSkipsTieBreaker(t *testing.T) {
	db := newDryRunDB(t)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var rows []model.AddressModel

		return tx.Model(&model.AddressModel{}).
			Scopes(orderBy(listing.Order{Column: "id"})).
			Find(&rows)
	})

	assert.Contains(t, sql, `ORDER BY "addresses"."id"`)
	assert.NotContains(t, sql, `"addresses"."id","addresses"."id"`)
}

func TestWhereConditionsEmpty(t *testing.T) {
	db := newDryRunDB(t)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var rows []model.RoleModel

		return tx.Model(&model.RoleModel{}).Scopes(whereConditions(nil)).Find(&rows)
	})

	assert.NotContains(t, sql, "WHERE")
}

func TestConstraintViolationChecks(t *testing.T) {
	unique := errors.New(`ERROR: duplicate key value violates unique constraint "uni_users_name" (SQLSTATE 23505)`)
	foreign := errors.New(`ERROR: update or delete on table "addresses" violates foreign key constraint (SQLSTATE 23503)`)
	notNull := errors.New(`ERROR: null value in column "name" violates not-null constraint (SQLSTATE 23502)`)

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(gorm.ErrDuplicatedKey, "create")))
	assert.False(t, isUniqueConstraintViolation(foreign))
	assert.False(t, isUniqueConstraintViolation(nil))

	assert.True(t, isForeignKeyConstraintViolation(foreign))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, isForeignKeyConstraintViolation(unique))

	assert.True(t, isNotNullConstraintViolation(notNull))
	assert.False(t, isNotNullConstraintViolation(unique))

	assert.True(t, isRecordNotFound(errors.Wrap(gorm.ErrRecordNotFound, "find")))
}
