package postgres

import (
	"context"
	"strings"

	"scoop/internal/domain/listing"
	"scoop/internal/errors"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// whereConditions turns listing conditions into an AND-ed WHERE scope.
func whereConditions(conditions []listing.Condition) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(conditions) == 0 {
			return db
		}

		exprs := make([]clause.Expression, 0, len(conditions))
		for _, c := range conditions {
			exprs = append(exprs, conditionExpr(c))
		}

		return db.Clauses(clause.Where{Exprs: exprs})
	}
}

func conditionExpr(c listing.Condition) clause.Expression {
	column := clause.Column{Table: clause.CurrentTable, Name: c.Column}

	switch c.Operator {
	case listing.OpLike:
		s, _ := c.Value.(string)
		return clause.Like{Column: column, Value: "%" + likeEscaper.Replace(s) + "%"}
	case listing.OpGt:
		return clause.Gt{Column: column, Value: c.Value}
	case listing.OpGte:
		return clause.Gte{Column: column, Value: c.Value}
	case listing.OpLt:
		return clause.Lt{Column: column, Value: c.Value}
	case listing.OpLte:
		return clause.Lte{Column: column, Value: c.Value}
	default:
		return clause.Eq{Column: column, Value: c.Value}
	}
}

// orderBy sorts by the requested column with id as a tie-breaker so
// pages never overlap.
func orderBy(order listing.Order) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		columns := []clause.OrderByColumn{
			{Column: clause.Column{Table: clause.CurrentTable, Name: order.Column}, Desc: order.Desc},
		}
		if order.Column != "id" {
			columns = append(columns, clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}})
		}

		return db.Clauses(clause.OrderBy{Columns: columns})
	}
}

// listPage fetches one page of M and the total count matching q. On the
// root connection both queries run concurrently; inside a transaction
// they share one connection and run in sequence.
func listPage[M any](
	ctx context.Context,
	db *gorm.DB,
	concurrent bool,
	q listing.Query,
	preload func(*gorm.DB) *gorm.DB,
) ([]M, int64, error) {
	var (
		rows  []M
		total int64
	)

	fetch := func(ctx context.Context) error {
		tx := db.WithContext(ctx).Model(new(M)).
			Scopes(whereConditions(q.Conditions), orderBy(q.Order)).
			Offset(q.Offset).
			Limit(q.Limit)
		if preload != nil {
			tx = preload(tx)
		}

		return errors.Wrap(tx.Find(&rows).Error, "failed to fetch page")
	}
	count := func(ctx context.Context) error {
		err := db.WithContext(ctx).Model(new(M)).
			Scopes(whereConditions(q.Conditions)).
			Count(&total).Error

		return errors.Wrap(err, "failed to count rows")
	}

	if !concurrent {
		if err := fetch(ctx); err != nil {
			return nil, 0, err
		}
		if err := count(ctx); err != nil {
			return nil, 0, err
		}

		return rows, total, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return fetch(gctx) })
	g.Go(func() error { return count(gctx) })
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}
