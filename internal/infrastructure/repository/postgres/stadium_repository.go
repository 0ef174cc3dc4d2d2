package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/club-manager/internal/domain/stadium"
	"github.com/riskibarqy/club-manager/internal/platform/dbpool"
	qb "github.com/riskibarqy/club-manager/internal/platform/querybuilder"
)

type stadiumTableModel struct {
	ID       int64          `db:"stadium_id"`
	Name     string         `db:"stadium_name"`
	City     sql.NullString `db:"city"`
	Capacity sql.NullInt64  `db:"capacity"`
}

type StadiumRepository struct {
	pool *dbpool.Pool
}

func NewStadiumRepository(pool *dbpool.Pool) *StadiumRepository {
	return &StadiumRepository{pool: pool}
}

func (r *StadiumRepository) List(ctx context.Context) ([]stadium.Stadium, error) {
	query, args, err := qb.Select("stadium_id", "stadium_name", "city", "capacity").
		From("stadium").
		OrderBy("stadium_name ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select stadiums query: %w", err)
	}

	var rows []stadiumTableModel
	err = r.pool.Do(ctx, func(ctx context.Context, db *sqlx.DB) error {
		return db.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		return nil, translateError(err, "select stadiums")
	}

	out := make([]stadium.Stadium, 0, len(rows))
	for _, row := range rows {
		out = append(out, stadium.Stadium{
			ID:       row.ID,
			Name:     row.Name,
			City:     row.City.String,
			Capacity: int(row.Capacity.Int64),
		})
	}
	return out, nil
}
