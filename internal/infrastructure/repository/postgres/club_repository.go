package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/club-manager/internal/domain/club"
	"github.com/riskibarqy/club-manager/internal/platform/dbpool"
	qb "github.com/riskibarqy/club-manager/internal/platform/querybuilder"
)

var clubColumns = []string{"club_id", "club_name", "founded_year", "owner_name", "club_email", "total_trophies"}

type ClubRepository struct {
	pool *dbpool.Pool
}

func NewClubRepository(pool *dbpool.Pool) *ClubRepository {
	return &ClubRepository{pool: pool}
}

func (r *ClubRepository) List(ctx context.Context) ([]club.Club, error) {
	query, args, err := qb.Select(clubColumns...).From("club").OrderBy("club_name ASC").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select clubs query: %w", err)
	}

	var rows []clubTableModel
	err = r.pool.Do(ctx, func(ctx context.Context, db *sqlx.DB) error {
		return db.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		return nil, translateError(err, "select clubs")
	}

	out := make([]club.Club, 0, len(rows))
	for _, row := range rows {
		out = append(out, clubFromRow(row))
	}
	return out, nil
}

func (r *ClubRepository) GetByID(ctx context.Context, id int64) (club.Club, bool, error) {
	query, args, err := qb.Select(clubColumns...).From("club").Where(qb.Eq("club_id", id)).ToSQL()
	if err != nil {
		return club.Club{}, false, fmt.Errorf("build get club query: %w", err)
	}

	var row clubTableModel
	err = r.pool.Do(ctx, func(ctx context.Context, db *sqlx.DB) error {
		return db.GetContext(ctx, &row, query, args...)
	})
	if err != nil {
		if isNotFound(err) {
			return club.Club{}, false, nil
		}
		return club.Club{}, false, translateError(err, "get club by id")
	}

	return clubFromRow(row), true, nil
}

func (r *ClubRepository) Create(ctx context.Context, c club.Club) (int64, error) {
	query, args, err := qb.InsertModel("club", clubToWrite(c), "RETURNING club_id")
	if err != nil {
		return 0, fmt.Errorf("build insert club query: %w", err)
	}

	var id int64
	err = r.pool.Do(ctx, func(ctx context.Context, db *sqlx.DB) error {
		return db.GetContext(ctx, &id, query, args...)
	})
	if err != nil {
		return 0, translateError(err, "insert club")
	}
	return id, nil
}

// Update leaves total_trophies untouched when the edit carries no count.
func (r *ClubRepository) Update(ctx context.Context, e club.Edit) (bool, error) {
	query, args, err := clubUpdateQuery(e)
	if err != nil {
		return false, fmt.Errorf("build update club query: %w", err)
	}
	return execAffecting(ctx, r.pool, query, args, "update club")
}

func clubUpdateQuery(e club.Edit) (string, []any, error) {
	b := qb.Update("club").
		Set("club_name", e.Name).
		Set("founded_year", e.FoundedYear).
		Set("owner_name", nullString(e.OwnerName)).
		Set("club_email", nullString(e.Email))
	if e.TotalTrophies != nil {
		b = b.Set("total_trophies", *e.TotalTrophies)
	}
	return b.Where(qb.Eq("club_id", e.ID)).ToSQL()
}

func (r *ClubRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("club").Where(qb.Eq("club_id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete club query: %w", err)
	}
	return execAffecting(ctx, r.pool, query, args, "delete club")
}

func clubFromRow(row clubTableModel) club.Club {
	return club.Club{
		ID:            row.ID,
		Name:          row.Name,
		FoundedYear:   row.FoundedYear,
		OwnerName:     row.OwnerName.String,
		Email:         row.Email.String,
		TotalTrophies: row.TotalTrophies,
	}
}

func clubToWrite(c club.Club) clubWriteModel {
	return clubWriteModel{
		Name:          c.Name,
		FoundedYear:   c.FoundedYear,
		OwnerName:     nullString(c.OwnerName),
		Email:         nullString(c.Email),
		TotalTrophies: c.TotalTrophies,
	}
}
