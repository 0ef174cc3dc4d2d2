package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/club-manager/internal/domain/match"
	"github.com/riskibarqy/club-manager/internal/platform/dbpool"
	qb "github.com/riskibarqy/club-manager/internal/platform/querybuilder"
)

var matchColumns = []string{"match_id", "match_type", "match_date", "home_club_id", "away_club_id", "home_score", "away_score", "stadium_id"}

type MatchRepository struct {
	pool *dbpool.Pool
}

func NewMatchRepository(pool *dbpool.Pool) *MatchRepository {
	return &MatchRepository{pool: pool}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Detail, error) {
	query, args, err := qb.Select(
		"m.match_id",
		"m.match_type",
		"m.match_date",
		"h.club_name AS home_team",
		"a.club_name AS away_team",
		"m.home_score",
		"m.away_score",
		"s.stadium_name",
	).
		From("matches m").
		Join("club h ON m.home_club_id = h.club_id").
		Join("club a ON m.away_club_id = a.club_id").
		Join("stadium s ON m.stadium_id = s.stadium_id").
		OrderBy("m.match_date DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchDetailModel
	err = r.pool.Do(ctx, func(ctx context.Context, db *sqlx.DB) error {
		return db.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		return nil, translateError(err, "select matches")
	}

	out := make([]match.Detail, 0, len(rows))
	for _, row := range rows {
		out = append(out, match.Detail{
			ID:          row.ID,
			Type:        match.Type(row.Type),
			Date:        row.Date,
			HomeTeam:    row.HomeTeam,
			AwayTeam:    row.AwayTeam,
			HomeScore:   row.HomeScore,
			AwayScore:   row.AwayScore,
			StadiumName: row.StadiumName,
		})
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (match.Match, bool, error) {
	query, args, err := qb.Select(matchColumns...).From("matches").Where(qb.Eq("match_id", id)).ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	err = r.pool.Do(ctx, func(ctx context.Context, db *sqlx.DB) error {
		return db.GetContext(ctx, &row, query, args...)
	})
	if err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, translateError(err, "get match by id")
	}

	return match.Match{
		ID:         row.ID,
		Type:       match.Type(row.Type),
		Date:       row.Date,
		HomeClubID: row.HomeClubID,
		AwayClubID: row.AwayClubID,
		HomeScore:  row.HomeScore,
		AwayScore:  row.AwayScore,
		StadiumID:  row.StadiumID,
	}, true, nil
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) (int64, error) {
	query, args, err := qb.InsertModel("matches", matchToWrite(m), "RETURNING match_id")
	if err != nil {
		return 0, fmt.Errorf("build insert match query: %w", err)
	}

	var id int64
	err = r.pool.Do(ctx, func(ctx context.Context, db *sqlx.DB) error {
		return db.GetContext(ctx, &id, query, args...)
	})
	if err != nil {
		return 0, translateError(err, "insert match")
	}
	return id, nil
}

func (r *MatchRepository) Update(ctx context.Context, m match.Match) (bool, error) {
	query, args, err := qb.UpdateModel("matches", matchToWrite(m), qb.Eq("match_id", m.ID))
	if err != nil {
		return false, fmt.Errorf("build update match query: %w", err)
	}
	return execAffecting(ctx, r.pool, query, args, "update match")
}

func (r *MatchRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("matches").Where(qb.Eq("match_id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete match query: %w", err)
	}
	return execAffecting(ctx, r.pool, query, args, "delete match")
}

func matchToWrite(m match.Match) matchWriteModel {
	return matchWriteModel{
		Type:       string(m.Type),
		Date:       m.Date,
		HomeClubID: m.HomeClubID,
		AwayClubID: m.AwayClubID,
		HomeScore:  m.HomeScore,
		AwayScore:  m.AwayScore,
		StadiumID:  m.StadiumID,
	}
}
