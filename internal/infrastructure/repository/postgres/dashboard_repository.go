package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/club-manager/internal/domain/dashboard"
	"github.com/riskibarqy/club-manager/internal/platform/dbpool"
	qb "github.com/riskibarqy/club-manager/internal/platform/querybuilder"
)

// dashboardStatsQuery computes the four aggregates in a single round trip.
const dashboardStatsQuery = `
SELECT
	(SELECT COUNT(*) FROM player) AS total_players,
	(SELECT COUNT(*) FROM club) AS total_clubs,
	(SELECT COALESCE(SUM(total_trophies), 0) FROM club) AS total_trophies,
	(SELECT COUNT(*) FROM matches) AS total_matches`

type DashboardRepository struct {
	pool *dbpool.Pool
}

func NewDashboardRepository(pool *dbpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

func (r *DashboardRepository) GetStats(ctx context.Context) (dashboard.Stats, error) {
	var row statsModel
	err := r.pool.Do(ctx, func(ctx context.Context, db *sqlx.DB) error {
		return db.GetContext(ctx, &row, dashboardStatsQuery)
	})
	if err != nil {
		return dashboard.Stats{}, translateError(err, "select dashboard stats")
	}

	return dashboard.Stats{
		TotalPlayers:  row.TotalPlayers,
		TotalClubs:    row.TotalClubs,
		TotalTrophies: row.TotalTrophies,
		TotalMatches:  row.TotalMatches,
	}, nil
}

func (r *DashboardRepository) ListUpcoming(ctx context.Context, limit int) ([]dashboard.Fixture, error) {
	query, args, err := fixtureQuery(qb.Expr("m.match_date >= CURRENT_DATE"), "m.match_date ASC", limit)
	if err != nil {
		return nil, fmt.Errorf("build upcoming fixtures query: %w", err)
	}
	return r.selectFixtures(ctx, query, args, "select upcoming fixtures")
}

func (r *DashboardRepository) ListRecent(ctx context.Context, limit int) ([]dashboard.Fixture, error) {
	query, args, err := fixtureQuery(qb.Expr("m.match_date < CURRENT_DATE"), "m.match_date DESC", limit)
	if err != nil {
		return nil, fmt.Errorf("build recent fixtures query: %w", err)
	}
	return r.selectFixtures(ctx, query, args, "select recent fixtures")
}

func fixtureQuery(window qb.Condition, order string, limit int) (string, []any, error) {
	return qb.Select(
		"m.match_id",
		"m.match_date",
		"h.club_name AS home_team",
		"a.club_name AS away_team",
		"m.home_score",
		"m.away_score",
	).
		From("matches m").
		Join("club h ON m.home_club_id = h.club_id").
		Join("club a ON m.away_club_id = a.club_id").
		Where(window).
		OrderBy(order, "m.match_id ASC").
		Limit(limit).
		ToSQL()
}

func (r *DashboardRepository) selectFixtures(ctx context.Context, query string, args []any, op string) ([]dashboard.Fixture, error) {
	var rows []fixtureModel
	err := r.pool.Do(ctx, func(ctx context.Context, db *sqlx.DB) error {
		return db.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		return nil, translateError(err, op)
	}

	out := make([]dashboard.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, dashboard.Fixture{
			MatchID:   row.MatchID,
			Date:      row.Date,
			HomeTeam:  row.HomeTeam,
			AwayTeam:  row.AwayTeam,
			HomeScore: row.HomeScore,
			AwayScore: row.AwayScore,
		})
	}
	return out, nil
}
