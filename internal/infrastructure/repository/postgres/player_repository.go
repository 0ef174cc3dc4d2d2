package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/club-manager/internal/domain/player"
	"github.com/riskibarqy/club-manager/internal/platform/dbpool"
	qb "github.com/riskibarqy/club-manager/internal/platform/querybuilder"
)

var playerColumns = []string{"player_id", "f_name", "l_name", "dob", "position", "city", "state", "pincode", "club_id"}

type PlayerRepository struct {
	pool *dbpool.Pool
}

func NewPlayerRepository(pool *dbpool.Pool) *PlayerRepository {
	return &PlayerRepository{pool: pool}
}

func (r *PlayerRepository) ListRoster(ctx context.Context) ([]player.RosterEntry, error) {
	query, args, err := qb.Select("player_id", "full_name", "age_calculated", "position", "club_id", "club_name").
		From("player_roster_view").
		OrderBy("player_id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select roster query: %w", err)
	}

	var rows []playerRosterModel
	err = r.pool.Do(ctx, func(ctx context.Context, db *sqlx.DB) error {
		return db.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		return nil, translateError(err, "select roster")
	}

	out := make([]player.RosterEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.RosterEntry{
			ID:       row.ID,
			FullName: row.FullName,
			Age:      row.Age,
			Position: player.Position(row.Position),
			ClubID:   int64Ptr(row.ClubID),
			ClubName: row.ClubName,
		})
	}
	return out, nil
}

func (r *PlayerRepository) Search(ctx context.Context, filter player.SearchFilter) ([]player.SearchResult, error) {
	query, args, err := buildPlayerSearchQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("build player search query: %w", err)
	}

	var rows []playerSearchModel
	err = r.pool.Do(ctx, func(ctx context.Context, db *sqlx.DB) error {
		return db.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		return nil, translateError(err, "search players")
	}

	out := make([]player.SearchResult, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.SearchResult{
			ID:           row.ID,
			FullName:     row.FullName,
			Age:          row.Age,
			Position:     player.Position(row.Position),
			ClubName:     row.ClubName,
			ClubTrophies: row.ClubTrophies,
			Salary:       row.Salary,
		})
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	query, args, err := qb.Select(playerColumns...).From("player").Where(qb.Eq("player_id", id)).ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	err = r.pool.Do(ctx, func(ctx context.Context, db *sqlx.DB) error {
		return db.GetContext(ctx, &row, query, args...)
	})
	if err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, translateError(err, "get player by id")
	}

	return player.Player{
		ID:          row.ID,
		FirstName:   row.FirstName,
		LastName:    row.LastName,
		DateOfBirth: row.DateOfBirth,
		Position:    player.Position(row.Position),
		City:        row.City.String,
		State:       row.State.String,
		Pincode:     row.Pincode.String,
		ClubID:      int64Ptr(row.ClubID),
	}, true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (int64, error) {
	query, args, err := qb.InsertModel("player", playerToWrite(p), "RETURNING player_id")
	if err != nil {
		return 0, fmt.Errorf("build insert player query: %w", err)
	}

	var id int64
	err = r.pool.Do(ctx, func(ctx context.Context, db *sqlx.DB) error {
		return db.GetContext(ctx, &id, query, args...)
	})
	if err != nil {
		return 0, translateError(err, "insert player")
	}
	return id, nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) (bool, error) {
	query, args, err := qb.UpdateModel("player", playerToWrite(p), qb.Eq("player_id", p.ID))
	if err != nil {
		return false, fmt.Errorf("build update player query: %w", err)
	}
	return execAffecting(ctx, r.pool, query, args, "update player")
}

// Delete fires the archive trigger on the store side.
func (r *PlayerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("player").Where(qb.Eq("player_id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete player query: %w", err)
	}
	return execAffecting(ctx, r.pool, query, args, "delete player")
}

func playerToWrite(p player.Player) playerWriteModel {
	return playerWriteModel{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DateOfBirth: p.DateOfBirth,
		Position:    string(p.Position),
		City:        nullString(p.City),
		State:       nullString(p.State),
		Pincode:     nullString(p.Pincode),
		ClubID:      nullInt64(p.ClubID),
	}
}
