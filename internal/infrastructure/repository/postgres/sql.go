package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/club-manager/internal/domain/match"
	"github.com/riskibarqy/club-manager/internal/domain/validation"
	"github.com/riskibarqy/club-manager/internal/platform/dbpool"
)

// Trigger functions raise with this SQLSTATE when no explicit code is given.
const raiseExceptionCode = "P0001"

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// translateError turns integrity and trigger rejections into validation failures so callers see a
// caller-correctable error; everything else is wrapped with op and left opaque.
func translateError(err error, op string) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if crerr.As(err, &pqErr) && isValidationCode(pqErr.Code) {
		return crerr.WithStack(validation.New(fieldFromPQError(pqErr), reasonFromPQError(pqErr)))
	}

	return crerr.Wrap(err, op)
}

func isValidationCode(code pq.ErrorCode) bool {
	return code.Class() == "23" || code == raiseExceptionCode
}

var constraintFields = map[string]string{
	"club_club_name_key":        "club_name",
	"club_club_email_key":       "club_email",
	"club_total_trophies_check": "total_trophies",
	"player_position_check":     "position",
	"player_club_id_fkey":       "club_id",
	"contract_player_id_fkey":   "player_id",
	"contract_club_id_fkey":     "club_id",
	"contract_salary_check":     "salary",
	"matches_check":             "away_club_id",
	"matches_match_type_check":  "match_type",
	"matches_home_club_id_fkey": "home_club_id",
	"matches_away_club_id_fkey": "away_club_id",
	"matches_stadium_id_fkey":   "stadium_id",
}

// constraintReasons replaces the driver's generic wording for checks that have a user-facing message.
var constraintReasons = map[string]string{
	"matches_check": match.ErrSameClub,
}

func reasonFromPQError(pqErr *pq.Error) string {
	if reason, ok := constraintReasons[pqErr.Constraint]; ok {
		return reason
	}
	return pqErr.Message
}

func fieldFromPQError(pqErr *pq.Error) string {
	if pqErr.Column != "" {
		return pqErr.Column
	}
	if field, ok := constraintFields[pqErr.Constraint]; ok {
		return field
	}
	if strings.Contains(strings.ToLower(pqErr.Message), "years old") {
		return "dob"
	}
	return ""
}

func rowsAffected(res sql.Result, op string) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s rows affected: %w", op, err)
	}
	return n > 0, nil
}

func nullString(v string) sql.NullString {
	v = strings.TrimSpace(v)
	return sql.NullString{String: v, Valid: v != ""}
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	out := v.Int64
	return &out
}

// execAffecting runs a write and reports whether any row matched.
func execAffecting(ctx context.Context, pool *dbpool.Pool, query string, args []any, op string) (bool, error) {
	var affected bool
	err := pool.Do(ctx, func(ctx context.Context, db *sqlx.DB) error {
		res, err := db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = rowsAffected(res, op)
		return err
	})
	if err != nil {
		return false, translateError(err, op)
	}
	return affected, nil
}
