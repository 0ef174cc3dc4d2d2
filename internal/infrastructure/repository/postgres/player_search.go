package postgres

import (
	"github.com/riskibarqy/club-manager/internal/domain/player"
	qb "github.com/riskibarqy/club-manager/internal/platform/querybuilder"
)

const (
	playerFullNameExpr = "(p.f_name || ' ' || p.l_name)"
	playerAgeExpr      = "EXTRACT(YEAR FROM AGE(CURRENT_DATE, p.dob))::int"
	playerSalaryExpr   = "COALESCE(ct.salary, 0)"
	clubTrophiesExpr   = "COALESCE(c.total_trophies, 0)"
)

// latestContractJoin picks the contract with the furthest end date so each player yields one row.
const latestContractJoin = `LATERAL (
	SELECT k.salary FROM contract k WHERE k.player_id = p.player_id ORDER BY k.end_date DESC, k.contract_id DESC LIMIT 1
) ct ON TRUE`

var playerSearchColumns = []string{
	"p.player_id",
	playerFullNameExpr + " AS full_name",
	playerAgeExpr + " AS age",
	"p.position",
	"COALESCE(c.club_name, '" + player.FreeAgent + "') AS club_name",
	clubTrophiesExpr + " AS club_trophies",
	playerSalaryExpr + "::float8 AS salary",
}

// buildPlayerSearchQuery folds the present filters onto the 1=1 base predicate. Filters are
// appended in a fixed order so placeholder positions depend only on which fields are set.
func buildPlayerSearchQuery(filter player.SearchFilter) (string, []any, error) {
	filter = filter.Normalize()

	return qb.Select(playerSearchColumns...).
		From("player p").
		LeftJoin("club c ON p.club_id = c.club_id").
		LeftJoin(latestContractJoin).
		Where(playerSearchConditions(filter)...).
		OrderBy("salary DESC", "age ASC").
		ToSQL()
}

func playerSearchConditions(f player.SearchFilter) []qb.Condition {
	conds := []qb.Condition{qb.True()}

	if f.Name != "" {
		conds = append(conds, nameCondition(f.Name, f.NameMatchType))
	}
	if f.Position != "" {
		conds = append(conds, qb.Eq("p.position", string(f.Position)))
	}
	if f.ClubID != nil {
		conds = append(conds, qb.Eq("p.club_id", *f.ClubID))
	}
	if f.MinAge != nil {
		conds = append(conds, qb.Cmp(playerAgeExpr, qb.OpGte, *f.MinAge))
	}
	if f.MaxAge != nil {
		conds = append(conds, qb.Cmp(playerAgeExpr, qb.OpLte, *f.MaxAge))
	}
	if f.MinSalary != nil {
		conds = append(conds, qb.Cmp(playerSalaryExpr, qb.OpGte, *f.MinSalary))
	}
	if f.MinTrophies != nil {
		conds = append(conds, qb.Cmp(clubTrophiesExpr, qb.OpGte, *f.MinTrophies))
	}

	return conds
}

func nameCondition(name string, mode player.NameMatchType) qb.Condition {
	escaped := qb.EscapeLike(name)
	switch mode {
	case player.MatchExact:
		return qb.Eq(playerFullNameExpr, name)
	case player.MatchStartsWith:
		return qb.Cmp(playerFullNameExpr, qb.OpILike, escaped+"%")
	case player.MatchEndsWith:
		return qb.Cmp(playerFullNameExpr, qb.OpILike, "%"+escaped)
	default:
		return qb.Cmp(playerFullNameExpr, qb.OpILike, "%"+escaped+"%")
	}
}
