package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/club-manager/internal/domain/contract"
	"github.com/riskibarqy/club-manager/internal/platform/dbpool"
	qb "github.com/riskibarqy/club-manager/internal/platform/querybuilder"
)

func contractDetailQuery() *qb.SelectBuilder {
	return qb.Select(
		"k.contract_id",
		"k.start_date",
		"k.end_date",
		"k.salary::float8 AS salary",
		"p.player_id",
		"p.f_name || ' ' || p.l_name AS player_name",
		"cl.club_id",
		"cl.club_name",
	).
		From("contract k").
		Join("player p ON k.player_id = p.player_id").
		Join("club cl ON k.club_id = cl.club_id")
}

type ContractRepository struct {
	pool *dbpool.Pool
}

func NewContractRepository(pool *dbpool.Pool) *ContractRepository {
	return &ContractRepository{pool: pool}
}

func (r *ContractRepository) List(ctx context.Context) ([]contract.Detail, error) {
	query, args, err := contractDetailQuery().OrderBy("k.salary DESC").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select contracts query: %w", err)
	}

	var rows []contractDetailModel
	err = r.pool.Do(ctx, func(ctx context.Context, db *sqlx.DB) error {
		return db.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		return nil, translateError(err, "select contracts")
	}

	out := make([]contract.Detail, 0, len(rows))
	for _, row := range rows {
		out = append(out, contractFromRow(row))
	}
	return out, nil
}

func (r *ContractRepository) GetByID(ctx context.Context, id int64) (contract.Detail, bool, error) {
	query, args, err := contractDetailQuery().Where(qb.Eq("k.contract_id", id)).ToSQL()
	if err != nil {
		return contract.Detail{}, false, fmt.Errorf("build get contract query: %w", err)
	}

	var row contractDetailModel
	err = r.pool.Do(ctx, func(ctx context.Context, db *sqlx.DB) error {
		return db.GetContext(ctx, &row, query, args...)
	})
	if err != nil {
		if isNotFound(err) {
			return contract.Detail{}, false, nil
		}
		return contract.Detail{}, false, translateError(err, "get contract by id")
	}
	return contractFromRow(row), true, nil
}

func (r *ContractRepository) Create(ctx context.Context, c contract.Contract) (int64, error) {
	query, args, err := qb.InsertModel("contract", contractToWrite(c), "RETURNING contract_id")
	if err != nil {
		return 0, fmt.Errorf("build insert contract query: %w", err)
	}

	var id int64
	err = r.pool.Do(ctx, func(ctx context.Context, db *sqlx.DB) error {
		return db.GetContext(ctx, &id, query, args...)
	})
	if err != nil {
		return 0, translateError(err, "insert contract")
	}
	return id, nil
}

func (r *ContractRepository) Update(ctx context.Context, c contract.Contract) (bool, error) {
	query, args, err := qb.UpdateModel("contract", contractToWrite(c), qb.Eq("contract_id", c.ID))
	if err != nil {
		return false, fmt.Errorf("build update contract query: %w", err)
	}
	return execAffecting(ctx, r.pool, query, args, "update contract")
}

func (r *ContractRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("contract").Where(qb.Eq("contract_id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete contract query: %w", err)
	}
	return execAffecting(ctx, r.pool, query, args, "delete contract")
}

func contractFromRow(row contractDetailModel) contract.Detail {
	return contract.Detail{
		ID:         row.ID,
		StartDate:  row.StartDate,
		EndDate:    row.EndDate,
		Salary:     row.Salary,
		PlayerID:   row.PlayerID,
		PlayerName: row.PlayerName,
		ClubID:     row.ClubID,
		ClubName:   row.ClubName,
	}
}

func contractToWrite(c contract.Contract) contractWriteModel {
	return contractWriteModel{
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
		Salary:    c.Salary,
		PlayerID:  c.PlayerID,
		ClubID:    c.ClubID,
	}
}
