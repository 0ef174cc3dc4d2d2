package contract

import (
	"context"
	"time"

	"github.com/riskibarqy/club-manager/internal/domain/validation"
)

// Contract links one player to one club for a salary over a date range.
type Contract struct {
	ID        int64
	StartDate time.Time
	EndDate   time.Time
	Salary    float64
	PlayerID  int64
	ClubID    int64
}

// Detail is the list shape with player and club names resolved.
type Detail struct {
	ID         int64
	StartDate  time.Time
	EndDate    time.Time
	Salary     float64
	PlayerID   int64
	PlayerName string
	ClubID     int64
	ClubName   string
}

// Validate does not order start and end dates; that is left to callers.
func (c Contract) Validate() error {
	var dates *validation.Failure
	switch {
	case c.StartDate.IsZero():
		dates = validation.New("start_date", "start date is required")
	case c.EndDate.IsZero():
		dates = validation.New("end_date", "end date is required")
	}

	return validation.First(
		dates,
		positive("player_id", c.PlayerID),
		positive("club_id", c.ClubID),
		nonNegativeSalary(c.Salary),
	)
}

func positive(field string, id int64) *validation.Failure {
	if id <= 0 {
		return validation.Newf(field, "%s must be a positive id", field)
	}
	return nil
}

func nonNegativeSalary(v float64) *validation.Failure {
	if v < 0 {
		return validation.New("salary", "salary cannot be negative")
	}
	return nil
}

// Repository describes contract persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Detail, error)
	GetByID(ctx context.Context, id int64) (Detail, bool, error)
	Create(ctx context.Context, c Contract) (int64, error)
	Update(ctx context.Context, c Contract) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
