package match

import (
	"context"
	"time"

	"github.com/riskibarqy/club-manager/internal/domain/validation"
)

// Type is the competition a match belongs to.
type Type string

const (
	TypeLeague          Type = "League"
	TypeChampionsLeague Type = "Champions League"
	TypeFriendly        Type = "Friendly"
)

func (t Type) Valid() bool {
	switch t {
	case TypeLeague, TypeChampionsLeague, TypeFriendly:
		return true
	default:
		return false
	}
}

// ErrSameClub is the rejection reason when both sides of a fixture are the same club.
const ErrSameClub = "Home and Away teams must be different."

// Match is the raw row shape used by create, update and the edit form.
type Match struct {
	ID         int64
	Type       Type
	Date       time.Time
	HomeClubID int64
	AwayClubID int64
	HomeScore  int
	AwayScore  int
	StadiumID  int64
}

// Detail is the list shape with club and stadium names resolved.
type Detail struct {
	ID          int64
	Type        Type
	Date        time.Time
	HomeTeam    string
	AwayTeam    string
	HomeScore   int
	AwayScore   int
	StadiumName string
}

// Validate checks the distinct-clubs rule first so it is reported even when other fields are bad.
func (m Match) Validate() error {
	if m.HomeClubID == m.AwayClubID {
		return validation.New("away_club_id", ErrSameClub)
	}

	var typ, date *validation.Failure
	if !m.Type.Valid() {
		typ = validation.Newf("match_type", "invalid match type %q", m.Type)
	}
	if m.Date.IsZero() {
		date = validation.New("match_date", "match date is required")
	}
	var scores *validation.Failure
	if m.HomeScore < 0 || m.AwayScore < 0 {
		scores = validation.New("home_score", "scores cannot be negative")
	}
	return validation.First(typ, date, scores)
}

// Repository describes match persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Detail, error)
	GetByID(ctx context.Context, id int64) (Match, bool, error)
	Create(ctx context.Context, m Match) (int64, error)
	Update(ctx context.Context, m Match) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
