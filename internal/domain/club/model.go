package club

import (
	"strings"
	"time"

	"github.com/riskibarqy/club-manager/internal/domain/validation"
)

const earliestFoundedYear = 1850

// Club is a football club; name and email are unique across clubs.
type Club struct {
	ID            int64
	Name          string
	FoundedYear   int
	OwnerName     string
	Email         string
	TotalTrophies int
}

func (c Club) Validate(now time.Time) error {
	return validation.First(
		requireName(c.Name),
		checkFoundedYear(c.FoundedYear, now),
		checkTrophies(c.TotalTrophies),
	)
}

// Edit is a club update. A nil TotalTrophies leaves the stored count unchanged.
type Edit struct {
	ID            int64
	Name          string
	FoundedYear   int
	OwnerName     string
	Email         string
	TotalTrophies *int
}

func (e Edit) Validate(now time.Time) error {
	var trophies *validation.Failure
	if e.TotalTrophies != nil {
		trophies = checkTrophies(*e.TotalTrophies)
	}
	return validation.First(
		requireName(e.Name),
		checkFoundedYear(e.FoundedYear, now),
		trophies,
	)
}

func requireName(name string) *validation.Failure {
	if strings.TrimSpace(name) == "" {
		return validation.New("club_name", "club name is required")
	}
	return nil
}

func checkFoundedYear(year int, now time.Time) *validation.Failure {
	if year < earliestFoundedYear || year > now.Year() {
		return validation.Newf("founded_year", "founded year must be between %d and %d", earliestFoundedYear, now.Year())
	}
	return nil
}

func checkTrophies(count int) *validation.Failure {
	if count < 0 {
		return validation.New("total_trophies", "trophy count cannot be negative")
	}
	return nil
}
