package player

import (
	"strings"
	"time"

	"github.com/riskibarqy/club-manager/internal/domain/validation"
)

// Position is the playing role of a footballer.
type Position string

const (
	PositionForward    Position = "Forward"
	PositionMidfielder Position = "Midfielder"
	PositionDefender   Position = "Defender"
	PositionGoalkeeper Position = "Goalkeeper"
)

var AllPositions = map[Position]struct{}{
	PositionForward:    {},
	PositionMidfielder: {},
	PositionDefender:   {},
	PositionGoalkeeper: {},
}

func (p Position) Valid() bool {
	_, ok := AllPositions[p]
	return ok
}

// MinimumAge is the youngest a registered player may be, in whole years.
const MinimumAge = 15

// FreeAgent is the display club name for players without a club.
const FreeAgent = "Free Agent"

// Player is the raw row shape used by create, update and the edit form.
// A nil ClubID means the player is a free agent.
type Player struct {
	ID          int64
	FirstName   string
	LastName    string
	DateOfBirth time.Time
	Position    Position
	City        string
	State       string
	Pincode     string
	ClubID      *int64
}

func (p Player) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Validate applies the same rules the store enforces with its triggers.
func (p Player) Validate(now time.Time) error {
	return validation.First(
		requireText("f_name", "first name", p.FirstName),
		requireText("l_name", "last name", p.LastName),
		checkPosition(p.Position),
		checkAge(p.DateOfBirth, now),
	)
}

func requireText(field, label, v string) *validation.Failure {
	if strings.TrimSpace(v) == "" {
		return validation.Newf(field, "%s is required", label)
	}
	return nil
}

func checkPosition(p Position) *validation.Failure {
	if !p.Valid() {
		return validation.Newf("position", "invalid position %q", p)
	}
	return nil
}

func checkAge(dob, now time.Time) *validation.Failure {
	if dob.IsZero() {
		return validation.New("dob", "date of birth is required")
	}
	if AgeOn(dob, now) < MinimumAge {
		return validation.Newf("dob", "Player must be at least %d years old", MinimumAge)
	}
	return nil
}

// AgeOn returns completed years between dob and now, by calendar date.
func AgeOn(dob, now time.Time) int {
	dy, dm, dd := dob.Date()
	ny, nm, nd := now.Date()
	age := ny - dy
	if nm < dm || (nm == dm && nd < dd) {
		age--
	}
	return age
}

// RosterEntry is one row of the pre-joined roster view.
type RosterEntry struct {
	ID       int64
	FullName string
	Age      int
	Position Position
	ClubID   *int64
	ClubName string
}

// SearchResult is one row of the advanced search; club and contract gaps are already coalesced.
type SearchResult struct {
	ID           int64
	FullName     string
	Age          int
	Position     Position
	ClubName     string
	ClubTrophies int
	Salary       float64
}
