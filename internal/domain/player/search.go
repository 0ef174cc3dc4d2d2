package player

import "strings"

// NameMatchType selects how the name filter is compared against the full name.
type NameMatchType string

const (
	MatchContains   NameMatchType = "contains"
	MatchStartsWith NameMatchType = "startsWith"
	MatchEndsWith   NameMatchType = "endsWith"
	MatchExact      NameMatchType = "exact"
)

// ParseNameMatchType falls back to MatchContains for anything unrecognised.
func ParseNameMatchType(v string) NameMatchType {
	switch NameMatchType(strings.TrimSpace(v)) {
	case MatchStartsWith:
		return MatchStartsWith
	case MatchEndsWith:
		return MatchEndsWith
	case MatchExact:
		return MatchExact
	default:
		return MatchContains
	}
}

// SearchFilter is a sparse set of optional filters. Nil pointers and empty strings do not filter.
type SearchFilter struct {
	Name          string
	NameMatchType NameMatchType
	Position      Position
	ClubID        *int64
	MinAge        *int
	MaxAge        *int
	MinSalary     *float64
	MinTrophies   *int
}

// Normalize trims text fields so whitespace-only input counts as absent.
func (f SearchFilter) Normalize() SearchFilter {
	f.Name = strings.TrimSpace(f.Name)
	f.NameMatchType = ParseNameMatchType(string(f.NameMatchType))
	f.Position = Position(strings.TrimSpace(string(f.Position)))
	return f
}
