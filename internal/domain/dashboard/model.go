package dashboard

import (
	"context"
	"time"
)

// FixtureListLimit caps the upcoming and the recent fixture lists.
const FixtureListLimit = 5

// Stats are four independent aggregates computed in one round trip.
type Stats struct {
	TotalPlayers  int64
	TotalClubs    int64
	TotalTrophies int64
	TotalMatches  int64
}

// Fixture is a compact match row; scores are only meaningful for played matches.
type Fixture struct {
	MatchID   int64
	Date      time.Time
	HomeTeam  string
	AwayTeam  string
	HomeScore int
	AwayScore int
}

// Repository describes dashboard reads.
type Repository interface {
	GetStats(ctx context.Context) (Stats, error)
	ListUpcoming(ctx context.Context, limit int) ([]Fixture, error)
	ListRecent(ctx context.Context, limit int) ([]Fixture, error)
}
