package cache

import (
	"context"

	"github.com/riskibarqy/club-manager/internal/domain/stadium"
	basecache "github.com/riskibarqy/club-manager/internal/platform/cache"
)

const stadiumListKey = "stadium:list"

// StadiumRepository serves the stadium dropdown from memory. Stadiums have no write path in the API,
// so entries only age out by TTL.
type StadiumRepository struct {
	next  stadium.Repository
	cache *basecache.Store[[]stadium.Stadium]
}

func NewStadiumRepository(next stadium.Repository, cache *basecache.Store[[]stadium.Stadium]) *StadiumRepository {
	return &StadiumRepository{next: next, cache: cache}
}

func (r *StadiumRepository) List(ctx context.Context) ([]stadium.Stadium, error) {
	items, err := r.cache.GetOrLoad(ctx, stadiumListKey, func(ctx context.Context) ([]stadium.Stadium, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]stadium.Stadium(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]stadium.Stadium(nil), items...), nil
}
