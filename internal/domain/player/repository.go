package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	ListRoster(ctx context.Context) ([]RosterEntry, error)
	Search(ctx context.Context, filter SearchFilter) ([]SearchResult, error)
	GetByID(ctx context.Context, id int64) (Player, bool, error)
	Create(ctx context.Context, p Player) (int64, error)
	Update(ctx context.Context, p Player) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
