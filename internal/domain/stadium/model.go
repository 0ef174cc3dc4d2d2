package stadium

import "context"

// Stadium is read-only from the API; rows come from seed migrations.
type Stadium struct {
	ID       int64
	Name     string
	City     string
	Capacity int
}

type Repository interface {
	List(ctx context.Context) ([]Stadium, error)
}
