package club

import "context"

// Repository describes club persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Club, error)
	GetByID(ctx context.Context, id int64) (Club, bool, error)
	Create(ctx context.Context, c Club) (int64, error)
	Update(ctx context.Context, e Edit) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
