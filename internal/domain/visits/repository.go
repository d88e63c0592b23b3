package visits

import "context"

type Repository interface {
	Create(ctx context.Context, v Visit) error
	GetByID(ctx context.Context, id string) (Visit, error)
	List(ctx context.Context) ([]Visit, error)
	ListByPet(ctx context.Context, petID string) ([]Visit, error)
	Update(ctx context.Context, v Visit) error
}
