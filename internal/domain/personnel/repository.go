package personnel

import "context"

type Repository interface {
	Create(ctx context.Context, p Personnel) error
	GetByID(ctx context.Context, id string) (Personnel, error)
	GetByEmail(ctx context.Context, email string) (Personnel, error)
}
