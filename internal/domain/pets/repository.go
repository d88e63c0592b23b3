package pets

import (
	"context"

	"pet-registry/internal/domain/owners"
)

type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)

	// GetByRFID busca por rfid_number y resuelve el dueño en la misma
	// operación lógica (un join, no dos llamadas visibles al caller).
	// Devuelve ErrNotFound si no hay mascota y ErrOwnerMissing si la
	// mascota existe pero su dueño no resuelve.
	GetByRFID(ctx context.Context, code string) (Pet, owners.Owner, error)

	List(ctx context.Context) ([]Pet, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Pet, error)
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id string) error
}
