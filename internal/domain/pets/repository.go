package pets

import (
	"context"

	"vet-registry-go/internal/domain/chips"
	"vet-registry-go/internal/domain/owners"
)

type Repository interface {
	// Transaction runs fn against pet and chip repositories bound to the same
	// transaction, so the combined creation and the cascading delete commit or
	// roll back as one unit.
	Transaction(ctx context.Context, fn func(Repository, chips.Repository) error) error

	Create(ctx context.Context, pet *Pet) error
	// Update overwrites the pet's own fields only; the owner reference is
	// immutable after creation.
	Update(ctx context.Context, pet *Pet) error
	SoftDelete(ctx context.Context, id int64) error

	GetByID(ctx context.Context, id int64) (*Pet, error)
	List(ctx context.Context) ([]Pet, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]Pet, error)
	SearchByName(ctx context.Context, name string) ([]Pet, error)
	CountActiveByOwner(ctx context.Context, ownerID int64) (int64, error)
}

// OwnerReader is the slice of the owners gateway the pet service needs to
// verify that a pet's owner exists and is active.
type OwnerReader interface {
	GetByID(ctx context.Context, id int64) (*owners.Owner, error)
}
