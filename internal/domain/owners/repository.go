package owners

import "context"

type Repository interface {
	// Transaction runs fn against a repository bound to a single transaction;
	// fn returning an error rolls back everything it did.
	Transaction(ctx context.Context, fn func(Repository) error) error

	Create(ctx context.Context, owner *Owner) error
	Update(ctx context.Context, owner *Owner) error
	SoftDelete(ctx context.Context, id int64) error

	GetByID(ctx context.Context, id int64) (*Owner, error)
	List(ctx context.Context) ([]Owner, error)
	FindByNationalID(ctx context.Context, nationalID string) (*Owner, error)
	FindByEmail(ctx context.Context, email string) (*Owner, error)
	SearchBySurname(ctx context.Context, surname string) ([]Owner, error)
	ExistsNationalID(ctx context.Context, nationalID string) (bool, error)
	ExistsEmail(ctx context.Context, email string) (bool, error)
	ExistsPhone(ctx context.Context, phone string) (bool, error)
}

// PetCounter is the one piece of the pets gateway the owner service needs:
// the active-pet count that gates owner deletion.
type PetCounter interface {
	CountActiveByOwner(ctx context.Context, ownerID int64) (int64, error)
}
