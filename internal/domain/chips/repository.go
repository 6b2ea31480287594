package chips

import "context"

type Repository interface {
	// Transaction runs fn against a repository bound to a single transaction;
	// fn returning an error rolls back everything it did.
	Transaction(ctx context.Context, fn func(Repository) error) error

	Create(ctx context.Context, chip *Chip) error
	// CreateForPet inserts the chip with its pet foreign key set. Used only
	// by the combined pet+chip creation flow.
	CreateForPet(ctx context.Context, chip *Chip, petID int64) error
	Update(ctx context.Context, chip *Chip) error
	SoftDelete(ctx context.Context, id int64) error
	// SoftDeleteByPet marks the chip bound to petID as deleted. Cascade step
	// of pet deletion; a pet without a chip makes this a no-op.
	SoftDeleteByPet(ctx context.Context, petID int64) error

	GetByID(ctx context.Context, id int64) (*Chip, error)
	List(ctx context.Context) ([]Chip, error)
	FindByCode(ctx context.Context, code string) (*Chip, error)
	FindByPetID(ctx context.Context, petID int64) (*Chip, error)
	ExistsCode(ctx context.Context, code string) (bool, error)
}
