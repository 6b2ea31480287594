package pets

import (
	"context"
	"errors"

	"gorm.io/gorm"
	chipsdomain "vet-registry-go/internal/domain/chips"
	petsdomain "vet-registry-go/internal/domain/pets"
	chipsrepo "vet-registry-go/internal/repository/postgres/chips"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Transaction binds the pet and chip repositories to one transaction so the
// combined creation and the cascading delete commit or roll back together.
func (r *PostgresRepository) Transaction(ctx context.Context, fn func(petsdomain.Repository, chipsdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx}, chipsrepo.NewPostgres(tx))
	})
}

func (r *PostgresRepository) Create(ctx context.Context, pet *petsdomain.Pet) error {
	if err := r.db.WithContext(ctx).
		Omit("Owner", "Chip").
		Create(pet).Error; err != nil {
		return err
	}
	if pet.ID == 0 {
		return errors.New("create pet: no id returned")
	}
	return nil
}

// Update overwrites the pet's own fields; owner_id is deliberately absent so
// ownership can never be reassigned.
func (r *PostgresRepository) Update(ctx context.Context, pet *petsdomain.Pet) error {
	return r.db.WithContext(ctx).Model(&petsdomain.Pet{}).
		Where("id = ? AND deleted = FALSE", pet.ID).
		Updates(map[string]interface{}{
			"name":       pet.Name,
			"species":    pet.Species,
			"breed":      pet.Breed,
			"birth_date": pet.BirthDate,
		}).Error
}

func (r *PostgresRepository) SoftDelete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&petsdomain.Pet{}).
		Where("id = ? AND deleted = FALSE", id).
		Update("deleted", true).Error
}

// Reads eager-load Owner and Chip through LEFT JOINs in a single query; a
// pet without a chip comes back with Chip == nil.

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*petsdomain.Pet, error) {
	var pet petsdomain.Pet
	err := r.eager(ctx).
		Where("pets.id = ? AND pets.deleted = FALSE", id).
		First(&pet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, petsdomain.ErrPetNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pet, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]petsdomain.Pet, error) {
	var pets []petsdomain.Pet
	if err := r.eager(ctx).
		Where("pets.deleted = FALSE").
		Order("pets.id asc").
		Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID int64) ([]petsdomain.Pet, error) {
	var pets []petsdomain.Pet
	if err := r.eager(ctx).
		Where("pets.owner_id = ? AND pets.deleted = FALSE", ownerID).
		Order("pets.id asc").
		Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *PostgresRepository) SearchByName(ctx context.Context, name string) ([]petsdomain.Pet, error) {
	var pets []petsdomain.Pet
	if err := r.eager(ctx).
		Where("pets.name ILIKE ? AND pets.deleted = FALSE", "%"+name+"%").
		Order("pets.name asc").
		Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *PostgresRepository) CountActiveByOwner(ctx context.Context, ownerID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&petsdomain.Pet{}).
		Where("owner_id = ? AND deleted = FALSE", ownerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) eager(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Joins("Owner").Joins("Chip")
}
