package chips

import (
	"context"
	"errors"

	"gorm.io/gorm"
	chipsdomain "vet-registry-go/internal/domain/chips"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(chipsdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) Create(ctx context.Context, chip *chipsdomain.Chip) error {
	if err := r.db.WithContext(ctx).Create(chip).Error; err != nil {
		return err
	}
	if chip.ID == 0 {
		return errors.New("create chip: no id returned")
	}
	return nil
}

// CreateForPet inserts the chip with its pet foreign key already set. Only
// the combined pet+chip creation flow calls this.
func (r *PostgresRepository) CreateForPet(ctx context.Context, chip *chipsdomain.Chip, petID int64) error {
	chip.PetID = &petID
	return r.Create(ctx, chip)
}

func (r *PostgresRepository) Update(ctx context.Context, chip *chipsdomain.Chip) error {
	return r.db.WithContext(ctx).Model(&chipsdomain.Chip{}).
		Where("id = ? AND deleted = FALSE", chip.ID).
		Updates(map[string]interface{}{
			"code":         chip.Code,
			"implanted_at": chip.ImplantedAt,
			"clinic":       chip.Clinic,
			"notes":        chip.Notes,
		}).Error
}

func (r *PostgresRepository) SoftDelete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&chipsdomain.Chip{}).
		Where("id = ? AND deleted = FALSE", id).
		Update("deleted", true).Error
}

func (r *PostgresRepository) SoftDeleteByPet(ctx context.Context, petID int64) error {
	return r.db.WithContext(ctx).Model(&chipsdomain.Chip{}).
		Where("pet_id = ? AND deleted = FALSE", petID).
		Update("deleted", true).Error
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*chipsdomain.Chip, error) {
	var chip chipsdomain.Chip
	err := r.db.WithContext(ctx).
		Where("id = ? AND deleted = FALSE", id).
		First(&chip).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, chipsdomain.ErrChipNotFound
	}
	if err != nil {
		return nil, err
	}
	return &chip, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]chipsdomain.Chip, error) {
	var chips []chipsdomain.Chip
	if err := r.db.WithContext(ctx).
		Where("deleted = FALSE").
		Order("id asc").
		Find(&chips).Error; err != nil {
		return nil, err
	}
	return chips, nil
}

func (r *PostgresRepository) FindByCode(ctx context.Context, code string) (*chipsdomain.Chip, error) {
	var chip chipsdomain.Chip
	err := r.db.WithContext(ctx).
		Where("code = ? AND deleted = FALSE", code).
		First(&chip).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, chipsdomain.ErrChipNotFound
	}
	if err != nil {
		return nil, err
	}
	return &chip, nil
}

func (r *PostgresRepository) FindByPetID(ctx context.Context, petID int64) (*chipsdomain.Chip, error) {
	var chip chipsdomain.Chip
	err := r.db.WithContext(ctx).
		Where("pet_id = ? AND deleted = FALSE", petID).
		First(&chip).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, chipsdomain.ErrChipNotFound
	}
	if err != nil {
		return nil, err
	}
	return &chip, nil
}

func (r *PostgresRepository) ExistsCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&chipsdomain.Chip{}).
		Where("code = ? AND deleted = FALSE", code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
