package owners

import (
	"context"
	"errors"

	"gorm.io/gorm"
	ownersdomain "vet-registry-go/internal/domain/owners"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(ownersdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) Create(ctx context.Context, owner *ownersdomain.Owner) error {
	if err := r.db.WithContext(ctx).Create(owner).Error; err != nil {
		return err
	}
	if owner.ID == 0 {
		return errors.New("create owner: no id returned")
	}
	return nil
}

// Update overwrites the full row, scoped to active rows. A non-existent or
// already-deleted id is a silent no-op; callers pre-check existence when the
// distinction matters.
func (r *PostgresRepository) Update(ctx context.Context, owner *ownersdomain.Owner) error {
	return r.db.WithContext(ctx).Model(&ownersdomain.Owner{}).
		Where("id = ? AND deleted = FALSE", owner.ID).
		Updates(map[string]interface{}{
			"national_id": owner.NationalID,
			"name":        owner.Name,
			"surname":     owner.Surname,
			"email":       owner.Email,
			"phone":       owner.Phone,
			"address":     owner.Address,
		}).Error
}

func (r *PostgresRepository) SoftDelete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&ownersdomain.Owner{}).
		Where("id = ? AND deleted = FALSE", id).
		Update("deleted", true).Error
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*ownersdomain.Owner, error) {
	var owner ownersdomain.Owner
	err := r.db.WithContext(ctx).
		Where("id = ? AND deleted = FALSE", id).
		First(&owner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ownersdomain.ErrOwnerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]ownersdomain.Owner, error) {
	var owners []ownersdomain.Owner
	if err := r.db.WithContext(ctx).
		Where("deleted = FALSE").
		Order("id asc").
		Find(&owners).Error; err != nil {
		return nil, err
	}
	return owners, nil
}

func (r *PostgresRepository) FindByNationalID(ctx context.Context, nationalID string) (*ownersdomain.Owner, error) {
	var owner ownersdomain.Owner
	err := r.db.WithContext(ctx).
		Where("national_id = ? AND deleted = FALSE", nationalID).
		First(&owner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ownersdomain.ErrOwnerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*ownersdomain.Owner, error) {
	var owner ownersdomain.Owner
	err := r.db.WithContext(ctx).
		Where("email = ? AND deleted = FALSE", email).
		First(&owner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ownersdomain.ErrOwnerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

func (r *PostgresRepository) SearchBySurname(ctx context.Context, surname string) ([]ownersdomain.Owner, error) {
	var owners []ownersdomain.Owner
	if err := r.db.WithContext(ctx).
		Where("surname ILIKE ? AND deleted = FALSE", "%"+surname+"%").
		Order("surname asc").
		Find(&owners).Error; err != nil {
		return nil, err
	}
	return owners, nil
}

func (r *PostgresRepository) ExistsNationalID(ctx context.Context, nationalID string) (bool, error) {
	return r.exists(ctx, "national_id = ?", nationalID)
}

func (r *PostgresRepository) ExistsEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = ?", email)
}

func (r *PostgresRepository) ExistsPhone(ctx context.Context, phone string) (bool, error) {
	return r.exists(ctx, "phone = ?", phone)
}

func (r *PostgresRepository) exists(ctx context.Context, query string, arg string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ownersdomain.Owner{}).
		Where(query, arg).
		Where("deleted = FALSE").
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
