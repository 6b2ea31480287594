package owners

import (
	"context"
	"strings"

	"vet-registry-go/internal/apperrors"
)

type Service struct {
	repo Repository
	pets PetCounter
}

func NewService(repo Repository, pets PetCounter) *Service {
	return &Service{repo: repo, pets: pets}
}

// Create registers a new owner. Uniqueness of national id, email, and phone
// is probed before the transaction opens; the store-assigned id is populated
// on the returned owner.
func (s *Service) Create(ctx context.Context, owner *Owner) (*Owner, error) {
	if owner == nil {
		return nil, apperrors.Validation("owner is required")
	}
	owner.NationalID = strings.TrimSpace(owner.NationalID)
	owner.Name = strings.TrimSpace(owner.Name)
	owner.Surname = strings.TrimSpace(owner.Surname)
	owner.Email = trimOptional(owner.Email)
	owner.Phone = trimOptional(owner.Phone)
	owner.Address = trimOptional(owner.Address)
	if owner.NationalID == "" {
		return nil, apperrors.Validation("national id is required")
	}
	if owner.Name == "" {
		return nil, apperrors.Validation("name is required")
	}

	taken, err := s.repo.ExistsNationalID(ctx, owner.NationalID)
	if err != nil {
		return nil, apperrors.Persistence(err, "check national id %q", owner.NationalID)
	}
	if taken {
		return nil, apperrors.BusinessRule("national id %q is already registered", owner.NationalID)
	}
	if owner.Email != nil {
		taken, err := s.repo.ExistsEmail(ctx, *owner.Email)
		if err != nil {
			return nil, apperrors.Persistence(err, "check email %q", *owner.Email)
		}
		if taken {
			return nil, apperrors.BusinessRule("email %q is already registered", *owner.Email)
		}
	}
	if owner.Phone != nil {
		taken, err := s.repo.ExistsPhone(ctx, *owner.Phone)
		if err != nil {
			return nil, apperrors.Persistence(err, "check phone %q", *owner.Phone)
		}
		if taken {
			return nil, apperrors.BusinessRule("phone %q is already registered", *owner.Phone)
		}
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		return tx.Create(ctx, owner)
	})
	if err != nil {
		return nil, apperrors.Persistence(err, "create owner")
	}
	return owner, nil
}

func (s *Service) Update(ctx context.Context, owner *Owner) error {
	if owner == nil || owner.ID <= 0 {
		return apperrors.Validation("owner id must be positive")
	}
	owner.NationalID = strings.TrimSpace(owner.NationalID)
	owner.Name = strings.TrimSpace(owner.Name)
	owner.Surname = strings.TrimSpace(owner.Surname)
	owner.Email = trimOptional(owner.Email)
	owner.Phone = trimOptional(owner.Phone)
	owner.Address = trimOptional(owner.Address)
	if owner.NationalID == "" {
		return apperrors.Validation("national id is required")
	}

	// The national id may stay with its current holder but not move to
	// another owner.
	holder, err := s.repo.FindByNationalID(ctx, owner.NationalID)
	if err != nil && !isNotFound(err) {
		return apperrors.Persistence(err, "check national id %q", owner.NationalID)
	}
	if holder != nil && holder.ID != owner.ID {
		return apperrors.BusinessRule("national id %q already belongs to another owner", owner.NationalID)
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		return tx.Update(ctx, owner)
	})
	if err != nil {
		return apperrors.Persistence(err, "update owner %d", owner.ID)
	}
	return nil
}

// Delete soft-deletes an owner. An owner with active pets cannot be deleted;
// the count is read before the transaction opens, so two concurrent callers
// can race the gate (a store-level constraint would be needed to close it).
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.Validation("owner id must be positive")
	}

	active, err := s.pets.CountActiveByOwner(ctx, id)
	if err != nil {
		return apperrors.Persistence(err, "count pets of owner %d", id)
	}
	if active > 0 {
		return apperrors.BusinessRule("owner %d still has %d active pet(s)", id, active)
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		return tx.SoftDelete(ctx, id)
	})
	if err != nil {
		return apperrors.Persistence(err, "delete owner %d", id)
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Owner, error) {
	if id <= 0 {
		return nil, apperrors.Validation("owner id must be positive")
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Owner, error) {
	return s.repo.List(ctx)
}

func (s *Service) FindByNationalID(ctx context.Context, nationalID string) (*Owner, error) {
	nationalID = strings.TrimSpace(nationalID)
	if nationalID == "" {
		return nil, apperrors.Validation("national id is required")
	}
	return s.repo.FindByNationalID(ctx, nationalID)
}

func (s *Service) FindByEmail(ctx context.Context, email string) (*Owner, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, apperrors.Validation("email is required")
	}
	return s.repo.FindByEmail(ctx, email)
}

// trimOptional normalizes an optional field: whitespace is stripped and a
// blank value becomes absent, so uniqueness probes always see the stored form.
func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// SearchBySurname does a partial, case-insensitive match.
func (s *Service) SearchBySurname(ctx context.Context, surname string) ([]Owner, error) {
	surname = strings.TrimSpace(surname)
	if surname == "" {
		return nil, apperrors.Validation("surname is required")
	}
	return s.repo.SearchBySurname(ctx, surname)
}
