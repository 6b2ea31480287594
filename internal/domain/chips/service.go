package chips

import (
	"context"
	"strings"

	"vet-registry-go/internal/apperrors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create registers a standalone chip, not yet bound to a pet. The usual path
// is co-creation with a pet; this exists for the exceptional stock-of-chips case.
func (s *Service) Create(ctx context.Context, chip *Chip) (*Chip, error) {
	if chip == nil {
		return nil, apperrors.Validation("chip is required")
	}
	chip.Code = strings.TrimSpace(chip.Code)
	if chip.Code == "" {
		return nil, apperrors.Validation("chip code is required")
	}

	taken, err := s.repo.ExistsCode(ctx, chip.Code)
	if err != nil {
		return nil, apperrors.Persistence(err, "check chip code %q", chip.Code)
	}
	if taken {
		return nil, apperrors.BusinessRule("chip code %q is already registered", chip.Code)
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		return tx.Create(ctx, chip)
	})
	if err != nil {
		return nil, apperrors.Persistence(err, "create chip")
	}
	return chip, nil
}

func (s *Service) Update(ctx context.Context, chip *Chip) error {
	if chip == nil || chip.ID <= 0 {
		return apperrors.Validation("chip id must be positive")
	}
	chip.Code = strings.TrimSpace(chip.Code)
	if chip.Code == "" {
		return apperrors.Validation("chip code is required")
	}

	// The code may stay with its current holder but not move to another chip.
	holder, err := s.repo.FindByCode(ctx, chip.Code)
	if err != nil && !isNotFound(err) {
		return apperrors.Persistence(err, "check chip code %q", chip.Code)
	}
	if holder != nil && holder.ID != chip.ID {
		return apperrors.BusinessRule("chip code %q already belongs to another chip", chip.Code)
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		return tx.Update(ctx, chip)
	})
	if err != nil {
		return apperrors.Persistence(err, "update chip %d", chip.ID)
	}
	return nil
}

// Delete always fails: chips are dependent entities and go away only when
// their pet is deleted.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return apperrors.Policy("chips cannot be deleted directly; delete the owning pet instead")
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Chip, error) {
	if id <= 0 {
		return nil, apperrors.Validation("chip id must be positive")
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Chip, error) {
	return s.repo.List(ctx)
}

func (s *Service) FindByCode(ctx context.Context, code string) (*Chip, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, apperrors.Validation("chip code is required")
	}
	return s.repo.FindByCode(ctx, code)
}

func (s *Service) FindByPetID(ctx context.Context, petID int64) (*Chip, error) {
	if petID <= 0 {
		return nil, apperrors.Validation("pet id must be positive")
	}
	return s.repo.FindByPetID(ctx, petID)
}
