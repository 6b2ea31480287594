package pets

import (
	"context"
	"errors"
	"strings"

	"vet-registry-go/internal/apperrors"
	"vet-registry-go/internal/domain/chips"
	"vet-registry-go/internal/domain/owners"
)

type Service struct {
	repo      Repository
	chipsRepo chips.Repository
	ownerRepo OwnerReader
}

func NewService(repo Repository, chipsRepo chips.Repository, ownerRepo OwnerReader) *Service {
	return &Service{repo: repo, chipsRepo: chipsRepo, ownerRepo: ownerRepo}
}

// CreateWithChip registers a pet together with its chip in one transaction.
// The pet is inserted first to obtain its id, the chip is then inserted with
// that id as its foreign key; a failure at either step rolls back both.
func (s *Service) CreateWithChip(ctx context.Context, pet *Pet, chip *chips.Chip) (*Pet, error) {
	if pet == nil || chip == nil {
		return nil, apperrors.Validation("pet and chip are required")
	}
	if pet.OwnerID <= 0 {
		return nil, apperrors.Validation("pet must reference an owner")
	}

	if _, err := s.ownerRepo.GetByID(ctx, pet.OwnerID); err != nil {
		if errors.Is(err, owners.ErrOwnerNotFound) {
			return nil, apperrors.BusinessRule("owner %d does not exist", pet.OwnerID)
		}
		return nil, apperrors.Persistence(err, "look up owner %d", pet.OwnerID)
	}

	chip.Code = strings.TrimSpace(chip.Code)
	if chip.Code == "" {
		return nil, apperrors.Validation("chip code is required")
	}
	taken, err := s.chipsRepo.ExistsCode(ctx, chip.Code)
	if err != nil {
		return nil, apperrors.Persistence(err, "check chip code %q", chip.Code)
	}
	if taken {
		return nil, apperrors.BusinessRule("chip code %q is already registered", chip.Code)
	}

	pet.Name = strings.TrimSpace(pet.Name)
	if pet.Name == "" {
		return nil, apperrors.Validation("pet name is required")
	}

	err = s.repo.Transaction(ctx, func(petTx Repository, chipTx chips.Repository) error {
		if err := petTx.Create(ctx, pet); err != nil {
			return err
		}
		return chipTx.CreateForPet(ctx, chip, pet.ID)
	})
	if err != nil {
		return nil, apperrors.Persistence(err, "create pet with chip")
	}

	pet.Chip = chip
	return pet, nil
}

// Create is disallowed: every pet is chipped at creation, so the combined
// CreateWithChip is the only creation path.
func (s *Service) Create(ctx context.Context, pet *Pet) (*Pet, error) {
	return nil, apperrors.Policy("standalone pet creation is not allowed; use the combined pet and chip creation")
}

func (s *Service) Update(ctx context.Context, pet *Pet) error {
	if pet == nil || pet.ID <= 0 {
		return apperrors.Validation("pet id must be positive")
	}
	pet.Name = strings.TrimSpace(pet.Name)
	if pet.Name == "" {
		return apperrors.Validation("pet name is required")
	}

	err := s.repo.Transaction(ctx, func(petTx Repository, _ chips.Repository) error {
		return petTx.Update(ctx, pet)
	})
	if err != nil {
		return apperrors.Persistence(err, "update pet %d", pet.ID)
	}
	return nil
}

// Delete soft-deletes a pet and its chip as one unit, chip first.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.Validation("pet id must be positive")
	}

	err := s.repo.Transaction(ctx, func(petTx Repository, chipTx chips.Repository) error {
		if err := chipTx.SoftDeleteByPet(ctx, id); err != nil {
			return err
		}
		return petTx.SoftDelete(ctx, id)
	})
	if err != nil {
		return apperrors.Persistence(err, "delete pet %d", id)
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Pet, error) {
	if id <= 0 {
		return nil, apperrors.Validation("pet id must be positive")
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]Pet, error) {
	if ownerID <= 0 {
		return nil, apperrors.Validation("owner id must be positive")
	}
	return s.repo.ListByOwner(ctx, ownerID)
}

// SearchByName does a partial, case-insensitive match.
func (s *Service) SearchByName(ctx context.Context, name string) ([]Pet, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.Validation("pet name is required")
	}
	return s.repo.SearchByName(ctx, name)
}
