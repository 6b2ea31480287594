package owners

import (
	"context"
	"errors"
	"strings"
	"testing"

	"vet-registry-go/internal/apperrors"
)

type fakeOwnerRepo struct {
	owners map[int64]*Owner
	nextID int64
}

func newFakeOwnerRepo() *fakeOwnerRepo {
	return &fakeOwnerRepo{owners: make(map[int64]*Owner)}
}

func (r *fakeOwnerRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	snapshot := r.snapshot()
	if err := fn(r); err != nil {
		r.owners = snapshot
		return err
	}
	return nil
}

func (r *fakeOwnerRepo) snapshot() map[int64]*Owner {
	copied := make(map[int64]*Owner, len(r.owners))
	for id, owner := range r.owners {
		clone := *owner
		copied[id] = &clone
	}
	return copied
}

func (r *fakeOwnerRepo) Create(ctx context.Context, owner *Owner) error {
	r.nextID++
	owner.ID = r.nextID
	clone := *owner
	r.owners[owner.ID] = &clone
	return nil
}

func (r *fakeOwnerRepo) Update(ctx context.Context, owner *Owner) error {
	existing, ok := r.owners[owner.ID]
	if !ok || existing.Deleted {
		return nil
	}
	clone := *owner
	clone.Deleted = existing.Deleted
	r.owners[owner.ID] = &clone
	return nil
}

func (r *fakeOwnerRepo) SoftDelete(ctx context.Context, id int64) error {
	if owner, ok := r.owners[id]; ok && !owner.Deleted {
		owner.Deleted = true
	}
	return nil
}

func (r *fakeOwnerRepo) GetByID(ctx context.Context, id int64) (*Owner, error) {
	owner, ok := r.owners[id]
	if !ok || owner.Deleted {
		return nil, ErrOwnerNotFound
	}
	clone := *owner
	return &clone, nil
}

func (r *fakeOwnerRepo) List(ctx context.Context) ([]Owner, error) {
	result := make([]Owner, 0)
	for _, owner := range r.owners {
		if !owner.Deleted {
			result = append(result, *owner)
		}
	}
	return result, nil
}

func (r *fakeOwnerRepo) FindByNationalID(ctx context.Context, nationalID string) (*Owner, error) {
	for _, owner := range r.owners {
		if !owner.Deleted && owner.NationalID == nationalID {
			clone := *owner
			return &clone, nil
		}
	}
	return nil, ErrOwnerNotFound
}

func (r *fakeOwnerRepo) FindByEmail(ctx context.Context, email string) (*Owner, error) {
	for _, owner := range r.owners {
		if !owner.Deleted && owner.Email != nil && *owner.Email == email {
			clone := *owner
			return &clone, nil
		}
	}
	return nil, ErrOwnerNotFound
}

func (r *fakeOwnerRepo) SearchBySurname(ctx context.Context, surname string) ([]Owner, error) {
	result := make([]Owner, 0)
	for _, owner := range r.owners {
		if !owner.Deleted && strings.Contains(strings.ToLower(owner.Surname), strings.ToLower(surname)) {
			result = append(result, *owner)
		}
	}
	return result, nil
}

func (r *fakeOwnerRepo) ExistsNationalID(ctx context.Context, nationalID string) (bool, error) {
	_, err := r.FindByNationalID(ctx, nationalID)
	return err == nil, nil
}

func (r *fakeOwnerRepo) ExistsEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	return err == nil, nil
}

func (r *fakeOwnerRepo) ExistsPhone(ctx context.Context, phone string) (bool, error) {
	for _, owner := range r.owners {
		if !owner.Deleted && owner.Phone != nil && *owner.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

type fakePetCounter struct {
	counts map[int64]int64
}

func (c *fakePetCounter) CountActiveByOwner(ctx context.Context, ownerID int64) (int64, error) {
	return c.counts[ownerID], nil
}

func strPtr(s string) *string { return &s }

func newTestService() (*Service, *fakeOwnerRepo, *fakePetCounter) {
	repo := newFakeOwnerRepo()
	pets := &fakePetCounter{counts: make(map[int64]int64)}
	return NewService(repo, pets), repo, pets
}

func TestCreateAssignsStoreID(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.Create(context.Background(), &Owner{NationalID: "123", Name: "Ana", Surname: "Lopez"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID <= 0 {
		t.Fatalf("expected store-assigned id, got %d", created.ID)
	}
}

func TestCreateValidatesInput(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	cases := []struct {
		name  string
		owner *Owner
	}{
		{"nil owner", nil},
		{"missing national id", &Owner{Name: "Ana"}},
		{"missing name", &Owner{NationalID: "123"}},
		{"blank national id", &Owner{NationalID: "   ", Name: "Ana"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.owner)
			if !errors.Is(err, apperrors.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateRejectsDuplicateUniqueFields(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	first := &Owner{NationalID: "123", Name: "Ana", Surname: "Lopez", Email: strPtr("ana@example.com"), Phone: strPtr("555-0101")}
	if _, err := svc.Create(ctx, first); err != nil {
		t.Fatalf("create: %v", err)
	}

	cases := []struct {
		name  string
		owner *Owner
	}{
		{"national id", &Owner{NationalID: "123", Name: "Beto", Surname: "Diaz"}},
		{"email", &Owner{NationalID: "456", Name: "Beto", Surname: "Diaz", Email: strPtr("ana@example.com")}},
		{"phone", &Owner{NationalID: "789", Name: "Beto", Surname: "Diaz", Phone: strPtr("555-0101")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.owner)
			if !errors.Is(err, apperrors.ErrBusinessRule) {
				t.Fatalf("expected business rule violation, got %v", err)
			}
		})
	}
}

func TestCreateNormalizesOptionalFields(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	first := &Owner{NationalID: "123", Name: "Ana", Surname: "Lopez", Email: strPtr("ana@example.com"), Phone: strPtr("555-0101")}
	if _, err := svc.Create(ctx, first); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Padding must not slip past the uniqueness probes.
	cases := []struct {
		name  string
		owner *Owner
	}{
		{"padded email", &Owner{NationalID: "456", Name: "Beto", Surname: "Diaz", Email: strPtr("  ana@example.com ")}},
		{"padded phone", &Owner{NationalID: "789", Name: "Beto", Surname: "Diaz", Phone: strPtr(" 555-0101  ")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.owner)
			if !errors.Is(err, apperrors.ErrBusinessRule) {
				t.Fatalf("expected business rule violation, got %v", err)
			}
		})
	}

	created, err := svc.Create(ctx, &Owner{
		NationalID: " 456 ",
		Name:       " Beto ",
		Surname:    " Diaz ",
		Email:      strPtr(" beto@example.com "),
		Address:    strPtr("   "),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.NationalID != "456" || created.Name != "Beto" || created.Surname != "Diaz" {
		t.Fatalf("expected trimmed fields, got %q %q %q", created.NationalID, created.Name, created.Surname)
	}
	if created.Email == nil || *created.Email != "beto@example.com" {
		t.Fatalf("expected trimmed email, got %v", created.Email)
	}
	if created.Address != nil {
		t.Fatalf("expected blank address to be dropped, got %q", *created.Address)
	}
}

func TestCreateAllowsReusedValuesAfterSoftDelete(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	first, err := svc.Create(ctx, &Owner{NationalID: "123", Name: "Ana", Surname: "Lopez", Email: strPtr("ana@example.com")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := svc.Create(ctx, &Owner{NationalID: "123", Name: "Ana", Surname: "Lopez", Email: strPtr("ana@example.com")}); err != nil {
		t.Fatalf("expected reuse after soft delete to succeed, got %v", err)
	}
}

func TestUpdateKeepsOwnNationalID(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &Owner{NationalID: "123", Name: "Ana", Surname: "Lopez"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	created.Name = "Ana Maria"
	if err := svc.Update(ctx, created); err != nil {
		t.Fatalf("update with own national id should succeed, got %v", err)
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Ana Maria" {
		t.Fatalf("expected updated name, got %q", got.Name)
	}
}

func TestUpdateRejectsNationalIDOfAnotherOwner(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, &Owner{NationalID: "123", Name: "Ana", Surname: "Lopez"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := svc.Create(ctx, &Owner{NationalID: "456", Name: "Beto", Surname: "Diaz"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	second.NationalID = "123"
	if err := svc.Update(ctx, second); !errors.Is(err, apperrors.ErrBusinessRule) {
		t.Fatalf("expected business rule violation, got %v", err)
	}
}

func TestDeleteBlockedWhileOwnerHasActivePets(t *testing.T) {
	svc, _, pets := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &Owner{NationalID: "123", Name: "Ana", Surname: "Lopez"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	pets.counts[created.ID] = 1

	err = svc.Delete(ctx, created.ID)
	if !errors.Is(err, apperrors.ErrBusinessRule) {
		t.Fatalf("expected business rule violation, got %v", err)
	}
	if !strings.Contains(err.Error(), "1 active pet") {
		t.Fatalf("expected message to name the blocking count, got %q", err.Error())
	}

	// Once the last pet is gone the delete goes through.
	pets.counts[created.ID] = 0
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete after pets gone: %v", err)
	}
}

func TestSoftDeletedOwnerIsInvisibleToReads(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &Owner{NationalID: "123", Name: "Ana", Surname: "Lopez"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := svc.GetByID(ctx, created.ID); !errors.Is(err, ErrOwnerNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.FindByNationalID(ctx, "123"); !errors.Is(err, ErrOwnerNotFound) {
		t.Fatalf("expected not found by national id, got %v", err)
	}
	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty list, got %d owners", len(all))
	}
}

func TestReadsValidateInput(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.GetByID(ctx, 0); !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected validation error for id 0, got %v", err)
	}
	if _, err := svc.FindByNationalID(ctx, "  "); !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected validation error for blank national id, got %v", err)
	}
	if _, err := svc.SearchBySurname(ctx, ""); !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected validation error for blank surname, got %v", err)
	}
	if err := svc.Delete(ctx, -1); !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected validation error for negative id, got %v", err)
	}
}
