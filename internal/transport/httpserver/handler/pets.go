package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	petsdomain "vet-registry-go/internal/domain/pets"
)

type createPetRequest struct {
	OwnerID   int64       `json:"owner_id"`
	Name      string      `json:"name"`
	Species   string      `json:"species"`
	Breed     string      `json:"breed"`
	BirthDate string      `json:"birth_date"`
	Chip      chipRequest `json:"chip"`
}

type updatePetRequest struct {
	Name      string `json:"name"`
	Species   string `json:"species"`
	Breed     string `json:"breed"`
	BirthDate string `json:"birth_date"`
}

type petResponse struct {
	ID        int64          `json:"id"`
	OwnerID   int64          `json:"owner_id"`
	Name      string         `json:"name"`
	Species   string         `json:"species"`
	Breed     *string        `json:"breed"`
	BirthDate *string        `json:"birth_date"`
	Owner     *ownerResponse `json:"owner,omitempty"`
	Chip      *chipResponse  `json:"chip,omitempty"`
}

type petListResponse struct {
	Items []petResponse `json:"items"`
	Total int           `json:"total"`
}

func toPetResponse(pet petsdomain.Pet) petResponse {
	resp := petResponse{
		ID:        pet.ID,
		OwnerID:   pet.OwnerID,
		Name:      pet.Name,
		Species:   pet.Species,
		Breed:     pet.Breed,
		BirthDate: formatDate(pet.BirthDate),
	}
	if pet.Owner != nil {
		owner := toOwnerResponse(*pet.Owner)
		resp.Owner = &owner
	}
	if pet.Chip != nil {
		chip := toChipResponse(*pet.Chip)
		resp.Chip = &chip
	}
	return resp
}

// CreatePet registers a pet together with its chip; there is no chipless
// creation path.
func (h *Handlers) CreatePet(w http.ResponseWriter, r *http.Request) {
	var req createPetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid json body")
		return
	}

	birthDate, err := parseDateParam(req.BirthDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid birth_date, expected YYYY-MM-DD")
		return
	}

	pet := &petsdomain.Pet{
		OwnerID:   req.OwnerID,
		Name:      req.Name,
		Species:   req.Species,
		Breed:     optionalString(req.Breed),
		BirthDate: birthDate,
	}

	chip, err := req.Chip.toChip()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid chip implanted_at, expected YYYY-MM-DD")
		return
	}

	created, err := h.Pets.CreateWithChip(r.Context(), pet, chip)
	if err != nil {
		h.writeDomainError(w, "pets.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, toPetResponse(*created))
}

func (h *Handlers) GetPet(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	pet, err := h.Pets.GetByID(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, "pets.get", err)
		return
	}
	writeJSON(w, http.StatusOK, toPetResponse(*pet))
}

func (h *Handlers) ListPets(w http.ResponseWriter, r *http.Request) {
	var (
		pets []petsdomain.Pet
		err  error
	)
	if name := r.URL.Query().Get("name"); name != "" {
		pets, err = h.Pets.SearchByName(r.Context(), name)
	} else {
		pets, err = h.Pets.List(r.Context())
	}
	if err != nil {
		h.writeDomainError(w, "pets.list", err)
		return
	}

	items := make([]petResponse, 0, len(pets))
	for _, pet := range pets {
		items = append(items, toPetResponse(pet))
	}
	writeJSON(w, http.StatusOK, petListResponse{Items: items, Total: len(items)})
}

func (h *Handlers) ListPetsByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid owner id")
		return
	}

	pets, err := h.Pets.ListByOwner(r.Context(), ownerID)
	if err != nil {
		h.writeDomainError(w, "pets.list_by_owner", err)
		return
	}

	items := make([]petResponse, 0, len(pets))
	for _, pet := range pets {
		items = append(items, toPetResponse(pet))
	}
	writeJSON(w, http.StatusOK, petListResponse{Items: items, Total: len(items)})
}

func (h *Handlers) UpdatePet(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	var req updatePetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid json body")
		return
	}

	birthDate, err := parseDateParam(req.BirthDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid birth_date, expected YYYY-MM-DD")
		return
	}

	pet := &petsdomain.Pet{
		ID:        id,
		Name:      req.Name,
		Species:   req.Species,
		Breed:     optionalString(req.Breed),
		BirthDate: birthDate,
	}
	if err := h.Pets.Update(r.Context(), pet); err != nil {
		h.writeDomainError(w, "pets.update", err)
		return
	}
	writeJSON(w, http.StatusOK, toPetResponse(*pet))
}

// DeletePet soft-deletes the pet and its chip as one unit.
func (h *Handlers) DeletePet(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	if err := h.Pets.Delete(r.Context(), id); err != nil {
		h.writeDomainError(w, "pets.delete", err)
		return
	}
	writeNoContent(w)
}
