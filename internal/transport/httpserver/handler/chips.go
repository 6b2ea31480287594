package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chipsdomain "vet-registry-go/internal/domain/chips"
)

type chipRequest struct {
	Code        string `json:"code"`
	ImplantedAt string `json:"implanted_at"`
	Clinic      string `json:"clinic"`
	Notes       string `json:"notes"`
}

type chipResponse struct {
	ID          int64   `json:"id"`
	Code        string  `json:"code"`
	ImplantedAt *string `json:"implanted_at"`
	Clinic      *string `json:"clinic"`
	Notes       *string `json:"notes"`
}

type chipListResponse struct {
	Items []chipResponse `json:"items"`
	Total int            `json:"total"`
}

func (req chipRequest) toChip() (*chipsdomain.Chip, error) {
	implantedAt, err := parseDateParam(req.ImplantedAt)
	if err != nil {
		return nil, err
	}
	return &chipsdomain.Chip{
		Code:        req.Code,
		ImplantedAt: implantedAt,
		Clinic:      optionalString(req.Clinic),
		Notes:       optionalString(req.Notes),
	}, nil
}

func toChipResponse(chip chipsdomain.Chip) chipResponse {
	return chipResponse{
		ID:          chip.ID,
		Code:        chip.Code,
		ImplantedAt: formatDate(chip.ImplantedAt),
		Clinic:      chip.Clinic,
		Notes:       chip.Notes,
	}
}

// CreateChip covers the exceptional standalone-chip case; the usual path is
// co-creation with a pet.
func (h *Handlers) CreateChip(w http.ResponseWriter, r *http.Request) {
	var req chipRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid json body")
		return
	}

	chip, err := req.toChip()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid implanted_at, expected YYYY-MM-DD")
		return
	}

	created, err := h.Chips.Create(r.Context(), chip)
	if err != nil {
		h.writeDomainError(w, "chips.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, toChipResponse(*created))
}

func (h *Handlers) GetChip(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	chip, err := h.Chips.GetByID(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, "chips.get", err)
		return
	}
	writeJSON(w, http.StatusOK, toChipResponse(*chip))
}

func (h *Handlers) ListChips(w http.ResponseWriter, r *http.Request) {
	var (
		chips []chipsdomain.Chip
		err   error
	)
	query := r.URL.Query()
	switch {
	case query.Get("code") != "":
		var chip *chipsdomain.Chip
		chip, err = h.Chips.FindByCode(r.Context(), query.Get("code"))
		if chip != nil {
			chips = []chipsdomain.Chip{*chip}
		}
	case query.Get("pet_id") != "":
		petID, parseErr := parseIDParam(query.Get("pet_id"))
		if parseErr != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid pet_id")
			return
		}
		var chip *chipsdomain.Chip
		chip, err = h.Chips.FindByPetID(r.Context(), petID)
		if chip != nil {
			chips = []chipsdomain.Chip{*chip}
		}
	default:
		chips, err = h.Chips.List(r.Context())
	}
	if err != nil {
		h.writeDomainError(w, "chips.list", err)
		return
	}

	items := make([]chipResponse, 0, len(chips))
	for _, chip := range chips {
		items = append(items, toChipResponse(chip))
	}
	writeJSON(w, http.StatusOK, chipListResponse{Items: items, Total: len(items)})
}

func (h *Handlers) UpdateChip(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	var req chipRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid json body")
		return
	}

	chip, err := req.toChip()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid implanted_at, expected YYYY-MM-DD")
		return
	}
	chip.ID = id

	if err := h.Chips.Update(r.Context(), chip); err != nil {
		h.writeDomainError(w, "chips.update", err)
		return
	}
	writeJSON(w, http.StatusOK, toChipResponse(*chip))
}

// DeleteChip always refuses: chips go away only with their pet.
func (h *Handlers) DeleteChip(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	if err := h.Chips.Delete(r.Context(), id); err != nil {
		h.writeDomainError(w, "chips.delete", err)
		return
	}
	writeNoContent(w)
}
