package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	ownersdomain "vet-registry-go/internal/domain/owners"
)

type ownerRequest struct {
	NationalID string `json:"national_id"`
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}

type ownerResponse struct {
	ID         int64   `json:"id"`
	NationalID string  `json:"national_id"`
	Name       string  `json:"name"`
	Surname    string  `json:"surname"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
}

type ownerListResponse struct {
	Items []ownerResponse `json:"items"`
	Total int             `json:"total"`
}

func (req ownerRequest) toOwner() *ownersdomain.Owner {
	return &ownersdomain.Owner{
		NationalID: req.NationalID,
		Name:       req.Name,
		Surname:    req.Surname,
		Email:      optionalString(req.Email),
		Phone:      optionalString(req.Phone),
		Address:    optionalString(req.Address),
	}
}

func toOwnerResponse(owner ownersdomain.Owner) ownerResponse {
	return ownerResponse{
		ID:         owner.ID,
		NationalID: owner.NationalID,
		Name:       owner.Name,
		Surname:    owner.Surname,
		Email:      owner.Email,
		Phone:      owner.Phone,
		Address:    owner.Address,
	}
}

func (h *Handlers) CreateOwner(w http.ResponseWriter, r *http.Request) {
	var req ownerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid json body")
		return
	}

	created, err := h.Owners.Create(r.Context(), req.toOwner())
	if err != nil {
		h.writeDomainError(w, "owners.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, toOwnerResponse(*created))
}

func (h *Handlers) GetOwner(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	owner, err := h.Owners.GetByID(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, "owners.get", err)
		return
	}
	writeJSON(w, http.StatusOK, toOwnerResponse(*owner))
}

func (h *Handlers) ListOwners(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var (
		owners []ownersdomain.Owner
		err    error
	)
	switch {
	case query.Get("national_id") != "":
		var owner *ownersdomain.Owner
		owner, err = h.Owners.FindByNationalID(r.Context(), query.Get("national_id"))
		if owner != nil {
			owners = []ownersdomain.Owner{*owner}
		}
	case query.Get("email") != "":
		var owner *ownersdomain.Owner
		owner, err = h.Owners.FindByEmail(r.Context(), query.Get("email"))
		if owner != nil {
			owners = []ownersdomain.Owner{*owner}
		}
	case query.Get("surname") != "":
		owners, err = h.Owners.SearchBySurname(r.Context(), query.Get("surname"))
	default:
		owners, err = h.Owners.List(r.Context())
	}
	if err != nil {
		h.writeDomainError(w, "owners.list", err)
		return
	}

	items := make([]ownerResponse, 0, len(owners))
	for _, owner := range owners {
		items = append(items, toOwnerResponse(owner))
	}
	writeJSON(w, http.StatusOK, ownerListResponse{Items: items, Total: len(items)})
}

func (h *Handlers) UpdateOwner(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	var req ownerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid json body")
		return
	}

	owner := req.toOwner()
	owner.ID = id
	if err := h.Owners.Update(r.Context(), owner); err != nil {
		h.writeDomainError(w, "owners.update", err)
		return
	}
	writeJSON(w, http.StatusOK, toOwnerResponse(*owner))
}

func (h *Handlers) DeleteOwner(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	if err := h.Owners.Delete(r.Context(), id); err != nil {
		h.writeDomainError(w, "owners.delete", err)
		return
	}
	writeNoContent(w)
}
