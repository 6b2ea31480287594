package handler

import (
	"net/http"

	chipsdomain "vet-registry-go/internal/domain/chips"
	ownersdomain "vet-registry-go/internal/domain/owners"
	petsdomain "vet-registry-go/internal/domain/pets"
	"vet-registry-go/pkg/logger"
)

type Handlers struct {
	Owners *ownersdomain.Service
	Pets   *petsdomain.Service
	Chips  *chipsdomain.Service
	log    logger.Logger
}

func New(owners *ownersdomain.Service, pets *petsdomain.Service, chips *chipsdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Owners: owners,
		Pets:   pets,
		Chips:  chips,
		log:    log,
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
