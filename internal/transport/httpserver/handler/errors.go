package handler

import (
	"errors"
	"net/http"

	"vet-registry-go/internal/apperrors"
	chipsdomain "vet-registry-go/internal/domain/chips"
	ownersdomain "vet-registry-go/internal/domain/owners"
	petsdomain "vet-registry-go/internal/domain/pets"
)

// writeDomainError renders a service failure without altering program flow:
// the taxonomy maps onto statuses, the message passes through untouched.
func (h *Handlers) writeDomainError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, apperrors.ErrBusinessRule):
		h.log.BusinessError(op, err)
		writeError(w, http.StatusConflict, "business_rule_violation", err.Error())
	case errors.Is(err, apperrors.ErrPolicy):
		h.log.BusinessError(op, err)
		writeError(w, http.StatusForbidden, "operation_not_allowed", err.Error())
	case errors.Is(err, ownersdomain.ErrOwnerNotFound),
		errors.Is(err, petsdomain.ErrPetNotFound),
		errors.Is(err, chipsdomain.ErrChipNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	default:
		h.log.InternalError(op, err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}
