package server

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/returns/internal/creator"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/lifecycle"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/validation"
)

type errorBody struct {
	Error   string                  `json:"error"`
	Reason  string                  `json:"reason,omitempty"`
	Details string                  `json:"details,omitempty"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
	Item    *batchItemError         `json:"item,omitempty"`
}

type batchItemError struct {
	Index     int                     `json:"index"`
	ProductID int64                   `json:"product_id"`
	Reason    string                  `json:"reason,omitempty"`
	Details   string                  `json:"details,omitempty"`
	Errors    []validation.FieldError `json:"errors,omitempty"`
}

// writeError maps domain errors onto status codes. Anything unknown is a 500
// and is logged.
func (s *Server) writeError(w http.ResponseWriter, op string, err error) {
	var (
		batchErr     *creator.BatchError
		ineligible   *creator.IneligibleError
		verr         *validation.Error
		invalidTrans *lifecycle.InvalidTransitionError
	)

	switch {
	case errors.As(err, &batchErr):
		item := &batchItemError{Index: batchErr.Index, ProductID: batchErr.ProductID}
		if errors.As(batchErr.Cause, &ineligible) {
			item.Reason = ineligible.Reason
			item.Details = ineligible.Details
		}
		if errors.As(batchErr.Cause, &verr) {
			item.Errors = verr.Fields
		}
		respondJSON(w, http.StatusUnprocessableEntity, errorBody{
			Error:   "Batch creation failed",
			Reason:  batchErr.Reason,
			Details: batchErr.Details,
			Item:    item,
		})
	case errors.As(err, &ineligible):
		msg := "Return not allowed"
		if ineligible.Reason == creator.ReasonEmptyItems {
			msg = "No items provided"
		}
		respondJSON(w, http.StatusUnprocessableEntity, errorBody{
			Error:   msg,
			Reason:  ineligible.Reason,
			Details: ineligible.Details,
		})
	case errors.As(err, &verr):
		respondJSON(w, http.StatusUnprocessableEntity, errorBody{
			Error:  "Validation failed",
			Errors: verr.Fields,
		})
	case errors.As(err, &invalidTrans):
		respondJSON(w, http.StatusUnprocessableEntity, errorBody{
			Error:   "Invalid transition",
			Reason:  "invalid_transition",
			Details: invalidTrans.Error(),
		})
	case errors.Is(err, lifecycle.ErrUnknownCarrierStatus):
		respondJSON(w, http.StatusUnprocessableEntity, errorBody{
			Error:   "Unknown carrier status",
			Reason:  "unknown_status",
			Details: err.Error(),
		})
	case errors.Is(err, repository.ErrObjectNotFound):
		respondError(w, http.StatusNotFound, "Not found")
	default:
		s.logger.Error("Request failed", zap.String("operation", op), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
