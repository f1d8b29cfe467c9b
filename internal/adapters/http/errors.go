package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"akwana/internal/api"
	"akwana/internal/domain"
	"akwana/internal/services/scansession"
)

func errorBody(err error) api.Error {
	return api.Error{Error: err.Error()}
}

// conflictBody carries the state the session is actually in.
func conflictBody(err error, state scansession.State) api.Error {
	st := api.SessionState(state)
	return api.Error{Error: err.Error(), State: &st}
}

func isRejectedTransition(err error) bool {
	return errors.Is(err, domain.ErrBusy) ||
		errors.Is(err, domain.ErrInvalidTransition) ||
		errors.Is(err, domain.ErrNoInput)
}

// requestError answers parameters and bodies the generated layer could not bind.
func (s *Server) requestError(w http.ResponseWriter, _ *http.Request, err error) {
	writeJSON(w, http.StatusBadRequest, errorBody(err))
}

// responseError maps errors returned by strict handlers onto status codes.
func (s *Server) responseError(w http.ResponseWriter, _ *http.Request, err error) {
	code := http.StatusInternalServerError
	switch {
	case isRejectedTransition(err):
		code = http.StatusConflict
	case errors.Is(err, domain.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, domain.ErrValidation):
		code = http.StatusBadRequest
	case errors.Is(err, domain.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		code = http.StatusGatewayTimeout
	case errors.Is(err, domain.ErrCapability):
		code = http.StatusServiceUnavailable
	}
	if code == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	}
	writeJSON(w, code, errorBody(err))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
