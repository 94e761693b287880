package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/suifund/crowdfunding-gobackend/internal/middlewares"
	"github.com/suifund/crowdfunding-gobackend/internal/services"
	"go.uber.org/zap"
)

const serverErrorMessage = "Server error"

// ErrorResponse is the body of every non-2xx JSON response
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps service errors onto status codes. Details of 5xx errors
// are logged and never sent to the caller.
func writeError(w http.ResponseWriter, logger *zap.Logger, r *http.Request, err error) {
	var (
		verr  *services.ValidationError
		nf    *services.NotFoundError
		dup   *services.DuplicateDigestError
		fault *services.ConsistencyFaultError
		idErr *services.IdGenerationError
	)

	fields := []zap.Field{
		zap.String("request_id", middlewares.RequestID(r.Context())),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	}

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: verr.Message, Code: "validation_error"})
	case errors.As(err, &nf):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Message: "Campaign not found", Code: "not_found"})
	case errors.As(err, &dup):
		writeJSON(w, http.StatusConflict, ErrorResponse{Message: dup.Error(), Code: "duplicate_digest"})
	case errors.As(err, &fault):
		logger.Error("Consistency fault", fields...)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Message: serverErrorMessage, Code: "consistency_fault"})
	case errors.As(err, &idErr):
		logger.Error("Campaign id generation failed", fields...)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Message: serverErrorMessage, Code: "id_generation_failed"})
	default:
		logger.Error("Request failed", fields...)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Message: serverErrorMessage, Code: "internal_error"})
	}
}

func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: message, Code: "validation_error"})
}
