// Package httputil writes the JSON envelope shared by every endpoint:
// {"success": true, "data": ...} on success, {"success": false, "error": ...}
// on failure, with list responses carrying pagination metadata.
package httputil

import (
	"encoding/json"
	"net/http"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/apperr"
)

type errorBody struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// RespondWithJSON writes a success envelope.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	writeJSON(w, code, map[string]interface{}{
		"success": true,
		"data":    payload,
	})
}

// RespondWithList writes a success envelope with pagination metadata.
// totalPages is ceil(total/limit).
func RespondWithList(w http.ResponseWriter, payload interface{}, total, page, limit int) {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"data":       payload,
		"total":      total,
		"page":       page,
		"limit":      limit,
		"totalPages": totalPages,
	})
}

// RespondWithError translates a taxonomy error to a status code and
// envelope. Unclassified errors become a generic 500.
func RespondWithError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]interface{}{
		"success": false,
		"error": errorBody{
			Code:    apperr.ErrCode(err),
			Message: apperr.ErrMessage(err),
			Fields:  apperr.ErrFields(err),
		},
	})
}

// RespondWithValidation is the short path for request-level validation
// failures detected before a service is invoked.
func RespondWithValidation(w http.ResponseWriter, field, message string) {
	RespondWithError(w, apperr.Validation(field, "%s", message))
}

func statusFor(err error) int {
	switch apperr.ErrCode(err) {
	case apperr.EValidation:
		return http.StatusBadRequest
	case apperr.ENotFound:
		return http.StatusNotFound
	case apperr.EConflict:
		return http.StatusConflict
	case apperr.EStorage:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
