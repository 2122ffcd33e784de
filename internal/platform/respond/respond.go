// Package respond holds the JSON writers shared by every module's handlers.
package respond

import (
	"encoding/json"
	"net/http"

	"genefit/internal/platform/logger"
)

// ErrorBody is the payload of every non-2xx response.
type ErrorBody struct {
	Error string `json:"error"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, ErrorBody{Error: msg})
}

// Internal logs err and answers 500 without leaking the cause.
func Internal(w http.ResponseWriter, log logger.Logger, r *http.Request, err error) {
	if log != nil {
		log.Error("request failed", map[string]any{
			"method": r.Method,
			"path":   r.URL.Path,
			"err":    err,
		})
	}
	Error(w, http.StatusInternalServerError, "internal error")
}

// Decode reads a JSON body into v.
func Decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
