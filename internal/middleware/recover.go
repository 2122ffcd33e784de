package middleware

import (
	"net/http"
	"runtime/debug"

	"genefit/internal/platform/logger"
	"genefit/internal/platform/respond"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Recover turns a handler panic into a logged 500.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Error("panic recovered", map[string]any{
					"panic":      rec,
					"request_id": chimw.GetReqID(r.Context()),
					"stack":      string(debug.Stack()),
				})
				respond.Error(w, http.StatusInternalServerError, "internal error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
