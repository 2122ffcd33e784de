package profiles

import (
	"errors"
	"net/http"
	"time"

	"genefit/internal/middleware"
	"genefit/internal/platform/logger"
	"genefit/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/me/profile", myProfileHandler(svc, log))
}

type profileResponse struct {
	ID                 string             `json:"id"`
	UserID             string             `json:"user_id"`
	FullName           string             `json:"full_name"`
	Phone              string             `json:"phone"`
	Email              string             `json:"email"`
	Address            map[string]any     `json:"address"`
	SubscriptionStatus SubscriptionStatus `json:"subscription_status"`
	JoinedDate         time.Time          `json:"joined_date"`
	LastLogin          *time.Time         `json:"last_login,omitempty"`
}

// myProfileHandler godoc
// @Summary Current profile of the caller
// @Description The most recently created profile; older ones from repeated kit orders are ignored.
// @Tags profiles
// @Produce json
// @Param X-Debug-User-ID header string false "Dev mode only: caller user id"
// @Success 200 {object} profileResponse
// @Failure 401 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody
// @Router /me/profile [get]
func myProfileHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			respond.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		p, err := svc.Latest(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				respond.Error(w, http.StatusNotFound, err.Error())
			case errors.Is(err, ErrInvalidInput):
				respond.Error(w, http.StatusBadRequest, err.Error())
			default:
				respond.Internal(w, log, r, err)
			}
			return
		}

		respond.JSON(w, http.StatusOK, profileResponse{
			ID:                 p.ID,
			UserID:             p.UserID,
			FullName:           p.FullName,
			Phone:              p.Phone,
			Email:              p.Email,
			Address:            p.Address,
			SubscriptionStatus: p.SubscriptionStatus,
			JoinedDate:         p.JoinedDate,
			LastLogin:          p.LastLogin,
		})
	}
}
