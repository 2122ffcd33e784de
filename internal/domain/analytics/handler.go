package analytics

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"genefit/internal/middleware"
	"genefit/internal/platform/logger"
	"genefit/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	// Several modules share the /me prefix, so routes stay flat instead of a mounted subrouter.
	r.Post("/me/weights", recordWeightHandler(svc, log))
	r.Get("/me/weights", weightHistoryHandler(svc, log))
	r.Get("/me/progress-report", progressReportHandler(svc, log))
	r.Post("/feedback", submitFeedbackHandler(svc, log))
	r.Get("/testimonials", testimonialsHandler())
}

type recordWeightRequest struct {
	Weight          float64    `json:"weight"`
	Memo            string     `json:"memo"`
	MeasurementDate *time.Time `json:"measurement_date"`
}

type recordWeightResponse struct {
	RecordID        string    `json:"record_id"`
	Weight          float64   `json:"weight"`
	MeasurementDate time.Time `json:"measurement_date"`
	Message         string    `json:"message"`
}

type weightResponse struct {
	Weight          float64   `json:"weight"`
	MeasurementDate time.Time `json:"measurement_date"`
	Memo            string    `json:"memo,omitempty"`
}

type feedbackRequest struct {
	SupplementID       string `json:"supplement_id"`
	EffectivenessScore int    `json:"effectiveness_score"`
	HasSideEffects     bool   `json:"has_side_effects"`
	DetailedReview     string `json:"detailed_review"`
}

type feedbackResponse struct {
	FeedbackID string `json:"feedback_id"`
	Message    string `json:"message"`
}

type progressPoint struct {
	Weight float64   `json:"weight"`
	Date   time.Time `json:"date"`
}

type weightProgress struct {
	CurrentWeight *float64        `json:"current_weight"`
	WeightChange  float64         `json:"weight_change"`
	History       []progressPoint `json:"history"`
}

type feedbackSummaryResponse struct {
	AverageEffectiveness float64 `json:"average_effectiveness"`
	TotalReviews         int     `json:"total_reviews"`
}

type progressSummary struct {
	TotalDays int   `json:"total_days"`
	Trend     Trend `json:"trend" enums:"decrease,increase,maintain"`
}

type progressReportResponse struct {
	WeightProgress     weightProgress          `json:"weight_progress"`
	SupplementFeedback feedbackSummaryResponse `json:"supplement_feedback"`
	ProgressSummary    progressSummary         `json:"progress_summary"`
}

// recordWeightHandler godoc
// @Summary Record a weight measurement
// @Tags analytics
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Dev mode only: caller user id"
// @Param payload body recordWeightRequest true "Weight in kg; measurement_date defaults to now"
// @Success 201 {object} recordWeightResponse
// @Failure 400 {object} respond.ErrorBody
// @Failure 401 {object} respond.ErrorBody
// @Router /me/weights [post]
func recordWeightHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			respond.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req recordWeightRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		rec, err := svc.RecordWeight(r.Context(), userID, RecordWeightInput{
			Weight:     req.Weight,
			Memo:       req.Memo,
			MeasuredAt: req.MeasurementDate,
		})
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		respond.JSON(w, http.StatusCreated, recordWeightResponse{
			RecordID:        rec.ID,
			Weight:          rec.Weight,
			MeasurementDate: rec.MeasurementDate,
			Message:         "체중이 기록되었습니다.",
		})
	}
}

// weightHistoryHandler godoc
// @Summary Weight history of the caller
// @Tags analytics
// @Produce json
// @Param X-Debug-User-ID header string false "Dev mode only: caller user id"
// @Param days query int false "Window in days (default 90)"
// @Success 200 {array} weightResponse
// @Failure 400 {object} respond.ErrorBody
// @Failure 401 {object} respond.ErrorBody
// @Router /me/weights [get]
func weightHistoryHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			respond.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		days := DefaultHistoryDays
		if v := strings.TrimSpace(r.URL.Query().Get("days")); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				respond.Error(w, http.StatusBadRequest, "days must be a positive integer")
				return
			}
			days = n
		}

		items, err := svc.WeightHistory(r.Context(), userID, days)
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		out := make([]weightResponse, 0, len(items))
		for _, it := range items {
			out = append(out, weightResponse{
				Weight:          it.Weight,
				MeasurementDate: it.MeasurementDate,
				Memo:            it.Memo,
			})
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// submitFeedbackHandler godoc
// @Summary Rate a supplement
// @Description effectiveness_score is documented as 1-10 and stored as sent.
// @Tags analytics
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Dev mode only: caller user id"
// @Param payload body feedbackRequest true "Feedback"
// @Success 201 {object} feedbackResponse
// @Failure 400 {object} respond.ErrorBody
// @Failure 401 {object} respond.ErrorBody
// @Router /feedback [post]
func submitFeedbackHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			respond.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req feedbackRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		f, err := svc.SubmitFeedback(r.Context(), userID, FeedbackInput(req))
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		respond.JSON(w, http.StatusCreated, feedbackResponse{
			FeedbackID: f.ID,
			Message:    "피드백이 제출되었습니다. 소중한 의견 감사합니다.",
		})
	}
}

// progressReportHandler godoc
// @Summary Progress report of the caller
// @Description Built from the 10 most recent weight records and all feedback.
// @Tags analytics
// @Produce json
// @Param X-Debug-User-ID header string false "Dev mode only: caller user id"
// @Success 200 {object} progressReportResponse
// @Failure 401 {object} respond.ErrorBody
// @Router /me/progress-report [get]
func progressReportHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			respond.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		rep, err := svc.ProgressReport(r.Context(), userID)
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		history := make([]progressPoint, 0, len(rep.History))
		for _, h := range rep.History {
			history = append(history, progressPoint{Weight: h.Weight, Date: h.MeasurementDate})
		}

		respond.JSON(w, http.StatusOK, progressReportResponse{
			WeightProgress: weightProgress{
				CurrentWeight: rep.CurrentWeight,
				WeightChange:  rep.WeightChange,
				History:       history,
			},
			SupplementFeedback: feedbackSummaryResponse{
				AverageEffectiveness: rep.Feedback.Average,
				TotalReviews:         rep.Feedback.Count,
			},
			ProgressSummary: progressSummary{
				TotalDays: rep.TotalDays,
				Trend:     rep.Trend,
			},
		})
	}
}

// testimonialsHandler godoc
// @Summary Customer testimonials
// @Tags analytics
// @Produce json
// @Success 200 {array} Testimonial
// @Router /testimonials [get]
func testimonialsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		respond.JSON(w, http.StatusOK, Testimonials())
	}
}

func writeError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	if errors.Is(err, ErrInvalidInput) {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	respond.Internal(w, log, r, err)
}
