package subscriptions

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"genefit/internal/middleware"
	"genefit/internal/platform/logger"
	"genefit/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

const msgSubscriptionNotFound = "구독을 찾을 수 없습니다."

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/subscriptions", func(sr chi.Router) {
		sr.Post("/", createSubscriptionHandler(svc, log))
		sr.Patch("/{subscriptionID}/status", updateStatusHandler(svc, log))
		sr.Post("/{subscriptionID}/deliveries", createDeliveryHandler(svc, log))
	})
	r.Patch("/deliveries/{deliveryID}/status", updateDeliveryStatusHandler(svc, log))

	r.Get("/me/subscription", mySubscriptionHandler(svc, log))
	r.Get("/me/deliveries", myDeliveriesHandler(svc, log))

	r.Get("/pricing", pricingHandler())
}

type createSubscriptionRequest struct {
	PaymentInfo map[string]any `json:"payment_info"`
}

type createSubscriptionResponse struct {
	SubscriptionID  string    `json:"subscription_id"`
	Status          Status    `json:"status"`
	MonthlyFee      float64   `json:"monthly_fee"`
	NextBillingDate time.Time `json:"next_billing_date"`
	Message         string    `json:"message"`
}

type subscriptionResponse struct {
	ID          string         `json:"id"`
	Status      Status         `json:"status"`
	MonthlyFee  float64        `json:"monthly_fee"`
	StartDate   time.Time      `json:"start_date"`
	EndDate     *time.Time     `json:"end_date,omitempty"`
	PaymentInfo map[string]any `json:"payment_info"`
}

type updateStatusRequest struct {
	Status Status `json:"status" enums:"active,paused,cancelled"`
}

type updateStatusResponse struct {
	SubscriptionID string     `json:"subscription_id"`
	Status         Status     `json:"status"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	Message        string     `json:"message"`
}

type createDeliveryRequest struct {
	DeliveryAddress map[string]any   `json:"delivery_address"`
	ProductList     []map[string]any `json:"product_list"`
}

type createDeliveryResponse struct {
	DeliveryID        string         `json:"delivery_id"`
	Status            DeliveryStatus `json:"status"`
	EstimatedDelivery time.Time      `json:"estimated_delivery"`
	Message           string         `json:"message"`
}

type updateDeliveryStatusRequest struct {
	Status         DeliveryStatus `json:"status" enums:"sent,in_transit,complete"`
	TrackingNumber string         `json:"tracking_number"`
}

type deliveryResponse struct {
	ID              string           `json:"id"`
	SubscriptionID  string           `json:"subscription_id"`
	Status          DeliveryStatus   `json:"status"`
	ProductList     []map[string]any `json:"product_list"`
	DeliveryAddress map[string]any   `json:"delivery_address"`
	SentDate        *time.Time       `json:"sent_date,omitempty"`
	DeliveredDate   *time.Time       `json:"delivered_date,omitempty"`
	TrackingNumber  string           `json:"tracking_number,omitempty"`
}

// createSubscriptionHandler godoc
// @Summary Start a monthly subscription
// @Description Creates an active 40000 KRW plan and marks the caller's current profile active. next_billing_date is advisory.
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Dev mode only: caller user id"
// @Param payload body createSubscriptionRequest true "Opaque payment details"
// @Success 201 {object} createSubscriptionResponse
// @Failure 400 {object} respond.ErrorBody
// @Failure 401 {object} respond.ErrorBody
// @Router /subscriptions [post]
func createSubscriptionHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			respond.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req createSubscriptionRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		res, err := svc.Create(r.Context(), userID, req.PaymentInfo)
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		respond.JSON(w, http.StatusCreated, createSubscriptionResponse{
			SubscriptionID:  res.Subscription.ID,
			Status:          res.Subscription.Status,
			MonthlyFee:      res.Subscription.MonthlyFee,
			NextBillingDate: res.NextBillingDate,
			Message:         "구독이 성공적으로 시작되었습니다.",
		})
	}
}

// mySubscriptionHandler godoc
// @Summary Active subscription of the caller
// @Tags subscriptions
// @Produce json
// @Param X-Debug-User-ID header string false "Dev mode only: caller user id"
// @Success 200 {object} subscriptionResponse
// @Failure 401 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody
// @Router /me/subscription [get]
func mySubscriptionHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			respond.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		sub, err := svc.ActiveForUser(r.Context(), userID)
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		respond.JSON(w, http.StatusOK, subscriptionResponse{
			ID:          sub.ID,
			Status:      sub.Status,
			MonthlyFee:  sub.MonthlyFee,
			StartDate:   sub.StartDate,
			EndDate:     sub.EndDate,
			PaymentInfo: sub.PaymentInfo,
		})
	}
}

// updateStatusHandler godoc
// @Summary Pause, resume or cancel a subscription
// @Description Allowed: active ↔ paused, active/paused → cancelled. end_date is set only on cancellation.
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Dev mode only: caller user id"
// @Param subscriptionID path string true "Subscription id"
// @Param payload body updateStatusRequest true "Target status"
// @Success 200 {object} updateStatusResponse
// @Failure 400 {object} respond.ErrorBody
// @Failure 403 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody
// @Failure 409 {object} respond.ErrorBody
// @Router /subscriptions/{subscriptionID}/status [patch]
func updateStatusHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			respond.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req updateStatusRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		id := chi.URLParam(r, "subscriptionID")
		if _, err := svc.Authorize(r.Context(), userID, id); err != nil {
			writeError(w, r, log, err)
			return
		}

		sub, err := svc.UpdateStatus(r.Context(), id, req.Status)
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		respond.JSON(w, http.StatusOK, updateStatusResponse{
			SubscriptionID: sub.ID,
			Status:         sub.Status,
			EndDate:        sub.EndDate,
			Message:        fmt.Sprintf("구독 상태가 '%s'로 변경되었습니다.", sub.Status),
		})
	}
}

// createDeliveryHandler godoc
// @Summary Schedule a delivery for a subscription
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Dev mode only: caller user id"
// @Param subscriptionID path string true "Subscription id"
// @Param payload body createDeliveryRequest true "Address and products"
// @Success 201 {object} createDeliveryResponse
// @Failure 403 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody
// @Router /subscriptions/{subscriptionID}/deliveries [post]
func createDeliveryHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			respond.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req createDeliveryRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		id := chi.URLParam(r, "subscriptionID")
		if _, err := svc.Authorize(r.Context(), userID, id); err != nil {
			writeError(w, r, log, err)
			return
		}

		res, err := svc.CreateDelivery(r.Context(), id, req.DeliveryAddress, req.ProductList)
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		respond.JSON(w, http.StatusCreated, createDeliveryResponse{
			DeliveryID:        res.Delivery.ID,
			Status:            res.Delivery.Status,
			EstimatedDelivery: res.EstimatedDelivery,
			Message:           "배송이 준비되었습니다.",
		})
	}
}

// updateDeliveryStatusHandler godoc
// @Summary Advance a delivery
// @Description Fulfilment side: any authenticated caller may advance a delivery. Statuses only move forward.
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Dev mode only: caller user id"
// @Param deliveryID path string true "Delivery id"
// @Param payload body updateDeliveryStatusRequest true "New status and optional tracking number"
// @Success 200 {object} deliveryResponse
// @Failure 400 {object} respond.ErrorBody
// @Failure 401 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody
// @Failure 409 {object} respond.ErrorBody
// @Router /deliveries/{deliveryID}/status [patch]
func updateDeliveryStatusHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r.Context()); !ok {
			respond.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req updateDeliveryStatusRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		d, err := svc.UpdateDeliveryStatus(r.Context(), chi.URLParam(r, "deliveryID"), req.Status, req.TrackingNumber)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, toDeliveryResponse(d))
	}
}

// myDeliveriesHandler godoc
// @Summary Deliveries across the caller's subscriptions
// @Tags subscriptions
// @Produce json
// @Param X-Debug-User-ID header string false "Dev mode only: caller user id"
// @Success 200 {array} deliveryResponse
// @Failure 401 {object} respond.ErrorBody
// @Router /me/deliveries [get]
func myDeliveriesHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			respond.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		items, err := svc.ListDeliveriesForUser(r.Context(), userID)
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		out := make([]deliveryResponse, 0, len(items))
		for _, d := range items {
			out = append(out, toDeliveryResponse(d))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// pricingHandler godoc
// @Summary Plan pricing
// @Tags subscriptions
// @Produce json
// @Success 200 {object} PricingInfo
// @Router /pricing [get]
func pricingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		respond.JSON(w, http.StatusOK, Pricing())
	}
}

func writeError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		respond.Error(w, http.StatusNotFound, msgSubscriptionNotFound)
	case errors.Is(err, ErrDeliveryNotFound):
		respond.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrForbidden):
		respond.Error(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrInvalidTransition):
		respond.Error(w, http.StatusConflict, err.Error())
	default:
		respond.Internal(w, log, r, err)
	}
}

func toDeliveryResponse(d Delivery) deliveryResponse {
	return deliveryResponse{
		ID:              d.ID,
		SubscriptionID:  d.SubscriptionID,
		Status:          d.Status,
		ProductList:     d.ProductList,
		DeliveryAddress: d.Address,
		SentDate:        d.SentDate,
		DeliveredDate:   d.DeliveredDate,
		TrackingNumber:  d.TrackingNumber,
	}
}
