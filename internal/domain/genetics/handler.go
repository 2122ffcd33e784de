package genetics

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"genefit/internal/middleware"
	"genefit/internal/platform/logger"
	"genefit/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/genetic-tests", func(gr chi.Router) {
		gr.Post("/", createTestHandler(svc, log))
		gr.Get("/sample-report", sampleReportHandler())
		gr.Post("/{testID}/status", advanceTestHandler(svc, log))
	})

	r.Get("/me/genetic-test", myTestHandler(svc, log))
	r.Get("/me/recommendations", myRecommendationHandler(svc, log))

	// Lab side: results and recommendations are written for a given user.
	r.Route("/users/{userID}", func(ur chi.Router) {
		ur.Post("/recommendations", createRecommendationHandler(svc, log))
		ur.Get("/test-results", listTestResultsHandler(svc, log))
		ur.Post("/test-results", recordTestResultHandler(svc, log))
	})

	r.Route("/supplements", func(sr chi.Router) {
		sr.Get("/", listSupplementsHandler(svc, log))
		sr.Post("/", createSupplementHandler(svc, log))
	})
	r.Route("/ingredients", func(ir chi.Router) {
		ir.Get("/", listIngredientsHandler(svc, log))
		ir.Post("/", createIngredientHandler(svc, log))
	})
}

type createTestRequest struct {
	FullName string         `json:"full_name"`
	Phone    string         `json:"phone"`
	Email    string         `json:"email"`
	Address  map[string]any `json:"address"`
}

type createTestResponse struct {
	TestID    string     `json:"test_id"`
	ProfileID string     `json:"profile_id"`
	Status    TestStatus `json:"status"`
	Message   string     `json:"message"`
}

type testResponse struct {
	ID                    string         `json:"id"`
	Status                TestStatus     `json:"status"`
	ApplicationDate       time.Time      `json:"application_date"`
	KitSentDate           *time.Time     `json:"kit_sent_date,omitempty"`
	SampleReceivedDate    *time.Time     `json:"sample_received_date,omitempty"`
	AnalysisCompletedDate *time.Time     `json:"analysis_completed_date,omitempty"`
	Results               map[string]any `json:"results"`
}

type advanceTestRequest struct {
	Status  TestStatus     `json:"status" enums:"kit_sent,sample_received,analyzing,complete"`
	Results map[string]any `json:"results"`
}

type supplementRequest struct {
	Name            string   `json:"name"`
	Brand           string   `json:"brand"`
	MainIngredients []string `json:"main_ingredients"`
	IsFDAApproved   bool     `json:"is_fda_approved"`
	Description     string   `json:"description"`
	Efficacy        string   `json:"efficacy"`
	Price           float64  `json:"price"`
}

type supplementResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Brand           string   `json:"brand"`
	MainIngredients []string `json:"main_ingredients"`
	IsFDAApproved   bool     `json:"is_fda_approved"`
	Description     string   `json:"description"`
	Efficacy        string   `json:"efficacy"`
	Price           float64  `json:"price"`
}

type ingredientRequest struct {
	Name                string   `json:"name"`
	FDANotificationInfo string   `json:"fda_notification_info"`
	EfficacyDescription string   `json:"efficacy_description"`
	RecommendedDosage   string   `json:"recommended_dosage"`
	SideEffects         []string `json:"side_effects"`
}

type ingredientResponse struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	FDANotificationInfo string   `json:"fda_notification_info"`
	EfficacyDescription string   `json:"efficacy_description"`
	RecommendedDosage   string   `json:"recommended_dosage"`
	SideEffects         []string `json:"side_effects"`
}

type testResultRequest struct {
	IngredientID    string  `json:"ingredient_id"`
	TestScore       float64 `json:"test_score"`
	PredictedEffect float64 `json:"predicted_effect"`
}

type testResultResponse struct {
	ID              string    `json:"id"`
	IngredientID    string    `json:"ingredient_id"`
	TestScore       float64   `json:"test_score"`
	PredictedEffect float64   `json:"predicted_effect"`
	TestDate        time.Time `json:"test_date"`
}

type recommendationRequest struct {
	Top3Supplements     []string       `json:"top3_supplements"`
	Reasons             map[string]any `json:"reasons"`
	PredictedWeightLoss float64        `json:"predicted_weight_loss"`
	ConfidenceScore     float64        `json:"confidence_score"`
}

type recommendationResponse struct {
	Top3Supplements     []string       `json:"top3_supplements"`
	Reasons             map[string]any `json:"reasons"`
	PredictedWeightLoss float64        `json:"predicted_weight_loss"`
	ConfidenceScore     float64        `json:"confidence_score"`
	GeneratedAt         time.Time      `json:"generated_at"`
}

// createTestHandler godoc
// @Summary Order a genetic test kit
// @Description Creates a user profile (subscription_status=active) and a genetic test in status `requested`. Repeated calls create new records.
// @Tags genetics
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Dev mode only: caller user id"
// @Param payload body createTestRequest true "Contact and shipping details"
// @Success 201 {object} createTestResponse
// @Failure 400 {object} respond.ErrorBody
// @Failure 401 {object} respond.ErrorBody
// @Router /genetic-tests [post]
func createTestHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			respond.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req createTestRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		res, err := svc.CreateGeneticTest(r.Context(), userID, CreateTestInput{
			FullName: req.FullName,
			Phone:    req.Phone,
			Email:    req.Email,
			Address:  req.Address,
		})
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		respond.JSON(w, http.StatusCreated, createTestResponse{
			TestID:    res.Test.ID,
			ProfileID: res.Profile.ID,
			Status:    res.Test.Status,
			Message:   "유전자 검사가 신청되었습니다. 검사 키트가 곧 발송됩니다.",
		})
	}
}

// sampleReportHandler godoc
// @Summary Sample genetic report
// @Tags genetics
// @Produce json
// @Success 200 {object} Report
// @Router /genetic-tests/sample-report [get]
func sampleReportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		respond.JSON(w, http.StatusOK, SampleReport())
	}
}

// advanceTestHandler godoc
// @Summary Advance a genetic test
// @Description Moves a test one step forward: requested → kit_sent → sample_received → analyzing → complete.
// @Tags genetics
// @Accept json
// @Produce json
// @Param testID path string true "Test id"
// @Param payload body advanceTestRequest true "Target status; results only kept on complete"
// @Success 200 {object} testResponse
// @Failure 400 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody
// @Failure 409 {object} respond.ErrorBody
// @Router /genetic-tests/{testID}/status [post]
func advanceTestHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r.Context()); !ok {
			respond.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req advanceTestRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		t, err := svc.AdvanceTest(r.Context(), chi.URLParam(r, "testID"), req.Status, req.Results)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, toTestResponse(t))
	}
}

// myTestHandler godoc
// @Summary Latest genetic test of the caller
// @Tags genetics
// @Produce json
// @Param X-Debug-User-ID header string false "Dev mode only: caller user id"
// @Success 200 {object} testResponse
// @Failure 401 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody
// @Router /me/genetic-test [get]
func myTestHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			respond.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		t, err := svc.LatestTest(r.Context(), userID)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, toTestResponse(t))
	}
}

// myRecommendationHandler godoc
// @Summary Latest supplement recommendation of the caller
// @Tags genetics
// @Produce json
// @Param X-Debug-User-ID header string false "Dev mode only: caller user id"
// @Success 200 {object} recommendationResponse
// @Failure 401 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody
// @Router /me/recommendations [get]
func myRecommendationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			respond.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		rec, err := svc.LatestRecommendation(r.Context(), userID)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, toRecommendationResponse(rec))
	}
}

func createRecommendationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r.Context()); !ok {
			respond.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req recommendationRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		rec, err := svc.CreateRecommendation(r.Context(), chi.URLParam(r, "userID"), RecommendationInput{
			Top3Supplements:     req.Top3Supplements,
			Reasons:             req.Reasons,
			PredictedWeightLoss: req.PredictedWeightLoss,
			ConfidenceScore:     req.ConfidenceScore,
		})
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusCreated, toRecommendationResponse(rec))
	}
}

func recordTestResultHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r.Context()); !ok {
			respond.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req testResultRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		res, err := svc.RecordTestResult(r.Context(), chi.URLParam(r, "userID"), TestResultInput{
			IngredientID:    req.IngredientID,
			TestScore:       req.TestScore,
			PredictedEffect: req.PredictedEffect,
		})
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusCreated, toTestResultResponse(res))
	}
}

func listTestResultsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r.Context()); !ok {
			respond.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		items, err := svc.ListTestResults(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		out := make([]testResultResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toTestResultResponse(it))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// listSupplementsHandler godoc
// @Summary List supplements
// @Description Every supplement in the catalog, ordered by name.
// @Tags catalog
// @Produce json
// @Success 200 {array} supplementResponse
// @Failure 500 {object} respond.ErrorBody
// @Router /supplements [get]
func listSupplementsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListSupplements(r.Context())
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		out := make([]supplementResponse, 0, len(items))
		for _, s := range items {
			out = append(out, toSupplementResponse(s))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

func createSupplementHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r.Context()); !ok {
			respond.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req supplementRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		s, err := svc.CreateSupplement(r.Context(), SupplementInput(req))
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusCreated, toSupplementResponse(s))
	}
}

func listIngredientsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListIngredients(r.Context())
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		out := make([]ingredientResponse, 0, len(items))
		for _, i := range items {
			out = append(out, ingredientResponse{
				ID:                  i.ID,
				Name:                i.Name,
				FDANotificationInfo: i.FDANotificationInfo,
				EfficacyDescription: i.EfficacyDescription,
				RecommendedDosage:   i.RecommendedDosage,
				SideEffects:         i.SideEffects,
			})
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

func createIngredientHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r.Context()); !ok {
			respond.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req ingredientRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		i, err := svc.CreateIngredient(r.Context(), IngredientInput(req))
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusCreated, ingredientResponse{
			ID:                  i.ID,
			Name:                i.Name,
			FDANotificationInfo: i.FDANotificationInfo,
			EfficacyDescription: i.EfficacyDescription,
			RecommendedDosage:   i.RecommendedDosage,
			SideEffects:         i.SideEffects,
		})
	}
}

func writeError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		respond.Error(w, http.StatusNotFound, notFoundMessage(r))
	case errors.Is(err, ErrInvalidTransition):
		respond.Error(w, http.StatusConflict, err.Error())
	default:
		respond.Internal(w, log, r, err)
	}
}

func notFoundMessage(r *http.Request) string {
	if strings.HasSuffix(r.URL.Path, "/recommendations") {
		return "recommendation not found"
	}
	return "genetic test not found"
}

func toTestResponse(t GeneticTest) testResponse {
	return testResponse{
		ID:                    t.ID,
		Status:                t.Status,
		ApplicationDate:       t.ApplicationDate,
		KitSentDate:           t.KitSentDate,
		SampleReceivedDate:    t.SampleReceivedDate,
		AnalysisCompletedDate: t.AnalysisCompletedDate,
		Results:               t.Results,
	}
}

func toSupplementResponse(s Supplement) supplementResponse {
	return supplementResponse{
		ID:              s.ID,
		Name:            s.Name,
		Brand:           s.Brand,
		MainIngredients: s.MainIngredients,
		IsFDAApproved:   s.IsFDAApproved,
		Description:     s.Description,
		Efficacy:        s.Efficacy,
		Price:           s.Price,
	}
}

func toTestResultResponse(r TestResult) testResultResponse {
	return testResultResponse{
		ID:              r.ID,
		IngredientID:    r.IngredientID,
		TestScore:       r.TestScore,
		PredictedEffect: r.PredictedEffect,
		TestDate:        r.TestDate,
	}
}

func toRecommendationResponse(r Recommendation) recommendationResponse {
	return recommendationResponse{
		Top3Supplements:     r.Top3Supplements,
		Reasons:             r.Reasons,
		PredictedWeightLoss: r.PredictedWeightLoss,
		ConfidenceScore:     r.ConfidenceScore,
		GeneratedAt:         r.GeneratedAt,
	}
}
