package genetics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"genefit/internal/domain/profiles"
	"genefit/internal/ports/store"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ProfileCreator is satisfied by *profiles.Service.
type ProfileCreator interface {
	Create(ctx context.Context, userID string, in profiles.CreateInput) (profiles.Profile, error)
}

type Service struct {
	repos    Repos
	profiles ProfileCreator
	tx       store.Transactor
	now      func() time.Time
}

func NewService(repos Repos, profiles ProfileCreator, tx store.Transactor) *Service {
	if tx == nil {
		tx = store.Direct{}
	}
	return &Service{
		repos:    repos,
		profiles: profiles,
		tx:       tx,
		now:      time.Now,
	}
}

type CreateTestInput struct {
	FullName string
	Phone    string
	Email    string
	Address  map[string]any
}

type CreateTestResult struct {
	Test    GeneticTest
	Profile profiles.Profile
}

// CreateGeneticTest registers the kit order together with a fresh profile.
// Nothing is deduplicated: ordering twice leaves two profiles and two tests.
func (s *Service) CreateGeneticTest(ctx context.Context, userID string, in CreateTestInput) (CreateTestResult, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return CreateTestResult{}, ErrInvalidInput
	}

	var out CreateTestResult
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.profiles.Create(ctx, userID, profiles.CreateInput{
			FullName: in.FullName,
			Phone:    in.Phone,
			Email:    in.Email,
			Address:  in.Address,
			Status:   profiles.SubscriptionActive,
		})
		if err != nil {
			return err
		}

		now := s.now()
		t := GeneticTest{
			ID:              uuid.NewString(),
			UserID:          userID,
			Status:          TestRequested,
			ApplicationDate: now,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := s.repos.Tests.Create(ctx, t); err != nil {
			return fmt.Errorf("create genetic test: %w", err)
		}

		out = CreateTestResult{Test: t, Profile: p}
		return nil
	})
	if err != nil {
		return CreateTestResult{}, err
	}
	return out, nil
}

func (s *Service) LatestTest(ctx context.Context, userID string) (GeneticTest, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return GeneticTest{}, ErrInvalidInput
	}
	t, err := s.repos.Tests.LatestByUser(ctx, userID)
	if err != nil {
		return GeneticTest{}, notFound(err, "latest genetic test")
	}
	return t, nil
}

func (s *Service) GetTest(ctx context.Context, id string) (GeneticTest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return GeneticTest{}, ErrInvalidInput
	}
	t, err := s.repos.Tests.GetByID(ctx, id)
	if err != nil {
		return GeneticTest{}, notFound(err, "get genetic test")
	}
	return t, nil
}

// AdvanceTest moves a test one step forward and stamps the matching milestone date.
// results is only stored when the test reaches complete.
func (s *Service) AdvanceTest(ctx context.Context, id string, to TestStatus, results map[string]any) (GeneticTest, error) {
	if !to.Valid() {
		return GeneticTest{}, ErrInvalidInput
	}
	t, err := s.GetTest(ctx, id)
	if err != nil {
		return GeneticTest{}, err
	}
	if !CanTransition(t.Status, to) {
		return GeneticTest{}, ErrInvalidTransition
	}

	now := s.now()
	t.Status = to
	t.UpdatedAt = now
	switch to {
	case TestKitSent:
		t.KitSentDate = &now
	case TestSampleReceived:
		t.SampleReceivedDate = &now
	case TestComplete:
		t.AnalysisCompletedDate = &now
		if results != nil {
			t.Results = results
		}
	}

	if err := s.repos.Tests.Update(ctx, t); err != nil {
		return GeneticTest{}, fmt.Errorf("update genetic test: %w", err)
	}
	return t, nil
}

func (s *Service) ListSupplements(ctx context.Context) ([]Supplement, error) {
	items, err := s.repos.Supplements.ListByName(ctx)
	if err != nil {
		return nil, fmt.Errorf("list supplements: %w", err)
	}
	return items, nil
}

type SupplementInput struct {
	Name            string
	Brand           string
	MainIngredients []string
	IsFDAApproved   bool
	Description     string
	Efficacy        string
	Price           float64
}

func (s *Service) CreateSupplement(ctx context.Context, in SupplementInput) (Supplement, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Supplement{}, ErrInvalidInput
	}

	now := s.now()
	sup := Supplement{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(in.Name),
		Brand:           strings.TrimSpace(in.Brand),
		MainIngredients: in.MainIngredients,
		IsFDAApproved:   in.IsFDAApproved,
		Description:     strings.TrimSpace(in.Description),
		Efficacy:        strings.TrimSpace(in.Efficacy),
		Price:           in.Price,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if sup.MainIngredients == nil {
		sup.MainIngredients = []string{}
	}
	if err := s.repos.Supplements.Create(ctx, sup); err != nil {
		return Supplement{}, fmt.Errorf("create supplement: %w", err)
	}
	return sup, nil
}

type IngredientInput struct {
	Name                string
	FDANotificationInfo string
	EfficacyDescription string
	RecommendedDosage   string
	SideEffects         []string
}

func (s *Service) CreateIngredient(ctx context.Context, in IngredientInput) (Ingredient, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Ingredient{}, ErrInvalidInput
	}

	now := s.now()
	ing := Ingredient{
		ID:                  uuid.NewString(),
		Name:                strings.TrimSpace(in.Name),
		FDANotificationInfo: strings.TrimSpace(in.FDANotificationInfo),
		EfficacyDescription: strings.TrimSpace(in.EfficacyDescription),
		RecommendedDosage:   strings.TrimSpace(in.RecommendedDosage),
		SideEffects:         in.SideEffects,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if ing.SideEffects == nil {
		ing.SideEffects = []string{}
	}
	if err := s.repos.Ingredients.Create(ctx, ing); err != nil {
		return Ingredient{}, fmt.Errorf("create ingredient: %w", err)
	}
	return ing, nil
}

func (s *Service) ListIngredients(ctx context.Context) ([]Ingredient, error) {
	items, err := s.repos.Ingredients.ListByName(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	return items, nil
}

type TestResultInput struct {
	IngredientID    string
	TestScore       float64
	PredictedEffect float64
}

func (s *Service) RecordTestResult(ctx context.Context, userID string, in TestResultInput) (TestResult, error) {
	userID = strings.TrimSpace(userID)
	ingredientID := strings.TrimSpace(in.IngredientID)
	if userID == "" || ingredientID == "" {
		return TestResult{}, ErrInvalidInput
	}

	now := s.now()
	r := TestResult{
		ID:              uuid.NewString(),
		UserID:          userID,
		IngredientID:    ingredientID,
		TestScore:       in.TestScore,
		PredictedEffect: in.PredictedEffect,
		TestDate:        now,
		CreatedAt:       now,
	}
	if err := s.repos.TestResults.Create(ctx, r); err != nil {
		return TestResult{}, fmt.Errorf("create test result: %w", err)
	}
	return r, nil
}

func (s *Service) ListTestResults(ctx context.Context, userID string) ([]TestResult, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidInput
	}
	items, err := s.repos.TestResults.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list test results: %w", err)
	}
	return items, nil
}

type RecommendationInput struct {
	Top3Supplements     []string
	Reasons             map[string]any
	PredictedWeightLoss float64
	ConfidenceScore     float64
}

func (s *Service) CreateRecommendation(ctx context.Context, userID string, in RecommendationInput) (Recommendation, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" || len(in.Top3Supplements) == 0 || len(in.Top3Supplements) > 3 {
		return Recommendation{}, ErrInvalidInput
	}

	now := s.now()
	r := Recommendation{
		ID:                  uuid.NewString(),
		UserID:              userID,
		Top3Supplements:     in.Top3Supplements,
		Reasons:             in.Reasons,
		PredictedWeightLoss: in.PredictedWeightLoss,
		ConfidenceScore:     in.ConfidenceScore,
		GeneratedAt:         now,
		CreatedAt:           now,
	}
	if r.Reasons == nil {
		r.Reasons = map[string]any{}
	}
	if err := s.repos.Recommendations.Create(ctx, r); err != nil {
		return Recommendation{}, fmt.Errorf("create recommendation: %w", err)
	}
	return r, nil
}

func (s *Service) LatestRecommendation(ctx context.Context, userID string) (Recommendation, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Recommendation{}, ErrInvalidInput
	}
	r, err := s.repos.Recommendations.LatestByUser(ctx, userID)
	if err != nil {
		return Recommendation{}, notFound(err, "latest recommendation")
	}
	return r, nil
}

func notFound(err error, op string) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
