package genetics

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"genefit/internal/domain/profiles"
	"genefit/internal/ports/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Fakes
// -------------------------

type fakeTests struct {
	byID    map[string]GeneticTest
	order   []string
	failGet error
}

func (r *fakeTests) Create(_ context.Context, t GeneticTest) error {
	r.byID[t.ID] = t
	r.order = append(r.order, t.ID)
	return nil
}

func (r *fakeTests) Update(_ context.Context, t GeneticTest) error {
	if _, ok := r.byID[t.ID]; !ok {
		return store.ErrNotFound
	}
	r.byID[t.ID] = t
	return nil
}

func (r *fakeTests) GetByID(_ context.Context, id string) (GeneticTest, error) {
	if r.failGet != nil {
		return GeneticTest{}, r.failGet
	}
	t, ok := r.byID[id]
	if !ok {
		return GeneticTest{}, store.ErrNotFound
	}
	return t, nil
}

func (r *fakeTests) LatestByUser(_ context.Context, userID string) (GeneticTest, error) {
	for i := len(r.order) - 1; i >= 0; i-- {
		if t := r.byID[r.order[i]]; t.UserID == userID {
			return t, nil
		}
	}
	return GeneticTest{}, store.ErrNotFound
}

type fakeSupplements struct{ items []Supplement }

func (r *fakeSupplements) Create(_ context.Context, s Supplement) error {
	r.items = append(r.items, s)
	return nil
}

func (r *fakeSupplements) ListByName(context.Context) ([]Supplement, error) {
	out := append([]Supplement(nil), r.items...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakeIngredients struct{ items []Ingredient }

func (r *fakeIngredients) Create(_ context.Context, i Ingredient) error {
	r.items = append(r.items, i)
	return nil
}

func (r *fakeIngredients) ListByName(context.Context) ([]Ingredient, error) {
	return r.items, nil
}

type fakeResults struct{ items []TestResult }

func (r *fakeResults) Create(_ context.Context, res TestResult) error {
	r.items = append(r.items, res)
	return nil
}

func (r *fakeResults) ListByUser(_ context.Context, userID string) ([]TestResult, error) {
	out := make([]TestResult, 0)
	for _, it := range r.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

type fakeRecommendations struct{ items []Recommendation }

func (r *fakeRecommendations) Create(_ context.Context, rec Recommendation) error {
	r.items = append(r.items, rec)
	return nil
}

func (r *fakeRecommendations) LatestByUser(_ context.Context, userID string) (Recommendation, error) {
	var best Recommendation
	found := false
	for _, it := range r.items {
		if it.UserID == userID && (!found || it.GeneratedAt.After(best.GeneratedAt)) {
			best, found = it, true
		}
	}
	if !found {
		return Recommendation{}, store.ErrNotFound
	}
	return best, nil
}

type fakeProfiles struct {
	created []profiles.CreateInput
	err     error
}

func (f *fakeProfiles) Create(_ context.Context, userID string, in profiles.CreateInput) (profiles.Profile, error) {
	if f.err != nil {
		return profiles.Profile{}, f.err
	}
	f.created = append(f.created, in)
	return profiles.Profile{ID: "profile-" + userID, UserID: userID, SubscriptionStatus: in.Status}, nil
}

type fixture struct {
	svc      *Service
	tests    *fakeTests
	supps    *fakeSupplements
	recs     *fakeRecommendations
	profiles *fakeProfiles
	clock    time.Time
}

func newFixture() *fixture {
	f := &fixture{
		tests:    &fakeTests{byID: map[string]GeneticTest{}},
		supps:    &fakeSupplements{},
		recs:     &fakeRecommendations{},
		profiles: &fakeProfiles{},
		clock:    time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	f.svc = NewService(Repos{
		Tests:           f.tests,
		Supplements:     f.supps,
		Ingredients:     &fakeIngredients{},
		TestResults:     &fakeResults{},
		Recommendations: f.recs,
	}, f.profiles, nil)
	f.svc.now = func() time.Time { return f.clock }
	return f
}

// -------------------------
// Tests
// -------------------------

func TestCreateGeneticTest_CreatesActiveProfileAndRequestedTest(t *testing.T) {
	f := newFixture()

	res, err := f.svc.CreateGeneticTest(context.Background(), "u1", CreateTestInput{
		FullName: " 김지민 ",
		Email:    "jimin@example.com",
		Address:  map[string]any{"city": "Seoul"},
	})
	require.NoError(t, err)

	assert.Equal(t, TestRequested, res.Test.Status)
	assert.Equal(t, f.clock, res.Test.ApplicationDate)
	assert.Equal(t, "profile-u1", res.Profile.ID)
	require.Len(t, f.profiles.created, 1)
	assert.Equal(t, profiles.SubscriptionActive, f.profiles.created[0].Status)
}

func TestCreateGeneticTest_RepeatedCallsDuplicate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first, err := f.svc.CreateGeneticTest(ctx, "u1", CreateTestInput{})
	require.NoError(t, err)
	second, err := f.svc.CreateGeneticTest(ctx, "u1", CreateTestInput{})
	require.NoError(t, err)

	assert.NotEqual(t, first.Test.ID, second.Test.ID)
	assert.Len(t, f.tests.byID, 2)
	assert.Len(t, f.profiles.created, 2)
}

func TestCreateGeneticTest_ProfileFailureStopsTest(t *testing.T) {
	f := newFixture()
	f.profiles.err = errors.New("db down")

	_, err := f.svc.CreateGeneticTest(context.Background(), "u1", CreateTestInput{})
	require.Error(t, err)
	assert.Empty(t, f.tests.byID)
}

func TestCreateGeneticTest_RequiresUser(t *testing.T) {
	f := newFixture()
	_, err := f.svc.CreateGeneticTest(context.Background(), "  ", CreateTestInput{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLatestTest(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.LatestTest(ctx, "u1")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.CreateGeneticTest(ctx, "u1", CreateTestInput{})
	require.NoError(t, err)
	second, err := f.svc.CreateGeneticTest(ctx, "u1", CreateTestInput{})
	require.NoError(t, err)

	got, err := f.svc.LatestTest(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, second.Test.ID, got.ID)
}

func TestGetTest_StorageErrorIsWrapped(t *testing.T) {
	f := newFixture()
	boom := errors.New("connection reset")
	f.tests.failGet = boom

	_, err := f.svc.GetTest(context.Background(), "t1")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestAdvanceTest_FullLifecycle(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	res, err := f.svc.CreateGeneticTest(ctx, "u1", CreateTestInput{})
	require.NoError(t, err)
	id := res.Test.ID

	steps := []TestStatus{TestKitSent, TestSampleReceived, TestAnalyzing}
	for i, to := range steps {
		f.clock = f.clock.Add(24 * time.Hour)
		got, err := f.svc.AdvanceTest(ctx, id, to, map[string]any{"ignored": i})
		require.NoError(t, err, to)
		assert.Equal(t, to, got.Status)
		assert.Nil(t, got.Results, "results only land on complete")
	}

	f.clock = f.clock.Add(24 * time.Hour)
	done, err := f.svc.AdvanceTest(ctx, id, TestComplete, map[string]any{"metabolism_type": "slow"})
	require.NoError(t, err)

	require.NotNil(t, done.KitSentDate)
	require.NotNil(t, done.SampleReceivedDate)
	require.NotNil(t, done.AnalysisCompletedDate)
	assert.True(t, done.KitSentDate.Before(*done.SampleReceivedDate))
	assert.Equal(t, f.clock, *done.AnalysisCompletedDate)
	assert.Equal(t, "slow", done.Results["metabolism_type"])
}

func TestAdvanceTest_Rejects(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	res, err := f.svc.CreateGeneticTest(ctx, "u1", CreateTestInput{})
	require.NoError(t, err)

	_, err = f.svc.AdvanceTest(ctx, res.Test.ID, TestComplete, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = f.svc.AdvanceTest(ctx, res.Test.ID, TestRequested, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = f.svc.AdvanceTest(ctx, res.Test.ID, "lost", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.AdvanceTest(ctx, "missing", TestKitSent, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(TestRequested, TestKitSent))
	assert.True(t, CanTransition(TestAnalyzing, TestComplete))
	assert.False(t, CanTransition(TestComplete, TestRequested))
	assert.False(t, CanTransition(TestKitSent, TestKitSent))
	assert.False(t, CanTransition(TestRequested, TestSampleReceived))
}

func TestListSupplements_NameAscending(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	for _, name := range []string{"Probiotics", "CLA", "Green Tea"} {
		_, err := f.svc.CreateSupplement(ctx, SupplementInput{Name: name})
		require.NoError(t, err)
	}
	_, err := f.svc.CreateSupplement(ctx, SupplementInput{Name: " "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	items, err := f.svc.ListSupplements(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "CLA", items[0].Name)
	assert.Equal(t, "Probiotics", items[2].Name)
	assert.NotNil(t, items[0].MainIngredients)
}

func TestRecommendations(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.LatestRecommendation(ctx, "u1")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.CreateRecommendation(ctx, "u1", RecommendationInput{})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = f.svc.CreateRecommendation(ctx, "u1", RecommendationInput{Top3Supplements: []string{"a", "b", "c", "d"}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.CreateRecommendation(ctx, "u1", RecommendationInput{Top3Supplements: []string{"a"}})
	require.NoError(t, err)
	f.clock = f.clock.Add(time.Hour)
	newer, err := f.svc.CreateRecommendation(ctx, "u1", RecommendationInput{
		Top3Supplements: []string{"b", "c"},
		ConfidenceScore: 84,
	})
	require.NoError(t, err)

	got, err := f.svc.LatestRecommendation(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, newer.ID, got.ID)
	assert.NotNil(t, got.Reasons)
}

func TestRecordTestResult(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.RecordTestResult(ctx, "u1", TestResultInput{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	r, err := f.svc.RecordTestResult(ctx, "u1", TestResultInput{IngredientID: "ing-1", TestScore: 8.5})
	require.NoError(t, err)
	assert.Equal(t, f.clock, r.TestDate)

	items, err := f.svc.ListTestResults(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestSampleReport_Shape(t *testing.T) {
	rep := SampleReport()
	assert.Len(t, rep.IngredientTestResults, 10)
	assert.Len(t, rep.Top3Recommendations, 3)
	assert.Equal(t, 1, rep.Top3Recommendations[0].Rank)
	assert.NotEmpty(t, rep.LifestyleRecommendations)
}

func TestIngredients(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.CreateIngredient(ctx, IngredientInput{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	ing, err := f.svc.CreateIngredient(ctx, IngredientInput{Name: " 녹차 추출물 ", RecommendedDosage: "500mg"})
	require.NoError(t, err)
	assert.Equal(t, "녹차 추출물", ing.Name)
	assert.NotNil(t, ing.SideEffects)

	items, err := f.svc.ListIngredients(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, ing.ID, items[0].ID)
}
