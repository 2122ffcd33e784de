package memory

import (
	"context"

	"genefit/internal/domain/genetics"
)

// NewGeneticsRepos returns empty in-memory stores for the genetics module.
func NewGeneticsRepos() genetics.Repos {
	return genetics.Repos{
		Tests:           &testRepo{t: newTable(func(t genetics.GeneticTest) string { return t.ID })},
		Supplements:     &supplementRepo{t: newTable(func(s genetics.Supplement) string { return s.ID })},
		Ingredients:     &ingredientRepo{t: newTable(func(i genetics.Ingredient) string { return i.ID })},
		TestResults:     &testResultRepo{t: newTable(func(r genetics.TestResult) string { return r.ID })},
		Recommendations: &recommendationRepo{t: newTable(func(r genetics.Recommendation) string { return r.ID })},
	}
}

type testRepo struct {
	t *table[genetics.GeneticTest]
}

func (r *testRepo) Create(ctx context.Context, t genetics.GeneticTest) error {
	return r.t.insert(ctx, t)
}

func (r *testRepo) Update(ctx context.Context, t genetics.GeneticTest) error {
	return r.t.update(ctx, t)
}

func (r *testRepo) GetByID(_ context.Context, id string) (genetics.GeneticTest, error) {
	return r.t.get(id)
}

func (r *testRepo) LatestByUser(_ context.Context, userID string) (genetics.GeneticTest, error) {
	return r.t.first(
		func(t genetics.GeneticTest) bool { return t.UserID == userID },
		func(a, b genetics.GeneticTest) bool { return newestFirst(a.CreatedAt, b.CreatedAt) },
	)
}

type supplementRepo struct {
	t *table[genetics.Supplement]
}

func (r *supplementRepo) Create(ctx context.Context, s genetics.Supplement) error {
	return r.t.insert(ctx, s)
}

func (r *supplementRepo) ListByName(_ context.Context) ([]genetics.Supplement, error) {
	return r.t.selectRows(nil, func(a, b genetics.Supplement) bool { return a.Name < b.Name }), nil
}

type ingredientRepo struct {
	t *table[genetics.Ingredient]
}

func (r *ingredientRepo) Create(ctx context.Context, i genetics.Ingredient) error {
	return r.t.insert(ctx, i)
}

func (r *ingredientRepo) ListByName(_ context.Context) ([]genetics.Ingredient, error) {
	return r.t.selectRows(nil, func(a, b genetics.Ingredient) bool { return a.Name < b.Name }), nil
}

type testResultRepo struct {
	t *table[genetics.TestResult]
}

func (r *testResultRepo) Create(ctx context.Context, res genetics.TestResult) error {
	return r.t.insert(ctx, res)
}

func (r *testResultRepo) ListByUser(_ context.Context, userID string) ([]genetics.TestResult, error) {
	return r.t.selectRows(
		func(res genetics.TestResult) bool { return res.UserID == userID },
		func(a, b genetics.TestResult) bool { return a.TestScore > b.TestScore },
	), nil
}

type recommendationRepo struct {
	t *table[genetics.Recommendation]
}

func (r *recommendationRepo) Create(ctx context.Context, rec genetics.Recommendation) error {
	return r.t.insert(ctx, rec)
}

func (r *recommendationRepo) LatestByUser(_ context.Context, userID string) (genetics.Recommendation, error) {
	return r.t.first(
		func(rec genetics.Recommendation) bool { return rec.UserID == userID },
		func(a, b genetics.Recommendation) bool { return newestFirst(a.GeneratedAt, b.GeneratedAt) },
	)
}
