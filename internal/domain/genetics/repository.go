package genetics

import "context"

type TestRepository interface {
	Create(ctx context.Context, t GeneticTest) error
	Update(ctx context.Context, t GeneticTest) error
	GetByID(ctx context.Context, id string) (GeneticTest, error)
	// LatestByUser returns the most recently created test.
	LatestByUser(ctx context.Context, userID string) (GeneticTest, error)
}

type SupplementRepository interface {
	Create(ctx context.Context, s Supplement) error
	// ListByName returns every supplement, ascending by name.
	ListByName(ctx context.Context) ([]Supplement, error)
}

type IngredientRepository interface {
	Create(ctx context.Context, i Ingredient) error
	ListByName(ctx context.Context) ([]Ingredient, error)
}

type TestResultRepository interface {
	Create(ctx context.Context, r TestResult) error
	// ListByUser orders by test score, highest first.
	ListByUser(ctx context.Context, userID string) ([]TestResult, error)
}

type RecommendationRepository interface {
	Create(ctx context.Context, r Recommendation) error
	// LatestByUser returns the recommendation with the greatest GeneratedAt.
	LatestByUser(ctx context.Context, userID string) (Recommendation, error)
}

// Repos groups the storage the genetics service depends on.
type Repos struct {
	Tests           TestRepository
	Supplements     SupplementRepository
	Ingredients     IngredientRepository
	TestResults     TestResultRepository
	Recommendations RecommendationRepository
}
