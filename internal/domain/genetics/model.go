package genetics

import "time"

type TestStatus string

const (
	TestRequested      TestStatus = "requested"
	TestKitSent        TestStatus = "kit_sent"
	TestSampleReceived TestStatus = "sample_received"
	TestAnalyzing      TestStatus = "analyzing"
	TestComplete       TestStatus = "complete"
)

// GeneticTest tracks one kit from order to finished analysis.
type GeneticTest struct {
	ID     string
	UserID string

	Status TestStatus

	ApplicationDate       time.Time
	KitSentDate           *time.Time
	SampleReceivedDate    *time.Time
	AnalysisCompletedDate *time.Time

	// Opaque lab payload, set when the analysis completes.
	Results map[string]any

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Supplement struct {
	ID              string
	Name            string
	Brand           string
	MainIngredients []string
	IsFDAApproved   bool
	Description     string
	Efficacy        string
	Price           float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Ingredient struct {
	ID                  string
	Name                string
	FDANotificationInfo string
	EfficacyDescription string
	RecommendedDosage   string
	SideEffects         []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TestResult is one ingredient scored against one user's sample.
type TestResult struct {
	ID              string
	UserID          string
	IngredientID    string
	TestScore       float64
	PredictedEffect float64
	TestDate        time.Time
	CreatedAt       time.Time
}

type Recommendation struct {
	ID                  string
	UserID              string
	Top3Supplements     []string // supplement ids
	Reasons             map[string]any
	PredictedWeightLoss float64 // kg
	ConfidenceScore     float64 // 0-100
	GeneratedAt         time.Time
	CreatedAt           time.Time
}
