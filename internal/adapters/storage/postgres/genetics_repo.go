package postgres

import (
	"context"
	"database/sql"
	"errors"

	"genefit/internal/domain/genetics"
	"genefit/internal/ports/store"
)

// NewGeneticsRepos wires every genetics store to db.
func NewGeneticsRepos(db *sql.DB) genetics.Repos {
	return genetics.Repos{
		Tests:           &GeneticTestsRepo{db: db},
		Supplements:     &SupplementsRepo{db: db},
		Ingredients:     &IngredientsRepo{db: db},
		TestResults:     &TestResultsRepo{db: db},
		Recommendations: &RecommendationsRepo{db: db},
	}
}

// ---- genetic_tests

type GeneticTestsRepo struct {
	db *sql.DB
}

const testColumns = `
	id, user_id, status, application_date,
	kit_sent_date, sample_received_date, analysis_completed_date,
	results, created_at, updated_at`

func (r *GeneticTestsRepo) Create(ctx context.Context, t genetics.GeneticTest) error {
	results, err := nullableJSONB(t.Results)
	if err != nil {
		return err
	}

	_, err = conn(ctx, r.db).ExecContext(ctx, `
		INSERT INTO genetic_tests (`+testColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		t.ID,
		t.UserID,
		string(t.Status),
		t.ApplicationDate,
		toNullTime(t.KitSentDate),
		toNullTime(t.SampleReceivedDate),
		toNullTime(t.AnalysisCompletedDate),
		results,
		t.CreatedAt,
		t.UpdatedAt,
	)
	return err
}

func (r *GeneticTestsRepo) Update(ctx context.Context, t genetics.GeneticTest) error {
	results, err := nullableJSONB(t.Results)
	if err != nil {
		return err
	}

	res, err := conn(ctx, r.db).ExecContext(ctx, `
		UPDATE genetic_tests
		SET
			status = $2,
			kit_sent_date = $3,
			sample_received_date = $4,
			analysis_completed_date = $5,
			results = $6,
			updated_at = $7
		WHERE id = $1
	`,
		t.ID,
		string(t.Status),
		toNullTime(t.KitSentDate),
		toNullTime(t.SampleReceivedDate),
		toNullTime(t.AnalysisCompletedDate),
		results,
		t.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *GeneticTestsRepo) GetByID(ctx context.Context, id string) (genetics.GeneticTest, error) {
	id, ok := parseID(id)
	if !ok {
		return genetics.GeneticTest{}, store.ErrNotFound
	}
	row := conn(ctx, r.db).QueryRowContext(ctx, `
		SELECT `+testColumns+`
		FROM genetic_tests
		WHERE id = $1
	`, id)
	return scanTest(row)
}

func (r *GeneticTestsRepo) LatestByUser(ctx context.Context, userID string) (genetics.GeneticTest, error) {
	row := conn(ctx, r.db).QueryRowContext(ctx, `
		SELECT `+testColumns+`
		FROM genetic_tests
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, userID)
	return scanTest(row)
}

func scanTest(row rowScanner) (genetics.GeneticTest, error) {
	var t genetics.GeneticTest
	var status string
	var kitSent, sampleReceived, analysisCompleted sql.NullTime
	var results []byte

	if err := row.Scan(
		&t.ID,
		&t.UserID,
		&status,
		&t.ApplicationDate,
		&kitSent,
		&sampleReceived,
		&analysisCompleted,
		&results,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return genetics.GeneticTest{}, store.ErrNotFound
		}
		return genetics.GeneticTest{}, err
	}

	t.Status = genetics.TestStatus(status)
	t.KitSentDate = fromNullTime(kitSent)
	t.SampleReceivedDate = fromNullTime(sampleReceived)
	t.AnalysisCompletedDate = fromNullTime(analysisCompleted)
	if err := fromJSONB(results, &t.Results); err != nil {
		return genetics.GeneticTest{}, err
	}
	return t, nil
}

// nullableJSONB stores a nil map as SQL NULL.
func nullableJSONB(m map[string]any) (sql.NullString, error) {
	if m == nil {
		return sql.NullString{}, nil
	}
	s, err := toJSONB(m, "{}")
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: s, Valid: true}, nil
}

// ---- supplements

type SupplementsRepo struct {
	db *sql.DB
}

func (r *SupplementsRepo) Create(ctx context.Context, s genetics.Supplement) error {
	_, err := conn(ctx, r.db).ExecContext(ctx, `
		INSERT INTO supplements (
			id, name, brand, main_ingredients, is_fda_approved,
			description, efficacy, price, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		s.ID,
		s.Name,
		s.Brand,
		nonNilStrings(s.MainIngredients),
		s.IsFDAApproved,
		s.Description,
		s.Efficacy,
		s.Price,
		s.CreatedAt,
		s.UpdatedAt,
	)
	return err
}

func (r *SupplementsRepo) ListByName(ctx context.Context) ([]genetics.Supplement, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, `
		SELECT
			id, name, brand, main_ingredients, is_fda_approved,
			description, efficacy, price, created_at, updated_at
		FROM supplements
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]genetics.Supplement, 0)
	for rows.Next() {
		var s genetics.Supplement
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Brand,
			textArray(&s.MainIngredients),
			&s.IsFDAApproved,
			&s.Description,
			&s.Efficacy,
			&s.Price,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ---- ingredients

type IngredientsRepo struct {
	db *sql.DB
}

func (r *IngredientsRepo) Create(ctx context.Context, i genetics.Ingredient) error {
	_, err := conn(ctx, r.db).ExecContext(ctx, `
		INSERT INTO ingredients (
			id, name, fda_notification_info, efficacy_description,
			recommended_dosage, side_effects, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		i.ID,
		i.Name,
		i.FDANotificationInfo,
		i.EfficacyDescription,
		i.RecommendedDosage,
		nonNilStrings(i.SideEffects),
		i.CreatedAt,
		i.UpdatedAt,
	)
	return err
}

func (r *IngredientsRepo) ListByName(ctx context.Context) ([]genetics.Ingredient, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, `
		SELECT
			id, name, fda_notification_info, efficacy_description,
			recommended_dosage, side_effects, created_at, updated_at
		FROM ingredients
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]genetics.Ingredient, 0)
	for rows.Next() {
		var i genetics.Ingredient
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.FDANotificationInfo,
			&i.EfficacyDescription,
			&i.RecommendedDosage,
			textArray(&i.SideEffects),
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

// ---- test_results

type TestResultsRepo struct {
	db *sql.DB
}

func (r *TestResultsRepo) Create(ctx context.Context, res genetics.TestResult) error {
	_, err := conn(ctx, r.db).ExecContext(ctx, `
		INSERT INTO test_results (
			id, user_id, ingredient_id, test_score,
			predicted_effect, test_date, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		res.ID,
		res.UserID,
		res.IngredientID,
		res.TestScore,
		res.PredictedEffect,
		res.TestDate,
		res.CreatedAt,
	)
	return err
}

func (r *TestResultsRepo) ListByUser(ctx context.Context, userID string) ([]genetics.TestResult, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, `
		SELECT
			id, user_id, ingredient_id, test_score,
			predicted_effect, test_date, created_at
		FROM test_results
		WHERE user_id = $1
		ORDER BY test_score DESC, created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]genetics.TestResult, 0)
	for rows.Next() {
		var res genetics.TestResult
		if err := rows.Scan(
			&res.ID,
			&res.UserID,
			&res.IngredientID,
			&res.TestScore,
			&res.PredictedEffect,
			&res.TestDate,
			&res.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// ---- recommendations

type RecommendationsRepo struct {
	db *sql.DB
}

func (r *RecommendationsRepo) Create(ctx context.Context, rec genetics.Recommendation) error {
	reasons, err := toJSONB(rec.Reasons, "{}")
	if err != nil {
		return err
	}

	_, err = conn(ctx, r.db).ExecContext(ctx, `
		INSERT INTO recommendations (
			id, user_id, top3_supplements, recommendation_reasons,
			predicted_weight_loss, confidence_score, generated_at, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		rec.ID,
		rec.UserID,
		nonNilStrings(rec.Top3Supplements),
		reasons,
		rec.PredictedWeightLoss,
		rec.ConfidenceScore,
		rec.GeneratedAt,
		rec.CreatedAt,
	)
	return err
}

func (r *RecommendationsRepo) LatestByUser(ctx context.Context, userID string) (genetics.Recommendation, error) {
	row := conn(ctx, r.db).QueryRowContext(ctx, `
		SELECT
			id, user_id, top3_supplements, recommendation_reasons,
			predicted_weight_loss, confidence_score, generated_at, created_at
		FROM recommendations
		WHERE user_id = $1
		ORDER BY generated_at DESC
		LIMIT 1
	`, userID)

	var rec genetics.Recommendation
	var reasons []byte
	if err := row.Scan(
		&rec.ID,
		&rec.UserID,
		textArray(&rec.Top3Supplements),
		&reasons,
		&rec.PredictedWeightLoss,
		&rec.ConfidenceScore,
		&rec.GeneratedAt,
		&rec.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return genetics.Recommendation{}, store.ErrNotFound
		}
		return genetics.Recommendation{}, err
	}

	if err := fromJSONB(reasons, &rec.Reasons); err != nil {
		return genetics.Recommendation{}, err
	}
	return rec, nil
}
