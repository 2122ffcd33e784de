// Command seed loads the supplement and ingredient catalog into Postgres.
// Entries whose name already exists are skipped, so it can be re-run.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	pg "genefit/internal/adapters/storage/postgres"
	"genefit/internal/config"
	"genefit/internal/domain/genetics"
	"genefit/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	boot, err := logger.NewFromEnv()
	if err != nil {
		return err
	}
	cfg, err := config.Load(boot)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.DBDSN == "" {
		return errors.New("DB_DSN is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := pg.Open(cfg.DBDSN)
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}
	defer db.Close()

	if err := pg.Migrate(ctx, db); err != nil {
		return err
	}

	// Profiles are never touched by catalog writes.
	svc := genetics.NewService(pg.NewGeneticsRepos(db), nil, pg.NewTransactor(db))

	ingredients, supplements, err := seedCatalog(ctx, svc)
	if err != nil {
		return err
	}
	log.Info("catalog seeded", map[string]any{
		"ingredients_added": ingredients,
		"supplements_added": supplements,
	})
	return nil
}

func seedCatalog(ctx context.Context, svc *genetics.Service) (int, int, error) {
	report := genetics.SampleReport()

	existingIngredients, err := svc.ListIngredients(ctx)
	if err != nil {
		return 0, 0, err
	}
	haveIngredient := make(map[string]bool, len(existingIngredients))
	for _, i := range existingIngredients {
		haveIngredient[i.Name] = true
	}

	addedIngredients := 0
	for _, score := range report.IngredientTestResults {
		if haveIngredient[score.Name] {
			continue
		}
		if _, err := svc.CreateIngredient(ctx, genetics.IngredientInput{
			Name:                score.Name,
			FDANotificationInfo: "식약처 고시형 원료",
			EfficacyDescription: "체지방 감소에 도움을 줄 수 있음",
		}); err != nil {
			return addedIngredients, 0, fmt.Errorf("ingredient %q: %w", score.Name, err)
		}
		addedIngredients++
	}

	existingSupplements, err := svc.ListSupplements(ctx)
	if err != nil {
		return addedIngredients, 0, err
	}
	haveSupplement := make(map[string]bool, len(existingSupplements))
	for _, s := range existingSupplements {
		haveSupplement[s.Name] = true
	}

	addedSupplements := 0
	for _, rec := range report.Top3Recommendations {
		if haveSupplement[rec.Supplement] {
			continue
		}
		if _, err := svc.CreateSupplement(ctx, genetics.SupplementInput{
			Name:            rec.Supplement,
			Brand:           "GeneFit",
			MainIngredients: rec.Ingredients,
			IsFDAApproved:   true,
			Description:     rec.Reason,
			Efficacy:        rec.PredictedWeightLoss,
		}); err != nil {
			return addedIngredients, addedSupplements, fmt.Errorf("supplement %q: %w", rec.Supplement, err)
		}
		addedSupplements++
	}

	return addedIngredients, addedSupplements, nil
}
