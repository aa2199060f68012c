package storage

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"chuckle-chow/internal/core/engine"
	"chuckle-chow/internal/pkg/common"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store is the sqlite-backed recipe corpus.
type Store struct {
	db *sql.DB
}

// New opens (creating if needed) the corpus database at path and brings
// the schema up to date.
func New(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	if err := runMigrations(path); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the underlying connection, for readiness probes.
func (s *Store) Ping() error {
	return s.db.Ping()
}

func runMigrations(path string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create iofs driver: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, fmt.Sprintf("sqlite://%s", path))
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	common.LogInfo("database migrations applied", zap.String("path", path))
	return nil
}

// Seed inserts the predefined corpus when the table is empty. Safe to
// call on every startup.
func (s *Store) Seed(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM recipes`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count recipes: %w", err)
	}
	if count > 0 {
		common.LogDebug("recipe corpus already seeded", zap.Int("count", count))
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO recipes (title_en, title_es, steps_en, steps_es, ingredients, nutrition, cooking_time, difficulty)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare seed insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range seedRecipes() {
		stepsEN, err := json.Marshal(r.StepsEN)
		if err != nil {
			return fmt.Errorf("failed to marshal steps for %q: %w", r.TitleEN, err)
		}
		stepsES, err := json.Marshal(r.StepsES)
		if err != nil {
			return fmt.Errorf("failed to marshal spanish steps for %q: %w", r.TitleEN, err)
		}
		ingredients, err := json.Marshal(r.Ingredients)
		if err != nil {
			return fmt.Errorf("failed to marshal ingredients for %q: %w", r.TitleEN, err)
		}
		nutrition, err := json.Marshal(r.Nutrition)
		if err != nil {
			return fmt.Errorf("failed to marshal nutrition for %q: %w", r.TitleEN, err)
		}

		if _, err := stmt.ExecContext(ctx, r.TitleEN, r.TitleES, stepsEN, stepsES,
			ingredients, nutrition, r.CookingTime, r.Difficulty); err != nil {
			return fmt.Errorf("failed to insert %q: %w", r.TitleEN, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	common.LogInfo("recipe corpus seeded", zap.Int("count", len(seedRecipes())))
	return nil
}

// GetAllRecipes loads the whole corpus. The table is small and read-only
// at runtime, so no pagination.
func (s *Store) GetAllRecipes(ctx context.Context) ([]engine.StoredRecipe, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title_en, title_es, steps_en, steps_es, ingredients, nutrition, cooking_time, difficulty, rating, rating_count
		FROM recipes
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer rows.Close()

	var out []engine.StoredRecipe
	for rows.Next() {
		var (
			r           engine.StoredRecipe
			stepsEN     []byte
			stepsES     []byte
			ingredients []byte
			nutrition   []byte
		)
		if err := rows.Scan(&r.ID, &r.TitleEN, &r.TitleES, &stepsEN, &stepsES,
			&ingredients, &nutrition, &r.CookingTime, &r.Difficulty, &r.Rating, &r.RatingCount); err != nil {
			return nil, fmt.Errorf("failed to scan recipe row: %w", err)
		}
		if err := json.Unmarshal(stepsEN, &r.StepsEN); err != nil {
			return nil, fmt.Errorf("corrupt steps_en for recipe %d: %w", r.ID, err)
		}
		if len(stepsES) > 0 {
			if err := json.Unmarshal(stepsES, &r.StepsES); err != nil {
				return nil, fmt.Errorf("corrupt steps_es for recipe %d: %w", r.ID, err)
			}
		}
		if err := json.Unmarshal(ingredients, &r.Ingredients); err != nil {
			return nil, fmt.Errorf("corrupt ingredients for recipe %d: %w", r.ID, err)
		}
		if err := json.Unmarshal(nutrition, &r.Nutrition); err != nil {
			return nil, fmt.Errorf("corrupt nutrition for recipe %d: %w", r.ID, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipes: %w", err)
	}
	return out, nil
}
