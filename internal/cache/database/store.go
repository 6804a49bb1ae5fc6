// Package database provides the SQL-backed recipe store built on gorm.
package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/davidbz/chefgenius/internal/domain"
	"github.com/davidbz/chefgenius/internal/observability"
)

const (
	// DriverSQLite stores recipes in a local SQLite file.
	DriverSQLite = "sqlite"
	// DriverPostgres stores recipes in PostgreSQL.
	DriverPostgres = "postgres"
)

// Config contains SQL store settings.
type Config struct {
	Driver string `env:"DB_DRIVER" envDefault:"sqlite"`
	DSN    string `env:"DB_DSN"    envDefault:"recipes.db"`
}

// recipeRow maps the recipes table: one JSON document per cache key.
type recipeRow struct {
	ID    uint   `gorm:"primaryKey;autoIncrement"`
	Query string `gorm:"column:query;uniqueIndex;not null"`
	JSON  string `gorm:"column:json;type:text;not null"`
}

func (recipeRow) TableName() string {
	return "recipes"
}

// Store implements domain.RecipeStore on a SQL table.
type Store struct {
	db *gorm.DB
}

var _ domain.RecipeStore = (*Store)(nil)

// Open connects using cfg and migrates the recipes table.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "", DriverSQLite:
		dialector = sqlite.Open(cfg.DSN)
	case DriverPostgres:
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if cfg.Driver == "" || cfg.Driver == DriverSQLite {
		sqlDB, dbErr := db.DB()
		if dbErr != nil {
			return nil, fmt.Errorf("error accessing database handle: %w", dbErr)
		}
		// SQLite allows a single writer; one connection also keeps :memory: databases shared.
		sqlDB.SetMaxOpenConns(1)
	}

	store, err := NewStore(ctx, db)
	if err != nil {
		return nil, err
	}

	observability.FromContext(ctx).Info("connected to recipe database",
		observability.String("driver", dialector.Name()))

	return store, nil
}

// NewStore wraps an open gorm handle and ensures the schema exists.
func NewStore(ctx context.Context, db *gorm.DB) (*Store, error) {
	if db == nil {
		return nil, errors.New("database handle cannot be nil")
	}

	if err := db.WithContext(ctx).AutoMigrate(&recipeRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate recipes table: %w", err)
	}

	return &Store{db: db}, nil
}

// Lookup returns the stored recipe for key, or domain.ErrCacheMiss.
// A row that no longer decodes into a valid Recipe is reported as a CacheIOError.
func (s *Store) Lookup(ctx context.Context, key string) (*domain.Recipe, error) {
	var row recipeRow
	err := s.db.WithContext(ctx).Where("query = ?", key).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCacheMiss
	}
	if err != nil {
		return nil, &domain.CacheIOError{Op: "lookup", Key: key, Err: err}
	}

	var recipe domain.Recipe
	if err := json.Unmarshal([]byte(row.JSON), &recipe); err != nil {
		return nil, &domain.CacheIOError{Op: "decode", Key: key, Err: err}
	}
	recipe.Normalize()

	if err := domain.ValidateRecipe(&recipe); err != nil {
		return nil, &domain.CacheIOError{Op: "decode", Key: key, Err: err}
	}

	return &recipe, nil
}

// Store upserts the recipe under key; an existing row is overwritten.
func (s *Store) Store(ctx context.Context, key string, recipe *domain.Recipe) error {
	if recipe == nil {
		return errors.New("recipe cannot be nil")
	}

	data, err := json.Marshal(recipe)
	if err != nil {
		return &domain.CacheIOError{Op: "encode", Key: key, Err: err}
	}

	row := recipeRow{Query: key, JSON: string(data)}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "query"}},
		DoUpdates: clause.AssignmentColumns([]string{"json"}),
	}).Create(&row).Error
	if err != nil {
		return &domain.CacheIOError{Op: "store", Key: key, Err: err}
	}

	observability.FromContext(ctx).Debug("recipe stored in database",
		observability.Int("data_size", len(data)))

	return nil
}

// Count returns the number of cached recipes.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&recipeRow{}).Count(&n).Error; err != nil {
		return 0, &domain.CacheIOError{Op: "count", Err: err}
	}
	return n, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("error accessing database handle: %w", err)
	}
	return sqlDB.Close()
}
