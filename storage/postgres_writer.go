package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dubizzle-scraper/config"
	"dubizzle-scraper/models"
)

// PostgresWriter is the optional database sink. Records land in
// vehicle_listings keyed on the ad link; re-runs skip already stored ads.
type PostgresWriter struct {
	pool *pgxpool.Pool
}

func NewPostgresWriter(cfg *config.Config) (*PostgresWriter, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.DBSSLMode,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect postgres: %w", err)
	}

	return &PostgresWriter{pool: pool}, nil
}

func (w *PostgresWriter) Close() {
	if w.pool != nil {
		w.pool.Close()
	}
}

func (w *PostgresWriter) EnsureSchema() error {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	sql := `
	CREATE TABLE IF NOT EXISTS vehicle_listings (
		id BIGSERIAL PRIMARY KEY,
		name TEXT,
		phone TEXT,
		price TEXT,
		location TEXT,
		car_type TEXT,
		description TEXT,
		link TEXT NOT NULL UNIQUE,
		scraped_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_vehicle_listings_location ON vehicle_listings(location);
	CREATE INDEX IF NOT EXISTS idx_vehicle_listings_car_type ON vehicle_listings(car_type);
	`

	if _, err := w.pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	return nil
}

func (w *PostgresWriter) WriteBatch(records []models.Record) error {
	if len(records) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	batch := &pgx.Batch{}
	insertSQL := `
	INSERT INTO vehicle_listings (name, phone, price, location, car_type, description, link)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (link) DO NOTHING;
	`

	enqueued := 0
	for _, r := range records {
		link := strings.TrimSpace(r.Link)
		if link == "" {
			continue
		}

		batch.Queue(insertSQL,
			r.Name,
			r.Phone,
			r.Price,
			r.Location,
			r.CarType,
			r.Description,
			link,
		)
		enqueued++
	}

	if enqueued == 0 {
		return nil
	}

	results := w.pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < enqueued; i++ {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("batch insert failed at row %d: %w", i, err)
		}
	}

	return nil
}
