package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/weatherdash/backend/internal/domain"
)

// historyLimit caps how many rows a history query returns.
const historyLimit = 100

// DB is the subset of *pgxpool.Pool the repository needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
}

// PostgresRepository implements domain.ObservationRepository
type PostgresRepository struct {
	db DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: pool}
}

// NewRepositoryWithDB builds a repository on any DB implementation.
func NewRepositoryWithDB(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const schema = `
	CREATE TABLE IF NOT EXISTS weather_observations (
		id           BIGSERIAL PRIMARY KEY,
		city         TEXT NOT NULL,
		temperature  DOUBLE PRECISION NOT NULL,
		feels_like   DOUBLE PRECISION NOT NULL,
		humidity     INTEGER NOT NULL,
		wind_speed   DOUBLE PRECISION NOT NULL,
		condition    TEXT NOT NULL,
		icon         TEXT NOT NULL,
		units        TEXT NOT NULL,
		observed_at  TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_weather_observations_observed_at
		ON weather_observations (observed_at DESC);
`

// Migrate creates the observations table if it does not exist yet.
func (r *PostgresRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("postgres: failed to migrate: %w", err)
	}
	return nil
}

// SaveObservation persists a weather observation to PostgreSQL
func (r *PostgresRepository) SaveObservation(ctx context.Context, obs domain.Observation) error {
	query := `
		INSERT INTO weather_observations (
			city, temperature, feels_like, humidity, wind_speed,
			condition, icon, units, observed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		obs.City, obs.Temperature, obs.FeelsLike, obs.Humidity, obs.WindSpeed,
		obs.Condition, obs.Icon, string(obs.Units), obs.ObservedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to save observation: %w", err)
	}

	return nil
}

// ListObservations retrieves observation history from PostgreSQL
func (r *PostgresRepository) ListObservations(ctx context.Context, from, to time.Time, city string) ([]domain.Observation, error) {
	query := `
		SELECT city, temperature, feels_like, humidity, wind_speed,
			   condition, icon, units, observed_at
		FROM weather_observations
		WHERE observed_at BETWEEN $1 AND $2
		  AND ($3 = '' OR lower(city) = lower($3))
		ORDER BY observed_at DESC
		LIMIT $4
	`

	rows, err := r.db.Query(ctx, query, from, to, city, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query observations: %w", err)
	}
	defer rows.Close()

	results := []domain.Observation{}
	for rows.Next() {
		var (
			o     domain.Observation
			units string
		)
		err := rows.Scan(
			&o.City, &o.Temperature, &o.FeelsLike, &o.Humidity, &o.WindSpeed,
			&o.Condition, &o.Icon, &units, &o.ObservedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan observation row: %w", err)
		}
		o.Units = domain.Units(units)
		results = append(results, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to iterate observations: %w", err)
	}

	return results, nil
}

// Health checks database connectivity
func (r *PostgresRepository) Health(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}
