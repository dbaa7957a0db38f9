package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weatherdash/backend/internal/domain"
)

type execCall struct {
	sql  string
	args []any
}

type fakeDB struct {
	execs    []execCall
	execErr  error
	queryArg []any
	rows     *fakeRows
	queryErr error
	pingErr  error
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, execCall{sql: sql, args: args})
	return pgconn.NewCommandTag("INSERT 0 1"), f.execErr
}

func (f *fakeDB) Query(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
	f.queryArg = args
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.rows, nil
}

func (f *fakeDB) Ping(context.Context) error { return f.pingErr }

// fakeRows replays observation rows in column order.
type fakeRows struct {
	data    [][]any
	pos     int
	err     error
	scanErr error
	closed  bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return r.data[r.pos-1], nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	row := r.data[r.pos-1]
	if len(row) != len(dest) {
		return fmt.Errorf("expected %d destinations, got %d", len(row), len(dest))
	}
	for i, v := range row {
		switch d := dest[i].(type) {
		case *string:
			*d = v.(string)
		case *float64:
			*d = v.(float64)
		case *int:
			*d = v.(int)
		case *time.Time:
			*d = v.(time.Time)
		default:
			return fmt.Errorf("unsupported destination %T", d)
		}
	}
	return nil
}

func observationRow(city string, temp float64, at time.Time) []any {
	return []any{city, temp, temp - 2, 70, 3.5, "clear sky", "01d", "metric", at}
}

func TestPostgresRepository_Migrate(t *testing.T) {
	db := &fakeDB{}
	repo := NewRepositoryWithDB(db)

	require.NoError(t, repo.Migrate(context.Background()))
	require.Len(t, db.execs, 1)
	assert.Contains(t, db.execs[0].sql, "CREATE TABLE IF NOT EXISTS weather_observations")

	db.execErr = errors.New("permission denied")
	assert.ErrorContains(t, repo.Migrate(context.Background()), "postgres: failed to migrate")
}

func TestPostgresRepository_SaveObservation(t *testing.T) {
	db := &fakeDB{}
	repo := NewRepositoryWithDB(db)
	at := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	obs := domain.Observation{
		City: "Oslo", Temperature: -3, FeelsLike: -7, Humidity: 80, WindSpeed: 5,
		Condition: "snow", Icon: "13d", Units: domain.Metric, ObservedAt: at,
	}

	require.NoError(t, repo.SaveObservation(context.Background(), obs))
	require.Len(t, db.execs, 1)
	assert.Contains(t, db.execs[0].sql, "INSERT INTO weather_observations")
	assert.Equal(t, []any{"Oslo", -3.0, -7.0, 80, 5.0, "snow", "13d", "metric", at}, db.execs[0].args)

	db.execErr = errors.New("conn reset")
	err := repo.SaveObservation(context.Background(), obs)
	assert.ErrorContains(t, err, "postgres: failed to save observation")
}

func TestPostgresRepository_ListObservations(t *testing.T) {
	now := time.Date(2026, 2, 3, 12, 0, 0, 0, time.UTC)
	from := now.Add(-24 * time.Hour)

	t.Run("scans rows", func(t *testing.T) {
		rows := &fakeRows{data: [][]any{
			observationRow("Oslo", 1, now),
			observationRow("Oslo", 2, now.Add(-time.Hour)),
		}}
		db := &fakeDB{rows: rows}

		got, err := NewRepositoryWithDB(db).ListObservations(context.Background(), from, now, "oslo")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Oslo", got[0].City)
		assert.Equal(t, 1.0, got[0].Temperature)
		assert.Equal(t, -1.0, got[0].FeelsLike)
		assert.Equal(t, domain.Metric, got[0].Units)
		assert.Equal(t, []any{from, now, "oslo", historyLimit}, db.queryArg)
		assert.True(t, rows.closed)
	})

	t.Run("empty result is not nil", func(t *testing.T) {
		got, err := NewRepositoryWithDB(&fakeDB{rows: &fakeRows{}}).ListObservations(context.Background(), from, now, "")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("query error", func(t *testing.T) {
		_, err := NewRepositoryWithDB(&fakeDB{queryErr: errors.New("boom")}).ListObservations(context.Background(), from, now, "")
		assert.ErrorContains(t, err, "failed to query observations")
	})

	t.Run("scan error", func(t *testing.T) {
		rows := &fakeRows{data: [][]any{observationRow("Oslo", 1, now)}, scanErr: errors.New("bad type")}
		_, err := NewRepositoryWithDB(&fakeDB{rows: rows}).ListObservations(context.Background(), from, now, "")
		assert.ErrorContains(t, err, "failed to scan observation row")
	})

	t.Run("iteration error", func(t *testing.T) {
		rows := &fakeRows{err: errors.New("conn lost")}
		_, err := NewRepositoryWithDB(&fakeDB{rows: rows}).ListObservations(context.Background(), from, now, "")
		assert.ErrorContains(t, err, "failed to iterate observations")
	})
}

func TestPostgresRepository_Health(t *testing.T) {
	assert.NoError(t, NewRepositoryWithDB(&fakeDB{}).Health(context.Background()))

	err := NewRepositoryWithDB(&fakeDB{pingErr: errors.New("refused")}).Health(context.Background())
	assert.ErrorContains(t, err, "postgres: health check failed")
}
