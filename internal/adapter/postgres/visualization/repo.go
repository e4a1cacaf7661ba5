// Package visualization implements the gallery store adapter backed by
// PostgreSQL. It provides CRUD on visualization records, a filtered/sorted/
// limited listing with an in-memory fallback path, and a real-time
// subscription built on LISTEN/NOTIFY.
package visualization

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/griederer/ai-visualization-gallery/internal/adapter/postgres"
	"github.com/griederer/ai-visualization-gallery/internal/domain"
)

const table = "visualizations"

var columns = []string{
	"id", "inspiration_word", "description", "component_code",
	"philosophical_theme", "generated_at", "status",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides visualization persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool

	// serverSideQueries pushes filter/sort/limit into SQL. Off by default:
	// the in-memory path defined by ApplyFilter is the contract of record.
	serverSideQueries bool

	defaultListLimit int
	maxListLimit     int
}

// New creates a new visualization repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool:             pool,
		defaultListLimit: defaultLimit,
		maxListLimit:     maxLimit,
	}
}

// WithServerSideQueries enables SQL-side filtering and sorting.
func (r *Repo) WithServerSideQueries() *Repo {
	r.serverSideQueries = true
	return r
}

// WithListLimits overrides the default and maximum listing page sizes.
// Non-positive values keep the built-in limits.
func (r *Repo) WithListLimits(def, max int) *Repo {
	if def > 0 {
		r.defaultListLimit = def
	}
	if max > 0 && max <= maxLimit {
		r.maxListLimit = max
	}
	return r
}

// applyLimits resolves the configured page sizes before normalize fills the
// remaining defaults.
func (r *Repo) applyLimits(f domain.VisualizationFilter) domain.VisualizationFilter {
	if f.Limit <= 0 {
		f.Limit = r.defaultListLimit
	}
	if f.Limit > r.maxListLimit {
		f.Limit = r.maxListLimit
	}
	return f
}

// Create inserts a new placeholder record in "generating" status with a
// server-assigned id and timestamp, and returns the full row.
func (r *Repo) Create(ctx context.Context, inspirationWord string) (*domain.Visualization, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Insert(table).
		Columns("inspiration_word", "status").
		Values(inspirationWord, domain.StatusGenerating).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	v, err := scanOne(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "visualization", uuid.Nil)
	}
	return v, nil
}

// GetByID returns a visualization by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Visualization, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	v, err := scanOne(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "visualization", id)
	}
	return v, nil
}

// Update writes the content fields and status of an existing record.
// Content and status always travel together: a successful generation cycle
// fills all three content fields, a failed one flips status alone via
// UpdateStatus. Returns domain.ErrNotFound if the record does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, content domain.GenerationResult, status domain.Status) (*domain.Visualization, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Update(table).
		Set("description", content.Description).
		Set("component_code", content.ComponentCode).
		Set("philosophical_theme", content.PhilosophicalTheme).
		Set("status", status).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	v, err := scanOne(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "visualization", id)
	}
	return v, nil
}

// UpdateStatus flips only the lifecycle status, leaving content untouched.
// Used to mark a placeholder "error" after a failed generation.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Update(table).
		Set("status", status).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update status: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "visualization", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("visualization %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a record by id.
// Returns domain.ErrNotFound if the record does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "visualization", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("visualization %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteStaleGenerating removes records stuck in "generating" since before
// cutoff and returns how many were removed. Used by the cleanup command to
// recover from cycles interrupted mid-flight.
func (r *Repo) DeleteStaleGenerating(ctx context.Context, cutoff time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Delete(table).
		Where(sq.Eq{"status": domain.StatusGenerating}).
		Where(sq.Lt{"generated_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete stale: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "visualization", uuid.Nil)
	}
	return tag.RowsAffected(), nil
}

// List returns records matching the filter, sorted and capped per the filter.
//
// Two execution paths produce identical results:
//   - in-memory (default): a bounded unfiltered bulk fetch followed by
//     ApplyFilter, the contract of record, correct without any store-side
//     index or query support;
//   - SQL-side (WithServerSideQueries): WHERE/ORDER BY/LIMIT pushed down.
func (r *Repo) List(ctx context.Context, f domain.VisualizationFilter) ([]domain.Visualization, error) {
	f = normalize(r.applyLimits(f))

	if r.serverSideQueries {
		return r.listServerSide(ctx, f)
	}
	return r.listInMemory(ctx, f)
}

func (r *Repo) listInMemory(ctx context.Context, f domain.VisualizationFilter) ([]domain.Visualization, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select(columns...).
		From(table).
		Limit(uint64(f.Limit * overFetchFactor)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build bulk select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "visualization", uuid.Nil)
	}
	defer rows.Close()

	all, err := scanAll(rows)
	if err != nil {
		return nil, postgres.MapError(err, "visualization", uuid.Nil)
	}

	return ApplyFilter(f, all), nil
}

func (r *Repo) listServerSide(ctx context.Context, f domain.VisualizationFilter) ([]domain.Visualization, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := psql.Select(columns...).From(table)
	if f.Status != nil {
		b = b.Where(sq.Eq{"status": *f.Status})
	}

	col := "generated_at"
	if f.SortBy == domain.SortByInspirationWord {
		col = "inspiration_word"
	}
	dir := "DESC"
	if f.SortOrder == domain.SortOrderASC {
		dir = "ASC"
	}
	// id tiebreak keeps ordering deterministic for equal sort values.
	b = b.OrderBy(col+" "+dir, "id ASC").Limit(uint64(f.Limit))

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "visualization", uuid.Nil)
	}
	defer rows.Close()

	out, err := scanAll(rows)
	if err != nil {
		return nil, postgres.MapError(err, "visualization", uuid.Nil)
	}
	return out, nil
}

func columnList() string {
	out := columns[0]
	for _, c := range columns[1:] {
		out += ", " + c
	}
	return out
}

func scanOne(row pgx.Row) (*domain.Visualization, error) {
	var v domain.Visualization
	err := row.Scan(
		&v.ID, &v.InspirationWord, &v.Description, &v.ComponentCode,
		&v.PhilosophicalTheme, &v.GeneratedAt, &v.Status,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func scanAll(rows pgx.Rows) ([]domain.Visualization, error) {
	out := []domain.Visualization{}
	for rows.Next() {
		var v domain.Visualization
		err := rows.Scan(
			&v.ID, &v.InspirationWord, &v.Description, &v.ComponentCode,
			&v.PhilosophicalTheme, &v.GeneratedAt, &v.Status,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
