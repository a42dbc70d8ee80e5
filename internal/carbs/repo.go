package carbs

import (
	"context"
	"errors"

	"github.com/wandersoncferreira/marathon-tracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrIntakeNotFound     = errors.New("carb intake entry not found")
	ErrGuidelinesNotFound = errors.New("carb guidelines not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Save stores the intake entry for its activity, replacing the whole row
// when one already exists.
func (r *Repo) Save(ctx context.Context, entry IntakeEntry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.carbs.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("activity.id", entry.ActivityID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO carb_intake
				(activity_id, carb_grams, notes, created_at)
				VALUES ($1, $2, $3, $4)
			ON CONFLICT (activity_id) DO UPDATE SET
				carb_grams = EXCLUDED.carb_grams,
				notes = EXCLUDED.notes,
				created_at = EXCLUDED.created_at;`,
		entry.ActivityID, entry.CarbGrams, entry.Notes, entry.Timestamp,
	)
	return err
}

func (r *Repo) GetByActivity(ctx context.Context, activityID int64) (_ *IntakeEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.carbs.getByActivity")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("activity.id", activityID))

	rows, err := r.db.Query(
		ctx,
		`SELECT activity_id, carb_grams, notes, created_at
			FROM carb_intake WHERE activity_id = $1;`,
		activityID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	entries, err := rows2entries(rows)
	if err != nil {
		return nil, err
	}
	if len(entries) != 1 {
		return nil, ErrIntakeNotFound
	}
	return &entries[0], nil
}

// ListAll returns all intake entries keyed by activity ID, for joining
// against an activity list.
func (r *Repo) ListAll(ctx context.Context) (_ map[int64]IntakeEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.carbs.listAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT activity_id, carb_grams, notes, created_at FROM carb_intake;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	entries, err := rows2entries(rows)
	if err != nil {
		return nil, err
	}

	byActivity := make(map[int64]IntakeEntry, len(entries))
	for _, entry := range entries {
		byActivity[entry.ActivityID] = entry
	}
	return byActivity, nil
}

func (r *Repo) GetGuidelines(ctx context.Context) (_ *Guidelines, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.carbs.getGuidelines")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT carbs_per_30_min, min_duration_minutes, enabled, created_at
			FROM carb_guidelines WHERE id = 1;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, ErrGuidelinesNotFound
	}

	var guidelines Guidelines
	if err := rows.Scan(
		&guidelines.CarbsPer30Min, &guidelines.MinDurationMinutes,
		&guidelines.Enabled, &guidelines.Timestamp,
	); err != nil {
		return nil, err
	}
	return &guidelines, nil
}

func (r *Repo) SaveGuidelines(ctx context.Context, guidelines Guidelines) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.carbs.saveGuidelines")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO carb_guidelines
				(id, carbs_per_30_min, min_duration_minutes, enabled, created_at)
				VALUES (1, $1, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE SET
				carbs_per_30_min = EXCLUDED.carbs_per_30_min,
				min_duration_minutes = EXCLUDED.min_duration_minutes,
				enabled = EXCLUDED.enabled,
				created_at = EXCLUDED.created_at;`,
		guidelines.CarbsPer30Min, guidelines.MinDurationMinutes,
		guidelines.Enabled, guidelines.Timestamp,
	)
	return err
}

func rows2entries(rows pgx.Rows) ([]IntakeEntry, error) {
	var entries []IntakeEntry
	for rows.Next() {
		var entry IntakeEntry
		if err := rows.Scan(
			&entry.ActivityID, &entry.CarbGrams, &entry.Notes, &entry.Timestamp,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if entries == nil {
		entries = []IntakeEntry{}
	}
	return entries, nil
}
