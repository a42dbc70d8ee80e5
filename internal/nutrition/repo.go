package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/wandersoncferreira/marathon-tracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrEntryNotFound = errors.New("tracking entry not found")
	ErrGoalsNotSet   = errors.New("nutrition goals not set")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Save stores the entry for its date, replacing the whole row when the day
// was already tracked. Partial updates are not a thing here, callers wanting
// them read the day first and write the merged record back.
func (r *Repo) Save(ctx context.Context, entry DailyTrackingEntry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("entry.date", entry.Date))

	mealsJson, err := json.Marshal(entry.Meals)
	if err != nil {
		return fmt.Errorf("marshal meals: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO daily_tracking
				(date, rating, notes, adherence, planned_calories, actual_calories, day_type, meals, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (date) DO UPDATE SET
				rating = EXCLUDED.rating,
				notes = EXCLUDED.notes,
				adherence = EXCLUDED.adherence,
				planned_calories = EXCLUDED.planned_calories,
				actual_calories = EXCLUDED.actual_calories,
				day_type = EXCLUDED.day_type,
				meals = EXCLUDED.meals,
				created_at = EXCLUDED.created_at;`,
		entry.Date, entry.Rating, entry.Notes, entry.Adherence,
		entry.PlannedCalories, entry.ActualCalories, entry.DayType,
		mealsJson, entry.Timestamp,
	)
	return err
}

func (r *Repo) SaveAll(ctx context.Context, entries []DailyTrackingEntry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.saveAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("count", len(entries)))

	for _, entry := range entries {
		if err := r.Save(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repo) GetByDate(ctx context.Context, date string) (_ *DailyTrackingEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.getByDate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("entry.date", date))

	rows, err := r.db.Query(
		ctx,
		`SELECT date, rating, notes, adherence, planned_calories, actual_calories, day_type, meals, created_at
			FROM daily_tracking WHERE date = $1;`,
		date,
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
		return nil, ErrEntryNotFound
	}
	return &entries[0], nil
}

// ListRange returns the tracked days with from <= date <= to, ordered by date
// ascending. Dates compare correctly as strings since they are ISO formatted.
func (r *Repo) ListRange(ctx context.Context, from, to string) (_ []DailyTrackingEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.listRange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("from", from))
	span.SetAttributes(attribute.String("to", to))

	rows, err := r.db.Query(
		ctx,
		`SELECT date, rating, notes, adherence, planned_calories, actual_calories, day_type, meals, created_at
			FROM daily_tracking
			WHERE date >= $1 AND date <= $2
			ORDER BY date ASC;`,
		from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rows2entries(rows)
}

func (r *Repo) GetGoals(ctx context.Context) (_ *Goals, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.getGoals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT weekly_weight_target, macro_targets, notes, created_at
			FROM nutrition_goals WHERE id = 1;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, ErrGoalsNotSet
	}

	var goals Goals
	if err := rows.Scan(
		&goals.WeeklyWeightTarget, &goals.MacroTargets, &goals.Notes, &goals.Timestamp,
	); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}
	return &goals, nil
}

func (r *Repo) SaveGoals(ctx context.Context, goals Goals) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.saveGoals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO nutrition_goals
				(id, weekly_weight_target, macro_targets, notes, created_at)
				VALUES (1, $1, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE SET
				weekly_weight_target = EXCLUDED.weekly_weight_target,
				macro_targets = EXCLUDED.macro_targets,
				notes = EXCLUDED.notes,
				created_at = EXCLUDED.created_at;`,
		goals.WeeklyWeightTarget, goals.MacroTargets, goals.Notes, goals.Timestamp,
	)
	return err
}

func rows2entries(rows pgx.Rows) ([]DailyTrackingEntry, error) {
	var entries []DailyTrackingEntry
	for rows.Next() {
		var entry DailyTrackingEntry
		var mealsJson []byte
		if err := rows.Scan(
			&entry.Date, &entry.Rating, &entry.Notes, &entry.Adherence,
			&entry.PlannedCalories, &entry.ActualCalories, &entry.DayType,
			&mealsJson, &entry.Timestamp,
		); err != nil {
			return nil, err
		}
		if len(mealsJson) > 0 {
			if err := json.Unmarshal(mealsJson, &entry.Meals); err != nil {
				return nil, fmt.Errorf("unmarshal meals: %w", err)
			}
		}
		entries = append(entries, entry)
	}

	if entries == nil {
		entries = []DailyTrackingEntry{}
	}
	return entries, nil
}
