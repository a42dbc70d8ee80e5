package activities

import (
	"context"
	"errors"
	"time"

	"github.com/wandersoncferreira/marathon-tracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrActivityNotFound = errors.New("activity not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Upsert stores the activity, replacing the whole row when it already exists.
func (r *Repo) Upsert(ctx context.Context, a Activity) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("activity.id", a.ID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO activity
				(id, name, type, start_date, distance, moving_time, elapsed_time, avg_speed, avg_heart_rate, avg_watts)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				type = EXCLUDED.type,
				start_date = EXCLUDED.start_date,
				distance = EXCLUDED.distance,
				moving_time = EXCLUDED.moving_time,
				elapsed_time = EXCLUDED.elapsed_time,
				avg_speed = EXCLUDED.avg_speed,
				avg_heart_rate = EXCLUDED.avg_heart_rate,
				avg_watts = EXCLUDED.avg_watts;`,
		a.ID, a.Name, a.Type, a.StartDate, a.DistanceM, a.MovingTimeSec, a.ElapsedSec,
		a.AvgSpeed, a.AvgHeartRate, a.AvgWatts,
	)
	return err
}

func (r *Repo) UpsertAll(ctx context.Context, activities []Activity) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.upsertAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("count", len(activities)))

	for _, a := range activities {
		if err := r.Upsert(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id int64) (_ *Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("activity.id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, type, start_date, distance, moving_time, elapsed_time, avg_speed, avg_heart_rate, avg_watts
			FROM activity WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	activities, err := rows2activities(rows)
	if err != nil {
		return nil, err
	}
	if len(activities) != 1 {
		return nil, ErrActivityNotFound
	}
	return &activities[0], nil
}

// ListRange returns the locally mirrored activities started within [from, to],
// most recent first.
func (r *Repo) ListRange(ctx context.Context, from, to time.Time) (_ []Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.listRange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, type, start_date, distance, moving_time, elapsed_time, avg_speed, avg_heart_rate, avg_watts
			FROM activity
			WHERE start_date >= $1 AND start_date <= $2
			ORDER BY start_date DESC;`,
		from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rows2activities(rows)
}

func rows2activities(rows pgx.Rows) ([]Activity, error) {
	var activities []Activity
	for rows.Next() {
		var a Activity
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Type, &a.StartDate, &a.DistanceM, &a.MovingTimeSec,
			&a.ElapsedSec, &a.AvgSpeed, &a.AvgHeartRate, &a.AvgWatts,
		); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}

	if activities == nil {
		activities = []Activity{}
	}
	return activities, nil
}
