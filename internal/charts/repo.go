package charts

import (
	"context"
	"fmt"

	"github.com/caessy/tracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// volumeExpr converts pound sets to kilograms so mixed-unit workouts
// chart on one scale.
const volumeExpr = `SUM(es.reps * CASE WHEN es.weight_unit = 'lb' THEN es.weight * 0.45 ELSE es.weight END)`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// MonthlyVolume returns the total volume per workout day of one month.
func (r *Repo) MonthlyVolume(ctx context.Context, userID, year, month int) (_ *VolumeSeries, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.charts.monthly_volume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("userID", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT to_char(w.date, 'YYYY-MM-DD') AS day, `+volumeExpr+` AS volume
			FROM workouts w
			JOIN exercise_logs el ON el.workout_id = w.id
			JOIN exercise_sets es ON es.exercise_log_id = el.id
			WHERE w.user_id = $1
				AND EXTRACT(YEAR FROM w.date) = $2
				AND EXTRACT(MONTH FROM w.date) = $3
			GROUP BY day
			ORDER BY day ASC
		`,
		userID, year, month,
	)
	if err != nil {
		return nil, fmt.Errorf("monthly volume [query]: %w", err)
	}
	defer rows.Close()

	series := &VolumeSeries{}
	for rows.Next() {
		var day string
		var volume float64
		if err := rows.Scan(&day, &volume); err != nil {
			return nil, fmt.Errorf("monthly volume [rows scan]: %w", err)
		}
		series.Dates = append(series.Dates, day)
		series.Volumes = append(series.Volumes, volume)
	}

	return series, nil
}

// YearlyVolume returns the total volume per month of one year, zero
// filled across all 12 months.
func (r *Repo) YearlyVolume(ctx context.Context, userID, year int) (_ *YearlySeries, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.charts.yearly_volume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("userID", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT EXTRACT(MONTH FROM w.date)::int AS month, `+volumeExpr+` AS volume
			FROM workouts w
			JOIN exercise_logs el ON el.workout_id = w.id
			JOIN exercise_sets es ON es.exercise_log_id = el.id
			WHERE w.user_id = $1 AND EXTRACT(YEAR FROM w.date) = $2
			GROUP BY month
			ORDER BY month ASC
		`,
		userID, year,
	)
	if err != nil {
		return nil, fmt.Errorf("yearly volume [query]: %w", err)
	}
	defer rows.Close()

	series := &YearlySeries{
		Months:  make([]string, 12),
		Volumes: make([]float64, 12),
	}
	for i := range series.Months {
		series.Months[i] = fmt.Sprintf("%02d", i+1)
	}

	for rows.Next() {
		var month int
		var volume float64
		if err := rows.Scan(&month, &volume); err != nil {
			return nil, fmt.Errorf("yearly volume [rows scan]: %w", err)
		}
		if month >= 1 && month <= 12 {
			series.Volumes[month-1] = volume
		}
	}

	return series, nil
}

// Calendar returns the workout days of one month with their volume and
// routine names, custom workouts labeled as such.
func (r *Repo) Calendar(ctx context.Context, userID, year, month int) (_ []CalendarDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.charts.calendar")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("userID", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				to_char(w.date, 'YYYY-MM-DD') AS day,
				COALESCE(`+volumeExpr+`, 0) AS volume,
				COALESCE(string_agg(DISTINCT r.name, ', '), 'Custom Workout') AS routine_name
			FROM workouts w
			LEFT JOIN routines r ON w.routine_id = r.id
			LEFT JOIN exercise_logs el ON el.workout_id = w.id
			LEFT JOIN exercise_sets es ON es.exercise_log_id = el.id
			WHERE w.user_id = $1
				AND EXTRACT(YEAR FROM w.date) = $2
				AND EXTRACT(MONTH FROM w.date) = $3
			GROUP BY day
			ORDER BY day ASC
		`,
		userID, year, month,
	)
	if err != nil {
		return nil, fmt.Errorf("calendar [query]: %w", err)
	}
	defer rows.Close()

	var days []CalendarDay
	for rows.Next() {
		var day CalendarDay
		if err := rows.Scan(&day.Date, &day.Volume, &day.RoutineName); err != nil {
			return nil, fmt.Errorf("calendar [rows scan]: %w", err)
		}
		days = append(days, day)
	}

	return days, nil
}
