package bodystats

import (
	"context"
	"fmt"

	"github.com/caessy/tracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, stat BodyStat) (_ *BodyStat, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodystats.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("userID", stat.UserID))

	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO body_stats
				(user_id, date, weight_kg, waist_cm, hips_cm, breast_cm, body_fat_percentage)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, created_at
		`,
		stat.UserID,
		stat.Date,
		stat.WeightKg,
		stat.WaistCm,
		stat.HipsCm,
		stat.BreastCm,
		stat.BodyFatPercentage,
	).Scan(&stat.ID, &stat.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("add body stat [query row]: %w", err)
	}

	return &stat, nil
}

// Monthly returns the entries of one calendar month, day by day.
func (r *Repo) Monthly(ctx context.Context, userID, year, month int) (_ []BodyStat, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodystats.monthly")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("userID", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, date, weight_kg, waist_cm, hips_cm, breast_cm, body_fat_percentage, created_at
			FROM body_stats
			WHERE user_id = $1
				AND EXTRACT(YEAR FROM date) = $2
				AND EXTRACT(MONTH FROM date) = $3
			ORDER BY date ASC
		`,
		userID, year, month,
	)
	if err != nil {
		return nil, fmt.Errorf("monthly body stats [query]: %w", err)
	}
	defer rows.Close()

	var stats []BodyStat
	for rows.Next() {
		stat := BodyStat{UserID: userID}
		err := rows.Scan(
			&stat.ID,
			&stat.Date,
			&stat.WeightKg,
			&stat.WaistCm,
			&stat.HipsCm,
			&stat.BreastCm,
			&stat.BodyFatPercentage,
			&stat.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("monthly body stats [rows scan]: %w", err)
		}
		stats = append(stats, stat)
	}

	return stats, nil
}

// YearlyAverages returns the per-month averages of one year, always 12
// entries, months without data carrying nil averages.
func (r *Repo) YearlyAverages(ctx context.Context, userID, year int) (_ []MonthAverage, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodystats.yearly_averages")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("userID", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				EXTRACT(MONTH FROM date)::int AS month,
				AVG(weight_kg),
				AVG(waist_cm),
				AVG(hips_cm),
				AVG(breast_cm),
				AVG(body_fat_percentage)
			FROM body_stats
			WHERE user_id = $1 AND EXTRACT(YEAR FROM date) = $2
			GROUP BY month
			ORDER BY month ASC
		`,
		userID, year,
	)
	if err != nil {
		return nil, fmt.Errorf("yearly body stats [query]: %w", err)
	}
	defer rows.Close()

	averages := make([]MonthAverage, 12)
	for i := range averages {
		averages[i].Month = i + 1
	}

	for rows.Next() {
		var avg MonthAverage
		err := rows.Scan(
			&avg.Month,
			&avg.AvgWeightKg,
			&avg.AvgWaistCm,
			&avg.AvgHipsCm,
			&avg.AvgBreastCm,
			&avg.AvgBodyFatPercentage,
		)
		if err != nil {
			return nil, fmt.Errorf("yearly body stats [rows scan]: %w", err)
		}
		if avg.Month >= 1 && avg.Month <= 12 {
			averages[avg.Month-1] = avg
		}
	}

	return averages, nil
}
