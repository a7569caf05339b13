package instructors

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

func (r *Repo) IsInstructor(ctx context.Context, userID int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.instructors.is_instructor")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("userID", userID))

	var isInstructor bool
	err = r.db.QueryRow(
		ctx,
		`SELECT is_instructor FROM users WHERE id = $1`,
		userID,
	).Scan(&isInstructor)
	if err != nil {
		return false, fmt.Errorf("is instructor [query row]: %w", err)
	}

	return isInstructor, nil
}

// CanAccess tells whether requesterID may read the training data of
// targetUserID: everybody may read their own, an instructor may read a
// trainee's while their link is not expired.
func (r *Repo) CanAccess(ctx context.Context, requesterID, targetUserID int) (_ bool, err error) {
	if requesterID == targetUserID {
		return true, nil
	}

	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.instructors.can_access")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("requesterID", requesterID),
		attribute.Int("targetUserID", targetUserID),
	)

	var allowed bool
	err = r.db.QueryRow(
		ctx,
		`
			SELECT EXISTS (
				SELECT 1
				FROM instructor_links l
				JOIN users u ON u.id = l.instructor_id
				WHERE l.user_id = $1
					AND l.instructor_id = $2
					AND l.expires_at > NOW()
					AND u.is_instructor
			)
		`,
		targetUserID, requesterID,
	).Scan(&allowed)
	if err != nil {
		return false, fmt.Errorf("instructor access check [query row]: %w", err)
	}

	return allowed, nil
}

// Trainees lists the unexpired links of an instructor, together with
// the trainee usernames.
func (r *Repo) Trainees(ctx context.Context, instructorID int) (_ []TraineeLink, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.instructors.trainees")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("instructorID", instructorID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT l.id, l.user_id, u.username, l.created_at, l.expires_at
			FROM instructor_links l
			JOIN users u ON u.id = l.user_id
			WHERE l.instructor_id = $1 AND l.expires_at > NOW()
			ORDER BY u.username
		`,
		instructorID,
	)
	if err != nil {
		return nil, fmt.Errorf("trainees [query]: %w", err)
	}
	defer rows.Close()

	var trainees []TraineeLink
	for rows.Next() {
		var link TraineeLink
		err := rows.Scan(
			&link.LinkID,
			&link.TraineeID,
			&link.TraineeUsername,
			&link.CreatedAt,
			&link.ExpiresAt,
		)
		if err != nil {
			return nil, fmt.Errorf("trainees [rows scan]: %w", err)
		}
		trainees = append(trainees, link)
	}

	return trainees, nil
}

// Instructors lists the unexpired links of a trainee, together with
// the instructor usernames.
func (r *Repo) Instructors(ctx context.Context, userID int) (_ []InstructorLink, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.instructors.instructors")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("userID", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT l.id, l.instructor_id, u.username, l.created_at, l.expires_at
			FROM instructor_links l
			JOIN users u ON u.id = l.instructor_id
			WHERE l.user_id = $1 AND l.expires_at > NOW()
			ORDER BY u.username
		`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("instructors [query]: %w", err)
	}
	defer rows.Close()

	var links []InstructorLink
	for rows.Next() {
		var link InstructorLink
		err := rows.Scan(
			&link.LinkID,
			&link.InstructorID,
			&link.InstructorUsername,
			&link.CreatedAt,
			&link.ExpiresAt,
		)
		if err != nil {
			return nil, fmt.Errorf("instructors [rows scan]: %w", err)
		}
		links = append(links, link)
	}

	return links, nil
}
