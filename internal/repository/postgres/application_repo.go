package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobportal-backend/internal/domain"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application, unapproved by default. The unique
// (job_id, applied_by) constraint arbitrates concurrent duplicate attempts.
func (r *applicationRepo) Create(ctx context.Context, app *domain.JobApplication) error {
	query := `
		INSERT INTO job_applications (job_id, applied_by, created_at, approved)
		VALUES ($1, $2, $3, false)
		RETURNING id`

	app.CreatedAt = time.Now()
	app.Approved = false

	err := r.db.QueryRow(ctx, query, app.JobID, app.AppliedByID, app.CreatedAt).Scan(&app.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

// applicationSelect joins the applicant's account and profile, matching the
// representation applicant lists are served with.
const applicationSelect = `
	SELECT
		ja.id, ja.job_id, ja.applied_by, ja.created_at, ja.approved, ja.approved_at,
		a.username, a.email,
		p.profile_picture, p.description, p.currently, p.experience
	FROM job_applications ja
	JOIN accounts a ON a.id = ja.applied_by
	LEFT JOIN profiles p ON p.account_id = ja.applied_by`

func scanApplication(row pgx.Row) (*domain.JobApplication, error) {
	var app domain.JobApplication
	var applicant domain.UserSummary
	err := row.Scan(
		&app.ID, &app.JobID, &app.AppliedByID, &app.CreatedAt, &app.Approved, &app.ApprovedAt,
		&applicant.Username, &applicant.Email,
		&applicant.ProfilePicture, &applicant.Description, &applicant.Currently, &applicant.Experience,
	)
	if err != nil {
		return nil, err
	}
	applicant.ID = app.AppliedByID
	app.AppliedBy = &applicant
	return &app, nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.JobApplication, error) {
	query := applicationSelect + ` WHERE ja.id = $1`

	app, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return app, nil
}

func (r *applicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.JobApplication, error) {
	query := applicationSelect + ` WHERE ja.job_id = $1 ORDER BY ja.created_at DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectApplications(rows)
}

func (r *applicationRepo) GetByAccountID(ctx context.Context, accountID int64) ([]domain.JobApplication, error) {
	query := applicationSelect + ` WHERE ja.applied_by = $1 ORDER BY ja.created_at DESC`

	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectApplications(rows)
}

// Delete withdraws the account's application for the job. The row removal
// also clears the uniqueness record, so re-applying later is allowed.
func (r *applicationRepo) Delete(ctx context.Context, jobID, accountID int64) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM job_applications WHERE job_id = $1 AND applied_by = $2`,
		jobID, accountID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Approve flips the row in a single conditional statement so two concurrent
// approvals cannot both stamp approved_at. Returns false when the row was
// already approved.
func (r *applicationRepo) Approve(ctx context.Context, id int64, at time.Time) (bool, error) {
	result, err := r.db.Exec(ctx,
		`UPDATE job_applications SET approved = true, approved_at = $2 WHERE id = $1 AND approved = false`,
		id, at,
	)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() == 1, nil
}

func collectApplications(rows pgx.Rows) ([]domain.JobApplication, error) {
	applications := []domain.JobApplication{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		applications = append(applications, *app)
	}
	return applications, rows.Err()
}
