package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobportal-backend/internal/domain"
)

type jobRepo struct {
	db *pgxpool.Pool
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

// Create inserts a new job posting
func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `
		INSERT INTO jobs (posted_by, company_name, role, description, job_type, location, salary, max_members, deadline, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now
	if job.MaxMembers <= 0 {
		job.MaxMembers = 1
	}

	return r.db.QueryRow(ctx, query,
		job.PostedByID,
		job.CompanyName,
		job.Role,
		job.Description,
		job.JobType,
		job.Location,
		job.Salary,
		job.MaxMembers,
		job.Deadline,
		job.CreatedAt,
		job.UpdatedAt,
	).Scan(&job.ID)
}

// jobSelect annotates each row with the application count and whether the
// viewer has applied. Viewer id 0 (unauthenticated) never matches.
const jobSelect = `
	SELECT
		j.id, j.posted_by, j.company_name, j.role, j.description, j.job_type,
		j.location, j.salary, j.max_members, j.deadline, j.created_at, j.updated_at,
		a.username, a.email, a.company_name,
		(SELECT COUNT(*) FROM job_applications ja WHERE ja.job_id = j.id) AS applications_count,
		EXISTS(SELECT 1 FROM job_applications ja WHERE ja.job_id = j.id AND ja.applied_by = $1) AS has_applied
	FROM jobs j
	JOIN accounts a ON a.id = j.posted_by`

func scanJob(row pgx.Row) (*domain.Job, error) {
	var j domain.Job
	var owner domain.UserSummary
	err := row.Scan(
		&j.ID, &j.PostedByID, &j.CompanyName, &j.Role, &j.Description, &j.JobType,
		&j.Location, &j.Salary, &j.MaxMembers, &j.Deadline, &j.CreatedAt, &j.UpdatedAt,
		&owner.Username, &owner.Email, &owner.CompanyName,
		&j.ApplicationsCount, &j.HasApplied,
	)
	if err != nil {
		return nil, err
	}
	owner.ID = j.PostedByID
	j.PostedBy = &owner
	return &j, nil
}

// GetByID retrieves a job annotated relative to viewerID
func (r *jobRepo) GetByID(ctx context.Context, id int64, viewerID int64) (*domain.Job, error) {
	query := jobSelect + ` WHERE j.id = $2`

	job, err := scanJob(r.db.QueryRow(ctx, query, viewerID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return job, nil
}

// Fetch returns all jobs, newest-created-first
func (r *jobRepo) Fetch(ctx context.Context, viewerID int64) ([]domain.Job, error) {
	query := jobSelect + ` ORDER BY j.created_at DESC`

	rows, err := r.db.Query(ctx, query, viewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJobs(rows)
}

// Search filters by role/location substring and exact job type,
// newest-created-first, capped at limit.
func (r *jobRepo) Search(ctx context.Context, filter domain.JobSearchFilter, viewerID int64, limit int) ([]domain.Job, error) {
	query := jobSelect + ` WHERE 1=1`
	args := []interface{}{viewerID}

	if filter.Role != "" {
		args = append(args, "%"+filter.Role+"%")
		query += fmt.Sprintf(" AND j.role ILIKE $%d", len(args))
	}
	if filter.Location != "" {
		args = append(args, "%"+filter.Location+"%")
		query += fmt.Sprintf(" AND j.location ILIKE $%d", len(args))
	}
	if filter.JobType != "" {
		args = append(args, filter.JobType)
		query += fmt.Sprintf(" AND j.job_type = $%d", len(args))
	}

	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY j.created_at DESC LIMIT $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJobs(rows)
}

func collectJobs(rows pgx.Rows) ([]domain.Job, error) {
	jobs := []domain.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}
