package domain

import (
	"context"
	"time"
)

// Job type values
var JobTypes = map[string]bool{
	"full_time":  true,
	"part_time":  true,
	"contract":   true,
	"freelance":  true,
	"internship": true,
}

type Job struct {
	ID          int64     `json:"id"`
	PostedByID  int64     `json:"-"`
	CompanyName string    `json:"company_name"`
	Role        string    `json:"role"`
	Description string    `json:"description"`
	JobType     string    `json:"job_type"`
	Location    string    `json:"location"`
	Salary      *string   `json:"salary"`
	MaxMembers  int       `json:"max_members"`
	Deadline    time.Time `json:"deadline"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`

	PostedBy *UserSummary `json:"posted_by,omitempty"`

	// List annotations, relative to the requesting identity.
	ApplicationsCount int64 `json:"applications_count"`
	HasApplied        bool  `json:"has_applied"`
}

// JobRef is the compact job representation embedded in notifications.
type JobRef struct {
	ID          int64  `json:"id"`
	Role        string `json:"role"`
	CompanyName string `json:"company_name"`
}

type JobApplication struct {
	ID         int64      `json:"id"`
	JobID      int64      `json:"-"`
	AppliedByID int64     `json:"-"`
	CreatedAt  time.Time  `json:"created_at"`
	Approved   bool       `json:"approved"`
	ApprovedAt *time.Time `json:"approved_at"`

	AppliedBy *UserSummary `json:"applied_by,omitempty"`
	Job       *Job         `json:"job,omitempty"`
}

// JobSearchFilter holds the optional job search criteria. Role and Location
// are substring matches, JobType is exact.
type JobSearchFilter struct {
	Role     string
	Location string
	JobType  string
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	// GetByID annotates the job relative to viewerID (0 = unauthenticated).
	GetByID(ctx context.Context, id int64, viewerID int64) (*Job, error)
	// Fetch returns all jobs newest-created-first with annotations.
	Fetch(ctx context.Context, viewerID int64) ([]Job, error)
	Search(ctx context.Context, filter JobSearchFilter, viewerID int64, limit int) ([]Job, error)
}

type ApplicationRepository interface {
	// Create returns ErrDuplicate when the (job, account) pair already has
	// an application row.
	Create(ctx context.Context, app *JobApplication) error
	GetByID(ctx context.Context, id int64) (*JobApplication, error)
	GetByJobID(ctx context.Context, jobID int64) ([]JobApplication, error)
	GetByAccountID(ctx context.Context, accountID int64) ([]JobApplication, error)
	// Delete removes the account's application for the job; ErrNotFound
	// when none exists.
	Delete(ctx context.Context, jobID, accountID int64) error
	// Approve flips approved and stamps approved_at in a single conditional
	// statement. Returns false when the row was already approved, in which
	// case approved_at is left untouched.
	Approve(ctx context.Context, id int64, at time.Time) (bool, error)
}

type JobUsecase interface {
	CreateJob(ctx context.Context, actorID int64, actorRole string, job *Job) error
	GetJob(ctx context.Context, id int64, viewerID int64) (*Job, error)
	ListJobs(ctx context.Context, viewerID int64) ([]Job, error)
	SearchJobs(ctx context.Context, filter JobSearchFilter, viewerID int64) ([]Job, error)
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, actorID int64, jobID int64) (*JobApplication, error)
	Withdraw(ctx context.Context, actorID int64, jobID int64) error
	ListApplicants(ctx context.Context, actorID int64, jobID int64) ([]JobApplication, error)
	// Approve is idempotent: re-approving an approved application succeeds
	// without changing approved_at.
	Approve(ctx context.Context, actorID int64, jobID, applicationID int64) (*JobApplication, error)
}
