package usecase

import (
	"context"
	"errors"

	"jobportal-backend/internal/domain"
	"jobportal-backend/pkg/apperror"
)

const jobSearchLimit = 50

type jobUsecase struct {
	jobRepo     domain.JobRepository
	accountRepo domain.AccountRepository
}

// NewJobUsecase creates a new job usecase
func NewJobUsecase(jobRepo domain.JobRepository, accountRepo domain.AccountRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo, accountRepo: accountRepo}
}

// CreateJob posts a new job. Only company accounts may post.
func (uc *jobUsecase) CreateJob(ctx context.Context, actorID int64, actorRole string, job *domain.Job) error {
	if actorRole != domain.RoleCompany {
		return apperror.Forbidden("Only companies can post jobs")
	}

	if job.Role == "" || job.Description == "" || job.JobType == "" || job.Location == "" || job.Deadline.IsZero() {
		return apperror.BadRequest("role, description, job_type, location and deadline are required")
	}
	if !domain.JobTypes[job.JobType] {
		return apperror.BadRequest("Invalid job_type")
	}

	job.PostedByID = actorID
	if job.CompanyName == "" {
		if acc, err := uc.accountRepo.GetByID(ctx, actorID); err == nil && acc.CompanyName != nil {
			job.CompanyName = *acc.CompanyName
		}
	}

	if err := uc.jobRepo.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *jobUsecase) GetJob(ctx context.Context, id int64, viewerID int64) (*domain.Job, error) {
	job, err := uc.jobRepo.GetByID(ctx, id, viewerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

// ListJobs returns every job newest-created-first, annotated with the
// application count and whether the viewer has applied.
func (uc *jobUsecase) ListJobs(ctx context.Context, viewerID int64) ([]domain.Job, error) {
	jobs, err := uc.jobRepo.Fetch(ctx, viewerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (uc *jobUsecase) SearchJobs(ctx context.Context, filter domain.JobSearchFilter, viewerID int64) ([]domain.Job, error) {
	jobs, err := uc.jobRepo.Search(ctx, filter, viewerID, jobSearchLimit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}
