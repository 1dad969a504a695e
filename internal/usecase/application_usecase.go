package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobportal-backend/internal/domain"
	"jobportal-backend/pkg/apperror"
	"jobportal-backend/pkg/logger"
)

type applicationUsecase struct {
	applicationRepo  domain.ApplicationRepository
	jobRepo          domain.JobRepository
	accountRepo      domain.AccountRepository
	notificationRepo domain.NotificationRepository
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	accountRepo domain.AccountRepository,
	notificationRepo domain.NotificationRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo:  applicationRepo,
		jobRepo:          jobRepo,
		accountRepo:      accountRepo,
		notificationRepo: notificationRepo,
	}
}

// Apply creates an unapproved application and notifies the job owner. The
// notification is best-effort: its failure never rolls back the application.
func (uc *applicationUsecase) Apply(ctx context.Context, actorID int64, jobID int64) (*domain.JobApplication, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID, actorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	app := &domain.JobApplication{JobID: job.ID, AppliedByID: actorID}
	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("You have already applied for this job")
		}
		return nil, apperror.Internal(err)
	}

	if job.PostedByID != actorID {
		uc.notify(ctx, job.PostedByID, actorID, job.ID, func(actor *domain.Account) string {
			return fmt.Sprintf("%s applied for your job '%s'", actor.Username, job.Role)
		})
	}

	created, err := uc.applicationRepo.GetByID(ctx, app.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return created, nil
}

// Withdraw deletes the actor's own application for the job.
func (uc *applicationUsecase) Withdraw(ctx context.Context, actorID int64, jobID int64) error {
	if _, err := uc.jobRepo.GetByID(ctx, jobID, actorID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}

	if err := uc.applicationRepo.Delete(ctx, jobID, actorID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("No application found")
		}
		return apperror.Internal(err)
	}
	return nil
}

// ListApplicants is restricted to the job's owner.
func (uc *applicationUsecase) ListApplicants(ctx context.Context, actorID int64, jobID int64) ([]domain.JobApplication, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID, actorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if job.PostedByID != actorID {
		return nil, apperror.Forbidden("You can only view applicants for your own jobs")
	}

	applications, err := uc.applicationRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return applications, nil
}

// Approve is idempotent: re-approving an approved application succeeds with
// approved_at untouched. Only the winning approval notifies the applicant.
func (uc *applicationUsecase) Approve(ctx context.Context, actorID int64, jobID, applicationID int64) (*domain.JobApplication, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID, actorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if job.PostedByID != actorID {
		return nil, apperror.Forbidden("You can only approve applicants for your own jobs")
	}

	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil || app.JobID != jobID {
		return nil, apperror.NotFound("Application not found")
	}

	if app.Approved {
		return app, nil
	}

	won, err := uc.applicationRepo.Approve(ctx, app.ID, time.Now())
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if won {
		uc.notify(ctx, app.AppliedByID, actorID, job.ID, func(*domain.Account) string {
			return fmt.Sprintf("Your application for '%s' was approved", job.Role)
		})
	}

	approved, err := uc.applicationRepo.GetByID(ctx, app.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return approved, nil
}

// notify appends a feed entry for the recipient. Failures are logged and
// swallowed: an at-most-effort side effect of the primary operation.
func (uc *applicationUsecase) notify(ctx context.Context, recipientID, actorID, jobID int64, verb func(actor *domain.Account) string) {
	actor, err := uc.accountRepo.GetByID(ctx, actorID)
	if err != nil {
		logger.Log.Warn("notification skipped: actor lookup failed", "actor_id", actorID, "error", err)
		return
	}

	n := &domain.Notification{
		RecipientID: recipientID,
		ActorID:     &actorID,
		Verb:        verb(actor),
		JobID:       &jobID,
	}
	if err := uc.notificationRepo.Create(ctx, n); err != nil {
		logger.Log.Warn("notification creation failed", "recipient_id", recipientID, "error", err)
	}
}
