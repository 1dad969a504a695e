package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"jobportal-backend/internal/domain"
	"jobportal-backend/internal/usecase"
	"jobportal-backend/pkg/apperror"
)

func applicationFixtures(t *testing.T) (*MockApplicationRepo, *MockJobRepo, *MockAccountRepo, *MockNotificationRepo, domain.ApplicationUsecase) {
	t.Helper()
	applicationRepo := new(MockApplicationRepo)
	jobRepo := new(MockJobRepo)
	accountRepo := new(MockAccountRepo)
	notificationRepo := new(MockNotificationRepo)
	uc := usecase.NewApplicationUsecase(applicationRepo, jobRepo, accountRepo, notificationRepo)
	return applicationRepo, jobRepo, accountRepo, notificationRepo, uc
}

func TestApply(t *testing.T) {
	job := &domain.Job{ID: 5, PostedByID: 2, Role: "Backend Engineer"}

	t.Run("Should 404 for unknown jobs", func(t *testing.T) {
		_, jobRepo, _, _, uc := applicationFixtures(t)
		jobRepo.On("GetByID", mock.Anything, int64(99), int64(1)).Return(nil, domain.ErrNotFound)

		_, err := uc.Apply(context.Background(), 1, 99)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Job not found")
	})

	t.Run("Second apply yields Conflict", func(t *testing.T) {
		applicationRepo, jobRepo, _, notificationRepo, uc := applicationFixtures(t)
		jobRepo.On("GetByID", mock.Anything, int64(5), int64(1)).Return(job, nil)
		applicationRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicate)

		_, err := uc.Apply(context.Background(), 1, 5)
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusConflict, appErr.Code)
		notificationRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should notify the owner with the applied verb", func(t *testing.T) {
		applicationRepo, jobRepo, accountRepo, notificationRepo, uc := applicationFixtures(t)
		jobRepo.On("GetByID", mock.Anything, int64(5), int64(1)).Return(job, nil)
		applicationRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.JobApplication).ID = 42
		}).Return(nil)
		accountRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Account{ID: 1, Username: "alice"}, nil)
		notificationRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.RecipientID == 2 && n.Verb == "alice applied for your job 'Backend Engineer'"
		})).Return(nil)
		applicationRepo.On("GetByID", mock.Anything, int64(42)).
			Return(&domain.JobApplication{ID: 42, JobID: 5, AppliedByID: 1}, nil)

		app, err := uc.Apply(context.Background(), 1, 5)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), app.ID)
		notificationRepo.AssertExpectations(t)
	})

	t.Run("Owner applying to own job gets no notification", func(t *testing.T) {
		applicationRepo, jobRepo, _, notificationRepo, uc := applicationFixtures(t)
		jobRepo.On("GetByID", mock.Anything, int64(5), int64(2)).Return(job, nil)
		applicationRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.JobApplication).ID = 43
		}).Return(nil)
		applicationRepo.On("GetByID", mock.Anything, int64(43)).
			Return(&domain.JobApplication{ID: 43, JobID: 5, AppliedByID: 2}, nil)

		_, err := uc.Apply(context.Background(), 2, 5)
		assert.NoError(t, err)
		notificationRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Notification failure does not fail the apply", func(t *testing.T) {
		applicationRepo, jobRepo, accountRepo, notificationRepo, uc := applicationFixtures(t)
		jobRepo.On("GetByID", mock.Anything, int64(5), int64(1)).Return(job, nil)
		applicationRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.JobApplication).ID = 44
		}).Return(nil)
		accountRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Account{ID: 1, Username: "alice"}, nil)
		notificationRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))
		applicationRepo.On("GetByID", mock.Anything, int64(44)).
			Return(&domain.JobApplication{ID: 44, JobID: 5, AppliedByID: 1}, nil)

		_, err := uc.Apply(context.Background(), 1, 5)
		assert.NoError(t, err)
	})
}

func TestWithdraw(t *testing.T) {
	job := &domain.Job{ID: 5, PostedByID: 2, Role: "Backend Engineer"}

	t.Run("Should 404 when no application exists", func(t *testing.T) {
		applicationRepo, jobRepo, _, _, uc := applicationFixtures(t)
		jobRepo.On("GetByID", mock.Anything, int64(5), int64(1)).Return(job, nil)
		applicationRepo.On("Delete", mock.Anything, int64(5), int64(1)).Return(domain.ErrNotFound)

		err := uc.Withdraw(context.Background(), 1, 5)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "No application found")
	})

	t.Run("Should delete the caller's application", func(t *testing.T) {
		applicationRepo, jobRepo, _, _, uc := applicationFixtures(t)
		jobRepo.On("GetByID", mock.Anything, int64(5), int64(1)).Return(job, nil)
		applicationRepo.On("Delete", mock.Anything, int64(5), int64(1)).Return(nil)

		assert.NoError(t, uc.Withdraw(context.Background(), 1, 5))
		applicationRepo.AssertExpectations(t)
	})
}

func TestListApplicants(t *testing.T) {
	job := &domain.Job{ID: 5, PostedByID: 2, Role: "Backend Engineer"}

	t.Run("Only the owner may list applicants", func(t *testing.T) {
		applicationRepo, jobRepo, _, _, uc := applicationFixtures(t)
		jobRepo.On("GetByID", mock.Anything, int64(5), int64(3)).Return(job, nil)

		_, err := uc.ListApplicants(context.Background(), 3, 5)
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusForbidden, appErr.Code)
		applicationRepo.AssertNotCalled(t, "GetByJobID")
	})

	t.Run("Owner sees the applications", func(t *testing.T) {
		applicationRepo, jobRepo, _, _, uc := applicationFixtures(t)
		jobRepo.On("GetByID", mock.Anything, int64(5), int64(2)).Return(job, nil)
		applicationRepo.On("GetByJobID", mock.Anything, int64(5)).
			Return([]domain.JobApplication{{ID: 42}}, nil)

		applications, err := uc.ListApplicants(context.Background(), 2, 5)
		assert.NoError(t, err)
		assert.Len(t, applications, 1)
	})
}

func TestApprove(t *testing.T) {
	job := &domain.Job{ID: 5, PostedByID: 2, Role: "Backend Engineer"}

	t.Run("Only the owner may approve", func(t *testing.T) {
		_, jobRepo, _, _, uc := applicationFixtures(t)
		jobRepo.On("GetByID", mock.Anything, int64(5), int64(3)).Return(job, nil)

		_, err := uc.Approve(context.Background(), 3, 5, 42)
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusForbidden, appErr.Code)
	})

	t.Run("Should 404 when the application belongs to another job", func(t *testing.T) {
		applicationRepo, jobRepo, _, _, uc := applicationFixtures(t)
		jobRepo.On("GetByID", mock.Anything, int64(5), int64(2)).Return(job, nil)
		applicationRepo.On("GetByID", mock.Anything, int64(42)).
			Return(&domain.JobApplication{ID: 42, JobID: 77}, nil)

		_, err := uc.Approve(context.Background(), 2, 5, 42)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Application not found")
	})

	t.Run("First approval stamps and notifies the applicant", func(t *testing.T) {
		applicationRepo, jobRepo, accountRepo, notificationRepo, uc := applicationFixtures(t)
		jobRepo.On("GetByID", mock.Anything, int64(5), int64(2)).Return(job, nil)
		pending := &domain.JobApplication{ID: 42, JobID: 5, AppliedByID: 1}
		stamped := time.Now()
		approved := &domain.JobApplication{ID: 42, JobID: 5, AppliedByID: 1, Approved: true, ApprovedAt: &stamped}
		applicationRepo.On("GetByID", mock.Anything, int64(42)).Return(pending, nil).Once()
		applicationRepo.On("Approve", mock.Anything, int64(42), mock.Anything).Return(true, nil)
		accountRepo.On("GetByID", mock.Anything, int64(2)).
			Return(&domain.Account{ID: 2, Username: "acme"}, nil)
		notificationRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.RecipientID == 1 && n.Verb == "Your application for 'Backend Engineer' was approved"
		})).Return(nil)
		applicationRepo.On("GetByID", mock.Anything, int64(42)).Return(approved, nil)

		result, err := uc.Approve(context.Background(), 2, 5, 42)
		assert.NoError(t, err)
		assert.True(t, result.Approved)
		notificationRepo.AssertExpectations(t)
	})

	t.Run("Re-approval succeeds without touching approved_at or notifying", func(t *testing.T) {
		applicationRepo, jobRepo, _, notificationRepo, uc := applicationFixtures(t)
		jobRepo.On("GetByID", mock.Anything, int64(5), int64(2)).Return(job, nil)
		stamped := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		approved := &domain.JobApplication{ID: 42, JobID: 5, AppliedByID: 1, Approved: true, ApprovedAt: &stamped}
		applicationRepo.On("GetByID", mock.Anything, int64(42)).Return(approved, nil)

		result, err := uc.Approve(context.Background(), 2, 5, 42)
		assert.NoError(t, err)
		assert.Equal(t, stamped, *result.ApprovedAt)
		applicationRepo.AssertNotCalled(t, "Approve")
		notificationRepo.AssertNotCalled(t, "Create")
	})
}
