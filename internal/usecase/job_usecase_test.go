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

func validJob() *domain.Job {
	return &domain.Job{
		Role:        "Backend Engineer",
		Description: "Build APIs",
		JobType:     "full_time",
		Location:    "Remote",
		Deadline:    time.Now().Add(30 * 24 * time.Hour),
	}
}

func TestCreateJob(t *testing.T) {
	t.Run("Only companies can post", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo, new(MockAccountRepo))

		err := uc.CreateJob(context.Background(), 1, domain.RoleUser, validJob())
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusForbidden, appErr.Code)
		jobRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Rejects missing required fields", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo), new(MockAccountRepo))

		job := validJob()
		job.Location = ""
		err := uc.CreateJob(context.Background(), 1, domain.RoleCompany, job)
		assert.Error(t, err)
	})

	t.Run("Rejects unknown job types", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo), new(MockAccountRepo))

		job := validJob()
		job.JobType = "gig"
		err := uc.CreateJob(context.Background(), 1, domain.RoleCompany, job)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid job_type")
	})

	t.Run("Fills company name from the account when omitted", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		accountRepo := new(MockAccountRepo)
		name := "Acme Corp"
		accountRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Account{ID: 1, Role: domain.RoleCompany, CompanyName: &name}, nil)
		jobRepo.On("Create", mock.Anything, mock.MatchedBy(func(j *domain.Job) bool {
			return j.CompanyName == "Acme Corp" && j.PostedByID == 1
		})).Return(nil)
		uc := usecase.NewJobUsecase(jobRepo, accountRepo)

		err := uc.CreateJob(context.Background(), 1, domain.RoleCompany, validJob())
		assert.NoError(t, err)
		jobRepo.AssertExpectations(t)
	})
}

func TestSearchJobs(t *testing.T) {
	jobRepo := new(MockJobRepo)
	filter := domain.JobSearchFilter{Role: "engineer", JobType: "full_time"}
	jobRepo.On("Search", mock.Anything, filter, int64(3), 50).
		Return([]domain.Job{{ID: 1, Role: "Backend Engineer"}}, nil)
	uc := usecase.NewJobUsecase(jobRepo, new(MockAccountRepo))

	jobs, err := uc.SearchJobs(context.Background(), filter, 3)
	assert.NoError(t, err)
	assert.Len(t, jobs, 1)
	jobRepo.AssertExpectations(t)
}

func TestGetJob(t *testing.T) {
	t.Run("Should 404 for unknown ids", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", mock.Anything, int64(99), int64(0)).Return(nil, domain.ErrNotFound)
		uc := usecase.NewJobUsecase(jobRepo, new(MockAccountRepo))

		_, err := uc.GetJob(context.Background(), 99, 0)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Job not found")
	})

	t.Run("Passes the viewer for has_applied annotation", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", mock.Anything, int64(5), int64(3)).
			Return(&domain.Job{ID: 5, HasApplied: true}, nil)
		uc := usecase.NewJobUsecase(jobRepo, new(MockAccountRepo))

		job, err := uc.GetJob(context.Background(), 5, 3)
		assert.NoError(t, err)
		assert.True(t, job.HasApplied)
	})
}
