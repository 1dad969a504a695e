package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/delivery/http/response"
	"jobportal-backend/internal/domain"
	"jobportal-backend/pkg/apperror"
)

type JobHandler struct {
	jobUC         domain.JobUsecase
	applicationUC domain.ApplicationUsecase
}

func NewJobHandler(optional *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase, applicationUC domain.ApplicationUsecase) {
	handler := &JobHandler{jobUC: jobUC, applicationUC: applicationUC}

	// Listings work anonymously; has_applied is false without a token
	optionalJobs := optional.Group("/jobs")
	{
		optionalJobs.GET("", handler.List)
		optionalJobs.GET("/:job_id", handler.GetDetails)
	}

	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.POST("", handler.Create)
		protectedJobs.POST("/:job_id/apply", handler.Apply)
		protectedJobs.DELETE("/:job_id/apply", handler.Withdraw)
		protectedJobs.GET("/:job_id/applicants", handler.ListApplicants)
		protectedJobs.POST("/:job_id/applicants/:application_id/approve", handler.Approve)
	}
}

type CreateJobRequest struct {
	CompanyName string  `json:"company_name"`
	Role        string  `json:"role" binding:"required"`
	Description string  `json:"description" binding:"required"`
	JobType     string  `json:"job_type" binding:"required"`
	Location    string  `json:"location" binding:"required"`
	Salary      *string `json:"salary"`
	MaxMembers  int     `json:"max_members"`
	Deadline    string  `json:"deadline" binding:"required"`
}

func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid deadline. Use YYYY-MM-DD or RFC 3339"))
		return
	}

	job := &domain.Job{
		CompanyName: req.CompanyName,
		Role:        req.Role,
		Description: req.Description,
		JobType:     req.JobType,
		Location:    req.Location,
		Salary:      req.Salary,
		MaxMembers:  req.MaxMembers,
		Deadline:    deadline,
	}

	if err := h.jobUC.CreateJob(c.Request.Context(), currentUserID(c), currentUserRole(c), job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobUC.ListJobs(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs", jobs)
}

func (h *JobHandler) GetDetails(c *gin.Context) {
	jobID, ok := pathID(c, "job_id")
	if !ok {
		return
	}

	job, err := h.jobUC.GetJob(c.Request.Context(), jobID, currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job details", job)
}

func (h *JobHandler) Apply(c *gin.Context) {
	jobID, ok := pathID(c, "job_id")
	if !ok {
		return
	}

	app, err := h.applicationUC.Apply(c.Request.Context(), currentUserID(c), jobID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application submitted", app)
}

func (h *JobHandler) Withdraw(c *gin.Context) {
	jobID, ok := pathID(c, "job_id")
	if !ok {
		return
	}

	if err := h.applicationUC.Withdraw(c.Request.Context(), currentUserID(c), jobID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application withdrawn", nil)
}

func (h *JobHandler) ListApplicants(c *gin.Context) {
	jobID, ok := pathID(c, "job_id")
	if !ok {
		return
	}

	applications, err := h.applicationUC.ListApplicants(c.Request.Context(), currentUserID(c), jobID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applicants", applications)
}

func (h *JobHandler) Approve(c *gin.Context) {
	jobID, ok := pathID(c, "job_id")
	if !ok {
		return
	}
	applicationID, ok := pathID(c, "application_id")
	if !ok {
		return
	}

	app, err := h.applicationUC.Approve(c.Request.Context(), currentUserID(c), jobID, applicationID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application approved", app)
}

// parseDeadline accepts a bare date or a full RFC 3339 timestamp.
func parseDeadline(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.Error(apperror.BadRequest("Invalid " + name))
		return 0, false
	}
	return id, true
}
