package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/delivery/http/response"
	"jobportal-backend/internal/domain"
)

type SearchHandler struct {
	authUC domain.AuthUsecase
	jobUC  domain.JobUsecase
}

func NewSearchHandler(optional *gin.RouterGroup, authUC domain.AuthUsecase, jobUC domain.JobUsecase) {
	handler := &SearchHandler{authUC: authUC, jobUC: jobUC}

	search := optional.Group("/search")
	{
		search.GET("/users", handler.Users)
		search.GET("/jobs", handler.Jobs)
	}
}

func (h *SearchHandler) Users(c *gin.Context) {
	results, err := h.authUC.SearchUsers(c.Request.Context(), currentUserID(c), c.Query("search"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Users", results)
}

func (h *SearchHandler) Jobs(c *gin.Context) {
	filter := domain.JobSearchFilter{
		Role:     c.Query("role"),
		Location: c.Query("location"),
		JobType:  c.Query("job_type"),
	}

	jobs, err := h.jobUC.SearchJobs(c.Request.Context(), filter, currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs", jobs)
}
