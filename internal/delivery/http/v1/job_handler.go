package v1

import (
	"net/http"

	"recruiterconnect-backend/internal/delivery/http/response"
	"recruiterconnect-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	public.GET("/jobs", handler.ListJobs)
}

// ListJobs godoc
// @Summary      Job Listings
// @Description  Public list of seeded job postings, newest first.
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Job}
// @Router       /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.jobUC.ListJobs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}
