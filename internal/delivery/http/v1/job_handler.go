package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// Public browsing: only active jobs with company details
	public.GET("/jobs", handler.ListPublic)
	public.GET("/jobs/:id", handler.Get)

	// Employer management
	manage := protected.Group("/jobs")
	manage.Use(middleware.RequirePermissions(domain.PermJobsManage))
	{
		manage.POST("", handler.Create)
		manage.GET("/mine", handler.ListMine)
		manage.PUT("/:id", handler.Update)
		manage.DELETE("/:id", handler.Delete)
	}
}

type JobRequest struct {
	Title           string  `json:"title" binding:"required,min=3,max=150"`
	Description     string  `json:"description" binding:"required,min=10"`
	SalaryMin       float64 `json:"salary_min" binding:"omitempty,gte=0"`
	SalaryMax       float64 `json:"salary_max" binding:"omitempty,gte=0"`
	Location        string  `json:"location" binding:"required,max=200"`
	Status          string  `json:"status" binding:"omitempty,oneof=active closed draft"`
	EmploymentType  *string `json:"employment_type" binding:"omitempty,oneof=full_time part_time contract internship"`
	ExperienceLevel *string `json:"experience_level" binding:"omitempty,max=50"`
	Qualifications  *string `json:"qualifications" binding:"omitempty,max=2000"`
}

func (r *JobRequest) toDomain() *domain.Job {
	return &domain.Job{
		Title:           r.Title,
		Description:     r.Description,
		SalaryMin:       r.SalaryMin,
		SalaryMax:       r.SalaryMax,
		Location:        r.Location,
		Status:          r.Status,
		EmploymentType:  r.EmploymentType,
		ExperienceLevel: r.ExperienceLevel,
		Qualifications:  r.Qualifications,
	}
}

// Create godoc
// @Summary      Create Job
// @Description  Post a job under the caller's company.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        job  body      JobRequest  true  "Job details"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var req JobRequest
	if !bindJSON(c, &req) {
		return
	}

	job := req.toDomain()
	if err := h.jobUC.CreateJob(c.Request.Context(), currentUserID(c), job); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job created", job)
}

// ListPublic godoc
// @Summary      Browse Jobs
// @Description  List active jobs with company details. No authentication required.
// @Tags         jobs
// @Produce      json
// @Param        page       query  int  false  "Page number"
// @Param        page_size  query  int  false  "Page size"
// @Success      200  {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) ListPublic(c *gin.Context) {
	page, pageSize := pageParams(c)
	jobs, total, err := h.jobUC.ListPublicActiveJobs(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs", response.Paginated{
		Items: jobs, Total: total, Page: page, PageSize: pageSize,
	})
}

// Get godoc
// @Summary      Job Details
// @Tags         jobs
// @Produce      json
// @Param        id  path  int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	job, err := h.jobUC.GetJobDetailsWithCompany(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job details", job)
}

// ListMine godoc
// @Summary      My Job Postings
// @Description  List all jobs posted by the caller's company, any status.
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        page       query  int  false  "Page number"
// @Param        page_size  query  int  false  "Page size"
// @Success      200  {object}  response.Response
// @Router       /jobs/mine [get]
func (h *JobHandler) ListMine(c *gin.Context) {
	page, pageSize := pageParams(c)
	jobs, total, err := h.jobUC.ListJobsByEmployer(c.Request.Context(), currentUserID(c), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs", response.Paginated{
		Items: jobs, Total: total, Page: page, PageSize: pageSize,
	})
}

// Update godoc
// @Summary      Update Job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int         true  "Job ID"
// @Param        job  body  JobRequest  true  "Job details"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req JobRequest
	if !bindJSON(c, &req) {
		return
	}

	job := req.toDomain()
	job.ID = id
	if err := h.jobUC.UpdateJob(c.Request.Context(), currentUserID(c), job); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job updated", job)
}

// Delete godoc
// @Summary      Delete Job
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.jobUC.DeleteJob(c.Request.Context(), currentUserID(c), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted", nil)
}
