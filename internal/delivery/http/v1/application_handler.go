package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	appUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, appUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{appUC: appUC}

	// Job seeker side
	apply := protected.Group("/applications")
	apply.Use(middleware.RequirePermissions(domain.PermApplicationsApply))
	{
		apply.POST("", handler.Apply)
		apply.GET("/mine", handler.ListMine)
	}

	// Employer side
	review := protected.Group("")
	review.Use(middleware.RequirePermissions(domain.PermApplicationsReview))
	{
		review.GET("/jobs/:id/applications", handler.ListByJob)
		review.PATCH("/applications/:id/status", handler.UpdateStatus)
	}
}

type ApplyRequest struct {
	JobID        int64  `json:"job_id" binding:"required,gt=0"`
	CvDocumentID int64  `json:"cv_document_id" binding:"required,gt=0"`
	CoverLetter  string `json:"cover_letter" binding:"omitempty,max=5000"`
}

// Apply godoc
// @Summary      Apply to Job
// @Description  Submit an application with a previously uploaded CV. One application per job.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        application  body      ApplyRequest  true  "Application details"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /applications [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	if !bindJSON(c, &req) {
		return
	}

	app, err := h.appUC.ApplyToJob(c.Request.Context(), currentUserID(c), req.JobID, req.CvDocumentID, req.CoverLetter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// ListMine godoc
// @Summary      My Applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /applications/mine [get]
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	apps, err := h.appUC.GetMyApplications(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications", apps)
}

// ListByJob godoc
// @Summary      Applications for a Job
// @Description  List applications received for one of the caller's job postings.
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/applications [get]
func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	jobID, ok := pathID(c, "id")
	if !ok {
		return
	}
	apps, err := h.appUC.ListByJobID(c.Request.Context(), currentUserID(c), jobID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications", apps)
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=reviewed accepted rejected"`
}

// UpdateStatus godoc
// @Summary      Update Application Status
// @Description  Move an application along the lifecycle: applied, reviewed, then accepted or rejected.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  int                  true  "Application ID"
// @Param        status  body  UpdateStatusRequest  true  "New status"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.appUC.UpdateApplicationStatus(c.Request.Context(), currentUserID(c), id, req.Status); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application status updated", nil)
}
