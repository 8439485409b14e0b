package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
}

func NewAdminHandler(protected *gin.RouterGroup, adminUC domain.AdminUsecase) {
	handler := &AdminHandler{adminUC: adminUC}

	admin := protected.Group("/admin")
	admin.Use(middleware.RequirePermissions(domain.PermUsersManage))
	{
		admin.GET("/users", handler.ListUsers)
		admin.PUT("/users/:id/roles", handler.AssignRoles)
		admin.PATCH("/users/:id/deactivate", handler.DeactivateUser)
		admin.PATCH("/users/:id/reactivate", handler.ReactivateUser)
	}
}

// ListUsers godoc
// @Summary      List Users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page       query  int  false  "Page number"
// @Param        page_size  query  int  false  "Page size"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, pageSize := pageParams(c)
	users, total, err := h.adminUC.ListUsers(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Users", response.Paginated{
		Items: users, Total: total, Page: page, PageSize: pageSize,
	})
}

type AssignRolesRequest struct {
	Roles []string `json:"roles" binding:"required,min=1,dive,oneof=admin employer job_seeker"`
}

// AssignRoles godoc
// @Summary      Assign Roles
// @Description  Replace a user's role set.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path  string              true  "User ID"
// @Param        roles  body  AssignRolesRequest  true  "Roles"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/users/{id}/roles [put]
func (h *AdminHandler) AssignRoles(c *gin.Context) {
	var req AssignRolesRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.adminUC.AssignRoles(c.Request.Context(), c.Param("id"), req.Roles); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Roles updated", nil)
}

func (h *AdminHandler) DeactivateUser(c *gin.Context) {
	if err := h.adminUC.DeactivateUser(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User deactivated", nil)
}

func (h *AdminHandler) ReactivateUser(c *gin.Context) {
	if err := h.adminUC.ReactivateUser(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User reactivated", nil)
}
