package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

func NewCompanyHandler(public *gin.RouterGroup, protected *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	// Public browsing
	public.GET("/companies", handler.List)
	public.GET("/companies/:id", handler.Get)

	// Employer management
	manage := protected.Group("/companies")
	manage.Use(middleware.RequirePermissions(domain.PermCompaniesManage))
	{
		manage.POST("", handler.Create)
		manage.GET("/me", handler.GetMine)
		manage.PUT("/:id", handler.Update)
		manage.DELETE("/:id", handler.Delete)
	}
}

type CompanyRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=100"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Website     *string `json:"website" binding:"omitempty,url"`
	Industry    *string `json:"industry" binding:"omitempty,max=100"`
	LogoURL     *string `json:"logo_url" binding:"omitempty,url"`
	Location    *string `json:"location" binding:"omitempty,max=200"`
}

func (r *CompanyRequest) toDomain() *domain.Company {
	return &domain.Company{
		Name:        r.Name,
		Description: r.Description,
		Website:     r.Website,
		Industry:    r.Industry,
		LogoURL:     r.LogoURL,
		Location:    r.Location,
	}
}

// Create godoc
// @Summary      Create Company
// @Description  Create the caller's company profile. One company per employer.
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        company  body      CompanyRequest  true  "Company details"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /companies [post]
func (h *CompanyHandler) Create(c *gin.Context) {
	var req CompanyRequest
	if !bindJSON(c, &req) {
		return
	}

	company := req.toDomain()
	if err := h.companyUC.CreateCompany(c.Request.Context(), currentUserID(c), company); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Company created", company)
}

// List godoc
// @Summary      List Companies
// @Tags         companies
// @Produce      json
// @Param        page       query  int  false  "Page number"
// @Param        page_size  query  int  false  "Page size"
// @Success      200  {object}  response.Response
// @Router       /companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	page, pageSize := pageParams(c)
	companies, total, err := h.companyUC.ListCompanies(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Companies", response.Paginated{
		Items: companies, Total: total, Page: page, PageSize: pageSize,
	})
}

// Get godoc
// @Summary      Company Details
// @Tags         companies
// @Produce      json
// @Param        id  path  int  true  "Company ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /companies/{id} [get]
func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	company, err := h.companyUC.GetCompany(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company details", company)
}

// GetMine godoc
// @Summary      My Company
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /companies/me [get]
func (h *CompanyHandler) GetMine(c *gin.Context) {
	company, err := h.companyUC.GetMyCompany(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company details", company)
}

// Update godoc
// @Summary      Update Company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int             true  "Company ID"
// @Param        company  body  CompanyRequest  true  "Company details"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /companies/{id} [put]
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req CompanyRequest
	if !bindJSON(c, &req) {
		return
	}

	company := req.toDomain()
	company.ID = id
	if err := h.companyUC.UpdateCompany(c.Request.Context(), currentUserID(c), currentUserRoles(c), company); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company updated", company)
}

// Delete godoc
// @Summary      Delete Company
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Company ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /companies/{id} [delete]
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.companyUC.DeleteCompany(c.Request.Context(), currentUserID(c), currentUserRoles(c), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company deleted", nil)
}
