package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type JobSeekerHandler struct {
	seekerUC domain.JobSeekerUsecase
}

func NewJobSeekerHandler(protected *gin.RouterGroup, seekerUC domain.JobSeekerUsecase) {
	handler := &JobSeekerHandler{seekerUC: seekerUC}

	profile := protected.Group("/profile")
	profile.Use(middleware.RequirePermissions(domain.PermProfileManage))
	{
		profile.GET("", handler.GetFullProfile)
		profile.PUT("", handler.UpdateProfile)

		profile.POST("/educations", handler.AddEducation)
		profile.PUT("/educations/:id", handler.UpdateEducation)
		profile.DELETE("/educations/:id", handler.DeleteEducation)

		profile.POST("/experiences", handler.AddExperience)
		profile.PUT("/experiences/:id", handler.UpdateExperience)
		profile.DELETE("/experiences/:id", handler.DeleteExperience)

		profile.POST("/references", handler.AddReference)
		profile.PUT("/references/:id", handler.UpdateReference)
		profile.DELETE("/references/:id", handler.DeleteReference)

		profile.POST("/addresses", handler.AddAddress)
		profile.PUT("/addresses/:id", handler.UpdateAddress)
		profile.DELETE("/addresses/:id", handler.DeleteAddress)
	}
}

// GetFullProfile godoc
// @Summary      Full Job Seeker Profile
// @Description  Return the caller's profile with educations, experiences, references, and addresses.
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /profile [get]
func (h *JobSeekerHandler) GetFullProfile(c *gin.Context) {
	full, err := h.seekerUC.GetFullProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile", full)
}

type ProfileRequest struct {
	Headline      *string  `json:"headline" binding:"omitempty,max=150"`
	Bio           *string  `json:"bio" binding:"omitempty,max=2000"`
	Phone         *string  `json:"phone" binding:"omitempty,valid_phone"`
	BirthDate     *string  `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Gender        *string  `json:"gender" binding:"omitempty,oneof=male female other"`
	Nationality   *string  `json:"nationality" binding:"omitempty,max=100"`
	MaritalStatus *string  `json:"marital_status" binding:"omitempty,oneof=single married divorced widowed"`
	Skills        []string `json:"skills" binding:"omitempty,dive,min=1,max=50"`
	PhotoURL      *string  `json:"photo_url" binding:"omitempty,url"`
}

// UpdateProfile godoc
// @Summary      Update Profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        profile  body      ProfileRequest  true  "Profile details"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /profile [put]
func (h *JobSeekerHandler) UpdateProfile(c *gin.Context) {
	var req ProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	profile := &domain.JobSeekerProfile{
		UserID:        currentUserID(c),
		Headline:      req.Headline,
		Bio:           req.Bio,
		Phone:         req.Phone,
		BirthDate:     req.BirthDate,
		Gender:        req.Gender,
		Nationality:   req.Nationality,
		MaritalStatus: req.MaritalStatus,
		Skills:        req.Skills,
		PhotoURL:      req.PhotoURL,
	}
	if err := h.seekerUC.UpdateProfile(c.Request.Context(), profile); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", profile)
}

type EducationRequest struct {
	Institution  string  `json:"institution" binding:"required,max=150"`
	Degree       string  `json:"degree" binding:"required,max=100"`
	FieldOfStudy *string `json:"field_of_study" binding:"omitempty,max=100"`
	StartYear    int     `json:"start_year" binding:"required,gte=1950,lte=2100"`
	EndYear      *int    `json:"end_year" binding:"omitempty,gte=1950,lte=2100"`
	Description  *string `json:"description" binding:"omitempty,max=1000"`
}

func (r *EducationRequest) toDomain(userID string) *domain.Education {
	return &domain.Education{
		UserID:       userID,
		Institution:  r.Institution,
		Degree:       r.Degree,
		FieldOfStudy: r.FieldOfStudy,
		StartYear:    r.StartYear,
		EndYear:      r.EndYear,
		Description:  r.Description,
	}
}

func (h *JobSeekerHandler) AddEducation(c *gin.Context) {
	var req EducationRequest
	if !bindJSON(c, &req) {
		return
	}
	edu := req.toDomain(currentUserID(c))
	if err := h.seekerUC.AddEducation(c.Request.Context(), edu); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Education added", edu)
}

func (h *JobSeekerHandler) UpdateEducation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req EducationRequest
	if !bindJSON(c, &req) {
		return
	}
	edu := req.toDomain(currentUserID(c))
	edu.ID = id
	if err := h.seekerUC.UpdateEducation(c.Request.Context(), edu); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education updated", edu)
}

func (h *JobSeekerHandler) DeleteEducation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.seekerUC.DeleteEducation(c.Request.Context(), currentUserID(c), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education deleted", nil)
}

type ExperienceRequest struct {
	CompanyName string  `json:"company_name" binding:"required,max=150"`
	JobTitle    string  `json:"job_title" binding:"required,max=150"`
	StartDate   string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

func (r *ExperienceRequest) toDomain(userID string) *domain.Experience {
	return &domain.Experience{
		UserID:      userID,
		CompanyName: r.CompanyName,
		JobTitle:    r.JobTitle,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Description: r.Description,
	}
}

func (h *JobSeekerHandler) AddExperience(c *gin.Context) {
	var req ExperienceRequest
	if !bindJSON(c, &req) {
		return
	}
	exp := req.toDomain(currentUserID(c))
	if err := h.seekerUC.AddExperience(c.Request.Context(), exp); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Experience added", exp)
}

func (h *JobSeekerHandler) UpdateExperience(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req ExperienceRequest
	if !bindJSON(c, &req) {
		return
	}
	exp := req.toDomain(currentUserID(c))
	exp.ID = id
	if err := h.seekerUC.UpdateExperience(c.Request.Context(), exp); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience updated", exp)
}

func (h *JobSeekerHandler) DeleteExperience(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.seekerUC.DeleteExperience(c.Request.Context(), currentUserID(c), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience deleted", nil)
}

type ReferenceRequest struct {
	Name     string  `json:"name" binding:"required,max=100,valid_name"`
	Relation string  `json:"relation" binding:"required,max=100"`
	Company  *string `json:"company" binding:"omitempty,max=150"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone" binding:"omitempty,valid_phone"`
}

func (r *ReferenceRequest) toDomain(userID string) *domain.Reference {
	return &domain.Reference{
		UserID:   userID,
		Name:     r.Name,
		Relation: r.Relation,
		Company:  r.Company,
		Email:    r.Email,
		Phone:    r.Phone,
	}
}

func (h *JobSeekerHandler) AddReference(c *gin.Context) {
	var req ReferenceRequest
	if !bindJSON(c, &req) {
		return
	}
	ref := req.toDomain(currentUserID(c))
	if err := h.seekerUC.AddReference(c.Request.Context(), ref); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Reference added", ref)
}

func (h *JobSeekerHandler) UpdateReference(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req ReferenceRequest
	if !bindJSON(c, &req) {
		return
	}
	ref := req.toDomain(currentUserID(c))
	ref.ID = id
	if err := h.seekerUC.UpdateReference(c.Request.Context(), ref); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Reference updated", ref)
}

func (h *JobSeekerHandler) DeleteReference(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.seekerUC.DeleteReference(c.Request.Context(), currentUserID(c), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Reference deleted", nil)
}

type AddressRequest struct {
	Line1      string  `json:"line1" binding:"required,max=200"`
	Line2      *string `json:"line2" binding:"omitempty,max=200"`
	City       string  `json:"city" binding:"required,max=100"`
	Province   *string `json:"province" binding:"omitempty,max=100"`
	PostalCode *string `json:"postal_code" binding:"omitempty,max=20"`
	Country    string  `json:"country" binding:"required,max=100"`
	IsPrimary  bool    `json:"is_primary"`
}

func (r *AddressRequest) toDomain(userID string) *domain.Address {
	return &domain.Address{
		UserID:     userID,
		Line1:      r.Line1,
		Line2:      r.Line2,
		City:       r.City,
		Province:   r.Province,
		PostalCode: r.PostalCode,
		Country:    r.Country,
		IsPrimary:  r.IsPrimary,
	}
}

func (h *JobSeekerHandler) AddAddress(c *gin.Context) {
	var req AddressRequest
	if !bindJSON(c, &req) {
		return
	}
	addr := req.toDomain(currentUserID(c))
	if err := h.seekerUC.AddAddress(c.Request.Context(), addr); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Address added", addr)
}

func (h *JobSeekerHandler) UpdateAddress(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req AddressRequest
	if !bindJSON(c, &req) {
		return
	}
	addr := req.toDomain(currentUserID(c))
	addr.ID = id
	if err := h.seekerUC.UpdateAddress(c.Request.Context(), addr); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Address updated", addr)
}

func (h *JobSeekerHandler) DeleteAddress(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.seekerUC.DeleteAddress(c.Request.Context(), currentUserID(c), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Address deleted", nil)
}
