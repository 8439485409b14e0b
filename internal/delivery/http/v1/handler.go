// Package v1 contains the HTTP handlers for the first API version.
package v1

import (
	"errors"
	"strconv"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindJSON binds the request body and converts validator errors into
// field-level issues for the error envelope.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			c.Error(apperror.Validation("Validation failed", validation.FormatValidationErrors(err)))
		} else {
			c.Error(apperror.BadRequest("Invalid request body"))
		}
		return false
	}
	return true
}

// currentUserID returns the authenticated user id set by the auth middleware.
func currentUserID(c *gin.Context) string {
	return c.GetString(string(domain.KeyUserID))
}

// currentUserRoles returns the authenticated user's role names.
func currentUserRoles(c *gin.Context) []string {
	roles, _ := c.Get(string(domain.KeyUserRoles))
	names, _ := roles.([]string)
	return names
}

// pathID parses a numeric id path parameter.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		c.Error(apperror.BadRequest("Invalid " + name + " parameter"))
		return 0, false
	}
	return id, true
}

// pageParams reads ?page and ?page_size with defaults.
func pageParams(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return page, pageSize
}
