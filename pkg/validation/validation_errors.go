package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	// Auth fields
	"Email":           "Email",
	"Password":        "Password",
	"ConfirmPassword": "Password confirmation",
	"FirstName":       "First name",
	"LastName":        "Last name",
	"ChallengeID":     "Challenge ID",
	"Code":            "Verification code",

	// Profile fields
	"Headline":      "Headline",
	"Bio":           "Bio",
	"Phone":         "Phone number",
	"BirthDate":     "Birth date",
	"Nationality":   "Nationality",
	"MaritalStatus": "Marital status",
	"Skills":        "Skills",

	// Education / Experience fields
	"Institution":  "Institution",
	"Degree":       "Degree",
	"FieldOfStudy": "Field of study",
	"StartYear":    "Start year",
	"EndYear":      "End year",
	"CompanyName":  "Company name",
	"JobTitle":     "Job title",
	"StartDate":    "Start date",
	"EndDate":      "End date",

	// Reference / Address fields
	"Relation":   "Relation",
	"Line1":      "Address line 1",
	"City":       "City",
	"Country":    "Country",
	"PostalCode": "Postal code",

	// Company / Job fields
	"Name":        "Name",
	"Title":       "Title",
	"Description": "Description",
	"SalaryMin":   "Minimum salary",
	"SalaryMax":   "Maximum salary",
	"Location":    "Location",
	"Website":     "Website",
	"Industry":    "Industry",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: required", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at least %s", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at most %s", label, param)
	case "len":
		return fmt.Sprintf("%s: must be exactly %s characters", label, param)
	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", label, strings.Join(strings.Split(param, " "), ", "))
	case "email":
		return fmt.Sprintf("%s: invalid email format", label)
	case "url":
		return fmt.Sprintf("%s: invalid URL format", label)
	case "valid_name":
		return fmt.Sprintf("%s: only letters, spaces, and common punctuation (. ' -) allowed", label)
	case "valid_phone":
		return fmt.Sprintf("%s: invalid phone format (7-15 digits, with/without +)", label)
	case "strong_password":
		return fmt.Sprintf("%s: must be at least 8 characters with upper case, lower case, and a digit", label)
	case "no_emoji":
		return fmt.Sprintf("%s: must not contain emoji or special symbols", label)
	case "eqfield":
		return fmt.Sprintf("%s: must match %s", label, getFieldLabel(param))
	case "gtefield":
		return fmt.Sprintf("%s: must not be smaller than %s", label, getFieldLabel(param))
	case "gt":
		return fmt.Sprintf("%s: must be greater than %s", label, param)
	default:
		return fmt.Sprintf("%s: validation failed (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
