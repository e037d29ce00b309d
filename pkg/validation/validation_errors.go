package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels.
var FieldLabels = map[string]string{
	// Applicant profile
	"Headline":          "Headline",
	"Bio":               "Bio",
	"YearsOfExperience": "Years of Experience",
	"JobTitle":          "Job Title",
	"Location":          "Location",
	"Skills":            "Skills",
	"Education":         "Education",

	// Education entries
	"Institution":  "Institution",
	"Degree":       "Degree",
	"FieldOfStudy": "Field of Study",
	"FromYear":     "Start Year",
	"ToYear":       "End Year",
	"IsCurrent":    "Currently Studying",

	// Recruiter profile
	"CompanyName":        "Company Name",
	"Position":           "Position",
	"Industry":           "Industry",
	"CompanySize":        "Company Size",
	"CompanyDescription": "Company Description",
	"CompanyWebsite":     "Company Website",
	"CompanyLocation":    "Company Location",
	"PhoneNumber":        "Phone Number",
	"Specializations":    "Specializations",

	// Auth
	"Email":    "Email",
	"Password": "Password",
	"UserType": "Account Type",
	"Name":     "Name",
}

// FormatValidationErrors converts validator.ValidationErrors to
// field-level reasons suitable for the error envelope.
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	var messages []string
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", label)
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
	case "gte":
		return fmt.Sprintf("%s: must be %s or more", label, param)
	case "lte":
		return fmt.Sprintf("%s: must be %s or less", label, param)
	case "email":
		return fmt.Sprintf("%s: invalid email format", label)
	case "url":
		return fmt.Sprintf("%s: invalid URL format", label)
	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", label, strings.Join(strings.Split(param, " "), ", "))
	case "e164":
		return fmt.Sprintf("%s: invalid phone number format", label)
	default:
		return fmt.Sprintf("%s: failed validation (%s)", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words.
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
