package usecase

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var validPortfolioTypes = map[string]bool{
	"starter": true,
	"trader":  true,
	"pro":     true,
}

var validConsultationTypes = map[string]bool{
	"portfolio_review": true,
	"onboarding":       true,
	"strategy":         true,
}

func ValidateWaitlistInput(input CaptureWaitlistInput) []ValidationError {
	var errors []ValidationError

	errors = append(errors, validateIdentity(input.Email, input.FullName, input.Phone)...)

	if input.PortfolioType != "" && !validPortfolioTypes[input.PortfolioType] {
		errors = append(errors, ValidationError{"portfolio_type", "must be starter, trader or pro"})
	}

	return errors
}

func ValidateConsultationInput(input CaptureConsultationInput) []ValidationError {
	var errors []ValidationError

	errors = append(errors, validateIdentity(input.Email, input.FullName, input.Phone)...)

	if input.ConsultationType == "" {
		errors = append(errors, ValidationError{"consultation_type", "is required"})
	} else if !validConsultationTypes[input.ConsultationType] {
		errors = append(errors, ValidationError{"consultation_type", "must be portfolio_review, onboarding or strategy"})
	}

	return errors
}

func validateIdentity(email, fullName, phone string) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(fullName) == "" {
		errors = append(errors, ValidationError{"full_name", "is required"})
	} else if len(fullName) > 200 {
		errors = append(errors, ValidationError{"full_name", "must not exceed 200 characters"})
	}

	if phone != "" && !isValidPhoneNumber(phone) {
		errors = append(errors, ValidationError{"phone", "must be a valid phone number"})
	}

	return errors
}

func isValidPhoneNumber(phone string) bool {
	cleaned := regexp.MustCompile(`\D`).ReplaceAllString(phone, "")
	return len(cleaned) >= 10 && len(cleaned) <= 13
}

func validationMessage(errs []ValidationError) string {
	msg := "validation failed: "
	for _, e := range errs {
		msg += e.Field + " (" + e.Message + "), "
	}
	return strings.TrimSuffix(msg, ", ")
}
