package validation

import (
	"regexp"
	"strings"

	"go-traveler-registry/models"
)

const (
	msgEmailRequired = "email is required"
	msgEmailFormat   = "email is not a valid address"
)

// Single @ with a dot somewhere after it. Deliberately loose; the mailbox is
// never verified here.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidateEmail(email string) models.ValidationResult {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return models.InvalidResult(msgEmailRequired)
	}
	if !emailPattern.MatchString(trimmed) {
		return models.InvalidResultWithExample(msgEmailFormat, "guest@example.com")
	}
	return models.ValidResult()
}
