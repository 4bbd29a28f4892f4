package validation

import (
	"strings"
	"time"

	"go-traveler-registry/models"
)

const (
	msgBirthDateRequired   = "birth date is required"
	msgBirthDateUnparsable = "birth date is not a valid date"
	msgBirthDateFuture     = "birth date cannot be in the future"
	msgBirthDateNegative   = "birth date is after today"
	msgBirthDateTooOld     = "birth date does not look correct"
)

const birthDateLayout = "2006-01-02"

// Oldest accepted age in whole years. A birth date more than this many years
// before today is rejected as a typo rather than a 121-year-old guest.
const maxAgeYears = 120

// ValidateBirthDate validates a YYYY-MM-DD birth date and derives the
// traveler's whole-year age on success.
func ValidateBirthDate(date string) models.ValidationResult {
	trimmed := strings.TrimSpace(date)
	if trimmed == "" {
		return models.InvalidResult(msgBirthDateRequired)
	}

	born, err := time.Parse(birthDateLayout, trimmed)
	if err != nil {
		return models.InvalidResult(msgBirthDateUnparsable)
	}

	today := todayCivil()
	if born.After(today) {
		return models.InvalidResult(msgBirthDateFuture)
	}

	if born.Before(today.AddDate(-maxAgeYears, 0, 0)) {
		return models.InvalidResult(msgBirthDateTooOld)
	}

	age := wholeYearsBetween(born, today)
	if age < 0 {
		// unreachable given the future check, kept as a guard
		return models.InvalidResult(msgBirthDateNegative)
	}

	result := models.ValidResult()
	result.Age = &age
	return result
}

// todayCivil returns the local calendar date as a UTC midnight instant, the
// same convention time.Parse uses, so comparisons are date-only and immune to
// timezone drift around midnight.
func todayCivil() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func wholeYearsBetween(born, today time.Time) int {
	years := today.Year() - born.Year()
	if born.AddDate(years, 0, 0).After(today) {
		years--
	}
	return years
}
