package validation

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"go-traveler-registry/models"
)

const (
	msgPhoneRequired = "phone number is required"
	msgPhoneInvalid  = "phone number is not valid for the selected country"
)

// Example national numbers shown when validation fails, keyed by country.
// Countries not listed fall back to a generic placeholder.
var phoneExamples = map[string]string{
	"ES": "612 34 56 78",
	"FR": "6 12 34 56 78",
	"PT": "912 345 678",
	"GB": "7400 123456",
	"IE": "85 012 3456",
	"DE": "1512 3456789",
	"IT": "312 345 6789",
	"NL": "6 12345678",
	"BE": "470 12 34 56",
	"CH": "78 123 45 67",
	"US": "201-555-0123",
	"MA": "650-123456",
	"AR": "11 2345-6789",
	"MX": "222 123 4567",
}

const genericPhoneExample = "612 345 678"

// ValidatePhone validates a national phone number against the declared
// country and, when valid, also returns the canonical international
// representation. Parser failures of any kind become a negative result,
// never an error.
func ValidatePhone(number, country string) models.ValidationResult {
	trimmed := strings.TrimSpace(number)
	if trimmed == "" {
		return models.InvalidResult(msgPhoneRequired)
	}

	region := strings.ToUpper(strings.TrimSpace(country))

	parsed, err := parsePhone(trimmed, region)
	if err != nil {
		return models.InvalidResultWithExample(msgPhoneInvalid, phoneExample(region))
	}

	if !phonenumbers.IsValidNumberForRegion(parsed, region) {
		return models.InvalidResultWithExample(msgPhoneInvalid, phoneExample(region))
	}

	result := models.ValidResult()
	result.Formatted = phonenumbers.Format(parsed, phonenumbers.INTERNATIONAL)
	return result
}

// parsePhone wraps the library call so that an internal panic in the parser
// surfaces as an ordinary error.
func parsePhone(number, region string) (parsed *phonenumbers.PhoneNumber, err error) {
	defer func() {
		if r := recover(); r != nil {
			parsed = nil
			err = fmt.Errorf("phone parser panicked: %v", r)
		}
	}()
	return phonenumbers.Parse(number, region)
}

func phoneExample(region string) string {
	if example, ok := phoneExamples[region]; ok {
		return example
	}
	return genericPhoneExample
}
