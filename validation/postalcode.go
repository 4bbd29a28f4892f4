package validation

import (
	"regexp"
	"strings"

	"go-traveler-registry/models"
)

const (
	msgPostalRequired = "postal code is required"
	msgPostalTooShort = "postal code is too short"
	msgPostalTooLong  = "postal code is too long"
	msgPostalFormat   = "postal code does not match the expected format"
)

type postalPattern struct {
	pattern *regexp.Regexp
	example string
}

var postalPatterns = map[string]postalPattern{
	// purely numeric
	"ES": {regexp.MustCompile(`^[0-9]{5}$`), "28001"},
	"FR": {regexp.MustCompile(`^[0-9]{5}$`), "75001"},
	"DE": {regexp.MustCompile(`^[0-9]{5}$`), "10115"},
	"IT": {regexp.MustCompile(`^[0-9]{5}$`), "00184"},
	"FI": {regexp.MustCompile(`^[0-9]{5}$`), "00100"},
	"AT": {regexp.MustCompile(`^[0-9]{4}$`), "1010"},
	"BE": {regexp.MustCompile(`^[0-9]{4}$`), "1000"},
	"CH": {regexp.MustCompile(`^[0-9]{4}$`), "8001"},
	"DK": {regexp.MustCompile(`^[0-9]{4}$`), "1050"},
	"NO": {regexp.MustCompile(`^[0-9]{4}$`), "0150"},
	"HU": {regexp.MustCompile(`^[0-9]{4}$`), "1011"},

	// numeric with an optional or mandatory suffix after a hyphen
	"PT": {regexp.MustCompile(`^[0-9]{4}-[0-9]{3}$`), "1000-205"},
	"PL": {regexp.MustCompile(`^[0-9]{2}-[0-9]{3}$`), "00-001"},
	"JP": {regexp.MustCompile(`^[0-9]{3}-[0-9]{4}$`), "100-0001"},
	"US": {regexp.MustCompile(`^[0-9]{5}(-[0-9]{4})?$`), "90210"},

	// letter and digit formats
	"NL": {regexp.MustCompile(`^[0-9]{4} ?[A-Z]{2}$`), "1234 AB"},
	"SE": {regexp.MustCompile(`^[0-9]{3} ?[0-9]{2}$`), "113 51"},
	"CZ": {regexp.MustCompile(`^[0-9]{3} ?[0-9]{2}$`), "110 00"},
	"SK": {regexp.MustCompile(`^[0-9]{3} ?[0-9]{2}$`), "811 01"},
	"GB": {regexp.MustCompile(`^[A-Z]{1,2}[0-9][A-Z0-9]?[0-9][A-Z]{2}$`), "SW1A 1AA"},
}

// Cleaning classes. Raw user input routinely carries stray separators that a
// naive pattern match would reject, so each country's code is normalized into
// the shape its pattern expects before matching.
var (
	postalNumericOnly = map[string]bool{
		"ES": true, "FR": true, "DE": true, "IT": true, "FI": true,
		"AT": true, "BE": true, "CH": true, "DK": true, "NO": true, "HU": true,
	}
	postalDigitsAndHyphen = map[string]bool{
		"PT": true, "PL": true, "JP": true, "US": true,
	}
	postalAlnumAndSpace = map[string]bool{
		"NL": true, "SE": true, "CZ": true, "SK": true,
	}
	postalAlnumOnly = map[string]bool{
		"GB": true,
	}
)

var (
	invisibleChars  = regexp.MustCompile("[\u200b\u200c\u200d\u2060\ufeff]")
	nonDigits       = regexp.MustCompile(`[^0-9]`)
	nonDigitsHyphen = regexp.MustCompile(`[^0-9-]`)
	nonAlnumSpace   = regexp.MustCompile(`[^0-9A-Z ]`)
	nonAlnum        = regexp.MustCompile(`[^0-9A-Z]`)
	innerWhitespace = regexp.MustCompile(`\s+`)
)

// ValidatePostalCode validates a postal code against the pattern registered
// for the country, after country-specific cleaning. Countries without a
// registered pattern only get a length check.
func ValidatePostalCode(code, country string) models.ValidationResult {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return models.InvalidResult(msgPostalRequired)
	}

	cc := strings.ToUpper(strings.TrimSpace(country))
	registered, ok := postalPatterns[cc]
	if !ok {
		if len(trimmed) < 3 {
			return models.InvalidResult(msgPostalTooShort)
		}
		if len(trimmed) > 10 {
			return models.InvalidResult(msgPostalTooLong)
		}
		return models.ValidResult()
	}

	clean := cleanPostalCode(trimmed, cc)
	if !registered.pattern.MatchString(clean) {
		return models.InvalidResultWithExample(msgPostalFormat, registered.example)
	}

	return models.ValidResult()
}

// CleanPostalCode exposes the per-country normalization so callers can store
// the cleaned form they validated.
func CleanPostalCode(code, country string) string {
	return cleanPostalCode(strings.TrimSpace(code), strings.ToUpper(strings.TrimSpace(country)))
}

func cleanPostalCode(code, country string) string {
	clean := invisibleChars.ReplaceAllString(code, "")

	switch {
	case postalNumericOnly[country]:
		clean = nonDigits.ReplaceAllString(clean, "")
	case postalDigitsAndHyphen[country]:
		clean = nonDigitsHyphen.ReplaceAllString(clean, "")
	case postalAlnumAndSpace[country]:
		clean = strings.ToUpper(clean)
		clean = innerWhitespace.ReplaceAllString(clean, " ")
		clean = nonAlnumSpace.ReplaceAllString(clean, "")
		clean = strings.TrimSpace(clean)
	case postalAlnumOnly[country]:
		clean = strings.ToUpper(clean)
		clean = nonAlnum.ReplaceAllString(clean, "")
	}

	return clean
}
