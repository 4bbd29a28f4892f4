package validation

import (
	"regexp"
	"strconv"
	"strings"

	"go-traveler-registry/models"
)

// documentPattern couples the matching rule for one (country, document type)
// combination with the example shown to the user on a mismatch.
type documentPattern struct {
	pattern *regexp.Regexp
	example string
}

// Registered per-country, per-type formats. Combinations missing from this
// table fall back to the length + plausibility heuristic below, so every
// input reaches a decision.
var documentPatterns = map[string]map[models.DocumentType]documentPattern{
	"ES": {
		models.DocumentTypePassport: {
			pattern: regexp.MustCompile(`^[A-Z]{2,3}[0-9]{6}$`),
			example: "PAB123456",
		},
		models.DocumentTypeNationalID: {
			pattern: regexp.MustCompile(`^[0-9]{8}[A-Z]$`),
			example: "12345678Z",
		},
		models.DocumentTypeForeignResidentID: {
			pattern: regexp.MustCompile(`^[XYZ][0-9]{7}[A-Z]$`),
			example: "X1234567L",
		},
	},
}

// Check-letter alphabet for the Spanish DNI and NIE schemes, indexed by the
// numeric payload modulo 23.
const checkLetterAlphabet = "TRWAGMYFPDXBNJZSQVHLCKE"

// NIE numbers start with X, Y or Z, which stand in for a leading 0, 1 or 2
// when computing the check letter.
var nieLeadingDigit = map[byte]byte{'X': '0', 'Y': '1', 'Z': '2'}

const (
	msgDocumentRequired    = "document number is required"
	msgDocumentTooShort    = "document number is too short"
	msgDocumentTooLong     = "document number is too long"
	msgDocumentImplausible = "document number does not look correct"
	msgDocumentFormat      = "document number does not match the expected format"
	msgCheckLetter         = "document check letter is incorrect"
)

// CleanDocumentNumber strips surrounding whitespace and internal spaces and
// hyphens, and upper-cases the rest for matching.
func CleanDocumentNumber(number string) string {
	clean := strings.TrimSpace(number)
	clean = strings.ReplaceAll(clean, " ", "")
	clean = strings.ReplaceAll(clean, "-", "")
	return strings.ToUpper(clean)
}

// ValidateDocument validates a document number against the format registered
// for the given country and document type. The "other" type and unregistered
// combinations go through a permissive fallback instead of being rejected.
func ValidateDocument(number string, docType models.DocumentType, country string) models.ValidationResult {
	clean := CleanDocumentNumber(number)
	if clean == "" {
		return models.InvalidResult(msgDocumentRequired)
	}

	registered, ok := documentPatterns[strings.ToUpper(country)][docType]
	if docType == models.DocumentTypeOther || !ok {
		return validateUncatalogued(clean)
	}

	if !registered.pattern.MatchString(clean) {
		return models.InvalidResultWithExample(msgDocumentFormat, registered.example)
	}

	switch docType {
	case models.DocumentTypeNationalID, models.DocumentTypeForeignResidentID:
		if !checkLetterValid(clean) {
			return models.InvalidResult(msgCheckLetter)
		}
	}

	return models.ValidResult()
}

// validateUncatalogued handles document types with no registered format:
// anything of a sane length that does not trip the fabrication heuristic
// is accepted.
func validateUncatalogued(clean string) models.ValidationResult {
	if len(clean) < 5 {
		return models.InvalidResult(msgDocumentTooShort)
	}
	if len(clean) > 20 {
		return models.InvalidResult(msgDocumentTooLong)
	}
	if !SeemsValidDocument(clean) {
		return models.InvalidResult(msgDocumentImplausible)
	}
	return models.ValidResult()
}

// checkLetterValid verifies the trailing mod-23 check letter of a DNI or NIE
// number that already matched its format pattern.
func checkLetterValid(clean string) bool {
	payload := clean[:len(clean)-1]
	if digit, ok := nieLeadingDigit[payload[0]]; ok {
		payload = string(digit) + payload[1:]
	}

	n, err := strconv.Atoi(payload)
	if err != nil {
		return false
	}

	return checkLetterAlphabet[n%23] == clean[len(clean)-1]
}
