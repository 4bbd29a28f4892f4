package models

// ValidationResult is the outcome of any field validator. Malformed input is
// always reported through a negative result, never through an error return.
type ValidationResult struct {
	Valid bool `json:"valid"`
	// Message is a human-readable reason, only set when Valid is false.
	Message string `json:"message,omitempty"`
	// Example suggests a correctly formatted value for the same country/type.
	Example string `json:"example,omitempty"`
	// Formatted is the canonical international representation, only set by
	// the phone validator on success.
	Formatted string `json:"formatted,omitempty"`
	// Age is the derived whole-year age, only set by the birth date
	// validator on success.
	Age *int `json:"age,omitempty"`
}

func ValidResult() ValidationResult {
	return ValidationResult{Valid: true}
}

func InvalidResult(message string) ValidationResult {
	return ValidationResult{Valid: false, Message: message}
}

func InvalidResultWithExample(message, example string) ValidationResult {
	return ValidationResult{Valid: false, Message: message, Example: example}
}
