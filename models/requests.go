package models

type DocumentValidationRequest struct {
	Number       string       `json:"number"`
	DocumentType DocumentType `json:"document_type"`
	Country      string       `json:"country"`
}

type PhoneValidationRequest struct {
	Number  string `json:"number"`
	Country string `json:"country"`
}

type PostalCodeValidationRequest struct {
	Code    string `json:"code"`
	Country string `json:"country"`
}

type BirthDateValidationRequest struct {
	Date string `json:"date"`
}

type ReconcileCityRequest struct {
	Value string `json:"value"`
}

// StartWizardRequest opens a wizard session. Traveler is only set when the
// flow edits an existing traveler, in which case the draft is pre-populated
// and the id is retained for the eventual submit.
type StartWizardRequest struct {
	Traveler *Traveler `json:"traveler,omitempty"`
}

// WizardCommandRequest drives an open wizard session. Field and Value are
// only used by the field-update endpoint.
type WizardCommandRequest struct {
	SessionId string `json:"session_id"`
	Nonce     string `json:"nonce"`
	Field     string `json:"field,omitempty"`
	Value     string `json:"value,omitempty"`
}
