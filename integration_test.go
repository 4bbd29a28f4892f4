package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"go-traveler-registry/models"
)

func TestWizardFullFlow_Success_RemovesSession(t *testing.T) {
	storage := NewInMemorySessionStorage()
	startTestServer(t, storage)

	session, nonce := startWizard(t, nil)

	fillValidStep(t, session, nonce, validPersonalFields())
	step := wizardNext(t, session, nonce)
	require.True(t, step.Advanced)
	require.Equal(t, "residence", step.Step)

	setField(t, session, nonce, "residence_country", "ES")
	step = wizardNext(t, session, nonce)
	require.True(t, step.Advanced)
	require.Equal(t, "address", step.Step)

	fillValidStep(t, session, nonce, validAddressFields())
	step = wizardNext(t, session, nonce)
	require.True(t, step.Advanced)
	require.Equal(t, "contact", step.Step)

	fillValidStep(t, session, nonce, validContactFields())

	req := models.WizardCommandRequest{SessionId: session, Nonce: nonce}
	resp, body, sr := postJSON[WizardSubmitResponse](t, "http://localhost:8081/api/wizard/submit", req)
	mustStatus(t, resp, http.StatusOK, body)
	require.Equal(t, "test-receipt", sr.Receipt)
	require.Equal(t, "Carmen", sr.Traveler.GivenName)
	require.Equal(t, "", sr.Traveler.Id)

	_, err := storage.RetrieveSession(session)
	require.Error(t, err) // removed
}

func TestWizardSubmit_Fail_BeforeContactStep(t *testing.T) {
	storage := NewInMemorySessionStorage()
	startTestServer(t, storage)

	session, nonce := startWizard(t, nil)

	req := models.WizardCommandRequest{SessionId: session, Nonce: nonce}
	resp, body, _ := postJSON[map[string]any](t, "http://localhost:8081/api/wizard/submit", req)
	mustStatus(t, resp, http.StatusConflict, body)
}

func TestWizardNext_InvalidStep_ReportsFieldErrors(t *testing.T) {
	storage := NewInMemorySessionStorage()
	startTestServer(t, storage)

	session, nonce := startWizard(t, nil)

	step := wizardNext(t, session, nonce)
	require.False(t, step.Advanced)
	require.Equal(t, "personal", step.Step)
	require.NotEmpty(t, step.Errors["given_name"])
	require.NotEmpty(t, step.Errors["document_number"])
}

func TestWizard_Fail_BadNonce(t *testing.T) {
	storage := NewInMemorySessionStorage()
	startTestServer(t, storage)

	session, _ := startWizard(t, nil)

	req := models.WizardCommandRequest{SessionId: session, Nonce: "bad-nonce"}
	resp, body, _ := postJSON[map[string]any](t, "http://localhost:8081/api/wizard/next", req)
	mustStatus(t, resp, http.StatusBadRequest, body)
}

func TestWizard_Fail_UnknownSession(t *testing.T) {
	storage := NewInMemorySessionStorage()
	startTestServer(t, storage)

	req := models.WizardCommandRequest{SessionId: "no-such-session", Nonce: "n"}
	resp, body, _ := postJSON[map[string]any](t, "http://localhost:8081/api/wizard/field", req)
	mustStatus(t, resp, http.StatusBadRequest, body)
}

func TestWizard_Fail_UnknownField(t *testing.T) {
	storage := NewInMemorySessionStorage()
	startTestServer(t, storage)

	session, nonce := startWizard(t, nil)

	req := models.WizardCommandRequest{SessionId: session, Nonce: nonce, Field: "shoe_size", Value: "44"}
	resp, body, _ := postJSON[map[string]any](t, "http://localhost:8081/api/wizard/field", req)
	mustStatus(t, resp, http.StatusBadRequest, body)
}

func TestWizardStart_EditMode_KeepsTravelerId(t *testing.T) {
	storage := NewInMemorySessionStorage()
	startTestServer(t, storage)

	existing := models.Traveler{Id: "traveler-42"}
	existing.GivenName = "Carmen"
	existing.FirstSurname = "García"
	existing.SecondSurname = "Pérez"
	existing.Nationality = "ES"
	existing.Gender = "F"
	existing.DocumentType = models.DocumentTypeNationalID
	existing.DocumentNumber = "12345678Z"
	existing.BirthDate = "1988-04-12"
	existing.ResidenceCountry = "ES"
	existing.City = "Málaga"
	existing.PostalCode = "29001"
	existing.StreetAddress = "Calle Larios 4"
	existing.Email = "carmen@example.com"
	existing.PhoneCountry = "ES"
	existing.PhoneNumber = "612345678"

	session, nonce := startWizard(t, models.StartWizardRequest{Traveler: &existing})

	// the draft is pre-populated, so every step passes without edits
	for i := 0; i < 3; i++ {
		step := wizardNext(t, session, nonce)
		require.True(t, step.Advanced)
	}

	req := models.WizardCommandRequest{SessionId: session, Nonce: nonce}
	resp, body, sr := postJSON[WizardSubmitResponse](t, "http://localhost:8081/api/wizard/submit", req)
	mustStatus(t, resp, http.StatusOK, body)
	require.Equal(t, "traveler-42", sr.Traveler.Id)
}

func TestWizardBack_FromResidence(t *testing.T) {
	storage := NewInMemorySessionStorage()
	startTestServer(t, storage)

	session, nonce := startWizard(t, nil)

	fillValidStep(t, session, nonce, validPersonalFields())
	step := wizardNext(t, session, nonce)
	require.Equal(t, "residence", step.Step)

	req := models.WizardCommandRequest{SessionId: session, Nonce: nonce}
	resp, body, sr := postJSON[WizardStepResponse](t, "http://localhost:8081/api/wizard/back", req)
	mustStatus(t, resp, http.StatusOK, body)
	require.True(t, sr.Advanced)
	require.Equal(t, "personal", sr.Step)
}

func TestValidateDocumentEndpoint(t *testing.T) {
	startTestServer(t, NewInMemorySessionStorage())

	req := models.DocumentValidationRequest{Number: "12345678Z", DocumentType: models.DocumentTypeNationalID, Country: "ES"}
	resp, body, res := postJSON[models.ValidationResult](t, "http://localhost:8081/api/validate-document", req)
	mustStatus(t, resp, http.StatusOK, body)
	require.True(t, res.Valid)

	req.Number = "12345678A"
	resp, body, res = postJSON[models.ValidationResult](t, "http://localhost:8081/api/validate-document", req)
	mustStatus(t, resp, http.StatusOK, body)
	require.False(t, res.Valid)
}

func TestMunicipalitySearchEndpoint(t *testing.T) {
	startTestServer(t, NewInMemorySessionStorage())

	resp, err := http.Get("http://localhost:8081/api/municipalities/search?q=malaga")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestReconcileCityEndpoint(t *testing.T) {
	startTestServer(t, NewInMemorySessionStorage())

	req := models.ReconcileCityRequest{Value: "malaga"}
	resp, body, rr := postJSON[ReconcileCityResponse](t, "http://localhost:8081/api/municipalities/reconcile", req)
	mustStatus(t, resp, http.StatusOK, body)
	require.True(t, rr.Matched)
	require.Equal(t, "Málaga", rr.Municipality.Name)
	require.Equal(t, "29067", rr.Municipality.Code)
}

func TestValidatorEndpoints_RejectGET(t *testing.T) {
	startTestServer(t, NewInMemorySessionStorage())

	resp, err := http.Get("http://localhost:8081/api/validate-phone")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
