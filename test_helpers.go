package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"go-traveler-registry/models"
)

var testConfig = ServerConfig{
	Host:           "localhost",
	Port:           8081,
	UseTls:         false,
	TlsCertPath:    "",
	TlsPrivKeyPath: "",
}

type fakeReceiptCreator struct {
	receipt string
	err     error
}

func (f fakeReceiptCreator) CreateRegistrationReceipt(traveler models.Traveler) (string, error) {
	return f.receipt, f.err
}

func startTestServer(t *testing.T, storage SessionStorage) *Server {
	t.Helper()

	testState := &ServerState{
		sessionStorage: storage,
		receiptCreator: fakeReceiptCreator{receipt: "test-receipt"},
	}

	srv, err := NewServer(testState, testConfig)
	require.NoError(t, err)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			t.Errorf("server error: %v", err)
		}
	}()

	waitUntilHealthy(t, "http://localhost:8081/api/health")
	t.Cleanup(func() {
		if err := srv.Stop(); err != nil {
			t.Logf("error shutting down server: %v", err)
		}
	})
	return srv
}

func waitUntilHealthy(t *testing.T, url string) {
	t.Helper()
	const maxAttempts = 50
	for i := 0; i < maxAttempts; i++ {
		if resp, err := http.Get(url); err == nil {
			_ = resp.Body.Close()
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("server did not start in time")
}

func postJSON[T any](t *testing.T, url string, payload any) (*http.Response, []byte, *T) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(b)
	}
	resp, err := http.Post(url, "application/json", body)
	require.NoError(t, err)

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	var v T
	_ = json.Unmarshal(respBody, &v)

	return resp, respBody, &v
}

func mustStatus(t *testing.T, resp *http.Response, want int, body []byte) {
	t.Helper()
	require.Equalf(t, want, resp.StatusCode, "body: %s", body)
}

// wizard bootstrap
func startWizard(t *testing.T, payload any) (sessionId, nonce string) {
	t.Helper()
	resp, body, sr := postJSON[StartWizardResponse](t, "http://localhost:8081/api/wizard/start", payload)
	mustStatus(t, resp, http.StatusOK, body)
	require.NotEmpty(t, sr.SessionId)
	require.NotEmpty(t, sr.Nonce)
	return sr.SessionId, sr.Nonce
}

func setField(t *testing.T, sessionId, nonce string, field, value string) *WizardStepResponse {
	t.Helper()
	req := models.WizardCommandRequest{SessionId: sessionId, Nonce: nonce, Field: field, Value: value}
	resp, body, sr := postJSON[WizardStepResponse](t, "http://localhost:8081/api/wizard/field", req)
	mustStatus(t, resp, http.StatusOK, body)
	return sr
}

func wizardNext(t *testing.T, sessionId, nonce string) *WizardStepResponse {
	t.Helper()
	req := models.WizardCommandRequest{SessionId: sessionId, Nonce: nonce}
	resp, body, sr := postJSON[WizardStepResponse](t, "http://localhost:8081/api/wizard/next", req)
	mustStatus(t, resp, http.StatusOK, body)
	return sr
}

// fillValidStep pushes a complete set of values for one step through the
// field endpoint.
func fillValidStep(t *testing.T, sessionId, nonce string, values map[string]string) {
	t.Helper()
	for field, value := range values {
		setField(t, sessionId, nonce, field, value)
	}
}

func validPersonalFields() map[string]string {
	return map[string]string{
		"given_name":      "Carmen",
		"first_surname":   "García",
		"second_surname":  "Pérez",
		"nationality":     "ES",
		"gender":          "F",
		"document_type":   "national-id",
		"document_number": "12345678Z",
		"birth_date":      "1988-04-12",
	}
}

func validAddressFields() map[string]string {
	return map[string]string{
		"city":              "Málaga",
		"municipality_code": "29067",
		"postal_code":       "29001",
		"street_address":    "Calle Larios 4",
	}
}

func validContactFields() map[string]string {
	return map[string]string{
		"email":         "carmen@example.com",
		"phone_country": "ES",
		"phone_number":  "612345678",
	}
}
