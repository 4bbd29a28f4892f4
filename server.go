package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"go-traveler-registry/gazetteer"
	"go-traveler-registry/models"
	"go-traveler-registry/validation"
	"go-traveler-registry/wizard"
)

const ErrorInternal = "error:internal"
const ERR_MARSHAL = "failed to marshal response message"
const ERR_FAILED_BODY_CLOSE = "failed to close request body: %v"
const ERR_RECEIPT_CREATION = "failed to create registration receipt"
const ERR_SESSION_REMOVAL = "failed to remove wizard session from storage"
const ERR_SESSION_RETRIEVAL = "failed to get wizard session from storage"
const ERR_SESSION_STORE = "failed to store wizard session"
const ERR_INVALID_NONCE_SESSION = "invalid session or nonce"
const ERR_UNKNOWN_FIELD = "unknown wizard field"
const ERR_SUBMIT_NOT_FINAL = "submit is only allowed from the contact step"

type ServerConfig struct {
	Host           string `json:"host"`
	Port           int    `json:"port"`
	UseTls         bool   `json:"use_tls,omitempty"`
	TlsPrivKeyPath string `json:"tls_priv_key_path,omitempty"`
	TlsCertPath    string `json:"tls_cert_path,omitempty"`
}

type ServerState struct {
	sessionStorage SessionStorage
	receiptCreator ReceiptCreator
}

type SpaHandler struct {
	staticPath string
	indexPath  string
}

type Server struct {
	server *http.Server
	config ServerConfig
}

func (s *Server) ListenAndServe() error {
	if s.config.UseTls {
		slog.Info("Starting server with TLS", "host", s.config.Host, "port", s.config.Port, "cert", s.config.TlsCertPath, "key", s.config.TlsPrivKeyPath)
		return s.server.ListenAndServeTLS(s.config.TlsCertPath, s.config.TlsPrivKeyPath)
	} else {
		slog.Info("Starting server without TLS", "host", s.config.Host, "port", s.config.Port)
		return s.server.ListenAndServe()
	}
}

func (s *Server) Stop() error {
	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := s.server.Shutdown(ctx)
	if err != nil {
		slog.Error("Error during server shutdown", "error", err)
	} else {
		slog.Info("Server shut down successfully")
	}
	return err
}

// ServeHTTP inspects the URL path to locate a file within the static dir
// on the SPA handler. If a file is found, it will be served. If not, the
// file located at the index path on the SPA handler will be served. This
// is suitable behavior for serving an SPA (single page application).
// https://github.com/gorilla/mux?tab=readme-ov-file#serving-single-page-applications
func (h SpaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slog.Debug("SPA handler serving request", "path", r.URL.Path)
	// Join internally call path.Clean to prevent directory traversal
	path := filepath.Join(h.staticPath, r.URL.Path)
	// check whether a file exists or is a directory at the given path
	fi, err := os.Stat(path)
	if os.IsNotExist(err) || fi.IsDir() {
		// file does not exist or path is a directory, serve index.html
		slog.Debug("Serving index.html for path", "path", r.URL.Path)
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}

	if err != nil {
		// if we got an error (that wasn't that the file doesn't exist) stating the
		// file, return a 500 internal server error and stop
		slog.Error("Error stating file", "path", path, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// otherwise, use http.FileServer to serve the static file
	slog.Debug("Serving static file", "path", path)
	http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
}

func NewServer(state *ServerState, config ServerConfig) (*Server, error) {
	slog.Info("Creating new server", "host", config.Host, "port", config.Port, "tls", config.UseTls)
	router := mux.NewRouter()

	router.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("Health check request received")
		err := json.NewEncoder(w).Encode(map[string]bool{"ok": true})
		if err != nil {
			slog.Error("failed to write body to http response", "error", err)
		}
	})

	router.HandleFunc("/api/validate-document", handleValidateDocument)
	router.HandleFunc("/api/validate-phone", handleValidatePhone)
	router.HandleFunc("/api/validate-postal-code", handleValidatePostalCode)
	router.HandleFunc("/api/validate-birth-date", handleValidateBirthDate)

	router.HandleFunc("/api/municipalities/search", handleSearchMunicipalities).Methods(http.MethodGet)
	router.HandleFunc("/api/municipalities/reconcile", handleReconcileCity)

	router.HandleFunc("/api/wizard/start", func(w http.ResponseWriter, r *http.Request) {
		handleStartWizard(state, w, r)
	})
	router.HandleFunc("/api/wizard/field", func(w http.ResponseWriter, r *http.Request) {
		handleWizardField(state, w, r)
	})
	router.HandleFunc("/api/wizard/next", func(w http.ResponseWriter, r *http.Request) {
		handleWizardNext(state, w, r)
	})
	router.HandleFunc("/api/wizard/back", func(w http.ResponseWriter, r *http.Request) {
		handleWizardBack(state, w, r)
	})
	router.HandleFunc("/api/wizard/submit", func(w http.ResponseWriter, r *http.Request) {
		handleWizardSubmit(state, w, r)
	})

	slog.Debug("Registered all API routes")

	spa := SpaHandler{staticPath: "../frontend/build", indexPath: "index.html"}
	router.PathPrefix("/").Handler(spa)

	addr := fmt.Sprintf("%v:%v", config.Host, config.Port)
	srv := &http.Server{
		Handler: router,
		Addr:    addr,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	slog.Info("Server created successfully", "address", addr)
	return &Server{
		server: srv,
		config: config,
	}, nil
}

// validator endpoints ---------------------------------------------------------

func handleValidateDocument(w http.ResponseWriter, r *http.Request) {
	defer closeRequestBody(r)

	if !requirePOST(w, r) {
		return
	}

	var request models.DocumentValidationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondWithErr(w, http.StatusBadRequest, "invalid request", "failed to decode document validation request", err)
		return
	}

	result := validation.ValidateDocument(request.Number, request.DocumentType, request.Country)
	slog.Debug("Document validated", "country", request.Country, "type", request.DocumentType, "valid", result.Valid)

	if err := writeJSON(w, http.StatusOK, result); err != nil {
		respondWithErr(w, http.StatusInternalServerError, ErrorInternal, ERR_MARSHAL, err)
	}
}

func handleValidatePhone(w http.ResponseWriter, r *http.Request) {
	defer closeRequestBody(r)

	if !requirePOST(w, r) {
		return
	}

	var request models.PhoneValidationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondWithErr(w, http.StatusBadRequest, "invalid request", "failed to decode phone validation request", err)
		return
	}

	result := validation.ValidatePhone(request.Number, request.Country)
	slog.Debug("Phone validated", "country", request.Country, "valid", result.Valid)

	if err := writeJSON(w, http.StatusOK, result); err != nil {
		respondWithErr(w, http.StatusInternalServerError, ErrorInternal, ERR_MARSHAL, err)
	}
}

func handleValidatePostalCode(w http.ResponseWriter, r *http.Request) {
	defer closeRequestBody(r)

	if !requirePOST(w, r) {
		return
	}

	var request models.PostalCodeValidationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondWithErr(w, http.StatusBadRequest, "invalid request", "failed to decode postal code validation request", err)
		return
	}

	result := validation.ValidatePostalCode(request.Code, request.Country)
	slog.Debug("Postal code validated", "country", request.Country, "valid", result.Valid)

	if err := writeJSON(w, http.StatusOK, result); err != nil {
		respondWithErr(w, http.StatusInternalServerError, ErrorInternal, ERR_MARSHAL, err)
	}
}

func handleValidateBirthDate(w http.ResponseWriter, r *http.Request) {
	defer closeRequestBody(r)

	if !requirePOST(w, r) {
		return
	}

	var request models.BirthDateValidationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondWithErr(w, http.StatusBadRequest, "invalid request", "failed to decode birth date validation request", err)
		return
	}

	result := validation.ValidateBirthDate(request.Date)
	slog.Debug("Birth date validated", "valid", result.Valid)

	if err := writeJSON(w, http.StatusOK, result); err != nil {
		respondWithErr(w, http.StatusInternalServerError, ErrorInternal, ERR_MARSHAL, err)
	}
}

// municipality endpoints ------------------------------------------------------

func handleSearchMunicipalities(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	results := gazetteer.Search(query, limit)
	if results == nil {
		results = []gazetteer.Municipality{}
	}
	slog.Debug("Municipality search", "query", query, "results", len(results))

	if err := writeJSON(w, http.StatusOK, results); err != nil {
		respondWithErr(w, http.StatusInternalServerError, ErrorInternal, ERR_MARSHAL, err)
	}
}

type ReconcileCityResponse struct {
	Matched      bool                    `json:"matched"`
	Municipality *gazetteer.Municipality `json:"municipality,omitempty"`
}

// handleReconcileCity resolves a city value that the frontend believes was
// written by autofill rather than typed, returning the canonical spelling
// and INE code when the gazetteer knows the place.
func handleReconcileCity(w http.ResponseWriter, r *http.Request) {
	defer closeRequestBody(r)

	if !requirePOST(w, r) {
		return
	}

	var request models.ReconcileCityRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondWithErr(w, http.StatusBadRequest, "invalid request", "failed to decode reconcile request", err)
		return
	}

	response := ReconcileCityResponse{}
	if m, ok := gazetteer.Reconcile(request.Value); ok {
		response.Matched = true
		response.Municipality = &m
	}
	slog.Debug("City reconciled", "value", request.Value, "matched", response.Matched)

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		respondWithErr(w, http.StatusInternalServerError, ErrorInternal, ERR_MARSHAL, err)
	}
}

// wizard endpoints ------------------------------------------------------------

type StartWizardResponse struct {
	SessionId string `json:"session_id"`
	Nonce     string `json:"nonce"`
}

type WizardStepResponse struct {
	Step     string            `json:"step"`
	Advanced bool              `json:"advanced"`
	Errors   map[string]string `json:"errors,omitempty"`
}

type WizardSubmitResponse struct {
	Traveler models.Traveler `json:"traveler"`
	Receipt  string          `json:"receipt"`
}

// sessionEnvelope is what actually sits in session storage: the wizard
// snapshot plus the nonce every follow-up call must present.
type sessionEnvelope struct {
	Nonce string       `json:"nonce"`
	State wizard.State `json:"state"`
}

func handleStartWizard(state *ServerState, w http.ResponseWriter, r *http.Request) {
	defer closeRequestBody(r)

	if !requirePOST(w, r) {
		return
	}

	slog.Info("Received request to start a traveler wizard session")

	// an empty body starts a fresh wizard
	var request models.StartWizardRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil && !errors.Is(err, io.EOF) {
		respondWithErr(w, http.StatusBadRequest, "invalid request", "failed to decode start wizard request", err)
		return
	}

	var wiz *wizard.Wizard
	if request.Traveler != nil {
		slog.Debug("Opening wizard in edit mode", "traveler_id", request.Traveler.Id)
		wiz = wizard.NewForEdit(*request.Traveler)
	} else {
		wiz = wizard.New()
	}

	sessionId := GenerateSessionId()
	if sessionId == "" {
		respondWithErr(w, http.StatusInternalServerError, ErrorInternal, "failed to generate session ID", fmt.Errorf("failed to generate session ID"))
		return
	}

	nonce, err := GenerateNonce(8)
	if err != nil {
		respondWithErr(w, http.StatusInternalServerError, ErrorInternal, "failed to generate nonce", err)
		return
	}

	if err := saveWizardSession(state.sessionStorage, sessionId, nonce, wiz); err != nil {
		respondWithErr(w, http.StatusInternalServerError, ErrorInternal, ERR_SESSION_STORE, err)
		return
	}

	response := StartWizardResponse{
		SessionId: sessionId,
		Nonce:     nonce,
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		respondWithErr(w, http.StatusInternalServerError, ErrorInternal, ERR_MARSHAL, err)
		return
	}

	slog.Info("Wizard session started", "session_id", sessionId)
}

func handleWizardField(state *ServerState, w http.ResponseWriter, r *http.Request) {
	wiz, request, ok := loadWizardRequest(state, w, r)
	if !ok {
		return
	}

	if !wiz.SetField(wizard.Field(request.Field), request.Value) {
		respondWithErr(w, http.StatusBadRequest, "invalid request", ERR_UNKNOWN_FIELD, fmt.Errorf("unknown field %q", request.Field))
		return
	}

	if err := saveWizardSession(state.sessionStorage, request.SessionId, request.Nonce, wiz); err != nil {
		respondWithErr(w, http.StatusInternalServerError, ErrorInternal, ERR_SESSION_STORE, err)
		return
	}

	writeStepResponse(w, wiz, false)
}

func handleWizardNext(state *ServerState, w http.ResponseWriter, r *http.Request) {
	wiz, request, ok := loadWizardRequest(state, w, r)
	if !ok {
		return
	}

	advanced := wiz.Next()
	slog.Debug("Wizard next", "session_id", request.SessionId, "step", wiz.Step(), "advanced", advanced)

	if err := saveWizardSession(state.sessionStorage, request.SessionId, request.Nonce, wiz); err != nil {
		respondWithErr(w, http.StatusInternalServerError, ErrorInternal, ERR_SESSION_STORE, err)
		return
	}

	writeStepResponse(w, wiz, advanced)
}

func handleWizardBack(state *ServerState, w http.ResponseWriter, r *http.Request) {
	wiz, request, ok := loadWizardRequest(state, w, r)
	if !ok {
		return
	}

	moved := wiz.Back()
	slog.Debug("Wizard back", "session_id", request.SessionId, "step", wiz.Step(), "moved", moved)

	if err := saveWizardSession(state.sessionStorage, request.SessionId, request.Nonce, wiz); err != nil {
		respondWithErr(w, http.StatusInternalServerError, ErrorInternal, ERR_SESSION_STORE, err)
		return
	}

	writeStepResponse(w, wiz, moved)
}

func handleWizardSubmit(state *ServerState, w http.ResponseWriter, r *http.Request) {
	wiz, request, ok := loadWizardRequest(state, w, r)
	if !ok {
		return
	}

	slog.Info("Received request to submit a traveler wizard session", "session_id", request.SessionId)

	traveler, err := wiz.Submit()
	if errors.Is(err, wizard.ErrNotAtContactStep) {
		// an integration bug in the caller, not a user-data problem
		respondWithErr(w, http.StatusConflict, ERR_SUBMIT_NOT_FINAL, ERR_SUBMIT_NOT_FINAL, err)
		return
	}
	if errors.Is(err, wizard.ErrStepInvalid) {
		if saveErr := saveWizardSession(state.sessionStorage, request.SessionId, request.Nonce, wiz); saveErr != nil {
			respondWithErr(w, http.StatusInternalServerError, ErrorInternal, ERR_SESSION_STORE, saveErr)
			return
		}
		writeStepResponse(w, wiz, false)
		return
	}
	if err != nil {
		respondWithErr(w, http.StatusInternalServerError, ErrorInternal, "failed to submit wizard", err)
		return
	}

	receipt, err := state.receiptCreator.CreateRegistrationReceipt(traveler)
	if err != nil {
		respondWithErr(w, http.StatusInternalServerError, ERR_RECEIPT_CREATION, ERR_RECEIPT_CREATION, err)
		return
	}

	if err := state.sessionStorage.RemoveSession(request.SessionId); err != nil {
		respondWithErr(w, http.StatusInternalServerError, ErrorInternal, ERR_SESSION_REMOVAL, err)
		return
	}

	response := WizardSubmitResponse{
		Traveler: traveler,
		Receipt:  receipt,
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		respondWithErr(w, http.StatusInternalServerError, ErrorInternal, ERR_MARSHAL, err)
		return
	}

	slog.Info("Traveler registration submitted", "session_id", request.SessionId, "edit", traveler.Id != "")
}

// -----------------------------------------------------------------------------------

// loadWizardRequest decodes a wizard command, checks the session nonce and
// rebuilds the wizard from storage. On failure it has already written the
// error response.
func loadWizardRequest(state *ServerState, w http.ResponseWriter, r *http.Request) (*wizard.Wizard, models.WizardCommandRequest, bool) {
	defer closeRequestBody(r)

	if !requirePOST(w, r) {
		return nil, models.WizardCommandRequest{}, false
	}

	var request models.WizardCommandRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondWithErr(w, http.StatusBadRequest, "invalid request", "failed to decode wizard request", err)
		return nil, request, false
	}

	wiz, err := loadWizardSession(state.sessionStorage, request.SessionId, request.Nonce)
	if err != nil {
		respondWithErr(w, http.StatusBadRequest, "invalid request", ERR_SESSION_RETRIEVAL, err)
		return nil, request, false
	}

	return wiz, request, true
}

func saveWizardSession(storage SessionStorage, sessionId, nonce string, wiz *wizard.Wizard) error {
	envelope := sessionEnvelope{
		Nonce: nonce,
		State: wiz.Snapshot(),
	}
	raw, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal wizard session: %w", err)
	}
	return storage.StoreSession(sessionId, string(raw))
}

// loadWizardSession validates session and nonce and rebuilds the wizard
func loadWizardSession(storage SessionStorage, sessionId, nonce string) (*wizard.Wizard, error) {
	slog.Debug("Validating session and nonce", "session_id", sessionId)
	raw, err := storage.RetrieveSession(sessionId)
	if err != nil {
		slog.Warn("Failed to retrieve session from storage", "session_id", sessionId, "error", err)
		return nil, fmt.Errorf("%s: %w", ERR_SESSION_RETRIEVAL, err)
	}

	var envelope sessionEnvelope
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		return nil, fmt.Errorf("unmarshal wizard session: %w", err)
	}

	if envelope.Nonce == "" || envelope.Nonce != nonce {
		slog.Warn("Invalid nonce or session", "session_id", sessionId, "nonce_empty", envelope.Nonce == "", "nonce_match", envelope.Nonce == nonce)
		return nil, fmt.Errorf("%s", ERR_INVALID_NONCE_SESSION)
	}

	return wizard.FromSnapshot(envelope.State), nil
}

func writeStepResponse(w http.ResponseWriter, wiz *wizard.Wizard, advanced bool) {
	errs := wiz.Errors()
	out := make(map[string]string, len(errs))
	for f, msg := range errs {
		out[string(f)] = msg
	}

	response := WizardStepResponse{
		Step:     string(wiz.Step()),
		Advanced: advanced,
		Errors:   out,
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		respondWithErr(w, http.StatusInternalServerError, ErrorInternal, ERR_MARSHAL, err)
	}
}

func GenerateSessionId() string {
	sessionId := make([]byte, 16)
	if _, err := rand.Read(sessionId); err != nil {
		slog.Error("failed to generate session ID", "error", err)
		return ""
	}
	hexId := fmt.Sprintf("%x", sessionId)
	slog.Debug("Session ID generated successfully", "session_id", hexId)
	return hexId
}

// GenerateNonce Generates a random nonce
func GenerateNonce(i int) (string, error) {
	nonce := make([]byte, i)
	if _, err := rand.Read(nonce); err != nil {
		slog.Error("failed to generate nonce", "error", err)
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	hexString := hex.EncodeToString(nonce)
	slog.Debug("Nonce generated successfully", "length", i)
	return hexString, nil
}

func respondWithErr(w http.ResponseWriter, code int, responseBody string, logMsg string, e error) {
	slog.Error(logMsg, "error", e, "status_code", code, "response_body", responseBody)
	w.WriteHeader(code)
	if _, err := w.Write([]byte(responseBody)); err != nil {
		slog.Error("failed to write body to http response", "error", err)
	}
}

// helpers ------------

func closeRequestBody(r *http.Request) {
	if err := r.Body.Close(); err != nil {
		slog.Error(fmt.Sprintf(ERR_FAILED_BODY_CLOSE, err))
	}

}

func requirePOST(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		slog.Debug("Non-POST request rejected", "method", r.Method, "path", r.URL.Path)
		respondWithErr(w, http.StatusMethodNotAllowed, "method not allowed", "invalid method", nil)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	slog.Debug("Writing JSON response", "status_code", status)
	payload, err := json.Marshal(v)
	if err != nil {
		slog.Error("Failed to marshal JSON payload", "error", err)
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(payload)
	if err != nil {
		slog.Error("failed to write body to http response", "error", err)
	} else {
		slog.Debug("JSON response written successfully", "status_code", status, "payload_size", len(payload))
	}
	return nil
}
