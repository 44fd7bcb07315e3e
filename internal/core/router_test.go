package core

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"diatrack.example/go-diatrack/internal/auth"
	"diatrack.example/go-diatrack/internal/fhir"
	"diatrack.example/go-diatrack/internal/models"
	"diatrack.example/go-diatrack/internal/readings"
	"diatrack.example/go-diatrack/internal/repository"
	"diatrack.example/go-diatrack/pkg/logger"
	"github.com/stretchr/testify/require"
)

// newTestAPI stands up the full route table on in-memory repositories, with
// the FHIR bridge pointed at the given base URL.
func newTestAPI(t *testing.T, fhirBaseURL string) *httptest.Server {
	t.Helper()

	log := logger.NewNop()
	userRepo := repository.NewInMemoryUserRepository()
	readingRepo := repository.NewInMemoryReadingRepository()

	authService, err := auth.NewAuthService(userRepo, "test-secret", 15*time.Minute, 30*time.Minute)
	require.NoError(t, err)
	require.NoError(t, authService.EnsureSeedUser(context.Background()))

	handler := NewHandler(
		authService,
		auth.NewAuthHandler(authService, log),
		readings.NewHandler(readingRepo, log),
		fhir.NewHandler(fhir.NewClient(fhirBaseURL, log), log),
		log,
	)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func obtainToken(t *testing.T, srv *httptest.Server, username, password string) string {
	t.Helper()

	form := url.Values{"username": {username}, "password": {password}}
	resp, err := http.PostForm(srv.URL+"/token", form)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "bearer", body.TokenType)
	require.NotEmpty(t, body.AccessToken)
	return body.AccessToken
}

func doJSON(t *testing.T, method, target, token string, payload []byte) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, target, bytes.NewReader(payload))
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestRoot_Public(t *testing.T) {
	t.Parallel()

	srv := newTestAPI(t, "http://unused.invalid")

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body["message"])
}

func TestEndToEnd_LoginAddGet(t *testing.T) {
	t.Parallel()

	srv := newTestAPI(t, "http://unused.invalid")
	token := obtainToken(t, srv, "testuser", "testpassword")

	payload := []byte(`{"user_id":"testuser","blood_sugar":110.5,"meal_info":"Breakfast","medication_dose":2.0,"timestamp":"2025-01-01T08:00:00"}`)
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/add_data/", token, payload)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), "Data added successfully")

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/get_data/testuser", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []models.Reading
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list, 1)
	require.Equal(t, "testuser", list[0].UserID)
	require.Equal(t, 110.5, list[0].BloodSugar)
	require.Equal(t, "Breakfast", list[0].MealInfo)
	require.Equal(t, 2.0, list[0].MedicationDose)
	require.Equal(t, "2025-01-01T08:00:00", list[0].Timestamp)

	// a different user id sees the informational payload, not the reading
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/get_data/someone_else", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var msg map[string]string
	require.NoError(t, json.Unmarshal(body, &msg))
	require.Equal(t, "No local data for user.", msg["message"])
}

func TestProtectedEndpoints_RejectBadTokens(t *testing.T) {
	t.Parallel()

	srv := newTestAPI(t, "http://unused.invalid")
	token := obtainToken(t, srv, "testuser", "testpassword")
	tampered := token + "x"

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/add_data/"},
		{http.MethodGet, "/get_data/testuser"},
		{http.MethodGet, "/fhir/patient_data"},
	}
	for _, p := range paths {
		resp, _ := doJSON(t, p.method, srv.URL+p.path, "", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode, "%s %s without token", p.method, p.path)

		resp, body := doJSON(t, p.method, srv.URL+p.path, tampered, nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode, "%s %s with tampered token", p.method, p.path)
		require.Contains(t, string(body), "Could not validate credentials")
	}
}

func TestFHIRPatientData_ThroughRouter(t *testing.T) {
	t.Parallel()

	fhirSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "622898", r.URL.Query().Get("patient"))
		w.Write([]byte(`{"entry":[{"resource":{"valueQuantity":{"value":5.8,"unit":"mmol/L"},"effectiveDateTime":"2024-06-01T08:00:00Z"}}]}`))
	}))
	defer fhirSrv.Close()

	srv := newTestAPI(t, fhirSrv.URL)
	token := obtainToken(t, srv, "testuser", "testpassword")

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/fhir/patient_data", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []fhir.GlucoseReading
	require.NoError(t, json.Unmarshal(body, &got))
	require.Len(t, got, 1)
	require.Equal(t, 5.8, got[0].Value)
}

func TestCORS_Preflight(t *testing.T) {
	t.Parallel()

	srv := newTestAPI(t, "http://unused.invalid")

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/add_data/", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
