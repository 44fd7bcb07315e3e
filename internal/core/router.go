package core

import (
	"net/http"

	"diatrack.example/go-diatrack/internal/auth"
	"diatrack.example/go-diatrack/internal/fhir"
	"diatrack.example/go-diatrack/internal/readings"
	"diatrack.example/go-diatrack/pkg/httpx"
	"diatrack.example/go-diatrack/pkg/logger"
)

// NewHandler assembles the full route table. Public routes: the welcome
// endpoint and token issuance. Everything else sits behind the bearer
// middleware.
func NewHandler(
	authService *auth.AuthService,
	authHandler *auth.AuthHandler,
	readingsHandler *readings.Handler,
	fhirHandler *fhir.Handler,
	log logger.Logger,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Diabetes tracker API is running"})
	})
	mux.HandleFunc("POST /token", authHandler.Token)

	protected := auth.Middleware(authService, log)
	// The original API exposes /add_data/ with a trailing slash; accept both.
	mux.Handle("POST /add_data", protected(http.HandlerFunc(readingsHandler.AddData)))
	mux.Handle("POST /add_data/{$}", protected(http.HandlerFunc(readingsHandler.AddData)))
	mux.Handle("GET /get_data/{user_id}", protected(http.HandlerFunc(readingsHandler.GetData)))
	mux.Handle("GET /fhir/patient_data", protected(http.HandlerFunc(fhirHandler.PatientData)))

	return CORS(logger.Middleware(log)(mux))
}
