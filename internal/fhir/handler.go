package fhir

import (
	"errors"
	"net/http"

	"diatrack.example/go-diatrack/internal/auth"
	"diatrack.example/go-diatrack/pkg/httpx"
	"diatrack.example/go-diatrack/pkg/logger"
)

type Handler struct {
	client *Client
	log    logger.Logger
}

func NewHandler(client *Client, log logger.Logger) *Handler {
	return &Handler{client: client, log: log}
}

// PatientData handles GET /fhir/patient_data. It requires the authenticated
// user to have a linked FHIR patient id; the check happens before any network
// traffic.
func (h *Handler) PatientData(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}
	if user.FHIRPatientID == nil || *user.FHIRPatientID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "No FHIR Patient ID associated with this user")
		return
	}

	readings, err := h.client.GlucoseObservations(r.Context(), *user.FHIRPatientID)
	if err != nil {
		if errors.Is(err, ErrNoData) {
			httpx.WriteError(w, http.StatusNotFound, "No readings available.")
			return
		}
		h.log.Error(r.Context(), "failed to normalize fhir response", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, readings)
}
