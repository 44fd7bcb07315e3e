// Package readings serves the local diabetes-data endpoints.
package readings

import (
	"encoding/json"
	"net/http"

	"diatrack.example/go-diatrack/internal/models"
	"diatrack.example/go-diatrack/internal/repository"
	"diatrack.example/go-diatrack/pkg/httpx"
	"diatrack.example/go-diatrack/pkg/logger"
)

type Handler struct {
	readings repository.ReadingRepository
	log      logger.Logger
}

func NewHandler(readings repository.ReadingRepository, log logger.Logger) *Handler {
	return &Handler{readings: readings, log: log}
}

type readingInput struct {
	UserID         string  `json:"user_id"`
	BloodSugar     float64 `json:"blood_sugar"`
	MealInfo       string  `json:"meal_info"`
	MedicationDose float64 `json:"medication_dose"`
	Timestamp      string  `json:"timestamp"`
}

// AddData handles POST /add_data/. The payload is persisted exactly as given:
// the embedded user_id is not checked against the authenticated identity, and
// values and timestamp are not validated. Existing clients depend on this.
func (h *Handler) AddData(w http.ResponseWriter, r *http.Request) {
	var input readingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	reading := &models.Reading{
		UserID:         input.UserID,
		BloodSugar:     input.BloodSugar,
		MealInfo:       input.MealInfo,
		MedicationDose: input.MedicationDose,
		Timestamp:      input.Timestamp,
	}
	if err := h.readings.Create(r.Context(), reading); err != nil {
		h.log.Error(r.Context(), "failed to store reading", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Data added successfully",
		"data":    reading,
	})
}

// GetData handles GET /get_data/{user_id}. An empty result set returns an
// informational message body, not an empty list; callers branch on the shape.
func (h *Handler) GetData(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")

	list, err := h.readings.FindByUserID(r.Context(), userID)
	if err != nil {
		h.log.Error(r.Context(), "failed to load readings", "error", err, "user_id", userID)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(list) == 0 {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "No local data for user."})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, list)
}
