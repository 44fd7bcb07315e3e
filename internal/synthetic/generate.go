// Package synthetic generates plausible demo readings shared by the seed and
// replay commands.
package synthetic

import (
	"math"
	"math/rand/v2"
	"time"

	"diatrack.example/go-diatrack/internal/models"
)

var meals = []string{"Breakfast", "Lunch", "Dinner", "Snack"}

// Readings produces one reading every 1-5 days between start and end,
// inclusive of start. Blood sugar lands in 70-150, medication dose in 0-10,
// both rounded to two decimals; the timestamp format matches what real
// clients submit.
func Readings(userID string, start, end time.Time) []models.Reading {
	var series []models.Reading
	current := start
	for !current.After(end) {
		series = append(series, models.Reading{
			UserID:         userID,
			BloodSugar:     round2(70 + rand.Float64()*80),
			MealInfo:       meals[rand.IntN(len(meals))],
			MedicationDose: round2(rand.Float64() * 10),
			Timestamp:      current.Format("2006-01-02T15:04:05"),
		})
		current = current.AddDate(0, 0, 1+rand.IntN(5))
	}
	return series
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
