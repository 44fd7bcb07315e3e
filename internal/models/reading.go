package models

// Reading is one self-reported diabetes observation. UserID is the
// caller-supplied owner string, not a foreign key, and Timestamp is stored
// exactly as submitted.
type Reading struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	UserID         string  `gorm:"index" json:"user_id"`
	BloodSugar     float64 `json:"blood_sugar"`
	MealInfo       string  `json:"meal_info"`
	MedicationDose float64 `json:"medication_dose"`
	Timestamp      string  `json:"timestamp"`
}
