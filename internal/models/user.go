package models

// User is an account record. FHIRPatientID links the account to a patient on
// the external FHIR server and may be absent.
type User struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	Username       string  `gorm:"uniqueIndex;not null" json:"username"`
	HashedPassword string  `gorm:"not null" json:"-"`
	FHIRPatientID  *string `json:"fhir_patient_id,omitempty"`
}
