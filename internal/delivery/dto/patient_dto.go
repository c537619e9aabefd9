package dto

import (
	"time"

	"github.com/google/uuid"
)

// AddPatientRequest carries the "add patient" dashboard form. Numeric
// fields are parsed once at the boundary; a parse failure aborts the
// whole creation before it reaches the usecase.
type AddPatientRequest struct {
	PatientID     string  `form:"patient_id" validate:"required,max=20"`
	Name          string  `form:"name" validate:"required,max=100"`
	BloodPressure string  `form:"blood_pressure" validate:"required,max=20"`
	HeartRate     string  `form:"heart_rate" validate:"required,max=20"`
	Height        float64 `form:"height" validate:"required,gt=0"`
	Weight        float64 `form:"weight" validate:"required,gt=0"`
	Waist         float64 `form:"waist" validate:"required,gt=0"`
	Smoking       string  `form:"smoking" validate:"required,oneof=Yes No"`
	Drinking      string  `form:"drinking" validate:"required,oneof=Yes No"`
	Exercise      string  `form:"exercise" validate:"required,oneof=Yes No"`
	Note          string  `form:"note" validate:"omitempty"`
}

type PatientResponse struct {
	ID            int64     `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	PatientID     string    `json:"patient_id"`
	Name          string    `json:"name"`
	BloodPressure string    `json:"blood_pressure"`
	HeartRate     string    `json:"heart_rate"`
	Height        float64   `json:"height"`
	Weight        float64   `json:"weight"`
	Waist         float64   `json:"waist"`
	Smoking       string    `json:"smoking"`
	Drinking      string    `json:"drinking"`
	Exercise      string    `json:"exercise"`
	Note          string    `json:"note,omitempty"`
	DateAdded     time.Time `json:"date_added"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
