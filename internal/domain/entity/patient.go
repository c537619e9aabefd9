package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a single vital-sign record owned by a user.
// PatientID is the external-facing identifier and is unique across the
// whole table, not just per owner.
type Patient struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	PatientID     string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"patient_id"`
	Name          string    `gorm:"type:varchar(100);not null" json:"name"`
	BloodPressure string    `gorm:"type:varchar(20);not null" json:"blood_pressure"`
	HeartRate     string    `gorm:"type:varchar(20);not null" json:"heart_rate"`
	Height        float64   `gorm:"not null" json:"height"`
	Weight        float64   `gorm:"not null" json:"weight"`
	Waist         float64   `gorm:"not null" json:"waist"`
	Smoking       string    `gorm:"type:varchar(10);not null" json:"smoking"`
	Drinking      string    `gorm:"type:varchar(10);not null" json:"drinking"`
	Exercise      string    `gorm:"type:varchar(10);not null" json:"exercise"`
	Note          string    `gorm:"type:text" json:"note,omitempty"`
	DateAdded     time.Time `gorm:"column:date_added;autoCreateTime" json:"date_added"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Lifestyle flag values
const (
	LifestyleYes = "Yes"
	LifestyleNo  = "No"
)
