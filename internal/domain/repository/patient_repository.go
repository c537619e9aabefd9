package repository

import (
	"patient-vitals-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id int64) (*entity.Patient, error)
	FindByOwner(db *gorm.DB, ownerID uuid.UUID, search string) ([]entity.Patient, error)
	Delete(db *gorm.DB, id int64) (int64, error)
}
