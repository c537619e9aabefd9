package repository

import (
	"errors"

	"patient-vitals-service/internal/domain/entity"
	domainRepo "patient-vitals-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) FindByID(db *gorm.DB, id int64) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

// FindByOwner returns the records owned by ownerID in insertion order.
// A non-empty search narrows the result to rows whose patient_id or name
// contains it as a case-sensitive substring.
func (r *patientRepository) FindByOwner(db *gorm.DB, ownerID uuid.UUID, search string) ([]entity.Patient, error) {
	var patients []entity.Patient
	query := db.Where("user_id = ?", ownerID)
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("patient_id LIKE ? OR name LIKE ?", pattern, pattern)
	}
	err := query.Order("id ASC").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Patient{})
	return affected.RowsAffected, affected.Error
}
