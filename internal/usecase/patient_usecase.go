package usecase

import (
	"context"
	"errors"

	"patient-vitals-service/internal/converter"
	"patient-vitals-service/internal/delivery/dto"
	"patient-vitals-service/internal/domain/entity"
	"patient-vitals-service/internal/domain/repository"
	"patient-vitals-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientIDAlreadyExists = errors.New("patient ID already exists")
	ErrPatientNotFound        = errors.New("patient record not found")
	ErrNotRecordOwner         = errors.New("record belongs to another user")
)

type PatientUsecase interface {
	AddPatient(ctx context.Context, ownerID uuid.UUID, req *dto.AddPatientRequest) (*dto.PatientResponse, error)
	ListPatients(ctx context.Context, ownerID uuid.UUID, search string) (*dto.PatientListResponse, error)
	DeletePatient(ctx context.Context, recordID int64, requesterID uuid.UUID) error
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

// AddPatient inserts a new vital-sign record for ownerID. The patient_id
// unique index spans the whole table, so a clash with any user's record
// fails the insert and leaves state unchanged.
func (u *patientUsecase) AddPatient(ctx context.Context, ownerID uuid.UUID, req *dto.AddPatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient := &entity.Patient{
		UserID:        ownerID,
		PatientID:     req.PatientID,
		Name:          req.Name,
		BloodPressure: req.BloodPressure,
		HeartRate:     req.HeartRate,
		Height:        req.Height,
		Weight:        req.Weight,
		Waist:         req.Waist,
		Smoking:       req.Smoking,
		Drinking:      req.Drinking,
		Exercise:      req.Exercise,
		Note:          req.Note,
	}

	if err := u.patientRepo.Create(tx, patient); err != nil {
		if isDuplicateKeyError(err, "patient_id") {
			return nil, ErrPatientIDAlreadyExists
		}
		u.log.Warnf("Failed to create patient record: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &ownerID, entity.AuditActionPatientCreate, "patient", patient.PatientID, map[string]interface{}{
		"patient_id": patient.PatientID,
		"name":       patient.Name,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) ListPatients(ctx context.Context, ownerID uuid.UUID, search string) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindByOwner(u.db.WithContext(ctx), ownerID, search)
	if err != nil {
		u.log.Warnf("Failed to list patient records: %+v", err)
		return nil, err
	}

	return converter.PatientsToListResponse(patients), nil
}

// DeletePatient removes a record permanently. Only the owning user may
// delete it; a mismatch leaves the row untouched.
func (u *patientUsecase) DeletePatient(ctx context.Context, recordID int64, requesterID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, recordID)
	if err != nil {
		u.log.Warnf("Failed to find patient record: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}
	if patient.UserID != requesterID {
		return ErrNotRecordOwner
	}

	affected, err := u.patientRepo.Delete(tx, recordID)
	if err != nil {
		u.log.Warnf("Failed to delete patient record: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &requesterID, entity.AuditActionPatientDelete, "patient", patient.PatientID, map[string]interface{}{
		"patient_id": patient.PatientID,
		"name":       patient.Name,
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
