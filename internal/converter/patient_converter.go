package converter

import (
	"patient-vitals-service/internal/delivery/dto"
	"patient-vitals-service/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to its response DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	return &dto.PatientResponse{
		ID:            patient.ID,
		UserID:        patient.UserID,
		PatientID:     patient.PatientID,
		Name:          patient.Name,
		BloodPressure: patient.BloodPressure,
		HeartRate:     patient.HeartRate,
		Height:        patient.Height,
		Weight:        patient.Weight,
		Waist:         patient.Waist,
		Smoking:       patient.Smoking,
		Drinking:      patient.Drinking,
		Exercise:      patient.Exercise,
		Note:          patient.Note,
		DateAdded:     patient.DateAdded,
	}
}

// PatientsToListResponse converts a slice of Patient entities to a list response
func PatientsToListResponse(patients []entity.Patient) *dto.PatientListResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return &dto.PatientListResponse{
		Patients: responses,
		Total:    len(responses),
	}
}
