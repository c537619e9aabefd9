package handler

import (
	"errors"
	"net/http"
	"strconv"

	"patient-vitals-service/internal/delivery/dto"
)

var errMalformedNumber = errors.New("malformed numeric field")

// Form decoding happens once at the boundary: every field is pulled out
// of the posted form by name and converted to its typed representation
// before anything downstream sees it.

func decodeSignupForm(r *http.Request) *dto.SignupRequest {
	return &dto.SignupRequest{
		Username: r.PostFormValue("username"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
}

func decodeLoginForm(r *http.Request) *dto.LoginRequest {
	return &dto.LoginRequest{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
}

func decodeAddPatientForm(r *http.Request) (*dto.AddPatientRequest, error) {
	height, err := strconv.ParseFloat(r.PostFormValue("height"), 64)
	if err != nil {
		return nil, errMalformedNumber
	}
	weight, err := strconv.ParseFloat(r.PostFormValue("weight"), 64)
	if err != nil {
		return nil, errMalformedNumber
	}
	waist, err := strconv.ParseFloat(r.PostFormValue("waist"), 64)
	if err != nil {
		return nil, errMalformedNumber
	}

	return &dto.AddPatientRequest{
		PatientID:     r.PostFormValue("patient_id"),
		Name:          r.PostFormValue("name"),
		BloodPressure: r.PostFormValue("blood_pressure"),
		HeartRate:     r.PostFormValue("heart_rate"),
		Height:        height,
		Weight:        weight,
		Waist:         waist,
		Smoking:       r.PostFormValue("smoking"),
		Drinking:      r.PostFormValue("drinking"),
		Exercise:      r.PostFormValue("exercise"),
		Note:          r.PostFormValue("note"),
	}, nil
}

func decodeWaistCalcForm(r *http.Request) (*dto.WaistCalcRequest, error) {
	age, err := strconv.Atoi(r.PostFormValue("age"))
	if err != nil {
		return nil, errMalformedNumber
	}
	height, err := strconv.Atoi(r.PostFormValue("height"))
	if err != nil {
		return nil, errMalformedNumber
	}
	weight, err := strconv.Atoi(r.PostFormValue("weight"))
	if err != nil {
		return nil, errMalformedNumber
	}

	return &dto.WaistCalcRequest{
		Age:      age,
		Gender:   r.PostFormValue("gender"),
		Height:   height,
		Weight:   weight,
		BodyType: r.PostFormValue("body_type"),
	}, nil
}
