package usecase

import (
	"errors"
	"math"

	"patient-vitals-service/internal/delivery/dto"
	"patient-vitals-service/internal/domain/entity"
)

var ErrInvalidBodyType = errors.New("unrecognized body type")

// WaistUsecase estimates a waist circumference from height, weight and
// body type. It is pure: no persistence, no side effects. The same
// formula is duplicated in the dashboard's client-side script and must
// stay bit-for-bit identical to it.
type WaistUsecase interface {
	Estimate(req *dto.WaistCalcRequest) (*dto.WaistCalcResponse, error)
}

type waistUsecase struct{}

func NewWaistUsecase() WaistUsecase {
	return &waistUsecase{}
}

// Estimate applies:
//
//	heightAdj = (heightCm - 150) * 0.4
//	weightAdj = (weightKg - 45) * 0.5
//	estimate  = round(base + heightAdj + weightAdj - 5, 1 decimal)
//
// and flags cardiovascular risk at >= 102 cm for men, >= 88 cm for women.
// The age field is captured by the form but plays no part in the formula.
func (u *waistUsecase) Estimate(req *dto.WaistCalcRequest) (*dto.WaistCalcResponse, error) {
	base, ok := entity.BaseWaist[req.BodyType]
	if !ok {
		return nil, ErrInvalidBodyType
	}

	heightAdj := float64(req.Height-150) * 0.4
	weightAdj := float64(req.Weight-45) * 0.5
	estimate := roundToOneDecimal(base + heightAdj + weightAdj - 5)

	atRisk := (req.Gender == entity.GenderMale && estimate >= entity.RiskThresholdMale) ||
		(req.Gender == entity.GenderFemale && estimate >= entity.RiskThresholdFemale)

	return &dto.WaistCalcResponse{
		Estimate: estimate,
		AtRisk:   atRisk,
	}, nil
}

// roundToOneDecimal rounds half up to one decimal place.
func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
