package dto

// WaistCalcRequest carries the waist calculator form. Age is captured by
// the form but never read by the formula.
type WaistCalcRequest struct {
	Age      int    `form:"age" validate:"required,gte=18,lte=70"`
	Gender   string `form:"gender" validate:"required,oneof=Male Female"`
	Height   int    `form:"height" validate:"required"`
	Weight   int    `form:"weight" validate:"required"`
	BodyType string `form:"body_type" validate:"required"`
}

// WaistCalcResponse is the one-shot calculator result shown on the next
// dashboard render.
type WaistCalcResponse struct {
	Estimate float64 `json:"estimate"`
	AtRisk   bool    `json:"at_risk"`
}
