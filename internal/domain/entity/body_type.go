package entity

// Body type categories recognized by the waist estimator
const (
	BodyTypeSlim        = "Slim"
	BodyTypeNormal      = "Normal"
	BodyTypeMildObesity = "Mild Obesity"
	BodyTypeObese       = "Obese"
)

// BaseWaist maps a body type to its base waist value in centimeters.
var BaseWaist = map[string]float64{
	BodyTypeSlim:        60,
	BodyTypeNormal:      70,
	BodyTypeMildObesity: 80,
	BodyTypeObese:       90,
}

// Gender values
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Waist thresholds (cm) above which the estimate carries a
// cardiovascular risk warning.
const (
	RiskThresholdMale   = 102
	RiskThresholdFemale = 88
)

// Languages supported by the UI locale switcher.
var Languages = map[string]string{
	"en": "English",
	"tr": "Türkçe",
}
