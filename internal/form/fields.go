// Package form holds the soil parameter form state and its update rules.
package form

import "github.com/rotisserie/eris"

// Field names route updates to the matching form field. They mirror the
// prediction backend's feature names so a field update and its wire key
// never drift apart.
const (
	FieldNitrogen    = "Nitrogen"
	FieldPhosphorus  = "Phosphorus"
	FieldPotassium   = "Potassium"
	FieldTemperature = "Temperature"
	FieldHumidity    = "Humidity"
	FieldPH          = "pH"
	FieldRainfall    = "Rainfall"
	FieldInputCost   = "Input_Cost"
	FieldCropType    = "Crop_Type"
)

// Fields holds the raw text values of every form field. All fields always
// have a defined value; coercion to numbers happens at submit time.
type Fields struct {
	Nitrogen    string
	Phosphorus  string
	Potassium   string
	Temperature string
	Humidity    string
	PH          string
	Rainfall    string
	InputCost   string
	CropType    string
}

// DefaultFields returns the initial form values.
func DefaultFields() Fields {
	return Fields{
		Nitrogen:    "50",
		Phosphorus:  "50",
		Potassium:   "50",
		Temperature: "26",
		Humidity:    "80",
		PH:          "6.5",
		Rainfall:    "200",
		InputCost:   "0",
		CropType:    "rice",
	}
}

// WithField returns a copy of the fields with the named field replaced.
// Updates are routed by field name; an unknown name is an error and the
// receiver is returned unchanged.
func (f Fields) WithField(name, raw string) (Fields, error) {
	switch name {
	case FieldNitrogen:
		f.Nitrogen = raw
	case FieldPhosphorus:
		f.Phosphorus = raw
	case FieldPotassium:
		f.Potassium = raw
	case FieldTemperature:
		f.Temperature = raw
	case FieldHumidity:
		f.Humidity = raw
	case FieldPH:
		f.PH = raw
	case FieldRainfall:
		f.Rainfall = raw
	case FieldInputCost:
		f.InputCost = raw
	case FieldCropType:
		f.CropType = raw
	default:
		return f, eris.Errorf("form: unknown field %q", name)
	}
	return f, nil
}
