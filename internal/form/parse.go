package form

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

// ParseRequiredFloat coerces a required field's raw text to a float.
// Invalid or blank input is an error; required fields are rejected at
// submit time rather than silently defaulted.
func ParseRequiredFloat(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, eris.Wrapf(err, "form: field %s: parse %q", name, raw)
	}
	return v, nil
}

// ParseOptionalFloat coerces an optional field's raw text to a float.
// Absent, blank or non-numeric input yields 0; parse failure here is
// explicitly non-fatal.
func ParseOptionalFloat(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}
