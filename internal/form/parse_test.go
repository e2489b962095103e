package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequiredFloat(t *testing.T) {
	v, err := ParseRequiredFloat(FieldNitrogen, "90")
	require.NoError(t, err)
	assert.InDelta(t, 90, v, 0.000001)

	v, err = ParseRequiredFloat(FieldPH, " 6.5 ")
	require.NoError(t, err)
	assert.InDelta(t, 6.5, v, 0.000001)

	_, err = ParseRequiredFloat(FieldRainfall, "")
	require.Error(t, err)

	_, err = ParseRequiredFloat(FieldRainfall, "lots")
	require.Error(t, err)
}

func TestParseOptionalFloat(t *testing.T) {
	assert.InDelta(t, 500, ParseOptionalFloat("500"), 0.000001)
	assert.InDelta(t, 0.25, ParseOptionalFloat("0.25"), 0.000001)
	assert.Zero(t, ParseOptionalFloat(""))
	assert.Zero(t, ParseOptionalFloat("n/a"))
}
