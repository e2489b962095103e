package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Krithish69/Agriculture-Prediction/internal/config"
	"github.com/Krithish69/Agriculture-Prediction/internal/form"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmds := rootCmd.Commands()

	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}

	for _, name := range []string{"predict", "crops"} {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "agripredict", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestPredictCommand_Flags(t *testing.T) {
	for flag := range predictFlagFields {
		require.NotNil(t, predictCmd.Flags().Lookup(flag), "predict command should have --%s flag", flag)
	}
	require.NotNil(t, predictCmd.Flags().Lookup("auto-detect"))
	require.NotNil(t, predictCmd.Flags().Lookup("json"))
	require.NotNil(t, predictCmd.Flags().Lookup("lat"))
	require.NotNil(t, predictCmd.Flags().Lookup("lon"))
}

func TestPredictFlagFields_RouteToKnownFields(t *testing.T) {
	store := form.NewStore(form.DefaultFields())
	for flag, field := range predictFlagFields {
		assert.NoError(t, store.Set(field, "1"), "flag %q maps to unknown field %q", flag, field)
	}
}

func TestFieldsFromConfig(t *testing.T) {
	fc := config.FormConfig{
		Nitrogen: "90", Phosphorus: "42", Potassium: "43",
		Temperature: "28", Humidity: "82", PH: "6.5",
		Rainfall: "200", InputCost: "0", CropType: "rice",
	}

	f := fieldsFromConfig(fc)
	assert.Equal(t, "90", f.Nitrogen)
	assert.Equal(t, "6.5", f.PH)
	assert.Equal(t, "rice", f.CropType)
}
