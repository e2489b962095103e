package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/Krithish69/Agriculture-Prediction/internal/analysis"
	"github.com/Krithish69/Agriculture-Prediction/internal/config"
	"github.com/Krithish69/Agriculture-Prediction/internal/enrich"
	"github.com/Krithish69/Agriculture-Prediction/internal/form"
	"github.com/Krithish69/Agriculture-Prediction/pkg/geocode"
	"github.com/Krithish69/Agriculture-Prediction/pkg/predict"
	"github.com/Krithish69/Agriculture-Prediction/pkg/weather"
)

var (
	predictAutoDetect bool
	predictJSON       bool
	predictLat        float64
	predictLon        float64
)

// predictFlagFields maps flag names to form field names so flag values
// flow through the same name-routed update path as any other edit.
var predictFlagFields = map[string]string{
	"nitrogen":    form.FieldNitrogen,
	"phosphorus":  form.FieldPhosphorus,
	"potassium":   form.FieldPotassium,
	"temperature": form.FieldTemperature,
	"humidity":    form.FieldHumidity,
	"ph":          form.FieldPH,
	"rainfall":    form.FieldRainfall,
	"cost":        form.FieldInputCost,
	"crop":        form.FieldCropType,
}

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict yield and profit for the given soil parameters",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		store := form.NewStore(fieldsFromConfig(cfg.Form))
		for flag, field := range predictFlagFields {
			if !cmd.Flags().Changed(flag) {
				continue
			}
			v, err := cmd.Flags().GetString(flag)
			if err != nil {
				return err
			}
			if err := store.Set(field, v); err != nil {
				return err
			}
		}

		if predictAutoDetect {
			runEnrichment(ctx, cmd, store)
		}

		client := predict.NewClient(
			predict.WithURL(cfg.Predict.URL),
			predict.WithTimeout(time.Duration(cfg.Predict.TimeoutSecs)*time.Second),
		)

		rep, err := analysis.New(store, client).Submit(ctx)
		if err != nil {
			if msg := store.Snapshot().ErrMsg; msg != "" {
				fmt.Fprintln(os.Stderr, msg)
			}
			return eris.Wrap(err, "submit")
		}

		if predictJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(rep)
		}
		rep.Render(os.Stdout)
		return nil
	},
}

// runEnrichment auto-fills weather fields from the device coordinates.
// Enrichment failure is not fatal; the form keeps its manual values and
// the status line explains what happened.
func runEnrichment(ctx context.Context, cmd *cobra.Command, store *form.Store) {
	var locator enrich.Locator
	switch {
	case cmd.Flags().Changed("lat") && cmd.Flags().Changed("lon"):
		locator = enrich.StaticLocator{Coords: enrich.Coordinates{
			Latitude:  predictLat,
			Longitude: predictLon,
		}}
	case cfg.Location.Set:
		locator = enrich.StaticLocator{Coords: enrich.Coordinates{
			Latitude:  cfg.Location.Latitude,
			Longitude: cfg.Location.Longitude,
		}}
	}

	wc := weather.NewClient(
		weather.WithBaseURL(cfg.Weather.BaseURL),
		weather.WithRateLimit(cfg.Weather.RateLimit),
	)
	gc := geocode.NewClient(
		geocode.WithBaseURL(cfg.Geocode.BaseURL),
		geocode.WithRateLimit(cfg.Geocode.RateLimit),
	)

	svc := enrich.New(store, wc, gc, locator,
		enrich.WithClearDelay(time.Duration(cfg.Enrich.StatusClearSecs)*time.Second),
	)
	svc.Enrich(ctx)

	snap := store.Snapshot()
	if snap.LocationStatus != "" {
		fmt.Fprintln(os.Stderr, snap.LocationStatus)
	}
	if snap.LocationName != "" {
		fmt.Fprintf(os.Stderr, "Verified location: %s\n", snap.LocationName)
	}
}

// fieldsFromConfig seeds the form from configured defaults.
func fieldsFromConfig(fc config.FormConfig) form.Fields {
	return form.Fields{
		Nitrogen:    fc.Nitrogen,
		Phosphorus:  fc.Phosphorus,
		Potassium:   fc.Potassium,
		Temperature: fc.Temperature,
		Humidity:    fc.Humidity,
		PH:          fc.PH,
		Rainfall:    fc.Rainfall,
		InputCost:   fc.InputCost,
		CropType:    fc.CropType,
	}
}

func init() {
	predictCmd.Flags().String("nitrogen", "", "nitrogen (N) level")
	predictCmd.Flags().String("phosphorus", "", "phosphorus (P) level")
	predictCmd.Flags().String("potassium", "", "potassium (K) level")
	predictCmd.Flags().String("temperature", "", "temperature in °C")
	predictCmd.Flags().String("humidity", "", "relative humidity in %")
	predictCmd.Flags().String("ph", "", "soil pH level")
	predictCmd.Flags().String("rainfall", "", "rainfall in mm")
	predictCmd.Flags().String("cost", "", "your total input cost (optional)")
	predictCmd.Flags().String("crop", "", "crop to plant")
	predictCmd.Flags().BoolVar(&predictAutoDetect, "auto-detect", false, "auto-fill weather and location before predicting")
	predictCmd.Flags().Float64Var(&predictLat, "lat", 0, "device latitude for auto-detect")
	predictCmd.Flags().Float64Var(&predictLon, "lon", 0, "device longitude for auto-detect")
	predictCmd.Flags().BoolVar(&predictJSON, "json", false, "print the report as JSON")
	rootCmd.AddCommand(predictCmd)
}
