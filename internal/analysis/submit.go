// Package analysis orchestrates a form submission: normalization,
// prediction and financial reconciliation.
package analysis

import (
	"context"
	"errors"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/Krithish69/Agriculture-Prediction/internal/form"
	"github.com/Krithish69/Agriculture-Prediction/internal/report"
	"github.com/Krithish69/Agriculture-Prediction/pkg/predict"
)

// ErrInFlight indicates a submission was attempted while another one is
// still outstanding. The new attempt is ignored, not queued.
var ErrInFlight = eris.New("analysis: submission already in flight")

// User-visible error messages for failed submissions.
const (
	MsgInvalidInput  = "Please enter valid numeric soil values."
	MsgProcessing    = "Error processing data."
	MsgConnectFailed = "Failed to connect to the prediction server."
)

// Submitter runs the submit flow against the prediction backend. At most
// one submission is in flight at a time.
type Submitter struct {
	store  *form.Store
	client predict.Client
}

// New creates a Submitter bound to the given store and prediction client.
func New(store *form.Store, client predict.Client) *Submitter {
	return &Submitter{store: store, client: client}
}

// Submit normalizes the current form fields, posts them for prediction
// and stores the reconciled report. The loading flag is always released;
// on failure the previous report is left untouched and a user-visible
// error message is recorded instead.
func (s *Submitter) Submit(ctx context.Context) (*report.Report, error) {
	if !s.store.BeginSubmit() {
		return nil, ErrInFlight
	}

	snap := s.store.Snapshot()
	payload, userCost, err := BuildPayload(snap.Fields)
	if err != nil {
		s.store.EndSubmit(nil, MsgInvalidInput)
		return nil, err
	}

	start := time.Now()
	pred, err := s.client.Predict(ctx, payload)
	if err != nil {
		msg := MsgConnectFailed
		if errors.Is(err, predict.ErrBackend) {
			msg = MsgProcessing
		}
		zap.L().Warn("prediction failed",
			zap.String("crop", payload.CropType),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		s.store.EndSubmit(nil, msg)
		return nil, err
	}

	rep := report.Reconcile(pred, userCost)
	s.store.EndSubmit(rep, "")

	zap.L().Info("prediction complete",
		zap.String("crop", payload.CropType),
		zap.Float64("yield_ton_hectare", rep.YieldTonHectare),
		zap.Float64("net_profit", rep.NetProfit),
		zap.Bool("cost_overridden", rep.CostOverridden),
		zap.Duration("elapsed", time.Since(start)),
	)
	return rep, nil
}

// BuildPayload coerces the raw form fields into the wire payload. Soil
// fields are required and must parse; the input cost is optional and
// falls back to zero. The second return value is the user's cost, used
// later for reconciliation.
func BuildPayload(f form.Fields) (predict.Payload, float64, error) {
	var p predict.Payload

	required := []struct {
		name string
		raw  string
		dst  *float64
	}{
		{form.FieldNitrogen, f.Nitrogen, &p.Nitrogen},
		{form.FieldPhosphorus, f.Phosphorus, &p.Phosphorus},
		{form.FieldPotassium, f.Potassium, &p.Potassium},
		{form.FieldTemperature, f.Temperature, &p.Temperature},
		{form.FieldHumidity, f.Humidity, &p.Humidity},
		{form.FieldPH, f.PH, &p.PH},
		{form.FieldRainfall, f.Rainfall, &p.Rainfall},
	}
	for _, r := range required {
		v, err := form.ParseRequiredFloat(r.name, r.raw)
		if err != nil {
			return predict.Payload{}, 0, err
		}
		*r.dst = v
	}

	userCost := form.ParseOptionalFloat(f.InputCost)
	p.InputCost = userCost
	p.CropType = f.CropType

	return p, userCost, nil
}
