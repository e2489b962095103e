// Package report derives the financial report from a backend prediction
// and an optional user-supplied input cost.
package report

import (
	"math"

	"github.com/Krithish69/Agriculture-Prediction/pkg/predict"
)

// Outcome classifies the profit sign for presentation.
type Outcome string

const (
	// OutcomeSustainable marks a positive net profit projection.
	OutcomeSustainable Outcome = "sustainable"
	// OutcomeHighRisk marks a zero or negative net profit projection.
	OutcomeHighRisk Outcome = "high_risk"
)

// Report is the reconciled financial report rendered to the user.
type Report struct {
	YieldTonHectare float64 `json:"yield_ton_hectare"`
	MarketPriceUsed float64 `json:"market_price_used"`
	Revenue         float64 `json:"revenue"`
	Cost            float64 `json:"cost"`
	NetProfit       float64 `json:"net_profit"`

	// CostOverridden records whether the financial figures came from the
	// user's cost rather than the backend's default assumption.
	CostOverridden bool `json:"cost_overridden"`
}

// Outcome classifies the report's net profit.
func (r *Report) Outcome() Outcome {
	if r.NetProfit > 0 {
		return OutcomeSustainable
	}
	return OutcomeHighRisk
}

// Reconcile builds a Report from a backend prediction and the user's
// input cost. With no user cost the backend is authoritative and its
// revenue, cost and net profit pass through unchanged. With a positive
// user cost the backend's figures reflect a default assumed cost, so all
// three derived fields are recomputed locally; yield and market price are
// never touched.
func Reconcile(pred *predict.Prediction, userCost float64) *Report {
	rep := &Report{
		YieldTonHectare: pred.YieldTonHectare,
		MarketPriceUsed: pred.MarketPriceUsed,
		Revenue:         pred.Revenue,
		Cost:            pred.Cost,
		NetProfit:       pred.NetProfit,
	}

	if userCost <= 0 {
		return rep
	}

	revenue := round2(pred.YieldTonHectare * pred.MarketPriceUsed)
	rep.Revenue = revenue
	rep.Cost = userCost
	rep.NetProfit = round2(revenue - userCost)
	rep.CostOverridden = true
	return rep
}

// round2 rounds half away from zero at two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
