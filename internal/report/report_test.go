package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Krithish69/Agriculture-Prediction/pkg/predict"
)

func TestReconcile_NoUserCostPassesBackendThrough(t *testing.T) {
	pred := &predict.Prediction{
		YieldTonHectare: 4.2,
		MarketPriceUsed: 25000,
		Revenue:         105000,
		Cost:            2210,
		NetProfit:       102790,
	}

	rep := Reconcile(pred, 0)

	// Backend figures are authoritative: no recomputation.
	assert.Equal(t, pred.Revenue, rep.Revenue)
	assert.Equal(t, pred.Cost, rep.Cost)
	assert.Equal(t, pred.NetProfit, rep.NetProfit)
	assert.Equal(t, pred.YieldTonHectare, rep.YieldTonHectare)
	assert.Equal(t, pred.MarketPriceUsed, rep.MarketPriceUsed)
	assert.False(t, rep.CostOverridden)
}

func TestReconcile_UserCostOverridesFinancials(t *testing.T) {
	pred := &predict.Prediction{
		YieldTonHectare: 4,
		MarketPriceUsed: 2000,
		Revenue:         99999, // backend figures must be fully replaced
		Cost:            12345,
		NetProfit:       54321,
	}

	rep := Reconcile(pred, 500)

	assert.InDelta(t, 8000.00, rep.Revenue, 0.000001)
	assert.InDelta(t, 500.00, rep.Cost, 0.000001)
	assert.InDelta(t, 7500.00, rep.NetProfit, 0.000001)
	assert.True(t, rep.CostOverridden)

	// Yield and market price are never touched.
	assert.InDelta(t, 4, rep.YieldTonHectare, 0.000001)
	assert.InDelta(t, 2000, rep.MarketPriceUsed, 0.000001)
}

func TestReconcile_RoundsToTwoDecimals(t *testing.T) {
	pred := &predict.Prediction{YieldTonHectare: 3.333, MarketPriceUsed: 1000.1}

	rep := Reconcile(pred, 100.005)

	assert.InDelta(t, 3333.63, rep.Revenue, 0.000001) // 3.333*1000.1 = 3333.6333
	assert.InDelta(t, 3233.63, rep.NetProfit, 0.000001)
}

func TestReconcile_Idempotent(t *testing.T) {
	pred := &predict.Prediction{
		YieldTonHectare: 4, MarketPriceUsed: 2000,
		Revenue: 1, Cost: 2, NetProfit: 3,
	}

	first := Reconcile(pred, 500)
	second := Reconcile(pred, 500)
	require.Equal(t, *first, *second)
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, OutcomeSustainable, (&Report{NetProfit: 0.01}).Outcome())
	assert.Equal(t, OutcomeHighRisk, (&Report{NetProfit: 0}).Outcome())
	assert.Equal(t, OutcomeHighRisk, (&Report{NetProfit: -1200}).Outcome())
}

func TestFormatINR(t *testing.T) {
	assert.Equal(t, "₹105,000.00", FormatINR(105000))
	assert.Equal(t, "₹500.00", FormatINR(500))
}

func TestRender(t *testing.T) {
	rep := &Report{
		YieldTonHectare: 4,
		MarketPriceUsed: 2000,
		Revenue:         8000,
		Cost:            500,
		NetProfit:       7500,
	}

	var sb strings.Builder
	rep.Render(&sb)
	out := sb.String()

	assert.Contains(t, out, "4.00 tons/ha")
	assert.Contains(t, out, "₹8,000.00")
	assert.Contains(t, out, "sustainable farming")

	loss := &Report{NetProfit: -10}
	sb.Reset()
	loss.Render(&sb)
	assert.Contains(t, sb.String(), "high risk warning")
}
