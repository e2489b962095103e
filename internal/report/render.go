package report

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// inr formats rupee amounts with digit grouping, matching how the report
// is presented to farmers.
var inr = message.NewPrinter(language.English)

// FormatINR renders a rupee amount with grouped digits and two decimals.
func FormatINR(v float64) string {
	return inr.Sprintf("₹%.2f", v)
}

// Render writes the human-readable analysis report.
func (r *Report) Render(w io.Writer) {
	fmt.Fprintf(w, "Predicted Yield:    %.2f tons/ha\n", r.YieldTonHectare)
	fmt.Fprintf(w, "Market Rate:        %s /ton\n", FormatINR(r.MarketPriceUsed))
	fmt.Fprintf(w, "Est. Revenue:       %s\n", FormatINR(r.Revenue))
	fmt.Fprintf(w, "Input Cost:         %s\n", FormatINR(r.Cost))
	fmt.Fprintf(w, "Net Profit:         %s\n", FormatINR(r.NetProfit))

	switch r.Outcome() {
	case OutcomeSustainable:
		fmt.Fprintln(w, "Outcome:            sustainable farming")
	case OutcomeHighRisk:
		fmt.Fprintln(w, "Outcome:            high risk warning")
	}
}
