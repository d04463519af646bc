package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// Yearly is the full report for one budget year.
type Yearly struct {
	Year     int `json:"year" example:"2026"`
	YTDMonth int `json:"ytdMonth" example:"8"` // Cutoff month of the year-to-date figures

	BudgetItems  []SpendingRow `json:"budgetItems"`
	SavingsItems []SavingsRow  `json:"savingsItems"`

	Spending SpendingTotals `json:"spending"`
	Savings  SavingsTotals  `json:"savings"`
	Income   IncomeTotals   `json:"income"`

	// Grand totals across spending and savings.
	Budgeted             decimal.Decimal `json:"budgeted" example:"8400"`
	SpentSaved           decimal.Decimal `json:"spentSaved" example:"249.99"`
	Remaining            decimal.Decimal `json:"remaining" example:"8200.01"`
	RemainingCurrentYear decimal.Decimal `json:"remainingCurrentYear" example:"8250"`
	BudgetedYTD          decimal.Decimal `json:"budgetedYtd" example:"4200"`
	SpentSavedYTD        decimal.Decimal `json:"spentSavedYtd" example:"249.99"`
	RemainingYTD         decimal.Decimal `json:"remainingYtd" example:"3950.01"`

	// Income not yet claimed by any category with a rollover.
	FreeIncome decimal.Decimal `json:"freeIncome" example:"8250"`
}

// ComputeYearly runs the yearly aggregation over the snapshot. ytdMonth is
// the cutoff for the year-to-date figures, use YTDMonth to resolve the
// default.
func ComputeYearly(s Snapshot, ytdMonth int) Yearly {
	spendingRows, spending, freeSpending := aggregateSpending(s, ytdMonth)
	savingsRows, savings, freeSavings := aggregateSavings(s, ytdMonth)
	income := aggregateIncome(s, ytdMonth)

	report := Yearly{
		Year:     s.Year,
		YTDMonth: ytdMonth,

		BudgetItems:  spendingRows,
		SavingsItems: savingsRows,

		Spending: spending,
		Savings:  savings,

		Budgeted:   spending.Budgeted.Add(savings.Budgeted),
		SpentSaved: spending.Spent.Add(savings.Saved),
		Remaining:  spending.Remaining.Add(savings.Remaining),

		// Savings has no separate current-year variant, its remaining
		// amount never contains a rollover in the first place.
		RemainingCurrentYear: spending.RemainingCurrentYear.Add(savings.Remaining),

		BudgetedYTD:   spending.BudgetedYTD.Add(savings.BudgetedYTD),
		SpentSavedYTD: spending.SpentYTD.Add(savings.SavedYTD),
		RemainingYTD:  spending.RemainingYTD.Add(savings.RemainingYTD),

		FreeIncome: freeSpending.Add(freeSavings),
	}

	income.SpentDiff = income.Total.Sub(report.SpentSaved)
	income.SpentDiffYTD = income.TotalYTD.Sub(report.SpentSavedYTD)
	income.GeneralSpentDiff = income.General.Sub(report.SpentSaved)
	income.GeneralSpentDiffYTD = income.GeneralYTD.Sub(report.SpentSavedYTD)
	income.GeneralBudgetDiff = income.General.Sub(report.Budgeted)
	income.GeneralBudgetDiffYTD = income.GeneralYTD.Sub(report.BudgetedYTD)
	report.Income = income

	return report
}

// YTDMonth resolves the default cutoff month for a year. For the current
// year the report runs up to the current month. Any other year is complete
// from the report's point of view, so the cutoff is December. That also
// covers future years, where a partial window would hide the plan.
func YTDMonth(year int, now time.Time) int {
	if year == now.Year() {
		return int(now.Month())
	}

	return 12
}
