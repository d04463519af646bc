package report

import "github.com/shopspring/decimal"

// IncomeTotals breaks the year's income down into general income without a
// category and income attributed to categories. The diff figures compare the
// income against the spending side of the report. They are informational
// surplus or deficit indicators and do not feed any other figure.
type IncomeTotals struct {
	Total          decimal.Decimal `json:"total" example:"3000"`          // All income of the year
	General        decimal.Decimal `json:"general" example:"2800"`        // Income without a category
	Categorized    decimal.Decimal `json:"categorized" example:"200"`     // Income attributed to a category
	TotalYTD       decimal.Decimal `json:"totalYtd" example:"1500"`
	GeneralYTD     decimal.Decimal `json:"generalYtd" example:"1400"`
	CategorizedYTD decimal.Decimal `json:"categorizedYtd" example:"100"`

	// Set during report assembly, after the spending and savings totals
	// are known.
	SpentDiff            decimal.Decimal `json:"spentDiff" example:"2850"`            // Total income minus everything spent and saved
	SpentDiffYTD         decimal.Decimal `json:"spentDiffYtd" example:"1350"`
	GeneralSpentDiff     decimal.Decimal `json:"generalSpentDiff" example:"2650"`     // General income minus everything spent and saved
	GeneralSpentDiffYTD  decimal.Decimal `json:"generalSpentDiffYtd" example:"1250"`
	GeneralBudgetDiff    decimal.Decimal `json:"generalBudgetDiff" example:"-5600"`   // General income minus the total budgeted amount
	GeneralBudgetDiffYTD decimal.Decimal `json:"generalBudgetDiffYtd" example:"-2800"`
}

// aggregateIncome computes the base income totals. The diff figures stay
// zero here, report assembly fills them in.
func aggregateIncome(s Snapshot, ytdMonth int) (totals IncomeTotals) {
	for _, income := range s.Incomes {
		totals.Total = totals.Total.Add(income.Amount)
		if income.Category == "" {
			totals.General = totals.General.Add(income.Amount)
		} else {
			totals.Categorized = totals.Categorized.Add(income.Amount)
		}

		if income.Month <= ytdMonth {
			totals.TotalYTD = totals.TotalYTD.Add(income.Amount)
			if income.Category == "" {
				totals.GeneralYTD = totals.GeneralYTD.Add(income.Amount)
			} else {
				totals.CategorizedYTD = totals.CategorizedYTD.Add(income.Amount)
			}
		}
	}

	return totals
}
