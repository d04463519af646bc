package report

import (
	"sort"

	"github.com/shopspring/decimal"
)

// SavingsRow is the combined full-year and year-to-date report line for one
// savings category. Purchases in a savings category are transfers into the
// reserve, so they increase the saved amount instead of spending it down.
type SavingsRow struct {
	Category  string          `json:"category" example:"Vacation Fund"`
	Budgeted  decimal.Decimal `json:"budgeted" example:"2400"`  // Sum of the budgeted amounts of all twelve months
	Purchases decimal.Decimal `json:"purchases" example:"50"`   // Transfers into the reserve
	Saved     decimal.Decimal `json:"saved" example:"50"`       // Transfers plus category income
	Income    decimal.Decimal `json:"income" example:"0"`       // Income attributed directly to the category
	Rollover  decimal.Decimal `json:"rollover" example:"0"`     // Carried over from the previous year, informational only
	Diff      decimal.Decimal `json:"diff" example:"2350"`      // Remaining amount towards the savings goal

	BudgetedYTD decimal.Decimal `json:"budgetedYtd" example:"1200"`
	SavedYTD    decimal.Decimal `json:"savedYtd" example:"50"`
	IncomeYTD   decimal.Decimal `json:"incomeYtd" example:"0"`
	DiffYTD     decimal.Decimal `json:"diffYtd" example:"1150"`
}

// SavingsTotals sums the savings rows of the report.
type SavingsTotals struct {
	Budgeted     decimal.Decimal `json:"budgeted" example:"2400"`
	Saved        decimal.Decimal `json:"saved" example:"50"`
	Remaining    decimal.Decimal `json:"remaining" example:"2350"`
	BudgetedYTD  decimal.Decimal `json:"budgetedYtd" example:"1200"`
	SavedYTD     decimal.Decimal `json:"savedYtd" example:"50"`
	RemainingYTD decimal.Decimal `json:"remainingYtd" example:"1150"`
}

// savingsYTD holds the year-to-date figures of one category before they are
// joined with the full-year figures.
type savingsYTD struct {
	budgeted decimal.Decimal
	saved    decimal.Decimal
	income   decimal.Decimal
	diff     decimal.Decimal
}

// aggregateSavings computes the per-category rows and totals for all savings
// categories of the year.
//
// The diff adds the category income on top of the saved amount, which
// already contains it. Every earlier version of the calculation has used
// this exact formula, it is part of the report contract. Do not "fix" it
// without a product decision.
//
// The rollover never changes the savings diff. It only decides whether the
// category contributes to the free income: the returned freeIncome is the
// sum of the diff of all categories without a rollover.
func aggregateSavings(s Snapshot, ytdMonth int) (rows []SavingsRow, totals SavingsTotals, freeIncome decimal.Decimal) {
	items := itemSums(s.Items, ytdMonth, true)
	purchases := purchaseSums(s.Purchases, ytdMonth)
	incomes := incomeSums(s.Incomes, ytdMonth)
	rollovers := rolloverSums(s.Rollovers)

	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}
	sort.Strings(names)

	rows = make([]SavingsRow, 0, len(names))
	ytdRows := make(map[string]savingsYTD, len(names))

	for _, name := range names {
		item := items[name]
		purchase := purchases[name]
		income := incomes[name]
		rollover := rollovers[name]

		saved := purchase.total.Add(income.total)
		diff := item.total.Sub(saved).Add(income.total)

		rows = append(rows, SavingsRow{
			Category:  name,
			Budgeted:  item.total,
			Purchases: purchase.total,
			Saved:     saved,
			Income:    income.total,
			Rollover:  rollover,
			Diff:      diff,
		})

		savedYTD := purchase.ytd.Add(income.ytd)
		ytdRows[name] = savingsYTD{
			budgeted: item.ytd,
			saved:    savedYTD,
			income:   income.ytd,
			diff:     item.ytd.Sub(savedYTD).Add(income.ytd),
		}

		totals.Budgeted = totals.Budgeted.Add(item.total)
		totals.Saved = totals.Saved.Add(saved)
		totals.Remaining = totals.Remaining.Add(diff)

		if rollover.IsZero() {
			freeIncome = freeIncome.Add(diff)
		}
	}

	// Join the year-to-date figures onto the full-year rows, defaulting to
	// zero values for categories without activity in the cutoff window.
	for i := range rows {
		ytd := ytdRows[rows[i].Category]

		rows[i].BudgetedYTD = ytd.budgeted
		rows[i].SavedYTD = ytd.saved
		rows[i].IncomeYTD = ytd.income
		rows[i].DiffYTD = ytd.diff

		totals.BudgetedYTD = totals.BudgetedYTD.Add(ytd.budgeted)
		totals.SavedYTD = totals.SavedYTD.Add(ytd.saved)
		totals.RemainingYTD = totals.RemainingYTD.Add(ytd.diff)
	}

	return rows, totals, freeIncome
}
