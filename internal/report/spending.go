package report

import (
	"sort"

	"github.com/shopspring/decimal"
)

// SpendingRow is the combined full-year and year-to-date report line for one
// spending category.
type SpendingRow struct {
	Category string          `json:"category" example:"Groceries"`
	Budgeted decimal.Decimal `json:"budgeted" example:"6000"` // Sum of the budgeted amounts of all twelve months
	Spent    decimal.Decimal `json:"spent" example:"100"`     // Sum of all purchases in the category
	Income   decimal.Decimal `json:"income" example:"0"`      // Income attributed directly to the category
	Rollover decimal.Decimal `json:"rollover" example:"50"`   // Amount carried over from the previous year
	Diff     decimal.Decimal `json:"diff" example:"5950"`     // Remaining budget including the rollover

	// Remaining budget without the rollover. Feeds the free income figure.
	RemainingCurrentYear decimal.Decimal `json:"remainingCurrentYear" example:"5900"`

	BudgetedYTD decimal.Decimal `json:"budgetedYtd" example:"3000"` // Budgeted sum up to the cutoff month
	SpentYTD    decimal.Decimal `json:"spentYtd" example:"100"`     // Purchases up to the cutoff month
	IncomeYTD   decimal.Decimal `json:"incomeYtd" example:"0"`      // Category income up to the cutoff month
	DiffYTD     decimal.Decimal `json:"diffYtd" example:"2900"`     // Remaining budget up to the cutoff month, never includes the rollover
}

// SpendingTotals sums the spending rows of the report. Uncategorized
// purchases count towards the spent and remaining figures without appearing
// as a row of their own.
type SpendingTotals struct {
	Budgeted             decimal.Decimal `json:"budgeted" example:"6000"`
	Spent                decimal.Decimal `json:"spent" example:"199.99"`
	Remaining            decimal.Decimal `json:"remaining" example:"5850.01"`
	RemainingCurrentYear decimal.Decimal `json:"remainingCurrentYear" example:"5900"`
	BudgetedYTD          decimal.Decimal `json:"budgetedYtd" example:"3000"`
	SpentYTD             decimal.Decimal `json:"spentYtd" example:"199.99"`
	RemainingYTD         decimal.Decimal `json:"remainingYtd" example:"2800.01"`
	Uncategorized        decimal.Decimal `json:"uncategorized" example:"99.99"`    // Purchases without a category, full year
	UncategorizedYTD     decimal.Decimal `json:"uncategorizedYtd" example:"99.99"` // Purchases without a category up to the cutoff month
}

// spendingYTD holds the year-to-date figures of one category before they are
// joined with the full-year figures.
type spendingYTD struct {
	budgeted decimal.Decimal
	spent    decimal.Decimal
	income   decimal.Decimal
	diff     decimal.Decimal
}

// aggregateSpending computes the per-category rows and totals for all
// spending categories of the year.
//
// The returned freeIncome is the sum of the remaining current-year budget of
// all categories without a rollover. Categories with a rollover are already
// claimed by it and do not contribute.
func aggregateSpending(s Snapshot, ytdMonth int) (rows []SpendingRow, totals SpendingTotals, freeIncome decimal.Decimal) {
	items := itemSums(s.Items, ytdMonth, false)
	purchases := purchaseSums(s.Purchases, ytdMonth)
	incomes := incomeSums(s.Incomes, ytdMonth)
	rollovers := rolloverSums(s.Rollovers)

	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}
	sort.Strings(names)

	rows = make([]SpendingRow, 0, len(names))
	ytdRows := make(map[string]spendingYTD, len(names))

	for _, name := range names {
		item := items[name]
		purchase := purchases[name]
		income := incomes[name]
		rollover := rollovers[name]

		diff := item.total.Sub(purchase.total).Add(income.total).Add(rollover)
		remainingCurrentYear := item.total.Sub(purchase.total).Add(income.total)

		rows = append(rows, SpendingRow{
			Category:             name,
			Budgeted:             item.total,
			Spent:                purchase.total,
			Income:               income.total,
			Rollover:             rollover,
			Diff:                 diff,
			RemainingCurrentYear: remainingCurrentYear,
		})

		// The rollover covers the whole year, the year-to-date diff never
		// includes it.
		ytdRows[name] = spendingYTD{
			budgeted: item.ytd,
			spent:    purchase.ytd,
			income:   income.ytd,
			diff:     item.ytd.Sub(purchase.ytd).Add(income.ytd),
		}

		totals.Budgeted = totals.Budgeted.Add(item.total)
		totals.Spent = totals.Spent.Add(purchase.total)
		totals.Remaining = totals.Remaining.Add(diff)
		totals.RemainingCurrentYear = totals.RemainingCurrentYear.Add(remainingCurrentYear)

		if rollover.IsZero() {
			freeIncome = freeIncome.Add(remainingCurrentYear)
		}
	}

	// Join the year-to-date figures onto the full-year rows. A category
	// without any activity in the cutoff window keeps zero values.
	for i := range rows {
		ytd := ytdRows[rows[i].Category]

		rows[i].BudgetedYTD = ytd.budgeted
		rows[i].SpentYTD = ytd.spent
		rows[i].IncomeYTD = ytd.income
		rows[i].DiffYTD = ytd.diff

		totals.BudgetedYTD = totals.BudgetedYTD.Add(ytd.budgeted)
		totals.SpentYTD = totals.SpentYTD.Add(ytd.spent)
		totals.RemainingYTD = totals.RemainingYTD.Add(ytd.diff)
	}

	// Purchases without a category reduce the remaining budget globally
	// without being attributable to any row.
	uncategorized := purchases[""]
	totals.Uncategorized = uncategorized.total
	totals.UncategorizedYTD = uncategorized.ytd
	totals.Spent = totals.Spent.Add(uncategorized.total)
	totals.Remaining = totals.Remaining.Sub(uncategorized.total)
	totals.SpentYTD = totals.SpentYTD.Add(uncategorized.ytd)
	totals.RemainingYTD = totals.RemainingYTD.Sub(uncategorized.ytd)

	return rows, totals, freeIncome
}
