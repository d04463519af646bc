package report

import (
	"sort"

	"github.com/shopspring/decimal"
)

// MonthlySpendingRow is the report line for one spending category in a
// single month. There is no rollover term, rollovers cover whole years.
type MonthlySpendingRow struct {
	Category string          `json:"category" example:"Groceries"`
	Budgeted decimal.Decimal `json:"budgeted" example:"500"`
	Spent    decimal.Decimal `json:"spent" example:"100"`
	Income   decimal.Decimal `json:"income" example:"0"`
	Diff     decimal.Decimal `json:"diff" example:"400"`
}

// MonthlySavingsRow is the report line for one savings category in a single
// month.
type MonthlySavingsRow struct {
	Category  string          `json:"category" example:"Vacation Fund"`
	Budgeted  decimal.Decimal `json:"budgeted" example:"200"`
	Purchases decimal.Decimal `json:"purchases" example:"50"`
	Saved     decimal.Decimal `json:"saved" example:"50"`
	Income    decimal.Decimal `json:"income" example:"0"`
	Diff      decimal.Decimal `json:"diff" example:"150"`
}

// Monthly is the report for a single month of a budget year.
type Monthly struct {
	Year  int `json:"year" example:"2026"`
	Month int `json:"month" example:"8"`

	BudgetItems  []MonthlySpendingRow `json:"budgetItems"`
	SavingsItems []MonthlySavingsRow  `json:"savingsItems"`

	SpendingBudgeted  decimal.Decimal `json:"spendingBudgeted" example:"500"`
	SpendingSpent     decimal.Decimal `json:"spendingSpent" example:"199.99"`
	SpendingRemaining decimal.Decimal `json:"spendingRemaining" example:"300.01"`
	Uncategorized     decimal.Decimal `json:"uncategorized" example:"99.99"`

	SavingsBudgeted  decimal.Decimal `json:"savingsBudgeted" example:"200"`
	SavingsSaved     decimal.Decimal `json:"savingsSaved" example:"50"`
	SavingsRemaining decimal.Decimal `json:"savingsRemaining" example:"150"`

	IncomeTotal       decimal.Decimal `json:"incomeTotal" example:"3000"`
	IncomeGeneral     decimal.Decimal `json:"incomeGeneral" example:"2800"`
	IncomeCategorized decimal.Decimal `json:"incomeCategorized" example:"200"`

	Budgeted   decimal.Decimal `json:"budgeted" example:"700"`
	SpentSaved decimal.Decimal `json:"spentSaved" example:"249.99"`
	Remaining  decimal.Decimal `json:"remaining" example:"450.01"`

	// General income of the month minus everything spent and saved.
	FreeIncome decimal.Decimal `json:"freeIncome" example:"2550.01"`
}

// ComputeMonthly runs the single-month aggregation. The snapshot must only
// contain the rows of the requested month, the loader takes care of that.
func ComputeMonthly(s Snapshot, month int) Monthly {
	purchases := purchaseSums(s.Purchases, month)
	incomes := incomeSums(s.Incomes, month)

	report := Monthly{
		Year:  s.Year,
		Month: month,
	}

	// A monthly budget has at most one item per category, so the items can
	// be walked directly instead of grouping them first.
	items := make([]Item, len(s.Items))
	copy(items, s.Items)
	sort.Slice(items, func(i, j int) bool { return items[i].Category < items[j].Category })

	for _, item := range items {
		purchase := purchases[item.Category]
		income := incomes[item.Category]

		if item.Savings {
			saved := purchase.total.Add(income.total)
			diff := item.Amount.Sub(saved).Add(income.total)

			report.SavingsItems = append(report.SavingsItems, MonthlySavingsRow{
				Category:  item.Category,
				Budgeted:  item.Amount,
				Purchases: purchase.total,
				Saved:     saved,
				Income:    income.total,
				Diff:      diff,
			})

			report.SavingsBudgeted = report.SavingsBudgeted.Add(item.Amount)
			report.SavingsSaved = report.SavingsSaved.Add(saved)
			report.SavingsRemaining = report.SavingsRemaining.Add(diff)
			continue
		}

		diff := item.Amount.Sub(purchase.total).Add(income.total)

		report.BudgetItems = append(report.BudgetItems, MonthlySpendingRow{
			Category: item.Category,
			Budgeted: item.Amount,
			Spent:    purchase.total,
			Income:   income.total,
			Diff:     diff,
		})

		report.SpendingBudgeted = report.SpendingBudgeted.Add(item.Amount)
		report.SpendingSpent = report.SpendingSpent.Add(purchase.total)
		report.SpendingRemaining = report.SpendingRemaining.Add(diff)
	}

	// Uncategorized purchases reduce the spending figures globally, same as
	// in the yearly report.
	uncategorized := purchases[""]
	report.Uncategorized = uncategorized.total
	report.SpendingSpent = report.SpendingSpent.Add(uncategorized.total)
	report.SpendingRemaining = report.SpendingRemaining.Sub(uncategorized.total)

	for _, income := range s.Incomes {
		report.IncomeTotal = report.IncomeTotal.Add(income.Amount)
		if income.Category == "" {
			report.IncomeGeneral = report.IncomeGeneral.Add(income.Amount)
		} else {
			report.IncomeCategorized = report.IncomeCategorized.Add(income.Amount)
		}
	}

	report.Budgeted = report.SpendingBudgeted.Add(report.SavingsBudgeted)
	report.SpentSaved = report.SpendingSpent.Add(report.SavingsSaved)
	report.Remaining = report.SpendingRemaining.Add(report.SavingsRemaining)
	report.FreeIncome = report.IncomeGeneral.Sub(report.SpentSaved)

	return report
}
