// Package report implements the yearly and monthly budget calculations.
//
// All calculations are pure functions over a Snapshot that has been loaded
// upfront. The package never queries the database, which keeps the formulas
// deterministic and testable without a storage backend.
package report

import (
	"github.com/shopspring/decimal"
)

// Snapshot holds all rows of one budget year that the calculations operate on.
//
// Purchases, incomes and rollovers are reduced to the fields the formulas
// need. Categories are referenced by name, which is unique per user.
type Snapshot struct {
	Year int

	// Budget items for all twelve months, spending and savings alike.
	Items []Item

	// All purchases of the year.
	Purchases []Purchase

	// All incomes of the year.
	Incomes []Income

	// Rollovers from the previous year, keyed by category name.
	Rollovers []Rollover
}

// Item is the budgeted amount of one category for one month.
type Item struct {
	Category string
	Month    int // 1 to 12
	Amount   decimal.Decimal
	Savings  bool
}

// Purchase is one purchase row. Category is empty for uncategorized purchases.
type Purchase struct {
	Category string
	Month    int // 1 to 12
	Amount   decimal.Decimal
}

// Income is one income row. Category is empty for general income.
type Income struct {
	Category string
	Month    int // 1 to 12
	Amount   decimal.Decimal
}

// Rollover is the budget surplus or deficit a category carried over from the
// previous year.
type Rollover struct {
	Category string
	Amount   decimal.Decimal
}

// categorySum accumulates the full-year and year-to-date amounts of one
// category.
type categorySum struct {
	total decimal.Decimal
	ytd   decimal.Decimal
}

// purchaseSums sums all purchases by category name. Amounts of months after
// the cutoff only count towards the full-year sum.
func purchaseSums(purchases []Purchase, ytdMonth int) map[string]categorySum {
	sums := make(map[string]categorySum)

	for _, purchase := range purchases {
		sum := sums[purchase.Category]
		sum.total = sum.total.Add(purchase.Amount)
		if purchase.Month <= ytdMonth {
			sum.ytd = sum.ytd.Add(purchase.Amount)
		}
		sums[purchase.Category] = sum
	}

	return sums
}

// incomeSums sums all incomes by category name, analogous to purchaseSums.
func incomeSums(incomes []Income, ytdMonth int) map[string]categorySum {
	sums := make(map[string]categorySum)

	for _, income := range incomes {
		sum := sums[income.Category]
		sum.total = sum.total.Add(income.Amount)
		if income.Month <= ytdMonth {
			sum.ytd = sum.ytd.Add(income.Amount)
		}
		sums[income.Category] = sum
	}

	return sums
}

// rolloverSums returns the rollover amount for every category that has one.
func rolloverSums(rollovers []Rollover) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal, len(rollovers))

	for _, rollover := range rollovers {
		sums[rollover.Category] = sums[rollover.Category].Add(rollover.Amount)
	}

	return sums
}

// itemSums groups the budget items with the savings flag passed in by
// category name and sums their budgeted amounts.
func itemSums(items []Item, ytdMonth int, savings bool) map[string]categorySum {
	sums := make(map[string]categorySum)

	for _, item := range items {
		if item.Savings != savings {
			continue
		}

		sum := sums[item.Category]
		sum.total = sum.total.Add(item.Amount)
		if item.Month <= ytdMonth {
			sum.ytd = sum.ytd.Add(item.Amount)
		}
		sums[item.Category] = sum
	}

	return sums
}
