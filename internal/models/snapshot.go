package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/simplebudget/backend/internal/report"
	"github.com/simplebudget/backend/internal/types"
	"gorm.io/gorm"
)

// YearlySnapshot loads everything the yearly report needs in one pass: the
// budget items of all twelve months, the purchases and incomes of the year
// and the rollovers earned in the previous year.
//
// If the user has no budget for the year, the lookup error is returned and
// no snapshot is built. Missing rows anywhere else are fine, the report
// treats them as zero.
func YearlySnapshot(db *gorm.DB, userID uuid.UUID, year int) (report.Snapshot, error) {
	var budget YearlyBudget
	err := db.Where(&YearlyBudget{UserID: userID, Year: year}).First(&budget).Error
	if err != nil {
		return report.Snapshot{}, err
	}

	months, err := budgetMonths(db, budget.ID)
	if err != nil {
		return report.Snapshot{}, err
	}

	names, err := categoryNames(db, userID)
	if err != nil {
		return report.Snapshot{}, err
	}

	snapshot := report.Snapshot{Year: year}

	monthIDs := make([]uuid.UUID, 0, len(months))
	for id := range months {
		monthIDs = append(monthIDs, id)
	}

	var items []BudgetItem
	err = db.Where("monthly_budget_id IN (?)", monthIDs).Find(&items).Error
	if err != nil {
		return report.Snapshot{}, err
	}

	for _, item := range items {
		snapshot.Items = append(snapshot.Items, report.Item{
			Category: names[item.CategoryID],
			Month:    months[item.MonthlyBudgetID],
			Amount:   item.Amount,
			Savings:  item.Savings,
		})
	}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	until := from.AddDate(1, 0, 0)

	snapshot.Purchases, snapshot.Incomes, err = transactions(db, userID, names, from, until)
	if err != nil {
		return report.Snapshot{}, err
	}

	// Rollovers are stored with the year they were earned in and consumed
	// by the following year, so the report for this year reads last year's.
	var previous YearlyBudget
	err = db.Where(&YearlyBudget{UserID: userID, Year: year - 1}).First(&previous).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return snapshot, nil
		}
		return report.Snapshot{}, err
	}

	var rollovers []Rollover
	err = db.Where(&Rollover{YearlyBudgetID: previous.ID}).Find(&rollovers).Error
	if err != nil {
		return report.Snapshot{}, err
	}

	for _, rollover := range rollovers {
		snapshot.Rollovers = append(snapshot.Rollovers, report.Rollover{
			Category: names[rollover.CategoryID],
			Amount:   rollover.Amount,
		})
	}

	return snapshot, nil
}

// MonthlySnapshot loads the rows of a single month for the monthly report.
// If the user has no budget for the year, the lookup error is returned.
func MonthlySnapshot(db *gorm.DB, userID uuid.UUID, year int, month int) (report.Snapshot, error) {
	var budget YearlyBudget
	err := db.Where(&YearlyBudget{UserID: userID, Year: year}).First(&budget).Error
	if err != nil {
		return report.Snapshot{}, err
	}

	var monthlyBudget MonthlyBudget
	err = db.Where(&MonthlyBudget{
		YearlyBudgetID: budget.ID,
		Month:          types.NewMonth(year, time.Month(month)),
	}).First(&monthlyBudget).Error
	if err != nil {
		return report.Snapshot{}, err
	}

	names, err := categoryNames(db, userID)
	if err != nil {
		return report.Snapshot{}, err
	}

	snapshot := report.Snapshot{Year: year}

	var items []BudgetItem
	err = db.Where(&BudgetItem{MonthlyBudgetID: monthlyBudget.ID}).Find(&items).Error
	if err != nil {
		return report.Snapshot{}, err
	}

	for _, item := range items {
		snapshot.Items = append(snapshot.Items, report.Item{
			Category: names[item.CategoryID],
			Month:    month,
			Amount:   item.Amount,
			Savings:  item.Savings,
		})
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	until := from.AddDate(0, 1, 0)

	snapshot.Purchases, snapshot.Incomes, err = transactions(db, userID, names, from, until)
	if err != nil {
		return report.Snapshot{}, err
	}

	return snapshot, nil
}

// budgetMonths maps the monthly budget IDs of a yearly budget to their
// month numbers.
func budgetMonths(db *gorm.DB, yearlyBudgetID uuid.UUID) (map[uuid.UUID]int, error) {
	var budgets []MonthlyBudget
	err := db.Where(&MonthlyBudget{YearlyBudgetID: yearlyBudgetID}).Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	months := make(map[uuid.UUID]int, len(budgets))
	for _, budget := range budgets {
		months[budget.ID] = budget.Month.Number()
	}

	return months, nil
}

// categoryNames maps the category IDs of a user to their names. The report
// joins on category names, which are unique per user.
func categoryNames(db *gorm.DB, userID uuid.UUID) (map[uuid.UUID]string, error) {
	var categories []Category
	err := db.Where(&Category{UserID: userID}).Find(&categories).Error
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(categories))
	for _, category := range categories {
		names[category.ID] = category.Name
	}

	return names, nil
}

// transactions loads the purchases and incomes of a user in [from, until).
func transactions(db *gorm.DB, userID uuid.UUID, names map[uuid.UUID]string, from, until time.Time) ([]report.Purchase, []report.Income, error) {
	var purchases []Purchase
	err := db.Where(&Purchase{UserID: userID}).Where("date >= ? AND date < ?", from, until).Find(&purchases).Error
	if err != nil {
		return nil, nil, err
	}

	reportPurchases := make([]report.Purchase, 0, len(purchases))
	for _, purchase := range purchases {
		name := ""
		if purchase.CategoryID != nil {
			name = names[*purchase.CategoryID]
		}

		reportPurchases = append(reportPurchases, report.Purchase{
			Category: name,
			Month:    int(purchase.Date.Month()),
			Amount:   purchase.Amount,
		})
	}

	var incomes []Income
	err = db.Where(&Income{UserID: userID}).Where("date >= ? AND date < ?", from, until).Find(&incomes).Error
	if err != nil {
		return nil, nil, err
	}

	reportIncomes := make([]report.Income, 0, len(incomes))
	for _, income := range incomes {
		name := ""
		if income.CategoryID != nil {
			name = names[*income.CategoryID]
		}

		reportIncomes = append(reportIncomes, report.Income{
			Category: name,
			Month:    int(income.Date.Month()),
			Amount:   income.Amount,
		})
	}

	return reportPurchases, reportIncomes, nil
}
