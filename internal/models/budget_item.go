package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetItem is the budgeted amount for one category in one month. The
// savings flag decides whether the category counts as a spending budget or
// as a savings goal in the reports.
type BudgetItem struct {
	DefaultModel
	User            User            `json:"-"`
	UserID          uuid.UUID
	MonthlyBudget   MonthlyBudget   `json:"-"`
	MonthlyBudgetID uuid.UUID       `gorm:"uniqueIndex:budget_item_monthly_category"`
	Category        Category        `json:"-"`
	CategoryID      uuid.UUID       `gorm:"uniqueIndex:budget_item_monthly_category"`
	Amount          decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Savings         bool
	Note            string
}

var ErrBudgetItemNotUnique = errors.New("there already is a budget item for this category and month")

func (i *BudgetItem) BeforeCreate(tx *gorm.DB) error {
	_ = i.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*BudgetItem)
	return tx.First(&Category{}, toSave.CategoryID).Error
}

// CreateYearlyItem creates a budget item for the category in all twelve
// months of the year, plus the rollover row of the category for that year.
// The rollover starts at zero and is edited once the previous year is
// settled.
//
// All thirteen rows are created in one transaction. A partial fan-out would
// break the aggregation, so a failure rolls back everything.
func CreateYearlyItem(db *gorm.DB, userID uuid.UUID, year int, categoryID uuid.UUID, amount decimal.Decimal, savings bool) ([]BudgetItem, Rollover, error) {
	var budget YearlyBudget
	err := db.Where(&YearlyBudget{UserID: userID, Year: year}).First(&budget).Error
	if err != nil {
		return nil, Rollover{}, err
	}

	var months []MonthlyBudget
	err = db.Where(&MonthlyBudget{YearlyBudgetID: budget.ID}).Order("month asc").Find(&months).Error
	if err != nil {
		return nil, Rollover{}, err
	}

	items := make([]BudgetItem, 0, len(months))
	for _, month := range months {
		items = append(items, BudgetItem{
			UserID:          userID,
			MonthlyBudgetID: month.ID,
			CategoryID:      categoryID,
			Amount:          amount,
			Savings:         savings,
		})
	}

	rollover := Rollover{
		UserID:         userID,
		YearlyBudgetID: budget.ID,
		CategoryID:     categoryID,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for idx := range items {
			if err := tx.Create(&items[idx]).Error; err != nil {
				return err
			}
		}

		return tx.Create(&rollover).Error
	})
	if err != nil {
		return nil, Rollover{}, err
	}

	return items, rollover, nil
}

// DeleteYearlyItem removes the budget items of the category for all twelve
// months of the year together with the category's rollover row, in one
// transaction.
func DeleteYearlyItem(db *gorm.DB, userID uuid.UUID, year int, categoryID uuid.UUID) error {
	var budget YearlyBudget
	err := db.Where(&YearlyBudget{UserID: userID, Year: year}).First(&budget).Error
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		months := tx.Model(&MonthlyBudget{}).Select("id").Where(&MonthlyBudget{YearlyBudgetID: budget.ID})

		err := tx.Where("monthly_budget_id IN (?)", months).Where(&BudgetItem{CategoryID: categoryID}).Delete(&BudgetItem{}).Error
		if err != nil {
			return err
		}

		return tx.Where(&Rollover{YearlyBudgetID: budget.ID, CategoryID: categoryID}).Delete(&Rollover{}).Error
	})
}
