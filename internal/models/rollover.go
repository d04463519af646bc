package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Rollover is the budget surplus or deficit of one category at the end of a
// year. It is stored with the year it was earned in and consumed by the
// following year's spending report.
type Rollover struct {
	DefaultModel
	User           User            `json:"-"`
	UserID         uuid.UUID
	YearlyBudget   YearlyBudget    `json:"-"`
	YearlyBudgetID uuid.UUID       `gorm:"uniqueIndex:rollover_yearly_category"`
	Category       Category        `json:"-"`
	CategoryID     uuid.UUID       `gorm:"uniqueIndex:rollover_yearly_category"`
	Amount         decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

var ErrRolloverNotUnique = errors.New("there already is a rollover for this category and year")
