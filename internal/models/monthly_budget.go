package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simplebudget/backend/internal/types"
	"gorm.io/gorm"
)

// MonthlyBudget is one month of a yearly budget.
type MonthlyBudget struct {
	DefaultModel
	User           User         `json:"-"`
	UserID         uuid.UUID
	YearlyBudget   YearlyBudget `json:"-"`
	YearlyBudgetID uuid.UUID    `gorm:"uniqueIndex:monthly_budget_yearly_month"`
	Month          types.Month  `gorm:"uniqueIndex:monthly_budget_yearly_month"`

	// How much income is expected in this month. Informational, the
	// reports do not use it.
	ExpectedIncome decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Note           string
}

var ErrMonthlyBudgetMonthNotUnique = errors.New("there already is a monthly budget for this month")

func (b *MonthlyBudget) BeforeSave(_ *gorm.DB) error {
	b.Note = strings.TrimSpace(b.Note)

	return nil
}
