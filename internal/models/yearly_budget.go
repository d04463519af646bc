package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/simplebudget/backend/internal/types"
	"gorm.io/gorm"
)

// YearlyBudget is the planning period for one calendar year. It always has
// exactly twelve monthly budgets, which are created together with it.
type YearlyBudget struct {
	DefaultModel
	User   User      `json:"-"`
	UserID uuid.UUID `gorm:"uniqueIndex:yearly_budget_user_year"`
	Year   int       `gorm:"uniqueIndex:yearly_budget_user_year"`
	Note   string
}

var ErrYearlyBudgetYearNotUnique = errors.New("there already is a budget for this year")

func (b *YearlyBudget) BeforeCreate(tx *gorm.DB) error {
	_ = b.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*YearlyBudget)
	return tx.First(&User{}, toSave.UserID).Error
}

func (b *YearlyBudget) BeforeSave(_ *gorm.DB) error {
	b.Note = strings.TrimSpace(b.Note)

	return nil
}

// AfterCreate creates the twelve monthly budgets of the year. The hook runs
// inside the INSERT transaction, so either the yearly budget and all twelve
// months exist or none of them do.
func (b *YearlyBudget) AfterCreate(tx *gorm.DB) error {
	months := make([]MonthlyBudget, 0, 12)
	for month := time.January; month <= time.December; month++ {
		months = append(months, MonthlyBudget{
			UserID:         b.UserID,
			YearlyBudgetID: b.ID,
			Month:          types.NewMonth(b.Year, month),
		})
	}

	return tx.Create(&months).Error
}
