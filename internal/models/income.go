package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income is money coming in. Income without a category is general income
// and feeds the free income figure, income with a category counts towards
// that category's activity.
type Income struct {
	DefaultModel
	User       User            `json:"-"`
	UserID     uuid.UUID
	Date       time.Time
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Category   *Category       `json:"-"`
	CategoryID *uuid.UUID
	Source     string
	Payer      string
	Note       string
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (i *Income) AfterFind(_ *gorm.DB) (err error) {
	i.Date = i.Date.In(time.UTC)
	return nil
}

// BeforeSave sets the timezone for the Date for UTC.
func (i *Income) BeforeSave(_ *gorm.DB) (err error) {
	if i.Date.IsZero() {
		i.Date = time.Now().In(time.UTC)
	} else {
		i.Date = i.Date.In(time.UTC)
	}

	i.Source = strings.TrimSpace(i.Source)
	i.Payer = strings.TrimSpace(i.Payer)
	i.Note = strings.TrimSpace(i.Note)

	return nil
}
