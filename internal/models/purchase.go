package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Purchase is a dated transaction. In a spending category it spends budget
// down, in a savings category it models a transfer into the reserve.
// Purchases without a category count against the overall spending budget.
type Purchase struct {
	DefaultModel
	User       User            `json:"-"`
	UserID     uuid.UUID
	Item       string
	Date       time.Time
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Category   *Category       `json:"-"`
	CategoryID *uuid.UUID
	Savings    bool
	Source     string
	Location   string
	Note       string
}

func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	_ = p.DefaultModel.BeforeCreate(tx)

	// Purchases created without a category get one from the match rules.
	if p.CategoryID == nil {
		return p.applyMatchRules(tx)
	}

	return nil
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (p *Purchase) AfterFind(_ *gorm.DB) (err error) {
	p.Date = p.Date.In(time.UTC)
	return nil
}

// BeforeSave sets the timezone for the Date for UTC.
func (p *Purchase) BeforeSave(_ *gorm.DB) (err error) {
	if p.Date.IsZero() {
		p.Date = time.Now().In(time.UTC)
	} else {
		p.Date = p.Date.In(time.UTC)
	}

	p.Item = strings.TrimSpace(p.Item)
	p.Source = strings.TrimSpace(p.Source)
	p.Location = strings.TrimSpace(p.Location)
	p.Note = strings.TrimSpace(p.Note)

	return nil
}

func (p *Purchase) applyMatchRules(tx *gorm.DB) error {
	var rules []MatchRule
	err := tx.Where(&MatchRule{UserID: p.UserID}).Order("priority asc").Find(&rules).Error
	if err != nil {
		return err
	}

	for _, rule := range rules {
		if rule.Matches(p.Item) || rule.Matches(p.Source) {
			id := rule.CategoryID
			p.CategoryID = &id
			return nil
		}
	}

	return nil
}
