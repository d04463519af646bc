package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a named bucket for budget items, purchases and income.
// Whether a category is used for spending or saving is a property of the
// budget items pointing to it, not of the category itself.
type Category struct {
	DefaultModel
	Name     string    `gorm:"uniqueIndex:category_user_name"`
	User     User      `json:"-"`
	UserID   uuid.UUID `gorm:"uniqueIndex:category_user_name"`
	Note     string
	Archived bool
}

var ErrCategoryNameNotUnique = errors.New("the category name is already in use for this user")

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Category)
	return tx.First(&User{}, toSave.UserID).Error
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)

	return nil
}
