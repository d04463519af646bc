package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// User is the owner of all other resources. There is no authentication,
// users only scope the data.
type User struct {
	DefaultModel
	Name string `gorm:"uniqueIndex:user_name"`
	Note string
}

var ErrUserNameNotUnique = errors.New("the user name is already in use")

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Note = strings.TrimSpace(u.Note)

	return nil
}
