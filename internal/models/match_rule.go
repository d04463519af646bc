package models

import (
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
)

// MatchRule assigns a category to purchases that are created without one.
// Rules are evaluated in priority order, the first matching rule wins.
type MatchRule struct {
	DefaultModel
	User       User      `json:"-"`
	UserID     uuid.UUID
	Category   Category  `json:"-"`
	CategoryID uuid.UUID
	Priority   uint
	Match      string
}

// Matches reports whether the rule's glob pattern matches the text.
func (r MatchRule) Matches(text string) bool {
	return text != "" && glob.Glob(r.Match, text)
}
