package models_test

import (
	"strings"

	"github.com/simplebudget/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestUserTrimWhitespace() {
	name := "\t Whitespace galore!   "
	note := " Some more whitespace in the notes    "

	user := suite.createTestUser(models.User{
		Name: name,
		Note: note,
	})

	assert.Equal(suite.T(), strings.TrimSpace(name), user.Name)
	assert.Equal(suite.T(), strings.TrimSpace(note), user.Note)
}

func (suite *TestSuiteStandard) TestUserNameNotUnique() {
	_ = suite.createTestUser(models.User{Name: "Riley"})

	err := models.DB.Create(&models.User{Name: "Riley"}).Error
	suite.Assert().ErrorIs(err, models.ErrUserNameNotUnique)
}
