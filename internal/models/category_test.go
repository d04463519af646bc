package models_test

import (
	"strings"

	"github.com/google/uuid"
	"github.com/simplebudget/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoryTrimWhitespace() {
	name := "\t Groceries  "
	note := " Everything edible    "

	category := suite.createTestCategory(models.Category{
		Name:   name,
		Note:   note,
		UserID: suite.createTestUser(models.User{}).ID,
	})

	assert.Equal(suite.T(), strings.TrimSpace(name), category.Name)
	assert.Equal(suite.T(), strings.TrimSpace(note), category.Note)
}

func (suite *TestSuiteStandard) TestCategoryNameNotUniquePerUser() {
	user := suite.createTestUser(models.User{})
	_ = suite.createTestCategory(models.Category{Name: "Groceries", UserID: user.ID})

	err := models.DB.Create(&models.Category{Name: "Groceries", UserID: user.ID}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)

	// The same name is fine for another user
	otherUser := suite.createTestUser(models.User{})
	err = models.DB.Create(&models.Category{Name: "Groceries", UserID: otherUser.ID}).Error
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestCategoryRequiresUser() {
	err := models.DB.Create(&models.Category{Name: "Orphaned", UserID: uuid.New()}).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
