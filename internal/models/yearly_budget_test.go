package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/simplebudget/backend/internal/models"
	"github.com/simplebudget/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestYearlyBudgetCreatesTwelveMonths() {
	user := suite.createTestUser(models.User{})
	budget := suite.createTestYearlyBudget(models.YearlyBudget{UserID: user.ID, Year: 2026})

	months := suite.monthlyBudgets(budget)
	require.Len(suite.T(), months, 12)

	for i, month := range months {
		assert.True(suite.T(), month.Month.Equal(types.NewMonth(2026, time.Month(i+1))), "Month %d is %s", i+1, month.Month)
		assert.Equal(suite.T(), user.ID, month.UserID)
	}
}

func (suite *TestSuiteStandard) TestYearlyBudgetYearNotUnique() {
	user := suite.createTestUser(models.User{})
	_ = suite.createTestYearlyBudget(models.YearlyBudget{UserID: user.ID, Year: 2026})

	err := models.DB.Create(&models.YearlyBudget{UserID: user.ID, Year: 2026}).Error
	suite.Assert().ErrorIs(err, models.ErrYearlyBudgetYearNotUnique)

	// The same year is fine for another user
	otherUser := suite.createTestUser(models.User{})
	err = models.DB.Create(&models.YearlyBudget{UserID: otherUser.ID, Year: 2026}).Error
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestYearlyBudgetRequiresUser() {
	err := models.DB.Create(&models.YearlyBudget{UserID: uuid.New(), Year: 2026}).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
