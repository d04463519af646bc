package models_test

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simplebudget/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCreateYearlyItem() {
	user := suite.createTestUser(models.User{})
	budget := suite.createTestYearlyBudget(models.YearlyBudget{UserID: user.ID, Year: 2026})
	category := suite.createTestCategory(models.Category{UserID: user.ID})

	items, rollover, err := models.CreateYearlyItem(models.DB, user.ID, 2026, category.ID, decimal.NewFromInt(500), false)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), items, 12)

	for _, item := range items {
		assert.Equal(suite.T(), category.ID, item.CategoryID)
		assert.True(suite.T(), item.Amount.Equal(decimal.NewFromInt(500)))
		assert.False(suite.T(), item.Savings)
	}

	// The rollover belongs to the same year and starts at zero
	assert.Equal(suite.T(), budget.ID, rollover.YearlyBudgetID)
	assert.Equal(suite.T(), category.ID, rollover.CategoryID)
	assert.True(suite.T(), rollover.Amount.IsZero())
}

func (suite *TestSuiteStandard) TestCreateYearlyItemWithoutBudget() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})

	_, _, err := models.CreateYearlyItem(models.DB, user.ID, 2026, category.ID, decimal.NewFromInt(500), false)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestCreateYearlyItemTwice() {
	user := suite.createTestUser(models.User{})
	_ = suite.createTestYearlyBudget(models.YearlyBudget{UserID: user.ID, Year: 2026})
	category := suite.createTestCategory(models.Category{UserID: user.ID})

	_, _, err := models.CreateYearlyItem(models.DB, user.ID, 2026, category.ID, decimal.NewFromInt(500), false)
	require.Nil(suite.T(), err)

	// A second fan-out for the same category collides with the existing items
	_, _, err = models.CreateYearlyItem(models.DB, user.ID, 2026, category.ID, decimal.NewFromInt(200), false)
	suite.Assert().ErrorIs(err, models.ErrBudgetItemNotUnique)

	// The failed fan-out must not leave any rows behind
	var count int64
	err = models.DB.Model(&models.BudgetItem{}).Where(&models.BudgetItem{CategoryID: category.ID}).Count(&count).Error
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(12), count)
}

func (suite *TestSuiteStandard) TestDeleteYearlyItem() {
	user := suite.createTestUser(models.User{})
	_ = suite.createTestYearlyBudget(models.YearlyBudget{UserID: user.ID, Year: 2026})
	category := suite.createTestCategory(models.Category{UserID: user.ID})
	keep := suite.createTestCategory(models.Category{UserID: user.ID})

	_, _, err := models.CreateYearlyItem(models.DB, user.ID, 2026, category.ID, decimal.NewFromInt(500), false)
	require.Nil(suite.T(), err)
	_, _, err = models.CreateYearlyItem(models.DB, user.ID, 2026, keep.ID, decimal.NewFromInt(100), true)
	require.Nil(suite.T(), err)

	err = models.DeleteYearlyItem(models.DB, user.ID, 2026, category.ID)
	require.Nil(suite.T(), err)

	var items int64
	err = models.DB.Model(&models.BudgetItem{}).Where(&models.BudgetItem{CategoryID: category.ID}).Count(&items).Error
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(0), items)

	var rollovers int64
	err = models.DB.Model(&models.Rollover{}).Where(&models.Rollover{CategoryID: category.ID}).Count(&rollovers).Error
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(0), rollovers)

	// The other category is untouched
	err = models.DB.Model(&models.BudgetItem{}).Where(&models.BudgetItem{CategoryID: keep.ID}).Count(&items).Error
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(12), items)
}

func (suite *TestSuiteStandard) TestBudgetItemNotUnique() {
	user := suite.createTestUser(models.User{})
	budget := suite.createTestYearlyBudget(models.YearlyBudget{UserID: user.ID, Year: 2026})
	category := suite.createTestCategory(models.Category{UserID: user.ID})
	months := suite.monthlyBudgets(budget)

	_ = suite.createTestBudgetItem(models.BudgetItem{
		UserID:          user.ID,
		MonthlyBudgetID: months[0].ID,
		CategoryID:      category.ID,
		Amount:          decimal.NewFromInt(100),
	})

	err := models.DB.Create(&models.BudgetItem{
		UserID:          user.ID,
		MonthlyBudgetID: months[0].ID,
		CategoryID:      category.ID,
		Amount:          decimal.NewFromInt(200),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrBudgetItemNotUnique)
}

func (suite *TestSuiteStandard) TestBudgetItemRequiresCategory() {
	user := suite.createTestUser(models.User{})
	budget := suite.createTestYearlyBudget(models.YearlyBudget{UserID: user.ID, Year: 2026})
	months := suite.monthlyBudgets(budget)

	err := models.DB.Create(&models.BudgetItem{
		UserID:          user.ID,
		MonthlyBudgetID: months[0].ID,
		CategoryID:      uuid.New(),
		Amount:          decimal.NewFromInt(100),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
