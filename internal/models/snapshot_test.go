package models_test

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/simplebudget/backend/internal/models"
	"github.com/simplebudget/backend/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reportSetup creates a user with a spending and a savings category, budgets
// for 2025 and 2026 and the 2026 budget items.
//
// Groceries is budgeted with 500 per month, Vacation with 200 per month as
// savings. The 2025 groceries rollover is set to 50.
func (suite *TestSuiteStandard) reportSetup() (models.User, models.Category, models.Category) {
	user := suite.createTestUser(models.User{})
	groceries := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Groceries"})
	vacation := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Vacation"})

	_ = suite.createTestYearlyBudget(models.YearlyBudget{UserID: user.ID, Year: 2025})
	_ = suite.createTestYearlyBudget(models.YearlyBudget{UserID: user.ID, Year: 2026})

	_, rollover, err := models.CreateYearlyItem(models.DB, user.ID, 2025, groceries.ID, decimal.NewFromInt(400), false)
	require.Nil(suite.T(), err)

	err = models.DB.Model(&rollover).Select("Amount").Updates(models.Rollover{Amount: decimal.NewFromInt(50)}).Error
	require.Nil(suite.T(), err)

	_, _, err = models.CreateYearlyItem(models.DB, user.ID, 2026, groceries.ID, decimal.NewFromInt(500), false)
	require.Nil(suite.T(), err)
	_, _, err = models.CreateYearlyItem(models.DB, user.ID, 2026, vacation.ID, decimal.NewFromInt(200), true)
	require.Nil(suite.T(), err)

	return user, groceries, vacation
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func (suite *TestSuiteStandard) TestYearlySnapshot() {
	user, groceries, _ := suite.reportSetup()

	_ = suite.createTestPurchase(models.Purchase{
		UserID:     user.ID,
		Item:       "Weekly groceries",
		Date:       date(2026, time.March, 14),
		Amount:     decimal.NewFromInt(54),
		CategoryID: &groceries.ID,
	})
	_ = suite.createTestPurchase(models.Purchase{
		UserID: user.ID,
		Item:   "Odds and ends",
		Date:   date(2026, time.May, 2),
		Amount: decimal.NewFromInt(20),
	})

	// A purchase in the previous year must not show up
	_ = suite.createTestPurchase(models.Purchase{
		UserID:     user.ID,
		Item:       "Last year",
		Date:       date(2025, time.December, 30),
		Amount:     decimal.NewFromInt(100),
		CategoryID: &groceries.ID,
	})

	_ = suite.createTestIncome(models.Income{
		UserID: user.ID,
		Date:   date(2026, time.January, 31),
		Amount: decimal.NewFromInt(2800),
	})
	_ = suite.createTestIncome(models.Income{
		UserID:     user.ID,
		Date:       date(2026, time.February, 10),
		Amount:     decimal.NewFromInt(30),
		CategoryID: &groceries.ID,
	})

	snapshot, err := models.YearlySnapshot(models.DB, user.ID, 2026)
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), 2026, snapshot.Year)
	assert.Len(suite.T(), snapshot.Items, 24)

	require.Len(suite.T(), snapshot.Purchases, 2)
	for _, purchase := range snapshot.Purchases {
		switch purchase.Month {
		case 3:
			assert.Equal(suite.T(), "Groceries", purchase.Category)
			assert.True(suite.T(), purchase.Amount.Equal(decimal.NewFromInt(54)))
		case 5:
			assert.Equal(suite.T(), "", purchase.Category)
			assert.True(suite.T(), purchase.Amount.Equal(decimal.NewFromInt(20)))
		default:
			suite.Assert().Failf("unexpected purchase", "%#v", purchase)
		}
	}

	require.Len(suite.T(), snapshot.Incomes, 2)

	// The rollover comes from the 2025 budget
	require.Len(suite.T(), snapshot.Rollovers, 1)
	assert.Equal(suite.T(), "Groceries", snapshot.Rollovers[0].Category)
	assert.True(suite.T(), snapshot.Rollovers[0].Amount.Equal(decimal.NewFromInt(50)))
}

func (suite *TestSuiteStandard) TestYearlySnapshotNoPreviousYear() {
	user := suite.createTestUser(models.User{})
	_ = suite.createTestYearlyBudget(models.YearlyBudget{UserID: user.ID, Year: 2026})

	snapshot, err := models.YearlySnapshot(models.DB, user.ID, 2026)
	require.Nil(suite.T(), err)
	assert.Empty(suite.T(), snapshot.Rollovers)
}

func (suite *TestSuiteStandard) TestYearlySnapshotNoBudget() {
	user := suite.createTestUser(models.User{})

	_, err := models.YearlySnapshot(models.DB, user.ID, 2026)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestMonthlySnapshot() {
	user, groceries, _ := suite.reportSetup()

	_ = suite.createTestPurchase(models.Purchase{
		UserID:     user.ID,
		Item:       "Weekly groceries",
		Date:       date(2026, time.March, 14),
		Amount:     decimal.NewFromInt(54),
		CategoryID: &groceries.ID,
	})

	// A purchase in another month must not show up
	_ = suite.createTestPurchase(models.Purchase{
		UserID:     user.ID,
		Item:       "April groceries",
		Date:       date(2026, time.April, 2),
		Amount:     decimal.NewFromInt(60),
		CategoryID: &groceries.ID,
	})

	snapshot, err := models.MonthlySnapshot(models.DB, user.ID, 2026, 3)
	require.Nil(suite.T(), err)

	// One item per category for the month
	assert.Len(suite.T(), snapshot.Items, 2)
	for _, item := range snapshot.Items {
		assert.Equal(suite.T(), 3, item.Month)
	}

	require.Len(suite.T(), snapshot.Purchases, 1)
	assert.True(suite.T(), snapshot.Purchases[0].Amount.Equal(decimal.NewFromInt(54)))
}

func (suite *TestSuiteStandard) TestMonthlySnapshotNoBudget() {
	user := suite.createTestUser(models.User{})

	_, err := models.MonthlySnapshot(models.DB, user.ID, 2026, 3)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

// The yearly report computed from database data must apply the previous
// year's rollover and exclude rolled-over categories from the free income.
func (suite *TestSuiteStandard) TestYearlyReportFromSnapshot() {
	user, groceries, _ := suite.reportSetup()

	_ = suite.createTestPurchase(models.Purchase{
		UserID:     user.ID,
		Item:       "Weekly groceries",
		Date:       date(2026, time.March, 14),
		Amount:     decimal.NewFromInt(54),
		CategoryID: &groceries.ID,
	})
	_ = suite.createTestIncome(models.Income{
		UserID:     user.ID,
		Date:       date(2026, time.February, 10),
		Amount:     decimal.NewFromInt(30),
		CategoryID: &groceries.ID,
	})

	snapshot, err := models.YearlySnapshot(models.DB, user.ID, 2026)
	require.Nil(suite.T(), err)

	yearly := report.ComputeYearly(snapshot, 12)

	require.Len(suite.T(), yearly.BudgetItems, 1)
	row := yearly.BudgetItems[0]
	assert.Equal(suite.T(), "Groceries", row.Category)
	assert.True(suite.T(), row.Rollover.Equal(decimal.NewFromInt(50)))
	assert.True(suite.T(), row.Diff.Equal(decimal.NewFromInt(6026)), "Diff is %s", row.Diff)
	assert.True(suite.T(), row.RemainingCurrentYear.Equal(decimal.NewFromInt(5976)), "RemainingCurrentYear is %s", row.RemainingCurrentYear)

	// Groceries has a rollover, so only the vacation budget counts
	// towards the free income
	assert.True(suite.T(), yearly.FreeIncome.Equal(decimal.NewFromInt(2400)), "FreeIncome is %s", yearly.FreeIncome)
}
