package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	v1 "github.com/simplebudget/backend/internal/controllers/v1"
	"github.com/simplebudget/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reportSetup creates a user with a 2026 budget, a spending category
// budgeted with 500 per month and a savings category budgeted with 200 per
// month, plus a purchase of 54 in March and a general income of 2800 in
// January.
func (suite *TestSuiteStandard) reportSetup() v1.UserResponse {
	user := createTestUser(suite.T(), v1.UserEditable{})
	_ = createTestBudget(suite.T(), v1.BudgetEditable{UserID: user.Data.ID, Year: 2026})

	groceries := createTestCategory(suite.T(), v1.CategoryEditable{UserID: user.Data.ID, Name: "Groceries"})
	vacation := createTestCategory(suite.T(), v1.CategoryEditable{UserID: user.Data.ID, Name: "Vacation"})

	_ = createTestYearlyItem(suite.T(), v1.YearlyItemEditable{
		UserID:     user.Data.ID,
		Year:       2026,
		CategoryID: groceries.Data.ID,
		Amount:     decimal.NewFromInt(500),
	})
	_ = createTestYearlyItem(suite.T(), v1.YearlyItemEditable{
		UserID:     user.Data.ID,
		Year:       2026,
		CategoryID: vacation.Data.ID,
		Amount:     decimal.NewFromInt(200),
		Savings:    true,
	})

	groceriesID := groceries.Data.ID
	_ = createTestPurchase(suite.T(), v1.PurchaseEditable{
		UserID:     user.Data.ID,
		Item:       "Weekly groceries",
		Date:       time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromInt(54),
		CategoryID: &groceriesID,
	})
	_ = createTestIncome(suite.T(), v1.IncomeEditable{
		UserID: user.Data.ID,
		Date:   time.Date(2026, time.January, 31, 12, 0, 0, 0, time.UTC),
		Amount: decimal.NewFromInt(2800),
	})

	return user
}

func (suite *TestSuiteStandard) TestYearlyReport() {
	user := suite.reportSetup()

	path := fmt.Sprintf("http://example.com/v1/reports/yearly?user=%s&year=2026&ytdMonth=6", user.Data.ID)
	r := test.Request(suite.T(), http.MethodGet, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.YearlyReportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	report := response.Data
	assert.Equal(suite.T(), 2026, report.Year)
	assert.Equal(suite.T(), 6, report.YTDMonth)

	require.Len(suite.T(), report.BudgetItems, 1)
	row := report.BudgetItems[0]
	assert.Equal(suite.T(), "Groceries", row.Category)
	assert.True(suite.T(), row.Budgeted.Equal(decimal.NewFromInt(6000)), "Budgeted is %s", row.Budgeted)
	assert.True(suite.T(), row.Spent.Equal(decimal.NewFromInt(54)), "Spent is %s", row.Spent)
	assert.True(suite.T(), row.Diff.Equal(decimal.NewFromInt(5946)), "Diff is %s", row.Diff)
	assert.True(suite.T(), row.BudgetedYTD.Equal(decimal.NewFromInt(3000)), "BudgetedYTD is %s", row.BudgetedYTD)
	assert.True(suite.T(), row.DiffYTD.Equal(decimal.NewFromInt(2946)), "DiffYTD is %s", row.DiffYTD)

	require.Len(suite.T(), report.SavingsItems, 1)
	savings := report.SavingsItems[0]
	assert.Equal(suite.T(), "Vacation", savings.Category)
	assert.True(suite.T(), savings.Budgeted.Equal(decimal.NewFromInt(2400)), "Budgeted is %s", savings.Budgeted)
	assert.True(suite.T(), savings.Diff.Equal(decimal.NewFromInt(2400)), "Diff is %s", savings.Diff)

	assert.True(suite.T(), report.Income.Total.Equal(decimal.NewFromInt(2800)), "Income total is %s", report.Income.Total)
	assert.True(suite.T(), report.Budgeted.Equal(decimal.NewFromInt(8400)), "Budgeted is %s", report.Budgeted)
	assert.True(suite.T(), report.FreeIncome.Equal(decimal.NewFromInt(8346)), "FreeIncome is %s", report.FreeIncome)
}

func (suite *TestSuiteStandard) TestYearlyReportParameters() {
	user := suite.reportSetup()

	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"no user", "year=2026", http.StatusBadRequest},
		{"no year", fmt.Sprintf("user=%s", user.Data.ID), http.StatusBadRequest},
		{"ytdMonth out of range", fmt.Sprintf("user=%s&year=2026&ytdMonth=13", user.Data.ID), http.StatusBadRequest},
		{"no budget for year", fmt.Sprintf("user=%s&year=2030", user.Data.ID), http.StatusNotFound},
		{"unknown user", fmt.Sprintf("user=%s&year=2026", uuid.New()), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("http://example.com/v1/reports/yearly?%s", tt.query)
			r := test.Request(t, http.MethodGet, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestMonthlyReport() {
	user := suite.reportSetup()

	path := fmt.Sprintf("http://example.com/v1/reports/monthly?user=%s&year=2026&month=3", user.Data.ID)
	r := test.Request(suite.T(), http.MethodGet, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthlyReportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	report := response.Data
	require.Len(suite.T(), report.BudgetItems, 1)
	row := report.BudgetItems[0]
	assert.Equal(suite.T(), "Groceries", row.Category)
	assert.True(suite.T(), row.Budgeted.Equal(decimal.NewFromInt(500)), "Budgeted is %s", row.Budgeted)
	assert.True(suite.T(), row.Spent.Equal(decimal.NewFromInt(54)), "Spent is %s", row.Spent)
	assert.True(suite.T(), row.Diff.Equal(decimal.NewFromInt(446)), "Diff is %s", row.Diff)

	require.Len(suite.T(), report.SavingsItems, 1)
	assert.Equal(suite.T(), "Vacation", report.SavingsItems[0].Category)

	// The general income arrived in January, March has none
	assert.True(suite.T(), report.IncomeGeneral.IsZero(), "IncomeGeneral is %s", report.IncomeGeneral)
}

func (suite *TestSuiteStandard) TestMonthlyReportParameters() {
	user := suite.reportSetup()

	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"no user", "year=2026&month=3", http.StatusBadRequest},
		{"no year", fmt.Sprintf("user=%s&month=3", user.Data.ID), http.StatusBadRequest},
		{"no month", fmt.Sprintf("user=%s&year=2026", user.Data.ID), http.StatusBadRequest},
		{"month out of range", fmt.Sprintf("user=%s&year=2026&month=0", user.Data.ID), http.StatusBadRequest},
		{"no budget for year", fmt.Sprintf("user=%s&year=2030&month=3", user.Data.ID), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("http://example.com/v1/reports/monthly?%s", tt.query)
			r := test.Request(t, http.MethodGet, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}
