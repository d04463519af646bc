package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	v1 "github.com/simplebudget/backend/internal/controllers/v1"
	"github.com/simplebudget/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestYearlyItemCreate() {
	user := createTestUser(suite.T(), v1.UserEditable{})
	_ = createTestBudget(suite.T(), v1.BudgetEditable{UserID: user.Data.ID, Year: 2026})
	category := createTestCategory(suite.T(), v1.CategoryEditable{UserID: user.Data.ID})

	response := createTestYearlyItem(suite.T(), v1.YearlyItemEditable{
		UserID:     user.Data.ID,
		Year:       2026,
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromInt(500),
	})

	require.NotNil(suite.T(), response.Data)
	require.Len(suite.T(), response.Data.Items, 12)

	for _, item := range response.Data.Items {
		assert.True(suite.T(), item.Amount.Equal(decimal.NewFromInt(500)))
		assert.False(suite.T(), item.Savings)
	}

	assert.True(suite.T(), response.Data.Rollover.Amount.IsZero())
	assert.Equal(suite.T(), category.Data.ID, response.Data.Rollover.CategoryID.UUID)
}

func (suite *TestSuiteStandard) TestYearlyItemCreateWithoutBudget() {
	user := createTestUser(suite.T(), v1.UserEditable{})
	category := createTestCategory(suite.T(), v1.CategoryEditable{UserID: user.Data.ID})

	_ = createTestYearlyItem(suite.T(), v1.YearlyItemEditable{
		UserID:     user.Data.ID,
		Year:       2026,
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromInt(500),
	}, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestYearlyItemDelete() {
	user := createTestUser(suite.T(), v1.UserEditable{})
	_ = createTestBudget(suite.T(), v1.BudgetEditable{UserID: user.Data.ID, Year: 2026})
	category := createTestCategory(suite.T(), v1.CategoryEditable{UserID: user.Data.ID})

	_ = createTestYearlyItem(suite.T(), v1.YearlyItemEditable{
		UserID:     user.Data.ID,
		Year:       2026,
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromInt(500),
	})

	path := fmt.Sprintf("http://example.com/v1/budget-items/yearly?user=%s&year=2026&category=%s", user.Data.ID, category.Data.ID)
	r := test.Request(suite.T(), http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// All twelve items are gone
	lr := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/budget-items?category=%s", category.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &lr, http.StatusOK)

	var list v1.BudgetItemListResponse
	test.DecodeResponse(suite.T(), &lr, &list)
	assert.Empty(suite.T(), list.Data)
}

func (suite *TestSuiteStandard) TestYearlyItemDeleteMissingParameters() {
	user := createTestUser(suite.T(), v1.UserEditable{})

	tests := []struct {
		name  string
		query string
	}{
		{"no user", "year=2026&category=" + uuid.New().String()},
		{"no year", fmt.Sprintf("user=%s&category=%s", user.Data.ID, uuid.New())},
		{"no category", fmt.Sprintf("user=%s&year=2026", user.Data.ID)},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("http://example.com/v1/budget-items/yearly?%s", tt.query)
			r := test.Request(t, http.MethodDelete, path, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}
