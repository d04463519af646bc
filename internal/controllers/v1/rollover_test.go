package v1_test

import (
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	v1 "github.com/simplebudget/backend/internal/controllers/v1"
	"github.com/simplebudget/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestRolloversGet() {
	user := createTestUser(suite.T(), v1.UserEditable{})
	budget := createTestBudget(suite.T(), v1.BudgetEditable{UserID: user.Data.ID, Year: 2026})
	category := createTestCategory(suite.T(), v1.CategoryEditable{UserID: user.Data.ID})

	_ = createTestYearlyItem(suite.T(), v1.YearlyItemEditable{
		UserID:     user.Data.ID,
		Year:       2026,
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromInt(500),
	})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/rollovers?budget=%s", budget.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RolloverListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.True(suite.T(), response.Data[0].Amount.IsZero(), "Rollover starts with a zero amount")
	assert.Equal(suite.T(), category.Data.ID, response.Data[0].CategoryID.UUID)
}

func (suite *TestSuiteStandard) TestRolloversUpdate() {
	user := createTestUser(suite.T(), v1.UserEditable{})
	_ = createTestBudget(suite.T(), v1.BudgetEditable{UserID: user.Data.ID, Year: 2026})
	category := createTestCategory(suite.T(), v1.CategoryEditable{UserID: user.Data.ID})

	item := createTestYearlyItem(suite.T(), v1.YearlyItemEditable{
		UserID:     user.Data.ID,
		Year:       2026,
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromInt(500),
	})

	r := test.Request(suite.T(), http.MethodPatch, item.Data.Rollover.Links.Self, map[string]any{
		"amount": "50",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RolloverResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromInt(50)), "Amount is %s", response.Data.Amount)
}

// Rollovers are created and deleted with their budget items, the endpoint
// only reads and updates them.
func (suite *TestSuiteStandard) TestRolloversNoCreateDelete() {
	user := createTestUser(suite.T(), v1.UserEditable{})
	_ = createTestBudget(suite.T(), v1.BudgetEditable{UserID: user.Data.ID, Year: 2026})
	category := createTestCategory(suite.T(), v1.CategoryEditable{UserID: user.Data.ID})

	item := createTestYearlyItem(suite.T(), v1.YearlyItemEditable{
		UserID:     user.Data.ID,
		Year:       2026,
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromInt(500),
	})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/rollovers", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusMethodNotAllowed)

	r = test.Request(suite.T(), http.MethodDelete, item.Data.Rollover.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusMethodNotAllowed)

	r = test.Request(suite.T(), http.MethodOptions, item.Data.Rollover.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, PATCH", r.Header().Get("allow"))
}
