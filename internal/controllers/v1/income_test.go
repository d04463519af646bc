package v1_test

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	v1 "github.com/simplebudget/backend/internal/controllers/v1"
	"github.com/simplebudget/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestIncomesCreate() {
	user := createTestUser(suite.T(), v1.UserEditable{})

	income := createTestIncome(suite.T(), v1.IncomeEditable{
		UserID: user.Data.ID,
		Amount: decimal.NewFromInt(2800),
		Source: "Salary",
		Payer:  "ACME Inc.",
	})

	assert.Equal(suite.T(), "Salary", income.Data.Source)
	assert.False(suite.T(), income.Data.Date.IsZero(), "Date is not defaulted")
	assert.Nil(suite.T(), income.Data.CategoryID, "Income without category is general income")
}

func (suite *TestSuiteStandard) TestIncomesCreateUnknownUser() {
	_ = createTestIncome(suite.T(), v1.IncomeEditable{
		UserID: uuid.New(),
		Amount: decimal.NewFromInt(2800),
	}, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestIncomesGetFilter() {
	user := createTestUser(suite.T(), v1.UserEditable{})
	category := createTestCategory(suite.T(), v1.CategoryEditable{UserID: user.Data.ID})
	categoryID := category.Data.ID

	_ = createTestIncome(suite.T(), v1.IncomeEditable{UserID: user.Data.ID, Amount: decimal.NewFromInt(2800), Source: "Salary"})
	_ = createTestIncome(suite.T(), v1.IncomeEditable{UserID: user.Data.ID, Amount: decimal.NewFromInt(50), Source: "Cash gift", CategoryID: &categoryID})

	tests := []struct {
		query string
		count int
	}{
		{fmt.Sprintf("user=%s", user.Data.ID), 2},
		{fmt.Sprintf("category=%s", categoryID), 1},
	}

	for _, tt := range tests {
		r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/incomes?%s", tt.query), "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var response v1.IncomeListResponse
		test.DecodeResponse(suite.T(), &r, &response)
		assert.Len(suite.T(), response.Data, tt.count, "Wrong count for query %q", tt.query)
	}
}

func (suite *TestSuiteStandard) TestIncomesUpdateDelete() {
	user := createTestUser(suite.T(), v1.UserEditable{})
	income := createTestIncome(suite.T(), v1.IncomeEditable{
		UserID: user.Data.ID,
		Amount: decimal.NewFromInt(2800),
		Source: "Salary",
	})

	r := test.Request(suite.T(), http.MethodPatch, income.Data.Links.Self, map[string]any{
		"payer": "ACME Inc.",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.IncomeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "ACME Inc.", response.Data.Payer)
	assert.Equal(suite.T(), "Salary", response.Data.Source)

	r = test.Request(suite.T(), http.MethodDelete, income.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, income.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
