package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/simplebudget/backend/internal/controllers/v1"
	"github.com/simplebudget/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestMatchRule(t *testing.T, m v1.MatchRuleEditable) v1.MatchRuleResponse {
	r := test.Request(t, http.MethodPost, "http://example.com/v1/match-rules", []v1.MatchRuleEditable{m})
	test.AssertHTTPStatus(t, &r, http.StatusCreated)

	var response v1.MatchRuleCreateResponse
	test.DecodeResponse(t, &r, &response)
	return response.Data[0]
}

func (suite *TestSuiteStandard) TestMatchRulesCreate() {
	user := createTestUser(suite.T(), v1.UserEditable{})
	category := createTestCategory(suite.T(), v1.CategoryEditable{UserID: user.Data.ID})

	rule := createTestMatchRule(suite.T(), v1.MatchRuleEditable{
		UserID:     user.Data.ID,
		CategoryID: category.Data.ID,
		Priority:   3,
		Match:      "Bank*",
	})

	assert.Equal(suite.T(), "Bank*", rule.Data.Match)
	assert.Equal(suite.T(), uint(3), rule.Data.Priority)
}

// The list is sorted by priority so that clients can show the rules in
// evaluation order.
func (suite *TestSuiteStandard) TestMatchRulesGetSorted() {
	user := createTestUser(suite.T(), v1.UserEditable{})
	category := createTestCategory(suite.T(), v1.CategoryEditable{UserID: user.Data.ID})

	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{UserID: user.Data.ID, CategoryID: category.Data.ID, Priority: 2, Match: "*market*"})
	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{UserID: user.Data.ID, CategoryID: category.Data.ID, Priority: 1, Match: "Super*"})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/match-rules?user=%s", user.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MatchRuleListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "Super*", response.Data[0].Match)
	assert.Equal(suite.T(), "*market*", response.Data[1].Match)
}

func (suite *TestSuiteStandard) TestMatchRulesUpdateDelete() {
	user := createTestUser(suite.T(), v1.UserEditable{})
	category := createTestCategory(suite.T(), v1.CategoryEditable{UserID: user.Data.ID})

	rule := createTestMatchRule(suite.T(), v1.MatchRuleEditable{
		UserID:     user.Data.ID,
		CategoryID: category.Data.ID,
		Priority:   1,
		Match:      "Super*",
	})

	r := test.Request(suite.T(), http.MethodPatch, rule.Data.Links.Self, map[string]any{
		"match": "Hyper*",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MatchRuleResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Hyper*", response.Data.Match)

	r = test.Request(suite.T(), http.MethodDelete, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
