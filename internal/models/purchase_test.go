package models_test

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simplebudget/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestPurchaseTrimWhitespace() {
	user := suite.createTestUser(models.User{})

	purchase := suite.createTestPurchase(models.Purchase{
		UserID: user.ID,
		Item:   "  Weekly groceries\t",
		Source: " Supermarket ",
		Note:   "   ",
		Amount: decimal.NewFromInt(50),
	})

	assert.Equal(suite.T(), "Weekly groceries", purchase.Item)
	assert.Equal(suite.T(), "Supermarket", purchase.Source)
	assert.Equal(suite.T(), "", purchase.Note)
}

func (suite *TestSuiteStandard) TestPurchaseDateDefault() {
	user := suite.createTestUser(models.User{})

	purchase := suite.createTestPurchase(models.Purchase{
		UserID: user.ID,
		Item:   "Undated",
		Amount: decimal.NewFromInt(10),
	})

	assert.False(suite.T(), purchase.Date.IsZero())
	assert.Equal(suite.T(), time.UTC, purchase.Date.Location())
}

func (suite *TestSuiteStandard) TestPurchaseMatchRules() {
	user := suite.createTestUser(models.User{})
	groceries := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Groceries"})
	household := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Household"})

	_ = suite.createTestMatchRule(models.MatchRule{
		UserID:     user.ID,
		CategoryID: groceries.ID,
		Priority:   1,
		Match:      "Super*",
	})
	_ = suite.createTestMatchRule(models.MatchRule{
		UserID:     user.ID,
		CategoryID: household.ID,
		Priority:   2,
		Match:      "*market*",
	})

	// The first rule in priority order wins
	purchase := suite.createTestPurchase(models.Purchase{
		UserID: user.ID,
		Item:   "Supermarket run",
		Amount: decimal.NewFromInt(54),
	})
	require.NotNil(suite.T(), purchase.CategoryID)
	assert.Equal(suite.T(), groceries.ID, *purchase.CategoryID)

	// The source is matched, too
	purchase = suite.createTestPurchase(models.Purchase{
		UserID: user.ID,
		Item:   "Cleaning supplies",
		Source: "Hypermarket",
		Amount: decimal.NewFromInt(12),
	})
	require.NotNil(suite.T(), purchase.CategoryID)
	assert.Equal(suite.T(), household.ID, *purchase.CategoryID)

	// No rule matches, the purchase stays uncategorized
	purchase = suite.createTestPurchase(models.Purchase{
		UserID: user.ID,
		Item:   "Cinema tickets",
		Amount: decimal.NewFromInt(24),
	})
	assert.Nil(suite.T(), purchase.CategoryID)
}

func (suite *TestSuiteStandard) TestPurchaseMatchRulesKeepExplicitCategory() {
	user := suite.createTestUser(models.User{})
	groceries := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Groceries"})
	leisure := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Leisure"})

	_ = suite.createTestMatchRule(models.MatchRule{
		UserID:     user.ID,
		CategoryID: groceries.ID,
		Priority:   1,
		Match:      "*",
	})

	purchase := suite.createTestPurchase(models.Purchase{
		UserID:     user.ID,
		Item:       "Board game",
		CategoryID: &leisure.ID,
		Amount:     decimal.NewFromInt(40),
	})

	require.NotNil(suite.T(), purchase.CategoryID)
	assert.Equal(suite.T(), leisure.ID, *purchase.CategoryID)
}

func (suite *TestSuiteStandard) TestMatchRuleMatches() {
	rule := models.MatchRule{Match: "Bank*"}

	assert.True(suite.T(), rule.Matches("Bank fee"))
	assert.False(suite.T(), rule.Matches("Some Bank"))
	assert.False(suite.T(), rule.Matches(""))

	assert.True(suite.T(), models.MatchRule{Match: "*"}.Matches("anything"))
	assert.False(suite.T(), models.MatchRule{Match: strings.Repeat("x", 3)}.Matches("y"))
}
