package models_test

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/simplebudget/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestIncomeDateDefault() {
	user := suite.createTestUser(models.User{})

	income := suite.createTestIncome(models.Income{
		UserID: user.ID,
		Amount: decimal.NewFromInt(2800),
	})

	assert.False(suite.T(), income.Date.IsZero())
	assert.Equal(suite.T(), time.UTC, income.Date.Location())
}

func (suite *TestSuiteStandard) TestIncomeTrimWhitespace() {
	user := suite.createTestUser(models.User{})

	income := suite.createTestIncome(models.Income{
		UserID: user.ID,
		Amount: decimal.NewFromInt(2800),
		Source: " Salary ",
		Payer:  "\tACME Inc. ",
	})

	assert.Equal(suite.T(), "Salary", income.Source)
	assert.Equal(suite.T(), "ACME Inc.", income.Payer)
}
