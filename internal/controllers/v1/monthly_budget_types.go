package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/simplebudget/backend/internal/models"
	"github.com/simplebudget/backend/internal/types"
	ez_uuid "github.com/simplebudget/backend/internal/uuid"
)

// MonthlyBudgetEditable represents all user configurable parameters
type MonthlyBudgetEditable struct {
	ExpectedIncome decimal.Decimal `json:"expectedIncome" example:"2800"`                     // How much income is expected this month
	Note           string          `json:"note" example:"13th salary arrives here" default:""` // Notes about the month
}

func (editable MonthlyBudgetEditable) model() models.MonthlyBudget {
	return models.MonthlyBudget{
		ExpectedIncome: editable.ExpectedIncome,
		Note:           editable.Note,
	}
}

type MonthlyBudgetLinks struct {
	Self  string `json:"self" example:"https://example.com/api/v1/monthly-budgets/3b1ea324-d438-4419-882a-2fc91d71772f"`       // The monthly budget itself
	Items string `json:"items" example:"https://example.com/api/v1/budget-items?monthlyBudget=3b1ea324-d438-4419-882a-2fc91d71772f"` // Budget items of the month
}

type MonthlyBudget struct {
	models.DefaultModel
	UserID         ez_uuid.UUID       `json:"userId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
	YearlyBudgetID ez_uuid.UUID       `json:"budgetId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
	Month          types.Month        `json:"month" example:"2026-08"`
	ExpectedIncome decimal.Decimal    `json:"expectedIncome" example:"2800"`
	Note           string             `json:"note" example:""`
	Links          MonthlyBudgetLinks `json:"links"`
}

func newMonthlyBudget(c *gin.Context, model models.MonthlyBudget) MonthlyBudget {
	url := c.GetString(string(models.DBContextURL))

	return MonthlyBudget{
		DefaultModel:   model.DefaultModel,
		UserID:         ez_uuid.UUID{UUID: model.UserID},
		YearlyBudgetID: ez_uuid.UUID{UUID: model.YearlyBudgetID},
		Month:          model.Month,
		ExpectedIncome: model.ExpectedIncome,
		Note:           model.Note,
		Links: MonthlyBudgetLinks{
			Self:  fmt.Sprintf("%s/v1/monthly-budgets/%s", url, model.ID),
			Items: fmt.Sprintf("%s/v1/budget-items?monthlyBudget=%s", url, model.ID),
		},
	}
}

type MonthlyBudgetListResponse struct {
	Data       []MonthlyBudget `json:"data"`                                                          // List of MonthlyBudgets
	Error      *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination     `json:"pagination"`                                                    // Pagination information
}

type MonthlyBudgetResponse struct {
	Data  *MonthlyBudget `json:"data"`                                                          // Data for the MonthlyBudget
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type MonthlyBudgetQueryFilter struct {
	UserID         ez_uuid.UUID `form:"user"`                       // By ID of the User
	YearlyBudgetID ez_uuid.UUID `form:"budget"`                     // By ID of the yearly budget
	Offset         uint         `form:"offset" filterField:"false"` // The offset of the first MonthlyBudget returned. Defaults to 0.
	Limit          int          `form:"limit" filterField:"false"`  // Maximum number of MonthlyBudgets to return. Defaults to 50.
}

func (f MonthlyBudgetQueryFilter) model() models.MonthlyBudget {
	return models.MonthlyBudget{
		UserID:         f.UserID.UUID,
		YearlyBudgetID: f.YearlyBudgetID.UUID,
	}
}
