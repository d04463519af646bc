package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/simplebudget/backend/internal/models"
	ez_uuid "github.com/simplebudget/backend/internal/uuid"
)

// RolloverEditable represents all user configurable parameters.
// Only the amount can be edited, the rollover itself is created and
// deleted together with its budget items.
type RolloverEditable struct {
	Amount decimal.Decimal `json:"amount" example:"50"` // The surplus or deficit at the end of the year
}

func (editable RolloverEditable) model() models.Rollover {
	return models.Rollover{
		Amount: editable.Amount,
	}
}

type RolloverLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/rollovers/3b1ea324-d438-4419-882a-2fc91d71772f"` // The rollover itself
}

type Rollover struct {
	models.DefaultModel
	UserID         ez_uuid.UUID    `json:"userId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
	YearlyBudgetID ez_uuid.UUID    `json:"budgetId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
	CategoryID     ez_uuid.UUID    `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
	Amount         decimal.Decimal `json:"amount" example:"50"`
	Links          RolloverLinks   `json:"links"`
}

func newRollover(c *gin.Context, model models.Rollover) Rollover {
	url := c.GetString(string(models.DBContextURL))

	return Rollover{
		DefaultModel:   model.DefaultModel,
		UserID:         ez_uuid.UUID{UUID: model.UserID},
		YearlyBudgetID: ez_uuid.UUID{UUID: model.YearlyBudgetID},
		CategoryID:     ez_uuid.UUID{UUID: model.CategoryID},
		Amount:         model.Amount,
		Links: RolloverLinks{
			Self: fmt.Sprintf("%s/v1/rollovers/%s", url, model.ID),
		},
	}
}

type RolloverListResponse struct {
	Data       []Rollover  `json:"data"`                                                          // List of Rollovers
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type RolloverResponse struct {
	Data  *Rollover `json:"data"`                                                          // Data for the Rollover
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type RolloverQueryFilter struct {
	UserID         ez_uuid.UUID `form:"user"`                       // By ID of the User
	YearlyBudgetID ez_uuid.UUID `form:"budget"`                     // By ID of the yearly budget
	CategoryID     ez_uuid.UUID `form:"category"`                   // By ID of the category
	Offset         uint         `form:"offset" filterField:"false"` // The offset of the first Rollover returned. Defaults to 0.
	Limit          int          `form:"limit" filterField:"false"`  // Maximum number of Rollovers to return. Defaults to 50.
}

func (f RolloverQueryFilter) model() models.Rollover {
	return models.Rollover{
		UserID:         f.UserID.UUID,
		YearlyBudgetID: f.YearlyBudgetID.UUID,
		CategoryID:     f.CategoryID.UUID,
	}
}
