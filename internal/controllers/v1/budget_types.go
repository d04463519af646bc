package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/simplebudget/backend/internal/models"
	ez_uuid "github.com/simplebudget/backend/internal/uuid"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	UserID uuid.UUID `json:"userId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the user the budget belongs to
	Year   int       `json:"year" example:"2026"`                                   // The calendar year the budget plans
	Note   string    `json:"note" example:"The first full year in the new flat" default:""` // Notes about the budget
}

func (editable BudgetEditable) model() models.YearlyBudget {
	return models.YearlyBudget{
		UserID: editable.UserID,
		Year:   editable.Year,
		Note:   editable.Note,
	}
}

type BudgetLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/budgets/3b1ea324-d438-4419-882a-2fc91d71772f"`                  // The budget itself
	Months string `json:"months" example:"https://example.com/api/v1/monthly-budgets?budget=3b1ea324-d438-4419-882a-2fc91d71772f"` // The twelve monthly budgets
	Report string `json:"report" example:"https://example.com/api/v1/reports/yearly?user=52d967d3-33f4-4b04-9ba7-772e5ab9d0ce&year=2026"` // The yearly report
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.YearlyBudget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			UserID: model.UserID,
			Year:   model.Year,
			Note:   model.Note,
		},
		Links: BudgetLinks{
			Self:   fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Months: fmt.Sprintf("%s/v1/monthly-budgets?budget=%s", url, model.ID),
			Report: fmt.Sprintf("%s/v1/reports/yearly?user=%s&year=%d", url, model.UserID, model.Year),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of Budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetCreateResponse struct {
	Data  []BudgetResponse `json:"data"`                                                          // List of the created Budgets or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the Budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetQueryFilter struct {
	UserID ez_uuid.UUID `form:"user"`                       // By ID of the User
	Year   int          `form:"year"`                       // By year
	Offset uint         `form:"offset" filterField:"false"` // The offset of the first Budget returned. Defaults to 0.
	Limit  int          `form:"limit" filterField:"false"`  // Maximum number of Budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() models.YearlyBudget {
	return models.YearlyBudget{
		UserID: f.UserID.UUID,
		Year:   f.Year,
	}
}
