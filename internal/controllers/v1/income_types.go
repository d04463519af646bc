package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simplebudget/backend/internal/models"
	ez_uuid "github.com/simplebudget/backend/internal/uuid"
)

// IncomeEditable represents all user configurable parameters
type IncomeEditable struct {
	UserID     uuid.UUID       `json:"userId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`              // ID of the user the income belongs to
	Date       time.Time       `json:"date" example:"2026-08-01T00:00:00Z"`                                // Date of the income. Defaults to the current time.
	Amount     decimal.Decimal `json:"amount" example:"2800" minimum:"0.00000001" maximum:"999999999999"`  // The amount received
	CategoryID *uuid.UUID      `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`          // ID of the category. Empty for general income.
	Source     string          `json:"source" example:"Salary" default:""`                                 // What the income is
	Payer      string          `json:"payer" example:"ACME Inc." default:""`                               // Who paid
	Note       string          `json:"note" example:"" default:""`                                         // Notes about the income
}

func (editable IncomeEditable) model() models.Income {
	return models.Income{
		UserID:     editable.UserID,
		Date:       editable.Date,
		Amount:     editable.Amount,
		CategoryID: editable.CategoryID,
		Source:     editable.Source,
		Payer:      editable.Payer,
		Note:       editable.Note,
	}
}

type IncomeLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/incomes/3b1ea324-d438-4419-882a-2fc91d71772f"` // The income itself
}

type Income struct {
	models.DefaultModel
	IncomeEditable
	Links IncomeLinks `json:"links"`
}

func newIncome(c *gin.Context, model models.Income) Income {
	url := c.GetString(string(models.DBContextURL))

	return Income{
		DefaultModel: model.DefaultModel,
		IncomeEditable: IncomeEditable{
			UserID:     model.UserID,
			Date:       model.Date,
			Amount:     model.Amount,
			CategoryID: model.CategoryID,
			Source:     model.Source,
			Payer:      model.Payer,
			Note:       model.Note,
		},
		Links: IncomeLinks{
			Self: fmt.Sprintf("%s/v1/incomes/%s", url, model.ID),
		},
	}
}

type IncomeListResponse struct {
	Data       []Income    `json:"data"`                                                          // List of Incomes
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type IncomeCreateResponse struct {
	Data  []IncomeResponse `json:"data"`                                                          // List of the created Incomes or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *IncomeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, IncomeResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type IncomeResponse struct {
	Data  *Income `json:"data"`                                                          // Data for the Income
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type IncomeQueryFilter struct {
	UserID     ez_uuid.UUID `form:"user"`                       // By ID of the User
	CategoryID ez_uuid.UUID `form:"category"`                   // By ID of the category
	Offset     uint         `form:"offset" filterField:"false"` // The offset of the first Income returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`  // Maximum number of Incomes to return. Defaults to 50.
}

func (f IncomeQueryFilter) model() models.Income {
	var categoryID *uuid.UUID
	if f.CategoryID.UUID != uuid.Nil {
		categoryID = &f.CategoryID.UUID
	}

	return models.Income{
		UserID:     f.UserID.UUID,
		CategoryID: categoryID,
	}
}
