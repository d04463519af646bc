package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simplebudget/backend/internal/models"
	ez_uuid "github.com/simplebudget/backend/internal/uuid"
)

// BudgetItemEditable represents all user configurable parameters
type BudgetItemEditable struct {
	UserID          uuid.UUID       `json:"userId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`          // ID of the user the item belongs to
	MonthlyBudgetID uuid.UUID       `json:"monthlyBudgetId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the monthly budget
	CategoryID      uuid.UUID       `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`      // ID of the category
	Amount          decimal.Decimal `json:"amount" example:"500" minimum:"0.00000001" maximum:"999999999999"` // The budgeted amount
	Savings         bool            `json:"savings" example:"false" default:"false"`                        // Is this a savings goal?
	Note            string          `json:"note" example:"Includes drugstore" default:""`                   // Notes about the item
}

func (editable BudgetItemEditable) model() models.BudgetItem {
	return models.BudgetItem{
		UserID:          editable.UserID,
		MonthlyBudgetID: editable.MonthlyBudgetID,
		CategoryID:      editable.CategoryID,
		Amount:          editable.Amount,
		Savings:         editable.Savings,
		Note:            editable.Note,
	}
}

type BudgetItemLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/budget-items/3b1ea324-d438-4419-882a-2fc91d71772f"` // The budget item itself
}

type BudgetItem struct {
	models.DefaultModel
	BudgetItemEditable
	Links BudgetItemLinks `json:"links"`
}

func newBudgetItem(c *gin.Context, model models.BudgetItem) BudgetItem {
	url := c.GetString(string(models.DBContextURL))

	return BudgetItem{
		DefaultModel: model.DefaultModel,
		BudgetItemEditable: BudgetItemEditable{
			UserID:          model.UserID,
			MonthlyBudgetID: model.MonthlyBudgetID,
			CategoryID:      model.CategoryID,
			Amount:          model.Amount,
			Savings:         model.Savings,
			Note:            model.Note,
		},
		Links: BudgetItemLinks{
			Self: fmt.Sprintf("%s/v1/budget-items/%s", url, model.ID),
		},
	}
}

type BudgetItemListResponse struct {
	Data       []BudgetItem `json:"data"`                                                          // List of BudgetItems
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type BudgetItemCreateResponse struct {
	Data  []BudgetItemResponse `json:"data"`                                                          // List of the created BudgetItems or their respective error
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *BudgetItemCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, BudgetItemResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetItemResponse struct {
	Data  *BudgetItem `json:"data"`                                                          // Data for the BudgetItem
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetItemQueryFilter struct {
	UserID          ez_uuid.UUID `form:"user"`                       // By ID of the User
	MonthlyBudgetID ez_uuid.UUID `form:"monthlyBudget"`              // By ID of the monthly budget
	CategoryID      ez_uuid.UUID `form:"category"`                   // By ID of the category
	Savings         bool         `form:"savings"`                    // Is the item a savings goal?
	Offset          uint         `form:"offset" filterField:"false"` // The offset of the first BudgetItem returned. Defaults to 0.
	Limit           int          `form:"limit" filterField:"false"`  // Maximum number of BudgetItems to return. Defaults to 50.
}

func (f BudgetItemQueryFilter) model() models.BudgetItem {
	return models.BudgetItem{
		UserID:          f.UserID.UUID,
		MonthlyBudgetID: f.MonthlyBudgetID.UUID,
		CategoryID:      f.CategoryID.UUID,
		Savings:         f.Savings,
	}
}

// YearlyItemEditable is the request body for the yearly fan-out creation.
type YearlyItemEditable struct {
	UserID     uuid.UUID       `json:"userId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`     // ID of the user
	Year       int             `json:"year" example:"2026"`                                       // The year to create the items for
	CategoryID uuid.UUID       `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the category
	Amount     decimal.Decimal `json:"amount" example:"500"`                                      // The monthly budgeted amount
	Savings    bool            `json:"savings" example:"false" default:"false"`                   // Is this a savings goal?
}

// YearlyItemQuery identifies the yearly fan-out to delete.
type YearlyItemQuery struct {
	UserID     ez_uuid.UUID `form:"user" binding:"required"`     // ID of the user
	Year       int          `form:"year" binding:"required"`     // The year
	CategoryID ez_uuid.UUID `form:"category" binding:"required"` // ID of the category
}

// YearlyItem is the result of the yearly fan-out creation.
type YearlyItem struct {
	Items    []BudgetItem `json:"items"`    // The twelve created budget items
	Rollover Rollover     `json:"rollover"` // The created rollover row
}

func newYearlyItem(c *gin.Context, items []models.BudgetItem, rollover models.Rollover) YearlyItem {
	data := YearlyItem{
		Rollover: newRollover(c, rollover),
	}

	for _, item := range items {
		data.Items = append(data.Items, newBudgetItem(c, item))
	}

	return data
}

type YearlyItemResponse struct {
	Data  *YearlyItem `json:"data"`                                                          // The created resources
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
