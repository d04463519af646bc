package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/simplebudget/backend/internal/models"
	ez_uuid "github.com/simplebudget/backend/internal/uuid"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name     string    `json:"name" example:"Groceries" default:""`                     // Name of the category
	UserID   uuid.UUID `json:"userId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`   // ID of the user the category belongs to
	Note     string    `json:"note" example:"Everything from the supermarket" default:""` // Notes about the category
	Archived bool      `json:"archived" example:"true" default:"false"`                 // Is the category archived?
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		UserID:   editable.UserID,
		Name:     editable.Name,
		Note:     editable.Note,
		Archived: editable.Archived,
	}
}

type CategoryLinks struct {
	Self      string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`                 // The category itself
	Purchases string `json:"purchases" example:"https://example.com/api/v1/purchases?category=3b1ea324-d438-4419-882a-2fc91d71772f"`    // Purchases in this category
	Incomes   string `json:"incomes" example:"https://example.com/api/v1/incomes?category=3b1ea324-d438-4419-882a-2fc91d71772f"`        // Incomes in this category
	Items     string `json:"items" example:"https://example.com/api/v1/budget-items?category=3b1ea324-d438-4419-882a-2fc91d71772f"`     // Budget items for this category
}

type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			UserID:   model.UserID,
			Name:     model.Name,
			Note:     model.Note,
			Archived: model.Archived,
		},
		Links: CategoryLinks{
			Self:      fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Purchases: fmt.Sprintf("%s/v1/purchases?category=%s", url, model.ID),
			Incomes:   fmt.Sprintf("%s/v1/incomes?category=%s", url, model.ID),
			Items:     fmt.Sprintf("%s/v1/budget-items?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of Categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Data  []CategoryResponse `json:"data"`                                                          // List of the created Categories or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, CategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the Category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	UserID   ez_uuid.UUID `form:"user"`                       // By ID of the User
	Name     string       `form:"name" filterField:"false"`   // By name
	Note     string       `form:"note" filterField:"false"`   // By note
	Archived bool         `form:"archived"`                   // Is the Category archived?
	Search   string       `form:"search" filterField:"false"` // By string in name or note
	Offset   uint         `form:"offset" filterField:"false"` // The offset of the first Category returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`  // Maximum number of Categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model() models.Category {
	return models.Category{
		UserID:   f.UserID.UUID,
		Archived: f.Archived,
	}
}
