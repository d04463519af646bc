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

// PurchaseEditable represents all user configurable parameters
type PurchaseEditable struct {
	UserID     uuid.UUID       `json:"userId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`               // ID of the user the purchase belongs to
	Item       string          `json:"item" example:"Weekly groceries" default:""`                          // What was bought
	Date       time.Time       `json:"date" example:"2026-08-28T00:00:00Z"`                                 // Date of the purchase. Defaults to the current time.
	Amount     decimal.Decimal `json:"amount" example:"54.37" minimum:"0.00000001" maximum:"999999999999"`  // The amount paid
	CategoryID *uuid.UUID      `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`           // ID of the category. May be empty, then the match rules are applied.
	Savings    bool            `json:"savings" example:"false" default:"false"`                             // Is this a transfer into savings?
	Source     string          `json:"source" example:"Supermarket" default:""`                             // Where the purchase was made
	Location   string          `json:"location" example:"Berlin" default:""`                                // Where the shop is located
	Note       string          `json:"note" example:"" default:""`                                          // Notes about the purchase
}

func (editable PurchaseEditable) model() models.Purchase {
	return models.Purchase{
		UserID:     editable.UserID,
		Item:       editable.Item,
		Date:       editable.Date,
		Amount:     editable.Amount,
		CategoryID: editable.CategoryID,
		Savings:    editable.Savings,
		Source:     editable.Source,
		Location:   editable.Location,
		Note:       editable.Note,
	}
}

type PurchaseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/purchases/3b1ea324-d438-4419-882a-2fc91d71772f"` // The purchase itself
}

type Purchase struct {
	models.DefaultModel
	PurchaseEditable
	Links PurchaseLinks `json:"links"`
}

func newPurchase(c *gin.Context, model models.Purchase) Purchase {
	url := c.GetString(string(models.DBContextURL))

	return Purchase{
		DefaultModel: model.DefaultModel,
		PurchaseEditable: PurchaseEditable{
			UserID:     model.UserID,
			Item:       model.Item,
			Date:       model.Date,
			Amount:     model.Amount,
			CategoryID: model.CategoryID,
			Savings:    model.Savings,
			Source:     model.Source,
			Location:   model.Location,
			Note:       model.Note,
		},
		Links: PurchaseLinks{
			Self: fmt.Sprintf("%s/v1/purchases/%s", url, model.ID),
		},
	}
}

type PurchaseListResponse struct {
	Data       []Purchase  `json:"data"`                                                          // List of Purchases
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type PurchaseCreateResponse struct {
	Data  []PurchaseResponse `json:"data"`                                                          // List of the created Purchases or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *PurchaseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, PurchaseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type PurchaseResponse struct {
	Data  *Purchase `json:"data"`                                                          // Data for the Purchase
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type PurchaseQueryFilter struct {
	UserID     ez_uuid.UUID `form:"user"`                       // By ID of the User
	CategoryID ez_uuid.UUID `form:"category"`                   // By ID of the category
	Savings    bool         `form:"savings"`                    // Is the purchase a savings transfer?
	Item       string       `form:"item" filterField:"false"`   // By text in the item name
	Offset     uint         `form:"offset" filterField:"false"` // The offset of the first Purchase returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`  // Maximum number of Purchases to return. Defaults to 50.
}

func (f PurchaseQueryFilter) model() models.Purchase {
	var categoryID *uuid.UUID
	if f.CategoryID.UUID != uuid.Nil {
		categoryID = &f.CategoryID.UUID
	}

	return models.Purchase{
		UserID:     f.UserID.UUID,
		CategoryID: categoryID,
		Savings:    f.Savings,
	}
}
