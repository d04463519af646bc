package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/simplebudget/backend/internal/httputil"
	"github.com/simplebudget/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterBudgetItemRoutes registers the routes for budget items with
// the RouterGroup that is passed.
func RegisterBudgetItemRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetItemList)
		r.GET("", GetBudgetItems)
		r.POST("", CreateBudgetItems)
	}

	// Yearly fan-out: create or delete the items of a category for all
	// twelve months at once
	{
		r.OPTIONS("/yearly", OptionsBudgetItemYearly)
		r.POST("/yearly", CreateYearlyBudgetItems)
		r.DELETE("/yearly", DeleteYearlyBudgetItems)
	}

	// BudgetItem with ID
	{
		r.OPTIONS("/:id", OptionsBudgetItemDetail)
		r.GET("/:id", GetBudgetItem)
		r.PATCH("/:id", UpdateBudgetItem)
		r.DELETE("/:id", DeleteBudgetItem)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			BudgetItems
// @Success		204
// @Router			/v1/budget-items [options]
func OptionsBudgetItemList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			BudgetItems
// @Success		204
// @Router			/v1/budget-items/yearly [options]
func OptionsBudgetItemYearly(c *gin.Context) {
	c.Header("allow", "POST, DELETE")
	c.Status(http.StatusNoContent)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			BudgetItems
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-items/{id} [options]
func OptionsBudgetItemDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.BudgetItem{})
}

// @Summary		Create budget items
// @Description	Creates new budget items for single months
// @Tags			BudgetItems
// @Produce		json
// @Success		201		{object}	BudgetItemCreateResponse
// @Failure		400		{object}	BudgetItemCreateResponse
// @Failure		404		{object}	BudgetItemCreateResponse
// @Failure		500		{object}	BudgetItemCreateResponse
// @Param			items	body		[]BudgetItemEditable	true	"BudgetItems"
// @Router			/v1/budget-items [post]
func CreateBudgetItems(c *gin.Context) {
	var editables []BudgetItemEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetItemCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BudgetItemCreateResponse{}

	for _, editable := range editables {
		item := editable.model()

		err = models.DB.Create(&item).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newBudgetItem(c, item)
		r.Data = append(r.Data, BudgetItemResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Create yearly budget items
// @Description	Creates a budget item for the category in all twelve months of the year, plus the category's rollover row. All thirteen resources are created atomically.
// @Tags			BudgetItems
// @Produce		json
// @Success		201		{object}	YearlyItemResponse
// @Failure		400		{object}	YearlyItemResponse
// @Failure		404		{object}	YearlyItemResponse
// @Failure		500		{object}	YearlyItemResponse
// @Param			item	body		YearlyItemEditable	true	"YearlyItem"
// @Router			/v1/budget-items/yearly [post]
func CreateYearlyBudgetItems(c *gin.Context) {
	var editable YearlyItemEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), YearlyItemResponse{
			Error: &e,
		})
		return
	}

	items, rollover, err := models.CreateYearlyItem(models.DB, editable.UserID, editable.Year, editable.CategoryID, editable.Amount, editable.Savings)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), YearlyItemResponse{
			Error: &e,
		})
		return
	}

	data := newYearlyItem(c, items, rollover)
	c.JSON(http.StatusCreated, YearlyItemResponse{Data: &data})
}

// @Summary		Delete yearly budget items
// @Description	Deletes the budget items of the category for all twelve months of the year together with the category's rollover row.
// @Tags			BudgetItems
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			user		query	string	true	"ID of the user"
// @Param			year		query	int		true	"The year"
// @Param			category	query	string	true	"ID of the category"
// @Router			/v1/budget-items/yearly [delete]
func DeleteYearlyBudgetItems(c *gin.Context) {
	var query YearlyItemQuery
	err := c.ShouldBindQuery(&query)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DeleteYearlyItem(models.DB, query.UserID.UUID, query.Year, query.CategoryID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Get budget items
// @Description	Returns a list of budget items
// @Tags			BudgetItems
// @Produce		json
// @Success		200	{object}	BudgetItemListResponse
// @Failure		400	{object}	BudgetItemListResponse
// @Failure		500	{object}	BudgetItemListResponse
// @Router			/v1/budget-items [get]
// @Param			user			query	string	false	"Filter by user ID"
// @Param			monthlyBudget	query	string	false	"Filter by monthly budget ID"
// @Param			category		query	string	false	"Filter by category ID"
// @Param			savings			query	bool	false	"Is the item a savings goal?"
// @Param			offset			query	uint	false	"The offset of the first BudgetItem returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of BudgetItems to return. Defaults to 50."
func GetBudgetItems(c *gin.Context) {
	var filter BudgetItemQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()

	q := models.DB.
		Where(&filterModel, queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 BudgetItems and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var items []models.BudgetItem
	err := q.Find(&items).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetItemListResponse{
			Error: &e,
		})
		return
	}

	data := make([]BudgetItem, 0)
	for _, item := range items {
		data = append(data, newBudgetItem(c, item))
	}

	c.JSON(http.StatusOK, BudgetItemListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get budget item
// @Description	Returns a specific budget item
// @Tags			BudgetItems
// @Produce		json
// @Success		200	{object}	BudgetItemResponse
// @Failure		400	{object}	BudgetItemResponse
// @Failure		404	{object}	BudgetItemResponse
// @Failure		500	{object}	BudgetItemResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-items/{id} [get]
func GetBudgetItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &s,
		})
		return
	}

	var item models.BudgetItem
	err = models.DB.First(&item, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &s,
		})
		return
	}

	data := newBudgetItem(c, item)
	c.JSON(http.StatusOK, BudgetItemResponse{Data: &data})
}

// @Summary		Update budget item
// @Description	Update an existing budget item. Only values to be updated need to be specified.
// @Tags			BudgetItems
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetItemResponse
// @Failure		400		{object}	BudgetItemResponse
// @Failure		404		{object}	BudgetItemResponse
// @Failure		500		{object}	BudgetItemResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			item	body		BudgetItemEditable	true	"BudgetItem"
// @Router			/v1/budget-items/{id} [patch]
func UpdateBudgetItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &s,
		})
		return
	}

	var item models.BudgetItem
	err = models.DB.First(&item, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BudgetItemEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &s,
		})
		return
	}

	var data BudgetItemEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&item).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &s,
		})
		return
	}

	r := newBudgetItem(c, item)
	c.JSON(http.StatusOK, BudgetItemResponse{Data: &r})
}

// @Summary		Delete budget item
// @Description	Deletes a budget item
// @Tags			BudgetItems
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-items/{id} [delete]
func DeleteBudgetItem(c *gin.Context) {
	deleteResource(c, &models.BudgetItem{})
}
