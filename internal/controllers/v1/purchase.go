package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/simplebudget/backend/internal/httputil"
	"github.com/simplebudget/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterPurchaseRoutes registers the routes for purchases with
// the RouterGroup that is passed.
func RegisterPurchaseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsPurchaseList)
		r.GET("", GetPurchases)
		r.POST("", CreatePurchases)
	}

	// Purchase with ID
	{
		r.OPTIONS("/:id", OptionsPurchaseDetail)
		r.GET("/:id", GetPurchase)
		r.PATCH("/:id", UpdatePurchase)
		r.DELETE("/:id", DeletePurchase)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Purchases
// @Success		204
// @Router			/v1/purchases [options]
func OptionsPurchaseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Purchases
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/purchases/{id} [options]
func OptionsPurchaseDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Purchase{})
}

// @Summary		Create purchases
// @Description	Creates new purchases. Purchases without a category are matched against the user's match rules.
// @Tags			Purchases
// @Produce		json
// @Success		201			{object}	PurchaseCreateResponse
// @Failure		400			{object}	PurchaseCreateResponse
// @Failure		404			{object}	PurchaseCreateResponse
// @Failure		500			{object}	PurchaseCreateResponse
// @Param			purchases	body		[]PurchaseEditable	true	"Purchases"
// @Router			/v1/purchases [post]
func CreatePurchases(c *gin.Context) {
	var editables []PurchaseEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PurchaseCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := PurchaseCreateResponse{}

	for _, editable := range editables {
		purchase := editable.model()

		err = models.DB.Create(&purchase).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newPurchase(c, purchase)
		r.Data = append(r.Data, PurchaseResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get purchases
// @Description	Returns a list of purchases
// @Tags			Purchases
// @Produce		json
// @Success		200	{object}	PurchaseListResponse
// @Failure		400	{object}	PurchaseListResponse
// @Failure		500	{object}	PurchaseListResponse
// @Router			/v1/purchases [get]
// @Param			user		query	string	false	"Filter by user ID"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			savings		query	bool	false	"Is the purchase a savings transfer?"
// @Param			item		query	string	false	"Search for this text in the item name"
// @Param			offset		query	uint	false	"The offset of the first Purchase returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Purchases to return. Defaults to 50."
func GetPurchases(c *gin.Context) {
	var filter PurchaseQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()

	q := models.DB.
		Order("date(date) DESC").
		Where(&filterModel, queryFields...)

	if filter.Item != "" {
		q = q.Where("item LIKE ?", fmt.Sprintf("%%%s%%", filter.Item))
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Purchases and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var purchases []models.Purchase
	err := q.Find(&purchases).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PurchaseListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Purchase, 0)
	for _, purchase := range purchases {
		data = append(data, newPurchase(c, purchase))
	}

	c.JSON(http.StatusOK, PurchaseListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get purchase
// @Description	Returns a specific purchase
// @Tags			Purchases
// @Produce		json
// @Success		200	{object}	PurchaseResponse
// @Failure		400	{object}	PurchaseResponse
// @Failure		404	{object}	PurchaseResponse
// @Failure		500	{object}	PurchaseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/purchases/{id} [get]
func GetPurchase(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseResponse{
			Error: &s,
		})
		return
	}

	var purchase models.Purchase
	err = models.DB.First(&purchase, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseResponse{
			Error: &s,
		})
		return
	}

	data := newPurchase(c, purchase)
	c.JSON(http.StatusOK, PurchaseResponse{Data: &data})
}

// @Summary		Update purchase
// @Description	Update an existing purchase. Only values to be updated need to be specified.
// @Tags			Purchases
// @Accept			json
// @Produce		json
// @Success		200			{object}	PurchaseResponse
// @Failure		400			{object}	PurchaseResponse
// @Failure		404			{object}	PurchaseResponse
// @Failure		500			{object}	PurchaseResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			purchase	body		PurchaseEditable	true	"Purchase"
// @Router			/v1/purchases/{id} [patch]
func UpdatePurchase(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseResponse{
			Error: &s,
		})
		return
	}

	var purchase models.Purchase
	err = models.DB.First(&purchase, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, PurchaseEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseResponse{
			Error: &s,
		})
		return
	}

	var data PurchaseEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&purchase).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseResponse{
			Error: &s,
		})
		return
	}

	r := newPurchase(c, purchase)
	c.JSON(http.StatusOK, PurchaseResponse{Data: &r})
}

// @Summary		Delete purchase
// @Description	Deletes a purchase
// @Tags			Purchases
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/purchases/{id} [delete]
func DeletePurchase(c *gin.Context) {
	deleteResource(c, &models.Purchase{})
}
