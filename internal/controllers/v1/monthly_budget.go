package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/simplebudget/backend/internal/httputil"
	"github.com/simplebudget/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterMonthlyBudgetRoutes registers the routes for monthly budgets with
// the RouterGroup that is passed.
//
// Monthly budgets are created and deleted together with their yearly budget,
// so there are no POST and DELETE handlers.
func RegisterMonthlyBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsMonthlyBudgetList)
		r.GET("", GetMonthlyBudgets)
	}

	// MonthlyBudget with ID
	{
		r.OPTIONS("/:id", OptionsMonthlyBudgetDetail)
		r.GET("/:id", GetMonthlyBudget)
		r.PATCH("/:id", UpdateMonthlyBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			MonthlyBudgets
// @Success		204
// @Router			/v1/monthly-budgets [options]
func OptionsMonthlyBudgetList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			MonthlyBudgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/monthly-budgets/{id} [options]
func OptionsMonthlyBudgetDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.MonthlyBudget{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("allow", "GET, PATCH")
	c.Status(http.StatusNoContent)
}

// @Summary		Get monthly budgets
// @Description	Returns a list of monthly budgets
// @Tags			MonthlyBudgets
// @Produce		json
// @Success		200	{object}	MonthlyBudgetListResponse
// @Failure		400	{object}	MonthlyBudgetListResponse
// @Failure		500	{object}	MonthlyBudgetListResponse
// @Router			/v1/monthly-budgets [get]
// @Param			user	query	string	false	"Filter by user ID"
// @Param			budget	query	string	false	"Filter by yearly budget ID"
// @Param			offset	query	uint	false	"The offset of the first MonthlyBudget returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of MonthlyBudgets to return. Defaults to 50."
func GetMonthlyBudgets(c *gin.Context) {
	var filter MonthlyBudgetQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()

	q := models.DB.
		Order("month ASC").
		Where(&filterModel, queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 MonthlyBudgets and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var budgets []models.MonthlyBudget
	err := q.Find(&budgets).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyBudgetListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyBudgetListResponse{
			Error: &e,
		})
		return
	}

	data := make([]MonthlyBudget, 0)
	for _, budget := range budgets {
		data = append(data, newMonthlyBudget(c, budget))
	}

	c.JSON(http.StatusOK, MonthlyBudgetListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get monthly budget
// @Description	Returns a specific monthly budget
// @Tags			MonthlyBudgets
// @Produce		json
// @Success		200	{object}	MonthlyBudgetResponse
// @Failure		400	{object}	MonthlyBudgetResponse
// @Failure		404	{object}	MonthlyBudgetResponse
// @Failure		500	{object}	MonthlyBudgetResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/monthly-budgets/{id} [get]
func GetMonthlyBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyBudgetResponse{
			Error: &s,
		})
		return
	}

	var budget models.MonthlyBudget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyBudgetResponse{
			Error: &s,
		})
		return
	}

	data := newMonthlyBudget(c, budget)
	c.JSON(http.StatusOK, MonthlyBudgetResponse{Data: &data})
}

// @Summary		Update monthly budget
// @Description	Update the expected income or note of a monthly budget.
// @Tags			MonthlyBudgets
// @Accept			json
// @Produce		json
// @Success		200				{object}	MonthlyBudgetResponse
// @Failure		400				{object}	MonthlyBudgetResponse
// @Failure		404				{object}	MonthlyBudgetResponse
// @Failure		500				{object}	MonthlyBudgetResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			monthlyBudget	body		MonthlyBudgetEditable	true	"MonthlyBudget"
// @Router			/v1/monthly-budgets/{id} [patch]
func UpdateMonthlyBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyBudgetResponse{
			Error: &s,
		})
		return
	}

	var budget models.MonthlyBudget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyBudgetResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, MonthlyBudgetEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyBudgetResponse{
			Error: &s,
		})
		return
	}

	var data MonthlyBudgetEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyBudgetResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&budget).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyBudgetResponse{
			Error: &s,
		})
		return
	}

	r := newMonthlyBudget(c, budget)
	c.JSON(http.StatusOK, MonthlyBudgetResponse{Data: &r})
}
