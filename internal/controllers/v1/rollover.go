package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/simplebudget/backend/internal/httputil"
	"github.com/simplebudget/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterRolloverRoutes registers the routes for rollovers with
// the RouterGroup that is passed.
//
// Rollovers are created by the yearly budget item fan-out with a zero
// amount, so there is no POST handler. The amount is set via PATCH once the
// previous year is settled.
func RegisterRolloverRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsRolloverList)
		r.GET("", GetRollovers)
	}

	// Rollover with ID
	{
		r.OPTIONS("/:id", OptionsRolloverDetail)
		r.GET("/:id", GetRollover)
		r.PATCH("/:id", UpdateRollover)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Rollovers
// @Success		204
// @Router			/v1/rollovers [options]
func OptionsRolloverList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Rollovers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/rollovers/{id} [options]
func OptionsRolloverDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Rollover{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("allow", "GET, PATCH")
	c.Status(http.StatusNoContent)
}

// @Summary		Get rollovers
// @Description	Returns a list of rollovers
// @Tags			Rollovers
// @Produce		json
// @Success		200	{object}	RolloverListResponse
// @Failure		400	{object}	RolloverListResponse
// @Failure		500	{object}	RolloverListResponse
// @Router			/v1/rollovers [get]
// @Param			user		query	string	false	"Filter by user ID"
// @Param			budget		query	string	false	"Filter by yearly budget ID"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			offset		query	uint	false	"The offset of the first Rollover returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Rollovers to return. Defaults to 50."
func GetRollovers(c *gin.Context) {
	var filter RolloverQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()

	q := models.DB.
		Where(&filterModel, queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Rollovers and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var rollovers []models.Rollover
	err := q.Find(&rollovers).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RolloverListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RolloverListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Rollover, 0)
	for _, rollover := range rollovers {
		data = append(data, newRollover(c, rollover))
	}

	c.JSON(http.StatusOK, RolloverListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get rollover
// @Description	Returns a specific rollover
// @Tags			Rollovers
// @Produce		json
// @Success		200	{object}	RolloverResponse
// @Failure		400	{object}	RolloverResponse
// @Failure		404	{object}	RolloverResponse
// @Failure		500	{object}	RolloverResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/rollovers/{id} [get]
func GetRollover(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RolloverResponse{
			Error: &s,
		})
		return
	}

	var rollover models.Rollover
	err = models.DB.First(&rollover, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RolloverResponse{
			Error: &s,
		})
		return
	}

	data := newRollover(c, rollover)
	c.JSON(http.StatusOK, RolloverResponse{Data: &data})
}

// @Summary		Update rollover
// @Description	Update the amount of a rollover.
// @Tags			Rollovers
// @Accept			json
// @Produce		json
// @Success		200			{object}	RolloverResponse
// @Failure		400			{object}	RolloverResponse
// @Failure		404			{object}	RolloverResponse
// @Failure		500			{object}	RolloverResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			rollover	body		RolloverEditable	true	"Rollover"
// @Router			/v1/rollovers/{id} [patch]
func UpdateRollover(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RolloverResponse{
			Error: &s,
		})
		return
	}

	var rollover models.Rollover
	err = models.DB.First(&rollover, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RolloverResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, RolloverEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RolloverResponse{
			Error: &s,
		})
		return
	}

	var data RolloverEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RolloverResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&rollover).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RolloverResponse{
			Error: &s,
		})
		return
	}

	r := newRollover(c, rollover)
	c.JSON(http.StatusOK, RolloverResponse{Data: &r})
}
