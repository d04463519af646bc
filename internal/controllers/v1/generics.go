package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/simplebudget/backend/internal/httputil"
	"github.com/simplebudget/backend/internal/models"
)

// resource is the union of all models with an ID that the generic handlers
// work on.
type resource interface {
	models.User | models.YearlyBudget | models.MonthlyBudget | models.Category | models.BudgetItem | models.Purchase | models.Income | models.Rollover | models.MatchRule
}

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
//
// Note: This function only works for resources with an ID, not for calculated endpoints (like /reports)
func resourceOptionsDetail[R resource](c *gin.Context, resource R) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&resource, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// deleteResource deletes a resource by its ID.
func deleteResource[R resource](c *gin.Context, resource *R) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(resource, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(resource).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
