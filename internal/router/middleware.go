package router

import (
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/simplebudget/backend/internal/models"
)

// URLMiddleware adds the URL the backend is reachable at to the
// context so that handlers can construct resource links.
func URLMiddleware(url *url.URL) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(models.DBContextURL), url.String())
		c.Next()
	}
}
