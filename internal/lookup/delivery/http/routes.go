package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the lookup endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	lookups := rg.Group("/lookups")
	{
		lookups.GET("", h.ListEntities)
		lookups.GET("/:entity", h.Snapshot)
		lookups.GET("/:entity/options", h.Options)
		lookups.POST("/:entity/open", h.Open)
		lookups.POST("/:entity/more", h.FetchMore)
		lookups.POST("/:entity/search", h.Search)
		lookups.DELETE("/:entity", h.Reset)
	}
}
