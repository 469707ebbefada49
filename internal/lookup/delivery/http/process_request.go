package http

import (
	"github.com/gin-gonic/gin"

	"erp-lookup/pkg/apperror"
)

// processOptionsReq binds the entity path param and the query string. Query
// keys other than keyword, limit, offset and filters become filters.
func (h *handler) processOptionsReq(c *gin.Context) (optionsReq, error) {
	var req optionsReq
	if err := c.ShouldBindUri(&req); err != nil {
		return req, apperror.Wrap(apperror.KindValidation, "entity is required", err)
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, apperror.Wrap(apperror.KindValidation, "limit and offset must be integers", err)
	}
	return req, req.validate(c.Request.URL.Query())
}

// processSearchReq binds the search body. An empty body means an empty
// keyword.
func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, apperror.Wrap(apperror.KindValidation, "invalid search body", err)
	}
	return req, req.validate()
}
