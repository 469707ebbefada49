package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"erp-lookup/internal/lookup"
	"erp-lookup/pkg/response"
	"erp-lookup/pkg/scope"
)

// ListEntities godoc
// @Summary     List lookup entities
// @Description Returns the configured lookup entities and their paging limits.
// @Tags        Lookups
// @Produce     json
// @Success     200 {object} listEntitiesResp
// @Router      /api/v1/lookups [GET]
func (h *handler) ListEntities(c *gin.Context) {
	response.OK(c, h.newListEntitiesResp(h.uc.Entities()))
}

// Snapshot godoc
// @Summary     Read a lookup cache
// @Description Returns the cached options of an entity without fetching.
// @Tags        Lookups
// @Produce     json
// @Param       entity path string true "Entity name, e.g. customers"
// @Success     200 {object} viewResp
// @Failure     404 {object} response.Resp "Unknown entity"
// @Router      /api/v1/lookups/{entity} [GET]
func (h *handler) Snapshot(c *gin.Context) {
	ctx := c.Request.Context()

	view, err := h.uc.Snapshot(ctx, c.Param("entity"))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newViewResp(view))
}

// Options godoc
// @Summary     Fetch one page of options
// @Description Fetches a page from the ERP and merges it into the cache. Offset 0 replaces the list, larger offsets append to it.
// @Tags        Lookups
// @Produce     json
// @Param       entity  path  string true  "Entity name"
// @Param       keyword query string false "Search keyword"
// @Param       limit   query int    false "Page size (default: entity default)"
// @Param       offset  query int    false "Page offset (default: 0)"
// @Param       filters query string false "Filters as a JSON object; any other query parameter is a filter too, e.g. warehouseId=w1"
// @Success     200 {object} viewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Unknown entity"
// @Failure     409 {object} response.Resp "Superseded by a newer request"
// @Failure     502 {object} response.Resp "Upstream failure"
// @Router      /api/v1/lookups/{entity}/options [GET]
func (h *handler) Options(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOptionsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	view, err := h.uc.Fetch(ctx, scope.GetScopeFromContext(ctx), req.Entity, req.toQuery())
	h.respond(c, "uc.Fetch", view, err)
}

// Open godoc
// @Summary     Open a dropdown
// @Description Fetches the first page only when nothing is cached yet.
// @Tags        Lookups
// @Produce     json
// @Param       entity path string true "Entity name"
// @Success     200 {object} viewResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Unknown entity"
// @Failure     502 {object} response.Resp "Upstream failure"
// @Router      /api/v1/lookups/{entity}/open [POST]
func (h *handler) Open(c *gin.Context) {
	ctx := c.Request.Context()

	view, err := h.uc.Open(ctx, scope.GetScopeFromContext(ctx), c.Param("entity"))
	h.respond(c, "uc.Open", view, err)
}

// FetchMore godoc
// @Summary     Load more options
// @Description Fetches the page after the cached one. Without more pages the cache is returned unchanged.
// @Tags        Lookups
// @Produce     json
// @Param       entity path string true "Entity name"
// @Success     200 {object} viewResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Unknown entity"
// @Failure     502 {object} response.Resp "Upstream failure"
// @Router      /api/v1/lookups/{entity}/more [POST]
func (h *handler) FetchMore(c *gin.Context) {
	ctx := c.Request.Context()

	view, err := h.uc.FetchMore(ctx, scope.GetScopeFromContext(ctx), c.Param("entity"))
	if errors.Is(err, lookup.ErrNoMorePages) {
		err = nil
	}
	h.respond(c, "uc.FetchMore", view, err)
}

// Search godoc
// @Summary     Search options
// @Description Restarts the entity at offset 0 with a new keyword.
// @Tags        Lookups
// @Accept      json
// @Produce     json
// @Param       entity path string    true  "Entity name"
// @Param       body   body searchReq false "Keyword"
// @Success     200 {object} viewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Unknown entity"
// @Failure     502 {object} response.Resp "Upstream failure"
// @Router      /api/v1/lookups/{entity}/search [POST]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	view, err := h.uc.Search(ctx, scope.GetScopeFromContext(ctx), c.Param("entity"), req.Keyword)
	h.respond(c, "uc.Search", view, err)
}

// Reset godoc
// @Summary     Reset a lookup cache
// @Description Returns the cache to its initial empty state and drops cached upstream responses.
// @Tags        Lookups
// @Produce     json
// @Param       entity path string true "Entity name"
// @Success     200 {object} viewResp
// @Failure     404 {object} response.Resp "Unknown entity"
// @Router      /api/v1/lookups/{entity} [DELETE]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	view, err := h.uc.Reset(ctx, c.Param("entity"))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newViewResp(view))
}

// respond sends view, or the mapped error with the current cache attached
// when the entity was resolved.
func (h *handler) respond(c *gin.Context, op string, view lookup.View, err error) {
	if err == nil {
		response.OK(c, h.newViewResp(view))
		return
	}

	h.l.Errorf(c.Request.Context(), "%s: %v", op, err)
	if view.Entity == "" {
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.Error(c, h.mapError(err), h.newViewResp(view))
}
