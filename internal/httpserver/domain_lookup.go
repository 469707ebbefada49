package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	lookupHTTP "erp-lookup/internal/lookup/delivery/http"
)

// setupLookupDomain registers /api/v1/lookups.
func (srv HTTPServer) setupLookupDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := lookupHTTP.New(srv.l, srv.lookupUC)
	lookupHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Lookup domain registered with %d entities", len(srv.lookupUC.Entities()))
	return nil
}
