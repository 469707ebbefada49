package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"erp-lookup/internal/boundary"
	"erp-lookup/pkg/apperror"
	"erp-lookup/pkg/response"
	"erp-lookup/pkg/scope"
)

var fallbackActions = []string{"retry", "back", "home"}

// Boundary guards the rest of the chain with the caller's recovery
// boundary. A panic (or a gin error left unanswered) switches the boundary
// to errored; while errored, requests for the same path, query and auth
// state get the fallback without reaching the handlers.
func (m Middleware) Boundary() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		b := m.boundaryFor(c)
		key := boundary.KeyFromURL(c.Request.URL, scope.GetScopeFromContext(ctx).Authenticated)

		fallback := b.Render(ctx, key, func(ctx context.Context) (gin.H, error) {
			c.Next()
			if len(c.Errors) > 0 && !c.Writer.Written() {
				return nil, c.Errors.Last().Err
			}
			return nil, nil
		})
		if fallback == nil {
			return
		}

		c.Abort()
		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, fallback)
		}
	}
}

// ResetBoundary godoc
// @Summary     Reset the caller's recovery boundary
// @Description Clears a captured failure so the next request renders normally.
// @Tags        Boundary
// @Produce     json
// @Param       X-Client-ID header string false "Client identifier (defaults to the client IP)"
// @Success     200 {object} response.Resp
// @Router      /api/v1/boundary/reset [POST]
func (m Middleware) ResetBoundary(c *gin.Context) {
	b := m.boundaryFor(c)
	b.Reset()
	response.OK(c, gin.H{"state": b.State().State})
}

func (m Middleware) boundaryFor(c *gin.Context) *boundary.Boundary[gin.H] {
	clientID := c.GetHeader(HeaderClientID)
	if clientID == "" {
		clientID = c.ClientIP()
	}
	return m.boundaries.get(clientID, m.newBoundary)
}

func (m Middleware) newBoundary() *boundary.Boundary[gin.H] {
	return boundary.New[gin.H](fallbackPayload,
		boundary.WithLogger(m.l),
		boundary.WithErrorHandler(func(ctx context.Context, err *apperror.Error) {
			m.l.Errorf(ctx, "middleware.Boundary: %s: %s", err.Kind, err.Message)
			if m.metrics != nil {
				m.metrics.ObserveBoundaryFailure(string(err.Kind))
			}
		}),
	)
}

func fallbackPayload(ctx context.Context, props boundary.FallbackProps) gin.H {
	return gin.H{
		"message": props.Message,
		"kind":    props.Error.Kind,
		"actions": fallbackActions,
	}
}
