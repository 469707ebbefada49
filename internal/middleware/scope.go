package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"erp-lookup/internal/model"
	"erp-lookup/pkg/scope"
)

const (
	HeaderUserID      = "X-User-ID"
	HeaderPermissions = "X-Permissions"
	HeaderClientID    = "X-Client-ID"
)

// Scope puts the caller's identity, as forwarded by the gateway, into the
// request context. Permissions are comma separated.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := model.Scope{
			UserID: strings.TrimSpace(c.GetHeader(HeaderUserID)),
		}
		for _, p := range strings.Split(c.GetHeader(HeaderPermissions), ",") {
			if p = strings.TrimSpace(p); p != "" {
				sc.Permissions = append(sc.Permissions, p)
			}
		}
		sc.Authenticated = sc.UserID != "" || c.GetHeader("Authorization") != ""

		c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), sc))
		c.Next()
	}
}
