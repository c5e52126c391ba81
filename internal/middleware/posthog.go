package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/cafe_ledger/internal/utils"
	"github.com/gin-gonic/gin"
)

// PosthogMiddleware tracks successful API calls as PostHog events named after
// the route, e.g. "/api/v1/journal-entries" becomes "api_v1_journal-entries".
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		principal, ok := GetPrincipalFromCtx(c.Request.Context())
		if !ok {
			return
		}

		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		posthogClient.Enqueue(principal.UserID, eventName, map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
			"tenant_id":   principal.TenantID,
		})
	}
}
