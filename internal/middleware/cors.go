package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cybermcq/mcq-backend/internal/config"
)

const (
	allowHeaders = "Content-Type,Authorization"
	allowMethods = "GET,POST,PUT,DELETE,OPTIONS"
)

// CORS attaches access-control headers to every response and short-circuits
// preflight requests before routing. Unrecognized origins are not reflected;
// they receive the fixed development origin instead, so browsers outside the
// allow-list fail CORS without the server leaking which origins it trusts.
func CORS(cfg *config.Config) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		allowed[o] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		c.Header("Access-Control-Allow-Origin", resolveOrigin(origin, allowed, cfg.TrustedOriginSuffix, cfg.DefaultOrigin))
		c.Header("Access-Control-Allow-Headers", allowHeaders)
		c.Header("Access-Control-Allow-Methods", allowMethods)

		// Preflight: 200, headers only, no routing.
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

func resolveOrigin(origin string, allowed map[string]struct{}, trustedSuffix, fallback string) string {
	if _, ok := allowed[origin]; ok {
		return origin
	}
	if origin != "" && trustedSuffix != "" && strings.HasSuffix(origin, trustedSuffix) {
		return origin
	}
	return fallback
}
