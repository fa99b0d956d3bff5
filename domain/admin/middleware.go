package admin

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/akeren/waitlist-api/config/router"
	"github.com/akeren/waitlist-api/internal/log"
)

// APIKeyHeader carries the shared admin secret on every admin request.
const APIKeyHeader = "x-api-key"

// RequireAPIKey rejects any request whose x-api-key header does not hash
// to the configured digest. The comparison is constant-time and runs
// before any handler logic.
func RequireAPIKey(keyDigest [sha256.Size]byte, logger *log.Logger) router.MiddlewareFunc {
	return func(c *router.RequestContext) {
		presented := c.GetHeader(APIKeyHeader)

		if presented == "" {
			logger.WithCorrelationID(c.Request.Context()).Warn("Admin request without API key", "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(401, router.UnauthorizedResult("Missing API key").ToJSON())
			return
		}

		presentedDigest := sha256.Sum256([]byte(presented))
		if subtle.ConstantTimeCompare(presentedDigest[:], keyDigest[:]) != 1 {
			logger.WithCorrelationID(c.Request.Context()).Warn("Admin request with invalid API key", "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(401, router.UnauthorizedResult("Invalid API key").ToJSON())
			return
		}

		c.Next()
	}
}
