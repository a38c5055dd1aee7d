package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// GatewayTrust optionally restricts the payment gateway callback endpoint to
// a shared secret and/or an IP allowlist. With neither configured it is a
// pass-through: callback trust is then the deployment's responsibility
// (reverse proxy, network policy).
func GatewayTrust(sharedToken string, allowedIPs []string) gin.HandlerFunc {
	allowed := map[string]bool{}
	for _, ip := range allowedIPs {
		allowed[ip] = true
	}

	return func(c *gin.Context) {
		if len(allowed) > 0 && !allowed[c.ClientIP()] {
			logGatewayReject(c, "ip_not_allowed")
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			c.Abort()
			return
		}

		if sharedToken != "" {
			h := c.GetHeader("Authorization")
			parts := strings.SplitN(h, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] != sharedToken {
				logGatewayReject(c, "invalid_token")
				c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

func logGatewayReject(c *gin.Context, reason string) {
	log.Printf("gateway_callback_rejected client_ip=%s request_id=%s reason=%s", c.ClientIP(), requestID(c), reason)
}
