package middlewares

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"bakery-api/ratelimit"
	"bakery-api/spam"
)

// ClientIPKey is where the rate-limit middleware stores the extracted client
// identifier for handlers downstream.
const ClientIPKey = "clientIP"

// OriginCheck rejects requests whose Origin/Referer headers match none of
// the allowed hosts. Runs before anything reads the body.
func OriginCheck(allowed []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		referer := c.GetHeader("Referer")
		if !spam.AllowedOrigin(origin, referer, allowed) {
			RecordGateVerdict("origin", "reject")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}

// RateLimit throttles by client IP using the injected fixed-window store.
func RateLimit(store *ratelimit.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := ratelimit.ClientIP(c.Request.Header)
		c.Set(ClientIPKey, clientIP)

		allowed, _ := store.Check(clientIP)
		if !allowed {
			log.Printf("Rate limit exceeded for %s", clientIP)
			RecordGateVerdict("rate_limit", "reject")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Demasiadas solicitudes. Intenta de nuevo más tarde.",
			})
			return
		}
		c.Next()
	}
}
