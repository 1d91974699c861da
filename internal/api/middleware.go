package api

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"
)

// ClaimsKey is the context key under which verified claims are stored.
const ClaimsKey = "claims"

// VerifyToken verifies a bearer token when one is present. Verification is
// deliberately best-effort: a missing or invalid token is logged and the
// request proceeds unauthenticated. This weak posture is part of the
// service contract, not an oversight; every route must work without
// identity.
func VerifyToken(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier == nil {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		claims, err := verifier.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			log.Printf("invalid token, proceeding unauthenticated: %v", err)
			c.Next()
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}
