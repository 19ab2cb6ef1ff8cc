package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSPolicy decides which origins get an Access-Control-Allow-Origin header.
//
// The allow-list matches exact origins; a non-matching origin gets no header
// at all. AllowAll is the relaxed mode that wildcards every origin.
type CORSPolicy struct {
	AllowedOrigins []string
	AllowAll       bool
}

// CORSPolicyFromEnv reads CORS_ALLOWED_ORIGINS (comma-separated) and
// CORS_ALLOW_ALL.
func CORSPolicyFromEnv() CORSPolicy {
	var origins []string
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	allowAll := false
	switch strings.ToLower(strings.TrimSpace(os.Getenv("CORS_ALLOW_ALL"))) {
	case "1", "true", "yes", "on":
		allowAll = true
	}
	return CORSPolicy{AllowedOrigins: origins, AllowAll: allowAll}
}

func (p CORSPolicy) allowOrigin(origin string) string {
	if p.AllowAll {
		return "*"
	}
	for _, allowed := range p.AllowedOrigins {
		if allowed == origin {
			return origin
		}
	}
	return ""
}

// CORS returns a middleware that sets the allow-origin header per the policy
// and answers preflight requests in place; preflights never reach a handler.
func CORS(policy CORSPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if allowed := policy.allowOrigin(origin); allowed != "" {
				c.Header("Access-Control-Allow-Origin", allowed)
				if allowed != "*" {
					c.Header("Vary", "Origin")
				}
			}
		}

		if c.Request.Method == http.MethodOptions {
			reqMethod := c.GetHeader("Access-Control-Request-Method")
			if reqMethod == "" {
				reqMethod = "POST, OPTIONS"
			}
			reqHeaders := c.GetHeader("Access-Control-Request-Headers")
			if reqHeaders == "" {
				reqHeaders = "Content-Type"
			}
			c.Header("Access-Control-Allow-Methods", reqMethod)
			c.Header("Access-Control-Allow-Headers", reqHeaders)
			c.Header("Access-Control-Max-Age", "600")
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
