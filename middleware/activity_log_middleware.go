package middleware

import (
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ════════════════════════════════════════════════════════════
// Configuration Maps
// ════════════════════════════════════════════════════════════

// pathToResourceType maps URL paths to resource types
var pathToResourceType = map[string]string{
	"torrents":   "torrent",
	"categories": "category",
	"users":      "user",
	"warning":    "warning",
	"posters":    "poster",
}

// methodToActionVerb maps HTTP methods to action verbs
var methodToActionVerb = map[string]string{
	"POST":   "created",
	"PATCH":  "updated",
	"PUT":    "updated",
	"DELETE": "deleted",
}

// ════════════════════════════════════════════════════════════
// Activity Logging Middleware
// ════════════════════════════════════════════════════════════

// ActivityLoggingMiddleware records admin mutations to the application
// log: who did what to which resource, with a per-request ID. The remote
// catalog service owns durable history; this trail is for the server logs.
// Must be used AFTER AdminAuthMiddleware (which sets adminUsername).
func ActivityLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip GET requests - we only log non-GET (POST, PATCH, PUT, DELETE)
		if c.Request.Method == "GET" {
			c.Next()
			return
		}

		requestID := uuid.New().String()
		started := time.Now()

		c.Next()

		verb, ok := methodToActionVerb[c.Request.Method]
		if !ok {
			return
		}

		resource := resourceFromPath(c.FullPath())
		admin, _ := GetAdminUsernameFromContext(c)

		log.Printf("[activity] %s %s %s %s (id=%s status=%d took=%s)",
			admin, verb, resource, c.Request.URL.Path,
			requestID, c.Writer.Status(), time.Since(started).Round(time.Millisecond))
	}
}

// resourceFromPath finds the first known resource segment in the route.
func resourceFromPath(fullPath string) string {
	for _, segment := range strings.Split(fullPath, "/") {
		if resource, ok := pathToResourceType[segment]; ok {
			return resource
		}
	}
	return "unknown"
}
