package middleware

import "github.com/gin-gonic/gin"

const orgKey = "organizationID"

// OrgContext reads the X-Organization-ID header and attaches it to the
// request context. The value is an explicit parameter on every engine call;
// an empty string means unscoped catalog data.
func OrgContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(orgKey, c.GetHeader("X-Organization-ID"))
		c.Next()
	}
}

// OrgFromContext returns the organization id set by OrgContext.
func OrgFromContext(c *gin.Context) string {
	return c.GetString(orgKey)
}
