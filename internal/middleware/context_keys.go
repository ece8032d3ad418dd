package middleware

import "github.com/gin-gonic/gin"

// principalKey stores the authenticated caller in the Gin context.
const principalKey = "principal"

// authMethodKey records which scheme authenticated the caller.
const authMethodKey = "authMethod"

// GetPrincipal retrieves the authenticated caller name from the Gin context.
func GetPrincipal(c *gin.Context) (string, bool) {
	return getString(c, principalKey)
}

// GetAuthMethod reports "basic" or "bearer" for authenticated requests.
func GetAuthMethod(c *gin.Context) (string, bool) {
	return getString(c, authMethodKey)
}

func getString(c *gin.Context, key string) (string, bool) {
	val, exists := c.Get(key)
	if !exists {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}
