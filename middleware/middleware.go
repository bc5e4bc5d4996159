package middleware

import (
	"net/http"

	"github.com/ariebrainware/tiny-erm/registration"
	"github.com/gin-gonic/gin"
)

const contextRegistrar = "registrar"

// CORSMiddleware configures CORS headers for incoming requests.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, PATCH")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "X-Requested-With, Content-Type, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Content-Type", "application/json")

		// For preflight requests, respond with 204 and abort further processing.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// RegistrarMiddleware makes the patient registrar available to handlers.
func RegistrarMiddleware(reg *registration.Registrar) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextRegistrar, reg)
		c.Next()
	}
}

// GetRegistrar returns the registrar set by RegistrarMiddleware, or nil.
func GetRegistrar(c *gin.Context) *registration.Registrar {
	v, ok := c.Get(contextRegistrar)
	if !ok {
		return nil
	}
	reg, _ := v.(*registration.Registrar)
	return reg
}
