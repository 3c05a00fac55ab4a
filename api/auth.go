package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

// basicAuthentication guards mutating and analytics endpoints with the
// configured credentials. Comparison is constant time.
func (s *Server) basicAuthentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, pass, ok := c.Request.BasicAuth()

		userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(viper.GetString("server.apiuser"))) == 1
		passMatch := subtle.ConstantTimeCompare([]byte(pass), []byte(viper.GetString("server.apipass"))) == 1

		if !ok || !userMatch || !passMatch {
			c.Header("WWW-Authenticate", `Basic realm="pocas"`)
			abortWithEncoding(c, http.StatusUnauthorized, errorInvalidCredentials)
			return
		}

		c.Next()
	}
}
