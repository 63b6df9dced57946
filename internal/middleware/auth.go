package middleware

import (
	"net/http"

	"github.com/chobyoungjae/interface/internal/apierror"
	"github.com/chobyoungjae/interface/internal/session"

	"github.com/gin-gonic/gin"
)

// SessionAuth guards data routes behind the login cookie. Requests without a
// valid session token are rejected before reaching any handler.
func SessionAuth(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || !sessions.Validate(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("로그인이 필요합니다."))
			return
		}
		c.Next()
	}
}
