package middleware

import (
	"net/http"

	"github.com/dawar-shafaque/restaurant-application/models"

	"github.com/gin-gonic/gin"
)

// Redirect targets of the route guard, matching the client's navigation.
const (
	loginRedirect   = "/login"
	landingRedirect = "/"
)

// RequireAuth rejects requests without a valid session, pointing the client
// at the login page.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := SessionFrom(c)
		if !ok || !sess.IsAuthenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message":  "Authentication required",
				"redirect": loginRedirect,
			})
			return
		}
		c.Next()
	}
}

// RequireRoles rejects authenticated sessions whose role is not in the
// route's allowed set, pointing the client back at the landing page. Pure
// and synchronous: the decision reads only the session fields.
func RequireRoles(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := SessionFrom(c)
		if !ok || !sess.IsAuthenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message":  "Authentication required",
				"redirect": loginRedirect,
			})
			return
		}
		for _, role := range allowed {
			if sess.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"message":  "You do not have access to this page",
			"redirect": landingRedirect,
		})
	}
}
