package middlewares

import (
	"github.com/RaulSimioni/Nutrimath/models"
	"github.com/RaulSimioni/Nutrimath/utils"

	"github.com/gin-gonic/gin"
)

const SessionCookieName = "session"

// SessionMiddleware resolves the acting user from the session cookie.
// Unlike a hard auth gate, an absent or invalid session falls back to the
// anonymous placeholder user so the app stays usable without sign-in.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := models.AnonymousUserID

		if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
			if id, err := utils.ParseSessionToken(cookie); err == nil {
				userID = id
			}
		}

		c.Set("userID", userID)
		c.Next()
	}
}

// CurrentUserID reads the id set by SessionMiddleware, defaulting to the
// anonymous user when the middleware did not run.
func CurrentUserID(c *gin.Context) uint {
	if id := c.GetUint("userID"); id != 0 {
		return id
	}
	return models.AnonymousUserID
}
