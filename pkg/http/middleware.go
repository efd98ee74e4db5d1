package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EagleFox31/YaroFleet/pkg/common"
	"github.com/EagleFox31/YaroFleet/pkg/models"
)

const contextKeyUser = "currentUser"

var roleRank = map[models.Role]int{
	models.RoleUser:            0,
	models.RoleTechnician:      1,
	models.RoleWorkshopManager: 2,
	models.RoleAdmin:           3,
}

// Authenticate resolves the session cookie to a user and stores it on the
// request context. Expired or unknown tokens get a 401.
func (rs *RestfulServer) Authenticate(c *gin.Context) {
	token, err := c.Cookie(common.SessionCookieName)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	userID, ok := rs.Sessions.Get(token)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Session expired"})
		return
	}

	user, err := rs.Fleet.User.GetUser(userID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	c.Set(contextKeyUser, user)
	c.Next()
}

// RequireRole gates a route on the role hierarchy
// admin > workshop_manager > technician > user.
func (rs *RestfulServer) RequireRole(minimum models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}
		if roleRank[user.Role] < roleRank[minimum] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by Authenticate, or nil.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(contextKeyUser)
	if !exists {
		return nil
	}
	user, _ := value.(*models.User)
	return user
}
