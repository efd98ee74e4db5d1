package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"github.com/EagleFox31/YaroFleet/pkg/common"
	"github.com/EagleFox31/YaroFleet/pkg/fleet"
	"github.com/EagleFox31/YaroFleet/pkg/models"
)

// UserView is the public shape of a user; the password hash never leaves
// the service layer.
type UserView struct {
	ID       uint        `json:"id"`
	Username string      `json:"username"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
}

func userView(user *models.User) UserView {
	return UserView{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

var loginRequestSchema = z.Struct(z.Shape{
	"Username": z.String().Required(),
	"Password": z.String().Required(),
})

func (rs *RestfulServer) Login(c *gin.Context) {
	if !rs.CheckLoginLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req LoginRequest
	if err := loginRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	user, err := rs.Fleet.User.Authenticate(req.Username, req.Password)
	if err != nil {
		rs.serviceError(c, err)
		return
	}

	token := rs.Sessions.Create(user.ID)
	c.SetCookie(common.SessionCookieName, token,
		int(fleet.DefaultSessionTTL.Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, userView(user))
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

var registerRequestSchema = z.Struct(z.Shape{
	"Username": z.String().Min(3).Required(),
	"Password": z.String().Min(6).Required(),
	"Email":    z.String().Email().Required(),
	"Name":     z.String().Required(),
	"Role":     z.String(),
})

func (rs *RestfulServer) Register(c *gin.Context) {
	var req RegisterRequest
	if err := registerRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	role := models.Role(req.Role)
	if req.Role != "" {
		if _, known := roleRank[role]; !known {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
			return
		}
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Name:     req.Name,
		Role:     role,
	}

	if err := rs.Fleet.User.CreateUser(&user, req.Password); err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, userView(&user))
}

func (rs *RestfulServer) Logout(c *gin.Context) {
	if token, err := c.Cookie(common.SessionCookieName); err == nil {
		rs.Sessions.Delete(token)
	}
	c.SetCookie(common.SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (rs *RestfulServer) Me(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}
	c.JSON(http.StatusOK, userView(user))
}
