package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"github.com/EagleFox31/YaroFleet/pkg/models"
)

func (rs *RestfulServer) ListAlerts(c *gin.Context) {
	user := CurrentUser(c)

	alerts, err := rs.Fleet.Alert.ListUserAlerts(user.ID)
	if err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, alerts)
}

func (rs *RestfulServer) ListUnreadAlerts(c *gin.Context) {
	user := CurrentUser(c)

	alerts, err := rs.Fleet.Alert.ListUnreadUserAlerts(user.ID)
	if err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, alerts)
}

type AlertRequest struct {
	UserID   int    `json:"userId"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Type     string `json:"type"`
	Priority string `json:"priority"`
	Link     string `json:"link"`
}

var alertRequestSchema = z.Struct(z.Shape{
	"UserID":   z.Int(),
	"Title":    z.String().Required(),
	"Message":  z.String().Required(),
	"Type":     z.String().Required(),
	"Priority": z.String(),
	"Link":     z.String(),
})

func (rs *RestfulServer) CreateAlert(c *gin.Context) {
	var req AlertRequest
	if err := alertRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	alert := models.Alert{
		Title:    req.Title,
		Message:  req.Message,
		Type:     models.AlertType(req.Type),
		Priority: models.Priority(req.Priority),
		Link:     req.Link,
	}
	if req.UserID > 0 {
		userID := uint(req.UserID)
		alert.UserID = &userID
	}

	if err := rs.Fleet.Alert.CreateAlert(&alert); err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, alert)
}

func (rs *RestfulServer) MarkAlertAsRead(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	alert, err := rs.Fleet.Alert.MarkAlertAsRead(id)
	if err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, alert)
}

func (rs *RestfulServer) DeleteAlert(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := rs.Fleet.Alert.DeleteAlert(id); err != nil {
		rs.serviceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
