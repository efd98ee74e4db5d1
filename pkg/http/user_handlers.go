package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EagleFox31/YaroFleet/pkg/common"
	"github.com/EagleFox31/YaroFleet/pkg/models"
)

func (rs *RestfulServer) ListTechnicians(c *gin.Context) {
	technicians, err := rs.Fleet.User.ListUsersByRole(models.RoleTechnician)
	if err != nil {
		rs.serviceError(c, err)
		return
	}

	views := common.Mapper(technicians, func(user models.User) UserView {
		return userView(&user)
	})

	c.JSON(http.StatusOK, views)
}
