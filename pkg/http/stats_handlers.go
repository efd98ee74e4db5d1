package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EagleFox31/YaroFleet/pkg/models"
)

func (rs *RestfulServer) GetFleetStatistics(c *gin.Context) {
	stats, err := rs.Fleet.Stats.FleetStatistics()
	if err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (rs *RestfulServer) GetMaintenanceCompliance(c *gin.Context) {
	compliance, err := rs.Fleet.Stats.MaintenanceCompliance()
	if err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, compliance)
}

func (rs *RestfulServer) GetMaintenanceCost(c *gin.Context) {
	period := models.CostPeriod(c.Param("period"))
	if !period.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown period"})
		return
	}

	cost, err := rs.Fleet.Stats.MaintenanceCost(period)
	if err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"period": period, "cost": cost})
}
