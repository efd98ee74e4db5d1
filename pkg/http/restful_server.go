package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/EagleFox31/YaroFleet/pkg/common"
	"github.com/EagleFox31/YaroFleet/pkg/fleet"
	"github.com/EagleFox31/YaroFleet/pkg/models"
)

type RestfulServer struct {
	Server            *gin.Engine
	Fleet             *fleet.Fleet
	Sessions          *fleet.SessionStore
	LoginLimiterStore *fleet.RateLimiterStore
}

func (rs *RestfulServer) GetLoginLimiter(clientKey string) *rate.Limiter {
	if rs.LoginLimiterStore == nil {
		return nil
	} else {
		return rs.LoginLimiterStore.GetLimiter(clientKey)
	}
}

func (rs *RestfulServer) CheckLoginLimiter(clientKey string) bool {
	limiter := rs.GetLoginLimiter(clientKey)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/api/health", rs.HealthCheck)

	auth := rs.Server.Group("/api/auth")
	{
		auth.POST("/login", rs.Login)
		auth.POST("/register", rs.Register)
		auth.POST("/logout", rs.Logout)
		auth.GET("/me", rs.Authenticate, rs.Me)
	}

	vehicles := rs.Server.Group("/api/vehicles", rs.Authenticate)
	{
		vehicles.GET("", rs.ListVehicles)
		vehicles.GET("/:id", rs.GetVehicle)
		vehicles.POST("", rs.RequireRole(models.RoleWorkshopManager), rs.CreateVehicle)
		vehicles.PATCH("/:id", rs.RequireRole(models.RoleWorkshopManager), rs.UpdateVehicle)
		vehicles.DELETE("/:id", rs.RequireRole(models.RoleAdmin), rs.DeleteVehicle)
	}

	schedules := rs.Server.Group("/api/maintenance-schedules", rs.Authenticate)
	{
		schedules.GET("/:id", rs.GetSchedule)
		schedules.GET("/vehicle/:vehicleId", rs.ListVehicleSchedules)
		schedules.POST("", rs.RequireRole(models.RoleWorkshopManager), rs.CreateSchedule)
		schedules.PATCH("/:id", rs.RequireRole(models.RoleWorkshopManager), rs.UpdateSchedule)
		schedules.DELETE("/:id", rs.RequireRole(models.RoleWorkshopManager), rs.DeleteSchedule)
	}

	workOrders := rs.Server.Group("/api/work-orders", rs.Authenticate)
	{
		workOrders.GET("", rs.ListWorkOrders)
		workOrders.GET("/:id", rs.GetWorkOrder)
		workOrders.GET("/vehicle/:vehicleId", rs.ListVehicleWorkOrders)
		workOrders.GET("/technician/:technicianId", rs.RequireRole(models.RoleTechnician), rs.ListTechnicianWorkOrders)
		workOrders.POST("", rs.RequireRole(models.RoleWorkshopManager), rs.CreateWorkOrder)
		workOrders.PATCH("/:id", rs.RequireRole(models.RoleTechnician), rs.UpdateWorkOrder)
		workOrders.DELETE("/:id", rs.RequireRole(models.RoleWorkshopManager), rs.DeleteWorkOrder)

		workOrders.GET("/:id/parts", rs.ListWorkOrderParts)
		workOrders.POST("/:id/parts", rs.RequireRole(models.RoleTechnician), rs.AttachWorkOrderPart)
	}

	parts := rs.Server.Group("/api/parts", rs.Authenticate)
	{
		parts.GET("", rs.ListParts)
		parts.GET("/low-on-stock", rs.ListPartsLowOnStock)
		parts.GET("/:id", rs.GetPart)
		parts.POST("", rs.RequireRole(models.RoleWorkshopManager), rs.CreatePart)
		parts.PATCH("/:id", rs.RequireRole(models.RoleWorkshopManager), rs.UpdatePart)
		parts.DELETE("/:id", rs.RequireRole(models.RoleAdmin), rs.DeletePart)
		parts.POST("/:id/adjust-stock", rs.RequireRole(models.RoleWorkshopManager), rs.AdjustPartStock)
	}

	partsUsed := rs.Server.Group("/api/parts-used", rs.Authenticate)
	{
		partsUsed.PATCH("/:id", rs.RequireRole(models.RoleTechnician), rs.UpdatePartUsed)
		partsUsed.DELETE("/:id", rs.RequireRole(models.RoleTechnician), rs.DetachPartUsed)
	}

	fuelRecords := rs.Server.Group("/api/fuel-records", rs.Authenticate)
	{
		fuelRecords.GET("/vehicle/:vehicleId", rs.ListVehicleFuelRecords)
		fuelRecords.GET("/vehicle/:vehicleId/consumption", rs.GetVehicleConsumption)
		fuelRecords.POST("", rs.CreateFuelRecord)
		fuelRecords.PATCH("/:id", rs.UpdateFuelRecord)
		fuelRecords.DELETE("/:id", rs.RequireRole(models.RoleWorkshopManager), rs.DeleteFuelRecord)
	}

	alerts := rs.Server.Group("/api/alerts", rs.Authenticate)
	{
		alerts.GET("", rs.ListAlerts)
		alerts.GET("/unread", rs.ListUnreadAlerts)
		alerts.POST("", rs.RequireRole(models.RoleWorkshopManager), rs.CreateAlert)
		alerts.PATCH("/:id/read", rs.MarkAlertAsRead)
		alerts.DELETE("/:id", rs.DeleteAlert)
	}

	users := rs.Server.Group("/api/users", rs.Authenticate)
	{
		users.GET("/technicians", rs.RequireRole(models.RoleWorkshopManager), rs.ListTechnicians)
	}

	statistics := rs.Server.Group("/api/statistics", rs.Authenticate)
	{
		statistics.GET("/fleet", rs.GetFleetStatistics)
		statistics.GET("/maintenance-compliance", rs.GetMaintenanceCompliance)
		statistics.GET("/maintenance-cost/:period", rs.GetMaintenanceCost)
	}
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// idParam parses a positive integer path parameter; it writes the 400
// response itself so handlers can bail with a bare return.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// serviceError maps the service sentinels onto HTTP status codes.
func (rs *RestfulServer) serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, fleet.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	case errors.Is(err, fleet.ErrDuplicate):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, fleet.ErrWorkOrderClosed), errors.Is(err, fleet.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	case errors.Is(err, fleet.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
	default:
		common.GetLoggerWith(common.LoggerNameRestfulServer).Error("Unhandled service error",
			zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}
