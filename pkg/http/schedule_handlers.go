package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"github.com/EagleFox31/YaroFleet/pkg/models"
)

func (rs *RestfulServer) GetSchedule(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	schedule, err := rs.Fleet.Schedule.GetSchedule(id)
	if err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedule)
}

func (rs *RestfulServer) ListVehicleSchedules(c *gin.Context) {
	vehicleID, ok := idParam(c, "vehicleId")
	if !ok {
		return
	}

	schedules, err := rs.Fleet.Schedule.ListVehicleSchedules(vehicleID)
	if err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedules)
}

type ScheduleRequest struct {
	VehicleID        int       `json:"vehicleId"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Frequency        string    `json:"frequency"`
	FrequencyValue   int       `json:"frequencyValue"`
	ScheduledDate    time.Time `json:"scheduledDate"`
	ScheduledMileage int       `json:"scheduledMileage"`
	IsActive         bool      `json:"isActive"`
}

var scheduleRequestSchema = z.Struct(z.Shape{
	"VehicleID":        z.Int().Required(),
	"Title":            z.String().Required(),
	"Description":      z.String(),
	"Frequency":        z.String().Required(),
	"FrequencyValue":   z.Int(),
	"ScheduledDate":    z.Time(),
	"ScheduledMileage": z.Int(),
	"IsActive":         z.Bool().Default(true),
})

func (rs *RestfulServer) CreateSchedule(c *gin.Context) {
	var req ScheduleRequest
	if err := scheduleRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	schedule := models.MaintenanceSchedule{
		VehicleID:      uint(req.VehicleID),
		Title:          req.Title,
		Description:    req.Description,
		Frequency:      models.Frequency(req.Frequency),
		FrequencyValue: req.FrequencyValue,
		IsActive:       req.IsActive,
	}
	if !req.ScheduledDate.IsZero() {
		schedule.ScheduledDate = &req.ScheduledDate
	}
	if req.ScheduledMileage > 0 {
		schedule.ScheduledMileage = &req.ScheduledMileage
	}

	if err := rs.Fleet.Schedule.CreateSchedule(&schedule); err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

type ScheduleUpdateRequest struct {
	Title            *string    `json:"title"`
	Description      *string    `json:"description"`
	Frequency        *string    `json:"frequency"`
	FrequencyValue   *int       `json:"frequencyValue"`
	ScheduledDate    *time.Time `json:"scheduledDate"`
	ScheduledMileage *int       `json:"scheduledMileage"`
	IsActive         *bool      `json:"isActive"`
}

func (rs *RestfulServer) UpdateSchedule(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Frequency != nil {
		updates["frequency"] = *req.Frequency
	}
	if req.FrequencyValue != nil {
		updates["frequency_value"] = *req.FrequencyValue
	}
	if req.ScheduledDate != nil {
		updates["scheduled_date"] = *req.ScheduledDate
	}
	if req.ScheduledMileage != nil {
		updates["scheduled_mileage"] = *req.ScheduledMileage
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	schedule, err := rs.Fleet.Schedule.UpdateSchedule(id, updates)
	if err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedule)
}

func (rs *RestfulServer) DeleteSchedule(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := rs.Fleet.Schedule.DeleteSchedule(id); err != nil {
		rs.serviceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
