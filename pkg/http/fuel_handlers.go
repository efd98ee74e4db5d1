package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"github.com/EagleFox31/YaroFleet/pkg/models"
)

func (rs *RestfulServer) ListVehicleFuelRecords(c *gin.Context) {
	vehicleID, ok := idParam(c, "vehicleId")
	if !ok {
		return
	}

	records, err := rs.Fleet.Fuel.ListVehicleFuelRecords(vehicleID)
	if err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

func (rs *RestfulServer) GetVehicleConsumption(c *gin.Context) {
	vehicleID, ok := idParam(c, "vehicleId")
	if !ok {
		return
	}

	segments, err := rs.Fleet.Fuel.VehicleConsumption(vehicleID)
	if err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, segments)
}

type FuelRecordRequest struct {
	VehicleID int       `json:"vehicleId"`
	Date      time.Time `json:"date"`
	Quantity  float64   `json:"quantity"`
	Cost      float64   `json:"cost"`
	Mileage   int       `json:"mileage"`
	FullTank  bool      `json:"fullTank"`
	Notes     string    `json:"notes"`
}

var fuelRecordRequestSchema = z.Struct(z.Shape{
	"VehicleID": z.Int().Required(),
	"Date":      z.Time().Required(),
	"Quantity":  z.Float64().Required(),
	"Cost":      z.Float64(),
	"Mileage":   z.Int().Required(),
	"FullTank":  z.Bool().Default(true),
	"Notes":     z.String(),
})

func (rs *RestfulServer) CreateFuelRecord(c *gin.Context) {
	var req FuelRecordRequest
	if err := fuelRecordRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	record := models.FuelRecord{
		VehicleID: uint(req.VehicleID),
		Date:      req.Date,
		Quantity:  req.Quantity,
		Cost:      req.Cost,
		Mileage:   req.Mileage,
		FullTank:  req.FullTank,
		Notes:     req.Notes,
	}

	if err := rs.Fleet.Fuel.CreateFuelRecord(&record); err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

type FuelRecordUpdateRequest struct {
	Date     *time.Time `json:"date"`
	Quantity *float64   `json:"quantity"`
	Cost     *float64   `json:"cost"`
	Mileage  *int       `json:"mileage"`
	FullTank *bool      `json:"fullTank"`
	Notes    *string    `json:"notes"`
}

func (rs *RestfulServer) UpdateFuelRecord(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req FuelRecordUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := rs.Fleet.Fuel.UpdateFuelRecord(id, models.FuelRecordPatch{
		Date:     req.Date,
		Quantity: req.Quantity,
		Cost:     req.Cost,
		Mileage:  req.Mileage,
		FullTank: req.FullTank,
		Notes:    req.Notes,
	})
	if err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (rs *RestfulServer) DeleteFuelRecord(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := rs.Fleet.Fuel.DeleteFuelRecord(id); err != nil {
		rs.serviceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
