package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"github.com/EagleFox31/YaroFleet/pkg/models"
)

func (rs *RestfulServer) ListVehicles(c *gin.Context) {
	search := c.Query("search")
	status := models.VehicleStatus(c.Query("status"))
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)

	vehicles, total, err := rs.Fleet.Vehicle.ListVehicles(search, status, limit, offset)
	if err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles, "total": total})
}

func (rs *RestfulServer) GetVehicle(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	vehicle, err := rs.Fleet.Vehicle.GetVehicle(id)
	if err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

type VehicleRequest struct {
	RegistrationNumber     string    `json:"registrationNumber"`
	Brand                  string    `json:"brand"`
	Model                  string    `json:"model"`
	Year                   int       `json:"year"`
	Mileage                int       `json:"mileage"`
	Status                 string    `json:"status"`
	FuelType               string    `json:"fuelType"`
	NextMaintenanceDate    time.Time `json:"nextMaintenanceDate"`
	NextMaintenanceMileage int       `json:"nextMaintenanceMileage"`
}

var vehicleRequestSchema = z.Struct(z.Shape{
	"RegistrationNumber":     z.String().Required(),
	"Brand":                  z.String().Required(),
	"Model":                  z.String().Required(),
	"Year":                   z.Int().Required(),
	"Mileage":                z.Int(),
	"Status":                 z.String(),
	"FuelType":               z.String(),
	"NextMaintenanceDate":    z.Time(),
	"NextMaintenanceMileage": z.Int(),
})

func (rs *RestfulServer) CreateVehicle(c *gin.Context) {
	var req VehicleRequest
	if err := vehicleRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	vehicle := models.Vehicle{
		RegistrationNumber: req.RegistrationNumber,
		Brand:              req.Brand,
		Model:              req.Model,
		Year:               req.Year,
		Mileage:            req.Mileage,
		Status:             models.VehicleStatus(req.Status),
		FuelType:           models.FuelType(req.FuelType),
	}
	if !req.NextMaintenanceDate.IsZero() {
		vehicle.NextMaintenanceDate = &req.NextMaintenanceDate
	}
	if req.NextMaintenanceMileage > 0 {
		vehicle.NextMaintenanceMileage = &req.NextMaintenanceMileage
	}

	if err := rs.Fleet.Vehicle.CreateVehicle(&vehicle); err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

type VehicleUpdateRequest struct {
	RegistrationNumber     *string    `json:"registrationNumber"`
	Brand                  *string    `json:"brand"`
	Model                  *string    `json:"model"`
	Year                   *int       `json:"year"`
	Mileage                *int       `json:"mileage"`
	Status                 *string    `json:"status"`
	FuelType               *string    `json:"fuelType"`
	NextMaintenanceDate    *time.Time `json:"nextMaintenanceDate"`
	NextMaintenanceMileage *int       `json:"nextMaintenanceMileage"`
}

func (rs *RestfulServer) UpdateVehicle(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req VehicleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]any{}
	if req.RegistrationNumber != nil {
		updates["registration_number"] = *req.RegistrationNumber
	}
	if req.Brand != nil {
		updates["brand"] = *req.Brand
	}
	if req.Model != nil {
		updates["model"] = *req.Model
	}
	if req.Year != nil {
		updates["year"] = *req.Year
	}
	if req.Mileage != nil {
		updates["mileage"] = *req.Mileage
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.FuelType != nil {
		updates["fuel_type"] = *req.FuelType
	}
	if req.NextMaintenanceDate != nil {
		updates["next_maintenance_date"] = *req.NextMaintenanceDate
	}
	if req.NextMaintenanceMileage != nil {
		updates["next_maintenance_mileage"] = *req.NextMaintenanceMileage
	}

	vehicle, err := rs.Fleet.Vehicle.UpdateVehicle(id, updates)
	if err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

func (rs *RestfulServer) DeleteVehicle(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := rs.Fleet.Vehicle.DeleteVehicle(id); err != nil {
		rs.serviceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
