package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"github.com/EagleFox31/YaroFleet/pkg/models"
)

func (rs *RestfulServer) ListWorkOrders(c *gin.Context) {
	status := models.WorkOrderStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}
	priority := models.Priority(c.Query("priority"))
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)

	orders, total, err := rs.Fleet.WorkOrder.ListWorkOrders(status, priority, limit, offset)
	if err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"workOrders": orders, "total": total})
}

func (rs *RestfulServer) GetWorkOrder(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	order, err := rs.Fleet.WorkOrder.GetWorkOrder(id)
	if err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func (rs *RestfulServer) ListVehicleWorkOrders(c *gin.Context) {
	vehicleID, ok := idParam(c, "vehicleId")
	if !ok {
		return
	}

	orders, err := rs.Fleet.WorkOrder.ListVehicleWorkOrders(vehicleID)
	if err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (rs *RestfulServer) ListTechnicianWorkOrders(c *gin.Context) {
	technicianID, ok := idParam(c, "technicianId")
	if !ok {
		return
	}

	orders, err := rs.Fleet.WorkOrder.ListTechnicianWorkOrders(technicianID)
	if err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

type WorkOrderRequest struct {
	VehicleID             int       `json:"vehicleId"`
	TechnicianID          int       `json:"technicianId"`
	Title                 string    `json:"title"`
	Description           string    `json:"description"`
	Diagnosis             string    `json:"diagnosis"`
	Priority              string    `json:"priority"`
	StartDate             time.Time `json:"startDate"`
	Cost                  float64   `json:"cost"`
	IsPreventive          bool      `json:"isPreventive"`
	MaintenanceScheduleID int       `json:"maintenanceScheduleId"`
}

var workOrderRequestSchema = z.Struct(z.Shape{
	"VehicleID":             z.Int().Required(),
	"TechnicianID":          z.Int(),
	"Title":                 z.String().Required(),
	"Description":           z.String(),
	"Diagnosis":             z.String(),
	"Priority":              z.String(),
	"StartDate":             z.Time(),
	"Cost":                  z.Float64(),
	"IsPreventive":          z.Bool(),
	"MaintenanceScheduleID": z.Int(),
})

func (rs *RestfulServer) CreateWorkOrder(c *gin.Context) {
	var req WorkOrderRequest
	if err := workOrderRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	order := models.WorkOrder{
		VehicleID:    uint(req.VehicleID),
		Title:        req.Title,
		Description:  req.Description,
		Diagnosis:    req.Diagnosis,
		Priority:     models.Priority(req.Priority),
		Cost:         req.Cost,
		IsPreventive: req.IsPreventive,
	}
	if req.TechnicianID > 0 {
		technicianID := uint(req.TechnicianID)
		order.TechnicianID = &technicianID
	}
	if !req.StartDate.IsZero() {
		order.StartDate = &req.StartDate
	}
	if req.MaintenanceScheduleID > 0 {
		scheduleID := uint(req.MaintenanceScheduleID)
		order.MaintenanceScheduleID = &scheduleID
	}

	if err := rs.Fleet.WorkOrder.CreateWorkOrder(&order); err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

type WorkOrderUpdateRequest struct {
	TechnicianID *uint      `json:"technicianId"`
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Diagnosis    *string    `json:"diagnosis"`
	Status       *string    `json:"status"`
	Priority     *string    `json:"priority"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	Duration     *int       `json:"duration"`
	Cost         *float64   `json:"cost"`
}

func (rs *RestfulServer) UpdateWorkOrder(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req WorkOrderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := models.WorkOrderPatch{
		TechnicianID: req.TechnicianID,
		Title:        req.Title,
		Description:  req.Description,
		Diagnosis:    req.Diagnosis,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Duration:     req.Duration,
		Cost:         req.Cost,
	}
	if req.Status != nil {
		status := models.WorkOrderStatus(*req.Status)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
			return
		}
		patch.Status = &status
	}
	if req.Priority != nil {
		priority := models.Priority(*req.Priority)
		patch.Priority = &priority
	}

	order, err := rs.Fleet.WorkOrder.UpdateWorkOrder(id, patch)
	if err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func (rs *RestfulServer) DeleteWorkOrder(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := rs.Fleet.WorkOrder.DeleteWorkOrder(id); err != nil {
		rs.serviceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (rs *RestfulServer) ListWorkOrderParts(c *gin.Context) {
	workOrderID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if _, err := rs.Fleet.WorkOrder.GetWorkOrder(workOrderID); err != nil {
		rs.serviceError(c, err)
		return
	}

	used, err := rs.Fleet.Inventory.PartsUsedForWorkOrder(workOrderID)
	if err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, used)
}

type AttachPartRequest struct {
	PartID    int     `json:"partId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

var attachPartRequestSchema = z.Struct(z.Shape{
	"PartID":    z.Int().Required(),
	"Quantity":  z.Int(),
	"UnitPrice": z.Float64(),
})

func (rs *RestfulServer) AttachWorkOrderPart(c *gin.Context) {
	workOrderID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req AttachPartRequest
	if err := attachPartRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	// Snapshot the current catalog price when the caller does not name one.
	unitPrice := req.UnitPrice
	if unitPrice == 0 {
		part, err := rs.Fleet.Inventory.GetPart(uint(req.PartID))
		if err != nil {
			rs.serviceError(c, err)
			return
		}
		unitPrice = part.UnitPrice
	}

	used, err := rs.Fleet.Inventory.AttachPart(workOrderID, uint(req.PartID), quantity, unitPrice)
	if err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, used)
}
