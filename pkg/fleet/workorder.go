package fleet

import (
	"time"

	"go.uber.org/zap"

	"github.com/EagleFox31/YaroFleet/pkg/common"
	"github.com/EagleFox31/YaroFleet/pkg/models"
)

func (f *Fleet) getWorkOrder(id uint) (*models.WorkOrder, error) {
	var order models.WorkOrder
	if err := f.Db.Conn.First(&order, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &order, nil
}

func (f *Fleet) listWorkOrders(status models.WorkOrderStatus, priority models.Priority, limit, offset int) ([]models.WorkOrder, int64, error) {
	query := f.Db.Conn.Model(&models.WorkOrder{})

	if status != "" {
		query = query.Where("status = ?", status)
	}
	if priority != "" {
		query = query.Where("priority = ?", priority)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.WorkOrder
	err := query.
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error
	return orders, total, err
}

func (f *Fleet) listVehicleWorkOrders(vehicleID uint) ([]models.WorkOrder, error) {
	var orders []models.WorkOrder
	err := f.Db.Conn.
		Where("vehicle_id = ?", vehicleID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

func (f *Fleet) listTechnicianWorkOrders(technicianID uint) ([]models.WorkOrder, error) {
	var orders []models.WorkOrder
	err := f.Db.Conn.
		Where("technician_id = ?", technicianID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

func (f *Fleet) createWorkOrder(input *models.WorkOrder) error {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetWorkOrder),
	)

	vehicle, err := f.getVehicle(input.VehicleID)
	if err != nil {
		return err
	}

	if input.Status == "" {
		input.Status = models.WorkOrderStatusPending
	}
	if !input.Status.Valid() {
		return ErrInvalidTransition
	}
	if input.Priority == "" {
		input.Priority = models.PriorityMedium
	}

	if err := f.Db.Conn.Create(input).Error; err != nil {
		return err
	}

	logger.Info("Work order created", zap.Reflect("work_order", input))

	// An order opened from a maintenance schedule puts an operational
	// vehicle into the shop.
	if input.MaintenanceScheduleID != nil && vehicle.Status == models.VehicleStatusOperational {
		err := f.Db.Conn.Model(vehicle).
			Update("status", models.VehicleStatusMaintenance).Error
		if err != nil {
			return err
		}
		logger.Info("Vehicle moved to maintenance",
			zap.Uint("vehicle_id", vehicle.ID),
			zap.Uint("work_order_id", input.ID))
	}

	return nil
}

func (f *Fleet) updateWorkOrder(id uint, patch models.WorkOrderPatch) (*models.WorkOrder, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetWorkOrder),
	)

	order, err := f.getWorkOrder(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if patch.TechnicianID != nil {
		updates["technician_id"] = *patch.TechnicianID
	}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Diagnosis != nil {
		updates["diagnosis"] = *patch.Diagnosis
	}
	if patch.Priority != nil {
		updates["priority"] = *patch.Priority
	}
	if patch.StartDate != nil {
		updates["start_date"] = *patch.StartDate
	}
	if patch.EndDate != nil {
		updates["end_date"] = *patch.EndDate
	}
	if patch.Duration != nil {
		updates["duration"] = *patch.Duration
	}
	if patch.Cost != nil {
		updates["cost"] = *patch.Cost
	}

	completing := false
	if patch.Status != nil && *patch.Status != order.Status {
		if !patch.Status.Valid() || !order.Status.CanTransitionTo(*patch.Status) {
			return nil, ErrInvalidTransition
		}
		updates["status"] = *patch.Status
		if *patch.Status == models.WorkOrderStatusCompleted {
			completing = true
			if patch.EndDate == nil && order.EndDate == nil {
				updates["end_date"] = time.Now()
			}
		}
	}

	if len(updates) > 0 {
		if err := f.Db.Conn.Model(order).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if completing {
		logger.Info("Work order completed", zap.Uint("work_order_id", id))
		if err := f.reevaluateVehicleStatus(order.VehicleID, id); err != nil {
			return nil, err
		}
	}

	return f.getWorkOrder(id)
}

// reevaluateVehicleStatus rescans the vehicle's work orders and flips a
// vehicle in maintenance back to operational once nothing active remains.
// Full scan rather than a counter; fleets are small enough.
func (f *Fleet) reevaluateVehicleStatus(vehicleID, excludeOrderID uint) error {
	vehicle, err := f.getVehicle(vehicleID)
	if err != nil {
		return err
	}

	if vehicle.Status != models.VehicleStatusMaintenance {
		return nil
	}

	orders, err := f.listVehicleWorkOrders(vehicleID)
	if err != nil {
		return err
	}

	for _, order := range orders {
		if order.ID != excludeOrderID && order.Status.IsActive() {
			return nil
		}
	}

	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetWorkOrder),
	)
	logger.Info("Vehicle back to operational", zap.Uint("vehicle_id", vehicleID))

	return f.Db.Conn.Model(vehicle).
		Update("status", models.VehicleStatusOperational).Error
}

func (f *Fleet) deleteWorkOrder(id uint) error {
	// Deleting an active order does not touch the vehicle's status; only
	// completing or cancelling it through the lifecycle does.
	if _, err := f.getWorkOrder(id); err != nil {
		return err
	}
	return f.Db.Conn.Delete(&models.WorkOrder{}, id).Error
}

type IWorkOrderImpl struct {
	fleet *Fleet
}

func (iw *IWorkOrderImpl) GetWorkOrder(id uint) (*models.WorkOrder, error) {
	return iw.fleet.getWorkOrder(id)
}

func (iw *IWorkOrderImpl) ListWorkOrders(status models.WorkOrderStatus, priority models.Priority, limit, offset int) ([]models.WorkOrder, int64, error) {
	return iw.fleet.listWorkOrders(status, priority, limit, offset)
}

func (iw *IWorkOrderImpl) ListVehicleWorkOrders(vehicleID uint) ([]models.WorkOrder, error) {
	return iw.fleet.listVehicleWorkOrders(vehicleID)
}

func (iw *IWorkOrderImpl) ListTechnicianWorkOrders(technicianID uint) ([]models.WorkOrder, error) {
	return iw.fleet.listTechnicianWorkOrders(technicianID)
}

func (iw *IWorkOrderImpl) CreateWorkOrder(input *models.WorkOrder) error {
	return iw.fleet.createWorkOrder(input)
}

func (iw *IWorkOrderImpl) UpdateWorkOrder(id uint, patch models.WorkOrderPatch) (*models.WorkOrder, error) {
	return iw.fleet.updateWorkOrder(id, patch)
}

func (iw *IWorkOrderImpl) DeleteWorkOrder(id uint) error {
	return iw.fleet.deleteWorkOrder(id)
}

func (f *Fleet) GetIWorkOrder() IWorkOrder {
	return &IWorkOrderImpl{fleet: f}
}
