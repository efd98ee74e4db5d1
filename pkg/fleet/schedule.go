package fleet

import (
	"go.uber.org/zap"

	"github.com/EagleFox31/YaroFleet/pkg/common"
	"github.com/EagleFox31/YaroFleet/pkg/models"
)

func (f *Fleet) getSchedule(id uint) (*models.MaintenanceSchedule, error) {
	var schedule models.MaintenanceSchedule
	if err := f.Db.Conn.First(&schedule, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &schedule, nil
}

func (f *Fleet) listVehicleSchedules(vehicleID uint) ([]models.MaintenanceSchedule, error) {
	var schedules []models.MaintenanceSchedule
	err := f.Db.Conn.
		Where("vehicle_id = ?", vehicleID).
		Order("scheduled_date").
		Find(&schedules).Error
	return schedules, err
}

func (f *Fleet) createSchedule(input *models.MaintenanceSchedule) error {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetSchedule),
	)

	if _, err := f.getVehicle(input.VehicleID); err != nil {
		return err
	}

	if err := f.Db.Conn.Create(input).Error; err != nil {
		return err
	}

	logger.Info("Maintenance schedule created", zap.Reflect("schedule", input))
	return nil
}

func (f *Fleet) updateSchedule(id uint, updates map[string]any) (*models.MaintenanceSchedule, error) {
	schedule, err := f.getSchedule(id)
	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := f.Db.Conn.Model(schedule).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return f.getSchedule(id)
}

func (f *Fleet) deleteSchedule(id uint) error {
	if _, err := f.getSchedule(id); err != nil {
		return err
	}
	return f.Db.Conn.Delete(&models.MaintenanceSchedule{}, id).Error
}

type IScheduleImpl struct {
	fleet *Fleet
}

func (is *IScheduleImpl) GetSchedule(id uint) (*models.MaintenanceSchedule, error) {
	return is.fleet.getSchedule(id)
}

func (is *IScheduleImpl) ListVehicleSchedules(vehicleID uint) ([]models.MaintenanceSchedule, error) {
	return is.fleet.listVehicleSchedules(vehicleID)
}

func (is *IScheduleImpl) CreateSchedule(input *models.MaintenanceSchedule) error {
	return is.fleet.createSchedule(input)
}

func (is *IScheduleImpl) UpdateSchedule(id uint, updates map[string]any) (*models.MaintenanceSchedule, error) {
	return is.fleet.updateSchedule(id, updates)
}

func (is *IScheduleImpl) DeleteSchedule(id uint) error {
	return is.fleet.deleteSchedule(id)
}

func (f *Fleet) GetISchedule() ISchedule {
	return &IScheduleImpl{fleet: f}
}
