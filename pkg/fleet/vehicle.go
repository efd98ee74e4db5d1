package fleet

import (
	"go.uber.org/zap"

	"github.com/EagleFox31/YaroFleet/pkg/common"
	"github.com/EagleFox31/YaroFleet/pkg/models"
)

func (f *Fleet) getVehicle(id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := f.Db.Conn.First(&vehicle, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &vehicle, nil
}

func (f *Fleet) getVehicleByRegistration(registrationNumber string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := f.Db.Conn.First(&vehicle, "registration_number = ?", registrationNumber).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &vehicle, nil
}

func (f *Fleet) listVehicles(search string, status models.VehicleStatus, limit, offset int) ([]models.Vehicle, int64, error) {
	query := f.Db.Conn.Model(&models.Vehicle{})

	if search != "" {
		likeSearch := "%" + search + "%"
		query = query.Where(
			"registration_number LIKE ? OR brand LIKE ? OR model LIKE ?",
			likeSearch, likeSearch, likeSearch,
		)
	}

	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var vehicles []models.Vehicle
	err := query.
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&vehicles).Error
	return vehicles, total, err
}

func (f *Fleet) createVehicle(input *models.Vehicle) error {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetVehicle),
	)

	if _, err := f.getVehicleByRegistration(input.RegistrationNumber); err == nil {
		return ErrDuplicate
	}

	if input.Status == "" {
		input.Status = models.VehicleStatusOperational
	}
	if input.FuelType == "" {
		input.FuelType = models.FuelTypeDiesel
	}

	if err := f.Db.Conn.Create(input).Error; err != nil {
		return err
	}

	logger.Info("Vehicle created", zap.Reflect("vehicle", input))
	return nil
}

func (f *Fleet) updateVehicle(id uint, updates map[string]any) (*models.Vehicle, error) {
	vehicle, err := f.getVehicle(id)
	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := f.Db.Conn.Model(vehicle).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return f.getVehicle(id)
}

func (f *Fleet) deleteVehicle(id uint) error {
	if _, err := f.getVehicle(id); err != nil {
		return err
	}
	return f.Db.Conn.Delete(&models.Vehicle{}, id).Error
}

type IVehicleImpl struct {
	fleet *Fleet
}

func (iv *IVehicleImpl) GetVehicle(id uint) (*models.Vehicle, error) {
	return iv.fleet.getVehicle(id)
}

func (iv *IVehicleImpl) GetVehicleByRegistration(registrationNumber string) (*models.Vehicle, error) {
	return iv.fleet.getVehicleByRegistration(registrationNumber)
}

func (iv *IVehicleImpl) ListVehicles(search string, status models.VehicleStatus, limit, offset int) ([]models.Vehicle, int64, error) {
	return iv.fleet.listVehicles(search, status, limit, offset)
}

func (iv *IVehicleImpl) CreateVehicle(input *models.Vehicle) error {
	return iv.fleet.createVehicle(input)
}

func (iv *IVehicleImpl) UpdateVehicle(id uint, updates map[string]any) (*models.Vehicle, error) {
	return iv.fleet.updateVehicle(id, updates)
}

func (iv *IVehicleImpl) DeleteVehicle(id uint) error {
	return iv.fleet.deleteVehicle(id)
}

func (f *Fleet) GetIVehicle() IVehicle {
	return &IVehicleImpl{fleet: f}
}
