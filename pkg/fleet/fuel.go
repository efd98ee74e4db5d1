package fleet

import (
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/EagleFox31/YaroFleet/pkg/common"
	"github.com/EagleFox31/YaroFleet/pkg/models"
)

func (f *Fleet) getFuelRecord(id uint) (*models.FuelRecord, error) {
	var record models.FuelRecord
	if err := f.Db.Conn.First(&record, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &record, nil
}

func (f *Fleet) listVehicleFuelRecords(vehicleID uint) ([]models.FuelRecord, error) {
	var records []models.FuelRecord
	err := f.Db.Conn.
		Where("vehicle_id = ?", vehicleID).
		Order("date desc").
		Find(&records).Error
	return records, err
}

func (f *Fleet) createFuelRecord(input *models.FuelRecord) error {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetFuel),
	)

	vehicle, err := f.getVehicle(input.VehicleID)
	if err != nil {
		return err
	}

	if err := f.Db.Conn.Create(input).Error; err != nil {
		return err
	}

	logger.Info("Fuel record created", zap.Reflect("fuel_record", input))

	if input.Mileage > vehicle.Mileage {
		return f.Db.Conn.Model(vehicle).Update("mileage", input.Mileage).Error
	}
	return nil
}

func (f *Fleet) updateFuelRecord(id uint, patch models.FuelRecordPatch) (*models.FuelRecord, error) {
	record, err := f.getFuelRecord(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if patch.Date != nil {
		updates["date"] = *patch.Date
	}
	if patch.Quantity != nil {
		updates["quantity"] = *patch.Quantity
	}
	if patch.Cost != nil {
		updates["cost"] = *patch.Cost
	}
	if patch.Mileage != nil {
		updates["mileage"] = *patch.Mileage
	}
	if patch.FullTank != nil {
		updates["full_tank"] = *patch.FullTank
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}

	if len(updates) > 0 {
		if err := f.Db.Conn.Model(record).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	// A corrected reading only ever advances the vehicle's odometer.
	if patch.Mileage != nil && *patch.Mileage > record.Mileage {
		vehicle, err := f.getVehicle(record.VehicleID)
		if err != nil {
			return nil, err
		}
		if *patch.Mileage > vehicle.Mileage {
			if err := f.Db.Conn.Model(vehicle).Update("mileage", *patch.Mileage).Error; err != nil {
				return nil, err
			}
		}
	}

	return f.getFuelRecord(id)
}

func (f *Fleet) deleteFuelRecord(id uint) error {
	if _, err := f.getFuelRecord(id); err != nil {
		return err
	}
	return f.Db.Conn.Delete(&models.FuelRecord{}, id).Error
}

// vehicleConsumption computes L/100km between consecutive full-tank refuels.
// Only full tanks are usable baselines; partial refuels are skipped.
func (f *Fleet) vehicleConsumption(vehicleID uint) ([]models.ConsumptionSegment, error) {
	var records []models.FuelRecord
	err := f.Db.Conn.
		Where("vehicle_id = ? AND full_tank = ?", vehicleID, true).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Mileage < records[j].Mileage
	})

	segments := []models.ConsumptionSegment{}
	for i := 1; i < len(records); i++ {
		distance := records[i].Mileage - records[i-1].Mileage
		if distance <= 0 {
			continue
		}
		perHundred := records[i].Quantity / float64(distance) * 100
		segments = append(segments, models.ConsumptionSegment{
			FromMileage:    records[i-1].Mileage,
			ToMileage:      records[i].Mileage,
			Liters:         records[i].Quantity,
			LitersPer100Km: math.Round(perHundred*100) / 100,
		})
	}

	return segments, nil
}

type IFuelImpl struct {
	fleet *Fleet
}

func (ifu *IFuelImpl) GetFuelRecord(id uint) (*models.FuelRecord, error) {
	return ifu.fleet.getFuelRecord(id)
}

func (ifu *IFuelImpl) ListVehicleFuelRecords(vehicleID uint) ([]models.FuelRecord, error) {
	return ifu.fleet.listVehicleFuelRecords(vehicleID)
}

func (ifu *IFuelImpl) CreateFuelRecord(input *models.FuelRecord) error {
	return ifu.fleet.createFuelRecord(input)
}

func (ifu *IFuelImpl) UpdateFuelRecord(id uint, patch models.FuelRecordPatch) (*models.FuelRecord, error) {
	return ifu.fleet.updateFuelRecord(id, patch)
}

func (ifu *IFuelImpl) DeleteFuelRecord(id uint) error {
	return ifu.fleet.deleteFuelRecord(id)
}

func (ifu *IFuelImpl) VehicleConsumption(vehicleID uint) ([]models.ConsumptionSegment, error) {
	return ifu.fleet.vehicleConsumption(vehicleID)
}

func (f *Fleet) GetIFuel() IFuel {
	return &IFuelImpl{fleet: f}
}
