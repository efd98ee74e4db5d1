package fleet

import (
	"fmt"
	"time"

	"github.com/EagleFox31/YaroFleet/pkg/common"
	"github.com/EagleFox31/YaroFleet/pkg/models"
)

func (f *Fleet) fleetStatistics() (*models.FleetStatistics, error) {
	stats := models.FleetStatistics{}

	counts := []struct {
		status models.VehicleStatus
		dest   *int64
	}{
		{models.VehicleStatusOperational, &stats.Operational},
		{models.VehicleStatusMaintenance, &stats.Maintenance},
		{models.VehicleStatusOutOfService, &stats.OutOfService},
	}

	for _, c := range counts {
		err := f.Db.Conn.Model(&models.Vehicle{}).
			Where("status = ?", c.status).
			Count(c.dest).Error
		if err != nil {
			return nil, err
		}
	}

	return &stats, nil
}

func (f *Fleet) maintenanceCompliance() (*models.MaintenanceCompliance, error) {
	compliance := models.MaintenanceCompliance{}
	today := time.Now().Truncate(24 * time.Hour)

	err := f.Db.Conn.Model(&models.Vehicle{}).
		Where("next_maintenance_date IS NULL OR next_maintenance_date >= ?", today).
		Count(&compliance.Compliant).Error
	if err != nil {
		return nil, err
	}

	err = f.Db.Conn.Model(&models.Vehicle{}).
		Where("next_maintenance_date IS NOT NULL AND next_maintenance_date < ?", today).
		Count(&compliance.Overdue).Error
	if err != nil {
		return nil, err
	}

	err = f.Db.Conn.Model(&models.Vehicle{}).Count(&compliance.Total).Error
	if err != nil {
		return nil, err
	}

	return &compliance, nil
}

// maintenanceCost sums completed work orders whose end date falls inside the
// period.
func (f *Fleet) maintenanceCost(period models.CostPeriod) (float64, error) {
	if !period.Valid() {
		return 0, fmt.Errorf("unknown cost period %q", period)
	}

	var orders []models.WorkOrder
	err := f.Db.Conn.
		Where("status = ? AND end_date >= ?", models.WorkOrderStatusCompleted, period.Cutoff(time.Now())).
		Find(&orders).Error
	if err != nil {
		return 0, err
	}

	total := common.Reducer(orders, func(acc float64, order models.WorkOrder) float64 {
		return acc + order.Cost
	}, 0.0)

	return total, nil
}

type IStatsImpl struct {
	fleet *Fleet
}

func (is *IStatsImpl) FleetStatistics() (*models.FleetStatistics, error) {
	return is.fleet.fleetStatistics()
}

func (is *IStatsImpl) MaintenanceCompliance() (*models.MaintenanceCompliance, error) {
	return is.fleet.maintenanceCompliance()
}

func (is *IStatsImpl) MaintenanceCost(period models.CostPeriod) (float64, error) {
	return is.fleet.maintenanceCost(period)
}

func (f *Fleet) GetIStats() IStats {
	return &IStatsImpl{fleet: f}
}
