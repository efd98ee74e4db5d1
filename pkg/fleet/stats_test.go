package fleet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EagleFox31/YaroFleet/pkg/common"
	"github.com/EagleFox31/YaroFleet/pkg/models"
	_ "github.com/EagleFox31/YaroFleet/pkg/testing"
)

// The memory database is shared across the package, so these assert on
// deltas rather than absolute counts.

func TestFleetStatisticsCountsByStatus(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, fleetObj, _, _ := GetMockFleetWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	before, err := fleetObj.Stats.FleetStatistics()
	require.NoError(t, err)

	newTestVehicle(t, fleetObj)
	broken := newTestVehicle(t, fleetObj)
	_, err = fleetObj.Vehicle.UpdateVehicle(broken.ID, map[string]any{"status": models.VehicleStatusOutOfService})
	require.NoError(t, err)

	after, err := fleetObj.Stats.FleetStatistics()
	require.NoError(t, err)

	assert.Equal(t, before.Operational+1, after.Operational)
	assert.Equal(t, before.OutOfService+1, after.OutOfService)
}

func TestMaintenanceComplianceCountsOverdue(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, fleetObj, _, _ := GetMockFleetWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	before, err := fleetObj.Stats.MaintenanceCompliance()
	require.NoError(t, err)

	overdue := newTestVehicle(t, fleetObj)
	pastDue := time.Now().AddDate(0, 0, -30)
	_, err = fleetObj.Vehicle.UpdateVehicle(overdue.ID, map[string]any{"next_maintenance_date": pastDue})
	require.NoError(t, err)

	compliant := newTestVehicle(t, fleetObj)
	future := time.Now().AddDate(0, 1, 0)
	_, err = fleetObj.Vehicle.UpdateVehicle(compliant.ID, map[string]any{"next_maintenance_date": future})
	require.NoError(t, err)

	after, err := fleetObj.Stats.MaintenanceCompliance()
	require.NoError(t, err)

	assert.Equal(t, before.Overdue+1, after.Overdue)
	assert.Equal(t, before.Compliant+1, after.Compliant)
	assert.Equal(t, before.Total+2, after.Total)
}

func TestMaintenanceCostIncludesRecentCompletedOrders(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, fleetObj, _, _ := GetMockFleetWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	before, err := fleetObj.Stats.MaintenanceCost(models.CostPeriodWeek)
	require.NoError(t, err)

	vehicle := newTestVehicle(t, fleetObj)
	order := newTestWorkOrder(t, fleetObj, vehicle.ID)

	cost := 250.0
	setStatus(t, fleetObj, order.ID, models.WorkOrderStatusInProgress)
	completed := models.WorkOrderStatusCompleted
	_, err = fleetObj.WorkOrder.UpdateWorkOrder(order.ID, models.WorkOrderPatch{Status: &completed, Cost: &cost})
	require.NoError(t, err)

	after, err := fleetObj.Stats.MaintenanceCost(models.CostPeriodWeek)
	require.NoError(t, err)
	assert.InDelta(t, before+cost, after, 0.001)
}

func TestMaintenanceCostExcludesOldOrders(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, fleetObj, _, _ := GetMockFleetWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	before, err := fleetObj.Stats.MaintenanceCost(models.CostPeriodWeek)
	require.NoError(t, err)

	vehicle := newTestVehicle(t, fleetObj)
	order := newTestWorkOrder(t, fleetObj, vehicle.ID)

	longAgo := time.Now().AddDate(0, -2, 0)
	cost := 400.0
	setStatus(t, fleetObj, order.ID, models.WorkOrderStatusInProgress)
	completed := models.WorkOrderStatusCompleted
	_, err = fleetObj.WorkOrder.UpdateWorkOrder(order.ID, models.WorkOrderPatch{
		Status:  &completed,
		Cost:    &cost,
		EndDate: &longAgo,
	})
	require.NoError(t, err)

	after, err := fleetObj.Stats.MaintenanceCost(models.CostPeriodWeek)
	require.NoError(t, err)
	assert.InDelta(t, before, after, 0.001)

	// The same order still counts once the window is widened.
	quarter, err := fleetObj.Stats.MaintenanceCost(models.CostPeriodQuarter)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, quarter, cost)
}

func TestMaintenanceCostUnknownPeriod(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, fleetObj, _, _ := GetMockFleetWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	_, err := fleetObj.Stats.MaintenanceCost(models.CostPeriod("decade"))
	assert.Error(t, err)
}
