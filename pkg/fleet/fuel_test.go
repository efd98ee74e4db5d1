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

func addFuelRecord(t *testing.T, f *Fleet, vehicleID uint, daysAgo int, liters float64, mileage int, fullTank bool) *models.FuelRecord {
	t.Helper()
	record := &models.FuelRecord{
		VehicleID: vehicleID,
		Date:      time.Now().AddDate(0, 0, -daysAgo),
		Quantity:  liters,
		Cost:      liters * 1.7,
		Mileage:   mileage,
		FullTank:  fullTank,
	}
	require.NoError(t, f.Fuel.CreateFuelRecord(record))
	return record
}

func TestConsumptionBetweenFullTanks(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, fleetObj, _, _ := GetMockFleetWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	vehicle := newTestVehicle(t, fleetObj)

	addFuelRecord(t, fleetObj, vehicle.ID, 14, 55, 10_000, true)
	addFuelRecord(t, fleetObj, vehicle.ID, 2, 40, 10_500, true)

	segments, err := fleetObj.Fuel.VehicleConsumption(vehicle.ID)
	require.NoError(t, err)
	require.Len(t, segments, 1)

	assert.Equal(t, 10_000, segments[0].FromMileage)
	assert.Equal(t, 10_500, segments[0].ToMileage)
	assert.Equal(t, 40.0, segments[0].Liters)
	assert.Equal(t, 8.00, segments[0].LitersPer100Km)
}

func TestConsumptionSkipsPartialRefuels(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, fleetObj, _, _ := GetMockFleetWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	vehicle := newTestVehicle(t, fleetObj)

	addFuelRecord(t, fleetObj, vehicle.ID, 20, 50, 20_000, true)
	addFuelRecord(t, fleetObj, vehicle.ID, 10, 15, 20_250, false) // partial, not a baseline
	addFuelRecord(t, fleetObj, vehicle.ID, 1, 40, 20_500, true)

	segments, err := fleetObj.Fuel.VehicleConsumption(vehicle.ID)
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Equal(t, 20_000, segments[0].FromMileage)
	assert.Equal(t, 20_500, segments[0].ToMileage)
}

func TestConsumptionWithSingleRecord(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, fleetObj, _, _ := GetMockFleetWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	vehicle := newTestVehicle(t, fleetObj)
	addFuelRecord(t, fleetObj, vehicle.ID, 1, 40, 10_000, true)

	segments, err := fleetObj.Fuel.VehicleConsumption(vehicle.ID)
	require.NoError(t, err)
	assert.Empty(t, segments)
}

func TestCreateFuelRecordAdvancesVehicleMileage(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, fleetObj, _, _ := GetMockFleetWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	vehicle := newTestVehicle(t, fleetObj)
	require.Equal(t, 0, vehicle.Mileage)

	addFuelRecord(t, fleetObj, vehicle.ID, 5, 40, 1_200, true)

	updated, err := fleetObj.Vehicle.GetVehicle(vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, 1_200, updated.Mileage)

	// A lower reading never winds the odometer back.
	addFuelRecord(t, fleetObj, vehicle.ID, 3, 20, 900, false)

	updated, err = fleetObj.Vehicle.GetVehicle(vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, 1_200, updated.Mileage)
}

func TestUpdateFuelRecordAdvancesVehicleMileage(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, fleetObj, _, _ := GetMockFleetWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	vehicle := newTestVehicle(t, fleetObj)
	record := addFuelRecord(t, fleetObj, vehicle.ID, 5, 40, 1_000, true)

	mileage := 1_500
	updated, err := fleetObj.Fuel.UpdateFuelRecord(record.ID, models.FuelRecordPatch{Mileage: &mileage})
	require.NoError(t, err)
	assert.Equal(t, 1_500, updated.Mileage)

	refreshed, err := fleetObj.Vehicle.GetVehicle(vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, 1_500, refreshed.Mileage)
}

func TestCreateFuelRecordKeepsExplicitPartialFlag(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, fleetObj, _, _ := GetMockFleetWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	vehicle := newTestVehicle(t, fleetObj)
	record := addFuelRecord(t, fleetObj, vehicle.ID, 1, 15, 500, false)

	stored, err := fleetObj.Fuel.GetFuelRecord(record.ID)
	require.NoError(t, err)
	assert.False(t, stored.FullTank)
}

func TestCreateFuelRecordUnknownVehicle(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, fleetObj, _, _ := GetMockFleetWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	record := &models.FuelRecord{VehicleID: 0, Date: time.Now(), Quantity: 40, Mileage: 100}
	err := fleetObj.Fuel.CreateFuelRecord(record)
	assert.ErrorIs(t, err, ErrNotFound)
}
