package fleet

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/EagleFox31/YaroFleet/pkg/db"
	"github.com/EagleFox31/YaroFleet/pkg/fleet/mocks"
	"github.com/EagleFox31/YaroFleet/pkg/models"
)

func GetMockFleetWithMemorySqliteDialector(t *testing.T, useMockInventory, useMockAlert bool) (
	*gomock.Controller,
	*Fleet,
	*mocks.MockIInventory,
	*mocks.MockIAlert,
) {
	ctrl := gomock.NewController(t)

	mockIInventory := mocks.NewMockIInventory(ctrl)
	mockIAlert := mocks.NewMockIAlert(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	fleetInstance := (&Fleet{Db: *dbInstance}).WithAllServices()

	if useMockInventory {
		fleetInstance.WithServices(ServiceOpts{Inventory: mockIInventory})
	}
	if useMockAlert {
		fleetInstance.WithServices(ServiceOpts{Alert: mockIAlert})
	}

	return ctrl, fleetInstance, mockIInventory, mockIAlert
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

// The memory sqlite instance is shared across the package, so fixtures
// carry uuid-based unique keys.

func newTestVehicle(t *testing.T, f *Fleet) *models.Vehicle {
	t.Helper()
	vehicle := &models.Vehicle{
		RegistrationNumber: uuid.NewString(),
		Brand:              "Renault",
		Model:              "Master",
		Year:               2021,
	}
	require.NoError(t, f.Vehicle.CreateVehicle(vehicle))
	return vehicle
}

func newTestPart(t *testing.T, f *Fleet, quantity, minQuantity int) *models.Part {
	t.Helper()
	part := &models.Part{
		Name:        "Oil filter",
		Reference:   uuid.NewString(),
		Quantity:    quantity,
		MinQuantity: minQuantity,
		UnitPrice:   8.50,
	}
	require.NoError(t, f.Inventory.CreatePart(part))
	return part
}

func newTestWorkOrder(t *testing.T, f *Fleet, vehicleID uint) *models.WorkOrder {
	t.Helper()
	order := &models.WorkOrder{
		VehicleID: vehicleID,
		Title:     "Brake inspection",
	}
	require.NoError(t, f.WorkOrder.CreateWorkOrder(order))
	return order
}

func newTestUser(t *testing.T, f *Fleet, role models.Role, password string) *models.User {
	t.Helper()
	user := &models.User{
		Username: uuid.NewString(),
		Email:    uuid.NewString() + "@yarofleet.local",
		Name:     "Test User",
		Role:     role,
	}
	require.NoError(t, f.User.CreateUser(user, password))
	return user
}

func statusOf(t *testing.T, f *Fleet, vehicleID uint) models.VehicleStatus {
	t.Helper()
	vehicle, err := f.Vehicle.GetVehicle(vehicleID)
	require.NoError(t, err)
	return vehicle.Status
}
