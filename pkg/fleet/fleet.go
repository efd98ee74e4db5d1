package fleet

import (
	"github.com/EagleFox31/YaroFleet/pkg/db"
	"github.com/EagleFox31/YaroFleet/pkg/models"
)

type IVehicle interface {
	GetVehicle(id uint) (*models.Vehicle, error)
	GetVehicleByRegistration(registrationNumber string) (*models.Vehicle, error)
	ListVehicles(search string, status models.VehicleStatus, limit, offset int) ([]models.Vehicle, int64, error)
	CreateVehicle(input *models.Vehicle) error
	UpdateVehicle(id uint, updates map[string]any) (*models.Vehicle, error)
	DeleteVehicle(id uint) error
}

type ISchedule interface {
	GetSchedule(id uint) (*models.MaintenanceSchedule, error)
	ListVehicleSchedules(vehicleID uint) ([]models.MaintenanceSchedule, error)
	CreateSchedule(input *models.MaintenanceSchedule) error
	UpdateSchedule(id uint, updates map[string]any) (*models.MaintenanceSchedule, error)
	DeleteSchedule(id uint) error
}

type IWorkOrder interface {
	GetWorkOrder(id uint) (*models.WorkOrder, error)
	ListWorkOrders(status models.WorkOrderStatus, priority models.Priority, limit, offset int) ([]models.WorkOrder, int64, error)
	ListVehicleWorkOrders(vehicleID uint) ([]models.WorkOrder, error)
	ListTechnicianWorkOrders(technicianID uint) ([]models.WorkOrder, error)
	CreateWorkOrder(input *models.WorkOrder) error
	UpdateWorkOrder(id uint, patch models.WorkOrderPatch) (*models.WorkOrder, error)
	DeleteWorkOrder(id uint) error
}

type IInventory interface {
	GetPart(id uint) (*models.Part, error)
	GetPartByReference(reference string) (*models.Part, error)
	ListParts(search string, limit, offset int) ([]models.Part, int64, error)
	ListPartsLowOnStock() ([]models.Part, error)
	CreatePart(input *models.Part) error
	UpdatePart(id uint, updates map[string]any) (*models.Part, error)
	DeletePart(id uint) error

	PartsUsedForWorkOrder(workOrderID uint) ([]models.PartUsed, error)
	AttachPart(workOrderID, partID uint, quantity int, unitPrice float64) (*models.PartUsed, error)
	UpdatePartUsed(partUsedID uint, quantity int) (*models.PartUsed, error)
	DetachPart(partUsedID uint) error
	AdjustStock(partID uint, delta int) (*models.Part, error)
}

type IFuel interface {
	GetFuelRecord(id uint) (*models.FuelRecord, error)
	ListVehicleFuelRecords(vehicleID uint) ([]models.FuelRecord, error)
	CreateFuelRecord(input *models.FuelRecord) error
	UpdateFuelRecord(id uint, patch models.FuelRecordPatch) (*models.FuelRecord, error)
	DeleteFuelRecord(id uint) error
	VehicleConsumption(vehicleID uint) ([]models.ConsumptionSegment, error)
}

type IAlert interface {
	GetAlert(id uint) (*models.Alert, error)
	ListUserAlerts(userID uint) ([]models.Alert, error)
	ListUnreadUserAlerts(userID uint) ([]models.Alert, error)
	CreateAlert(input *models.Alert) error
	MarkAlertAsRead(id uint) (*models.Alert, error)
	DeleteAlert(id uint) error
	CheckAndStoreLowStockAlert(part *models.Part) error
}

type IUser interface {
	GetUser(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	CreateUser(input *models.User, plainPassword string) error
	ListUsersByRole(role models.Role) ([]models.User, error)
	Authenticate(username, password string) (*models.User, error)
}

type IStats interface {
	FleetStatistics() (*models.FleetStatistics, error)
	MaintenanceCompliance() (*models.MaintenanceCompliance, error)
	MaintenanceCost(period models.CostPeriod) (float64, error)
}

type Fleet struct {
	Db        db.DB
	Vehicle   IVehicle
	Schedule  ISchedule
	WorkOrder IWorkOrder
	Inventory IInventory
	Fuel      IFuel
	Alert     IAlert
	User      IUser
	Stats     IStats
}

type ServiceOpts struct {
	Vehicle   IVehicle
	Schedule  ISchedule
	WorkOrder IWorkOrder
	Inventory IInventory
	Fuel      IFuel
	Alert     IAlert
	User      IUser
	Stats     IStats
}

func (f *Fleet) WithServices(opts ServiceOpts) *Fleet {
	if opts.Vehicle != nil {
		f.Vehicle = opts.Vehicle
	}
	if opts.Schedule != nil {
		f.Schedule = opts.Schedule
	}
	if opts.WorkOrder != nil {
		f.WorkOrder = opts.WorkOrder
	}
	if opts.Inventory != nil {
		f.Inventory = opts.Inventory
	}
	if opts.Fuel != nil {
		f.Fuel = opts.Fuel
	}
	if opts.Alert != nil {
		f.Alert = opts.Alert
	}
	if opts.User != nil {
		f.User = opts.User
	}
	if opts.Stats != nil {
		f.Stats = opts.Stats
	}
	return f
}

// WithAllServices wires every default implementation; the common case for
// main and tests.
func (f *Fleet) WithAllServices() *Fleet {
	return f.WithServices(ServiceOpts{
		Vehicle:   f.GetIVehicle(),
		Schedule:  f.GetISchedule(),
		WorkOrder: f.GetIWorkOrder(),
		Inventory: f.GetIInventory(),
		Fuel:      f.GetIFuel(),
		Alert:     f.GetIAlert(),
		User:      f.GetIUser(),
		Stats:     f.GetIStats(),
	})
}
