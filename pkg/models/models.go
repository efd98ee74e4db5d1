package models

import "time"

type Role string

const (
	RoleAdmin           Role = "admin"
	RoleWorkshopManager Role = "workshop_manager"
	RoleTechnician      Role = "technician"
	RoleUser            Role = "user"
)

type VehicleStatus string

const (
	VehicleStatusOperational  VehicleStatus = "operational"
	VehicleStatusMaintenance  VehicleStatus = "maintenance"
	VehicleStatusOutOfService VehicleStatus = "out_of_service"
)

type FuelType string

const (
	FuelTypeDiesel   FuelType = "diesel"
	FuelTypePetrol   FuelType = "petrol"
	FuelTypeElectric FuelType = "electric"
	FuelTypeHybrid   FuelType = "hybrid"
	FuelTypeOther    FuelType = "other"
)

type Frequency string

const (
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
	FrequencyMileage   Frequency = "mileage"
)

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

type AlertType string

const (
	AlertTypeMaintenance AlertType = "maintenance"
	AlertTypeInventory   AlertType = "inventory"
	AlertTypeWorkOrder   AlertType = "work_order"
	AlertTypeFuel        AlertType = "fuel"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex" json:"username"`
	Password  string    `json:"-"`
	Email     string    `gorm:"uniqueIndex" json:"email"`
	Name      string    `json:"name"`
	Role      Role      `gorm:"type:varchar(20);default:'user';check:role IN ('admin','workshop_manager','technician','user')" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type Vehicle struct {
	ID                     uint          `gorm:"primaryKey" json:"id"`
	RegistrationNumber     string        `gorm:"uniqueIndex" json:"registrationNumber"`
	Brand                  string        `json:"brand"`
	Model                  string        `json:"model"`
	Year                   int           `json:"year"`
	Mileage                int           `gorm:"default:0" json:"mileage"`
	Status                 VehicleStatus `gorm:"type:varchar(20);default:'operational';check:status IN ('operational','maintenance','out_of_service')" json:"status"`
	FuelType               FuelType      `gorm:"type:varchar(20);default:'diesel';check:fuel_type IN ('diesel','petrol','electric','hybrid','other')" json:"fuelType"`
	NextMaintenanceDate    *time.Time    `json:"nextMaintenanceDate"`
	NextMaintenanceMileage *int          `json:"nextMaintenanceMileage"`
	CreatedAt              time.Time     `json:"createdAt"`

	MaintenanceSchedules []MaintenanceSchedule `gorm:"foreignKey:VehicleID" json:"-"`
	WorkOrders           []WorkOrder           `gorm:"foreignKey:VehicleID" json:"-"`
	FuelRecords          []FuelRecord          `gorm:"foreignKey:VehicleID" json:"-"`
}

type MaintenanceSchedule struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	VehicleID        uint       `gorm:"index" json:"vehicleId"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	ScheduledDate    *time.Time `json:"scheduledDate"`
	ScheduledMileage *int       `json:"scheduledMileage"`
	Frequency        Frequency  `gorm:"type:varchar(20);check:frequency IN ('daily','weekly','monthly','quarterly','yearly','mileage')" json:"frequency"`
	FrequencyValue   int        `json:"frequencyValue"`
	IsActive         bool       `json:"isActive"`
	CreatedAt        time.Time  `json:"createdAt"`
}

type WorkOrder struct {
	ID                    uint            `gorm:"primaryKey" json:"id"`
	VehicleID             uint            `gorm:"index" json:"vehicleId"`
	TechnicianID          *uint           `gorm:"index" json:"technicianId"`
	Title                 string          `json:"title"`
	Description           string          `json:"description"`
	Diagnosis             string          `json:"diagnosis"`
	Status                WorkOrderStatus `gorm:"type:varchar(20);default:'pending';check:status IN ('pending','in_progress','completed','cancelled')" json:"status"`
	Priority              Priority        `gorm:"type:varchar(20);default:'medium';check:priority IN ('low','medium','high','critical')" json:"priority"`
	StartDate             *time.Time      `json:"startDate"`
	EndDate               *time.Time      `json:"endDate"`
	Duration              *int            `json:"duration"` // minutes
	Cost                  float64         `gorm:"default:0" json:"cost"`
	IsPreventive          bool            `gorm:"default:false" json:"isPreventive"`
	MaintenanceScheduleID *uint           `json:"maintenanceScheduleId"`
	CreatedAt             time.Time       `json:"createdAt"`

	PartsUsed []PartUsed `gorm:"foreignKey:WorkOrderID" json:"-"`
}

type Part struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name"`
	Reference   string    `gorm:"uniqueIndex" json:"reference"`
	Description string    `json:"description"`
	Quantity    int       `gorm:"default:0" json:"quantity"`
	MinQuantity int       `json:"minQuantity"`
	Location    string    `json:"location"`
	UnitPrice   float64   `gorm:"default:0" json:"unitPrice"`
	Supplier    string    `json:"supplier"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PartUsed snapshots UnitPrice at attach time; later edits to the Part's
// price never touch historical rows.
type PartUsed struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	WorkOrderID uint      `gorm:"index" json:"workOrderId"`
	PartID      uint      `gorm:"index" json:"partId"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unitPrice"`
	CreatedAt   time.Time `json:"createdAt"`
}

type FuelRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VehicleID uint      `gorm:"index" json:"vehicleId"`
	Date      time.Time `json:"date"`
	Quantity  float64   `json:"quantity"` // liters
	Cost      float64   `json:"cost"`
	Mileage   int       `json:"mileage"`
	FullTank  bool      `json:"fullTank"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

type Alert struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"index" json:"userId"` // nil means broadcast
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      AlertType `gorm:"type:varchar(20);check:type IN ('maintenance','inventory','work_order','fuel')" json:"type"`
	Priority  Priority  `gorm:"type:varchar(20);default:'medium';check:priority IN ('low','medium','high','critical')" json:"priority"`
	IsRead    bool      `gorm:"default:false" json:"isRead"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"createdAt"`
}
