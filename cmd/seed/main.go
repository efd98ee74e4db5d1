package main

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/EagleFox31/YaroFleet/pkg/db"
	"github.com/EagleFox31/YaroFleet/pkg/fleet"
	"github.com/EagleFox31/YaroFleet/pkg/models"
)

// Loads a small demo data set into the configured sqlite file so the API can
// be exercised right after a fresh checkout.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	dbInstance := db.GetInstance(db.UseSqliteDialector())

	fleetCore := fleet.Fleet{
		Db: *dbInstance,
	}
	fleetCore.WithAllServices()

	users := []struct {
		user     models.User
		password string
	}{
		{models.User{Username: "admin", Email: "admin@yarofleet.local", Name: "Fleet Admin", Role: models.RoleAdmin}, "admin123"},
		{models.User{Username: "manager", Email: "manager@yarofleet.local", Name: "Workshop Manager", Role: models.RoleWorkshopManager}, "manager123"},
		{models.User{Username: "tech", Email: "tech@yarofleet.local", Name: "Lead Technician", Role: models.RoleTechnician}, "tech123"},
	}
	for i := range users {
		if err := fleetCore.User.CreateUser(&users[i].user, users[i].password); err != nil {
			log.Fatalf("seed user %s: %v", users[i].user.Username, err)
		}
	}
	fmt.Printf("seeded %v users\n", len(users))

	vehicles := []models.Vehicle{
		{RegistrationNumber: "AB-123-CD", Brand: "Renault", Model: "Master", Year: 2021, Mileage: 48_200, FuelType: models.FuelTypeDiesel},
		{RegistrationNumber: "EF-456-GH", Brand: "Toyota", Model: "Hilux", Year: 2019, Mileage: 103_500, FuelType: models.FuelTypeDiesel},
		{RegistrationNumber: "IJ-789-KL", Brand: "Nissan", Model: "Leaf", Year: 2023, Mileage: 12_040, FuelType: models.FuelTypeElectric},
	}
	for i := range vehicles {
		if err := fleetCore.Vehicle.CreateVehicle(&vehicles[i]); err != nil {
			log.Fatalf("seed vehicle %s: %v", vehicles[i].RegistrationNumber, err)
		}
	}
	fmt.Printf("seeded %v vehicles\n", len(vehicles))

	parts := []models.Part{
		{Name: "Oil filter", Reference: "OF-2040", Quantity: 24, MinQuantity: 5, UnitPrice: 8.50, Location: "A1", Supplier: "Mann"},
		{Name: "Brake pads front", Reference: "BP-1108", Quantity: 6, MinQuantity: 4, UnitPrice: 34.90, Location: "B3", Supplier: "Brembo"},
		{Name: "Wiper blade 60cm", Reference: "WB-600", Quantity: 2, MinQuantity: 6, UnitPrice: 11.20, Location: "C2", Supplier: "Bosch"},
	}
	for i := range parts {
		if err := fleetCore.Inventory.CreatePart(&parts[i]); err != nil {
			log.Fatalf("seed part %s: %v", parts[i].Reference, err)
		}
	}
	fmt.Printf("seeded %v parts\n", len(parts))

	schedule := models.MaintenanceSchedule{
		VehicleID:      vehicles[0].ID,
		Title:          "Oil change",
		Description:    "Engine oil and filter every 20 000 km",
		Frequency:      models.FrequencyMileage,
		FrequencyValue: 20_000,
		IsActive:       true,
	}
	if err := fleetCore.Schedule.CreateSchedule(&schedule); err != nil {
		log.Fatalf("seed schedule: %v", err)
	}

	order := models.WorkOrder{
		VehicleID:             vehicles[0].ID,
		TechnicianID:          &users[2].user.ID,
		Title:                 "Scheduled oil change",
		Priority:              models.PriorityMedium,
		IsPreventive:          true,
		MaintenanceScheduleID: &schedule.ID,
	}
	if err := fleetCore.WorkOrder.CreateWorkOrder(&order); err != nil {
		log.Fatalf("seed work order: %v", err)
	}
	fmt.Println("seeded 1 schedule and 1 work order")

	now := time.Now()
	fuelRecords := []models.FuelRecord{
		{VehicleID: vehicles[1].ID, Date: now.AddDate(0, 0, -14), Quantity: 62, Cost: 105.40, Mileage: 102_800, FullTank: true},
		{VehicleID: vehicles[1].ID, Date: now.AddDate(0, 0, -2), Quantity: 58, Cost: 98.60, Mileage: 103_500, FullTank: true},
	}
	for i := range fuelRecords {
		if err := fleetCore.Fuel.CreateFuelRecord(&fuelRecords[i]); err != nil {
			log.Fatalf("seed fuel record: %v", err)
		}
	}
	fmt.Printf("seeded %v fuel records\n", len(fuelRecords))
}
