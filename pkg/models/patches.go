package models

import "time"

// WorkOrderPatch carries the mutable work-order fields; nil means "leave as is".
type WorkOrderPatch struct {
	TechnicianID *uint
	Title        *string
	Description  *string
	Diagnosis    *string
	Status       *WorkOrderStatus
	Priority     *Priority
	StartDate    *time.Time
	EndDate      *time.Time
	Duration     *int
	Cost         *float64
}

// FuelRecordPatch carries the mutable fuel-record fields; nil means "leave as is".
type FuelRecordPatch struct {
	Date     *time.Time
	Quantity *float64
	Cost     *float64
	Mileage  *int
	FullTank *bool
	Notes    *string
}
