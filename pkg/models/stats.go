package models

import "time"

type CostPeriod string

const (
	CostPeriodWeek    CostPeriod = "week"
	CostPeriodMonth   CostPeriod = "month"
	CostPeriodQuarter CostPeriod = "quarter"
	CostPeriodYear    CostPeriod = "year"
)

func (p CostPeriod) Valid() bool {
	switch p {
	case CostPeriodWeek, CostPeriodMonth, CostPeriodQuarter, CostPeriodYear:
		return true
	}
	return false
}

// Cutoff is the inclusive start of the period ending at now.
func (p CostPeriod) Cutoff(now time.Time) time.Time {
	switch p {
	case CostPeriodWeek:
		return now.AddDate(0, 0, -7)
	case CostPeriodMonth:
		return now.AddDate(0, -1, 0)
	case CostPeriodQuarter:
		return now.AddDate(0, -3, 0)
	default:
		return now.AddDate(-1, 0, 0)
	}
}

type FleetStatistics struct {
	Operational  int64 `json:"operational"`
	Maintenance  int64 `json:"maintenance"`
	OutOfService int64 `json:"outOfService"`
}

type MaintenanceCompliance struct {
	Compliant int64 `json:"compliant"`
	Overdue   int64 `json:"overdue"`
	Total     int64 `json:"total"`
}

// ConsumptionSegment is the stretch between two consecutive full-tank
// refuels; liters refueled at the end of the stretch over the distance
// covered, normalized to L/100km.
type ConsumptionSegment struct {
	FromMileage    int     `json:"fromMileage"`
	ToMileage      int     `json:"toMileage"`
	Liters         float64 `json:"liters"`
	LitersPer100Km float64 `json:"litersPer100Km"`
}
