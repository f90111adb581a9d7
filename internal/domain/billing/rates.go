package billing

import (
	"math"

	"fieldops/internal/domain/entities"
)

// Rate fallbacks applied when the optional rate is omitted on an entry.
const (
	overtimeFactor   = 1.5
	doubleTimeFactor = 2.0
	standbyFactor    = 0.5
)

// LaborLineTotal computes the billed amount for one labor entry. The result
// is unrounded; rounding happens once, when the value is persisted.
func LaborLineTotal(e entities.LaborEntry) float64 {
	overtimeRate := e.RegularRate * overtimeFactor
	if e.OvertimeRate != nil {
		overtimeRate = *e.OvertimeRate
	}
	doubleTimeRate := e.RegularRate * doubleTimeFactor
	if e.DoubleTimeRate != nil {
		doubleTimeRate = *e.DoubleTimeRate
	}
	return e.RegularHours*e.RegularRate +
		e.OvertimeHours*overtimeRate +
		e.DoubleTimeHours*doubleTimeRate
}

// EquipmentLineTotal computes the billed amount for one equipment entry.
// Standby time bills at half the hourly rate unless overridden.
func EquipmentLineTotal(e entities.EquipmentEntry) float64 {
	standbyRate := e.HourlyRate * standbyFactor
	if e.StandbyRate != nil {
		standbyRate = *e.StandbyRate
	}
	return e.Hours*e.HourlyRate + e.StandbyHours*standbyRate
}

// MaterialLineTotal computes the billed amount for one material entry,
// including its per-line markup percentage.
func MaterialLineTotal(e entities.MaterialEntry) float64 {
	return e.Quantity * e.UnitCost * (1 + e.Markup/100)
}

// RoundToCent rounds a dollar amount to the currency minor unit. Applied only
// at persistence boundaries to avoid compounding rounding drift.
func RoundToCent(v float64) float64 {
	return math.Round(v*100) / 100
}
