package billing

import (
	"math"
	"testing"

	"fieldops/internal/domain/entities"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestLaborLineTotal(t *testing.T) {
	t.Run("default overtime and double time factors", func(t *testing.T) {
		got := LaborLineTotal(entities.LaborEntry{
			RegularHours:  8,
			OvertimeHours: 2,
			RegularRate:   50,
		})
		// 8*50 + 2*(50*1.5)
		if !almostEqual(got, 550) {
			t.Fatalf("expected 550, got %v", got)
		}
	})

	t.Run("explicit rate overrides", func(t *testing.T) {
		ot := 80.0
		dt := 120.0
		got := LaborLineTotal(entities.LaborEntry{
			RegularHours:    8,
			OvertimeHours:   1,
			DoubleTimeHours: 1,
			RegularRate:     50,
			OvertimeRate:    &ot,
			DoubleTimeRate:  &dt,
		})
		if !almostEqual(got, 400+80+120) {
			t.Fatalf("expected 600, got %v", got)
		}
	})

	t.Run("double time fallback is twice regular", func(t *testing.T) {
		got := LaborLineTotal(entities.LaborEntry{
			DoubleTimeHours: 3,
			RegularRate:     40,
		})
		if !almostEqual(got, 240) {
			t.Fatalf("expected 240, got %v", got)
		}
	})

	t.Run("zero hours yields zero", func(t *testing.T) {
		got := LaborLineTotal(entities.LaborEntry{RegularRate: 50})
		if got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})
}

func TestEquipmentLineTotal(t *testing.T) {
	t.Run("standby falls back to half hourly", func(t *testing.T) {
		got := EquipmentLineTotal(entities.EquipmentEntry{
			Hours:        8,
			HourlyRate:   150,
			StandbyHours: 2,
		})
		// 8*150 + 2*75
		if !almostEqual(got, 1350) {
			t.Fatalf("expected 1350, got %v", got)
		}
	})

	t.Run("explicit standby rate", func(t *testing.T) {
		standby := 100.0
		got := EquipmentLineTotal(entities.EquipmentEntry{
			Hours:        4,
			HourlyRate:   150,
			StandbyHours: 2,
			StandbyRate:  &standby,
		})
		if !almostEqual(got, 600+200) {
			t.Fatalf("expected 800, got %v", got)
		}
	})

	t.Run("zero hours yields zero", func(t *testing.T) {
		got := EquipmentLineTotal(entities.EquipmentEntry{HourlyRate: 150})
		if got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})
}

func TestMaterialLineTotal(t *testing.T) {
	t.Run("markup applied", func(t *testing.T) {
		got := MaterialLineTotal(entities.MaterialEntry{
			Quantity: 2,
			UnitCost: 800,
			Markup:   15,
		})
		// 1600 + 240
		if !almostEqual(got, 1840) {
			t.Fatalf("expected 1840, got %v", got)
		}
	})

	t.Run("zero markup default", func(t *testing.T) {
		got := MaterialLineTotal(entities.MaterialEntry{Quantity: 3, UnitCost: 10})
		if !almostEqual(got, 30) {
			t.Fatalf("expected 30, got %v", got)
		}
	})

	t.Run("zero quantity yields zero", func(t *testing.T) {
		got := MaterialLineTotal(entities.MaterialEntry{UnitCost: 100, Markup: 20})
		if got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})
}

func TestRoundToCent(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{1.006, 1.01},
		{1.004, 1.0},
		{0, 0},
		{-2.674, -2.67},
	}
	for _, tc := range cases {
		if got := RoundToCent(tc.in); !almostEqual(got, tc.want) {
			t.Fatalf("RoundToCent(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
