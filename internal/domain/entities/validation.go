package entities

import "fmt"

// ValidationError flags a malformed or missing field on an incoming ticket.
// The field name is always surfaced to the caller.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %s: %s", e.Field, e.Reason)
}

func invalidField(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// Validate checks the client-settable portion of the aggregate. Derived
// totals are not checked here; they are overwritten on every save.
func (t *FieldTicket) Validate() error {
	if t.TenantID == "" {
		return invalidField("tenant_id", "required")
	}
	if t.JobID == "" {
		return invalidField("job_id", "required")
	}
	if !t.ChangeReason.Valid() {
		return invalidField("change_reason", "unknown value")
	}
	if t.WorkDate.IsZero() {
		return invalidField("work_date", "required")
	}
	if !t.WorkEnd.IsZero() && !t.WorkStart.IsZero() && t.WorkEnd.Before(t.WorkStart) {
		return invalidField("work_end", "before work_start")
	}
	if err := t.Location.validate("location"); err != nil {
		return err
	}
	if t.MarkupRate < 0 {
		return invalidField("markup_rate", "must be >= 0")
	}
	return t.ValidateEntries()
}

// ValidateEntries checks only the billable entry lists, for update paths
// where the rest of the aggregate is untouched.
func (t *FieldTicket) ValidateEntries() error {
	for i, e := range t.LaborEntries {
		if err := e.validate(fmt.Sprintf("labor_entries[%d]", i)); err != nil {
			return err
		}
	}
	for i, e := range t.EquipmentEntries {
		if err := e.validate(fmt.Sprintf("equipment_entries[%d]", i)); err != nil {
			return err
		}
	}
	for i, e := range t.MaterialEntries {
		if err := e.validate(fmt.Sprintf("material_entries[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func (l GPSLocation) validate(prefix string) error {
	if l.Latitude < -90 || l.Latitude > 90 {
		return invalidField(prefix+".latitude", "out of range")
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		return invalidField(prefix+".longitude", "out of range")
	}
	if l.Accuracy < 0 {
		return invalidField(prefix+".accuracy", "must be >= 0")
	}
	return nil
}

func (e LaborEntry) validate(prefix string) error {
	if e.WorkerName == "" {
		return invalidField(prefix+".worker_name", "required")
	}
	if e.RegularHours < 0 || e.OvertimeHours < 0 || e.DoubleTimeHours < 0 {
		return invalidField(prefix+".hours", "must be >= 0")
	}
	if e.RegularRate <= 0 {
		return invalidField(prefix+".regular_rate", "must be > 0")
	}
	if e.OvertimeRate != nil && *e.OvertimeRate < 0 {
		return invalidField(prefix+".overtime_rate", "must be >= 0")
	}
	if e.DoubleTimeRate != nil && *e.DoubleTimeRate < 0 {
		return invalidField(prefix+".double_time_rate", "must be >= 0")
	}
	return nil
}

func (e EquipmentEntry) validate(prefix string) error {
	if !e.Type.Valid() {
		return invalidField(prefix+".type", "unknown value")
	}
	if e.Hours < 0 || e.StandbyHours < 0 {
		return invalidField(prefix+".hours", "must be >= 0")
	}
	if e.HourlyRate < 0 {
		return invalidField(prefix+".hourly_rate", "must be >= 0")
	}
	if e.StandbyRate != nil && *e.StandbyRate < 0 {
		return invalidField(prefix+".standby_rate", "must be >= 0")
	}
	return nil
}

func (e MaterialEntry) validate(prefix string) error {
	if e.Description == "" {
		return invalidField(prefix+".description", "required")
	}
	if e.Quantity < 0 {
		return invalidField(prefix+".quantity", "must be >= 0")
	}
	if e.UnitCost < 0 {
		return invalidField(prefix+".unit_cost", "must be >= 0")
	}
	if e.Markup < 0 {
		return invalidField(prefix+".markup", "must be >= 0")
	}
	if !e.Source.Valid() {
		return invalidField(prefix+".source", "unknown value")
	}
	return nil
}
