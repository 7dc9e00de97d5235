package events

import "time"

const EmployeeLifecycleTopic = "resto.employee.lifecycle.v1"

const EmployeeFiredEventType = "employee_fired"

// EmployeeFiredEvent is emitted when an employee is taken off the active
// roster. EffectiveDate is the first date the employee no longer works.
type EmployeeFiredEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	EmployeeID    string    `json:"employee_id"`
	EffectiveDate string    `json:"effective_date"`
	OccurredAt    time.Time `json:"occurred_at"`
}
