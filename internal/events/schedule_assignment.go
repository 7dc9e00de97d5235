package events

import "time"

const ScheduleAssignmentTopic = "resto.schedule.assignments.v1"

const (
	AssignmentCreatedEventType = "assignment_created"
	AssignmentRemovedEventType = "assignment_removed"
)

type AssignmentChangedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	ShiftDate  string    `json:"shift_date"`
	LocationID int       `json:"location_id"`
	EmployeeID string    `json:"employee_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
