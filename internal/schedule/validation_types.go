package schedule

// Assignment is one employee placed on one date at one location. RoleID is the
// employee's current role, resolved by join, not stored on the row.
type Assignment struct {
	ShiftDate  string `json:"shift_date"`
	LocationID int    `json:"location_id"`
	EmployeeID string `json:"employee_id"`
	RoleID     int    `json:"role_id"`
}

// StaffMember is the slice of an employee the validators need.
type StaffMember struct {
	ID         string `json:"uuid"`
	FullName   string `json:"full_name"`
	RoleID     int    `json:"role_id"`
	LocationID int    `json:"location_id"`
}

// RoleDirectory maps role ids to display names, usually loaded from the role table.
type RoleDirectory map[int]string

type RoleRequirement struct {
	RoleID               int    `json:"role_id"`
	RoleName             string `json:"role_name"`
	Required             bool   `json:"required"`
	Assigned             bool   `json:"assigned"`
	AssignedEmployeeID   string `json:"assigned_employee_id,omitempty"`
	AssignedEmployeeName string `json:"assigned_employee_name,omitempty"`
}

type ConflictType string

const (
	ConflictDoubleBooking    ConflictType = "double_booking"
	ConflictRoleMismatch     ConflictType = "role_mismatch"
	ConflictLocationMismatch ConflictType = "location_mismatch"
)

type Conflict struct {
	Type       ConflictType `json:"type"`
	EmployeeID string       `json:"employee_id"`
	ShiftDate  string       `json:"shift_date"`
	Message    string       `json:"message"`
}

type Validation struct {
	IsComplete             bool       `json:"isComplete"`
	MissingRoles           []int      `json:"missingRoles"`
	Conflicts              []Conflict `json:"conflicts"`
	CompletenessPercentage int        `json:"completenessPercentage"`
}

type Day struct {
	Date             string            `json:"date"`
	LocationID       int               `json:"location_id"`
	LocationName     string            `json:"location_name"`
	RoleRequirements []RoleRequirement `json:"role_requirements"`
	Assignments      []Assignment      `json:"assignments"`
	Validation       Validation        `json:"validation"`
}

type Week struct {
	StartDate           string `json:"start_date"`
	EndDate             string `json:"end_date"`
	Days                []Day  `json:"days"`
	OverallCompleteness int    `json:"overall_completeness"`
	Status              string `json:"status"`
	StatusText          string `json:"status_text"`
}

func indexStaff(staff []StaffMember) map[string]StaffMember {
	idx := make(map[string]StaffMember, len(staff))
	for _, m := range staff {
		if _, seen := idx[m.ID]; !seen {
			idx[m.ID] = m
		}
	}
	return idx
}

// roundPercent is round-half-up of 100*num/den for non-negative inputs.
func roundPercent(num, den int) int {
	if den <= 0 {
		return 100
	}
	return (200*num + den) / (2 * den)
}

// roundMean is round-half-up of sum/n.
func roundMean(sum, n int) int {
	if n <= 0 {
		return 0
	}
	return (2*sum + n) / (2 * n)
}
