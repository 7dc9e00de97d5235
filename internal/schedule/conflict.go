package schedule

import (
	"fmt"

	"go-resto/internal/rolecatalog"
)

const unknownRole = "Unknown"

// DetectConflicts runs the double booking, role mismatch and location mismatch
// passes in that order. Conflicts are advisory; nothing here rejects a write.
func DetectConflicts(
	catalog *rolecatalog.Catalog,
	date string,
	assignments []Assignment,
	staff []StaffMember,
	roles RoleDirectory,
) []Conflict {
	people := indexStaff(staff)
	conflicts := make([]Conflict, 0)

	seen := make(map[string]int, len(assignments))
	for _, a := range assignments {
		count := seen[a.EmployeeID]
		seen[a.EmployeeID] = count + 1
		if count == 0 {
			continue
		}
		label := a.EmployeeID
		if m, ok := people[a.EmployeeID]; ok && m.FullName != "" {
			label = m.FullName
		}
		conflicts = append(conflicts, Conflict{
			Type:       ConflictDoubleBooking,
			EmployeeID: a.EmployeeID,
			ShiftDate:  date,
			Message:    fmt.Sprintf("Employee %s is assigned multiple times on %s", label, date),
		})
	}

	for _, a := range assignments {
		m, ok := people[a.EmployeeID]
		if !ok || m.RoleID == a.RoleID {
			continue
		}
		conflicts = append(conflicts, Conflict{
			Type:       ConflictRoleMismatch,
			EmployeeID: a.EmployeeID,
			ShiftDate:  date,
			Message: fmt.Sprintf("Employee %s has role %q but assigned to %q role",
				m.FullName, roleName(catalog, roles, m.RoleID), roleName(catalog, roles, a.RoleID)),
		})
	}

	for _, a := range assignments {
		m, ok := people[a.EmployeeID]
		if !ok || m.LocationID == a.LocationID {
			continue
		}
		conflicts = append(conflicts, Conflict{
			Type:       ConflictLocationMismatch,
			EmployeeID: a.EmployeeID,
			ShiftDate:  date,
			Message: fmt.Sprintf("Employee %s is assigned to location %d but belongs to location %d",
				m.FullName, a.LocationID, m.LocationID),
		})
	}

	return conflicts
}

// ValidateDay combines coverage of required roles with the conflict passes.
func ValidateDay(
	catalog *rolecatalog.Catalog,
	date string,
	assignments []Assignment,
	staff []StaffMember,
	roles RoleDirectory,
) Validation {
	covered := make(map[int]struct{}, len(assignments))
	for _, a := range assignments {
		covered[a.RoleID] = struct{}{}
	}

	missing := make([]int, 0)
	required := catalog.Required()
	for _, role := range required {
		if _, ok := covered[role.RoleID]; !ok {
			missing = append(missing, role.RoleID)
		}
	}

	conflicts := DetectConflicts(catalog, date, assignments, staff, roles)

	return Validation{
		IsComplete:             len(missing) == 0 && len(conflicts) == 0,
		MissingRoles:           missing,
		Conflicts:              conflicts,
		CompletenessPercentage: roundPercent(len(required)-len(missing), len(required)),
	}
}

func roleName(catalog *rolecatalog.Catalog, roles RoleDirectory, id int) string {
	if name, ok := roles[id]; ok && name != "" {
		return name
	}
	if name := catalog.Name(id); name != "" {
		return name
	}
	return unknownRole
}
