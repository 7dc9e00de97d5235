package schedule

import "go-resto/internal/rolecatalog"

// ComputeRoleRequirements returns one requirement per catalog entry, in catalog
// order. When several assignments share a role the first one in the list wins;
// duplicates are left for the conflict detector.
func ComputeRoleRequirements(
	catalog *rolecatalog.Catalog,
	assignments []Assignment,
	staff []StaffMember,
) []RoleRequirement {
	firstByRole := make(map[int]Assignment, len(assignments))
	for _, a := range assignments {
		if _, taken := firstByRole[a.RoleID]; !taken {
			firstByRole[a.RoleID] = a
		}
	}

	people := indexStaff(staff)
	entries := catalog.Entries()
	out := make([]RoleRequirement, 0, len(entries))
	for _, role := range entries {
		req := RoleRequirement{
			RoleID:   role.RoleID,
			RoleName: role.Name,
			Required: role.Required,
		}
		if a, ok := firstByRole[role.RoleID]; ok {
			req.Assigned = true
			req.AssignedEmployeeID = a.EmployeeID
			if m, found := people[a.EmployeeID]; found {
				req.AssignedEmployeeName = m.FullName
			}
		}
		out = append(out, req)
	}
	return out
}
