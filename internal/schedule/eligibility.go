package schedule

const (
	reasonAlreadyAssigned  = "Employee is already assigned on this date"
	reasonRoleMismatch     = "Employee role does not match the required role"
	reasonLocationMismatch = "Employee location does not match the target location"
)

type Eligibility struct {
	CanAssign bool     `json:"can_assign"`
	Reasons   []string `json:"reasons"`
}

// CanAssign checks a prospective assignment against the same rules the
// conflict detector reports after the fact.
func CanAssign(member StaffMember, roleID, locationID int, date string, existing []Assignment) Eligibility {
	reasons := make([]string, 0)
	for _, a := range existing {
		if a.EmployeeID == member.ID && a.ShiftDate == date {
			reasons = append(reasons, reasonAlreadyAssigned)
			break
		}
	}
	if member.RoleID != roleID {
		reasons = append(reasons, reasonRoleMismatch)
	}
	if member.LocationID != locationID {
		reasons = append(reasons, reasonLocationMismatch)
	}
	return Eligibility{CanAssign: len(reasons) == 0, Reasons: reasons}
}
