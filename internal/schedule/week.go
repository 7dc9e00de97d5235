package schedule

import (
	"time"

	"go-resto/internal/rolecatalog"
)

const (
	DateLayout       = "2006-01-02"
	daysInWeek       = 7
	allLocationsName = "All Locations"
)

// WeekStart returns midnight of the Sunday on or before ref, in ref's location.
func WeekStart(ref time.Time) time.Time {
	y, m, d := ref.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, ref.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

type WeekInput struct {
	Reference    time.Time
	Assignments  []Assignment
	Staff        []StaffMember
	Roles        RoleDirectory
	LocationID   int
	LocationName string
	// Admin viewers see every requirement; others only the filled ones.
	Admin bool
}

// BuildWeek lays out the seven days starting at WeekStart(in.Reference).
func BuildWeek(catalog *rolecatalog.Catalog, in WeekInput) Week {
	start := WeekStart(in.Reference)
	end := start.AddDate(0, 0, daysInWeek-1)

	byDate := make(map[string][]Assignment)
	for _, a := range in.Assignments {
		if in.LocationID > 0 && a.LocationID != in.LocationID {
			continue
		}
		byDate[a.ShiftDate] = append(byDate[a.ShiftDate], a)
	}

	locationName := in.LocationName
	if in.LocationID <= 0 || locationName == "" {
		locationName = allLocationsName
	}
	locationID := in.LocationID
	if locationID < 0 {
		locationID = 0
	}

	days := make([]Day, 0, daysInWeek)
	for i := 0; i < daysInWeek; i++ {
		date := start.AddDate(0, 0, i).Format(DateLayout)
		dayAssignments := byDate[date]
		if dayAssignments == nil {
			dayAssignments = []Assignment{}
		}

		requirements := ComputeRoleRequirements(catalog, dayAssignments, in.Staff)
		if !in.Admin {
			requirements = onlyAssigned(requirements)
		}

		days = append(days, Day{
			Date:             date,
			LocationID:       locationID,
			LocationName:     locationName,
			RoleRequirements: requirements,
			Assignments:      dayAssignments,
			Validation:       ValidateDay(catalog, date, dayAssignments, in.Staff, in.Roles),
		})
	}

	overall := ValidateWeek(days).CompletenessPercentage
	return Week{
		StartDate:           start.Format(DateLayout),
		EndDate:             end.Format(DateLayout),
		Days:                days,
		OverallCompleteness: overall,
		Status:              StatusColor(overall),
		StatusText:          StatusText(overall),
	}
}

// ValidateWeek folds day validations into one summary. Missing roles keep
// first-seen order without repeats.
func ValidateWeek(days []Day) Validation {
	out := Validation{
		IsComplete:   true,
		MissingRoles: make([]int, 0),
		Conflicts:    make([]Conflict, 0),
	}
	if len(days) == 0 {
		return out
	}

	seen := make(map[int]struct{})
	sum := 0
	for _, d := range days {
		v := d.Validation
		if !v.IsComplete {
			out.IsComplete = false
		}
		for _, id := range v.MissingRoles {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			out.MissingRoles = append(out.MissingRoles, id)
		}
		out.Conflicts = append(out.Conflicts, v.Conflicts...)
		sum += v.CompletenessPercentage
	}
	out.CompletenessPercentage = roundMean(sum, len(days))
	return out
}

func onlyAssigned(reqs []RoleRequirement) []RoleRequirement {
	out := make([]RoleRequirement, 0, len(reqs))
	for _, r := range reqs {
		if r.Assigned {
			out = append(out, r)
		}
	}
	return out
}
