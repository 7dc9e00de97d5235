package schedule

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	exportRoleColWidth = 24
	exportDayColWidth  = 22
	exportHeaderRow    = 3
)

type exportRole struct {
	id       int
	name     string
	required bool
}

// WriteWeekWorkbook renders a week as one sheet: a row per role, a column per
// day, then per-day completeness and the overall status.
func WriteWeekWorkbook(w io.Writer, week Week) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Week " + week.StartDate
	index, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	f.SetActiveSheet(index)

	location := "All Locations"
	if len(week.Days) > 0 {
		location = week.Days[0].LocationName
	}
	title := fmt.Sprintf("Schedule %s to %s, %s", week.StartDate, week.EndDate, location)
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(week.Days) + 1)
	if len(week.Days) > 0 {
		if err := f.MergeCell(sheet, "A1", lastCol+"1"); err != nil {
			return err
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorder(),
	})
	if err != nil {
		return err
	}
	cellStyle, err := f.NewStyle(&excelize.Style{Border: thinBorder()})
	if err != nil {
		return err
	}
	missingStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Color: "#C00000", Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"#FCE4D6"}, Pattern: 1},
		Border: thinBorder(),
	})
	if err != nil {
		return err
	}
	_ = f.SetCellStyle(sheet, "A1", "A1", titleStyle)

	if err := setCell(f, sheet, 1, exportHeaderRow, "Role", headerStyle); err != nil {
		return err
	}
	for i, d := range week.Days {
		if err := setCell(f, sheet, i+2, exportHeaderRow, dayHeader(d.Date), headerStyle); err != nil {
			return err
		}
	}

	roles := exportRoles(week.Days)
	row := exportHeaderRow + 1
	for _, role := range roles {
		label := role.name
		if role.required {
			label += " *"
		}
		if err := setCell(f, sheet, 1, row, label, cellStyle); err != nil {
			return err
		}
		for i, d := range week.Days {
			value, style := "", cellStyle
			if req, ok := findRequirement(d.RoleRequirements, role.id); ok {
				switch {
				case req.Assigned && req.AssignedEmployeeName != "":
					value = req.AssignedEmployeeName
				case req.Assigned:
					value = req.AssignedEmployeeID
				case req.Required:
					value, style = "MISSING", missingStyle
				}
			}
			if err := setCell(f, sheet, i+2, row, value, style); err != nil {
				return err
			}
		}
		row++
	}

	row++
	if err := setCell(f, sheet, 1, row, "Completeness", headerStyle); err != nil {
		return err
	}
	for i, d := range week.Days {
		pct := d.Validation.CompletenessPercentage
		if err := setCell(f, sheet, i+2, row, fmt.Sprintf("%d%% %s", pct, StatusText(pct)), cellStyle); err != nil {
			return err
		}
	}
	row++
	if err := setCell(f, sheet, 1, row, "Overall", headerStyle); err != nil {
		return err
	}
	overall := fmt.Sprintf("%d%% %s", week.OverallCompleteness, StatusText(week.OverallCompleteness))
	if err := setCell(f, sheet, 2, row, overall, cellStyle); err != nil {
		return err
	}

	_ = f.SetColWidth(sheet, "A", "A", exportRoleColWidth)
	if len(week.Days) > 0 {
		_ = f.SetColWidth(sheet, "B", lastCol, exportDayColWidth)
	}

	return f.Write(w)
}

func setCell(f *excelize.File, sheet string, col, row int, value any, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cell, cell, style)
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "#BFBFBF", Style: 1},
		{Type: "right", Color: "#BFBFBF", Style: 1},
		{Type: "top", Color: "#BFBFBF", Style: 1},
		{Type: "bottom", Color: "#BFBFBF", Style: 1},
	}
}

func dayHeader(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Mon 01-02")
}

// exportRoles lists every role shown on any day, in first-seen order.
func exportRoles(days []Day) []exportRole {
	seen := make(map[int]struct{})
	out := make([]exportRole, 0)
	for _, d := range days {
		for _, r := range d.RoleRequirements {
			if _, ok := seen[r.RoleID]; ok {
				continue
			}
			seen[r.RoleID] = struct{}{}
			out = append(out, exportRole{id: r.RoleID, name: r.RoleName, required: r.Required})
		}
	}
	return out
}

func findRequirement(reqs []RoleRequirement, roleID int) (RoleRequirement, bool) {
	for _, r := range reqs {
		if r.RoleID == roleID {
			return r, true
		}
	}
	return RoleRequirement{}, false
}
