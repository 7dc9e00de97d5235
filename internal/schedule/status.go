package schedule

const (
	StatusGreen  = "green"
	StatusYellow = "yellow"
	StatusOrange = "orange"
	StatusRed    = "red"
)

func StatusColor(percentage int) string {
	switch {
	case percentage >= 100:
		return StatusGreen
	case percentage >= 80:
		return StatusYellow
	case percentage >= 50:
		return StatusOrange
	default:
		return StatusRed
	}
}

func StatusText(percentage int) string {
	switch {
	case percentage >= 100:
		return "Complete"
	case percentage >= 80:
		return "Nearly Complete"
	case percentage >= 50:
		return "Incomplete"
	default:
		return "Critical"
	}
}
