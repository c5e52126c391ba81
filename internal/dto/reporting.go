package dto

// ReportParams carries the optional inclusive cutoff date of a report.
type ReportParams struct {
	To string `form:"to"`
}
