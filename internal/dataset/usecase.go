package dataset

// ReportRepository records completed analysis runs for later inspection.
type ReportRepository interface {
	Append(kind string, input string, result any)
	Close()
}
