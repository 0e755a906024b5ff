package models

// Stats aggregates department-wide counters
type Stats struct {
	Total         int64   `json:"total"`
	Active        int64   `json:"active"`
	AvgCGPA       float64 `json:"avgCgpa"`
	AvgAttendance float64 `json:"avgAttendance"`
	Faculty       int64   `json:"faculty"`
}
