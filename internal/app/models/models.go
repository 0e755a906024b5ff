package models

// StudentStatus is the enrolment status of a student
type StudentStatus string

const (
	StatusActive   StudentStatus = "Active"
	StatusInactive StudentStatus = "Inactive"
)

// Column defaults applied when a create request omits the field
const (
	DefaultProgramme   = "B.Tech Artificial Intelligence & Machine Learning"
	DefaultDesignation = "Assistant Professor"
)
