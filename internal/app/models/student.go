package models

import "time"

// Student defines the student model based on the 'students' table.
// ID and CreatedAt never leave the server.
type Student struct {
	ID         int64     `json:"-" db:"id"`
	RegNo      string    `json:"reg_no" db:"reg_no"`
	Name       string    `json:"name" db:"name"`
	Programme  string    `json:"programme" db:"programme"`
	Year       *string   `json:"year" db:"year"`
	Semester   *int      `json:"semester" db:"semester"`
	Section    *string   `json:"section" db:"section"`
	DOB        *string   `json:"dob" db:"dob"`
	Email      *string   `json:"email" db:"email"`
	Phone      *string   `json:"phone" db:"phone"`
	BloodGroup *string   `json:"blood_group" db:"blood_group"`
	CGPA       float64   `json:"cgpa" db:"cgpa"`
	Attendance float64   `json:"attendance" db:"attendance"`
	Mentor     *string   `json:"mentor" db:"mentor"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"-" db:"created_at"`
}

// StudentSummary is the projection returned by bulk listing. It leaves out
// contact details, date of birth, blood group and mentor.
type StudentSummary struct {
	RegNo      string  `json:"reg_no"`
	Name       string  `json:"name"`
	Year       *string `json:"year"`
	Semester   *int    `json:"semester"`
	Section    *string `json:"section"`
	CGPA       float64 `json:"cgpa"`
	Attendance float64 `json:"attendance"`
	Status     string  `json:"status"`
}

// StudentFilter holds the optional, conjunctive list filters. Empty means unset.
type StudentFilter struct {
	Year    string
	Section string
	Status  string
	Search  string
}
