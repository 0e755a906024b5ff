package models

import "time"

// Faculty represents a member of the department's teaching staff
type Faculty struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Designation   string    `json:"designation" db:"designation"`
	Qualification *string   `json:"qualification" db:"qualification"`
	Experience    int       `json:"experience" db:"experience"`
	Email         *string   `json:"email" db:"email"`
	Phone         *string   `json:"phone" db:"phone"`
	Subjects      *string   `json:"subjects" db:"subjects"`
	IsHOD         bool      `json:"is_hod" db:"is_hod"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
