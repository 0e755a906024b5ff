package dto

// CreateFacultyRequest represents faculty creation data
type CreateFacultyRequest struct {
	Name          string    `json:"name" binding:"required"`
	Designation   *string   `json:"designation"`
	Qualification *string   `json:"qualification"`
	Experience    *int      `json:"experience" binding:"omitempty,gte=0,lte=2147483647"`
	Email         *string   `json:"email" binding:"omitempty,email"`
	Phone         *string   `json:"phone"`
	Subjects      *string   `json:"subjects"`
	IsHOD         *FlexBool `json:"is_hod"`
}
