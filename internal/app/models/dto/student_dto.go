package dto

// CreateStudentRequest represents student creation data
type CreateStudentRequest struct {
	RegNo      string   `json:"reg_no" binding:"required"`
	Name       string   `json:"name" binding:"required"`
	Programme  *string  `json:"programme"`
	Year       *string  `json:"year"`
	Semester   *int     `json:"semester" binding:"omitempty,gte=1,lte=12"`
	Section    *string  `json:"section"`
	DOB        *string  `json:"dob"`
	Email      *string  `json:"email" binding:"omitempty,email"`
	Phone      *string  `json:"phone"`
	BloodGroup *string  `json:"blood_group"`
	CGPA       *float64 `json:"cgpa" binding:"omitempty,gte=0,lte=10"`
	Attendance *float64 `json:"attendance" binding:"omitempty,gte=0,lte=100"`
	Mentor     *string  `json:"mentor"`
	Status     *string  `json:"status"`
}

// ListStudentsQuery binds the optional list filters from the query string
type ListStudentsQuery struct {
	Year    string `form:"year"`
	Section string `form:"section"`
	Status  string `form:"status"`
	Search  string `form:"search"`
}
