package dto

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required,email"`
	Type    *string `json:"type"`
	Message string  `json:"message" binding:"required"`
}
