package dto

import "github.com/dsu-aiml/portal/internal/app/models"

// Every response body is an envelope with a top-level success flag.

// MessageResponse is the envelope for writes and for every failure
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewMessageResponse creates a successful message envelope
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Success: true, Message: message}
}

// NewErrorResponse creates a failure envelope
func NewErrorResponse(message string) MessageResponse {
	return MessageResponse{Success: false, Message: message}
}

// StudentResponse wraps a single student lookup
type StudentResponse struct {
	Success bool            `json:"success"`
	Student *models.Student `json:"student"`
}

// StudentListResponse wraps a filtered student listing
type StudentListResponse struct {
	Success  bool                     `json:"success"`
	Count    int                      `json:"count"`
	Students []*models.StudentSummary `json:"students"`
}

// FacultyResponse wraps a single faculty lookup
type FacultyResponse struct {
	Success bool            `json:"success"`
	Faculty *models.Faculty `json:"faculty"`
}

// FacultyListResponse wraps the faculty listing
type FacultyListResponse struct {
	Success bool              `json:"success"`
	Count   int               `json:"count"`
	Faculty []*models.Faculty `json:"faculty"`
}

// StatsResponse wraps the department statistics
type StatsResponse struct {
	Success bool          `json:"success"`
	Stats   *models.Stats `json:"stats"`
}

// HealthResponse is returned by the liveness endpoint
type HealthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}
