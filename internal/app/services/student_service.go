package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dsu-aiml/portal/internal/app/models"
	"github.com/dsu-aiml/portal/internal/app/models/dto"
	"github.com/dsu-aiml/portal/internal/app/repositories"
	"github.com/dsu-aiml/portal/internal/pkg/apperrors"
	"github.com/dsu-aiml/portal/internal/pkg/logger"
	"github.com/dsu-aiml/portal/internal/pkg/validation"
)

// minRegNoLength is the shortest registration number accepted on lookup
const minRegNoLength = 5

var studentStatuses = []string{string(models.StatusActive), string(models.StatusInactive)}

var studentUpdateRules = validation.Rules{
	Order: repositories.StudentUpdatableColumns,
	Rules: map[string]*validation.Rule{
		"name":        validation.String().WithNonEmpty(),
		"year":        validation.String().WithNullable(),
		"semester":    validation.Integer().WithNullable().WithRange(1, 12),
		"section":     validation.String().WithNullable(),
		"dob":         validation.String().WithNullable(),
		"email":       validation.String().WithNullable().WithTag("email"),
		"phone":       validation.String().WithNullable(),
		"blood_group": validation.String().WithNullable(),
		"cgpa":        validation.Number().WithRange(0, 10),
		"attendance":  validation.Number().WithRange(0, 100),
		"mentor":      validation.String().WithNullable(),
		"status":      validation.String().WithOneOf(studentStatuses...),
	},
}

// StudentService defines the interface for student-related operations
type StudentService interface {
	GetStudent(ctx context.Context, regNo string) (*models.Student, error)
	ListStudents(ctx context.Context, filter models.StudentFilter) ([]*models.StudentSummary, error)
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) error
	UpdateStudent(ctx context.Context, regNo string, patch map[string]json.RawMessage) error
	DeleteStudent(ctx context.Context, regNo string) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo StudentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentStore) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
	}
}

// NormalizeRegNo trims and upper-cases a registration number
func NormalizeRegNo(reg string) string {
	return strings.ToUpper(strings.TrimSpace(reg))
}

// canonicalStatus maps any letter case of Active/Inactive to the stored spelling
func canonicalStatus(status string) (string, bool) {
	for _, s := range studentStatuses {
		if strings.EqualFold(strings.TrimSpace(status), s) {
			return s, true
		}
	}
	return "", false
}

// GetStudent looks a student up by registration number
func (s *studentServiceImpl) GetStudent(ctx context.Context, regNo string) (*models.Student, error) {
	reg := NormalizeRegNo(regNo)
	if utf8.RuneCountInString(reg) < minRegNoLength {
		return nil, apperrors.ErrInvalidRegNo
	}

	student, err := s.studentRepo.GetByRegNo(ctx, reg)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("No student found: %s", reg))
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// ListStudents returns summaries matching every non-empty filter
func (s *studentServiceImpl) ListStudents(ctx context.Context, filter models.StudentFilter) ([]*models.StudentSummary, error) {
	students, err := s.studentRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	return students, nil
}

// CreateStudent applies column defaults and inserts the student
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) error {
	reg := NormalizeRegNo(req.RegNo)
	if reg == "" || strings.TrimSpace(req.Name) == "" {
		return apperrors.NewValidationError("reg_no and name are required.")
	}

	student := &models.Student{
		RegNo:      reg,
		Name:       req.Name,
		Programme:  models.DefaultProgramme,
		Year:       req.Year,
		Semester:   req.Semester,
		Section:    req.Section,
		DOB:        req.DOB,
		Email:      req.Email,
		Phone:      req.Phone,
		BloodGroup: req.BloodGroup,
		Mentor:     req.Mentor,
		Status:     string(models.StatusActive),
	}
	if req.Programme != nil && strings.TrimSpace(*req.Programme) != "" {
		student.Programme = *req.Programme
	}
	if req.CGPA != nil {
		student.CGPA = *req.CGPA
	}
	if req.Attendance != nil {
		student.Attendance = *req.Attendance
	}
	if req.Status != nil {
		status, ok := canonicalStatus(*req.Status)
		if !ok {
			return apperrors.NewValidationError("status must be one of: Active, Inactive.")
		}
		student.Status = status
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		if apperrors.Is(err, apperrors.ErrRegNoExists) {
			return err
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	logger.Info().Str("regNo", student.RegNo).Msg("Student created")
	return nil
}

// UpdateStudent changes only the allow-listed fields present in patch
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, regNo string, patch map[string]json.RawMessage) error {
	reg := NormalizeRegNo(regNo)

	fields, err := studentUpdateRules.Apply(patch)
	if err != nil || len(fields) == 0 {
		// an absent record wins over any problem with the payload
		exists, existsErr := s.studentRepo.Exists(ctx, reg)
		if existsErr != nil {
			return fmt.Errorf("error checking student: %w", existsErr)
		}
		if !exists {
			return apperrors.ErrStudentNotFound
		}
		if err != nil {
			return apperrors.NewValidationError(err.Error())
		}
		return apperrors.ErrNoValidFields
	}

	if _, err := s.studentRepo.Update(ctx, reg, fields); err != nil {
		if apperrors.Is(err, apperrors.ErrStudentNotFound, apperrors.ErrNoValidFields) {
			return err
		}
		return fmt.Errorf("error updating student: %w", err)
	}
	return nil
}

// DeleteStudent hard-deletes a student
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, regNo string) error {
	if _, err := s.studentRepo.Delete(ctx, NormalizeRegNo(regNo)); err != nil {
		if apperrors.Is(err, apperrors.ErrStudentNotFound) {
			return err
		}
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}
