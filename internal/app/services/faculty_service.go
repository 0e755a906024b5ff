package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dsu-aiml/portal/internal/app/models"
	"github.com/dsu-aiml/portal/internal/app/models/dto"
	"github.com/dsu-aiml/portal/internal/app/repositories"
	"github.com/dsu-aiml/portal/internal/pkg/apperrors"
	"github.com/dsu-aiml/portal/internal/pkg/logger"
	"github.com/dsu-aiml/portal/internal/pkg/validation"
)

var facultyUpdateRules = validation.Rules{
	Order: repositories.FacultyUpdatableColumns,
	Rules: map[string]*validation.Rule{
		"name":          validation.String().WithNonEmpty(),
		"designation":   validation.String().WithNonEmpty(),
		"qualification": validation.String().WithNullable(),
		"experience":    validation.Integer().WithMin(0),
		"email":         validation.String().WithNullable().WithTag("email"),
		"phone":         validation.String().WithNullable(),
		"subjects":      validation.String().WithNullable(),
		"is_hod":        validation.Bool(),
	},
}

// FacultyService defines the interface for faculty-related operations
type FacultyService interface {
	CreateFaculty(ctx context.Context, req *dto.CreateFacultyRequest) (int64, error)
	GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error)
	GetAllFaculty(ctx context.Context) ([]*models.Faculty, error)
	UpdateFaculty(ctx context.Context, id int64, patch map[string]json.RawMessage) error
	DeleteFaculty(ctx context.Context, id int64) error
}

// facultyServiceImpl implements the FacultyService interface
type facultyServiceImpl struct {
	facultyRepo FacultyStore
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(facultyRepo FacultyStore) FacultyService {
	return &facultyServiceImpl{
		facultyRepo: facultyRepo,
	}
}

// CreateFaculty applies column defaults and inserts the faculty member
func (s *facultyServiceImpl) CreateFaculty(ctx context.Context, req *dto.CreateFacultyRequest) (int64, error) {
	if strings.TrimSpace(req.Name) == "" {
		return 0, apperrors.NewValidationError("Name is required.")
	}

	faculty := &models.Faculty{
		Name:          req.Name,
		Designation:   models.DefaultDesignation,
		Qualification: req.Qualification,
		Email:         req.Email,
		Phone:         req.Phone,
		Subjects:      req.Subjects,
	}
	if req.Designation != nil && strings.TrimSpace(*req.Designation) != "" {
		faculty.Designation = *req.Designation
	}
	if req.Experience != nil {
		faculty.Experience = *req.Experience
	}
	if req.IsHOD != nil {
		faculty.IsHOD = bool(*req.IsHOD)
	}

	id, err := s.facultyRepo.Create(ctx, faculty)
	if err != nil {
		return 0, fmt.Errorf("error creating faculty: %w", err)
	}

	logger.Info().Int64("facultyID", id).Msg("Faculty created")
	return id, nil
}

// GetFacultyByID retrieves a faculty member by ID
func (s *facultyServiceImpl) GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error) {
	faculty, err := s.facultyRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrFacultyNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}
	return faculty, nil
}

// GetAllFaculty lists faculty with the department head first
func (s *facultyServiceImpl) GetAllFaculty(ctx context.Context) ([]*models.Faculty, error) {
	faculty, err := s.facultyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing faculty: %w", err)
	}
	return faculty, nil
}

// UpdateFaculty changes only the allow-listed fields present in patch
func (s *facultyServiceImpl) UpdateFaculty(ctx context.Context, id int64, patch map[string]json.RawMessage) error {
	fields, err := facultyUpdateRules.Apply(patch)
	if err != nil || len(fields) == 0 {
		exists, existsErr := s.facultyRepo.Exists(ctx, id)
		if existsErr != nil {
			return fmt.Errorf("error checking faculty: %w", existsErr)
		}
		if !exists {
			return apperrors.ErrFacultyNotFound
		}
		if err != nil {
			return apperrors.NewValidationError(err.Error())
		}
		return apperrors.ErrNoValidFields
	}

	if _, err := s.facultyRepo.Update(ctx, id, fields); err != nil {
		if apperrors.Is(err, apperrors.ErrFacultyNotFound, apperrors.ErrNoValidFields) {
			return err
		}
		return fmt.Errorf("error updating faculty: %w", err)
	}
	return nil
}

// DeleteFaculty hard-deletes a faculty member
func (s *facultyServiceImpl) DeleteFaculty(ctx context.Context, id int64) error {
	if _, err := s.facultyRepo.Delete(ctx, id); err != nil {
		if apperrors.Is(err, apperrors.ErrFacultyNotFound) {
			return err
		}
		return fmt.Errorf("error deleting faculty: %w", err)
	}
	return nil
}
