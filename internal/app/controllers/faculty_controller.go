package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dsu-aiml/portal/internal/app/models/dto"
	"github.com/dsu-aiml/portal/internal/app/services"
	"github.com/dsu-aiml/portal/internal/middleware"
	"github.com/dsu-aiml/portal/internal/pkg/apperrors"
)

// FacultyController handles faculty-related operations
type FacultyController struct {
	facultyService services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService) *FacultyController {
	return &FacultyController{
		facultyService: facultyService,
	}
}

func facultyID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidFacultyID)
		return 0, false
	}
	return id, true
}

// CreateFaculty handles faculty creation
// @Summary Create a new faculty member
// @Tags faculty
// @Accept json
// @Produce json
// @Param request body dto.CreateFacultyRequest true "Faculty information"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.MessageResponse "Invalid request data"
// @Router /faculty [post]
func (c *FacultyController) CreateFaculty(ctx *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err, "Name is required.")
		return
	}

	if _, err := c.facultyService.CreateFaculty(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Faculty added."))
}

// GetFacultyByID retrieves a faculty member by ID
// @Summary Get faculty details
// @Tags faculty
// @Produce json
// @Param id path int true "Faculty ID" Format(int64)
// @Success 200 {object} dto.FacultyResponse
// @Failure 400 {object} dto.MessageResponse "Invalid faculty ID format"
// @Failure 404 {object} dto.MessageResponse "Faculty not found"
// @Router /faculty/{id} [get]
func (c *FacultyController) GetFacultyByID(ctx *gin.Context) {
	id, ok := facultyID(ctx)
	if !ok {
		return
	}

	faculty, err := c.facultyService.GetFacultyByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FacultyResponse{Success: true, Faculty: faculty})
}

// GetAllFaculty retrieves all faculty
// @Summary List faculty, department head first
// @Tags faculty
// @Produce json
// @Success 200 {object} dto.FacultyListResponse
// @Router /faculty [get]
func (c *FacultyController) GetAllFaculty(ctx *gin.Context) {
	faculty, err := c.facultyService.GetAllFaculty(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FacultyListResponse{
		Success: true,
		Count:   len(faculty),
		Faculty: faculty,
	})
}

// UpdateFaculty applies a partial update
// @Summary Update a faculty member
// @Tags faculty
// @Accept json
// @Produce json
// @Param id path int true "Faculty ID" Format(int64)
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Router /faculty/{id} [put]
func (c *FacultyController) UpdateFaculty(ctx *gin.Context) {
	id, ok := facultyID(ctx)
	if !ok {
		return
	}

	var patch map[string]json.RawMessage
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		middleware.HandleBindError(ctx, err, middleware.InvalidBodyMessage)
		return
	}

	if err := c.facultyService.UpdateFaculty(ctx, id, patch); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Faculty updated."))
}

// DeleteFaculty deletes a faculty member
// @Summary Delete a faculty member
// @Tags faculty
// @Param id path int true "Faculty ID" Format(int64)
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Router /faculty/{id} [delete]
func (c *FacultyController) DeleteFaculty(ctx *gin.Context) {
	id, ok := facultyID(ctx)
	if !ok {
		return
	}

	if err := c.facultyService.DeleteFaculty(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Faculty deleted."))
}
