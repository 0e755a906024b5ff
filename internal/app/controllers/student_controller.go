package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dsu-aiml/portal/internal/app/models"
	"github.com/dsu-aiml/portal/internal/app/models/dto"
	"github.com/dsu-aiml/portal/internal/app/services"
	"github.com/dsu-aiml/portal/internal/middleware"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// GetStudent looks up one student
// @Summary Get a student by registration number
// @Tags students
// @Produce json
// @Param regNo path string true "Registration number (case-insensitive)"
// @Success 200 {object} dto.StudentResponse
// @Failure 400 {object} dto.MessageResponse "Registration number shorter than 5 characters"
// @Failure 404 {object} dto.MessageResponse "No student found"
// @Router /student/{regNo} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.GetStudent(ctx, ctx.Param("regNo"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentResponse{Success: true, Student: student})
}

// ListStudents returns the filtered student projection
// @Summary List students
// @Tags students
// @Produce json
// @Param year query string false "Exact year, e.g. III"
// @Param section query string false "Section, case-insensitive"
// @Param status query string false "Active or Inactive, case-insensitive"
// @Param search query string false "Substring of name or registration number"
// @Success 200 {object} dto.StudentListResponse
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	var query dto.ListStudentsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.HandleBindError(ctx, err, middleware.InvalidBodyMessage)
		return
	}

	students, err := c.studentService.ListStudents(ctx, models.StudentFilter{
		Year:    query.Year,
		Section: query.Section,
		Status:  query.Status,
		Search:  query.Search,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentListResponse{
		Success:  true,
		Count:    len(students),
		Students: students,
	})
}

// CreateStudent handles student creation
// @Summary Create a student
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.MessageResponse
// @Failure 409 {object} dto.MessageResponse "Registration number already exists"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err, "reg_no and name are required.")
		return
	}

	if err := c.studentService.CreateStudent(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Student added successfully."))
}

// UpdateStudent applies a partial update
// @Summary Update a student
// @Description Only allow-listed fields change; unknown keys are ignored.
// @Tags students
// @Accept json
// @Produce json
// @Param regNo path string true "Registration number"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Router /students/{regNo} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var patch map[string]json.RawMessage
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		middleware.HandleBindError(ctx, err, middleware.InvalidBodyMessage)
		return
	}

	if err := c.studentService.UpdateStudent(ctx, ctx.Param("regNo"), patch); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Student updated."))
}

// DeleteStudent removes a student
// @Summary Delete a student
// @Tags students
// @Produce json
// @Param regNo path string true "Registration number"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Router /students/{regNo} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.DeleteStudent(ctx, ctx.Param("regNo")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Student deleted."))
}
