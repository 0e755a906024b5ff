package routes

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dsu-aiml/portal/internal/app/controllers"
	"github.com/dsu-aiml/portal/internal/middleware"
)

// Controllers groups every controller the router mounts
type Controllers struct {
	Student *controllers.StudentController
	Faculty *controllers.FacultyController
	Contact *controllers.ContactController
	Stats   *controllers.StatsController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrls Controllers, staticDir string) {
	api := router.Group("/api")

	api.GET("/health", ctrls.Stats.Health)

	// Single lookup keeps the singular path
	api.GET("/student/:regNo", ctrls.Student.GetStudent)

	students := api.Group("/students")
	{
		students.GET("", ctrls.Student.ListStudents)
		students.POST("", ctrls.Student.CreateStudent)
		students.PUT("/:regNo", ctrls.Student.UpdateStudent)
		students.DELETE("/:regNo", ctrls.Student.DeleteStudent)
	}

	faculty := api.Group("/faculty")
	{
		faculty.GET("", ctrls.Faculty.GetAllFaculty)
		faculty.GET("/:id", ctrls.Faculty.GetFacultyByID)
		faculty.POST("", ctrls.Faculty.CreateFaculty)
		faculty.PUT("/:id", ctrls.Faculty.UpdateFaculty)
		faculty.DELETE("/:id", ctrls.Faculty.DeleteFaculty)
	}

	api.GET("/stats", ctrls.Stats.GetStats)
	api.POST("/contact", ctrls.Contact.SubmitQuery)

	router.NoRoute(trailingSlash(router), middleware.StaticFiles(staticDir), middleware.NotFound())
}

// trailingSlash re-dispatches "/api/students/" as "/api/students" in place of
// gin's redirect, so clients always get a JSON answer.
func trailingSlash(router *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := c.Request.URL.Path
		if !strings.HasPrefix(p, "/api/") || !strings.HasSuffix(p, "/") {
			return
		}
		c.Request.URL.Path = strings.TrimRight(p, "/")
		router.HandleContext(c)
		c.Abort()
	}
}

// NewEngine builds a gin engine with the standard middleware chain
func NewEngine() *gin.Engine {
	router := gin.New()
	router.RedirectTrailingSlash = false
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())
	return router
}
