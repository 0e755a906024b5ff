package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsu-aiml/portal/internal/app/controllers"
	"github.com/dsu-aiml/portal/internal/app/repositories/repotest"
	"github.com/dsu-aiml/portal/internal/app/routes"
	"github.com/dsu-aiml/portal/internal/app/services"
)

type apiTest struct {
	t      *testing.T
	router *gin.Engine
	store  *repotest.Store
}

func newAPITest(t *testing.T) *apiTest {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repotest.New()
	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<h1>AIML</h1>"), 0o644))

	router := routes.NewEngine()
	routes.SetupRouter(router, routes.Controllers{
		Student: controllers.NewStudentController(services.NewStudentService(store.Students())),
		Faculty: controllers.NewFacultyController(services.NewFacultyService(store.Faculty())),
		Contact: controllers.NewContactController(services.NewContactService(store.Contacts(), nil)),
		Stats:   controllers.NewStatsController(services.NewStatsService(store.Stats())),
	}, staticDir)

	return &apiTest{t: t, router: router, store: store}
}

func (a *apiTest) do(method, path, body string) (int, map[string]any) {
	a.t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var out map[string]any
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w.Code, out
}

func TestStudentLifecycle(t *testing.T) {
	api := newAPITest(t)

	payload := `{"reg_no":"1ai22ai001","name":"Agash R","year":"III","semester":5,"section":"A",` +
		`"dob":"2004-02-11","email":"agash@example.com","phone":"9876543210","blood_group":"O+",` +
		`"cgpa":8.7,"attendance":91.5,"mentor":"Dr. Kavya"}`
	code, body := api.do(http.MethodPost, "/api/students", payload)
	require.Equal(t, http.StatusCreated, code, body)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Student added successfully.", body["message"])

	code, body = api.do(http.MethodGet, "/api/student/1AI22AI001", "")
	require.Equal(t, http.StatusOK, code)
	student := body["student"].(map[string]any)
	assert.Equal(t, "1AI22AI001", student["reg_no"])
	assert.Equal(t, "Agash R", student["name"])
	assert.Equal(t, "III", student["year"])
	assert.Equal(t, float64(5), student["semester"])
	assert.Equal(t, "O+", student["blood_group"])
	assert.Equal(t, 8.7, student["cgpa"])
	assert.Equal(t, 91.5, student["attendance"])
	assert.Equal(t, "Dr. Kavya", student["mentor"])
	assert.Equal(t, "Active", student["status"])
	assert.NotContains(t, student, "id")
	assert.NotContains(t, student, "created_at")

	code, body = api.do(http.MethodPut, "/api/students/1ai22ai001", `{"cgpa":9.1}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Student updated.", body["message"])

	_, body = api.do(http.MethodGet, "/api/student/1AI22AI001", "")
	updated := body["student"].(map[string]any)
	assert.Equal(t, 9.1, updated["cgpa"])
	updated["cgpa"] = student["cgpa"]
	assert.Equal(t, student, updated)

	code, _ = api.do(http.MethodDelete, "/api/students/1AI22AI001", "")
	assert.Equal(t, http.StatusOK, code)
	code, body = api.do(http.MethodDelete, "/api/students/1AI22AI001", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Student not found.", body["message"])
}

func TestStudentDuplicateRegNo(t *testing.T) {
	for _, order := range [][2]string{{"1ai22ai009", "1AI22AI009"}, {"1AI22AI009", "1ai22ai009"}} {
		api := newAPITest(t)

		code, _ := api.do(http.MethodPost, "/api/students", `{"reg_no":"`+order[0]+`","name":"A"}`)
		assert.Equal(t, http.StatusCreated, code)
		code, body := api.do(http.MethodPost, "/api/students", `{"reg_no":"`+order[1]+`","name":"B"}`)
		assert.Equal(t, http.StatusConflict, code)
		assert.Equal(t, "Registration number already exists.", body["message"])
	}
}

func TestStudentValidationErrors(t *testing.T) {
	api := newAPITest(t)

	code, body := api.do(http.MethodGet, "/api/student/AB", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid registration number.", body["message"])

	code, body = api.do(http.MethodGet, "/api/student/1AI22AI404", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "No student found: 1AI22AI404", body["message"])

	code, body = api.do(http.MethodPost, "/api/students", `{"name":"No Reg"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "reg_no and name are required.", body["message"])

	code, body = api.do(http.MethodPost, "/api/students", `{"reg_no":"1AI22AI002","name":"X","cgpa":12}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "cgpa must be at most 10.", body["message"])

	code, _ = api.do(http.MethodPost, "/api/students", `{not json`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestStudentUpdateNotFoundRegardlessOfPayload(t *testing.T) {
	api := newAPITest(t)

	for _, payload := range []string{
		`{"name":"x"}`, `{}`, `{"unknown":1}`, `{"cgpa":5}`,
		`{"cgpa":50}`, `{"status":"x"}`, `{"name":""}`, `{"semester":1e30}`,
	} {
		code, body := api.do(http.MethodPut, "/api/students/NOPE12", payload)
		assert.Equal(t, http.StatusNotFound, code, payload)
		assert.Equal(t, "Student not found.", body["message"])
	}

	api.do(http.MethodPost, "/api/students", `{"reg_no":"1AI22AI003","name":"A"}`)
	code, body := api.do(http.MethodPut, "/api/students/1AI22AI003", `{"reg_no":"NEW"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "No valid fields.", body["message"])

	code, body = api.do(http.MethodPut, "/api/students/1AI22AI003", `{"cgpa":50}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "cgpa must be between 0 and 10.", body["message"])
}

func TestFacultyUpdateNotFoundRegardlessOfPayload(t *testing.T) {
	api := newAPITest(t)

	for _, payload := range []string{`{"name":"x"}`, `{}`, `{"experience":-1}`, `{"is_hod":"maybe"}`, `{"experience":1e30}`} {
		code, body := api.do(http.MethodPut, "/api/faculty/999", payload)
		assert.Equal(t, http.StatusNotFound, code, payload)
		assert.Equal(t, "Faculty not found.", body["message"])
	}

	code, _ := api.do(http.MethodPost, "/api/faculty", `{"name":"Dr. Rao"}`)
	require.Equal(t, http.StatusCreated, code)
	_, body := api.do(http.MethodGet, "/api/faculty", "")
	id := int(body["faculty"].([]any)[0].(map[string]any)["id"].(float64))

	code, body = api.do(http.MethodPut, "/api/faculty/"+strconv.Itoa(id), `{"experience":-1}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "experience must be at least 0.", body["message"])
}

func TestListStudentsFilters(t *testing.T) {
	api := newAPITest(t)
	for _, p := range []string{
		`{"reg_no":"1AI22AI010","name":"AGASH M","year":"III","section":"A"}`,
		`{"reg_no":"1AI22AI011","name":"Deepa","year":"III","section":"B"}`,
		`{"reg_no":"1AI23AI010","name":"Farhan","year":"II","section":"A","status":"Inactive"}`,
	} {
		code, _ := api.do(http.MethodPost, "/api/students", p)
		require.Equal(t, http.StatusCreated, code)
	}

	code, body := api.do(http.MethodGet, "/api/students?year=III&section=a", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["count"])
	list := body["students"].([]any)
	first := list[0].(map[string]any)
	assert.Equal(t, "1AI22AI010", first["reg_no"])
	assert.NotContains(t, first, "email")
	assert.NotContains(t, first, "mentor")

	_, body = api.do(http.MethodGet, "/api/students?search=AGASH", "")
	assert.Equal(t, float64(1), body["count"])

	_, body = api.do(http.MethodGet, "/api/students?status=inactive", "")
	assert.Equal(t, float64(1), body["count"])

	_, body = api.do(http.MethodGet, "/api/students?search=zzz", "")
	assert.Equal(t, float64(0), body["count"])
	assert.Equal(t, []any{}, body["students"])
}

func TestFacultyEndpoints(t *testing.T) {
	api := newAPITest(t)

	code, body := api.do(http.MethodPost, "/api/faculty", `{"designation":"Professor"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Name is required.", body["message"])

	code, body = api.do(http.MethodPost, "/api/faculty", `{"name":"Dr. Big","experience":3000000000}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "experience must be at most 2147483647.", body["message"])

	code, body = api.do(http.MethodPost, "/api/faculty", `{"name":"Dr. Lakshmi","experience":18,"is_hod":1}`)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Faculty added.", body["message"])
	api.do(http.MethodPost, "/api/faculty", `{"name":"Ms. Anu","experience":25}`)

	code, body = api.do(http.MethodGet, "/api/faculty", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(2), body["count"])
	head := body["faculty"].([]any)[0].(map[string]any)
	assert.Equal(t, "Dr. Lakshmi", head["name"])
	assert.Equal(t, true, head["is_hod"])
	id := int(head["id"].(float64))

	for _, bad := range []string{"abc", "0", "-4", "1.5"} {
		code, body = api.do(http.MethodGet, "/api/faculty/"+bad, "")
		assert.Equal(t, http.StatusBadRequest, code, bad)
		assert.Equal(t, "Invalid faculty ID.", body["message"])
	}

	code, _ = api.do(http.MethodPut, "/api/faculty/"+strconv.Itoa(id), `{"subjects":"ML, DL"}`)
	assert.Equal(t, http.StatusOK, code)
	_, body = api.do(http.MethodGet, "/api/faculty/"+strconv.Itoa(id), "")
	assert.Equal(t, "ML, DL", body["faculty"].(map[string]any)["subjects"])

	code, _ = api.do(http.MethodPut, "/api/faculty/999", `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = api.do(http.MethodDelete, "/api/faculty/"+strconv.Itoa(id), "")
	assert.Equal(t, http.StatusOK, code)
	code, body = api.do(http.MethodDelete, "/api/faculty/"+strconv.Itoa(id), "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Faculty not found.", body["message"])
}

func TestStatsEndpoint(t *testing.T) {
	api := newAPITest(t)
	for _, p := range []string{
		`{"reg_no":"1AI22AI020","name":"A","cgpa":0,"attendance":70}`,
		`{"reg_no":"1AI22AI021","name":"B","attendance":80}`,
		`{"reg_no":"1AI22AI022","name":"C","cgpa":8.0,"attendance":90}`,
		`{"reg_no":"1AI22AI023","name":"D","cgpa":9.0,"attendance":100,"status":"Inactive"}`,
	} {
		api.do(http.MethodPost, "/api/students", p)
	}
	api.do(http.MethodPost, "/api/faculty", `{"name":"F"}`)

	code, body := api.do(http.MethodGet, "/api/stats", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{
		"total":         float64(4),
		"active":        float64(3),
		"avgCgpa":       8.5,
		"avgAttendance": 85.0,
		"faculty":       float64(1),
	}, body["stats"])
}

func TestContactEndpoint(t *testing.T) {
	api := newAPITest(t)

	code, body := api.do(http.MethodPost, "/api/contact", `{"name":"Parent","email":"p@example.com","message":"Hello"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Query received.", body["message"])
	assert.Len(t, api.store.ContactQueries(), 1)

	code, body = api.do(http.MethodPost, "/api/contact", `{"name":"Parent","message":"Hello"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Name, email and message required.", body["message"])
}

func TestUnmatchedRoutes(t *testing.T) {
	api := newAPITest(t)

	code, body := api.do(http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, map[string]any{"success": false, "message": "Route not found."}, body)

	code, _ = api.do(http.MethodPatch, "/api/students/1AI22AI001", `{}`)
	assert.Equal(t, http.StatusNotFound, code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "AIML")

	req = httptest.NewRequest(http.MethodGet, "/../../etc/passwd", nil)
	w = httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTrailingSlashIsServedInPlace(t *testing.T) {
	api := newAPITest(t)
	api.do(http.MethodPost, "/api/students/", `{"reg_no":"1AI22AI090","name":"Slash"}`)

	code, body := api.do(http.MethodGet, "/api/students/", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["count"])

	code, body = api.do(http.MethodGet, "/api/student/1AI22AI090/", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Slash", body["student"].(map[string]any)["name"])

	code, body = api.do(http.MethodGet, "/api/nowhere/", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Route not found.", body["message"])
}

func TestHealth(t *testing.T) {
	api := newAPITest(t)
	code, body := api.do(http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
}
