// Package repotest provides in-memory stores with the same observable behavior
// as the PostgreSQL repositories, for service, controller and seed tests.
package repotest

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dsu-aiml/portal/internal/app/models"
	"github.com/dsu-aiml/portal/internal/app/repositories"
	"github.com/dsu-aiml/portal/internal/pkg/apperrors"
)

// Store holds every table in memory
type Store struct {
	mu       sync.Mutex
	students []*models.Student
	faculty  []*models.Faculty
	contacts []*models.ContactQuery
	nextID   int64
	// Err, when set, is returned by every call
	Err error
}

// New creates an empty store
func New() *Store {
	return &Store{}
}

// Students returns the StudentStore view
func (s *Store) Students() *StudentStore { return &StudentStore{s} }

// Faculty returns the FacultyStore view
func (s *Store) Faculty() *FacultyStore { return &FacultyStore{s} }

// Contacts returns the ContactStore view
func (s *Store) Contacts() *ContactStore { return &ContactStore{s} }

// Stats returns the StatsStore view
func (s *Store) Stats() *StatsStore { return &StatsStore{s} }

// ContactQueries returns a copy of every stored contact query
func (s *Store) ContactQueries() []models.ContactQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ContactQuery, 0, len(s.contacts))
	for _, q := range s.contacts {
		out = append(out, *q)
	}
	return out
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// StudentStore mirrors repositories.StudentRepository
type StudentStore struct{ s *Store }

func (r *StudentStore) find(reg string) int {
	for i, st := range r.s.students {
		if strings.ToUpper(st.RegNo) == reg {
			return i
		}
	}
	return -1
}

func (r *StudentStore) GetByRegNo(_ context.Context, reg string) (*models.Student, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	i := r.find(reg)
	if i < 0 {
		return nil, apperrors.ErrStudentNotFound
	}
	cp := *r.s.students[i]
	return &cp, nil
}

func (r *StudentStore) List(_ context.Context, f models.StudentFilter) ([]*models.StudentSummary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	var matched []*models.Student
	for _, st := range r.s.students {
		if f.Year != "" && (st.Year == nil || *st.Year != f.Year) {
			continue
		}
		if f.Section != "" && (st.Section == nil || strings.ToUpper(*st.Section) != strings.ToUpper(f.Section)) {
			continue
		}
		if f.Status != "" && strings.ToLower(st.Status) != strings.ToLower(f.Status) {
			continue
		}
		if f.Search != "" && !strings.Contains(st.Name, f.Search) && !strings.Contains(st.RegNo, f.Search) {
			continue
		}
		matched = append(matched, st)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		switch {
		case a.Year == nil && b.Year != nil:
			return true
		case a.Year != nil && b.Year == nil:
			return false
		case a.Year != nil && *a.Year != *b.Year:
			return *a.Year < *b.Year
		}
		return a.RegNo < b.RegNo
	})

	out := make([]*models.StudentSummary, 0, len(matched))
	for _, st := range matched {
		out = append(out, &models.StudentSummary{
			RegNo: st.RegNo, Name: st.Name, Year: st.Year, Semester: st.Semester,
			Section: st.Section, CGPA: st.CGPA, Attendance: st.Attendance, Status: st.Status,
		})
	}
	return out, nil
}

func (r *StudentStore) Create(_ context.Context, st *models.Student) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if r.find(strings.ToUpper(st.RegNo)) >= 0 {
		return apperrors.ErrRegNoExists
	}
	st.ID = r.s.id()
	st.CreatedAt = time.Now()
	cp := *st
	r.s.students = append(r.s.students, &cp)
	return nil
}

func (r *StudentStore) Update(_ context.Context, reg string, fields map[string]interface{}) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	fields = filter(fields, repositories.StudentUpdatableColumns)
	if len(fields) == 0 {
		return 0, apperrors.ErrNoValidFields
	}
	i := r.find(reg)
	if i < 0 {
		return 0, apperrors.ErrStudentNotFound
	}
	st := r.s.students[i]
	for col, v := range fields {
		switch col {
		case "name":
			st.Name = v.(string)
		case "year":
			st.Year = strPtr(v)
		case "semester":
			st.Semester = intPtr(v)
		case "section":
			st.Section = strPtr(v)
		case "dob":
			st.DOB = strPtr(v)
		case "email":
			st.Email = strPtr(v)
		case "phone":
			st.Phone = strPtr(v)
		case "blood_group":
			st.BloodGroup = strPtr(v)
		case "cgpa":
			st.CGPA = v.(float64)
		case "attendance":
			st.Attendance = v.(float64)
		case "mentor":
			st.Mentor = strPtr(v)
		case "status":
			st.Status = v.(string)
		}
	}
	return 1, nil
}

func (r *StudentStore) Delete(_ context.Context, reg string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	i := r.find(reg)
	if i < 0 {
		return 0, apperrors.ErrStudentNotFound
	}
	r.s.students = append(r.s.students[:i], r.s.students[i+1:]...)
	return 1, nil
}

func (r *StudentStore) Exists(_ context.Context, reg string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return false, r.s.Err
	}
	return r.find(reg) >= 0, nil
}

func (r *StudentStore) Count(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	return int64(len(r.s.students)), nil
}

// FacultyStore mirrors repositories.FacultyRepository
type FacultyStore struct{ s *Store }

func (r *FacultyStore) find(id int64) int {
	for i, f := range r.s.faculty {
		if f.ID == id {
			return i
		}
	}
	return -1
}

func (r *FacultyStore) GetByID(_ context.Context, id int64) (*models.Faculty, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	i := r.find(id)
	if i < 0 {
		return nil, apperrors.ErrFacultyNotFound
	}
	cp := *r.s.faculty[i]
	return &cp, nil
}

func (r *FacultyStore) List(_ context.Context) ([]*models.Faculty, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	out := make([]*models.Faculty, 0, len(r.s.faculty))
	for _, f := range r.s.faculty {
		cp := *f
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsHOD != out[j].IsHOD {
			return out[i].IsHOD
		}
		return out[i].Experience > out[j].Experience
	})
	return out, nil
}

func (r *FacultyStore) Create(_ context.Context, f *models.Faculty) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	f.ID = r.s.id()
	f.CreatedAt = time.Now()
	cp := *f
	r.s.faculty = append(r.s.faculty, &cp)
	return f.ID, nil
}

func (r *FacultyStore) Update(_ context.Context, id int64, fields map[string]interface{}) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	fields = filter(fields, repositories.FacultyUpdatableColumns)
	if len(fields) == 0 {
		return 0, apperrors.ErrNoValidFields
	}
	i := r.find(id)
	if i < 0 {
		return 0, apperrors.ErrFacultyNotFound
	}
	f := r.s.faculty[i]
	for col, v := range fields {
		switch col {
		case "name":
			f.Name = v.(string)
		case "designation":
			f.Designation = v.(string)
		case "qualification":
			f.Qualification = strPtr(v)
		case "experience":
			f.Experience = v.(int)
		case "email":
			f.Email = strPtr(v)
		case "phone":
			f.Phone = strPtr(v)
		case "subjects":
			f.Subjects = strPtr(v)
		case "is_hod":
			f.IsHOD = v.(bool)
		}
	}
	return 1, nil
}

func (r *FacultyStore) Delete(_ context.Context, id int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	i := r.find(id)
	if i < 0 {
		return 0, apperrors.ErrFacultyNotFound
	}
	r.s.faculty = append(r.s.faculty[:i], r.s.faculty[i+1:]...)
	return 1, nil
}

func (r *FacultyStore) Exists(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return false, r.s.Err
	}
	return r.find(id) >= 0, nil
}

func (r *FacultyStore) Count(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	return int64(len(r.s.faculty)), nil
}

// ContactStore mirrors repositories.ContactRepository
type ContactStore struct{ s *Store }

func (r *ContactStore) Create(_ context.Context, q *models.ContactQuery) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	q.ID = r.s.id()
	q.CreatedAt = time.Now()
	cp := *q
	r.s.contacts = append(r.s.contacts, &cp)
	return q.ID, nil
}

// StatsStore mirrors repositories.StatsRepository
type StatsStore struct{ s *Store }

func (r *StatsStore) Compute(_ context.Context) (*models.Stats, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	stats := &models.Stats{
		Total:   int64(len(r.s.students)),
		Faculty: int64(len(r.s.faculty)),
	}
	var cgpaSum, attSum float64
	var cgpaN int
	for _, st := range r.s.students {
		if strings.EqualFold(st.Status, "active") {
			stats.Active++
		}
		if st.CGPA > 0 {
			cgpaSum += st.CGPA
			cgpaN++
		}
		attSum += st.Attendance
	}
	if cgpaN > 0 {
		stats.AvgCGPA = round(cgpaSum/float64(cgpaN), 2)
	}
	if len(r.s.students) > 0 {
		stats.AvgAttendance = round(attSum/float64(len(r.s.students)), 1)
	}
	return stats, nil
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func filter(fields map[string]interface{}, allowed []string) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for _, col := range allowed {
		if v, ok := fields[col]; ok {
			out[col] = v
		}
	}
	return out
}

func strPtr(v interface{}) *string {
	if v == nil {
		return nil
	}
	s := v.(string)
	return &s
}

func intPtr(v interface{}) *int {
	if v == nil {
		return nil
	}
	n := v.(int)
	return &n
}
