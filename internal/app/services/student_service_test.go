package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsu-aiml/portal/internal/app/models"
	"github.com/dsu-aiml/portal/internal/app/models/dto"
	"github.com/dsu-aiml/portal/internal/app/repositories/repotest"
	"github.com/dsu-aiml/portal/internal/pkg/apperrors"
)

func strp(s string) *string { return &s }

func patchOf(t *testing.T, body string) map[string]json.RawMessage {
	t.Helper()
	var patch map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &patch))
	return patch
}

func newStudentService(t *testing.T) (StudentService, *repotest.Store) {
	t.Helper()
	store := repotest.New()
	return NewStudentService(store.Students()), store
}

func TestCreateStudentAppliesDefaults(t *testing.T) {
	svc, _ := newStudentService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateStudent(ctx, &dto.CreateStudentRequest{RegNo: " 1ai22ai050 ", Name: "Neha"}))

	got, err := svc.GetStudent(ctx, "1AI22AI050")
	require.NoError(t, err)
	assert.Equal(t, "1AI22AI050", got.RegNo)
	assert.Equal(t, models.DefaultProgramme, got.Programme)
	assert.Equal(t, "Active", got.Status)
	assert.Zero(t, got.CGPA)
	assert.Zero(t, got.Attendance)
	assert.Nil(t, got.Email)
}

func TestCreateStudentCanonicalizesStatus(t *testing.T) {
	svc, _ := newStudentService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateStudent(ctx, &dto.CreateStudentRequest{RegNo: "1AI22AI051", Name: "A", Status: strp("inactive")}))
	got, err := svc.GetStudent(ctx, "1ai22ai051")
	require.NoError(t, err)
	assert.Equal(t, "Inactive", got.Status)

	err = svc.CreateStudent(ctx, &dto.CreateStudentRequest{RegNo: "1AI22AI052", Name: "B", Status: strp("graduated")})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateStudentRequiresRegNoAndName(t *testing.T) {
	svc, _ := newStudentService(t)

	err := svc.CreateStudent(context.Background(), &dto.CreateStudentRequest{RegNo: "   ", Name: "X"})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	msg, _ := apperrors.PublicMessage(err)
	assert.Equal(t, "reg_no and name are required.", msg)
}

func TestCreateStudentDuplicateInEitherCase(t *testing.T) {
	orders := [][2]string{{"1ai22ai060", "1AI22AI060"}, {"1AI22AI060", "1ai22ai060"}}
	for _, order := range orders {
		svc, _ := newStudentService(t)
		ctx := context.Background()

		require.NoError(t, svc.CreateStudent(ctx, &dto.CreateStudentRequest{RegNo: order[0], Name: "First"}))
		err := svc.CreateStudent(ctx, &dto.CreateStudentRequest{RegNo: order[1], Name: "Second"})
		assert.ErrorIs(t, err, apperrors.ErrRegNoExists)
	}
}

func TestGetStudent(t *testing.T) {
	svc, _ := newStudentService(t)

	_, err := svc.GetStudent(context.Background(), " ab ")
	assert.ErrorIs(t, err, apperrors.ErrInvalidRegNo)

	_, err = svc.GetStudent(context.Background(), "1ai22ai999")
	require.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	msg, ok := apperrors.PublicMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "No student found: 1AI22AI999", msg)
}

func TestGetStudentShortRegNoSkipsStorage(t *testing.T) {
	svc, store := newStudentService(t)
	store.Err = errors.New("storage must not be touched")

	_, err := svc.GetStudent(context.Background(), "AB")
	assert.ErrorIs(t, err, apperrors.ErrInvalidRegNo)

	// three characters, five bytes
	_, err = svc.GetStudent(context.Background(), "äö1")
	assert.ErrorIs(t, err, apperrors.ErrInvalidRegNo)
}

func TestUpdateStudentOnlyTouchesGivenFields(t *testing.T) {
	svc, _ := newStudentService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateStudent(ctx, &dto.CreateStudentRequest{
		RegNo: "1AI22AI070", Name: "Ravi", Year: strp("III"), Section: strp("A"), Email: strp("ravi@example.com"),
	}))
	before, err := svc.GetStudent(ctx, "1AI22AI070")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStudent(ctx, "1ai22ai070", patchOf(t, `{"cgpa": 9.2, "reg_no": "OTHER", "programme": "X"}`)))

	after, err := svc.GetStudent(ctx, "1AI22AI070")
	require.NoError(t, err)
	assert.Equal(t, 9.2, after.CGPA)

	after.CGPA = before.CGPA
	assert.Equal(t, before, after)
}

func TestUpdateStudentNullClearsNullableColumn(t *testing.T) {
	svc, _ := newStudentService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateStudent(ctx, &dto.CreateStudentRequest{RegNo: "1AI22AI071", Name: "A", Mentor: strp("Dr. X")}))
	require.NoError(t, svc.UpdateStudent(ctx, "1AI22AI071", patchOf(t, `{"mentor": null}`)))

	got, err := svc.GetStudent(ctx, "1AI22AI071")
	require.NoError(t, err)
	assert.Nil(t, got.Mentor)

	err = svc.UpdateStudent(ctx, "1AI22AI071", patchOf(t, `{"cgpa": null}`))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateStudentValidation(t *testing.T) {
	svc, _ := newStudentService(t)
	ctx := context.Background()
	require.NoError(t, svc.CreateStudent(ctx, &dto.CreateStudentRequest{RegNo: "1AI22AI072", Name: "A"}))

	for _, body := range []string{
		`{"cgpa": 11}`,
		`{"attendance": -1}`,
		`{"semester": 0}`,
		`{"status": "Expelled"}`,
		`{"email": "not-an-email"}`,
		`{"name": ""}`,
	} {
		err := svc.UpdateStudent(ctx, "1AI22AI072", patchOf(t, body))
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed, body)
	}
}

func TestUpdateStudentMissingOrEmpty(t *testing.T) {
	svc, _ := newStudentService(t)
	ctx := context.Background()

	err := svc.UpdateStudent(ctx, "NOPE00", patchOf(t, `{"name": "x"}`))
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	err = svc.UpdateStudent(ctx, "NOPE00", patchOf(t, `{"unknown": 1}`))
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	for _, body := range []string{`{"cgpa": 50}`, `{"status": "graduated"}`, `{"name": ""}`, `{"semester": "two"}`} {
		err = svc.UpdateStudent(ctx, "NOPE00", patchOf(t, body))
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound, body)
	}

	require.NoError(t, svc.CreateStudent(ctx, &dto.CreateStudentRequest{RegNo: "1AI22AI073", Name: "A"}))
	err = svc.UpdateStudent(ctx, "1AI22AI073", patchOf(t, `{}`))
	assert.ErrorIs(t, err, apperrors.ErrNoValidFields)
}

func TestDeleteStudentTwice(t *testing.T) {
	svc, _ := newStudentService(t)
	ctx := context.Background()
	require.NoError(t, svc.CreateStudent(ctx, &dto.CreateStudentRequest{RegNo: "1AI22AI080", Name: "A"}))

	require.NoError(t, svc.DeleteStudent(ctx, "1ai22ai080"))
	assert.ErrorIs(t, svc.DeleteStudent(ctx, "1AI22AI080"), apperrors.ErrStudentNotFound)
}

func TestListStudentsFilters(t *testing.T) {
	svc, _ := newStudentService(t)
	ctx := context.Background()

	for _, req := range []dto.CreateStudentRequest{
		{RegNo: "1AI22AI001", Name: "AGASH K", Year: strp("III"), Section: strp("A")},
		{RegNo: "1AI22AI002", Name: "Bala", Year: strp("III"), Section: strp("B")},
		{RegNo: "1AI23AI001", Name: "Chitra", Year: strp("II"), Section: strp("A")},
	} {
		require.NoError(t, svc.CreateStudent(ctx, &req))
	}

	got, err := svc.ListStudents(ctx, models.StudentFilter{Year: "III", Section: "a"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1AI22AI001", got[0].RegNo)

	got, err = svc.ListStudents(ctx, models.StudentFilter{Search: "AGASH"})
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = svc.ListStudents(ctx, models.StudentFilter{Search: "agash"})
	require.NoError(t, err)
	assert.Empty(t, got, "search is case-sensitive")

	got, err = svc.ListStudents(ctx, models.StudentFilter{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "1AI23AI001", got[0].RegNo, "II sorts before III")
}
