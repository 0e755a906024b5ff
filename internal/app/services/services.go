package services

import (
	"context"

	"github.com/dsu-aiml/portal/internal/app/models"
	"github.com/dsu-aiml/portal/internal/app/repositories"
	"github.com/dsu-aiml/portal/internal/pkg/events"
)

// StudentStore is the storage contract StudentService depends on.
// *repositories.StudentRepository satisfies it.
type StudentStore interface {
	GetByRegNo(ctx context.Context, reg string) (*models.Student, error)
	List(ctx context.Context, filter models.StudentFilter) ([]*models.StudentSummary, error)
	Create(ctx context.Context, s *models.Student) error
	Update(ctx context.Context, reg string, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, reg string) (int64, error)
	Exists(ctx context.Context, reg string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// FacultyStore is the storage contract FacultyService depends on.
type FacultyStore interface {
	GetByID(ctx context.Context, id int64) (*models.Faculty, error)
	List(ctx context.Context) ([]*models.Faculty, error)
	Create(ctx context.Context, f *models.Faculty) (int64, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// ContactStore persists contact queries.
type ContactStore interface {
	Create(ctx context.Context, q *models.ContactQuery) (int64, error)
}

// StatsStore computes aggregates.
type StatsStore interface {
	Compute(ctx context.Context) (*models.Stats, error)
}

// Services holds every service the API layer needs
type Services struct {
	StudentService StudentService
	FacultyService FacultyService
	ContactService ContactService
	StatsService   StatsService
}

// NewServices wires the services over the given repositories. publisher may be nil.
func NewServices(repos *repositories.Repositories, publisher events.Publisher) *Services {
	return &Services{
		StudentService: NewStudentService(repos.StudentRepository),
		FacultyService: NewFacultyService(repos.FacultyRepository),
		ContactService: NewContactService(repos.ContactRepository, publisher),
		StatsService:   NewStatsService(repos.StatsRepository),
	}
}
