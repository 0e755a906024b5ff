package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dsu-aiml/portal/internal/app/models"
	"github.com/dsu-aiml/portal/internal/app/models/dto"
	"github.com/dsu-aiml/portal/internal/pkg/apperrors"
	"github.com/dsu-aiml/portal/internal/pkg/events"
	"github.com/dsu-aiml/portal/internal/pkg/logger"
)

// ContactService defines the interface for the contact form
type ContactService interface {
	SubmitQuery(ctx context.Context, req *dto.ContactRequest) error
}

// contactServiceImpl implements the ContactService interface
type contactServiceImpl struct {
	contactRepo ContactStore
	publisher   events.Publisher
}

// NewContactService creates a new contact service. publisher may be nil.
func NewContactService(contactRepo ContactStore, publisher events.Publisher) ContactService {
	return &contactServiceImpl{
		contactRepo: contactRepo,
		publisher:   publisher,
	}
}

// SubmitQuery stores the query, then announces it. A failed announcement is only logged.
func (s *contactServiceImpl) SubmitQuery(ctx context.Context, req *dto.ContactRequest) error {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Message) == "" {
		return apperrors.NewValidationError("Name, email and message required.")
	}

	query := &models.ContactQuery{
		Name:    req.Name,
		Email:   req.Email,
		Type:    req.Type,
		Message: req.Message,
	}

	id, err := s.contactRepo.Create(ctx, query)
	if err != nil {
		return fmt.Errorf("error storing contact query: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, events.ContactSubmitted, strconv.FormatInt(id, 10), query); err != nil {
			logger.Warn().Err(err).Int64("queryID", id).Msg("Failed to publish contact query event")
		}
	}
	return nil
}
