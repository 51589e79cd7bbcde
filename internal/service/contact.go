package service

import (
	"context"
	"fmt"

	"github.com/pkordes/startrek-travel/internal/domain"
	"github.com/pkordes/startrek-travel/internal/repo"
)

// ContactService stores messages from the contact form.
type ContactService struct {
	repo repo.MessageRepo
}

// NewContactService constructs a ContactService backed by r.
func NewContactService(r repo.MessageRepo) *ContactService {
	return &ContactService{repo: r}
}

// Send validates and stores a contact message. Name, email and message are
// all required.
func (s *ContactService) Send(ctx context.Context, m domain.ContactMessage) (domain.ContactMessage, error) {
	var err error
	if m.Name, err = required("name", m.Name); err != nil {
		return domain.ContactMessage{}, err
	}
	if m.Email, err = validateEmail(m.Email); err != nil {
		return domain.ContactMessage{}, err
	}
	if m.Message, err = required("message", m.Message); err != nil {
		return domain.ContactMessage{}, err
	}

	out, err := s.repo.Create(ctx, m)
	if err != nil {
		return domain.ContactMessage{}, fmt.Errorf("service.ContactService.Send: %w", err)
	}
	return out, nil
}
