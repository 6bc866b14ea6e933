package services

import (
	"fmt"

	"quill/internal/models"
)

// Mailer sends a single message to one recipient. Satisfied by
// pkg/mailer.Client in production and by a mock in tests.
type Mailer interface {
	Send(to, subject, body string) error
}

// ContactService relays contact-form submissions to a fixed recipient.
// One synchronous attempt per submission; no queue, no retry.
type ContactService struct {
	mailer    Mailer
	recipient string
}

// NewContactService creates a new ContactService.
func NewContactService(mailer Mailer, recipient string) *ContactService {
	return &ContactService{
		mailer:    mailer,
		recipient: recipient,
	}
}

// Relay forwards a submission to the configured recipient. Transport errors
// wrap models.ErrRelayFailure so the handler can show "message not sent"
// without inspecting SMTP details.
func (s *ContactService) Relay(name, email, message string) error {
	body := fmt.Sprintf("Name: %s\nEmail: %s\nMessage: %s", name, email, message)
	if err := s.mailer.Send(s.recipient, "New Message", body); err != nil {
		return fmt.Errorf("%w: %v", models.ErrRelayFailure, err)
	}
	return nil
}
