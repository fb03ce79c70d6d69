package service

import (
	"context"
	"fmt"

	apperrors "taskdeck/internal/errors"
)

// ContactSender delivers a single contact message.
type ContactSender interface {
	SendContact(fromEmail, message string) error
}

// ContactService forwards contact form submissions to the site owner.
type ContactService interface {
	Send(ctx context.Context, fromEmail, message string) error
}

type contactService struct {
	mailer ContactSender
}

// NewContactService creates a new contact service.
func NewContactService(mailer ContactSender) ContactService {
	return &contactService{mailer: mailer}
}

// Send dispatches the message inline on the request. The mailer bounds the
// call with its own timeout; a transport failure surfaces as a domain error.
func (s *contactService) Send(ctx context.Context, fromEmail, message string) error {
	if err := s.mailer.SendContact(fromEmail, message); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrMailDelivery, err)
	}
	return nil
}
