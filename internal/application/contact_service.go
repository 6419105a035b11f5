package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/fangearhq/fangear-api/internal/domain/entity"
	repo "github.com/fangearhq/fangear-api/internal/domain/repository"
	"github.com/fangearhq/fangear-api/pkg/mailer"
)

// ContactPublisher pushes a notification job onto the queue consumed by
// the contact worker.
type ContactPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

type ContactService struct {
	Repo      repo.ContactRepository
	Publisher ContactPublisher // optional; nil disables notifications
	Logger    *logrus.Logger
}

func NewContactService(r repo.ContactRepository, pub ContactPublisher, logger *logrus.Logger) *ContactService {
	return &ContactService{Repo: r, Publisher: pub, Logger: logger}
}

// Submit stores the message, then publishes a notification job. The
// publish is best-effort: the submission already succeeded once the row
// is in the store, so a queue failure is only logged.
func (s *ContactService) Submit(ctx context.Context, c *entity.Contact) error {
	if err := s.Repo.Create(ctx, c); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("contact insert failed")
		}
		return err
	}

	if s.Publisher != nil {
		job := mailer.ContactJob{Name: c.Name, Email: c.Email, Comment: c.Comment}
		if err := s.Publisher.PublishJSON(ctx, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("contact notification publish failed")
		}
	}
	return nil
}
