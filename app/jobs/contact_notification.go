// Package jobs holds background jobs processed by the queue workers.
package jobs

import (
	"context"
	"fmt"

	"github.com/isipark/siteapi/app/repositories"
	"github.com/isipark/siteapi/config"
	"github.com/isipark/siteapi/pkg/database"
	"github.com/isipark/siteapi/pkg/mail"
	"github.com/isipark/siteapi/pkg/queue"
)

func init() {
	queue.Register("jobs.ContactNotificationJob", func() queue.Job {
		return &ContactNotificationJob{}
	})
}

// ContactNotificationJob emails the office inbox about a new contact
// message. Only the id crosses the queue; the job reloads the row so it
// always mails current data.
type ContactNotificationJob struct {
	MessageID uint `json:"message_id"`
}

func (j ContactNotificationJob) Handle() error {
	inbox := config.ContactInbox()
	if inbox == "" {
		return nil // notifications disabled
	}

	repo := repositories.NewContactRepository(database.DB)
	msg, err := repo.FindByID(context.Background(), j.MessageID)
	if err != nil {
		return fmt.Errorf("contact notification: load message %d: %w", j.MessageID, err)
	}

	subject := fmt.Sprintf("Yeni iletişim mesajı: %s", msg.Subject)
	if msg.Urgency == "urgent" {
		subject = "[ACİL] " + subject
	}

	body := fmt.Sprintf(
		"Gönderen: %s <%s>\nTelefon: %s\n\n%s\n\nIP: %s\nTarayıcı: %s\n",
		msg.Name, msg.Email, msg.Phone, msg.Message, msg.SourceIP, msg.UserAgent,
	)

	return mail.New().
		To(inbox).
		Subject(subject).
		Body(body).
		Send()
}
