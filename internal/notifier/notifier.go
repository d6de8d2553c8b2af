package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/uwm-cs361-dev/course-staffing/backend/internal/config"
	"github.com/uwm-cs361-dev/course-staffing/backend/internal/domain"
)

// Notifier delivers a notification to one account. Delivery is
// fire-and-forget from the command core's perspective; the core only counts
// whether handing the message off succeeded.
type Notifier interface {
	Notify(account *domain.Account, subject, content string) error
}

// AMQP publishes notifications to the queue the mail worker consumes.
type AMQP struct {
	cfg     *config.Config
	channel *amqp.Channel
}

const QueueName = "notification_queue"

func NewAMQP(cfg *config.Config, channel *amqp.Channel) *AMQP {
	return &AMQP{
		cfg:     cfg,
		channel: channel,
	}
}

// DeclareQueue ensures the notification queue exists; both the publisher and
// the mail worker call it at startup.
func DeclareQueue(channel *amqp.Channel) error {
	_, err := channel.QueueDeclare(
		QueueName,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	return err
}

func (a *AMQP) Notify(account *domain.Account, subject, content string) error {
	notification := domain.Notification{
		ID:      uuid.NewString(),
		To:      account.Email,
		Subject: subject,
		Content: content,
	}

	body, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(a.cfg.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	return a.channel.PublishWithContext(
		ctx,
		"",
		QueueName,
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

// Recorder remembers every notification instead of delivering it. Tests use
// it to assert the all-or-nothing dispatch rule.
type Recorder struct {
	Sent []domain.Notification
}

func (r *Recorder) Notify(account *domain.Account, subject, content string) error {
	r.Sent = append(r.Sent, domain.Notification{
		To:      account.Email,
		Subject: subject,
		Content: content,
	})
	return nil
}

// Discard logs and drops notifications; the CLI's -memory mode uses it.
type Discard struct{}

func (Discard) Notify(account *domain.Account, subject, content string) error {
	slog.Info("notification discarded", "to", account.Email, "subject", subject)
	return nil
}
