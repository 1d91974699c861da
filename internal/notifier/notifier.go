package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/mailersend/mailersend-go"

	"ticketbari/internal/broker"
)

const queueName = "moderation_emails"

// Notifier emails vendors about moderation decisions on their listings. It
// consumes moderation events from the broker; delivery is best-effort.
type Notifier struct {
	client    *mailersend.Mailersend
	fromName  string
	fromEmail string
}

func New(apiKey, fromName, fromEmail string) *Notifier {
	return &Notifier{
		client:    mailersend.NewMailersend(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// Run binds the notification queue and consumes moderation events in a
// background goroutine.
func (n *Notifier) Run(b *broker.Broker) error {
	if err := b.DeclareAndBindQueue(queueName, "ticket.*"); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	messages, err := b.Consume(queueName)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	go func() {
		for msg := range messages {
			var event broker.ModerationMessage
			if err := json.Unmarshal(msg.Body, &event); err != nil {
				log.Printf("notifier: bad message: %v", err)
				continue
			}

			if err := n.sendModerationEmail(event); err != nil {
				log.Printf("notifier: send failed for %s: %v", event.VendorEmail, err)
				continue
			}
			log.Printf("notifier: emailed %s about ticket %d", event.VendorEmail, event.TicketID)
		}
	}()

	return nil
}

func (n *Notifier) sendModerationEmail(event broker.ModerationMessage) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	subject := fmt.Sprintf("Your listing %q was %s", event.Title, event.Status)
	text := fmt.Sprintf("Hello,\n\nYour ticket listing %q (#%d) is now %s.\n\nTicketBari",
		event.Title, event.TicketID, event.Status)

	message := n.client.Email.NewMessage()
	message.SetFrom(mailersend.From{Name: n.fromName, Email: n.fromEmail})
	message.SetRecipients([]mailersend.Recipient{{Email: event.VendorEmail}})
	message.SetSubject(subject)
	message.SetText(text)

	if _, err := n.client.Email.Send(ctx, message); err != nil {
		return err
	}
	return nil
}
