package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cklob23/discipleship-journey-app/internal/hub"
	"github.com/cklob23/discipleship-journey-app/internal/metrics"
	"github.com/cklob23/discipleship-journey-app/internal/models"
	"github.com/cklob23/discipleship-journey-app/internal/notify"
	"github.com/cklob23/discipleship-journey-app/internal/store"

	"github.com/rs/zerolog/log"
)

// MessageLog is the durable chat history of a connection. Appends persist a
// single shared row both participants can read, broadcast a transient chat
// event, and fire a best-effort email to the counterpart.
type MessageLog struct {
	messages store.MessageStore
	profiles store.ProfileStore
	registry *ConnectionRegistry
	events   *hub.Hub
	mailer   notify.Mailer
}

// NewMessageLog creates a message log over the given collaborators.
func NewMessageLog(messages store.MessageStore, profiles store.ProfileStore, registry *ConnectionRegistry, events *hub.Hub, mailer notify.Mailer) *MessageLog {
	return &MessageLog{
		messages: messages,
		profiles: profiles,
		registry: registry,
		events:   events,
		mailer:   mailer,
	}
}

// Append writes one message to an active connection the sender participates
// in. The durable write happens first; realtime delivery and the email
// notification are best-effort extras on top of it.
func (m *MessageLog) Append(ctx context.Context, connectionID uint, sender *models.Profile, content string) (*models.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}

	conn, err := m.registry.Get(ctx, connectionID, sender)
	if err != nil {
		return nil, err
	}
	if conn.Status != models.StatusActive {
		return nil, ErrConnectionNotActive
	}

	msg := &models.Message{
		ConnectionID: conn.ID,
		SenderID:     sender.ID,
		Content:      content,
	}
	if err := m.messages.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("append message: %w", err)
	}
	metrics.MessagesTotal.Inc()

	m.events.Publish(conn.ID, hub.Event{
		Type: hub.EventChat,
		Payload: map[string]interface{}{
			"message": map[string]interface{}{
				"id":            msg.ID,
				"connection_id": msg.ConnectionID,
				"sender_id":     msg.SenderID,
				"content":       msg.Content,
				"created_at":    msg.CreatedAt,
			},
		},
		OriginProfileID: sender.ID,
		Timestamp:       time.Now().UTC(),
	})

	go m.notifyCounterpart(conn, sender, content)

	return msg, nil
}

// List returns the full history of a connection for one of its
// participants, ascending by creation time.
func (m *MessageLog) List(ctx context.Context, connectionID uint, requester *models.Profile) ([]models.Message, error) {
	if _, err := m.registry.Get(ctx, connectionID, requester); err != nil {
		return nil, err
	}

	msgs, err := m.messages.ListByConnection(ctx, connectionID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	if msgs == nil {
		msgs = []models.Message{}
	}
	return msgs, nil
}

// notifyCounterpart emails the other participant about a new message.
// Failures are logged and never reach the sender.
func (m *MessageLog) notifyCounterpart(conn *models.Connection, sender *models.Profile, content string) {
	other, err := m.profiles.GetByID(context.Background(), conn.CounterpartID(sender.ID))
	if err != nil || other.Email == "" {
		return
	}

	subject := fmt.Sprintf("New message from %s", sender.DisplayName)
	body := fmt.Sprintf("Hi %s, you have a new message: %q", other.DisplayName, content)
	if err := m.mailer.Send(other.Email, subject, body); err != nil {
		log.Warn().Err(err).Uint("connection_id", conn.ID).Msg("email notification failed")
	}
}
