package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/cklob23/discipleship-journey-app/internal/metrics"
	"github.com/cklob23/discipleship-journey-app/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// MessageInput defines the structure for sending a chat message.
type MessageInput struct {
	Content string `json:"content" binding:"required" example:"Hello"`
}

// MessageResponse defines the structure for one chat message.
type MessageResponse struct {
	ID           uint      `json:"id" example:"1"`
	ConnectionID uint      `json:"connection_id" example:"1"`
	SenderID     uint      `json:"sender_id" example:"2"`
	Content      string    `json:"content" example:"Hello"`
	CreatedAt    time.Time `json:"created_at"`
}

func newMessageResponse(m *models.Message) MessageResponse {
	return MessageResponse{
		ID:           m.ID,
		ConnectionID: m.ConnectionID,
		SenderID:     m.SenderID,
		Content:      m.Content,
		CreatedAt:    m.CreatedAt,
	}
}

// endregion

// SendMessage godoc
// @Summary      Send a chat message
// @Description  Appends a message to an active connection's durable history, broadcasts it on the realtime channel, and emails the counterpart best-effort.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Connection ID"
// @Param        input body      MessageInput true  "Message"
// @Success      201   {object}  MessageResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse "Not a participant"
// @Failure      404   {object}  ErrorResponse "Connection not found"
// @Failure      409   {object}  ErrorResponse "Connection is not active"
// @Router       /connections/{id}/messages [post]
func SendMessage(c *gin.Context) {
	profile, connectionID, ok := connectionContext(c)
	if !ok {
		return
	}

	var input MessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := messageLog.Append(c.Request.Context(), connectionID, profile, input.Content)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newMessageResponse(msg))
}

// ListMessages godoc
// @Summary      List chat history
// @Description  Returns all messages of a connection ascending by creation time. Participants only.
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Connection ID"
// @Success      200  {array}   MessageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Not a participant"
// @Failure      404  {object}  ErrorResponse "Connection not found"
// @Router       /connections/{id}/messages [get]
func ListMessages(c *gin.Context) {
	profile, connectionID, ok := connectionContext(c)
	if !ok {
		return
	}

	msgs, err := messageLog.List(c.Request.Context(), connectionID, profile)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	responses := make([]MessageResponse, 0, len(msgs))
	for i := range msgs {
		responses = append(responses, newMessageResponse(&msgs[i]))
	}

	c.JSON(http.StatusOK, responses)
}

// StreamEvents godoc
// @Summary      Subscribe to realtime events
// @Description  Opens a server-sent-events stream of chat and covenant_update events for one connection. Delivery is best-effort and at-most-once; chat durability comes from the message history.
// @Tags         messages
// @Produce      text/event-stream
// @Security     BearerAuth
// @Param        id   path  int  true  "Connection ID"
// @Success      200  {string}  string  "event stream"
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Not a participant"
// @Failure      404  {object}  ErrorResponse "Connection not found"
// @Router       /connections/{id}/events [get]
func StreamEvents(c *gin.Context) {
	profile, connectionID, ok := connectionContext(c)
	if !ok {
		return
	}

	if _, err := registry.Get(c.Request.Context(), connectionID, profile); err != nil {
		respondServiceError(c, err)
		return
	}

	sub := events.Subscribe(connectionID)
	defer events.Unsubscribe(sub)

	metrics.EventSubscribers.Inc()
	defer metrics.EventSubscribers.Dec()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case data, open := <-sub.C:
			if !open {
				return false
			}
			c.SSEvent("message", string(data))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
