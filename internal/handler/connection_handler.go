package handler

import (
	"net/http"
	"strconv"

	"github.com/cklob23/discipleship-journey-app/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// ConnectionResponse defines the structure for a connection as seen by one
// of its participants.
type ConnectionResponse struct {
	ID               uint   `json:"id" example:"1"`
	LeaderID         uint   `json:"leader_id" example:"1"`
	LearnerID        uint   `json:"learner_id" example:"2"`
	Status           string `json:"status" example:"pending"`
	OtherDisplayName string `json:"other_display_name,omitempty"`
	OtherAvatarURL   string `json:"other_avatar_url,omitempty"`
	OtherRole        string `json:"other_role,omitempty"`
}

func newConnectionResponse(conn *models.Connection, counterpart *models.Profile) ConnectionResponse {
	resp := ConnectionResponse{
		ID:        conn.ID,
		LeaderID:  conn.LeaderID,
		LearnerID: conn.LearnerID,
		Status:    string(conn.Status),
	}
	if counterpart != nil {
		resp.OtherDisplayName = counterpart.DisplayName
		resp.OtherAvatarURL = counterpart.AvatarURL
		resp.OtherRole = string(counterpart.Role)
	}
	return resp
}

// endregion

// InvitePerson godoc
// @Summary      Invite a partner
// @Description  Creates a pending connection between the requester and the target profile. Leader and learner slots follow each party's role; inviting a same-role profile fails. Re-inviting an already connected pair returns the existing connection.
// @Tags         connections
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Target Profile ID"
// @Success      201  {object}  ConnectionResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Target profile not found"
// @Failure      409  {object}  ErrorResponse "Role conflict"
// @Router       /profiles/{id}/invite [post]
func InvitePerson(c *gin.Context) {
	profile, ok := requireProfile(c)
	if !ok {
		return
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile ID"})
		return
	}

	conn, err := registry.Invite(c.Request.Context(), profile, uint(targetID))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	other, err := directory.Get(c.Request.Context(), conn.CounterpartID(profile.ID))
	if err != nil {
		other = nil
	}

	c.JSON(http.StatusCreated, newConnectionResponse(conn, other))
}

// AcceptConnection godoc
// @Summary      Accept an invite
// @Description  Transitions a pending connection to active. Only the invited party may accept; accepting twice is a no-op.
// @Tags         connections
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Connection ID"
// @Success      200  {object}  ConnectionResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Not the invited party"
// @Failure      404  {object}  ErrorResponse "Connection not found"
// @Failure      409  {object}  ErrorResponse "Connection already declined"
// @Router       /connections/{id}/accept [post]
func AcceptConnection(c *gin.Context) {
	answerConnection(c, models.StatusActive)
}

// DeclineConnection godoc
// @Summary      Decline an invite
// @Description  Moves a pending connection to the terminal declined state. Only the invited party may decline.
// @Tags         connections
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Connection ID"
// @Success      200  {object}  ConnectionResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Not the invited party"
// @Failure      404  {object}  ErrorResponse "Connection not found"
// @Failure      409  {object}  ErrorResponse "Connection already active"
// @Router       /connections/{id}/decline [post]
func DeclineConnection(c *gin.Context) {
	answerConnection(c, models.StatusDeclined)
}

func answerConnection(c *gin.Context, to models.ConnectionStatus) {
	profile, ok := requireProfile(c)
	if !ok {
		return
	}

	connectionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid connection ID"})
		return
	}

	var conn *models.Connection
	if to == models.StatusActive {
		conn, err = registry.Accept(c.Request.Context(), uint(connectionID), profile)
	} else {
		conn, err = registry.Decline(c.Request.Context(), uint(connectionID), profile)
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}

	other, err := directory.Get(c.Request.Context(), conn.CounterpartID(profile.ID))
	if err != nil {
		other = nil
	}

	c.JSON(http.StatusOK, newConnectionResponse(conn, other))
}

// ListConnections godoc
// @Summary      List connections
// @Description  Fetches the requester's connections, optionally filtered by status, each embedding the counterpart profile.
// @Tags         connections
// @Produce      json
// @Security     BearerAuth
// @Param        status query    string  false  "Filter by status (pending, active, declined)"
// @Success      200  {array}   ConnectionResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /connections [get]
func ListConnections(c *gin.Context) {
	profile, ok := requireProfile(c)
	if !ok {
		return
	}

	status := models.ConnectionStatus(c.Query("status"))
	switch status {
	case "", models.StatusPending, models.StatusActive, models.StatusDeclined:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
		return
	}

	views, err := registry.List(c.Request.Context(), profile, status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	responses := make([]ConnectionResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, newConnectionResponse(v.Connection, v.Counterpart))
	}

	c.JSON(http.StatusOK, responses)
}
