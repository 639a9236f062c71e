package handler

import (
	"net/http"

	"github.com/cklob23/discipleship-journey-app/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// CovenantInput defines the structure for replacing covenant content.
type CovenantInput struct {
	Content string `json:"content" binding:"required" example:"We commit to weekly meetings and honest conversation."`
}

// CovenantResponse defines the structure for a covenant, including the
// predicates derived from the requester's role.
type CovenantResponse struct {
	ID                 uint   `json:"id" example:"1"`
	ConnectionID       uint   `json:"connection_id" example:"1"`
	Content            string `json:"content"`
	LeaderSigned       bool   `json:"leader_signed"`
	LearnerSigned      bool   `json:"learner_signed"`
	FullySigned        bool   `json:"fully_signed"`
	RequesterSigned    bool   `json:"requester_signed"`
	CounterpartySigned bool   `json:"counterparty_signed"`
	Version            int    `json:"version" example:"1"`
}

func newCovenantResponse(cov *models.Covenant, requesterRole models.Role) CovenantResponse {
	return CovenantResponse{
		ID:                 cov.ID,
		ConnectionID:       cov.ConnectionID,
		Content:            cov.Content,
		LeaderSigned:       cov.LeaderSigned,
		LearnerSigned:      cov.LearnerSigned,
		FullySigned:        cov.FullySigned(),
		RequesterSigned:    cov.SignedBy(requesterRole),
		CounterpartySigned: cov.SignedBy(requesterRole.Counterpart()),
		Version:            cov.Version,
	}
}

// endregion

// GetCovenant godoc
// @Summary      Get the connection's covenant
// @Description  Returns the covenant, creating it with default content on the leader's first visit. A learner arriving before creation gets a conflict and should wait for the realtime notification.
// @Tags         covenants
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Connection ID"
// @Success      200  {object}  CovenantResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Not a participant"
// @Failure      404  {object}  ErrorResponse "Connection not found"
// @Failure      409  {object}  ErrorResponse "Covenant not yet created by the leader"
// @Router       /connections/{id}/covenant [get]
func GetCovenant(c *gin.Context) {
	profile, connectionID, ok := connectionContext(c)
	if !ok {
		return
	}

	cov, err := ledger.GetOrCreate(c.Request.Context(), connectionID, profile)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newCovenantResponse(cov, profile.Role))
}

// UpdateCovenant godoc
// @Summary      Edit covenant content (leader only)
// @Description  Replaces the covenant text and clears both signatures; both parties must re-consent to the new terms.
// @Tags         covenants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int           true  "Connection ID"
// @Param        input body      CovenantInput true  "New content"
// @Success      200   {object}  CovenantResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse "Only the leader can edit"
// @Failure      404   {object}  ErrorResponse "Connection not found"
// @Failure      409   {object}  ErrorResponse "Concurrent edit, retry"
// @Router       /connections/{id}/covenant [put]
func UpdateCovenant(c *gin.Context) {
	profile, connectionID, ok := connectionContext(c)
	if !ok {
		return
	}

	var input CovenantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cov, err := ledger.UpdateContent(c.Request.Context(), connectionID, input.Content, profile)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newCovenantResponse(cov, profile.Role))
}

// SignCovenant godoc
// @Summary      Sign the covenant
// @Description  Sets the signature flag matching the requester's role. Signing twice is a no-op.
// @Tags         covenants
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Connection ID"
// @Success      200  {object}  CovenantResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Not a participant"
// @Failure      404  {object}  ErrorResponse "Connection not found"
// @Failure      409  {object}  ErrorResponse "Covenant not yet created, or concurrent edit"
// @Router       /connections/{id}/covenant/sign [post]
func SignCovenant(c *gin.Context) {
	profile, connectionID, ok := connectionContext(c)
	if !ok {
		return
	}

	cov, err := ledger.Sign(c.Request.Context(), connectionID, profile)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newCovenantResponse(cov, profile.Role))
}
