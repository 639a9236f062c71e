package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cklob23/discipleship-journey-app/internal/hub"
	"github.com/cklob23/discipleship-journey-app/internal/models"
	"github.com/cklob23/discipleship-journey-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Package-level collaborators, wired once from main. Mirrors how the
// database package exposes its shared handle.
var (
	directory  *service.ProfileDirectory
	registry   *service.ConnectionRegistry
	ledger     *service.CovenantLedger
	messageLog *service.MessageLog
	events     *hub.Hub
)

// Setup injects the service layer the handlers dispatch to.
func Setup(d *service.ProfileDirectory, r *service.ConnectionRegistry, l *service.CovenantLedger, m *service.MessageLog, h *hub.Hub) {
	directory = d
	registry = r
	ledger = l
	messageLog = m
	events = h
}

// requireProfile resolves the authenticated user's profile or writes the
// error response. Endpoints beyond onboarding all need a profile.
func requireProfile(c *gin.Context) (*models.Profile, bool) {
	userID, _ := c.Get("userID")

	profile, err := directory.GetByUser(c.Request.Context(), userID.(uint))
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Profile not set up, complete onboarding first"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve profile"})
		return nil, false
	}
	return profile, true
}

// connectionContext resolves the requester's profile and the connection ID
// path parameter shared by all per-connection endpoints.
func connectionContext(c *gin.Context) (*models.Profile, uint, bool) {
	profile, ok := requireProfile(c)
	if !ok {
		return nil, 0, false
	}

	connectionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid connection ID"})
		return nil, 0, false
	}

	return profile, uint(connectionID), true
}

// respondServiceError maps business errors to status codes; anything
// unrecognized is a 500.
func respondServiceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, service.ErrNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, service.ErrSelfInvite),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrEmptyMessage):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrPermissionDenied):
		status, message = http.StatusForbidden, err.Error()
	case errors.Is(err, service.ErrRoleConflict),
		errors.Is(err, service.ErrProfileExists),
		errors.Is(err, service.ErrCovenantNotInitialized),
		errors.Is(err, service.ErrNotPending),
		errors.Is(err, service.ErrConnectionNotActive),
		errors.Is(err, service.ErrStaleWrite):
		status, message = http.StatusConflict, err.Error()
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	}

	c.JSON(status, gin.H{"error": message})
}
