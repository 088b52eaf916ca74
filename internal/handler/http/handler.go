// Package http implements the local HTTP facade of the vault-serve daemon.
// It provides middleware, route handlers, and response utilities for the
// serve API. Session-token propagation, request logging, and envelope
// serialization are all handled at this layer before requests are
// forwarded to the service layer.
package http

import (
	"github.com/ashmarin/vault-serve/internal/logger"
	"github.com/ashmarin/vault-serve/internal/service"
	"github.com/ashmarin/vault-serve/internal/session"
)

// Handler bundles the service graph, the process-wide session state, and
// the base logger for every route of the serve API.
type Handler struct {
	services *service.Services
	state    *session.SessionState

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler.
func NewHandler(services *service.Services, state *session.SessionState, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		state:    state,
		logger:   logger,
	}
}
