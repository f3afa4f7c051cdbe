package handler

import (
	"errors"
	"net/http"

	"nft-ticket-ledger/internal/service"
	apperrors "nft-ticket-ledger/pkg/app_errors"
	"nft-ticket-ledger/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TicketHandler struct {
	service      service.LedgerService
	callerHeader string
}

func NewTicketHandler(service service.LedgerService, callerHeader string) *TicketHandler {
	return &TicketHandler{service: service, callerHeader: callerHeaderOrDefault(callerHeader)}
}

func (h *TicketHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("tickets/:id", h.GetByID)
		router.GET("me/tickets", h.GetMyTickets)
		router.GET("owners/:owner/audit", h.AuditOwner)
	}
}

func (h *TicketHandler) GetByID(c *gin.Context) {
	var uri idURI
	if err := BindUri(c, &uri); err != nil {
		return
	}
	ticket, err := h.service.GetTicket(c, uri.ID)
	if err != nil {
		h.handleError(c, err, "GetByID")
		return
	}
	c.JSON(http.StatusOK, ticket)
}

func (h *TicketHandler) GetMyTickets(c *gin.Context) {
	caller, err := Caller(c, h.callerHeader)
	if err != nil {
		h.handleError(c, err, "GetMyTickets")
		return
	}
	ids, err := h.service.GetMyTickets(c, caller)
	if err != nil {
		h.handleError(c, err, "GetMyTickets")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ticket_ids": ids})
}

func (h *TicketHandler) AuditOwner(c *gin.Context) {
	owner := c.Param("owner")
	if err := h.service.AuditOwnerIndex(c, owner); err != nil {
		h.handleError(c, err, "AuditOwner")
		return
	}
	c.JSON(http.StatusOK, gin.H{"owner": owner, "consistent": true})
}

func (h *TicketHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrInvalidArgument):
		log.Warn("Invalid argument")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid argument"})
	case errors.Is(err, apperrors.ErrMissingCaller):
		log.Warn("Missing caller")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing caller address"})
	case errors.Is(err, apperrors.ErrTicketNotFound):
		log.Warn("Ticket not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
	case errors.Is(err, apperrors.ErrIndexDrift):
		log.Error("Owner index drift")
		c.JSON(http.StatusConflict, gin.H{"error": "Owner index is inconsistent", "consistent": false})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
