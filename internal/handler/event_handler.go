package handler

import (
	"errors"
	"net/http"

	"nft-ticket-ledger/internal/model"
	"nft-ticket-ledger/internal/service"
	apperrors "nft-ticket-ledger/pkg/app_errors"
	"nft-ticket-ledger/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EventHandler struct {
	service      service.LedgerService
	callerHeader string
}

func NewEventHandler(service service.LedgerService, callerHeader string) *EventHandler {
	return &EventHandler{service: service, callerHeader: callerHeaderOrDefault(callerHeader)}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("hello/:name", h.Hello)
		router.GET("events", h.List)
		router.GET("events/:id", h.GetByID)
		router.POST("events", h.Create)
		router.POST("events/:id/tickets", h.BookTicket)
	}
}

// CreateEventRequest 建立活動請求
type CreateEventRequest struct {
	Name     string `json:"name" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Capacity int64  `json:"capacity" binding:"required,min=1"`
}

func (h *EventHandler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": h.service.Hello(c.Param("name"))})
}

func (h *EventHandler) List(c *gin.Context) {
	events, err := h.service.ListEvents(c)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetByID(c *gin.Context) {
	var uri idURI
	if err := BindUri(c, &uri); err != nil {
		return
	}
	event, err := h.service.GetEvent(c, uri.ID)
	if err != nil {
		h.handleError(c, err, "GetByID")
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	created, err := h.service.CreateEvent(c, model.CreateEventParams{
		Name:     req.Name,
		Date:     req.Date,
		Capacity: req.Capacity,
	})
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EventHandler) BookTicket(c *gin.Context) {
	var uri idURI
	if err := BindUri(c, &uri); err != nil {
		return
	}
	caller, err := Caller(c, h.callerHeader)
	if err != nil {
		h.handleError(c, err, "BookTicket")
		return
	}
	ticket, err := h.service.BookTicket(c, uri.ID, caller)
	if err != nil {
		h.handleError(c, err, "BookTicket")
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

func (h *EventHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrInvalidArgument):
		log.Warn("Invalid argument")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid argument"})
	case errors.Is(err, apperrors.ErrMissingCaller):
		log.Warn("Missing caller")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing caller address"})
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, apperrors.ErrCapacityExceeded):
		log.Warn("Capacity exceeded")
		c.JSON(http.StatusConflict, gin.H{"error": "Event is sold out"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
