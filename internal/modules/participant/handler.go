package participant

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/eventmaster/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/participant")

	g.POST("/event/:eventId", h.create)
	g.GET("/event/:eventId", h.listByEvent)
	g.GET("/event/:eventId/registrations-per-day", h.registrationsPerDay)
}

// POST /participant/event/:eventId
func (h *Handler) create(c *gin.Context) {
	var dto CreateParticipantDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	p, err := h.svc.Create(c.Request.Context(), c.Param("eventId"), &dto)
	switch {
	case errors.Is(err, errEventNotFound):
		response.NotFoundMsg(c, err.Error())
	case errors.Is(err, errInvalidSource), errors.Is(err, errInvalidDate):
		response.UnprocessableEntity(c, err.Error())
	case err != nil:
		response.InternalError(c, err)
	default:
		response.Created(c, p)
	}
}

// GET /participant/event/:eventId
func (h *Handler) listByEvent(c *gin.Context) {
	items, err := h.svc.ListByEvent(c.Request.Context(), c.Param("eventId"))
	if errors.Is(err, errEventNotFound) {
		response.NotFoundMsg(c, err.Error())
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

// GET /participant/event/:eventId/registrations-per-day
func (h *Handler) registrationsPerDay(c *gin.Context) {
	rows, err := h.svc.RegistrationsPerDay(c.Request.Context(), c.Param("eventId"))
	if errors.Is(err, errEventNotFound) {
		response.NotFoundMsg(c, err.Error())
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, rows)
}
