package event

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eventmaster/core/internal/middleware"
	"github.com/eventmaster/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/events")

	g.GET("", h.list)
	g.GET("/:id", h.get)

	a := g.Group("", authMW)
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.DELETE("/:id", h.delete)
}

// GET /events?page=&limit=&sortBy=&sortOrder=
func (h *Handler) list(c *gin.Context) {
	q := ListQuery{
		Page:      parseIntOr(c.Query("page"), 1),
		Limit:     parseIntOr(c.Query("limit"), defaultLimit),
		SortBy:    c.DefaultQuery("sortBy", "eventDate"),
		SortOrder: c.DefaultQuery("sortOrder", "ASC"),
	}

	items, total, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, listResponse{Events: items, TotalCount: total})
}

// GET /events/:id
func (h *Handler) get(c *gin.Context) {
	ev, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if ev == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, ev)
}

// POST /events
func (h *Handler) create(c *gin.Context) {
	var dto CreateEventDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	user := middleware.CurrentUser(c)
	ev, err := h.svc.Create(c.Request.Context(), &dto, user)
	if errors.Is(err, errImagesNotFound) {
		response.NotFoundMsg(c, err.Error())
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, ev)
}

// PUT /events/:id
func (h *Handler) update(c *gin.Context) {
	var dto UpdateEventDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	ev, err := h.svc.Update(c.Request.Context(), c.Param("id"), &dto, middleware.CurrentUser(c))
	if errors.Is(err, errEventNotFound) {
		response.NotFound(c)
		return
	}
	if errors.Is(err, errNotOwner) {
		response.ForbiddenMsg(c, err.Error())
		return
	}
	if errors.Is(err, errImagesNotFound) {
		response.NotFoundMsg(c, err.Error())
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, ev)
}

// DELETE /events/:id
func (h *Handler) delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"), middleware.CurrentUser(c))
	if errors.Is(err, errEventNotFound) {
		response.NotFound(c)
		return
	}
	if errors.Is(err, errNotOwner) {
		response.ForbiddenMsg(c, err.Error())
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

func parseIntOr(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
