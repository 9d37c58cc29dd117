package user

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/eventmaster/core/internal/middleware"
	"github.com/eventmaster/core/internal/models"
	"github.com/eventmaster/core/internal/pkg/pagination"
	"github.com/eventmaster/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// User management is admin only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/users", authMW, middleware.RequireRole(models.RoleAdmin))

	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.DELETE("/:id", h.delete)
}

// GET /users
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	items, pag, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	out := make([]userResponse, len(items))
	for i := range items {
		out[i] = toResponse(&items[i])
	}
	response.Paged(c, out, pag)
}

// GET /users/:id
func (h *Handler) get(c *gin.Context) {
	u, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if u == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, toResponse(u))
}

// DELETE /users/:id
func (h *Handler) delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, errUserNotFound) {
		response.NotFound(c)
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
