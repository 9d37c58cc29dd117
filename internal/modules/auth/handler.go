package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eventmaster/core/internal/middleware"
	"github.com/eventmaster/core/internal/pkg/response"
)

// CookieOptions describes how the session cookie is written.
type CookieOptions struct {
	Name   string
	Secure bool
}

type Handler struct {
	svc    *Service
	cookie CookieOptions
}

func NewHandler(svc *Service, cookie CookieOptions) *Handler {
	return &Handler{svc: svc, cookie: cookie}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/login", h.login)
	rg.POST("/register", h.register)

	a := rg.Group("", authMW)
	a.POST("/logout", h.logout)
	a.GET("/me", h.me)
}

// POST /login
func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	sess, user, err := h.svc.Login(c.Request.Context(), &dto, c.ClientIP())
	if errors.Is(err, errInvalidCredentials) {
		response.Unauthorized(c)
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}

	h.setCookie(c, sess.Token, sess.ExpiresAt)
	response.OK(c, toUserResponse(user))
}

// POST /logout
func (h *Handler) logout(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if err := h.svc.Logout(c.Request.Context(), sess.Token); err != nil {
		response.InternalError(c, err)
		return
	}
	h.clearCookie(c)
	response.NoContent(c)
}

// POST /register
func (h *Handler) register(c *gin.Context) {
	var dto RegisterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.svc.Register(c.Request.Context(), &dto)
	if errors.Is(err, errDuplicateEmail) {
		response.Conflict(c, err.Error())
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, toUserResponse(user))
}

// GET /me
func (h *Handler) me(c *gin.Context) {
	response.OK(c, toUserResponse(middleware.CurrentUser(c)))
}

func (h *Handler) setCookie(c *gin.Context, token string, expires time.Time) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *Handler) clearCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}
