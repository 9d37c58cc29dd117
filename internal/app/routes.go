package app

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventmaster/core/internal/config"
	"github.com/eventmaster/core/internal/middleware"
	"github.com/eventmaster/core/internal/models"
	"github.com/eventmaster/core/internal/modules/auth"
	"github.com/eventmaster/core/internal/modules/event"
	"github.com/eventmaster/core/internal/modules/image"
	"github.com/eventmaster/core/internal/modules/participant"
	"github.com/eventmaster/core/internal/modules/user"
	pkgredis "github.com/eventmaster/core/internal/pkg/redis"
	"github.com/eventmaster/core/internal/pkg/response"
)

func (a *App) registerRoutes(rc *pkgredis.Client) {
	r := a.router
	db := a.db
	authMW := middleware.Auth(a.sessions, a.cfg.Session.CookieName)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, gin.H{
			"ok": 0, "code": http.StatusMethodNotAllowed, "message": "method not allowed",
		})
	})

	if rc != nil {
		r.Use(middleware.RateLimit(rc.Raw()))
	}

	r.GET("/healthz", func(c *gin.Context) {
		response.OK(c, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(a.metrics.Handler()))

	staticDir := config.ResolveRuntimePath(a.cfg.Paths.Static, "public")
	r.Static("/public", staticDir)

	root := r.Group("")

	cookie := auth.CookieOptions{
		Name:   a.cfg.Session.CookieName,
		Secure: a.cfg.Session.CookieSecure,
	}
	authSvc := auth.NewService(db, a.sessions)
	auth.NewHandler(authSvc, cookie).RegisterRoutes(root, authMW)

	event.NewHandler(event.NewService(db)).RegisterRoutes(root, authMW)
	image.NewHandler(image.NewService(db, staticDir, a.logger)).RegisterRoutes(root, authMW)
	participant.NewHandler(participant.NewService(db)).RegisterRoutes(root, authMW)
	user.NewHandler(user.NewService(db)).RegisterRoutes(root, authMW)

	// Cron administration is admin only.
	admin := r.Group("/admin", authMW, middleware.RequireRole(models.RoleAdmin))
	admin.GET("/cron", func(c *gin.Context) {
		response.OK(c, a.sched.List())
	})
	admin.POST("/cron/:name/run", func(c *gin.Context) {
		if err := a.sched.Run(c.Request.Context(), c.Param("name")); err != nil {
			response.NotFoundMsg(c, err.Error())
			return
		}
		response.OK(c, gin.H{"triggered": c.Param("name")})
	})
	admin.GET("/cron/:name", func(c *gin.Context) {
		res, err := a.sched.GetTask(c.Param("name"))
		if err != nil {
			response.NotFoundMsg(c, err.Error())
			return
		}
		response.OK(c, res)
	})
}
