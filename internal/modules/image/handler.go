package image

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/eventmaster/core/internal/pkg/response"
)

// maxUploadSize bounds a single uploaded file.
const maxUploadSize = 10 << 20

// allowedExtensions whitelists uploadable image types.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/images")

	g.GET("/:id", h.get)

	a := g.Group("", authMW)
	a.POST("", h.upload)
}

// POST /images (multipart, field "file")
func (h *Handler) upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	if fileHeader.Size > maxUploadSize {
		response.BadRequest(c, "file too large")
		return
	}
	if !allowedExtensions[strings.ToLower(filepath.Ext(fileHeader.Filename))] {
		response.BadRequest(c, "unsupported file type")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadSize))
	if err != nil {
		response.InternalError(c, err)
		return
	}

	img, err := h.svc.Upload(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, img)
}

// GET /images/:id
func (h *Handler) get(c *gin.Context) {
	img, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if img == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, img)
}
