package handler

import (
	"io"

	propertyapp "github.com/edificio/backend/internal/application/property"
	"github.com/edificio/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// DocumentHandler handles per-resident tax document endpoints
type DocumentHandler struct {
	BaseHandler
	documentService *propertyapp.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(documentService *propertyapp.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// Upload stores a tax document for a resident. The request is multipart
// with a "document" file part.
func (h *DocumentHandler) Upload(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("document")
	if err != nil {
		h.BadRequest(c, "Document file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Could not read document file")
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		h.BadRequest(c, "Could not read document file")
		return
	}

	doc, err := h.documentService.Upload(c.Request.Context(), propertyapp.UploadTaxDocumentRequest{
		ResidentID:  id,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, doc)
}

// List returns the resident's stored document filenames
func (h *DocumentHandler) List(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if !h.requireSelfOrAdmin(c, id) {
		return
	}

	docs, err := h.documentService.List(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, docs)
}

// DownloadURL returns a short-lived link to one stored document
func (h *DocumentHandler) DownloadURL(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if !h.requireSelfOrAdmin(c, id) {
		return
	}

	url, err := h.documentService.DownloadURL(c.Request.Context(), id, c.Param("filename"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, url)
}

// Delete removes one stored document
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), id, c.Param("filename")); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers tax document routes
func (h *DocumentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	documents := rg.Group("/residents/:id/documents")
	{
		documents.GET("", h.List)
		documents.GET("/:filename", h.DownloadURL)
	}

	admin := rg.Group("/residents/:id/documents", middleware.AdminOnly())
	{
		admin.POST("", h.Upload)
		admin.DELETE("/:filename", h.Delete)
	}
}
