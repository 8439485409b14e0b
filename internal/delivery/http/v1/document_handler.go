package v1

import (
	"io"
	"net/http"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	docUC domain.DocumentUsecase
	store *storage.LocalStore
}

func NewDocumentHandler(protected *gin.RouterGroup, docUC domain.DocumentUsecase, store *storage.LocalStore, uploadLimit gin.HandlerFunc) {
	handler := &DocumentHandler{docUC: docUC, store: store}

	docs := protected.Group("/documents")
	docs.Use(middleware.RequirePermissions(domain.PermDocumentsManage))
	{
		docs.POST("", uploadLimit, handler.Upload)
		docs.GET("", handler.ListMine)
		docs.GET("/:id/download", handler.Download)
		docs.DELETE("/:id", handler.Delete)
	}
}

// Upload godoc
// @Summary      Upload Document
// @Description  Upload a CV, certificate, or photo as multipart form data. Files are validated by extension, content, and MIME type.
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file    true  "The file"
// @Param        kind  formData  string  true  "Document kind: cv, certificate, photo, other"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /documents [post]
func (h *DocumentHandler) Upload(c *gin.Context) {
	kind := c.PostForm("kind")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("A file field is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	doc, err := h.docUC.Upload(c.Request.Context(), currentUserID(c), kind, fileHeader.Filename, data)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Document uploaded", doc)
}

// ListMine godoc
// @Summary      My Documents
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /documents [get]
func (h *DocumentHandler) ListMine(c *gin.Context) {
	docs, err := h.docUC.ListMine(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Documents", docs)
}

// Download godoc
// @Summary      Download Document
// @Description  Stream one of the caller's documents with its original filename.
// @Tags         documents
// @Produce      octet-stream
// @Security     BearerAuth
// @Param        id  path  int  true  "Document ID"
// @Success      200
// @Failure      404  {object}  response.Response
// @Router       /documents/{id}/download [get]
func (h *DocumentHandler) Download(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	doc, err := h.docUC.GetForDownload(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		c.Error(err)
		return
	}

	path, err := h.store.Open(doc.StoredPath)
	if err != nil {
		c.Error(apperror.NotFound("Document not found"))
		return
	}

	c.Header("Content-Type", doc.MimeType)
	c.FileAttachment(path, doc.OriginalName)
}

// Delete godoc
// @Summary      Delete Document
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Document ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /documents/{id} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.docUC.Delete(c.Request.Context(), currentUserID(c), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Document deleted", nil)
}
