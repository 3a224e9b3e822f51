package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"printflow/internal/service"
)

// FileHandler handles dossier file endpoints.
type FileHandler struct {
	fileService service.FileService
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(fileService service.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// Upload handles POST /api/v1/dossiers/:id/files
func (h *FileHandler) Upload(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	dossier, ok := boundDossier(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "missing file field")
		return
	}
	defer file.Close()

	meta, err := h.fileService.Upload(c.Request.Context(), service.FileUploadInput{
		Dossier: dossier,
		User:    user,
		File:    file,
		Header:  header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, meta)
}

// List handles GET /api/v1/dossiers/:id/files
func (h *FileHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	dossier, ok := boundDossier(c)
	if !ok {
		return
	}

	offset, limit := pagination(c)
	files, total, err := h.fileService.List(c.Request.Context(), user, dossier, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, files, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Download handles GET /api/v1/dossiers/:id/files/:fileId/download
func (h *FileHandler) Download(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	dossier, ok := boundDossier(c)
	if !ok {
		return
	}

	fileID, err := uuid.Parse(c.Param("fileId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid file id")
		return
	}

	url, err := h.fileService.GetDownloadURL(c.Request.Context(), user, dossier, fileID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"download_url": url})
}

// Delete handles DELETE /api/v1/dossiers/:id/files/:fileId
func (h *FileHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	dossier, ok := boundDossier(c)
	if !ok {
		return
	}

	fileID, err := uuid.Parse(c.Param("fileId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid file id")
		return
	}

	if err := h.fileService.Delete(c.Request.Context(), user, dossier, fileID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
