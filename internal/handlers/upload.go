// internal/handlers/upload.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/autovista/dealership-backend/internal/config"
	"github.com/autovista/dealership-backend/internal/i18n"
	"github.com/autovista/dealership-backend/internal/services"
	"github.com/autovista/dealership-backend/internal/utils"
)

type UploadHandler struct {
	storageService *services.StorageService
	mediaBaseURL   string
}

func NewUploadHandler(storageService *services.StorageService, cfg *config.Config) *UploadHandler {
	return &UploadHandler{
		storageService: storageService,
		mediaBaseURL:   cfg.Media.BaseURL,
	}
}

// Upload stores a vehicle image and returns its relative path plus the
// public URL. Clients then set the path on the vehicle record.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, "Missing file field", nil)
		return
	}

	folder := c.DefaultPostForm("folder", "cars")
	if folder != "cars" && folder != "motorcycles" {
		utils.BadRequestResponse(c, "Folder must be cars or motorcycles", nil)
		return
	}

	path, err := h.storageService.UploadImage(fileHeader, folder)
	if err != nil {
		lang := utils.GetLangFromContext(c)
		if errors.Is(err, services.ErrFileTooLarge) || errors.Is(err, services.ErrInvalidFileType) {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
			return
		}
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed))
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyFileUploadSuccess),
		"path":    path,
		"url":     utils.AbsoluteMediaURL(h.mediaBaseURL, path),
	})
}
