// internal/handlers/featured.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/autovista/dealership-backend/internal/config"
	"github.com/autovista/dealership-backend/internal/i18n"
	"github.com/autovista/dealership-backend/internal/models"
	"github.com/autovista/dealership-backend/internal/services"
	"github.com/autovista/dealership-backend/internal/utils"
)

type FeaturedHandler struct {
	featuredService *services.FeaturedService
	mediaBaseURL    string
}

func NewFeaturedHandler(featuredService *services.FeaturedService, cfg *config.Config) *FeaturedHandler {
	return &FeaturedHandler{
		featuredService: featuredService,
		mediaBaseURL:    cfg.Media.BaseURL,
	}
}

func (h *FeaturedHandler) Create(c *gin.Context) {
	var req services.FeaturedItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "")
		return
	}

	item, err := h.featuredService.Create(&req, userID)
	if err != nil {
		h.writeLedgerError(c, err, i18n.KeyFeaturedDuplicate, i18n.KeyFeaturedBadRef)
		return
	}

	h.decorate(item)
	utils.CreatedResponse(c, item)
}

func (h *FeaturedHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	result, err := h.featuredService.List(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	if items, ok := result.Data.([]models.FeaturedItem); ok {
		for i := range items {
			h.decorate(&items[i])
		}
		result.Data = items
	}

	utils.PaginatedResponse(c, *result)
}

func (h *FeaturedHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	item, err := h.featuredService.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "featured")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	h.decorate(item)
	utils.SuccessResponse(c, item)
}

func (h *FeaturedHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	var req services.FeaturedItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	item, err := h.featuredService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "featured")
			return
		}
		h.writeLedgerError(c, err, i18n.KeyFeaturedDuplicate, i18n.KeyFeaturedBadRef)
		return
	}

	h.decorate(item)
	utils.SuccessResponse(c, item)
}

func (h *FeaturedHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	if err := h.featuredService.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "featured")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{"message": i18n.T(lang, i18n.KeyFeaturedDeleted)})
}

// AvailableCars lists cars still eligible for curation.
func (h *FeaturedHandler) AvailableCars(c *gin.Context) {
	cars, err := h.featuredService.AvailableCars()
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	for i := range cars {
		cars[i].ImageURL = utils.AbsoluteMediaURL(h.mediaBaseURL, cars[i].Image)
	}
	utils.SuccessResponse(c, cars)
}

func (h *FeaturedHandler) AvailableMotorcycles(c *gin.Context) {
	motos, err := h.featuredService.AvailableMotorcycles()
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	for i := range motos {
		motos[i].ImageURL = utils.AbsoluteMediaURL(h.mediaBaseURL, motos[i].Image)
	}
	utils.SuccessResponse(c, motos)
}

func (h *FeaturedHandler) decorate(item *models.FeaturedItem) {
	item.ImageURL = utils.AbsoluteMediaURL(h.mediaBaseURL, item.Image)
}

func (h *FeaturedHandler) writeLedgerError(c *gin.Context, err error, duplicateKey, badRefKey string) {
	lang := utils.GetLangFromContext(c)
	switch {
	case errors.Is(err, services.ErrDuplicateAssociation):
		utils.ConflictResponse(c, i18n.T(lang, duplicateKey))
	case errors.Is(err, services.ErrInvalidReference):
		utils.BadRequestResponse(c, i18n.T(lang, badRefKey), nil)
	default:
		utils.InternalErrorResponse(c, "")
	}
}
