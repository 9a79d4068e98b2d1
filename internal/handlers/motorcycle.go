// internal/handlers/motorcycle.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/autovista/dealership-backend/internal/config"
	"github.com/autovista/dealership-backend/internal/i18n"
	"github.com/autovista/dealership-backend/internal/models"
	"github.com/autovista/dealership-backend/internal/services"
	"github.com/autovista/dealership-backend/internal/utils"
)

type MotorcycleHandler struct {
	motorcycleService *services.MotorcycleService
	mediaBaseURL      string
}

func NewMotorcycleHandler(motorcycleService *services.MotorcycleService, cfg *config.Config) *MotorcycleHandler {
	return &MotorcycleHandler{
		motorcycleService: motorcycleService,
		mediaBaseURL:      cfg.Media.BaseURL,
	}
}

func (h *MotorcycleHandler) Create(c *gin.Context) {
	var req services.CreateMotorcycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "")
		return
	}

	moto, err := h.motorcycleService.Create(&req, userID)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	h.decorate(moto)
	utils.CreatedResponse(c, moto)
}

func (h *MotorcycleHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	filters := services.MotorcycleFilters{
		Brand:    c.Query("brand"),
		Category: c.Query("category"),
	}
	if v, err := strconv.Atoi(c.Query("year_min")); err == nil {
		filters.YearMin = v
	}
	if v, err := strconv.Atoi(c.Query("year_max")); err == nil {
		filters.YearMax = v
	}
	if v := c.Query("is_sold"); v != "" {
		sold := v == "true"
		filters.IsSold = &sold
	}

	result, err := h.motorcycleService.List(params, filters)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	if motos, ok := result.Data.([]models.Motorcycle); ok {
		for i := range motos {
			h.decorate(&motos[i])
		}
		result.Data = motos
	}

	utils.PaginatedResponse(c, *result)
}

func (h *MotorcycleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	moto, err := h.motorcycleService.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "motorcycle")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	h.decorate(moto)
	utils.SuccessResponse(c, moto)
}

func (h *MotorcycleHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	var req services.UpdateMotorcycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	moto, err := h.motorcycleService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "motorcycle")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	h.decorate(moto)
	utils.SuccessResponse(c, moto)
}

func (h *MotorcycleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	if err := h.motorcycleService.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "motorcycle")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{"message": i18n.T(lang, i18n.KeyMotorcycleDeleted)})
}

func (h *MotorcycleHandler) decorate(moto *models.Motorcycle) {
	moto.ImageURL = utils.AbsoluteMediaURL(h.mediaBaseURL, moto.Image)
}
