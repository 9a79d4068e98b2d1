// internal/handlers/car.go
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

type CarHandler struct {
	carService   *services.CarService
	mediaBaseURL string
}

func NewCarHandler(carService *services.CarService, cfg *config.Config) *CarHandler {
	return &CarHandler{
		carService:   carService,
		mediaBaseURL: cfg.Media.BaseURL,
	}
}

func (h *CarHandler) Create(c *gin.Context) {
	var req services.CreateCarRequest
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

	car, err := h.carService.Create(&req, userID)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	h.decorate(car)
	utils.CreatedResponse(c, car)
}

func (h *CarHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	filters := services.CarFilters{
		Brand:        c.Query("brand"),
		Transmission: c.Query("transmission"),
		FuelType:     c.Query("fuel_type"),
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

	result, err := h.carService.List(params, filters)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	if cars, ok := result.Data.([]models.Car); ok {
		for i := range cars {
			h.decorate(&cars[i])
		}
		result.Data = cars
	}

	utils.PaginatedResponse(c, *result)
}

func (h *CarHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	car, err := h.carService.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "car")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	h.decorate(car)
	utils.SuccessResponse(c, car)
}

func (h *CarHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	var req services.UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	car, err := h.carService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "car")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	h.decorate(car)
	utils.SuccessResponse(c, car)
}

func (h *CarHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	if err := h.carService.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "car")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{"message": i18n.T(lang, i18n.KeyCarDeleted)})
}

func (h *CarHandler) decorate(car *models.Car) {
	car.ImageURL = utils.AbsoluteMediaURL(h.mediaBaseURL, car.Image)
}

func currentUserID(c *gin.Context) (uuid.UUID, error) {
	idStr, ok := utils.GetUserIDFromContext(c)
	if !ok {
		return uuid.Nil, errors.New("no authenticated user")
	}
	return uuid.Parse(idStr)
}
