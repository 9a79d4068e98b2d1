// internal/handlers/discount.go
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

type DiscountHandler struct {
	discountService *services.DiscountService
	mediaBaseURL    string
}

func NewDiscountHandler(discountService *services.DiscountService, cfg *config.Config) *DiscountHandler {
	return &DiscountHandler{
		discountService: discountService,
		mediaBaseURL:    cfg.Media.BaseURL,
	}
}

func (h *DiscountHandler) Create(c *gin.Context) {
	var req services.DiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "")
		return
	}

	discount, err := h.discountService.Create(&req, userID)
	if err != nil {
		h.writeLedgerError(c, err)
		return
	}

	h.decorate(discount)
	utils.CreatedResponse(c, discount)
}

func (h *DiscountHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	activeOnly := c.Query("active") == "true"

	result, err := h.discountService.List(params, activeOnly)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	if discounts, ok := result.Data.([]models.Discount); ok {
		for i := range discounts {
			h.decorate(&discounts[i])
		}
		result.Data = discounts
	}

	utils.PaginatedResponse(c, *result)
}

func (h *DiscountHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	discount, err := h.discountService.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "discount")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	h.decorate(discount)
	utils.SuccessResponse(c, discount)
}

func (h *DiscountHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	var req services.DiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	discount, err := h.discountService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "discount")
			return
		}
		h.writeLedgerError(c, err)
		return
	}

	h.decorate(discount)
	utils.SuccessResponse(c, discount)
}

func (h *DiscountHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	if err := h.discountService.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "discount")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{"message": i18n.T(lang, i18n.KeyDiscountDeleted)})
}

// AvailableCars lists cars without an active promotion.
func (h *DiscountHandler) AvailableCars(c *gin.Context) {
	cars, err := h.discountService.AvailableCars()
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	for i := range cars {
		cars[i].ImageURL = utils.AbsoluteMediaURL(h.mediaBaseURL, cars[i].Image)
	}
	utils.SuccessResponse(c, cars)
}

func (h *DiscountHandler) AvailableMotorcycles(c *gin.Context) {
	motos, err := h.discountService.AvailableMotorcycles()
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	for i := range motos {
		motos[i].ImageURL = utils.AbsoluteMediaURL(h.mediaBaseURL, motos[i].Image)
	}
	utils.SuccessResponse(c, motos)
}

func (h *DiscountHandler) decorate(discount *models.Discount) {
	discount.ImageURL = utils.AbsoluteMediaURL(h.mediaBaseURL, discount.Image)
	discount.NewPrice = discount.ComputeNewPrice()
}

func (h *DiscountHandler) writeLedgerError(c *gin.Context, err error) {
	lang := utils.GetLangFromContext(c)
	switch {
	case errors.Is(err, services.ErrDuplicateAssociation):
		utils.ConflictResponse(c, i18n.T(lang, i18n.KeyDiscountDuplicate))
	case errors.Is(err, services.ErrInvalidReference):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyDiscountBadRef), nil)
	default:
		utils.InternalErrorResponse(c, "")
	}
}
