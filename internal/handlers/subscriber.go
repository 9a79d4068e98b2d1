// internal/handlers/subscriber.go
package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/autovista/dealership-backend/internal/i18n"
	"github.com/autovista/dealership-backend/internal/services"
	"github.com/autovista/dealership-backend/internal/utils"
)

type SubscriberHandler struct {
	subscriberService *services.SubscriberService
}

func NewSubscriberHandler(subscriberService *services.SubscriberService) *SubscriberHandler {
	return &SubscriberHandler{subscriberService: subscriberService}
}

// Subscribe is the public newsletter signup endpoint.
func (h *SubscriberHandler) Subscribe(c *gin.Context) {
	var req services.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	sub, err := h.subscriberService.Subscribe(&req)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			lang := utils.GetLangFromContext(c)
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeySubscriberDuplicate))
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.CreatedResponse(c, gin.H{
		"message":    i18n.T(lang, i18n.KeySubscriberCreated),
		"subscriber": sub,
	})
}

func (h *SubscriberHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	result, err := h.subscriberService.List(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.PaginatedResponse(c, *result)
}

// ExportCSV streams the subscriber list as a CSV attachment.
func (h *SubscriberHandler) ExportCSV(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	filename := fmt.Sprintf("subscribers_%s.csv", time.Now().Format("2006-01-02"))

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.subscriberService.ExportCSV(c.Writer, lang); err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
}
