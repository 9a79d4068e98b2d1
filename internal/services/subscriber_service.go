// internal/services/subscriber_service.go
package services

import (
	"encoding/csv"
	"errors"
	"io"
	"time"

	"gorm.io/gorm"

	"github.com/autovista/dealership-backend/internal/i18n"
	"github.com/autovista/dealership-backend/internal/models"
	"github.com/autovista/dealership-backend/internal/utils"
)

type SubscriberService struct {
	db       *gorm.DB
	notifier *NotificationService
}

func NewSubscriberService(db *gorm.DB, notifier *NotificationService) *SubscriberService {
	return &SubscriberService{db: db, notifier: notifier}
}

type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (s *SubscriberService) Subscribe(req *SubscribeRequest) (*models.Subscriber, error) {
	var existing models.Subscriber
	err := s.db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	sub := &models.Subscriber{
		Email:            req.Email,
		SubscriptionDate: time.Now(),
		IsActive:         true,
	}

	if err := s.db.Create(sub).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	if s.notifier != nil {
		go s.notifier.SendWelcome(sub)
	}

	return sub, nil
}

func (s *SubscriberService) List(params utils.PaginationParams) (*utils.PaginationResult, error) {
	var subs []models.Subscriber
	var total int64

	query := s.db.Model(&models.Subscriber{})
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	query = utils.ApplySort(query, params, []string{"created_at", "subscription_date", "email"})
	query = utils.ApplyPagination(query, params)
	if err := query.Find(&subs).Error; err != nil {
		return nil, err
	}

	result := utils.CreatePaginationResult(subs, total, params)
	return &result, nil
}

// ExportCSV streams all subscribers as CSV, localizing the status column.
func (s *SubscriberService) ExportCSV(w io.Writer, lang string) error {
	var subs []models.Subscriber
	if err := s.db.Order("subscription_date DESC").Find(&subs).Error; err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"Email", "Subscription Date", "Status"}); err != nil {
		return err
	}

	for _, sub := range subs {
		status := i18n.T(lang, i18n.KeySubscriberInactive)
		if sub.IsActive {
			status = i18n.T(lang, i18n.KeySubscriberActive)
		}
		row := []string{
			sub.Email,
			sub.SubscriptionDate.Format("2006-01-02 15:04"),
			status,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
