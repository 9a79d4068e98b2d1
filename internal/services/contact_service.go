// internal/services/contact_service.go
package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autovista/dealership-backend/internal/models"
	"github.com/autovista/dealership-backend/internal/utils"
)

type ContactService struct {
	db       *gorm.DB
	notifier *NotificationService
}

func NewContactService(db *gorm.DB, notifier *NotificationService) *ContactService {
	return &ContactService{db: db, notifier: notifier}
}

type CreateContactRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"omitempty,max=20"`
	Message string `json:"message" binding:"required"`
}

func (s *ContactService) Create(req *CreateContactRequest) (*models.ContactMessage, error) {
	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
		Date:    time.Now(),
	}

	if err := s.db.Create(msg).Error; err != nil {
		return nil, err
	}

	if s.notifier != nil {
		go s.notifier.NotifyContactMessage(msg)
	}

	return msg, nil
}

func (s *ContactService) GetByID(id uuid.UUID) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	if err := s.db.First(&msg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &msg, nil
}

func (s *ContactService) List(params utils.PaginationParams, unreadOnly bool) (*utils.PaginationResult, error) {
	var msgs []models.ContactMessage
	var total int64

	query := s.db.Model(&models.ContactMessage{})
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	query = utils.ApplySort(query, params, []string{"created_at", "date", "name", "email"})
	query = utils.ApplyPagination(query, params)
	if err := query.Find(&msgs).Error; err != nil {
		return nil, err
	}

	result := utils.CreatePaginationResult(msgs, total, params)
	return &result, nil
}

func (s *ContactService) MarkRead(id uuid.UUID) (*models.ContactMessage, error) {
	msg, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(msg).Update("is_read", true).Error; err != nil {
		return nil, err
	}
	msg.IsRead = true
	return msg, nil
}

func (s *ContactService) Delete(id uuid.UUID) error {
	msg, err := s.GetByID(id)
	if err != nil {
		return err
	}
	return s.db.Delete(msg).Error
}
