// internal/models/contact_message.go
package models

import "time"

type ContactMessage struct {
	BaseModel
	Name    string    `json:"name" gorm:"size:100;not null"`
	Email   string    `json:"email" gorm:"size:255;not null"`
	Phone   string    `json:"phone" gorm:"size:20"`
	Message string    `json:"message" gorm:"type:text;not null"`
	Date    time.Time `json:"date" gorm:"not null;index"`
	IsRead  bool      `json:"is_read" gorm:"default:false;index"`
}
