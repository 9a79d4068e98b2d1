// internal/models/subscriber.go
package models

import "time"

type Subscriber struct {
	BaseModel
	Email            string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	SubscriptionDate time.Time `json:"subscription_date" gorm:"not null"`
	IsActive         bool      `json:"is_active" gorm:"default:true"`
}
