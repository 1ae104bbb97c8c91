// models/notification_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationLog struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key"`
	BookingID *uuid.UUID `gorm:"type:uuid;index"`

	Type         string `gorm:"type:varchar(30)"` // confirmation, admin_alert, password_reset, daily_digest
	Channel      string `gorm:"type:varchar(20)"` // email, sms
	Recipient    string `gorm:"type:varchar(255)"`
	Status       string `gorm:"type:varchar(20)"` // sent, failed
	ErrorMessage string `gorm:"type:text"`
	SentAt       time.Time

	gorm.Model
}

func (n *NotificationLog) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return
}
