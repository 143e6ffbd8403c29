package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification แจ้งเตือนสำหรับแอดมิน - written by the background worker when a
// new lead arrives, listed on the admin dashboard.
type Notification struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty" swaggertype:"string"`
	LeadID    primitive.ObjectID `json:"leadId" bson:"leadId" swaggertype:"string"`
	FormType  string             `json:"formType" bson:"formType" example:"ScheduleCall"`
	Name      string             `json:"name" bson:"name" example:"Priya N"`
	Message   string             `json:"message" bson:"message"`
	Read      bool               `json:"read" bson:"read"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

type NotificationListResponse struct {
	Notifications []Notification `json:"notifications"`
}
