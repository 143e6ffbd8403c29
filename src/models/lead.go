package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lead form types. One collection holds every capture form; FormType
// discriminates which optional fields are meaningful.
const (
	FormScheduleCall        = "ScheduleCall"
	FormJoinProjects        = "JoinProjects"
	FormRecommendation      = "Recommendation"
	FormEnterpriseSolutions = "EnterpriseSolutions"
	FormEnterpriseDemo      = "EnterpriseDemo"
)

// Lead ข้อมูลผู้สนใจจากฟอร์มหน้าเว็บ - created once, never mutated.
type Lead struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty" swaggertype:"string"`
	Name            string             `json:"name" bson:"name" validate:"required" example:"Priya N"`
	Email           string             `json:"email" bson:"email" validate:"required,email" example:"priya@example.com"`
	Phone           string             `json:"phone" bson:"phone,omitempty" example:"+91 98765 43210"`
	FormType        string             `json:"formType" bson:"formType" validate:"required,oneof=ScheduleCall JoinProjects Recommendation EnterpriseSolutions EnterpriseDemo" example:"ScheduleCall"`
	ExperienceLevel string             `json:"experienceLevel" bson:"experienceLevel,omitempty" example:"Beginner"`

	// Form-type specific fields
	Goal          string   `json:"goal,omitempty" bson:"goal,omitempty"`
	Availability  string   `json:"availability,omitempty" bson:"availability,omitempty"`
	PreferredTime string   `json:"preferredTime,omitempty" bson:"preferredTime,omitempty"`
	Interests     []string `json:"interests,omitempty" bson:"interests,omitempty"`
	Notes         string   `json:"notes,omitempty" bson:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

type LeadListResponse struct {
	Leads []Lead `json:"leads"`
}

type LeadResponse struct {
	Lead Lead `json:"lead"`
}
