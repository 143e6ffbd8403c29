package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Applicant status labels. Plain labels with no enforced transition graph -
// an admin may move an application to any of these directly.
const (
	StatusPending     = "pending"
	StatusReviewing   = "reviewing"
	StatusShortlisted = "shortlisted"
	StatusRejected    = "rejected"
	StatusHired       = "hired"
)

// Applicant ใบสมัครงาน - one submitted job application.
type Applicant struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty" swaggertype:"string"`
	Name         string             `json:"name" bson:"name" validate:"required" example:"Rahul K"`
	Email        string             `json:"email" bson:"email" validate:"required,email" example:"rahul@example.com"`
	Phone        string             `json:"phone" bson:"phone,omitempty"`
	Position     string             `json:"position" bson:"position" validate:"required,oneof=ai-engineer fullstack-developer data-analyst content-creator sales-executive" example:"ai-engineer"`
	Resume       ResumeFile         `json:"resume" bson:"resume"`
	Status       string             `json:"status" bson:"status" example:"pending"`
	CoverLetter  string             `json:"coverLetter" bson:"coverLetter,omitempty"`
	PortfolioURL string             `json:"portfolioUrl" bson:"portfolioUrl,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
}

// ResumeFile keeps both the stored name (uuid-based, what /uploads serves)
// and the name the applicant uploaded.
type ResumeFile struct {
	FileName     string `json:"fileName" bson:"fileName" example:"b1e2c3d4.pdf"`
	OriginalName string `json:"originalName" bson:"originalName" example:"rahul_resume.pdf"`
}

type ApplicantListResponse struct {
	Applicants []Applicant `json:"applicants"`
}

type ApplicantResponse struct {
	Applicant Applicant `json:"applicant"`
}
