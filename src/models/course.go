package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course หลักสูตร - the central catalog entity. The syllabus is stored embedded,
// canonical shape only (sections containing lectures). Legacy documents may still
// carry flat-topic sections or the old curriculum array; the service normalizes
// those on read and never writes them back.
type Course struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty" swaggertype:"string" example:"507f1f77bcf86cd799439011"`
	Title           string             `json:"title" bson:"title" validate:"required" example:"Intro to ML"`
	Subtitle        string             `json:"subtitle" bson:"subtitle,omitempty" example:"From zero to your first model"`
	Description     string             `json:"description" bson:"description" validate:"required" example:"A hands-on introduction to machine learning"`
	LongDescription string             `json:"longDescription" bson:"longDescription,omitempty"`
	Duration        string             `json:"duration" bson:"duration" validate:"required" example:"4 weeks"`
	Mode            string             `json:"mode" bson:"mode,omitempty" validate:"omitempty,oneof=Online Offline Hybrid" example:"Online"`
	Level           string             `json:"level" bson:"level,omitempty" validate:"omitempty,oneof=Beginner Intermediate Advanced 'All Levels'" example:"Beginner"`
	Price           string             `json:"price" bson:"price,omitempty" example:"₹4999"`
	OriginalPrice   string             `json:"originalPrice" bson:"originalPrice,omitempty" example:"₹9999"`
	Language        string             `json:"language" bson:"language,omitempty" example:"English"`
	Prerequisites   string             `json:"prerequisites" bson:"prerequisites,omitempty" example:"None"`
	Instructor      string             `json:"instructor" bson:"instructor,omitempty" example:"Dr. A. Sharma"`
	Category        string             `json:"category" bson:"category" validate:"required,oneof=students professionals corporates" example:"students"`
	CourseCategory  string             `json:"courseCategory" bson:"courseCategory,omitempty" example:"Machine Learning"`
	Skills          []string           `json:"skills" bson:"skills,omitempty" example:"Python,Pandas"`
	Tags            []string           `json:"tags" bson:"tags,omitempty" example:"ai,beginner"`
	IconName        string             `json:"iconName" bson:"iconName,omitempty" example:"Brain"`
	Featured        bool               `json:"featured" bson:"featured"`
	Trending        bool               `json:"trending" bson:"trending"`
	Certificate     bool               `json:"certificate" bson:"certificate"`
	Syllabus        []Section          `json:"syllabus" bson:"syllabus,omitempty"`
	Curriculum      []CurriculumModule `json:"-" bson:"curriculum,omitempty"` // legacy shape, read-only
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt,omitempty"`
}

// Section is one block of the canonical syllabus. The module/topics fields only
// appear when decoding legacy flat-topic documents; they are cleared by
// normalization before the section reaches any consumer.
type Section struct {
	Title    string    `json:"title" bson:"title,omitempty" example:"Getting Started"`
	Lectures []Lecture `json:"lectures" bson:"lectures,omitempty"`

	LegacyModule string   `json:"-" bson:"module,omitempty"`
	LegacyTopics []string `json:"-" bson:"topics,omitempty"`
}

type Lecture struct {
	Title     string `json:"title" bson:"title" example:"What is a model?"`
	Duration  string `json:"duration" bson:"duration" example:"10:00"` // MM:SS
	IsPreview bool   `json:"isPreview" bson:"isPreview"`
}

// CurriculumModule is the oldest content shape (module-count style). Kept only
// so legacy documents still decode; normalized to sections on read.
type CurriculumModule struct {
	Module      string `json:"module" bson:"module"`
	Lessons     int    `json:"lessons" bson:"lessons"`
	Duration    string `json:"duration" bson:"duration"`
	Description string `json:"description" bson:"description"`
}

// CourseFilters เก็บค่าการกรองสำหรับรายการคอร์ส
type CourseFilters struct {
	Search         string `json:"search" query:"search"`
	Category       string `json:"category" query:"category"` // students, professionals, corporates
	CourseCategory string `json:"courseCategory" query:"courseCategory"`
	Level          string `json:"level" query:"level"`
	Mode           string `json:"mode" query:"mode"`
	Featured       *bool  `json:"featured" query:"featured"`
	Trending       *bool  `json:"trending" query:"trending"`
	Skip           int64  `json:"skip" query:"skip"`
	Limit          int64  `json:"limit" query:"limit"`
}

// CourseView is what list and detail endpoints return: the course plus the
// derived display values the frontend shows, computed in one place on read.
type CourseView struct {
	Course        `bson:",inline"`
	Icon          string `json:"icon" bson:"-"`
	TotalLectures int    `json:"totalLectures" bson:"-"`
	TotalDuration string `json:"totalDuration" bson:"-"` // e.g. "95min"
}

type CourseListResponse struct {
	Courses []CourseView `json:"courses"`
}

type CourseResponse struct {
	Course CourseView `json:"course"`
}
