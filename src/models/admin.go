package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Admin บัญชีผู้ดูแลระบบ
type Admin struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty" swaggertype:"string"`
	Email    string             `json:"email" bson:"email" example:"admin@algoforge.studio"`
	Password string             `json:"-" bson:"password"` // bcrypt hash
	Name     string             `json:"name" bson:"name,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"admin@algoforge.studio"`
	Password string `json:"password" validate:"required" example:"secret"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}
