package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email          string             `bson:"email" json:"email"`
	Name           string             `bson:"name" json:"name"`
	Password       string             `bson:"password" json:"-"`
	OrganizationID primitive.ObjectID `bson:"organizationId" json:"organizationId"`
	Role           string             `bson:"role" json:"role"`
	CreatedAt      time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
}

type RegisterRequest struct {
	Email            string `json:"email" validate:"required,email"`
	Name             string `json:"name" validate:"required,max=255"`
	Password         string `json:"password" validate:"required,min=8"`
	OrganizationName string `json:"organizationName" validate:"required,max=255"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
