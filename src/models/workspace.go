package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workspace groups forms inside an organization.
type Workspace struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OrganizationID primitive.ObjectID `bson:"organizationId" json:"organizationId"`
	Name           string             `bson:"name" json:"name"`
	CreatedAt      time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}

type CreateWorkspaceRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type RenameWorkspaceRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}
