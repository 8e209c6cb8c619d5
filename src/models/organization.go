package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Plan names. Limits live in services/organizations so there is a single
// source of truth for quota checks.
const (
	PlanFree = "free"
	PlanPro  = "pro"
)

// Organization is the billing and ownership grouping above workspaces.
type Organization struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Plan      string             `bson:"plan" json:"plan"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}

type CreateOrganizationRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// OrganizationUsage is returned by the usage endpoint; Limit comes from the
// plan helpers.
type OrganizationUsage struct {
	Conversations int64 `json:"conversations"`
	Forms         int64 `json:"forms"`
	Limit         int   `json:"limit"`
	OverLimit     bool  `json:"overLimit"`
}
