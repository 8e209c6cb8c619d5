package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WelcomeScreen is the copy shown before a conversation starts.
type WelcomeScreen struct {
	Title           string `bson:"title" json:"title"`
	Message         string `bson:"message" json:"message"`
	ButtonLabelText string `bson:"buttonLabelText" json:"buttonLabelText"`
}

// Form is a respondent-facing questionnaire definition. FormFieldsOrders holds
// the asking order of its fields; it can go stale when fields are deleted, so
// readers must pass it through the safe-order filter before use.
type Form struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	WorkspaceID      primitive.ObjectID   `bson:"workspaceId" json:"workspaceId"`
	OrganizationID   primitive.ObjectID   `bson:"organizationId" json:"organizationId"`
	Name             string               `bson:"name" json:"name"`
	Overview         string               `bson:"overview" json:"overview"`
	WelcomeScreen    WelcomeScreen        `bson:"welcomeScreen" json:"welcomeScreen"`
	IsPublished      bool                 `bson:"isPublished" json:"isPublished"`
	IsDemo           bool                 `bson:"isDemo" json:"isDemo"`
	FormFieldsOrders []primitive.ObjectID `bson:"formFieldsOrders" json:"formFieldsOrders"`
	CreatedAt        time.Time            `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt        time.Time            `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// FormWithFields bundles a form with its current fields.
type FormWithFields struct {
	Form   Form        `json:"form"`
	Fields []FormField `json:"fields"`
}

type CreateFormRequest struct {
	WorkspaceID   string                   `json:"workspaceId" validate:"required"`
	Name          string                   `json:"name" validate:"required,max=255"`
	Overview      string                   `json:"overview" validate:"max=2000"`
	WelcomeScreen WelcomeScreen            `json:"welcomeScreen"`
	Fields        []CreateFormFieldRequest `json:"fields" validate:"dive"`
}

type UpdateFormRequest struct {
	Name          *string        `json:"name,omitempty" validate:"omitempty,max=255"`
	Overview      *string        `json:"overview,omitempty" validate:"omitempty,max=2000"`
	WelcomeScreen *WelcomeScreen `json:"welcomeScreen,omitempty"`
}

type ReorderFieldsRequest struct {
	FormFieldsOrders []string `json:"formFieldsOrders" validate:"required,min=1"`
}
