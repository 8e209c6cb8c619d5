package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Input type tags for form fields. The tag selects the configuration variant
// stored in FormField.FieldConfiguration.
const (
	InputTypeText           = "text"
	InputTypeMultipleChoice = "multipleChoice"
	InputTypeDatePicker     = "datePicker"
	InputTypeRating         = "rating"
)

// FormField is one question slot of a form. FieldConfiguration is the raw
// stored blob; use Config() to get the typed variant with dates rehydrated.
type FormField struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FormID             primitive.ObjectID `bson:"formId" json:"formId"`
	FieldName          string             `bson:"fieldName" json:"fieldName"`
	FieldDescription   string             `bson:"fieldDescription" json:"fieldDescription"`
	InputType          string             `bson:"inputType" json:"inputType"`
	FieldConfiguration map[string]any     `bson:"fieldConfiguration" json:"fieldConfiguration"`
	CreatedAt          time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
}

// Config decodes the stored configuration blob into its typed variant.
func (f *FormField) Config() (FieldConfiguration, error) {
	return DecodeFieldConfiguration(f.InputType, f.FieldConfiguration)
}

type CreateFormFieldRequest struct {
	FieldName          string         `json:"fieldName" validate:"required,max=255"`
	FieldDescription   string         `json:"fieldDescription" validate:"max=2000"`
	InputType          string         `json:"inputType" validate:"required,oneof=text multipleChoice datePicker rating"`
	FieldConfiguration map[string]any `json:"fieldConfiguration"`
}

type UpdateFormFieldRequest struct {
	FieldName          *string        `json:"fieldName,omitempty" validate:"omitempty,max=255"`
	FieldDescription   *string        `json:"fieldDescription,omitempty" validate:"omitempty,max=2000"`
	FieldConfiguration map[string]any `json:"fieldConfiguration,omitempty"`
}
