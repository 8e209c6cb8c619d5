package forms

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/growupanand/convoform/src/database"
	"github.com/growupanand/convoform/src/models"
	"github.com/growupanand/convoform/src/utils"
)

// scopedFormFilter fences every dashboard read or write to the caller's
// organization. A form id from another tenant simply does not match.
func scopedFormFilter(formID, orgID primitive.ObjectID) bson.M {
	return bson.M{"_id": formID, "organizationId": orgID}
}

// validateFieldRequests rejects a batch of field definitions before anything
// is persisted, so an invalid configuration never leaves partial state behind.
func validateFieldRequests(reqs []models.CreateFormFieldRequest) error {
	for _, fieldReq := range reqs {
		if _, err := models.DecodeFieldConfiguration(fieldReq.InputType, fieldReq.FieldConfiguration); err != nil {
			return utils.BadRequest(fmt.Sprintf("field %q: %v", fieldReq.FieldName, err))
		}
	}
	return nil
}

// CreateForm creates a form with its fields and the initial asking order. The
// target workspace must belong to the caller's organization.
func CreateForm(ctx context.Context, organizationID, workspaceID primitive.ObjectID, req *models.CreateFormRequest) (*models.FormWithFields, error) {
	if err := validateFieldRequests(req.Fields); err != nil {
		return nil, err
	}

	err := database.WorkspaceCollection.FindOne(ctx,
		bson.M{"_id": workspaceID, "organizationId": organizationID},
	).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFound("workspace not found")
		}
		return nil, err
	}

	now := time.Now()

	form := models.Form{
		WorkspaceID:      workspaceID,
		OrganizationID:   organizationID,
		Name:             req.Name,
		Overview:         req.Overview,
		WelcomeScreen:    req.WelcomeScreen,
		FormFieldsOrders: []primitive.ObjectID{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if form.WelcomeScreen.Title == "" {
		form.WelcomeScreen.Title = req.Name
	}
	if form.WelcomeScreen.ButtonLabelText == "" {
		form.WelcomeScreen.ButtonLabelText = "Start"
	}

	result, err := database.FormCollection.InsertOne(ctx, form)
	if err != nil {
		return nil, err
	}
	form.ID = result.InsertedID.(primitive.ObjectID)

	fields := make([]models.FormField, 0, len(req.Fields))
	docs := make([]interface{}, 0, len(req.Fields))
	orders := make([]primitive.ObjectID, 0, len(req.Fields))

	for i, fieldReq := range req.Fields {
		field := models.FormField{
			ID:                 primitive.NewObjectID(),
			FormID:             form.ID,
			FieldName:          fieldReq.FieldName,
			FieldDescription:   fieldReq.FieldDescription,
			InputType:          fieldReq.InputType,
			FieldConfiguration: fieldReq.FieldConfiguration,
			// spread creation times so the fallback ordering stays stable
			CreatedAt: now.Add(time.Duration(i) * time.Millisecond),
		}
		fields = append(fields, field)
		docs = append(docs, field)
		orders = append(orders, field.ID)
	}

	if len(docs) > 0 {
		if _, err := database.FormFieldCollection.InsertMany(ctx, docs); err != nil {
			return nil, err
		}
	}

	form.FormFieldsOrders = orders
	_, err = database.FormCollection.UpdateOne(ctx,
		bson.M{"_id": form.ID},
		bson.M{"$set": bson.M{"formFieldsOrders": orders}},
	)
	if err != nil {
		return nil, err
	}

	return &models.FormWithFields{Form: form, Fields: fields}, nil
}

// GetForms lists a workspace's forms with pagination, name search and sorting.
func GetForms(ctx context.Context, orgID, workspaceID primitive.ObjectID, params models.PaginationParams) ([]models.Form, int64, error) {
	filter := bson.M{"workspaceId": workspaceID, "organizationId": orgID}
	if params.Search != "" {
		filter["name"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	total, err := database.FormCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())

	cursor, err := database.FormCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	forms := []models.Form{}
	if err = cursor.All(ctx, &forms); err != nil {
		return nil, 0, err
	}

	return forms, total, nil
}

// GetFormByID returns one of the caller's forms with its fields in safe asking
// order.
func GetFormByID(ctx context.Context, formID, orgID primitive.ObjectID) (*models.FormWithFields, error) {
	var form models.Form
	err := database.FormCollection.FindOne(ctx, scopedFormFilter(formID, orgID)).Decode(&form)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFound("form not found")
		}
		return nil, err
	}

	fields, err := GetFormFields(ctx, formID)
	if err != nil {
		return nil, err
	}

	form.FormFieldsOrders = SafeFieldOrders(form.FormFieldsOrders, fields)

	return &models.FormWithFields{
		Form:   form,
		Fields: OrderedFields(form.FormFieldsOrders, fields),
	}, nil
}

// GetFormFields returns the currently persisted fields of a form.
func GetFormFields(ctx context.Context, formID primitive.ObjectID) ([]models.FormField, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := database.FormFieldCollection.Find(ctx, bson.M{"formId": formID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var fields []models.FormField
	if err = cursor.All(ctx, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// UpdateForm patches name, overview and welcome screen copy.
func UpdateForm(ctx context.Context, formID, orgID primitive.ObjectID, req *models.UpdateFormRequest) error {
	set := bson.M{"updatedAt": time.Now()}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Overview != nil {
		set["overview"] = *req.Overview
	}
	if req.WelcomeScreen != nil {
		set["welcomeScreen"] = *req.WelcomeScreen
	}

	result, err := database.FormCollection.UpdateOne(ctx, scopedFormFilter(formID, orgID), bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return utils.NotFound("form not found")
	}
	return nil
}

// SetPublished flips the publication flag.
func SetPublished(ctx context.Context, formID, orgID primitive.ObjectID, published bool) error {
	result, err := database.FormCollection.UpdateOne(ctx,
		scopedFormFilter(formID, orgID),
		bson.M{"$set": bson.M{"isPublished": published, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return utils.NotFound("form not found")
	}
	return nil
}

// DeleteForm removes the form and its fields. Conversations are kept.
func DeleteForm(ctx context.Context, formID, orgID primitive.ObjectID) error {
	result, err := database.FormCollection.DeleteOne(ctx, scopedFormFilter(formID, orgID))
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return utils.NotFound("form not found")
	}

	_, err = database.FormFieldCollection.DeleteMany(ctx, bson.M{"formId": formID})
	return err
}

// ReorderFields replaces the stored asking order. The request is filtered
// through SafeFieldOrders so dangling or duplicate ids never get persisted.
func ReorderFields(ctx context.Context, formID, orgID primitive.ObjectID, orderIDs []primitive.ObjectID) ([]primitive.ObjectID, error) {
	err := database.FormCollection.FindOne(ctx, scopedFormFilter(formID, orgID)).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFound("form not found")
		}
		return nil, err
	}

	fields, err := GetFormFields(ctx, formID)
	if err != nil {
		return nil, err
	}

	safe := SafeFieldOrders(orderIDs, fields)

	result, err := database.FormCollection.UpdateOne(ctx,
		scopedFormFilter(formID, orgID),
		bson.M{"$set": bson.M{"formFieldsOrders": safe, "updatedAt": time.Now()}},
	)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, utils.NotFound("form not found")
	}
	return safe, nil
}

// AddField appends a field to the form and its asking order.
func AddField(ctx context.Context, formID, orgID primitive.ObjectID, req *models.CreateFormFieldRequest) (*models.FormField, error) {
	if _, err := models.DecodeFieldConfiguration(req.InputType, req.FieldConfiguration); err != nil {
		return nil, utils.BadRequest(fmt.Sprintf("field %q: %v", req.FieldName, err))
	}

	var form models.Form
	err := database.FormCollection.FindOne(ctx, scopedFormFilter(formID, orgID)).Decode(&form)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFound("form not found")
		}
		return nil, err
	}

	field := models.FormField{
		ID:                 primitive.NewObjectID(),
		FormID:             formID,
		FieldName:          req.FieldName,
		FieldDescription:   req.FieldDescription,
		InputType:          req.InputType,
		FieldConfiguration: req.FieldConfiguration,
		CreatedAt:          time.Now(),
	}

	if _, err := database.FormFieldCollection.InsertOne(ctx, field); err != nil {
		return nil, err
	}

	_, err = database.FormCollection.UpdateOne(ctx,
		bson.M{"_id": formID},
		bson.M{
			"$push": bson.M{"formFieldsOrders": field.ID},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return nil, err
	}

	return &field, nil
}

// findOwnedField loads a field and checks that its form belongs to the
// caller's organization. Fields carry no organizationId of their own.
func findOwnedField(ctx context.Context, fieldID, orgID primitive.ObjectID) (*models.FormField, error) {
	var field models.FormField
	err := database.FormFieldCollection.FindOne(ctx, bson.M{"_id": fieldID}).Decode(&field)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFound("form field not found")
		}
		return nil, err
	}

	err = database.FormCollection.FindOne(ctx, scopedFormFilter(field.FormID, orgID)).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFound("form field not found")
		}
		return nil, err
	}
	return &field, nil
}

// UpdateField patches a field's name, description or configuration.
func UpdateField(ctx context.Context, fieldID, orgID primitive.ObjectID, req *models.UpdateFormFieldRequest) error {
	field, err := findOwnedField(ctx, fieldID, orgID)
	if err != nil {
		return err
	}

	set := bson.M{}
	if req.FieldName != nil {
		set["fieldName"] = *req.FieldName
	}
	if req.FieldDescription != nil {
		set["fieldDescription"] = *req.FieldDescription
	}
	if req.FieldConfiguration != nil {
		if _, err := models.DecodeFieldConfiguration(field.InputType, req.FieldConfiguration); err != nil {
			return utils.BadRequest(fmt.Sprintf("field %q: %v", field.FieldName, err))
		}
		set["fieldConfiguration"] = req.FieldConfiguration
	}
	if len(set) == 0 {
		return utils.BadRequest("nothing to update")
	}

	result, err := database.FormFieldCollection.UpdateOne(ctx, bson.M{"_id": fieldID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return utils.NotFound("form field not found")
	}
	return nil
}

// DeleteField removes a field and pulls its id from the asking order.
func DeleteField(ctx context.Context, fieldID, orgID primitive.ObjectID) error {
	field, err := findOwnedField(ctx, fieldID, orgID)
	if err != nil {
		return err
	}

	if _, err := database.FormFieldCollection.DeleteOne(ctx, bson.M{"_id": fieldID}); err != nil {
		return err
	}

	_, err = database.FormCollection.UpdateOne(ctx,
		bson.M{"_id": field.FormID},
		bson.M{
			"$pull": bson.M{"formFieldsOrders": fieldID},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	return err
}
