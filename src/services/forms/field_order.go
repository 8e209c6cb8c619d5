package forms

import (
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/growupanand/convoform/src/models"
)

// SafeFieldOrders derives the usable asking order from a possibly-stale stored
// order list: ids of deleted fields are dropped, duplicates collapse to their
// first occurrence, and fields missing from the list are appended once at the
// end in creation-time order. The result is always a permutation of the ids of
// the fields that currently exist.
func SafeFieldOrders(orders []primitive.ObjectID, fields []models.FormField) []primitive.ObjectID {
	existing := make(map[primitive.ObjectID]bool, len(fields))
	for _, field := range fields {
		existing[field.ID] = true
	}

	safe := make([]primitive.ObjectID, 0, len(fields))
	seen := make(map[primitive.ObjectID]bool, len(fields))

	for _, id := range orders {
		if existing[id] && !seen[id] {
			safe = append(safe, id)
			seen[id] = true
		}
	}

	var missing []models.FormField
	for _, field := range fields {
		if !seen[field.ID] {
			missing = append(missing, field)
		}
	}
	sort.SliceStable(missing, func(i, j int) bool {
		return missing[i].CreatedAt.Before(missing[j].CreatedAt)
	})
	for _, field := range missing {
		safe = append(safe, field.ID)
	}

	return safe
}

// OrderedFields returns the fields arranged by SafeFieldOrders.
func OrderedFields(orders []primitive.ObjectID, fields []models.FormField) []models.FormField {
	byID := make(map[primitive.ObjectID]models.FormField, len(fields))
	for _, field := range fields {
		byID[field.ID] = field
	}

	safe := SafeFieldOrders(orders, fields)
	ordered := make([]models.FormField, 0, len(safe))
	for _, id := range safe {
		ordered = append(ordered, byID[id])
	}
	return ordered
}
