package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/growupanand/convoform/src/models"
)

// buildProgressionSystemPrompt enumerates the remaining unanswered fields and
// their configurations so the model can phrase the next question and extract
// the respondent's previous answer.
func buildProgressionSystemPrompt(form models.Form, remaining []models.FormField, hasAnswer bool) string {
	var sb strings.Builder

	sb.WriteString("You are conducting a conversational form named ")
	sb.WriteString(fmt.Sprintf("%q.\n", form.Name))
	if form.Overview != "" {
		sb.WriteString("Form overview: " + form.Overview + "\n")
	}

	sb.WriteString("\nRemaining unanswered fields, in the exact order they must be asked:\n")
	for i, field := range remaining {
		cfg, _ := json.Marshal(field.FieldConfiguration)
		sb.WriteString(fmt.Sprintf("%d. %s (type: %s, configuration: %s)", i+1, field.FieldName, field.InputType, cfg))
		if field.FieldDescription != "" {
			sb.WriteString(". " + field.FieldDescription)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\nThe first listed field is the current one.\n")
	if hasAnswer {
		sb.WriteString("The last user message answers the current field. Extract the value it supplies.\n")
		sb.WriteString("If the answer satisfies the current field, phrase a short conversational question for the field after it.\n")
		sb.WriteString("If the answer does not satisfy the current field, ask again with a short clarification.\n")
	} else {
		sb.WriteString("No answer has been given yet. Phrase a short conversational question for the current field.\n")
	}

	sb.WriteString("\nRespond with a JSON object only, shaped as:\n")
	sb.WriteString(`{"extractedAnswer": "<value or null>", "isAnswerValid": <bool>, "nextQuestion": "<question text>"}` + "\n")
	sb.WriteString("Set extractedAnswer to null and isAnswerValid to false when there is nothing to extract.\n")
	sb.WriteString("If no fields remain after a valid answer, nextQuestion may be an empty string.\n")

	return sb.String()
}

func buildGenerationSystemPrompt() string {
	var sb strings.Builder

	sb.WriteString("You design conversational forms. Given a free-text overview, produce a complete form definition.\n")
	sb.WriteString("Respond with a JSON object only, shaped as:\n")
	sb.WriteString(`{
  "name": "<form name>",
  "welcomeScreen": {"title": "...", "message": "...", "buttonLabelText": "..."},
  "fields": [
    {
      "fieldName": "...",
      "fieldDescription": "...",
      "inputType": "text" | "multipleChoice" | "datePicker" | "rating",
      "fieldConfiguration": { ... }
    }
  ]
}` + "\n")
	sb.WriteString("Configuration shapes: text {isParagraph, placeholder, maxLength}; ")
	sb.WriteString("multipleChoice {options: [{value}], allowMultiple}; ")
	sb.WriteString("datePicker {minDate, maxDate} as ISO-8601 strings; ")
	sb.WriteString("rating {maxRating, iconType}.\n")

	return sb.String()
}
