package email

import (
	"fmt"
	"html"
	"strings"

	"github.com/growupanand/convoform/src/models"
)

// CompletedConversationEmail renders the notification sent to a form owner
// when a respondent finishes a conversation.
func CompletedConversationEmail(formName string, conversation *models.Conversation) (subject, body string) {
	subject = fmt.Sprintf("New response on %q", formName)

	var sb strings.Builder
	sb.WriteString("<h2>" + html.EscapeString(formName) + "</h2>")
	sb.WriteString("<p>A respondent just completed your conversational form.</p>")
	sb.WriteString("<table border=\"0\" cellpadding=\"4\">")
	for _, resp := range conversation.FieldResponses {
		sb.WriteString("<tr><td><b>" + html.EscapeString(resp.FieldName) + "</b></td><td>" +
			html.EscapeString(resp.FieldValue) + "</td></tr>")
	}
	sb.WriteString("</table>")

	return subject, sb.String()
}
