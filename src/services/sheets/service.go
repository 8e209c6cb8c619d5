package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/growupanand/convoform/src/database"
	"github.com/growupanand/convoform/src/models"
	"github.com/growupanand/convoform/src/utils"
)

const sheetsAPIBase = "https://sheets.googleapis.com/v4/spreadsheets"

// GetGoogleOAuthConfig returns the OAuth2 configuration for the spreadsheet
// export integration.
func GetGoogleOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  os.Getenv("GOOGLE_REDIRECT"),
		Scopes: []string{
			"https://www.googleapis.com/auth/spreadsheets",
		},
		Endpoint: google.Endpoint,
	}
}

// AuthURL starts the consent flow; state carries the organization id so the
// callback knows where to attach the token.
func AuthURL(state string) string {
	return GetGoogleOAuthConfig().AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// HandleCallback exchanges the authorization code and stores the token on the
// organization.
func HandleCallback(ctx context.Context, orgID string, code string) error {
	config := GetGoogleOAuthConfig()

	token, err := config.Exchange(ctx, code)
	if err != nil {
		return utils.BadRequest(fmt.Sprintf("failed to exchange code for token: %v", err))
	}

	raw, err := json.Marshal(token)
	if err != nil {
		return err
	}

	oid, err := primitive.ObjectIDFromHex(orgID)
	if err != nil {
		return utils.BadRequest("invalid organization id in state")
	}

	_, err = database.OrganizationCollection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"googleSheetsToken": string(raw), "updatedAt": time.Now()}},
	)
	return err
}

// ExportConversations creates a spreadsheet holding one row per conversation,
// one column per field in asking order, and returns the spreadsheet id.
func ExportConversations(ctx context.Context, orgID string, form *models.FormWithFields, conversations []models.Conversation) (string, error) {
	oid, err := primitive.ObjectIDFromHex(orgID)
	if err != nil {
		return "", utils.BadRequest("invalid organization id")
	}

	var org struct {
		GoogleSheetsToken string `bson:"googleSheetsToken"`
	}
	err = database.OrganizationCollection.FindOne(ctx, bson.M{"_id": oid}).Decode(&org)
	if err != nil {
		return "", err
	}
	if org.GoogleSheetsToken == "" {
		return "", utils.BadRequest("Google Sheets is not connected for this organization")
	}

	var token oauth2.Token
	if err := json.Unmarshal([]byte(org.GoogleSheetsToken), &token); err != nil {
		return "", fmt.Errorf("stored Google token is corrupt: %v", err)
	}

	client := GetGoogleOAuthConfig().Client(ctx, &token)

	spreadsheetID, err := createSpreadsheet(ctx, client, form.Form.Name)
	if err != nil {
		return "", err
	}

	if err := appendRows(ctx, client, spreadsheetID, buildRows(form.Fields, conversations)); err != nil {
		return "", err
	}

	return spreadsheetID, nil
}

// buildRows flattens conversations into a header row plus one row per
// conversation. Headers come from the field definitions, so a field nobody
// answered yet still gets a named column.
func buildRows(fields []models.FormField, conversations []models.Conversation) [][]any {
	header := []any{"Conversation", "Finished at"}
	columns := map[string]int{}
	for _, field := range fields {
		columns[field.ID.Hex()] = len(header)
		header = append(header, field.FieldName)
	}

	rows := [][]any{header}
	for _, conversation := range conversations {
		row := make([]any, len(header))
		row[0] = conversation.ID.Hex()
		if conversation.FinishedAt != nil {
			row[1] = conversation.FinishedAt.Format(time.RFC3339)
		} else {
			row[1] = ""
		}
		for _, resp := range conversation.FieldResponses {
			idx, ok := columns[resp.FieldID.Hex()]
			if !ok {
				continue
			}
			row[idx] = resp.FieldValue
		}
		for i, cell := range row {
			if cell == nil {
				row[i] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows
}

func createSpreadsheet(ctx context.Context, client *http.Client, title string) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"properties": map[string]any{"title": title},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sheetsAPIBase, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to create spreadsheet: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to create spreadsheet: status %d: %s", resp.StatusCode, string(body))
	}

	var created struct {
		SpreadsheetID string `json:"spreadsheetId"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		return "", err
	}
	return created.SpreadsheetID, nil
}

func appendRows(ctx context.Context, client *http.Client, spreadsheetID string, rows [][]any) error {
	payload, err := json.Marshal(map[string]any{"values": rows})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s/values/A1:append?valueInputOption=RAW", sheetsAPIBase, spreadsheetID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to append rows: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("failed to append rows: status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
