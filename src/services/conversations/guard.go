package conversations

import (
	"context"
	"fmt"
	"os"

	"github.com/growupanand/convoform/src/models"
	"github.com/growupanand/convoform/src/services/organizations"
	"github.com/growupanand/convoform/src/utils"
)

// IsExemptFromLimit reports whether the submission-limit guard skips this
// form: the demo form never counts against anyone, and development mode is
// never blocked.
func IsExemptFromLimit(form *models.Form) bool {
	return form.IsDemo || os.Getenv("APP_ENV") == "development"
}

// CheckCount compares an existing conversation count against the plan quota.
func CheckCount(count int64, plan string) error {
	if organizations.IsOverLimit(count, plan) {
		return utils.Forbidden(fmt.Sprintf(
			"You have reached the response limit of %d for your plan", organizations.PlanLimit(plan)))
	}
	return nil
}

// CheckSubmissionLimit runs before conversation creation. The count aggregates
// conversations across every form the organization owns, not just the target
// form.
func CheckSubmissionLimit(ctx context.Context, org *models.Organization, form *models.Form) error {
	if IsExemptFromLimit(form) {
		return nil
	}

	count, err := organizations.CountConversations(ctx, org.ID)
	if err != nil {
		return err
	}
	return CheckCount(count, org.Plan)
}
