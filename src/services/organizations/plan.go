package organizations

import "github.com/growupanand/convoform/src/models"

// FreePlanResponseLimit is the total conversations allowed across all of a
// free organization's forms.
const FreePlanResponseLimit = 500

// PlanLimit is the single source of truth for response quotas. A negative
// limit means unlimited.
func PlanLimit(plan string) int {
	switch plan {
	case models.PlanPro:
		return -1
	default:
		return FreePlanResponseLimit
	}
}

// IsOverLimit reports whether count existing conversations exhaust the plan's
// quota, i.e. whether creating one more must be rejected.
func IsOverLimit(count int64, plan string) bool {
	limit := PlanLimit(plan)
	if limit < 0 {
		return false
	}
	return count >= int64(limit)
}
