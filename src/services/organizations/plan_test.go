package organizations

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/growupanand/convoform/src/models"
)

func TestPlanLimit(t *testing.T) {
	assert.Equal(t, 500, PlanLimit(models.PlanFree))
	assert.Equal(t, -1, PlanLimit(models.PlanPro))

	// unknown plans fall back to the free quota
	assert.Equal(t, 500, PlanLimit("legacy"))
	assert.Equal(t, 500, PlanLimit(""))
}

func TestIsOverLimit(t *testing.T) {
	t.Run("FreePlanBoundary", func(t *testing.T) {
		assert.False(t, IsOverLimit(0, models.PlanFree))
		assert.False(t, IsOverLimit(499, models.PlanFree))
		assert.True(t, IsOverLimit(500, models.PlanFree))
		assert.True(t, IsOverLimit(501, models.PlanFree))
	})

	t.Run("ProPlanIsUnlimited", func(t *testing.T) {
		assert.False(t, IsOverLimit(0, models.PlanPro))
		assert.False(t, IsOverLimit(1_000_000, models.PlanPro))
	})
}
