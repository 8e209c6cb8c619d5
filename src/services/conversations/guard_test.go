package conversations

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growupanand/convoform/src/models"
	"github.com/growupanand/convoform/src/utils"
)

func TestCheckCount(t *testing.T) {
	t.Run("UnderLimitPasses", func(t *testing.T) {
		assert.NoError(t, CheckCount(0, models.PlanFree))
		assert.NoError(t, CheckCount(499, models.PlanFree))
	})

	t.Run("AtLimitIsForbidden", func(t *testing.T) {
		err := CheckCount(500, models.PlanFree)
		require.Error(t, err)

		var appErr *utils.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 403, appErr.StatusCode)
		assert.Contains(t, appErr.Message, "response limit of 500")
	})

	// the count is organization-wide: 300 on one form and 150 on another
	// leaves room for 50 more anywhere
	t.Run("CrossFormCountsAggregate", func(t *testing.T) {
		assert.NoError(t, CheckCount(300+150, models.PlanFree))
		assert.Error(t, CheckCount(300+200, models.PlanFree))
	})

	t.Run("ProPlanNeverBlocks", func(t *testing.T) {
		assert.NoError(t, CheckCount(10_000, models.PlanPro))
	})
}

func TestIsExemptFromLimit(t *testing.T) {
	t.Run("DemoFormIsExempt", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		assert.True(t, IsExemptFromLimit(&models.Form{IsDemo: true}))
		assert.False(t, IsExemptFromLimit(&models.Form{IsDemo: false}))
	})

	t.Run("DevelopmentModeIsExempt", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		assert.True(t, IsExemptFromLimit(&models.Form{}))
	})
}
