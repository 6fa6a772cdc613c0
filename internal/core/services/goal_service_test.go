package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
	"github.com/comitanigiacomo/kanso-wellness/internal/core/services"
)

func TestGoalService(t *testing.T) {
	ctx := context.Background()
	svc := services.NewGoalService(newRepo(), testClock())

	t.Run("Success: Create derives target from title", func(t *testing.T) {
		g, err := svc.Create(ctx, services.CreateGoalInput{Title: "Meditate 5 days"})
		require.NoError(t, err)
		assert.Equal(t, 5, g.TargetDays)
		assert.Equal(t, today().String(), g.CreatedDate)
		assert.NotEmpty(t, g.ID)
	})

	t.Run("Error: Invalid target", func(t *testing.T) {
		_, err := svc.Create(ctx, services.CreateGoalInput{Title: "Forever", TargetDays: 1000})
		assert.ErrorIs(t, err, domain.ErrGoalInvalidTarget)
	})

	t.Run("Success: Advance completes at target", func(t *testing.T) {
		g, err := svc.Create(ctx, services.CreateGoalInput{Title: "Two days", TargetDays: 2})
		require.NoError(t, err)

		_, done, err := svc.Advance(ctx, g.ID)
		require.NoError(t, err)
		assert.False(t, done)

		got, done, err := svc.Advance(ctx, g.ID)
		require.NoError(t, err)
		assert.True(t, done)
		assert.True(t, got.IsCompleted)
		assert.Equal(t, 100, got.Percent())

		got, done, err = svc.Advance(ctx, g.ID)
		require.NoError(t, err)
		assert.False(t, done, "already completed goals are not completed again")
		assert.Equal(t, 2, got.CurrentProgress)
	})

	t.Run("Error: Advance unknown goal", func(t *testing.T) {
		_, _, err := svc.Advance(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrGoalNotFound)
	})

	t.Run("Success: Join challenge", func(t *testing.T) {
		challenges := svc.Challenges()
		require.Len(t, challenges, 5)

		g, err := svc.Join(ctx, challenges[0].ID)
		require.NoError(t, err)
		assert.Equal(t, challenges[0].DurationDays, g.TargetDays)
	})

	t.Run("Error: Join unknown challenge", func(t *testing.T) {
		_, err := svc.Join(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrChallengeNotFound)
	})

	t.Run("Success: Delete", func(t *testing.T) {
		goals, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, goals, 3)

		require.NoError(t, svc.Delete(ctx, goals[0].ID))
		assert.ErrorIs(t, svc.Delete(ctx, goals[0].ID), domain.ErrGoalNotFound)

		goals, _ = svc.List(ctx)
		assert.Len(t, goals, 2)
	})
}
