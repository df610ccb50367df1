package statemachine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodhub/models"
)

func TestParse(t *testing.T) {
	for _, raw := range []string{"preparing", "on-the-way", "delivered"} {
		got, err := Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatus(raw), got)
	}

	for _, raw := range []string{"", "PREPARING", "cancelled", "on the way"} {
		_, err := Parse(raw)
		assert.Error(t, err, raw)
	}
}

func TestAdminTransitionAllowsAnyKnownMove(t *testing.T) {
	all := ForwardPath()
	for _, from := range all {
		for _, to := range all {
			assert.NoError(t, AdminTransition(from, to))
		}
	}
	assert.Error(t, AdminTransition(models.StatusPreparing, "cancelled"))
}

func TestNextStatuses(t *testing.T) {
	assert.Equal(t, []models.OrderStatus{models.StatusOnTheWay}, NextStatuses(models.StatusPreparing))
	assert.Equal(t, []models.OrderStatus{models.StatusDelivered}, NextStatuses(models.StatusOnTheWay))
	assert.Nil(t, NextStatuses(models.StatusDelivered))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(models.StatusPreparing))
	assert.False(t, IsTerminal(models.StatusOnTheWay))
	assert.True(t, IsTerminal(models.StatusDelivered))
}
