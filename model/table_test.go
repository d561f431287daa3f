package model

import (
	"restaurant_pos/constants"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTakeOccupancyResetsSource(t *testing.T) {
	opened := time.Now().Add(-45 * time.Minute)
	orderId := uint(7)
	source := Table{
		Status:         constants.TableOcupada,
		Total:          128.50,
		TimeOpened:     &opened,
		CurrentOrderId: &orderId,
	}

	occ := source.TakeOccupancy()

	assert.Equal(t, constants.TableLibre, source.Status)
	assert.Zero(t, source.Total)
	assert.Nil(t, source.TimeOpened)
	assert.Nil(t, source.CurrentOrderId)

	assert.Equal(t, constants.TableOcupada, occ.Status)
	assert.Equal(t, 128.50, occ.Total)
	require.NotNil(t, occ.TimeOpened)
	assert.Equal(t, opened, *occ.TimeOpened)
	require.NotNil(t, occ.CurrentOrderId)
	assert.Equal(t, orderId, *occ.CurrentOrderId)
}

func TestApplyOccupancyMovesEverything(t *testing.T) {
	opened := time.Now().Add(-2 * time.Hour)
	orderId := uint(42)
	source := Table{
		Status:         constants.TablePagando,
		Total:          310,
		TimeOpened:     &opened,
		CurrentOrderId: &orderId,
	}
	target := Table{Status: constants.TableLibre}

	target.ApplyOccupancy(source.TakeOccupancy())

	// The pagando state travels with the party, it never resets to ocupada.
	assert.Equal(t, constants.TablePagando, target.Status)
	assert.Equal(t, 310.0, target.Total)
	require.NotNil(t, target.TimeOpened)
	assert.Equal(t, opened, *target.TimeOpened)
	require.NotNil(t, target.CurrentOrderId)
	assert.Equal(t, orderId, *target.CurrentOrderId)

	assert.True(t, source.IsFree())
	assert.False(t, target.IsFree())
}

func TestIsFree(t *testing.T) {
	assert.True(t, (&Table{Status: constants.TableLibre}).IsFree())
	assert.False(t, (&Table{Status: constants.TableOcupada}).IsFree())
	assert.False(t, (&Table{Status: constants.TablePagando}).IsFree())
}
