package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDailyTargetsExample(t *testing.T) {
	// Capital 10000, meta 50% en 20 días: r = 1.5^(1/20)-1 ≈ 0.0205
	targets, err := GenerateDailyTargets(10000, 50, 20)
	require.NoError(t, err)
	require.Len(t, targets, 20)

	assert.Equal(t, 1, targets[0].Day)
	assert.InDelta(t, 10000, targets[0].StartingCapital, 1e-9)
	assert.InDelta(t, 204.8, targets[0].TargetProfit, 0.5)
	assert.InDelta(t, 10204.8, targets[0].EndingCapital, 0.5)

	assert.Equal(t, 20, targets[19].Day)
	assert.InDelta(t, 15000, targets[19].EndingCapital, 0.01)
}

func TestGenerateDailyTargetsFinalCapital(t *testing.T) {
	tests := []struct {
		capital float64
		goal    float64
		days    int
	}{
		{10000, 50, 20},
		{500, 10, 1},
		{2500, 100, 30},
		{100000, 7.5, 22},
		{1, 300, 5},
	}

	for _, tt := range tests {
		targets, err := GenerateDailyTargets(tt.capital, tt.goal, tt.days)
		require.NoError(t, err)
		require.Len(t, targets, tt.days)

		// El capital final equivale al crecimiento total pedido
		want := tt.capital * (1 + tt.goal/100)
		assert.InDelta(t, want, targets[tt.days-1].EndingCapital, want*1e-9)
	}
}

func TestGenerateDailyTargetsStrictlyIncreasing(t *testing.T) {
	targets, err := GenerateDailyTargets(10000, 50, 20)
	require.NoError(t, err)

	for i := 1; i < len(targets); i++ {
		assert.Greater(t, targets[i].StartingCapital, targets[i-1].StartingCapital)
		assert.Greater(t, targets[i].TargetProfit, targets[i-1].TargetProfit)
		// Cada día arranca donde terminó el anterior
		assert.InDelta(t, targets[i-1].EndingCapital, targets[i].StartingCapital, 1e-9)
	}
}

func TestGenerateDailyTargetsStartUncompleted(t *testing.T) {
	targets, err := GenerateDailyTargets(1000, 20, 10)
	require.NoError(t, err)

	for _, target := range targets {
		assert.False(t, target.Completed)
	}
}

func TestGenerateDailyTargetsInvalidDays(t *testing.T) {
	_, err := GenerateDailyTargets(10000, 50, 0)
	assert.ErrorIs(t, err, ErrInvalidTradingDays)

	_, err = GenerateDailyTargets(10000, 50, -3)
	assert.ErrorIs(t, err, ErrInvalidTradingDays)
}
