package services

import (
	"testing"

	"github.com/MatiasFerreyra/Journal_Api/internal/models"
	"github.com/stretchr/testify/assert"
)

func win(amount float64) models.Trade {
	return models.Trade{Result: models.ResultWin, ProfitOrLoss: amount}
}

func loss(amount float64) models.Trade {
	return models.Trade{Result: models.ResultLoss, ProfitOrLoss: -amount}
}

func TestSummarize(t *testing.T) {
	// 3 ganadas de 850 y 2 perdidas de 1000: totalPL = 3*850 - 2*1000
	trades := []models.Trade{win(850), loss(1000), win(850), win(850), loss(1000)}

	summary := Summarize(trades)
	assert.InDelta(t, 550, summary.TotalPL, 1e-9)
	assert.Equal(t, 3, summary.Wins)
	assert.Equal(t, 2, summary.Losses)
	assert.InDelta(t, 60, summary.WinRate, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	assert.Zero(t, summary.TotalPL)
	assert.Zero(t, summary.Wins)
	assert.Zero(t, summary.Losses)
	assert.Zero(t, summary.WinRate)
}

func TestSummarizeAllLosses(t *testing.T) {
	summary := Summarize([]models.Trade{loss(100), loss(250)})
	assert.InDelta(t, -350, summary.TotalPL, 1e-9)
	assert.Zero(t, summary.WinRate)
	assert.Equal(t, 2, summary.Losses)
}
