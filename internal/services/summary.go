package services

import (
	"github.com/MatiasFerreyra/Journal_Api/internal/models"
)

// Summarize agrega el diario de un día: P/L total, ganadas, perdidas y
// porcentaje de aciertos (0 cuando no hay operaciones).
func Summarize(trades []models.Trade) models.TradeSummary {
	var summary models.TradeSummary
	for _, trade := range trades {
		summary.TotalPL += trade.ProfitOrLoss
		if trade.Result == models.ResultWin {
			summary.Wins++
		} else {
			summary.Losses++
		}
	}

	if total := summary.Wins + summary.Losses; total > 0 {
		summary.WinRate = float64(summary.Wins) / float64(total) * 100
	}

	return summary
}
