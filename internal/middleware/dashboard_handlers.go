package middleware

import (
	"net/http"

	"github.com/MatiasFerreyra/Journal_Api/internal/models"
	"github.com/MatiasFerreyra/Journal_Api/internal/services"
	"github.com/MatiasFerreyra/Journal_Api/internal/storage"
	"github.com/gin-gonic/gin"
)

// GetDashboard arma la vista completa del día en una sola llamada: plan,
// valores calculados, operaciones, resumen y estado de bloqueo.
func GetDashboard(c *gin.Context) {
	email := c.GetString("email")

	date, isToday, ok := requestDate(c)
	if !ok {
		return
	}

	plan, err := planRepo.GetPlan(email, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	trades, err := journalRepo.GetTrades(email, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	summary := services.Summarize(trades)

	dashboard := models.DailyDashboard{
		Date:       storage.DateString(date),
		IsToday:    isToday,
		Plan:       plan,
		Trades:     trades,
		Summary:    summary,
		LockStatus: string(services.LockNone),
		// Sin plan no se puede operar, el día queda bloqueado
		TradingLocked: true,
	}

	if plan != nil {
		calculated := services.CalculatePlan(*plan)
		lockStatus := services.EvaluateLock(summary.TotalPL, calculated)
		dashboard.CalculatedPlan = &calculated
		dashboard.LockStatus = string(lockStatus)
		dashboard.TradingLocked = services.TradingLocked(lockStatus, isToday)
	}

	c.JSON(http.StatusOK, dashboard)
}
