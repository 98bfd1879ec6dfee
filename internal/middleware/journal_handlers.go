package middleware

import (
	"fmt"
	"math"
	"net/http"

	"github.com/MatiasFerreyra/Journal_Api/internal/models"
	"github.com/MatiasFerreyra/Journal_Api/internal/repository"
	"github.com/MatiasFerreyra/Journal_Api/internal/services"
	"github.com/MatiasFerreyra/Journal_Api/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
)

// GetTrades devuelve las operaciones del día con su resumen agregado.
func GetTrades(c *gin.Context) {
	email := c.GetString("email")

	date, _, ok := requestDate(c)
	if !ok {
		return
	}

	trades, err := journalRepo.GetTrades(email, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"trades":  trades,
		"summary": services.Summarize(trades),
	})
}

// CreateTrade registra una operación en el diario del día actual. El
// registro está bloqueado para días históricos y cuando el P/L acumulado ya
// tocó la meta de ganancia o el stop loss del plan.
func CreateTrade(c *gin.Context) {
	email := c.GetString("email")

	date, isToday, ok := requestDate(c)
	if !ok {
		return
	}
	if !isToday {
		c.JSON(http.StatusForbidden, gin.H{"error": "Solo se pueden registrar operaciones del día actual"})
		return
	}

	var input struct {
		Asset        string  `json:"asset" binding:"required"`
		Investment   float64 `json:"investment" binding:"required,gt=0"`
		Direction    string  `json:"direction" binding:"required,oneof=Up Down"`
		Timing       string  `json:"timing" binding:"required"`
		Concept      string  `json:"concept" binding:"required"`
		Result       string  `json:"result" binding:"required,oneof=Win Loss"`
		ProfitOrLoss float64 `json:"profitOrLoss" binding:"required,gt=0"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Sin plan no hay montos de bloqueo contra los que operar
	plan, err := planRepo.GetPlan(email, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if plan == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": repository.ErrPlanNotFound.Error()})
		return
	}

	trades, err := journalRepo.GetTrades(email, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	calculated := services.CalculatePlan(*plan)
	lockStatus := services.EvaluateLock(services.Summarize(trades).TotalPL, calculated)
	if lockStatus != services.LockNone {
		c.JSON(http.StatusForbidden, gin.H{
			"error":      "El registro de operaciones está bloqueado por hoy",
			"lockStatus": lockStatus,
		})
		return
	}

	// El signo del P/L se deriva del resultado: el monto ingresado se toma
	// en valor absoluto y se vuelve a firmar según Win/Loss
	profitOrLoss := math.Abs(input.ProfitOrLoss)
	if input.Result == string(models.ResultLoss) {
		profitOrLoss = -profitOrLoss
	}

	trade, err := journalRepo.AddTrade(email, date, models.Trade{
		Asset:        input.Asset,
		Investment:   input.Investment,
		Direction:    models.TradeDirection(input.Direction),
		Timing:       input.Timing,
		Concept:      input.Concept,
		Result:       models.TradeResult(input.Result),
		ProfitOrLoss: profitOrLoss,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Operación registrada", "trade": trade})
}

// ExportTrades descarga el diario del día en formato CSV. Es una lectura:
// no modifica ninguna operación.
func ExportTrades(c *gin.Context) {
	email := c.GetString("email")

	date, _, ok := requestDate(c)
	if !ok {
		return
	}

	trades, err := journalRepo.GetTrades(email, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Se serializa primero: si el CSV falla, la respuesta todavía puede
	// ser un error JSON en vez de una descarga a medias
	body, err := gocsv.MarshalBytes(trades)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al exportar operaciones"})
		return
	}

	filename := fmt.Sprintf("trades_%s.csv", storage.DateString(date))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv", body)
}
