package middleware

import (
	"net/http"
	"time"

	"github.com/MatiasFerreyra/Journal_Api/internal/storage"
	"github.com/gin-gonic/gin"
)

// requestDate resuelve el parámetro ?date=YYYY-MM-DD (hoy por defecto) en la
// zona horaria local. Las fechas futuras se rechazan: no hay diario ni plan
// para días que todavía no ocurrieron. Devuelve la fecha, si es el día
// actual, y si la petición pudo resolverse.
func requestDate(c *gin.Context) (time.Time, bool, bool) {
	now := time.Now()

	raw := c.Query("date")
	if raw == "" {
		return now, true, true
	}

	date, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fecha inválida, se espera YYYY-MM-DD"})
		return time.Time{}, false, false
	}

	todayStr := storage.DateString(now)
	dateStr := storage.DateString(date)
	if dateStr > todayStr {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se puede navegar a una fecha futura"})
		return time.Time{}, false, false
	}

	return date, dateStr == todayStr, true
}
