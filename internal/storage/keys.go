package storage

import (
	"fmt"
	"time"
)

// Las claves reproducen el esquema del cliente original: un prefijo fijo de
// aplicación más el email del usuario y, para los datos diarios, la fecha
// ISO YYYY-MM-DD.
const (
	SessionKey = "tradingJournalUser"
	UsersKey   = "tradingJournalUsers"
)

// DateString devuelve la fecha ISO de t en la zona horaria local. La
// derivación debe ser local y no UTC: de lo contrario el límite del día se
// corre según el huso del usuario.
func DateString(t time.Time) string {
	return t.Format("2006-01-02")
}

func TradesKey(email string, date time.Time) string {
	return fmt.Sprintf("tradingJournalTrades_%s_%s", email, DateString(date))
}

func PlanKey(email string, date time.Time) string {
	return fmt.Sprintf("tradingJournalPlan_%s_%s", email, DateString(date))
}

func MonthlyActiveKey(email string) string {
	return fmt.Sprintf("monthlyPlan_active_%s", email)
}

func MonthlyHistoryKey(email string) string {
	return fmt.Sprintf("monthlyPlan_history_%s", email)
}

// UserKeyPrefixes devuelve los prefijos bajo los que un usuario guarda datos.
// Se usan para purgar su espacio de nombres al eliminar la cuenta.
func UserKeyPrefixes(email string) []string {
	return []string{
		fmt.Sprintf("tradingJournalTrades_%s_", email),
		fmt.Sprintf("tradingJournalPlan_%s_", email),
		fmt.Sprintf("monthlyPlan_active_%s", email),
		fmt.Sprintf("monthlyPlan_history_%s", email),
	}
}
