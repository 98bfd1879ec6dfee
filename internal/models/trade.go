package models

type TradeDirection string

type TradeResult string

const (
	DirectionUp   TradeDirection = "Up"
	DirectionDown TradeDirection = "Down"

	ResultWin  TradeResult = "Win"
	ResultLoss TradeResult = "Loss"
)

// Trade es una operación registrada en el diario. Una vez agregada no se
// modifica ni se elimina. El signo de ProfitOrLoss siempre coincide con
// Result: Win >= 0, Loss <= 0.
type Trade struct {
	ID           string         `json:"id" csv:"id"`
	Asset        string         `json:"asset" csv:"asset"`
	Investment   float64        `json:"investment" csv:"investment"`
	Direction    TradeDirection `json:"direction" csv:"direction"`
	Timing       string         `json:"timing" csv:"timing"`
	Concept      string         `json:"concept" csv:"concept"`
	Result       TradeResult    `json:"result" csv:"result"`
	ProfitOrLoss float64        `json:"profitOrLoss" csv:"profit_or_loss"`
}

// TradeSummary es el agregado del diario de un día.
type TradeSummary struct {
	TotalPL float64 `json:"totalPL"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	WinRate float64 `json:"winRate"`
}
