// Package models defines the core data structures for Voxfolio
package models

// Position is an open holding, derived per request from the brokerage
// positions endpoint. Never persisted.
type Position struct {
	Ticker        string  `json:"ticker"`
	Shares        float64 `json:"shares"`
	AvgPrice      float64 `json:"avg_price"`
	CurrentPrice  float64 `json:"current_price"`
	UnrealizedPnL float64 `json:"unrealized_pnl"`
	PnLPct        float64 `json:"pnl_pct"`
}

// AccountSummary holds the account cash balance and overall value
type AccountSummary struct {
	Cash     float64 `json:"cash"`
	Invested float64 `json:"invested"`
	Total    float64 `json:"total"`
	Result   float64 `json:"result"`
	Currency string  `json:"currency"`
}

// Order statuses that count as executed
const (
	OrderStatusFilled          = "FILLED"
	OrderStatusPartiallyFilled = "PARTIALLY_FILLED"
)

// Order is a historical order record from the brokerage. Quantity is signed:
// negative means a sell. Timestamps are kept as the upstream strings; the
// analyzer parses them and skips records it cannot read.
type Order struct {
	Ticker       string  `json:"ticker"`
	Quantity     float64 `json:"quantity"`
	FillPrice    float64 `json:"fillPrice"`
	AveragePrice float64 `json:"averagePrice"`
	Status       string  `json:"status"`
	DateCreated  string  `json:"dateCreated"`
	DateExecuted string  `json:"dateExecuted"`
}

// Executed reports whether the order counts toward trade statistics.
func (o *Order) Executed() bool {
	return o.Status == OrderStatusFilled || o.Status == OrderStatusPartiallyFilled
}

// IsSell reports whether the order closed shares (negative quantity).
func (o *Order) IsSell() bool {
	return o.Quantity < 0
}

// DividendPayment is a single paid dividend record
type DividendPayment struct {
	Ticker string  `json:"ticker"`
	Amount float64 `json:"amount"`
	PaidOn string  `json:"paidOn"`
}

// Pie is a brokerage auto-invest basket
type Pie struct {
	ID            int64   `json:"id"`
	Cash          float64 `json:"cash"`
	Progress      float64 `json:"progress"`
	Status        string  `json:"status"`
	InvestedValue float64 `json:"investedValue"`
	CurrentValue  float64 `json:"currentValue"`
	Result        float64 `json:"result"`
}

// TradeOutcome is a single realized sell used for best/worst reporting
type TradeOutcome struct {
	Ticker string  `json:"ticker"`
	PnL    float64 `json:"pnl"`
	Price  float64 `json:"price"`
}

// TickerCount is a ticker with its traded-order count
type TickerCount struct {
	Ticker string `json:"ticker"`
	Count  int    `json:"count"`
}

// TradeStats is the output of the trade history analyzer.
// TotalOrders distinguishes "no history at all" from "no filled orders"
// (TotalOrders > 0, FilledOrders == 0).
type TradeStats struct {
	TotalOrders      int           `json:"total_orders"`
	FilledOrders     int           `json:"filled_orders"`
	SellTrades       int           `json:"sell_trades"`
	Wins             int           `json:"wins"`
	Losses           int           `json:"losses"`
	WinRatePct       float64       `json:"win_rate_pct"`
	TotalRealizedPnL float64       `json:"total_realised_pnl"`
	AvgPnLPerTrade   float64       `json:"avg_pnl_per_trade"`
	BestTrade        *TradeOutcome `json:"best_trade,omitempty"`
	WorstTrade       *TradeOutcome `json:"worst_trade,omitempty"`
	TopTickers       []TickerCount `json:"top_tickers"`
	AvgHoldDays      float64       `json:"avg_hold_days"`
	HasHoldData      bool          `json:"has_hold_data"`
}

// TickerIncome is a ticker with its summed dividend income
type TickerIncome struct {
	Ticker string  `json:"ticker"`
	Amount float64 `json:"amount"`
}

// DividendSummary is the output of the dividend aggregator. ByTicker is
// sorted descending by amount; ties keep first-seen order.
type DividendSummary struct {
	TotalIncome float64        `json:"total_income"`
	ByTicker    []TickerIncome `json:"by_ticker"`
	TopPayer    string         `json:"top_payer"`
	Payments    int            `json:"payments"`
}

// PositionLine is one spoken line of the portfolio overview. When the quote
// lookup fails, PriceAvailable is false and ApproxPnL is meaningless.
type PositionLine struct {
	Ticker         string  `json:"ticker"`
	Shares         float64 `json:"shares"`
	ApproxPnL      float64 `json:"approx_pnl"`
	PriceAvailable bool    `json:"price_available"`
}

// Performer identifies the best or worst position by unrealized P&L
type Performer struct {
	Ticker string  `json:"ticker"`
	PnL    float64 `json:"pnl"`
}

// PortfolioOverview aggregates the per-position lines with summary statistics
type PortfolioOverview struct {
	Lines               []PositionLine `json:"lines"`
	Positions           int            `json:"positions"`
	TotalValue          float64        `json:"total_value"`
	TotalUnrealizedPnL  float64        `json:"total_unrealized_pnl"`
	Best                *Performer     `json:"best,omitempty"`
	Worst               *Performer     `json:"worst,omitempty"`
	TopConcentrationPct float64        `json:"top_concentration_pct"`
}
