// Package report folds transaction records into position and movement
// reports. It performs no I/O of its own: records come from a RecordSource
// supplied by the caller, and every computation works on per-call state.
package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// Operation is the kind of a transaction record.
type Operation string

const (
	OperationBuy  Operation = "buy"
	OperationSell Operation = "sell"
)

// Valid reports whether o is a known operation.
func (o Operation) Valid() bool {
	return o == OperationBuy || o == OperationSell
}

// Period selects a calendar window for filtering.
type Period string

const (
	PeriodMonthly Period = "monthly"
	PeriodAnnual  Period = "annual"
	// PeriodSpecific marks a request that relies on the explicit date range
	// alone. It adds no predicate of its own.
	PeriodSpecific Period = "specific"
)

// Valid reports whether p is a known period mode. The empty period is valid.
func (p Period) Valid() bool {
	switch p {
	case "", PeriodMonthly, PeriodAnnual, PeriodSpecific:
		return true
	}
	return false
}

// Record is a single buy or sell with asset and broker labels already resolved.
type Record struct {
	ID         string          `json:"id"`
	AssetID    string          `json:"asset_id"`
	BrokerID   string          `json:"broker_id"`
	Ticker     string          `json:"ticker"`
	AssetName  string          `json:"asset_name"`
	BrokerName string          `json:"broker_name"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Date       time.Time       `json:"transaction_date"`
	Operation  Operation       `json:"operation"`
	Notes      string          `json:"notes,omitempty"`
}

// Value returns quantity times unit price, or zero when either is not positive.
func (r Record) Value() decimal.Decimal {
	if r.Quantity <= 0 || !r.UnitPrice.IsPositive() {
		return decimal.Zero
	}
	return r.UnitPrice.Mul(decimal.NewFromInt(r.Quantity))
}

// Criteria restricts the records a report is computed over. Zero-valued
// fields impose no constraint; all set predicates are ANDed.
type Criteria struct {
	BrokerID  string
	AssetID   string
	Operation *Operation
	StartDate *time.Time
	EndDate   *time.Time
	Period    Period
	Year      int
	Month     int
}

// PositionLine is the current holding of one asset at one broker.
type PositionLine struct {
	Ticker        string          `json:"ticker"`
	AssetName     string          `json:"nomeAcao"`
	BrokerName    string          `json:"corretora"`
	NetQuantity   int64           `json:"quantidadeTotal"`
	AverageCost   decimal.Decimal `json:"valorMedio"`
	TotalInvested decimal.Decimal `json:"valorTotalInvestido"`
	Operations    int             `json:"operacoes"`

	AverageCostDisplay   string `json:"valorMedioFormatado"`
	TotalInvestedDisplay string `json:"valorTotalInvestidoFormatado"`
}

// PositionReport lists open positions sorted by invested value.
type PositionReport struct {
	Positions     []PositionLine  `json:"posicaoAtual"`
	TotalInvested decimal.Decimal `json:"totalInvestido"`
	TotalQuantity int64           `json:"totalAcoes"`

	TotalInvestedDisplay string `json:"totalInvestidoFormatado"`
}

// MovementReport holds raw buys and sells with their cash-flow totals.
type MovementReport struct {
	Buys       []Record        `json:"compras"`
	Sells      []Record        `json:"vendas"`
	TotalBuys  decimal.Decimal `json:"totalCompras"`
	TotalSells decimal.Decimal `json:"totalVendas"`
	Balance    decimal.Decimal `json:"saldo"`

	TotalBuysDisplay  string `json:"totalComprasFormatado"`
	TotalSellsDisplay string `json:"totalVendasFormatado"`
	BalanceDisplay    string `json:"saldoFormatado"`
}
