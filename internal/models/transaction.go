package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationType represents the side of a transaction.
type OperationType string

const (
	OperationTypeBuy  OperationType = "buy"
	OperationTypeSell OperationType = "sell"
)

// Transaction records a buy or sell of an asset at a broker.
type Transaction struct {
	Base
	Quantity        int64           `gorm:"not null" json:"quantity"`
	UnitPrice       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"unit_price"`
	TransactionDate time.Time       `gorm:"type:date;not null;index" json:"transaction_date"`
	Operation       OperationType   `gorm:"type:varchar(10);not null;index" json:"operation"`
	Notes           string          `gorm:"type:text" json:"notes,omitempty"`
	BrokerID        string          `gorm:"type:uuid;not null;index" json:"broker_id"`
	AssetID         string          `gorm:"type:uuid;not null;index" json:"asset_id"`

	// Relationships
	Broker Broker `gorm:"foreignKey:BrokerID" json:"broker"`
	Asset  Asset  `gorm:"foreignKey:AssetID" json:"asset"`
}
