package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"brokerfolio/internal/models"
	"brokerfolio/internal/pagination"
	"brokerfolio/internal/report"
)

// AssetTypeStats summarizes how asset types are used.
type AssetTypeStats struct {
	TotalAssetTypes         int64 `json:"total_asset_types"`
	AssetTypesWithAssets    int64 `json:"asset_types_with_assets"`
	AssetTypesWithoutAssets int64 `json:"asset_types_without_assets"`
}

// AssetTypeServicer defines the contract for asset-type business logic.
type AssetTypeServicer interface {
	CreateAssetType(name, description string) (*models.AssetType, error)
	ListAssetTypes(page pagination.PageRequest) (*pagination.PageResponse[models.AssetType], error)
	SearchAssetTypes(term string, page pagination.PageRequest) (*pagination.PageResponse[models.AssetType], error)
	GetAssetTypeStats() (*AssetTypeStats, error)
	GetAssetTypeByID(id string) (*models.AssetType, error)
	UpdateAssetType(id string, name, description *string) (*models.AssetType, error)
	DeleteAssetType(id string) error
}

// AssetInput holds the writable fields of an asset. Nil pointers are left
// unchanged on update.
type AssetInput struct {
	Ticker      *string
	Name        *string
	TaxID       *string
	Description *string
	AssetTypeID *string
}

// TypeCount is the number of assets of one asset type.
type TypeCount struct {
	AssetType string `json:"asset_type"`
	Count     int64  `json:"count"`
}

// AssetStats summarizes the asset catalog.
type AssetStats struct {
	TotalAssets int64       `json:"total_assets"`
	ByType      []TypeCount `json:"by_type"`
}

// AssetServicer defines the contract for asset business logic.
type AssetServicer interface {
	CreateAsset(input AssetInput) (*models.Asset, error)
	ListAssets(page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error)
	GetAssetByID(id string) (*models.Asset, error)
	GetAssetByTicker(ticker string) (*models.Asset, error)
	ListAssetsByType(assetTypeID string, page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error)
	SearchAssets(term string, page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error)
	UpdateAsset(id string, input AssetInput) (*models.Asset, error)
	DeleteAsset(id string) error
	GetAssetStats() (*AssetStats, error)
}

// BrokerInput holds the writable fields of a broker. Nil pointers are left
// unchanged on update.
type BrokerInput struct {
	Name    *string
	TaxID   *string
	Code    *string
	Website *string
	Phone   *string
	Email   *string
	Notes   *string
}

// BrokerStats summarizes the broker catalog.
type BrokerStats struct {
	TotalBrokers            int64 `json:"total_brokers"`
	BrokersWithTransactions int64 `json:"brokers_with_transactions"`
	BrokersWithoutActivity  int64 `json:"brokers_without_transactions"`
}

// BrokerSummary aggregates all transactions recorded at one broker.
type BrokerSummary struct {
	Broker          *models.Broker  `json:"broker"`
	TotalOperations int             `json:"total_operations"`
	BuyCount        int             `json:"buy_count"`
	SellCount       int             `json:"sell_count"`
	NetInvested     decimal.Decimal `json:"net_invested"`
	LastOperation   *time.Time      `json:"last_operation,omitempty"`
}

// BrokerServicer defines the contract for broker business logic.
type BrokerServicer interface {
	CreateBroker(input BrokerInput) (*models.Broker, error)
	ListBrokers(page pagination.PageRequest) (*pagination.PageResponse[models.Broker], error)
	GetBrokerByID(id string) (*models.Broker, error)
	GetBrokerByCode(code string) (*models.Broker, error)
	SearchBrokers(term string, page pagination.PageRequest) (*pagination.PageResponse[models.Broker], error)
	UpdateBroker(id string, input BrokerInput) (*models.Broker, error)
	DeleteBroker(id string) error
	GetBrokerStats() (*BrokerStats, error)
	GetBrokerSummary(ctx context.Context, id string) (*BrokerSummary, error)
}

// TransactionInput holds the writable fields of a transaction. Nil pointers
// are left unchanged on update.
type TransactionInput struct {
	Quantity        *int64
	UnitPrice       *decimal.Decimal
	TransactionDate *time.Time
	Operation       *models.OperationType
	Notes           *string
	BrokerID        *string
	AssetID         *string
}

// TransactionServicer defines the contract for transaction business logic.
// It also serves as the record source for the report engine.
type TransactionServicer interface {
	report.RecordSource
	CreateTransaction(input TransactionInput) (*models.Transaction, error)
	ListTransactions(criteria report.Criteria, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(id string) (*models.Transaction, error)
	UpdateTransaction(id string, input TransactionInput) (*models.Transaction, error)
	DeleteTransaction(id string) error
}

// ReportServicer defines the contract for report computation.
type ReportServicer interface {
	PositionReport(ctx context.Context, criteria report.Criteria) (*report.PositionReport, error)
	MovementReport(ctx context.Context, criteria report.Criteria) (*report.MovementReport, error)
}

var _ ReportServicer = (*report.Engine)(nil)
