package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"brokerfolio/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestAssetType creates an asset type with a unique name.
func CreateTestAssetType(t *testing.T, db *gorm.DB) *models.AssetType {
	t.Helper()

	assetType := &models.AssetType{
		Name:        fmt.Sprintf("Type %d", nextID()),
		Description: "test asset type",
	}
	if err := db.Create(assetType).Error; err != nil {
		t.Fatalf("failed to create test asset type: %v", err)
	}
	return assetType
}

// CreateTestAsset creates an asset with the given ticker under assetTypeID.
func CreateTestAsset(t *testing.T, db *gorm.DB, assetTypeID, ticker string) *models.Asset {
	t.Helper()

	asset := &models.Asset{
		Ticker:      ticker,
		Name:        fmt.Sprintf("%s Company", ticker),
		AssetTypeID: assetTypeID,
	}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test asset: %v", err)
	}
	return asset
}

// CreateTestBroker creates a broker with the given name.
func CreateTestBroker(t *testing.T, db *gorm.DB, name string) *models.Broker {
	t.Helper()

	broker := &models.Broker{
		Name: name,
		Code: fmt.Sprintf("B%03d", nextID()),
	}
	if err := db.Create(broker).Error; err != nil {
		t.Fatalf("failed to create test broker: %v", err)
	}
	return broker
}

// CreateTestTransaction records a transaction. price is a decimal string such as "10.50".
func CreateTestTransaction(
	t *testing.T,
	db *gorm.DB,
	assetID, brokerID string,
	op models.OperationType,
	quantity int64,
	price string,
	date time.Time,
) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		AssetID:         assetID,
		BrokerID:        brokerID,
		Operation:       op,
		Quantity:        quantity,
		UnitPrice:       decimal.RequireFromString(price),
		TransactionDate: date,
	}
	if err := db.Omit("Asset", "Broker").Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return transaction
}

// Date returns midnight UTC of the given calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
