package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "brokerfolio/internal/errors"
	"brokerfolio/internal/models"
	"brokerfolio/internal/pagination"
	"brokerfolio/internal/report"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction records a buy or sell. Asset and broker must exist,
// quantity and unit price must be positive.
func (s *transactionService) CreateTransaction(input TransactionInput) (*models.Transaction, error) {
	if input.AssetID == nil || *input.AssetID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Asset is required")
	}
	if input.BrokerID == nil || *input.BrokerID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Broker is required")
	}
	if input.Quantity == nil || *input.Quantity <= 0 {
		return nil, apperrors.ErrInvalidQuantity
	}
	if input.UnitPrice == nil || !input.UnitPrice.IsPositive() {
		return nil, apperrors.ErrInvalidUnitPrice
	}
	if input.Operation == nil || !report.Operation(*input.Operation).Valid() {
		return nil, apperrors.ErrInvalidOperation
	}
	if input.TransactionDate == nil || input.TransactionDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Transaction date is required")
	}

	if err := s.ensureAssetExists(s.db, *input.AssetID); err != nil {
		return nil, err
	}
	if err := s.ensureBrokerExists(s.db, *input.BrokerID); err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		Quantity:        *input.Quantity,
		UnitPrice:       *input.UnitPrice,
		TransactionDate: report.CivilDate(*input.TransactionDate),
		Operation:       *input.Operation,
		BrokerID:        *input.BrokerID,
		AssetID:         *input.AssetID,
	}
	if input.Notes != nil {
		transaction.Notes = strings.TrimSpace(*input.Notes)
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.GetTransactionByID(transaction.ID)
}

// ListTransactions returns a paginated, filtered list of transactions, newest first.
func (s *transactionService) ListTransactions(criteria report.Criteria, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	query := s.db.Model(&models.Transaction{}).Scopes(criteriaScope(criteria))
	result, err := pagination.Fetch[models.Transaction](query, page, "transaction_date DESC, id ASC",
		pagination.Preload("Asset.AssetType"), pagination.Preload("Broker"))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

// GetTransactionByID retrieves a transaction with its asset and broker.
func (s *transactionService) GetTransactionByID(id string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Preload("Asset.AssetType").Preload("Broker").
		Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction applies the non-nil fields of input to a transaction.
func (s *transactionService) UpdateTransaction(id string, input TransactionInput) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Quantity != nil {
		if *input.Quantity <= 0 {
			return nil, apperrors.ErrInvalidQuantity
		}
		updates["quantity"] = *input.Quantity
	}
	if input.UnitPrice != nil {
		if !input.UnitPrice.IsPositive() {
			return nil, apperrors.ErrInvalidUnitPrice
		}
		updates["unit_price"] = *input.UnitPrice
	}
	if input.Operation != nil {
		if !report.Operation(*input.Operation).Valid() {
			return nil, apperrors.ErrInvalidOperation
		}
		updates["operation"] = *input.Operation
	}
	if input.TransactionDate != nil {
		if input.TransactionDate.IsZero() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Transaction date cannot be empty")
		}
		updates["transaction_date"] = report.CivilDate(*input.TransactionDate)
	}
	if input.Notes != nil {
		updates["notes"] = strings.TrimSpace(*input.Notes)
	}
	if input.AssetID != nil {
		if err := s.ensureAssetExists(s.db, *input.AssetID); err != nil {
			return nil, err
		}
		updates["asset_id"] = *input.AssetID
	}
	if input.BrokerID != nil {
		if err := s.ensureBrokerExists(s.db, *input.BrokerID); err != nil {
			return nil, err
		}
		updates["broker_id"] = *input.BrokerID
	}

	if len(updates) > 0 {
		if err := s.db.Model(transaction).Omit("Asset", "Broker").Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetTransactionByID(id)
}

// DeleteTransaction soft-deletes a transaction.
func (s *transactionService) DeleteTransaction(id string) error {
	transaction, err := s.GetTransactionByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Records loads the transactions matching criteria as report records, newest
// first. A broker or asset filter naming an unknown row is a not-found error.
func (s *transactionService) Records(ctx context.Context, criteria report.Criteria) ([]report.Record, error) {
	db := s.db.WithContext(ctx)

	if criteria.BrokerID != "" {
		if err := s.ensureBrokerExists(db, criteria.BrokerID); err != nil {
			return nil, err
		}
	}
	if criteria.AssetID != "" {
		if err := s.ensureAssetExists(db, criteria.AssetID); err != nil {
			return nil, err
		}
	}

	var transactions []models.Transaction
	if err := db.Model(&models.Transaction{}).
		Scopes(criteriaScope(criteria)).
		Preload("Asset").Preload("Broker").
		Order("transaction_date DESC").Order("id ASC").
		Find(&transactions).Error; err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	records := make([]report.Record, 0, len(transactions))
	for i := range transactions {
		records = append(records, toRecord(&transactions[i]))
	}
	return records, nil
}

// criteriaScope narrows a transaction query by the equality filters and the
// date window of c.
func criteriaScope(c report.Criteria) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if c.BrokerID != "" {
			q = q.Where("broker_id = ?", c.BrokerID)
		}
		if c.AssetID != "" {
			q = q.Where("asset_id = ?", c.AssetID)
		}
		if c.Operation != nil {
			q = q.Where("operation = ?", string(*c.Operation))
		}
		if from, to, ok := c.Window(); ok {
			q = q.Where("transaction_date >= ? AND transaction_date < ?", from, to.AddDate(0, 0, 1))
		}
		return q
	}
}

// toRecord flattens a transaction and its preloaded relations into a report record.
func toRecord(t *models.Transaction) report.Record {
	return report.Record{
		ID:         t.ID,
		AssetID:    t.AssetID,
		BrokerID:   t.BrokerID,
		Ticker:     t.Asset.Ticker,
		AssetName:  t.Asset.Name,
		BrokerName: t.Broker.Name,
		Quantity:   t.Quantity,
		UnitPrice:  t.UnitPrice,
		Date:       report.CivilDate(t.TransactionDate),
		Operation:  report.Operation(t.Operation),
		Notes:      t.Notes,
	}
}

func (s *transactionService) ensureAssetExists(db *gorm.DB, id string) error {
	return ensureExists(db, &models.Asset{}, id, apperrors.ErrAssetNotFound)
}

func (s *transactionService) ensureBrokerExists(db *gorm.DB, id string) error {
	return ensureExists(db, &models.Broker{}, id, apperrors.ErrBrokerNotFound)
}

// ensureExists returns notFound unless a live row of model has the given ID.
func ensureExists(db *gorm.DB, model interface{}, id string, notFound error) error {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return notFound
	}
	return nil
}
