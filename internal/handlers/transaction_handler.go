package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "brokerfolio/internal/errors"
	"brokerfolio/internal/models"
	"brokerfolio/internal/pagination"
	"brokerfolio/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for recording a transaction.
type CreateTransactionRequest struct {
	AssetID         string               `json:"asset_id" binding:"required,uuid"`
	BrokerID        string               `json:"broker_id" binding:"required,uuid"`
	Operation       models.OperationType `json:"operation" binding:"required,operation"`
	Quantity        int64                `json:"quantity" binding:"required,gt=0"`
	UnitPrice       decimal.Decimal      `json:"unit_price" swaggertype:"string" example:"28.45"`
	TransactionDate string               `json:"transaction_date" binding:"required,civil_date" example:"2024-03-15"`
	Notes           string               `json:"notes,omitempty"`
}

// UpdateTransactionRequest represents the request payload for updating a transaction.
type UpdateTransactionRequest struct {
	AssetID         *string               `json:"asset_id,omitempty" binding:"omitempty,uuid"`
	BrokerID        *string               `json:"broker_id,omitempty" binding:"omitempty,uuid"`
	Operation       *models.OperationType `json:"operation,omitempty" binding:"omitempty,operation"`
	Quantity        *int64                `json:"quantity,omitempty" binding:"omitempty,gt=0"`
	UnitPrice       *decimal.Decimal      `json:"unit_price,omitempty" swaggertype:"string"`
	TransactionDate *string               `json:"transaction_date,omitempty" binding:"omitempty,civil_date"`
	Notes           *string               `json:"notes,omitempty"`
}

// CreateTransaction handles recording a buy or sell.
// @Summary     Create transaction
// @Description Record a buy or sell of an asset at a broker
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Asset or broker not found"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseFlexibleTime(req.TransactionDate)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid transaction_date format, use YYYY-MM-DD"))
		return
	}

	transaction, err := h.transactionService.CreateTransaction(services.TransactionInput{
		Quantity:        &req.Quantity,
		UnitPrice:       &req.UnitPrice,
		TransactionDate: &date,
		Operation:       &req.Operation,
		Notes:           &req.Notes,
		BrokerID:        &req.BrokerID,
		AssetID:         &req.AssetID,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// ListTransactions handles listing transactions with optional filters.
// @Summary     List transactions
// @Description Get a paginated, filtered list of transactions, newest first
// @Tags        transactions
// @Produce     json
// @Param       broker_id  query string false "Filter by broker ID"
// @Param       asset_id   query string false "Filter by asset ID"
// @Param       operation  query string false "Filter by operation (buy, sell)"
// @Param       start_date query string false "Range start, inclusive (YYYY-MM-DD)"
// @Param       end_date   query string false "Range end, inclusive (YYYY-MM-DD)"
// @Param       period     query string false "Calendar period (monthly, annual, specific)"
// @Param       year       query int    false "Year for monthly or annual period"
// @Param       month      query int    false "Month (1-12) for monthly period"
// @Param       page       query int    false "Page number (default 1)"
// @Param       page_size  query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	criteria, err := parseReportCriteria(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.ListTransactions(criteria, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTransaction handles retrieving a transaction by ID.
// @Summary     Get transaction by ID
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction details"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// UpdateTransaction handles a partial update of a transaction.
// @Summary     Update transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id      path string                   true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Fields to update"
// @Success     200 {object} models.Transaction "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Transaction, asset or broker not found"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input := services.TransactionInput{
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		Operation: req.Operation,
		Notes:     req.Notes,
		BrokerID:  req.BrokerID,
		AssetID:   req.AssetID,
	}
	if req.TransactionDate != nil {
		date, parseErr := parseFlexibleTime(*req.TransactionDate)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid transaction_date format, use YYYY-MM-DD"))
			return
		}
		input.TransactionDate = &date
	}

	transaction, err := h.transactionService.UpdateTransaction(id, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction handles deleting a transaction.
// @Summary     Delete transaction
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} map[string]string "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
