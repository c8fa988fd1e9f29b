package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "brokerfolio/internal/errors"
	"brokerfolio/internal/pagination"
	"brokerfolio/internal/services"
)

// BrokerHandler handles broker requests.
type BrokerHandler struct {
	brokerService services.BrokerServicer
}

// NewBrokerHandler creates a new BrokerHandler.
func NewBrokerHandler(brokerService services.BrokerServicer) *BrokerHandler {
	return &BrokerHandler{brokerService: brokerService}
}

// BrokerRequest represents the request payload for creating or updating a broker.
// Name is required on create.
type BrokerRequest struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	TaxID   *string `json:"tax_id,omitempty" binding:"omitempty,max=18"`
	Code    *string `json:"code,omitempty" binding:"omitempty,max=20"`
	Website *string `json:"website,omitempty" binding:"omitempty,url"`
	Phone   *string `json:"phone,omitempty" binding:"omitempty,max=20"`
	Email   *string `json:"email,omitempty" binding:"omitempty,email"`
	Notes   *string `json:"notes,omitempty"`
}

func (r BrokerRequest) input() services.BrokerInput {
	return services.BrokerInput{
		Name:    r.Name,
		TaxID:   r.TaxID,
		Code:    r.Code,
		Website: r.Website,
		Phone:   r.Phone,
		Email:   r.Email,
		Notes:   r.Notes,
	}
}

// CreateBroker handles creating a new broker.
// @Summary     Create broker
// @Tags        brokers
// @Accept      json
// @Produce     json
// @Param       request body BrokerRequest true "Broker details"
// @Success     201 {object} models.Broker "Broker created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Duplicate name or tax ID"
// @Router      /brokers [post]
func (h *BrokerHandler) CreateBroker(c *gin.Context) {
	var req BrokerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	broker, err := h.brokerService.CreateBroker(req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"broker": broker})
}

// ListBrokers handles listing brokers.
// @Summary     List brokers
// @Description Get a paginated list of brokers ordered by name
// @Tags        brokers
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Broker] "Paginated brokers"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /brokers [get]
func (h *BrokerHandler) ListBrokers(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.brokerService.ListBrokers(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SearchBrokers handles searching brokers by name, code or tax ID.
// @Summary     Search brokers
// @Tags        brokers
// @Produce     json
// @Param       q         query string false "Name, code or tax ID fragment"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Broker] "Matching brokers"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /brokers/search [get]
func (h *BrokerHandler) SearchBrokers(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.brokerService.SearchBrokers(c.Query("q"), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBrokerStats handles the broker catalog statistics.
// @Summary     Broker statistics
// @Description Number of brokers with and without recorded transactions
// @Tags        brokers
// @Produce     json
// @Success     200 {object} services.BrokerStats "Broker statistics"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /brokers/stats [get]
func (h *BrokerHandler) GetBrokerStats(c *gin.Context) {
	stats, err := h.brokerService.GetBrokerStats()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// GetBrokerByCode handles retrieving a broker by its code.
// @Summary     Get broker by code
// @Tags        brokers
// @Produce     json
// @Param       code path string true "Broker code"
// @Success     200 {object} models.Broker "Broker details"
// @Failure     404 {object} ErrorResponse "Broker not found"
// @Router      /brokers/code/{code} [get]
func (h *BrokerHandler) GetBrokerByCode(c *gin.Context) {
	broker, err := h.brokerService.GetBrokerByCode(c.Param("code"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"broker": broker})
}

// GetBroker handles retrieving a broker by ID.
// @Summary     Get broker by ID
// @Tags        brokers
// @Produce     json
// @Param       id path string true "Broker ID"
// @Success     200 {object} models.Broker "Broker details"
// @Failure     400 {object} ErrorResponse "Invalid broker ID"
// @Failure     404 {object} ErrorResponse "Broker not found"
// @Router      /brokers/{id} [get]
func (h *BrokerHandler) GetBroker(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	broker, err := h.brokerService.GetBrokerByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"broker": broker})
}

// GetBrokerSummary handles the per-broker activity summary.
// @Summary     Broker summary
// @Description Operation counts, net invested amount and last operation date at one broker
// @Tags        brokers
// @Produce     json
// @Param       id path string true "Broker ID"
// @Success     200 {object} services.BrokerSummary "Broker summary"
// @Failure     400 {object} ErrorResponse "Invalid broker ID"
// @Failure     404 {object} ErrorResponse "Broker not found"
// @Router      /brokers/{id}/summary [get]
func (h *BrokerHandler) GetBrokerSummary(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.brokerService.GetBrokerSummary(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// UpdateBroker handles updating a broker.
// @Summary     Update broker
// @Tags        brokers
// @Accept      json
// @Produce     json
// @Param       id      path string        true "Broker ID"
// @Param       request body BrokerRequest true "Fields to update"
// @Success     200 {object} models.Broker "Updated broker"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Broker not found"
// @Failure     409 {object} ErrorResponse "Duplicate name or tax ID"
// @Router      /brokers/{id} [put]
func (h *BrokerHandler) UpdateBroker(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BrokerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	broker, err := h.brokerService.UpdateBroker(id, req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"broker": broker})
}

// DeleteBroker handles deleting a broker.
// @Summary     Delete broker
// @Tags        brokers
// @Produce     json
// @Param       id path string true "Broker ID"
// @Success     200 {object} map[string]string "Broker deleted"
// @Failure     404 {object} ErrorResponse "Broker not found"
// @Failure     409 {object} ErrorResponse "Broker has transactions"
// @Router      /brokers/{id} [delete]
func (h *BrokerHandler) DeleteBroker(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.brokerService.DeleteBroker(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Broker deleted successfully"})
}
