package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "brokerfolio/internal/errors"
	"brokerfolio/internal/pagination"
	"brokerfolio/internal/services"
)

// AssetHandler handles asset requests.
type AssetHandler struct {
	assetService services.AssetServicer
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetService services.AssetServicer) *AssetHandler {
	return &AssetHandler{assetService: assetService}
}

// CreateAssetRequest represents the request payload for creating an asset.
type CreateAssetRequest struct {
	Ticker      string `json:"ticker" binding:"required,ticker"`
	Name        string `json:"name" binding:"required,min=1,max=100"`
	TaxID       string `json:"tax_id,omitempty" binding:"omitempty,max=18"`
	Description string `json:"description,omitempty"`
	AssetTypeID string `json:"asset_type_id" binding:"required,uuid"`
}

// UpdateAssetRequest represents the request payload for updating an asset.
type UpdateAssetRequest struct {
	Ticker      *string `json:"ticker,omitempty" binding:"omitempty,ticker"`
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	TaxID       *string `json:"tax_id,omitempty" binding:"omitempty,max=18"`
	Description *string `json:"description,omitempty"`
	AssetTypeID *string `json:"asset_type_id,omitempty" binding:"omitempty,uuid"`
}

// CreateAsset handles creating a new asset.
// @Summary     Create asset
// @Description Register a tradable asset under an asset type
// @Tags        assets
// @Accept      json
// @Produce     json
// @Param       request body CreateAssetRequest true "Asset details"
// @Success     201 {object} models.Asset "Asset created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Asset type not found"
// @Failure     409 {object} ErrorResponse "Duplicate ticker"
// @Router      /assets [post]
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.assetService.CreateAsset(services.AssetInput{
		Ticker:      &req.Ticker,
		Name:        &req.Name,
		TaxID:       &req.TaxID,
		Description: &req.Description,
		AssetTypeID: &req.AssetTypeID,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"asset": asset})
}

// ListAssets handles listing assets.
// @Summary     List assets
// @Description Get a paginated list of assets ordered by ticker
// @Tags        assets
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Asset] "Paginated assets"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets [get]
func (h *AssetHandler) ListAssets(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.assetService.ListAssets(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SearchAssets handles searching assets by ticker or name.
// @Summary     Search assets
// @Tags        assets
// @Produce     json
// @Param       q         query string false "Ticker or name fragment (case-insensitive)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Asset] "Matching assets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /assets/search [get]
func (h *AssetHandler) SearchAssets(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.assetService.SearchAssets(c.Query("q"), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAssetStats handles the asset catalog statistics.
// @Summary     Asset statistics
// @Description Total number of assets and count per asset type
// @Tags        assets
// @Produce     json
// @Success     200 {object} services.AssetStats "Asset statistics"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/stats [get]
func (h *AssetHandler) GetAssetStats(c *gin.Context) {
	stats, err := h.assetService.GetAssetStats()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// GetAssetByTicker handles retrieving an asset by its ticker.
// @Summary     Get asset by ticker
// @Tags        assets
// @Produce     json
// @Param       ticker path string true "Ticker symbol"
// @Success     200 {object} models.Asset "Asset details"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /assets/ticker/{ticker} [get]
func (h *AssetHandler) GetAssetByTicker(c *gin.Context) {
	asset, err := h.assetService.GetAssetByTicker(c.Param("ticker"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// GetAsset handles retrieving an asset by ID.
// @Summary     Get asset by ID
// @Tags        assets
// @Produce     json
// @Param       id path string true "Asset ID"
// @Success     200 {object} models.Asset "Asset details"
// @Failure     400 {object} ErrorResponse "Invalid asset ID"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /assets/{id} [get]
func (h *AssetHandler) GetAsset(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	asset, err := h.assetService.GetAssetByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// UpdateAsset handles updating an asset.
// @Summary     Update asset
// @Tags        assets
// @Accept      json
// @Produce     json
// @Param       id      path string             true "Asset ID"
// @Param       request body UpdateAssetRequest true "Fields to update"
// @Success     200 {object} models.Asset "Updated asset"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Asset or asset type not found"
// @Failure     409 {object} ErrorResponse "Duplicate ticker"
// @Router      /assets/{id} [put]
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.assetService.UpdateAsset(id, services.AssetInput{
		Ticker:      req.Ticker,
		Name:        req.Name,
		TaxID:       req.TaxID,
		Description: req.Description,
		AssetTypeID: req.AssetTypeID,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// DeleteAsset handles deleting an asset.
// @Summary     Delete asset
// @Tags        assets
// @Produce     json
// @Param       id path string true "Asset ID"
// @Success     200 {object} map[string]string "Asset deleted"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     409 {object} ErrorResponse "Asset has transactions"
// @Router      /assets/{id} [delete]
func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.assetService.DeleteAsset(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Asset deleted successfully"})
}
