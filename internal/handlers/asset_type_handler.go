package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "brokerfolio/internal/errors"
	"brokerfolio/internal/pagination"
	"brokerfolio/internal/services"
)

// AssetTypeHandler handles asset-type requests.
type AssetTypeHandler struct {
	assetTypeService services.AssetTypeServicer
	assetService     services.AssetServicer
}

// NewAssetTypeHandler creates a new AssetTypeHandler.
func NewAssetTypeHandler(assetTypeService services.AssetTypeServicer, assetService services.AssetServicer) *AssetTypeHandler {
	return &AssetTypeHandler{assetTypeService: assetTypeService, assetService: assetService}
}

// CreateAssetTypeRequest represents the request payload for creating an asset type.
type CreateAssetTypeRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description,omitempty"`
}

// UpdateAssetTypeRequest represents the request payload for updating an asset type.
type UpdateAssetTypeRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty"`
}

// CreateAssetType handles creating a new asset type.
// @Summary     Create asset type
// @Description Create a new asset type such as stocks or real estate funds
// @Tags        asset-types
// @Accept      json
// @Produce     json
// @Param       request body CreateAssetTypeRequest true "Asset type details"
// @Success     201 {object} models.AssetType "Asset type created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Duplicate asset type"
// @Router      /asset-types [post]
func (h *AssetTypeHandler) CreateAssetType(c *gin.Context) {
	var req CreateAssetTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	assetType, err := h.assetTypeService.CreateAssetType(req.Name, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"asset_type": assetType})
}

// ListAssetTypes handles listing asset types.
// @Summary     List asset types
// @Description Get a paginated list of asset types ordered by name
// @Tags        asset-types
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.AssetType] "Paginated asset types"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /asset-types [get]
func (h *AssetTypeHandler) ListAssetTypes(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.assetTypeService.ListAssetTypes(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SearchAssetTypes handles searching asset types by name or description.
// @Summary     Search asset types
// @Tags        asset-types
// @Produce     json
// @Param       q         query string false "Name or description fragment (case-insensitive)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.AssetType] "Matching asset types"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /asset-types/search [get]
func (h *AssetTypeHandler) SearchAssetTypes(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.assetTypeService.SearchAssetTypes(c.Query("q"), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAssetTypeStats handles the asset type usage statistics.
// @Summary     Asset type statistics
// @Description Total number of asset types and how many have assets
// @Tags        asset-types
// @Produce     json
// @Success     200 {object} services.AssetTypeStats "Asset type statistics"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /asset-types/stats [get]
func (h *AssetTypeHandler) GetAssetTypeStats(c *gin.Context) {
	stats, err := h.assetTypeService.GetAssetTypeStats()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// GetAssetType handles retrieving an asset type.
// @Summary     Get asset type by ID
// @Tags        asset-types
// @Produce     json
// @Param       id path string true "Asset type ID"
// @Success     200 {object} models.AssetType "Asset type details"
// @Failure     400 {object} ErrorResponse "Invalid asset type ID"
// @Failure     404 {object} ErrorResponse "Asset type not found"
// @Router      /asset-types/{id} [get]
func (h *AssetTypeHandler) GetAssetType(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	assetType, err := h.assetTypeService.GetAssetTypeByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset_type": assetType})
}

// ListAssetsByType handles listing the assets of one asset type.
// @Summary     List assets of a type
// @Tags        asset-types
// @Produce     json
// @Param       id        path  string true  "Asset type ID"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Asset] "Paginated assets"
// @Failure     400 {object} ErrorResponse "Invalid asset type ID"
// @Failure     404 {object} ErrorResponse "Asset type not found"
// @Router      /asset-types/{id}/assets [get]
func (h *AssetTypeHandler) ListAssetsByType(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.assetService.ListAssetsByType(id, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateAssetType handles updating an asset type.
// @Summary     Update asset type
// @Tags        asset-types
// @Accept      json
// @Produce     json
// @Param       id      path string                 true "Asset type ID"
// @Param       request body UpdateAssetTypeRequest true "Fields to update"
// @Success     200 {object} models.AssetType "Updated asset type"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Asset type not found"
// @Failure     409 {object} ErrorResponse "Duplicate asset type"
// @Router      /asset-types/{id} [put]
func (h *AssetTypeHandler) UpdateAssetType(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateAssetTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	assetType, err := h.assetTypeService.UpdateAssetType(id, req.Name, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset_type": assetType})
}

// DeleteAssetType handles deleting an asset type.
// @Summary     Delete asset type
// @Tags        asset-types
// @Produce     json
// @Param       id path string true "Asset type ID"
// @Success     200 {object} map[string]string "Asset type deleted"
// @Failure     404 {object} ErrorResponse "Asset type not found"
// @Failure     409 {object} ErrorResponse "Asset type in use"
// @Router      /asset-types/{id} [delete]
func (h *AssetTypeHandler) DeleteAssetType(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.assetTypeService.DeleteAssetType(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Asset type deleted successfully"})
}
