package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "brokerfolio/internal/errors"
	"brokerfolio/internal/models"
	"brokerfolio/internal/pagination"
)

// assetService handles asset business logic.
type assetService struct {
	db               *gorm.DB
	assetTypeService AssetTypeServicer
}

// NewAssetService creates a new AssetServicer.
func NewAssetService(db *gorm.DB, assetTypeService AssetTypeServicer) AssetServicer {
	return &assetService{db: db, assetTypeService: assetTypeService}
}

// normalizeTicker upper-cases and trims a ticker symbol.
func normalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// CreateAsset creates a new asset. The asset type must exist and the ticker
// must be unique.
func (s *assetService) CreateAsset(input AssetInput) (*models.Asset, error) {
	if input.AssetTypeID == nil || *input.AssetTypeID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Asset type is required")
	}
	if _, err := s.assetTypeService.GetAssetTypeByID(*input.AssetTypeID); err != nil {
		return nil, err
	}

	ticker := ""
	if input.Ticker != nil {
		ticker = normalizeTicker(*input.Ticker)
	}
	if ticker == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Ticker is required")
	}
	name := ""
	if input.Name != nil {
		name = strings.TrimSpace(*input.Name)
	}
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Asset name is required")
	}

	if err := s.ensureTickerAvailable(ticker, ""); err != nil {
		return nil, err
	}

	asset := &models.Asset{
		Ticker:      ticker,
		Name:        name,
		AssetTypeID: *input.AssetTypeID,
	}
	if input.TaxID != nil {
		asset.TaxID = strings.TrimSpace(*input.TaxID)
	}
	if input.Description != nil {
		asset.Description = *input.Description
	}

	if err := s.db.Create(asset).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, apperrors.ErrDuplicateAsset
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetAssetByID(asset.ID)
}

// ListAssets returns a paginated list of assets ordered by ticker.
func (s *assetService) ListAssets(page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error) {
	return s.paginate(s.db.Model(&models.Asset{}), page)
}

// GetAssetByID returns an asset with its asset type.
func (s *assetService) GetAssetByID(id string) (*models.Asset, error) {
	var asset models.Asset
	if err := s.db.Preload("AssetType").Where("id = ?", id).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &asset, nil
}

// GetAssetByTicker returns an asset by its ticker, case-insensitively.
func (s *assetService) GetAssetByTicker(ticker string) (*models.Asset, error) {
	var asset models.Asset
	if err := s.db.Preload("AssetType").Where("ticker = ?", normalizeTicker(ticker)).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &asset, nil
}

// ListAssetsByType returns the assets of one asset type.
func (s *assetService) ListAssetsByType(assetTypeID string, page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error) {
	if _, err := s.assetTypeService.GetAssetTypeByID(assetTypeID); err != nil {
		return nil, err
	}
	return s.paginate(s.db.Model(&models.Asset{}).Where("asset_type_id = ?", assetTypeID), page)
}

// SearchAssets matches term against ticker and name. An empty term lists all assets.
func (s *assetService) SearchAssets(term string, page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error) {
	if strings.TrimSpace(term) == "" {
		return s.ListAssets(page)
	}
	pattern := likePattern(term)
	query := s.db.Model(&models.Asset{}).
		Where("UPPER(ticker) LIKE ? OR UPPER(name) LIKE ?", pattern, pattern)
	return s.paginate(query, page)
}

// UpdateAsset applies the non-nil fields of input to an asset.
func (s *assetService) UpdateAsset(id string, input AssetInput) (*models.Asset, error) {
	asset, err := s.GetAssetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.AssetTypeID != nil {
		if _, err := s.assetTypeService.GetAssetTypeByID(*input.AssetTypeID); err != nil {
			return nil, err
		}
		updates["asset_type_id"] = *input.AssetTypeID
	}
	if input.Ticker != nil {
		ticker := normalizeTicker(*input.Ticker)
		if ticker == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Ticker cannot be empty")
		}
		if err := s.ensureTickerAvailable(ticker, id); err != nil {
			return nil, err
		}
		updates["ticker"] = ticker
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Asset name cannot be empty")
		}
		updates["name"] = name
	}
	if input.TaxID != nil {
		updates["tax_id"] = strings.TrimSpace(*input.TaxID)
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}

	if len(updates) > 0 {
		if err := s.db.Model(asset).Omit("AssetType").Updates(updates).Error; err != nil {
			if isUniqueConstraintError(err) {
				return nil, apperrors.ErrDuplicateAsset
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetAssetByID(id)
}

// DeleteAsset removes an asset that no transaction references.
func (s *assetService) DeleteAsset(id string) error {
	asset, err := s.GetAssetByID(id)
	if err != nil {
		return err
	}

	var count int64
	if err := s.db.Model(&models.Transaction{}).Where("asset_id = ?", id).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.ErrAssetInUse
	}

	if err := s.db.Delete(asset).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetAssetStats counts assets in total and per asset type.
func (s *assetService) GetAssetStats() (*AssetStats, error) {
	stats := &AssetStats{ByType: []TypeCount{}}
	if err := s.db.Model(&models.Asset{}).Count(&stats.TotalAssets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	type row struct {
		Name  *string
		Count int64
	}
	var rows []row
	if err := s.db.Table("assets").
		Select("asset_types.name AS name, COUNT(assets.id) AS count").
		Joins("LEFT JOIN asset_types ON asset_types.id = assets.asset_type_id AND asset_types.deleted_at IS NULL").
		Where("assets.deleted_at IS NULL").
		Group("asset_types.id, asset_types.name").
		Order("asset_types.name ASC").
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for _, r := range rows {
		name := "No type"
		if r.Name != nil {
			name = *r.Name
		}
		stats.ByType = append(stats.ByType, TypeCount{AssetType: name, Count: r.Count})
	}
	return stats, nil
}

// paginate counts and fetches one page of the given asset query, ordered by ticker.
func (s *assetService) paginate(query *gorm.DB, page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error) {
	result, err := pagination.Fetch[models.Asset](query, page, "ticker ASC", pagination.Preload("AssetType"))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

// ensureTickerAvailable returns ErrDuplicateAsset when another asset (other
// than exceptID) already uses ticker.
func (s *assetService) ensureTickerAvailable(ticker, exceptID string) error {
	var existing models.Asset
	err := s.db.Where("ticker = ?", ticker).First(&existing).Error
	if err == nil && existing.ID != exceptID {
		return apperrors.ErrDuplicateAsset
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
