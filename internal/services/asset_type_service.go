package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "brokerfolio/internal/errors"
	"brokerfolio/internal/models"
	"brokerfolio/internal/pagination"
)

// assetTypeService handles asset-type business logic.
type assetTypeService struct {
	db *gorm.DB
}

// NewAssetTypeService creates a new AssetTypeServicer.
func NewAssetTypeService(db *gorm.DB) AssetTypeServicer {
	return &assetTypeService{db: db}
}

// CreateAssetType creates a new asset type with a unique name.
func (s *assetTypeService) CreateAssetType(name, description string) (*models.AssetType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Asset type name is required")
	}

	if err := s.ensureNameAvailable(name, ""); err != nil {
		return nil, err
	}

	assetType := &models.AssetType{
		Name:        name,
		Description: strings.TrimSpace(description),
	}
	if err := s.db.Create(assetType).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, apperrors.ErrDuplicateAssetType
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return assetType, nil
}

// ListAssetTypes returns a paginated list of asset types ordered by name.
func (s *assetTypeService) ListAssetTypes(page pagination.PageRequest) (*pagination.PageResponse[models.AssetType], error) {
	result, err := pagination.Fetch[models.AssetType](s.db.Model(&models.AssetType{}), page, "name ASC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

// SearchAssetTypes returns asset types whose name or description contains
// term, ignoring case. An empty term lists every asset type.
func (s *assetTypeService) SearchAssetTypes(term string, page pagination.PageRequest) (*pagination.PageResponse[models.AssetType], error) {
	if strings.TrimSpace(term) == "" {
		return s.ListAssetTypes(page)
	}
	pattern := likePattern(term)
	query := s.db.Model(&models.AssetType{}).
		Where("UPPER(name) LIKE ? OR UPPER(description) LIKE ?", pattern, pattern)
	result, err := pagination.Fetch[models.AssetType](query, page, "name ASC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

// GetAssetTypeStats counts asset types with and without assets.
func (s *assetTypeService) GetAssetTypeStats() (*AssetTypeStats, error) {
	stats := &AssetTypeStats{}
	if err := s.db.Model(&models.AssetType{}).Count(&stats.TotalAssetTypes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	used := s.db.Model(&models.Asset{}).Select("asset_type_id")
	if err := s.db.Model(&models.AssetType{}).
		Where("id IN (?)", used).
		Count(&stats.AssetTypesWithAssets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	stats.AssetTypesWithoutAssets = stats.TotalAssetTypes - stats.AssetTypesWithAssets
	return stats, nil
}

// GetAssetTypeByID returns an asset type by its ID.
func (s *assetTypeService) GetAssetTypeByID(id string) (*models.AssetType, error) {
	var assetType models.AssetType
	if err := s.db.Where("id = ?", id).First(&assetType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetTypeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &assetType, nil
}

// UpdateAssetType changes the name and/or description of an asset type.
func (s *assetTypeService) UpdateAssetType(id string, name, description *string) (*models.AssetType, error) {
	assetType, err := s.GetAssetTypeByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Asset type name cannot be empty")
		}
		if err := s.ensureNameAvailable(trimmed, id); err != nil {
			return nil, err
		}
		updates["name"] = trimmed
	}
	if description != nil {
		updates["description"] = strings.TrimSpace(*description)
	}

	if len(updates) > 0 {
		if err := s.db.Model(assetType).Updates(updates).Error; err != nil {
			if isUniqueConstraintError(err) {
				return nil, apperrors.ErrDuplicateAssetType
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetAssetTypeByID(id)
}

// DeleteAssetType removes an asset type that no asset references.
func (s *assetTypeService) DeleteAssetType(id string) error {
	assetType, err := s.GetAssetTypeByID(id)
	if err != nil {
		return err
	}

	var count int64
	if err := s.db.Model(&models.Asset{}).Where("asset_type_id = ?", id).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.ErrAssetTypeInUse
	}

	if err := s.db.Delete(assetType).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ensureNameAvailable returns ErrDuplicateAssetType when another asset type
// (other than exceptID) already uses name.
func (s *assetTypeService) ensureNameAvailable(name, exceptID string) error {
	var existing models.AssetType
	err := s.db.Where("name = ?", name).First(&existing).Error
	if err == nil && existing.ID != exceptID {
		return apperrors.ErrDuplicateAssetType
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
