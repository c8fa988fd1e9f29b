package models

// Asset represents a tradable instrument identified by its ticker.
type Asset struct {
	Base
	Ticker      string `gorm:"not null;uniqueIndex;size:20" json:"ticker"`
	Name        string `gorm:"not null" json:"name"`
	TaxID       string `json:"tax_id,omitempty"`
	Description string `json:"description"`
	AssetTypeID string `gorm:"type:uuid;not null;index" json:"asset_type_id"`

	// Relationships
	AssetType AssetType `gorm:"foreignKey:AssetTypeID" json:"asset_type"`
}
