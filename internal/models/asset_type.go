package models

// AssetType groups assets into a user-defined taxonomy (e.g. common stock, REIT, ETF).
type AssetType struct {
	Base
	Name        string `gorm:"not null;uniqueIndex" json:"name"`
	Description string `json:"description"`
}
