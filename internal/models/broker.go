package models

// Broker represents the brokerage where transactions are executed.
type Broker struct {
	Base
	Name    string  `gorm:"not null;uniqueIndex" json:"name"`
	TaxID   *string `gorm:"uniqueIndex" json:"tax_id,omitempty"`
	Code    string  `gorm:"index" json:"code,omitempty"`
	Website string  `json:"website,omitempty"`
	Phone   string  `json:"phone,omitempty"`
	Email   string  `json:"email,omitempty"`
	Notes   string  `gorm:"type:text" json:"notes,omitempty"`
}
