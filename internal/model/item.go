package model

import "github.com/shopspring/decimal"

// Item is a catalog product record. Every item belongs to exactly one owner
// for its entire lifetime; ownership is never transferred. The hash is the
// opaque public identifier and only changes through explicit rotation.
type Item struct {
	BaseModel
	SKU           string          `gorm:"type:varchar(50);index;not null" json:"sku" validate:"required"`
	Type          string          `gorm:"type:varchar(50);index;not null" json:"type" validate:"required"`
	Description   string          `gorm:"type:varchar(255)" json:"description"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2)" json:"price"`
	Quantity      int             `gorm:"not null" json:"quantity" validate:"min=0"`
	Qaod          string          `gorm:"type:varchar(10);not null" json:"qaod" validate:"required,dateformat"` // quantity as-of date, YYYY-MM-DD
	Logo          string          `gorm:"type:varchar(255);default:''" json:"logo"`
	Background    string          `gorm:"type:varchar(255);default:''" json:"background"`
	HeaderText    string          `gorm:"type:varchar(255);default:''" json:"headerText"`
	HeaderColor   string          `gorm:"type:varchar(255);default:''" json:"headerColor"`
	SubHeaderText string          `gorm:"type:varchar(255);default:''" json:"subHeaderText"`
	Hash          string          `gorm:"type:varchar(64);uniqueIndex;not null" json:"hash"`
	OwnerID       uint            `gorm:"index;not null" json:"owner_id"`
}

// ItemPatch is a partial update: only non-nil fields overwrite the stored
// record. Hash and OwnerID are deliberately absent, the hash changes only
// through rotation and ownership is immutable.
type ItemPatch struct {
	SKU           *string          `json:"sku"`
	Type          *string          `json:"type"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	Quantity      *int             `json:"quantity"`
	Qaod          *string          `json:"qaod"`
	Logo          *string          `json:"logo"`
	Background    *string          `json:"background"`
	HeaderText    *string          `json:"headerText"`
	HeaderColor   *string          `json:"headerColor"`
	SubHeaderText *string          `json:"subHeaderText"`
}

// Changes maps the set fields to their column assignments.
func (p *ItemPatch) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if p.SKU != nil {
		changes["sku"] = *p.SKU
	}
	if p.Type != nil {
		changes["type"] = *p.Type
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.Price != nil {
		changes["price"] = *p.Price
	}
	if p.Quantity != nil {
		changes["quantity"] = *p.Quantity
	}
	if p.Qaod != nil {
		changes["qaod"] = *p.Qaod
	}
	if p.Logo != nil {
		changes["logo"] = *p.Logo
	}
	if p.Background != nil {
		changes["background"] = *p.Background
	}
	if p.HeaderText != nil {
		changes["header_text"] = *p.HeaderText
	}
	if p.HeaderColor != nil {
		changes["header_color"] = *p.HeaderColor
	}
	if p.SubHeaderText != nil {
		changes["sub_header_text"] = *p.SubHeaderText
	}
	return changes
}
