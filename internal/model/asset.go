package model

// Asset media types. Only video and doc links are presign-rewritten on
// public lookup; image links are served from the public path as-is.
const (
	AssetTypeImage = "image"
	AssetTypeVideo = "video"
	AssetTypeDoc   = "doc"
)

// Asset is a media/document attachment belonging to exactly one Item.
// Deleting the item deletes its assets. Order is system-assigned after
// creation (set equal to the asset's own id) and never supplied by callers.
type Asset struct {
	BaseModel
	Type       string  `gorm:"type:varchar(20);not null" json:"type" validate:"required,oneof=image video doc"`
	Title      string  `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	Order      float64 `gorm:"column:display_order" json:"order"`
	Link       string  `gorm:"type:varchar(255);not null" json:"link" validate:"required"`
	Background string  `gorm:"type:varchar(255);default:''" json:"background"`
	ItemID     uint    `gorm:"index;not null" json:"item_id"`
}

// AssetPatch is a partial update; Order and ItemID are system-controlled.
type AssetPatch struct {
	Type       *string `json:"type"`
	Title      *string `json:"title"`
	Link       *string `json:"link"`
	Background *string `json:"background"`
}

// Changes maps the set fields to their column assignments.
func (p *AssetPatch) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if p.Type != nil {
		changes["type"] = *p.Type
	}
	if p.Title != nil {
		changes["title"] = *p.Title
	}
	if p.Link != nil {
		changes["link"] = *p.Link
	}
	if p.Background != nil {
		changes["background"] = *p.Background
	}
	return changes
}
