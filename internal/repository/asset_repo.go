package repository

import (
	"errors"

	"go-catalog-api/internal/apperr"
	"go-catalog-api/internal/model"

	"gorm.io/gorm"
)

type AssetRepository interface {
	Find(id uint) (*model.Asset, error)
	FindByItem(itemID uint) ([]model.Asset, error)
	Create(asset *model.Asset) error
	SetOrder(id uint, order float64) error
	Update(existing *model.Asset, patch *model.AssetPatch) (*model.Asset, error)
	Remove(id uint) (*model.Asset, error)
}

type assetRepo struct {
	db *gorm.DB
}

func NewAssetRepo(db *gorm.DB) AssetRepository {
	return &assetRepo{db}
}

func (r *assetRepo) Find(id uint) (*model.Asset, error) {
	var asset model.Asset
	if err := r.db.First(&asset, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &asset, nil
}

func (r *assetRepo) FindByItem(itemID uint) ([]model.Asset, error) {
	var assets []model.Asset
	err := r.db.Where("item_id = ?", itemID).Order("display_order").Find(&assets).Error
	return assets, err
}

func (r *assetRepo) Create(asset *model.Asset) error {
	return r.db.Create(asset).Error
}

// SetOrder is the second half of the two-phase create: the display order is
// not known before the generated id exists.
func (r *assetRepo) SetOrder(id uint, order float64) error {
	return r.db.Model(&model.Asset{}).Where("id = ?", id).Update("display_order", order).Error
}

func (r *assetRepo) Update(existing *model.Asset, patch *model.AssetPatch) (*model.Asset, error) {
	changes := patch.Changes()
	if len(changes) == 0 {
		return existing, nil
	}
	if err := r.db.Model(&model.Asset{}).Where("id = ?", existing.ID).Updates(changes).Error; err != nil {
		return nil, err
	}
	return r.Find(existing.ID)
}

func (r *assetRepo) Remove(id uint) (*model.Asset, error) {
	asset, err := r.Find(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&model.Asset{}, id).Error; err != nil {
		return nil, err
	}
	return asset, nil
}
