package repository

import (
	"errors"

	"go-catalog-api/internal/apperr"
	"go-catalog-api/internal/model"

	"gorm.io/gorm"
)

type ItemRepository interface {
	Find(id uint) (*model.Item, error)
	FindByHash(hash string) (*model.Item, error)
	FindAll(offset int) ([]model.Item, error)
	FindByOwner(ownerID uint, offset int) ([]model.Item, error)
	FindByIDs(ids []uint) ([]model.Item, error)
	Create(item *model.Item) error
	CreateTx(tx *gorm.DB, item *model.Item) error
	Update(existing *model.Item, patch *model.ItemPatch) (*model.Item, error)
	SetHash(id uint, hash string) error
	Remove(id uint) (*model.Item, error)
	RemoveMulti(ids []uint) ([]model.Item, error)
}

type itemRepo struct {
	db *gorm.DB
}

func NewItemRepo(db *gorm.DB) ItemRepository {
	return &itemRepo{db}
}

func (r *itemRepo) Find(id uint) (*model.Item, error) {
	var item model.Item
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *itemRepo) FindByHash(hash string) (*model.Item, error) {
	var item model.Item
	if err := r.db.First(&item, "hash = ?", hash).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindAll returns every item from the given offset. No page size limit is
// enforced, a known scalability gap kept for parity with the list contract.
func (r *itemRepo) FindAll(offset int) ([]model.Item, error) {
	var items []model.Item
	err := r.db.Order("id").Offset(offset).Find(&items).Error
	return items, err
}

func (r *itemRepo) FindByOwner(ownerID uint, offset int) ([]model.Item, error) {
	var items []model.Item
	err := r.db.Where("owner_id = ?", ownerID).Order("id").Offset(offset).Find(&items).Error
	return items, err
}

// FindByIDs returns only the existing matches; callers detect missing ids
// by comparing the result count against the requested count.
func (r *itemRepo) FindByIDs(ids []uint) ([]model.Item, error) {
	var items []model.Item
	err := r.db.Where("id IN ?", ids).Order("id").Find(&items).Error
	return items, err
}

func (r *itemRepo) Create(item *model.Item) error {
	return r.db.Create(item).Error
}

// CreateTx persists an item inside an externally managed transaction, used
// by the spreadsheet ingestion so a whole batch commits or rolls back as one.
func (r *itemRepo) CreateTx(tx *gorm.DB, item *model.Item) error {
	return tx.Create(item).Error
}

func (r *itemRepo) Update(existing *model.Item, patch *model.ItemPatch) (*model.Item, error) {
	changes := patch.Changes()
	if len(changes) == 0 {
		return existing, nil
	}
	if err := r.db.Model(&model.Item{}).Where("id = ?", existing.ID).Updates(changes).Error; err != nil {
		return nil, err
	}
	return r.Find(existing.ID)
}

func (r *itemRepo) SetHash(id uint, hash string) error {
	return r.db.Model(&model.Item{}).Where("id = ?", id).Update("hash", hash).Error
}

// Remove deletes an item together with its assets, in one transaction.
func (r *itemRepo) Remove(id uint) (*model.Item, error) {
	item, err := r.Find(id)
	if err != nil {
		return nil, err
	}
	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", id).Delete(&model.Asset{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Item{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveMulti deletes the given items and their assets, returning the
// removed records. Missing ids are skipped; authorization happens upstream.
func (r *itemRepo) RemoveMulti(ids []uint) ([]model.Item, error) {
	items, err := r.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id IN ?", ids).Delete(&model.Asset{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&model.Item{}).Error
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}
