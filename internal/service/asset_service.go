package service

import (
	"context"
	"fmt"
	"log"

	"go-catalog-api/internal/apperr"
	"go-catalog-api/internal/model"
	"go-catalog-api/internal/repository"
	"go-catalog-api/pkg/validator"
)

type AssetService interface {
	Create(p model.Principal, itemID uint, req *model.Asset) (*model.Asset, error)
	Get(p model.Principal, id uint) (*model.Asset, error)
	Update(p model.Principal, id uint, patch *model.AssetPatch) (*model.Asset, error)
	Delete(ctx context.Context, p model.Principal, id uint) (*model.Asset, error)
}

type assetService struct {
	assetRepo repository.AssetRepository
	itemRepo  repository.ItemRepository
	signer    Signer
	bucket    string
}

func NewAssetService(assetRepo repository.AssetRepository, itemRepo repository.ItemRepository, signer Signer, bucket string) AssetService {
	return &assetService{
		assetRepo: assetRepo,
		itemRepo:  itemRepo,
		signer:    signer,
		bucket:    bucket,
	}
}

// Create persists the asset, then assigns its display order in a second
// write. The order equals the asset's own id, which keeps ordering stable
// and collision-free without a separate sequence; the order is not known
// before the id exists, so the two writes cannot be merged. A concurrent
// reader may briefly observe a zero order.
func (s *assetService) Create(p model.Principal, itemID uint, req *model.Asset) (*model.Asset, error) {
	item, err := s.itemRepo.Find(itemID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(p, item.OwnerID); err != nil {
		return nil, err
	}

	req.ItemID = itemID
	req.Order = 0
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", apperr.ErrValidation, first.FailedField, first.Tag)
	}

	if err := s.assetRepo.Create(req); err != nil {
		return nil, err
	}
	order := float64(req.ID)
	if err := s.assetRepo.SetOrder(req.ID, order); err != nil {
		return nil, err
	}
	req.Order = order
	return req, nil
}

func (s *assetService) Get(p model.Principal, id uint) (*model.Asset, error) {
	asset, _, err := s.findGuarded(p, id)
	return asset, err
}

func (s *assetService) Update(p model.Principal, id uint, patch *model.AssetPatch) (*model.Asset, error) {
	asset, _, err := s.findGuarded(p, id)
	if err != nil {
		return nil, err
	}
	return s.assetRepo.Update(asset, patch)
}

// Delete removes the asset record and best-effort deletes the stored binary
// object; a failing store never blocks the catalog deletion.
func (s *assetService) Delete(ctx context.Context, p model.Principal, id uint) (*model.Asset, error) {
	asset, item, err := s.findGuarded(p, id)
	if err != nil {
		return nil, err
	}

	removed, err := s.assetRepo.Remove(id)
	if err != nil {
		return nil, err
	}

	objectKey := fmt.Sprintf("%d-%d-%s", item.ID, asset.ID, asset.Link)
	if err := s.signer.DeleteObject(ctx, s.bucket, objectKey); err != nil {
		log.Printf("delete object %q: %v", objectKey, err)
	}
	return removed, nil
}

// findGuarded resolves the asset and authorizes through its parent item's
// owner; an asset never has an owner of its own.
func (s *assetService) findGuarded(p model.Principal, id uint) (*model.Asset, *model.Item, error) {
	asset, err := s.assetRepo.Find(id)
	if err != nil {
		return nil, nil, err
	}
	item, err := s.itemRepo.Find(asset.ItemID)
	if err != nil {
		return nil, nil, err
	}
	if err := Authorize(p, item.OwnerID); err != nil {
		return nil, nil, err
	}
	return asset, item, nil
}
